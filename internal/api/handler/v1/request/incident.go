package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/marketstall/market-api/internal/domain"
)

type CreateIncidentRequest struct {
	StandID     string `json:"standId" example:"S-SP-1"`
	ReporterID  string `json:"reporterId" example:"C-1"`
	Type        string `json:"type" example:"DAMAGE"`
	Description string `json:"description" example:"Złamany daszek"`
}

func (req *CreateIncidentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StandID, validation.Length(0, 32)),
		validation.Field(&req.ReporterID, validation.Required, validation.Length(1, 64)),
		validation.Field(&req.Type,
			validation.Required,
			validation.In(
				string(domain.IncidentDamage),
				string(domain.IncidentCleanliness),
				string(domain.IncidentUnauthorized),
				string(domain.IncidentOther),
			),
		),
		validation.Field(&req.Description, validation.Length(0, 1000)),
	)
}

func (req *CreateIncidentRequest) ToDomain() domain.NewIncident {
	return domain.NewIncident{
		StandID:     req.StandID,
		ReporterID:  req.ReporterID,
		Type:        domain.IncidentType(req.Type),
		Description: req.Description,
	}
}

type UpdateIncidentStatusRequest struct {
	Status string `json:"status" example:"IN_PROGRESS"`
}

func (req *UpdateIncidentStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status,
			validation.Required,
			validation.In(
				string(domain.IncidentOpen),
				string(domain.IncidentInProgress),
				string(domain.IncidentResolved),
			),
		),
	)
}
