package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/marketstall/market-api/internal/domain"
)

type CreateStandRequest struct {
	CategoryCode string `json:"categoryCode" example:"SP"`
	X            int    `json:"x" example:"790"`
	Y            int    `json:"y" example:"20"`
}

func (req *CreateStandRequest) Validate() error {
	codes := make([]interface{}, len(domain.Offers))
	for i, o := range domain.Offers {
		codes[i] = o.Code
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.CategoryCode, validation.Required, validation.In(codes...)),
		validation.Field(&req.X, validation.Min(0)),
		validation.Field(&req.Y, validation.Min(0)),
	)
}

func (req *CreateStandRequest) Location() domain.Location {
	return domain.Location{X: req.X, Y: req.Y}
}

type UpdateStandStatusRequest struct {
	Status string `json:"status" example:"MAINTENANCE"`
}

func (req *UpdateStandStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status,
			validation.Required,
			validation.In(
				string(domain.StandAvailable),
				string(domain.StandOccupied),
				string(domain.StandReserved),
				string(domain.StandMaintenance),
			),
		),
	)
}
