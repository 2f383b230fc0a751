package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/marketstall/market-api/internal/domain"
)

// CreateReservationRequest accepts paymentStatus and cleaningStatus for
// compatibility with older clients; both are ignored.
type CreateReservationRequest struct {
	StandID        string `json:"standId" example:"S-SP-1"`
	UserID         string `json:"userId" example:"U-1"`
	UserName       string `json:"userName" example:"Jan Kowalski"`
	StartDate      string `json:"startDate" example:"2026-05-01" format:"YYYY-MM-DD"`
	EndDate        string `json:"endDate" example:"2026-05-07" format:"YYYY-MM-DD"`
	Days           int    `json:"days" example:"7"`
	TotalAmount    int    `json:"totalAmount" example:"420"`
	PaymentStatus  string `json:"paymentStatus,omitempty" swaggerignore:"true"`
	CleaningStatus string `json:"cleaningStatus,omitempty" swaggerignore:"true"`
}

func (req *CreateReservationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StandID, validation.Required, validation.Length(1, 32)),
		validation.Field(&req.UserID, validation.Required, validation.Length(1, 64)),
		validation.Field(&req.UserName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.StartDate, validation.Required, validation.Date(domain.DateLayout)),
		validation.Field(&req.EndDate, validation.Required, validation.Date(domain.DateLayout)),
		validation.Field(&req.Days, validation.Min(0), validation.Max(domain.MaxReservationDays)),
		validation.Field(&req.TotalAmount, validation.Min(0)),
	)
}

func (req *CreateReservationRequest) ToDomain() domain.NewReservation {
	return domain.NewReservation{
		StandID:     req.StandID,
		UserID:      req.UserID,
		UserName:    req.UserName,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        req.Days,
		TotalAmount: req.TotalAmount,
	}
}

type ListReservationsQuery struct {
	Date    string `form:"date"`
	StandID string `form:"standId"`
}

func (q *ListReservationsQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Date, validation.Date(domain.DateLayout)),
	)
}

func (q *ListReservationsQuery) ToDomain() domain.ReservationFilter {
	return domain.ReservationFilter{
		Date:    q.Date,
		StandID: q.StandID,
	}
}

type UpdateCleaningRequest struct {
	Status string `json:"status" example:"REJECTED"`
	Note   string `json:"note" example:"Odpady przy stoisku"`
}

func (req *UpdateCleaningRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status,
			validation.Required,
			validation.In(string(domain.CleaningApproved), string(domain.CleaningRejected)),
		),
		validation.Field(&req.Note, validation.Length(0, 500)),
	)
}
