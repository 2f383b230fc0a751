package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date format of reservation boundaries.
const DateLayout = "2006-01-02"

// MaxReservationDays caps the billable length of one reservation.
const MaxReservationDays = 366

var (
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrReservationTooLong = fmt.Errorf("reservation must not exceed %d days", MaxReservationDays)
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentOverdue PaymentStatus = "OVERDUE"
)

type CleaningStatus string

const (
	CleaningPending  CleaningStatus = "PENDING"
	CleaningApproved CleaningStatus = "APPROVED"
	CleaningRejected CleaningStatus = "REJECTED"
)

// Reservation is an occupancy claim on a stand. UserName is a snapshot of the
// renter's display name taken at creation; it is not kept in sync with the user.
type Reservation struct {
	ID             string         `json:"id"`
	StandID        string         `json:"standId"`
	UserID         string         `json:"userId"`
	UserName       string         `json:"userName"`
	StartDate      string         `json:"startDate"`
	EndDate        string         `json:"endDate"`
	TotalAmount    int            `json:"totalAmount"`
	PaymentStatus  PaymentStatus  `json:"paymentStatus"`
	CleaningStatus CleaningStatus `json:"cleaningStatus"`
	CleaningNote   string         `json:"cleaningNote,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// NewReservation is the caller's part of a reservation. Days, when positive,
// overrides the inclusive date span as the price multiplier.
type NewReservation struct {
	StandID     string
	UserID      string
	UserName    string
	StartDate   string
	EndDate     string
	Days        int
	TotalAmount int
}

// ReservationFilter narrows a listing. Zero value matches everything.
type ReservationFilter struct {
	// Date keeps reservations active on that day (start <= date <= end).
	Date    string
	StandID string
}

const secondsPerDay = 24 * 60 * 60

// SpanDays counts the calendar days between start and end, both included.
func SpanDays(start, end string) (int, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if s.After(e) {
		return 0, ErrInvalidDateRange
	}

	return int((e.Unix()-s.Unix())/secondsPerDay) + 1, nil
}

// BillableDays is the multiplier applied to the stand's day price.
func (n NewReservation) BillableDays() (int, error) {
	span, err := SpanDays(n.StartDate, n.EndDate)
	if err != nil {
		return 0, err
	}
	days := span
	if n.Days > 0 {
		days = n.Days
	}
	if days > MaxReservationDays {
		return 0, ErrReservationTooLong
	}

	return days, nil
}

func (r *Reservation) IsPaid() bool {
	return r.PaymentStatus == PaymentPaid
}

// MarkPaid settles the reservation. Settling twice is a no-op.
func (r *Reservation) MarkPaid() {
	r.PaymentStatus = PaymentPaid
}

// MarkOverdue flags an unpaid reservation whose last day is before today.
// It reports whether the status changed.
func (r *Reservation) MarkOverdue(today string) bool {
	if r.PaymentStatus != PaymentUnpaid || r.EndDate >= today {
		return false
	}
	r.PaymentStatus = PaymentOverdue

	return true
}

// Inspect records a controller's cleaning verdict. The note survives only on
// rejection.
func (r *Reservation) Inspect(status CleaningStatus, note string) error {
	switch status {
	case CleaningApproved:
		r.CleaningStatus = status
		r.CleaningNote = ""
	case CleaningRejected:
		r.CleaningStatus = status
		r.CleaningNote = note
	default:
		return fmt.Errorf("%w: cleaning status %q is not a verdict", ErrInvalidStatusTransition, status)
	}

	return nil
}

// ActiveOn reports whether date falls within the reservation.
func (r *Reservation) ActiveOn(date string) bool {
	return r.StartDate <= date && date <= r.EndDate
}
