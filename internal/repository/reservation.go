package repository

import (
	"context"
	"fmt"

	"github.com/marketstall/market-api/internal/domain"
	"github.com/marketstall/market-api/internal/repository/dao"
)

var (
	ErrReservationNotFound = dao.ErrReservationNotFound
)

type ReservationDAO interface {
	Find(ctx context.Context, q dao.ReservationQuery) ([]dao.Reservation, error)
	FindByID(ctx context.Context, id string) (dao.Reservation, error)
	InsertClaiming(ctx context.Context, reservation dao.Reservation, available, reserved string) (dao.Reservation, error)
	UpdatePayment(ctx context.Context, id, status string) error
	UpdateCleaning(ctx context.Context, id, status, note string) (dao.Reservation, error)
	MarkOverdue(ctx context.Context, today, unpaid, overdue string) (int64, error)
}

type ReservationRepository struct {
	dao ReservationDAO
}

func NewReservationRepository(dao ReservationDAO) *ReservationRepository {
	return &ReservationRepository{
		dao: dao,
	}
}

func reservationDomainToDao(r domain.Reservation) dao.Reservation {
	return dao.Reservation{
		ID:             r.ID,
		StandID:        r.StandID,
		UserID:         r.UserID,
		UserName:       r.UserName,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		TotalAmount:    r.TotalAmount,
		PaymentStatus:  string(r.PaymentStatus),
		CleaningStatus: string(r.CleaningStatus),
		CleaningNote:   r.CleaningNote,
		CreatedAt:      r.CreatedAt,
	}
}

func reservationDaoToDomain(r dao.Reservation) domain.Reservation {
	return domain.Reservation{
		ID:             r.ID,
		StandID:        r.StandID,
		UserID:         r.UserID,
		UserName:       r.UserName,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		TotalAmount:    r.TotalAmount,
		PaymentStatus:  domain.PaymentStatus(r.PaymentStatus),
		CleaningStatus: domain.CleaningStatus(r.CleaningStatus),
		CleaningNote:   r.CleaningNote,
		CreatedAt:      r.CreatedAt,
	}
}

func (r *ReservationRepository) Find(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	reservations, err := r.dao.Find(ctx, dao.ReservationQuery{
		Date:    filter.Date,
		StandID: filter.StandID,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.Find -> %w", err)
	}

	result := make([]domain.Reservation, len(reservations))
	for i, res := range reservations {
		result[i] = reservationDaoToDomain(res)
	}

	return result, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (domain.Reservation, error) {
	reservation, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return reservationDaoToDomain(reservation), nil
}

// CreateClaiming stores the reservation and reserves its stand atomically.
func (r *ReservationRepository) CreateClaiming(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	created, err := r.dao.InsertClaiming(
		ctx,
		reservationDomainToDao(reservation),
		string(domain.StandAvailable),
		string(domain.StandReserved),
	)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.InsertClaiming -> %w", err)
	}

	return reservationDaoToDomain(created), nil
}

func (r *ReservationRepository) UpdatePayment(ctx context.Context, id string, status domain.PaymentStatus) error {
	if err := r.dao.UpdatePayment(ctx, id, string(status)); err != nil {
		return fmt.Errorf("r.dao.UpdatePayment -> %w", err)
	}

	return nil
}

func (r *ReservationRepository) UpdateCleaning(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error) {
	updated, err := r.dao.UpdateCleaning(ctx, reservation.ID, string(reservation.CleaningStatus), reservation.CleaningNote)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.UpdateCleaning -> %w", err)
	}

	return reservationDaoToDomain(updated), nil
}

func (r *ReservationRepository) MarkOverdue(ctx context.Context, today string) (int64, error) {
	n, err := r.dao.MarkOverdue(ctx, today, string(domain.PaymentUnpaid), string(domain.PaymentOverdue))
	if err != nil {
		return 0, fmt.Errorf("r.dao.MarkOverdue -> %w", err)
	}

	return n, nil
}
