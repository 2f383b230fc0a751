package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/marketstall/market-api/internal/domain"
	"github.com/marketstall/market-api/internal/events"
	"github.com/marketstall/market-api/internal/metrics"
	"github.com/marketstall/market-api/internal/repository"
)

var (
	ErrReservationNotFound = repository.ErrReservationNotFound
	ErrInvalidReservation  = errors.New("invalid reservation")
	ErrAmountMismatch      = errors.New("total amount does not match the stand price")
)

type ReservationRepository interface {
	Find(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)
	FindByID(ctx context.Context, id string) (domain.Reservation, error)
	CreateClaiming(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error)
	UpdatePayment(ctx context.Context, id string, status domain.PaymentStatus) error
	UpdateCleaning(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error)
	MarkOverdue(ctx context.Context, today string) (int64, error)
}

type StandFinder interface {
	FindByID(ctx context.Context, id string) (domain.Stand, error)
}

type ReservationService struct {
	repo      ReservationRepository
	stands    StandFinder
	publisher events.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewReservationService(repo ReservationRepository, stands StandFinder, publisher events.Publisher, m *metrics.Metrics) *ReservationService {
	return &ReservationService{
		repo:      repo,
		stands:    stands,
		publisher: publisher,
		metrics:   m,
		now:       time.Now,
	}
}

func (s *ReservationService) GetReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	reservations, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return reservations, nil
}

func (s *ReservationService) GetReservation(ctx context.Context, id string) (domain.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reservation, nil
}

// CreateReservation prices the reservation from the stand and claims the
// stand. Payment and cleaning always start UNPAID and PENDING.
func (s *ReservationService) CreateReservation(ctx context.Context, in domain.NewReservation) (domain.Reservation, error) {
	days, err := in.BillableDays()
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: %w", ErrInvalidReservation, err)
	}

	stand, err := s.stands.FindByID(ctx, in.StandID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.stands.FindByID -> %w", err)
	}
	if !stand.IsClaimable() {
		s.metrics.ClaimRejected()
		return domain.Reservation{}, fmt.Errorf("stand %s is %s -> %w", stand.ID, stand.Status, ErrStandNotAvailable)
	}

	if stand.PriceDay < 0 || days > math.MaxInt/max(stand.PriceDay, 1) {
		return domain.Reservation{}, fmt.Errorf("%w: price %d x %d days overflows", ErrInvalidReservation, stand.PriceDay, days)
	}
	amount := stand.PriceDay * days
	if in.TotalAmount != 0 && in.TotalAmount != amount {
		return domain.Reservation{}, fmt.Errorf("%w: got %d, want %d", ErrAmountMismatch, in.TotalAmount, amount)
	}

	reservation := domain.Reservation{
		ID:             "R-" + uuid.NewString(),
		StandID:        stand.ID,
		UserID:         in.UserID,
		UserName:       in.UserName,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		TotalAmount:    amount,
		PaymentStatus:  domain.PaymentUnpaid,
		CleaningStatus: domain.CleaningPending,
		CreatedAt:      s.now().UTC(),
	}

	created, err := s.repo.CreateClaiming(ctx, reservation)
	if err != nil {
		if errors.Is(err, ErrStandNotAvailable) {
			s.metrics.ClaimRejected()
		}
		return domain.Reservation{}, fmt.Errorf("s.repo.CreateClaiming -> %w", err)
	}

	s.metrics.ReservationCreated()
	publish(ctx, s.publisher, events.New(events.ReservationCreated, created.ID, created.StandID, string(created.PaymentStatus)))

	return created, nil
}

// MarkPaid settles a reservation. Paying a PAID reservation changes nothing.
func (s *ReservationService) MarkPaid(ctx context.Context, id string) (domain.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if reservation.IsPaid() {
		return reservation, nil
	}

	reservation.MarkPaid()
	if err := s.repo.UpdatePayment(ctx, id, reservation.PaymentStatus); err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.UpdatePayment -> %w", err)
	}

	s.metrics.PaymentSettled()
	publish(ctx, s.publisher, events.New(events.ReservationPaid, reservation.ID, reservation.StandID, string(reservation.PaymentStatus)))

	return reservation, nil
}

func (s *ReservationService) UpdateCleaningStatus(ctx context.Context, id string, status domain.CleaningStatus, note string) (domain.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := reservation.Inspect(status, note); err != nil {
		return domain.Reservation{}, err
	}

	updated, err := s.repo.UpdateCleaning(ctx, reservation)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("s.repo.UpdateCleaning -> %w", err)
	}

	publish(ctx, s.publisher, events.New(events.ReservationCleaning, updated.ID, updated.StandID, string(updated.CleaningStatus)))

	return updated, nil
}

// MarkOverdueReservations flags UNPAID reservations that ended before today.
func (s *ReservationService) MarkOverdueReservations(ctx context.Context, today time.Time) (int64, error) {
	n, err := s.repo.MarkOverdue(ctx, today.Format(domain.DateLayout))
	if err != nil {
		return 0, fmt.Errorf("s.repo.MarkOverdue -> %w", err)
	}

	if n > 0 {
		s.metrics.Overdue(n)
		publish(ctx, s.publisher, events.New(events.ReservationsOverdue, "", "", string(domain.PaymentOverdue)))
	}

	return n, nil
}
