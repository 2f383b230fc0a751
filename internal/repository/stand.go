package repository

import (
	"context"
	"fmt"

	"github.com/marketstall/market-api/internal/domain"
	"github.com/marketstall/market-api/internal/repository/dao"
)

var (
	ErrStandNotFound     = dao.ErrStandNotFound
	ErrStandExists       = dao.ErrStandExists
	ErrStandNotAvailable = dao.ErrStandNotAvailable
	ErrStandConflict     = dao.ErrStandConflict
)

type StandDAO interface {
	FindAll(ctx context.Context) ([]dao.Stand, error)
	FindByID(ctx context.Context, id string) (dao.Stand, error)
	Count(ctx context.Context) (int64, error)
	InsertNext(ctx context.Context, build func(number int) dao.Stand) (dao.Stand, error)
	UpdateStatus(ctx context.Context, id, from, to string) (dao.Stand, error)
	SeedGrid(ctx context.Context, stands []dao.Stand, reservations []dao.Reservation) (bool, error)
}

type StandRepository struct {
	dao StandDAO
}

func NewStandRepository(dao StandDAO) *StandRepository {
	return &StandRepository{
		dao: dao,
	}
}

func standDomainToDao(s domain.Stand) dao.Stand {
	return dao.Stand{
		ID:       s.ID,
		Type:     string(s.Type),
		Category: string(s.Category),
		Number:   s.Number,
		PriceDay: s.PriceDay,
		Status:   string(s.Status),
		X:        s.Location.X,
		Y:        s.Location.Y,
	}
}

func standDaoToDomain(s dao.Stand) domain.Stand {
	return domain.Stand{
		ID:       s.ID,
		Type:     domain.StandType(s.Type),
		Category: domain.StandCategory(s.Category),
		Number:   s.Number,
		Location: domain.Location{X: s.X, Y: s.Y},
		PriceDay: s.PriceDay,
		Status:   domain.StandStatus(s.Status),
	}
}

func (r *StandRepository) FindAll(ctx context.Context) ([]domain.Stand, error) {
	stands, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	result := make([]domain.Stand, len(stands))
	for i, s := range stands {
		result[i] = standDaoToDomain(s)
	}

	return result, nil
}

func (r *StandRepository) FindByID(ctx context.Context, id string) (domain.Stand, error) {
	stand, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return standDaoToDomain(stand), nil
}

func (r *StandRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

// CreateNext stores a stand of the offered category at loc, numbered after
// every stand created so far.
func (r *StandRepository) CreateNext(ctx context.Context, offer domain.CategoryOffer, loc domain.Location) (domain.Stand, error) {
	created, err := r.dao.InsertNext(ctx, func(number int) dao.Stand {
		return standDomainToDao(domain.NewStand(offer, number, loc))
	})
	if err != nil {
		return domain.Stand{}, fmt.Errorf("r.dao.InsertNext -> %w", err)
	}

	return standDaoToDomain(created), nil
}

func (r *StandRepository) UpdateStatus(ctx context.Context, id string, from, to domain.StandStatus) (domain.Stand, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(from), string(to))
	if err != nil {
		return domain.Stand{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return standDaoToDomain(updated), nil
}

func (r *StandRepository) SeedGrid(ctx context.Context, stands []domain.Stand, reservations []domain.Reservation) (bool, error) {
	daoStands := make([]dao.Stand, len(stands))
	for i, s := range stands {
		daoStands[i] = standDomainToDao(s)
	}

	daoReservations := make([]dao.Reservation, len(reservations))
	for i, res := range reservations {
		daoReservations[i] = reservationDomainToDao(res)
	}

	seeded, err := r.dao.SeedGrid(ctx, daoStands, daoReservations)
	if err != nil {
		return false, fmt.Errorf("r.dao.SeedGrid -> %w", err)
	}

	return seeded, nil
}
