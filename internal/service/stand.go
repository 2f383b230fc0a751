package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/marketstall/market-api/internal/domain"
	"github.com/marketstall/market-api/internal/events"
	"github.com/marketstall/market-api/internal/metrics"
	"github.com/marketstall/market-api/internal/repository"
)

var (
	ErrStandNotFound           = repository.ErrStandNotFound
	ErrStandExists             = repository.ErrStandExists
	ErrStandNotAvailable       = repository.ErrStandNotAvailable
	ErrStandConflict           = repository.ErrStandConflict
	ErrInvalidStatusTransition = domain.ErrInvalidStatusTransition
	ErrUnknownCategory         = errors.New("unknown stand category code")
)

type StandRepository interface {
	FindAll(ctx context.Context) ([]domain.Stand, error)
	FindByID(ctx context.Context, id string) (domain.Stand, error)
	CreateNext(ctx context.Context, offer domain.CategoryOffer, loc domain.Location) (domain.Stand, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.StandStatus) (domain.Stand, error)
}

type StandService struct {
	repo      StandRepository
	publisher events.Publisher
	metrics   *metrics.Metrics
}

func NewStandService(repo StandRepository, publisher events.Publisher, m *metrics.Metrics) *StandService {
	return &StandService{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
	}
}

func (s *StandService) GetStands(ctx context.Context) ([]domain.Stand, error) {
	stands, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return stands, nil
}

func (s *StandService) GetStand(ctx context.Context, id string) (domain.Stand, error) {
	stand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return stand, nil
}

func (s *StandService) CreateStand(ctx context.Context, categoryCode string, loc domain.Location) (domain.Stand, error) {
	offer, ok := domain.OfferByCode(categoryCode)
	if !ok {
		return domain.Stand{}, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryCode)
	}

	stand, err := s.repo.CreateNext(ctx, offer, loc)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.CreateNext -> %w", err)
	}

	publish(ctx, s.publisher, events.New(events.StandCreated, stand.ID, stand.ID, string(stand.Status)))

	return stand, nil
}

// UpdateStatus applies a manual status change made by the office.
func (s *StandService) UpdateStatus(ctx context.Context, id string, next domain.StandStatus) (domain.Stand, error) {
	stand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	from := stand.Status
	if err := stand.TransitionTo(next); err != nil {
		return domain.Stand{}, err
	}
	if from == next {
		return stand, nil
	}

	updated, err := s.repo.UpdateStatus(ctx, id, from, next)
	if err != nil {
		return domain.Stand{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	s.metrics.StandTransition(string(next))
	publish(ctx, s.publisher, events.New(events.StandStatusChanged, updated.ID, updated.ID, string(updated.Status)))

	return updated, nil
}
