package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marketstall/market-api/internal/domain"
	"github.com/marketstall/market-api/internal/events"
	"github.com/marketstall/market-api/internal/metrics"
	"github.com/marketstall/market-api/internal/repository"
)

var (
	ErrIncidentNotFound = repository.ErrIncidentNotFound
	ErrIncidentConflict = repository.ErrIncidentConflict
)

type IncidentRepository interface {
	FindAll(ctx context.Context) ([]domain.Incident, error)
	FindByID(ctx context.Context, id string) (domain.Incident, error)
	Create(ctx context.Context, incident domain.Incident) (domain.Incident, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.IncidentStatus) (domain.Incident, error)
}

type IncidentService struct {
	repo      IncidentRepository
	publisher events.Publisher
	metrics   *metrics.Metrics
}

func NewIncidentService(repo IncidentRepository, publisher events.Publisher, m *metrics.Metrics) *IncidentService {
	return &IncidentService{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
	}
}

func (s *IncidentService) GetIncidents(ctx context.Context) ([]domain.Incident, error) {
	incidents, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return incidents, nil
}

func (s *IncidentService) ReportIncident(ctx context.Context, in domain.NewIncident) (domain.Incident, error) {
	incident := domain.Incident{
		ID:          "INC-" + uuid.NewString(),
		StandID:     in.StandID,
		ReporterID:  in.ReporterID,
		Type:        in.Type,
		Description: in.Description,
		Status:      domain.IncidentOpen,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, incident)
	if err != nil {
		return domain.Incident{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.metrics.IncidentReported(string(created.Type))
	publish(ctx, s.publisher, events.New(events.IncidentReported, created.ID, created.StandID, string(created.Status)))

	return created, nil
}

func (s *IncidentService) UpdateStatus(ctx context.Context, id string, next domain.IncidentStatus) (domain.Incident, error) {
	incident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Incident{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	from := incident.Status
	if err := incident.TransitionTo(next); err != nil {
		return domain.Incident{}, err
	}
	if from == next {
		return incident, nil
	}

	updated, err := s.repo.UpdateStatus(ctx, id, from, next)
	if err != nil {
		return domain.Incident{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	publish(ctx, s.publisher, events.New(events.IncidentStatus, updated.ID, updated.StandID, string(updated.Status)))

	return updated, nil
}
