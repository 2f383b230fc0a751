package repository

import (
	"context"
	"fmt"

	"github.com/marketstall/market-api/internal/domain"
	"github.com/marketstall/market-api/internal/repository/dao"
)

var (
	ErrIncidentNotFound = dao.ErrIncidentNotFound
	ErrIncidentConflict = dao.ErrIncidentConflict
)

type IncidentDAO interface {
	FindAll(ctx context.Context) ([]dao.Incident, error)
	FindByID(ctx context.Context, id string) (dao.Incident, error)
	Insert(ctx context.Context, incident dao.Incident) (dao.Incident, error)
	UpdateStatus(ctx context.Context, id, from, to string) (dao.Incident, error)
}

type IncidentRepository struct {
	dao IncidentDAO
}

func NewIncidentRepository(dao IncidentDAO) *IncidentRepository {
	return &IncidentRepository{
		dao: dao,
	}
}

func incidentDomainToDao(i domain.Incident) dao.Incident {
	var standID *string
	if i.StandID != "" {
		id := i.StandID
		standID = &id
	}

	return dao.Incident{
		ID:          i.ID,
		StandID:     standID,
		ReporterID:  i.ReporterID,
		Type:        string(i.Type),
		Description: i.Description,
		Status:      string(i.Status),
		CreatedAt:   i.CreatedAt,
	}
}

func incidentDaoToDomain(i dao.Incident) domain.Incident {
	incident := domain.Incident{
		ID:          i.ID,
		ReporterID:  i.ReporterID,
		Type:        domain.IncidentType(i.Type),
		Description: i.Description,
		Status:      domain.IncidentStatus(i.Status),
		CreatedAt:   i.CreatedAt,
	}
	if i.StandID != nil {
		incident.StandID = *i.StandID
	}

	return incident
}

func (r *IncidentRepository) FindAll(ctx context.Context) ([]domain.Incident, error) {
	incidents, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	result := make([]domain.Incident, len(incidents))
	for i, inc := range incidents {
		result[i] = incidentDaoToDomain(inc)
	}

	return result, nil
}

func (r *IncidentRepository) FindByID(ctx context.Context, id string) (domain.Incident, error) {
	incident, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Incident{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return incidentDaoToDomain(incident), nil
}

func (r *IncidentRepository) Create(ctx context.Context, incident domain.Incident) (domain.Incident, error) {
	created, err := r.dao.Insert(ctx, incidentDomainToDao(incident))
	if err != nil {
		return domain.Incident{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return incidentDaoToDomain(created), nil
}

func (r *IncidentRepository) UpdateStatus(ctx context.Context, id string, from, to domain.IncidentStatus) (domain.Incident, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(from), string(to))
	if err != nil {
		return domain.Incident{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return incidentDaoToDomain(updated), nil
}
