package service

import (
	"context"
	"fmt"

	"github.com/marketstall/market-api/internal/domain"
)

type ReportService struct {
	stands       StandRepository
	reservations ReservationRepository
}

func NewReportService(stands StandRepository, reservations ReservationRepository) *ReportService {
	return &ReportService{
		stands:       stands,
		reservations: reservations,
	}
}

func (s *ReportService) Summary(ctx context.Context) (domain.Summary, error) {
	stands, err := s.stands.FindAll(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("s.stands.FindAll -> %w", err)
	}

	reservations, err := s.reservations.Find(ctx, domain.ReservationFilter{})
	if err != nil {
		return domain.Summary{}, fmt.Errorf("s.reservations.Find -> %w", err)
	}

	return domain.Summarize(stands, reservations), nil
}
