package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketstall/market-api/internal/domain"
)

func TestReportService_Summary(t *testing.T) {
	standRepo := newFakeStandRepo(
		seededStand(domain.Offers[0], 1, domain.StandReserved),
		seededStand(domain.Offers[0], 2, domain.StandAvailable),
		seededStand(domain.Offers[2], 3, domain.StandOccupied),
		seededStand(domain.Offers[3], 4, domain.StandMaintenance),
	)
	resRepo := newFakeReservationRepo(standRepo,
		domain.Reservation{ID: "R-1", StandID: "S-SP-1", TotalAmount: 420, PaymentStatus: domain.PaymentPaid},
		domain.Reservation{ID: "R-2", StandID: "T-GA-3", TotalAmount: 700, PaymentStatus: domain.PaymentUnpaid},
	)
	svc := NewReportService(standRepo, resRepo)

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, sum.StandCount)
	assert.Equal(t, 2, sum.ReservationCount)
	assert.Equal(t, 1120, sum.TotalRevenue)
	assert.Equal(t, 420, sum.PaidIncome)
	assert.Equal(t, 700, sum.PendingIncome)
	assert.Equal(t, 50, sum.OccupancyRate)
	assert.Equal(t, 1, sum.StandsByStatus[domain.StandMaintenance])
}

func TestReportService_Summary_StorageError(t *testing.T) {
	standRepo := newFakeStandRepo()
	standRepo.err = errors.New("connection reset")
	svc := NewReportService(standRepo, newFakeReservationRepo(standRepo))

	_, err := svc.Summary(context.Background())
	assert.ErrorContains(t, err, "s.stands.FindAll -> connection reset")
}
