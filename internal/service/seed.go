package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketstall/market-api/internal/domain"
)

const seedReservationDays = 7

var seedStatuses = []domain.StandStatus{
	domain.StandAvailable,
	domain.StandAvailable,
	domain.StandOccupied,
	domain.StandReserved,
	domain.StandMaintenance,
}

type SeedRepository interface {
	Count(ctx context.Context) (int64, error)
	SeedGrid(ctx context.Context, stands []domain.Stand, reservations []domain.Reservation) (bool, error)
}

// Seeder fills an empty market with the stand grid and a week of sample
// reservations.
type Seeder struct {
	repo SeedRepository
	rnd  *rand.Rand
	now  func() time.Time
}

// NewSeeder uses randomSeed for reproducible markets; 0 seeds from the clock.
func NewSeeder(repo SeedRepository, randomSeed int64) *Seeder {
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}

	return &Seeder{
		repo: repo,
		rnd:  rand.New(rand.NewSource(randomSeed)),
		now:  time.Now,
	}
}

// SeedIfEmpty returns the number of stands created, 0 when the market already
// had stands.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("s.repo.Count -> %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	stands, reservations := s.Generate(s.now())

	seeded, err := s.repo.SeedGrid(ctx, stands, reservations)
	if err != nil {
		return 0, fmt.Errorf("s.repo.SeedGrid -> %w", err)
	}
	if !seeded {
		return 0, nil
	}

	zap.L().Info("seeded market",
		zap.Int("stands", len(stands)),
		zap.Int("reservations", len(reservations)),
	)

	return len(stands), nil
}

func (s *Seeder) Generate(today time.Time) ([]domain.Stand, []domain.Reservation) {
	locs := domain.GridLocations()
	stands := make([]domain.Stand, 0, len(locs))
	var reservations []domain.Reservation

	start := today.Format(domain.DateLayout)
	end := today.AddDate(0, 0, seedReservationDays-1).Format(domain.DateLayout)

	for i, loc := range locs {
		number := i + 1
		offer := domain.Offers[s.rnd.Intn(len(domain.Offers))]

		stand := domain.NewStand(offer, number, loc)
		stand.Status = seedStatuses[s.rnd.Intn(len(seedStatuses))]
		stands = append(stands, stand)

		if stand.Status != domain.StandOccupied && stand.Status != domain.StandReserved {
			continue
		}

		payment := domain.PaymentUnpaid
		if s.rnd.Float64() > 0.3 {
			payment = domain.PaymentPaid
		}
		cleaning := domain.CleaningPending
		if s.rnd.Float64() > 0.5 {
			cleaning = domain.CleaningApproved
		}

		reservations = append(reservations, domain.Reservation{
			ID:             "R-" + uuid.NewString(),
			StandID:        stand.ID,
			UserID:         fmt.Sprintf("U-%d", s.rnd.Intn(1000)),
			UserName:       fmt.Sprintf("Najemca %d", number),
			StartDate:      start,
			EndDate:        end,
			TotalAmount:    stand.PriceDay * seedReservationDays,
			PaymentStatus:  payment,
			CleaningStatus: cleaning,
			CreatedAt:      today.UTC(),
		})
	}

	return stands, reservations
}
