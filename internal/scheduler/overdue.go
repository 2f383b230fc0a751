package scheduler

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/marketstall/market-api/internal/config"
)

const sweepTimeout = time.Minute

type OverdueMarker interface {
	MarkOverdueReservations(ctx context.Context, today time.Time) (int64, error)
}

// Scheduler runs the daily sweep that flags unpaid reservations whose last
// day has passed.
type Scheduler struct {
	cron gocron.Scheduler
	svc  OverdueMarker
	loc  *time.Location
	now  func() time.Time
}

func New(conf *config.SchedulerConfig, svc OverdueMarker) (*Scheduler, error) {
	loc, err := time.LoadLocation(conf.Location)
	if err != nil {
		return nil, fmt.Errorf("time.LoadLocation -> %w", err)
	}

	at, err := time.Parse("15:04", conf.OverdueAt)
	if err != nil {
		return nil, fmt.Errorf("invalid overdue_at %q -> %w", conf.OverdueAt, err)
	}

	cron, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("gocron.NewScheduler -> %w", err)
	}

	s := &Scheduler{
		cron: cron,
		svc:  svc,
		loc:  loc,
		now:  time.Now,
	}

	_, err = cron.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(uint(at.Hour()), uint(at.Minute()), 0),
			),
		),
		gocron.NewTask(s.SweepOverdue),
		gocron.WithName("overdue-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("cron.NewJob -> %w", err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	zap.L().Info("overdue sweep scheduled", zap.String("location", s.loc.String()))
}

func (s *Scheduler) Shutdown() error {
	return s.cron.Shutdown()
}

// SweepOverdue marks reservations overdue as of today in the market's time
// zone.
func (s *Scheduler) SweepOverdue() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	today := s.now().In(s.loc)

	n, err := s.svc.MarkOverdueReservations(ctx, today)
	if err != nil {
		zap.L().Error("overdue sweep failed", zap.Error(err))
		return
	}

	zap.L().Info("overdue sweep finished",
		zap.String("today", today.Format("2006-01-02")),
		zap.Int64("marked", n),
	)
}
