package app

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/marketstall/market-api/internal/api"
	"github.com/marketstall/market-api/internal/config"
	"github.com/marketstall/market-api/internal/db"
	"github.com/marketstall/market-api/internal/events"
	"github.com/marketstall/market-api/internal/logger"
	"github.com/marketstall/market-api/internal/metrics"
	"github.com/marketstall/market-api/internal/repository"
	"github.com/marketstall/market-api/internal/repository/dao"
	"github.com/marketstall/market-api/internal/scheduler"
	"github.com/marketstall/market-api/internal/service"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.API.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	err = config.Watch(configPath, func(c *config.AppConfig) {
		if err := logger.SetLevel(c.API.LogLevel); err != nil {
			zap.L().Warn("ignoring log level change", zap.Error(err))
			return
		}
		zap.L().Info("log level changed", zap.Stringer("level", logger.Level()))
	})
	if err != nil {
		zap.L().Warn("config file is not watched", zap.Error(err))
	}

	dbURL := os.Getenv("DATABASE_URL")
	var gormDB *gorm.DB
	if dbURL != "" {
		gormDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		gormDB, err = db.Open(conf.Database)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(gormDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	if conf.Seed.Enabled {
		seeder := service.NewSeeder(repository.NewStandRepository(dao.NewStandDAO(gormDB)), conf.Seed.RandomSeed)
		if _, err = seeder.SeedIfEmpty(context.Background()); err != nil {
			return fmt.Errorf("failed to seed the market -> %w", err)
		}
	}

	publisher, closePublisher := newPublisher(conf.Redis)
	defer closePublisher()

	m := metrics.New()

	s := api.NewServer(conf, gormDB, publisher, m)
	defer s.Close()

	if conf.Scheduler.Enabled {
		reservations := service.NewReservationService(
			repository.NewReservationRepository(dao.NewReservationDAO(gormDB)),
			repository.NewStandRepository(dao.NewStandDAO(gormDB)),
			s.Publisher,
			m,
		)
		sched, err := scheduler.New(conf.Scheduler, reservations)
		if err != nil {
			return fmt.Errorf("failed to initialize scheduler -> %w", err)
		}
		sched.Start()
		defer sched.Shutdown()
	}

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// newPublisher publishes to redis when an address is configured. An
// unreachable redis is logged, not fatal.
func newPublisher(conf *config.RedisConfig) (events.Publisher, func()) {
	if conf.Addr == "" {
		return events.NopPublisher{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		zap.L().Warn("redis is unreachable, events may be lost", zap.String("addr", conf.Addr), zap.Error(err))
	}

	p := events.NewRedisPublisher(client, conf.Channel)

	return p, func() {
		if err := p.Close(); err != nil {
			zap.L().Warn("failed to close redis client", zap.Error(err))
		}
	}
}
