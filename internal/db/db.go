package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marketstall/market-api/internal/config"
)

var ErrUnknownDriver = errors.New("unknown database driver")

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
}

// Open connects to the store selected by conf.Driver.
func Open(conf *config.DatabaseConfig) (*gorm.DB, error) {
	switch conf.Driver {
	case "", "sqlite":
		return OpenSQLite(conf.Path)
	case "postgres":
		return OpenPostgres(conf)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, conf.Driver)
	}
}

// OpenSQLite opens the single-file store at path with foreign keys enforced.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	// SQLite allows a single writer; one connection keeps claim transactions serialized.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func OpenPostgres(conf *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		conf.Host, conf.Port, conf.User, conf.Password, conf.Name, conf.SSLMode,
	)

	return openPostgresDSN(dsn)
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	return openPostgresDSN(url)
}

func openPostgresDSN(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return db, nil
}
