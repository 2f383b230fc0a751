package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrStandNotFound       = errors.New("stand not found")
	ErrStandExists         = errors.New("stand already exists")
	ErrStandNotAvailable   = errors.New("stand is not available")
	ErrStandConflict       = errors.New("stand status changed concurrently")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrIncidentNotFound    = errors.New("incident not found")
	ErrIncidentConflict    = errors.New("incident status changed concurrently")
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Stand{},
		&Reservation{},
		&Incident{},
	)
}

// isForeignKeyViolation covers both raw PostgreSQL errors and the errors gorm
// translates for drivers that support it.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
