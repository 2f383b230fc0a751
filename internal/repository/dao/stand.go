package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Stand struct {
	ID       string `gorm:"primaryKey"`
	Type     string `gorm:"not null"` // "PERMANENT", "TEMPORARY" or "MOBILE"
	Category string `gorm:"not null"`
	Number   int    `gorm:"uniqueIndex;not null"`
	PriceDay int    `gorm:"not null"`
	Status   string `gorm:"not null;index"`
	X        int    `gorm:"not null"`
	Y        int    `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type StandDAO struct {
	db *gorm.DB
}

func NewStandDAO(db *gorm.DB) *StandDAO {
	return &StandDAO{
		db: db,
	}
}

func (d *StandDAO) FindAll(ctx context.Context) ([]Stand, error) {
	var stands []Stand

	result := d.db.WithContext(ctx).Order("number").Find(&stands)
	if result.Error != nil {
		return nil, result.Error
	}

	return stands, nil
}

func (d *StandDAO) FindByID(ctx context.Context, id string) (Stand, error) {
	var stand Stand

	result := d.db.WithContext(ctx).First(&stand, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Stand{}, ErrStandNotFound
		}

		return Stand{}, result.Error
	}

	return stand, nil
}

func (d *StandDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Stand{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Insert stores a new stand. Both the id and the number must be unused.
func (d *StandDAO) Insert(ctx context.Context, stand Stand) (Stand, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertStand(tx, &stand)
	})
	if err != nil {
		return Stand{}, err
	}

	return stand, nil
}

// InsertNext numbers the stand one past the highest number ever issued and
// stores it. Stands are never deleted, so numbers are never reused.
func (d *StandDAO) InsertNext(ctx context.Context, build func(number int) Stand) (Stand, error) {
	var stand Stand

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int
		if err := tx.Model(&Stand{}).Select("COALESCE(MAX(number), 0)").Scan(&last).Error; err != nil {
			return err
		}

		stand = build(last + 1)
		return insertStand(tx, &stand)
	})
	if err != nil {
		return Stand{}, err
	}

	return stand, nil
}

func insertStand(tx *gorm.DB, stand *Stand) error {
	var count int64
	if err := tx.Model(&Stand{}).Where("id = ? OR number = ?", stand.ID, stand.Number).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrStandExists
	}

	if err := tx.Create(stand).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrStandExists
		}
		return err
	}

	return nil
}

// UpdateStatus moves the stand to status only while it still holds from, so a
// concurrent claim cannot be overwritten.
func (d *StandDAO) UpdateStatus(ctx context.Context, id, from, to string) (Stand, error) {
	var stand Stand

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Stand{}).
			Where("id = ? AND status = ?", id, from).
			Updates(map[string]any{"status": to, "updated_at": time.Now()})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return standMissOrConflict(tx, id, ErrStandConflict)
		}

		return tx.First(&stand, "id = ?", id).Error
	})
	if err != nil {
		return Stand{}, err
	}

	return stand, nil
}

// SeedGrid inserts stands and their reservations in one transaction, and only
// when the stands table is still empty. It reports whether anything was written.
func (d *StandDAO) SeedGrid(ctx context.Context, stands []Stand, reservations []Reservation) (bool, error) {
	seeded := false

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Stand{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if len(stands) > 0 {
			if err := tx.Create(&stands).Error; err != nil {
				return err
			}
		}
		if len(reservations) > 0 {
			if err := tx.Omit(clause.Associations).Create(&reservations).Error; err != nil {
				return err
			}
		}
		seeded = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return seeded, nil
}

// standMissOrConflict tells a missing stand apart from one in another status.
func standMissOrConflict(tx *gorm.DB, id string, conflict error) error {
	var count int64
	if err := tx.Model(&Stand{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrStandNotFound
	}

	return conflict
}
