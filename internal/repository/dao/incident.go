package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Incident struct {
	ID          string  `gorm:"primaryKey"`
	StandID     *string `gorm:"index"`
	Stand       *Stand  `gorm:"foreignKey:StandID"`
	ReporterID  string  `gorm:"not null"`
	Type        string  `gorm:"not null"` // "DAMAGE", "CLEANLINESS", "UNAUTHORIZED" or "OTHER"
	Description string
	Status      string `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

type IncidentDAO struct {
	db *gorm.DB
}

func NewIncidentDAO(db *gorm.DB) *IncidentDAO {
	return &IncidentDAO{
		db: db,
	}
}

func (d *IncidentDAO) FindAll(ctx context.Context) ([]Incident, error) {
	var incidents []Incident

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&incidents)
	if result.Error != nil {
		return nil, result.Error
	}

	return incidents, nil
}

func (d *IncidentDAO) FindByID(ctx context.Context, id string) (Incident, error) {
	var incident Incident

	result := d.db.WithContext(ctx).First(&incident, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Incident{}, ErrIncidentNotFound
		}

		return Incident{}, result.Error
	}

	return incident, nil
}

func (d *IncidentDAO) Insert(ctx context.Context, incident Incident) (Incident, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if incident.StandID != nil {
			var count int64
			if err := tx.Model(&Stand{}).Where("id = ?", *incident.StandID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrStandNotFound
			}
		}

		if err := tx.Omit(clause.Associations).Create(&incident).Error; err != nil {
			if isForeignKeyViolation(err) {
				return ErrStandNotFound
			}
			return err
		}

		return nil
	})
	if err != nil {
		return Incident{}, err
	}

	return incident, nil
}

// UpdateStatus writes status only if the incident still holds from.
func (d *IncidentDAO) UpdateStatus(ctx context.Context, id, from, to string) (Incident, error) {
	var incident Incident

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Incident{}).
			Where("id = ? AND status = ?", id, from).
			Updates(map[string]any{"status": to, "updated_at": time.Now()})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&Incident{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrIncidentNotFound
			}
			return ErrIncidentConflict
		}

		return tx.First(&incident, "id = ?", id).Error
	})
	if err != nil {
		return Incident{}, err
	}

	return incident, nil
}
