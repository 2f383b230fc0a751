package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Reservation struct {
	ID             string `gorm:"primaryKey"`
	StandID        string `gorm:"not null;index"`
	Stand          Stand  `gorm:"foreignKey:StandID"`
	UserID         string `gorm:"not null"`
	UserName       string `gorm:"not null"`
	StartDate      string `gorm:"not null"` // YYYY-MM-DD
	EndDate        string `gorm:"not null;index"`
	TotalAmount    int    `gorm:"not null"`
	PaymentStatus  string `gorm:"not null;index"`
	CleaningStatus string `gorm:"not null"`
	CleaningNote   string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

type ReservationQuery struct {
	Date    string
	StandID string
}

type ReservationDAO struct {
	db *gorm.DB
}

func NewReservationDAO(db *gorm.DB) *ReservationDAO {
	return &ReservationDAO{
		db: db,
	}
}

func (d *ReservationDAO) Find(ctx context.Context, q ReservationQuery) ([]Reservation, error) {
	var reservations []Reservation

	tx := d.db.WithContext(ctx).Order("created_at")
	if q.Date != "" {
		tx = tx.Where("start_date <= ? AND end_date >= ?", q.Date, q.Date)
	}
	if q.StandID != "" {
		tx = tx.Where("stand_id = ?", q.StandID)
	}

	if err := tx.Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

func (d *ReservationDAO) FindByID(ctx context.Context, id string) (Reservation, error) {
	var reservation Reservation

	result := d.db.WithContext(ctx).First(&reservation, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Reservation{}, ErrReservationNotFound
		}

		return Reservation{}, result.Error
	}

	return reservation, nil
}

// InsertClaiming flips the stand from AVAILABLE to RESERVED and stores the
// reservation in the same transaction. Only one of several concurrent claims
// on a stand can succeed; the rest get ErrStandNotAvailable.
func (d *ReservationDAO) InsertClaiming(ctx context.Context, reservation Reservation, available, reserved string) (Reservation, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Stand{}).
			Where("id = ? AND status = ?", reservation.StandID, available).
			Updates(map[string]any{"status": reserved, "updated_at": time.Now()})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return standMissOrConflict(tx, reservation.StandID, ErrStandNotAvailable)
		}

		if err := tx.Omit(clause.Associations).Create(&reservation).Error; err != nil {
			if isForeignKeyViolation(err) {
				return ErrStandNotFound
			}
			return err
		}

		return nil
	})
	if err != nil {
		return Reservation{}, err
	}

	return reservation, nil
}

// UpdatePayment sets the payment status of an existing reservation.
func (d *ReservationDAO) UpdatePayment(ctx context.Context, id, status string) error {
	return d.updateFields(ctx, id, map[string]any{"payment_status": status})
}

func (d *ReservationDAO) UpdateCleaning(ctx context.Context, id, status, note string) (Reservation, error) {
	if err := d.updateFields(ctx, id, map[string]any{"cleaning_status": status, "cleaning_note": note}); err != nil {
		return Reservation{}, err
	}

	return d.FindByID(ctx, id)
}

// MarkOverdue moves every reservation still in unpaid whose end date is
// before today to overdue, and returns how many rows changed.
func (d *ReservationDAO) MarkOverdue(ctx context.Context, today, unpaid, overdue string) (int64, error) {
	result := d.db.WithContext(ctx).Model(&Reservation{}).
		Where("payment_status = ? AND end_date < ?", unpaid, today).
		Updates(map[string]any{"payment_status": overdue, "updated_at": time.Now()})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (d *ReservationDAO) updateFields(ctx context.Context, id string, fields map[string]any) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Reservation{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrReservationNotFound
		}

		fields["updated_at"] = time.Now()
		return tx.Model(&Reservation{}).Where("id = ?", id).Updates(fields).Error
	})
}
