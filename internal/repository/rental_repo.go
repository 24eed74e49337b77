package repository

import (
	"context"
	"errors"
	"time"

	"github.com/loopin51/KSHSManagement/internal/domain"

	"gorm.io/gorm"
)

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

type rentalModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EquipmentID  string    `gorm:"column:equipment_id;index"`
	BorrowerName string    `gorm:"column:borrower_name"`
	Purpose      string    `gorm:"column:purpose"`
	StartTime    time.Time `gorm:"column:start_time"`
	EndTime      time.Time `gorm:"column:end_time"`
	Status       string    `gorm:"column:status;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (rentalModel) TableName() string { return "rentals" }

func toDomainRental(m rentalModel) *domain.Rental {
	return &domain.Rental{
		ID:           m.ID,
		EquipmentID:  m.EquipmentID,
		BorrowerName: m.BorrowerName,
		Purpose:      m.Purpose,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Status:       domain.RentalStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toRentalModel(r *domain.Rental) rentalModel {
	return rentalModel{
		ID:           r.ID,
		EquipmentID:  r.EquipmentID,
		BorrowerName: r.BorrowerName,
		Purpose:      r.Purpose,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toDomainRentals(models []rentalModel) []domain.Rental {
	out := make([]domain.Rental, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRental(m))
	}
	return out
}

// List returns every rental, newest window first. The ordering is for
// display; the availability engine never depends on it.
func (r *RentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	var models []rentalModel
	tx := r.db.WithContext(ctx).Order("start_time DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRentals(models), nil
}

func (r *RentalRepository) ListByEquipment(ctx context.Context, equipmentID string) ([]domain.Rental, error) {
	var models []rentalModel
	tx := r.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		Order("start_time DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRentals(models), nil
}

// ListConsuming returns rentals on an item whose status is one of the given
// set. The collision detector asks for pending+approved, the availability
// calculator for approved only.
func (r *RentalRepository) ListConsuming(ctx context.Context, equipmentID string, statuses ...domain.RentalStatus) ([]domain.Rental, error) {
	ss := make([]string, 0, len(statuses))
	for _, s := range statuses {
		ss = append(ss, string(s))
	}

	var models []rentalModel
	tx := r.db.WithContext(ctx).
		Where("equipment_id = ? AND status IN ?", equipmentID, ss).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRentals(models), nil
}

func (r *RentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	var m rentalModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainRental(m), nil
}

// Create inserts a single rental. The id is assigned by the database and the
// status is forced to pending regardless of what the caller set.
func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	return r.createIn(r.db.WithContext(ctx), rental)
}

// CreateBatch inserts all rentals inside one transaction. Either the whole
// multi-item request lands or none of it does.
func (r *RentalRepository) CreateBatch(ctx context.Context, rentals []*domain.Rental) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rental := range rentals {
			if err := r.createIn(tx, rental); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RentalRepository) createIn(tx *gorm.DB, rental *domain.Rental) error {
	now := time.Now().UTC()
	m := toRentalModel(rental)
	m.ID = 0
	m.Status = string(domain.RentalPending)
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := tx.Create(&m).Error; err != nil {
		return err
	}
	*rental = *toDomainRental(m)
	return nil
}

// UpdateStatus moves a rental along the lifecycle state machine and returns
// the updated record. Unknown ids fail with ErrNotFound, disallowed moves
// with ErrInvalidTransition.
func (r *RentalRepository) UpdateStatus(ctx context.Context, id int64, next domain.RentalStatus) (*domain.Rental, error) {
	var updated *domain.Rental
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m rentalModel
		if err := tx.First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !domain.RentalStatus(m.Status).CanTransitionTo(next) {
			return ErrInvalidTransition
		}

		m.Status = string(next)
		m.UpdatedAt = time.Now().UTC()
		if err := tx.Model(&rentalModel{}).Where("id = ?", id).
			Updates(map[string]any{"status": m.Status, "updated_at": m.UpdatedAt}).Error; err != nil {
			return err
		}

		updated = toDomainRental(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *RentalRepository) CountByStatus(ctx context.Context, status domain.RentalStatus) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&rentalModel{}).Where("status = ?", string(status)).Count(&cnt)
	return cnt, tx.Error
}
