package repository

import (
	"context"
	"errors"
	"time"

	"github.com/loopin51/KSHSManagement/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Department    string    `gorm:"column:department"`
	TotalQuantity int       `gorm:"column:total_quantity"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (equipmentModel) TableName() string { return "equipment" }

func toDomainEquipment(m equipmentModel) *domain.Equipment {
	return &domain.Equipment{
		ID:            m.ID,
		Name:          m.Name,
		Department:    domain.Department(m.Department),
		TotalQuantity: m.TotalQuantity,
		CreatedAt:     m.CreatedAt,
	}
}

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	return equipmentModel{
		ID:            e.ID,
		Name:          e.Name,
		Department:    string(e.Department),
		TotalQuantity: e.TotalQuantity,
		CreatedAt:     e.CreatedAt,
	}
}

func (r *EquipmentRepository) Get(ctx context.Context, id string) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainEquipment(m), nil
}

// List returns the whole catalog ordered by name.
func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	var models []equipmentModel
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Equipment, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainEquipment(m))
	}
	return out, nil
}

func (r *EquipmentRepository) ListByDepartment(ctx context.Context, dept domain.Department) ([]domain.Equipment, error) {
	var models []equipmentModel
	tx := r.db.WithContext(ctx).Where("department = ?", string(dept)).Order("name ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Equipment, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainEquipment(m))
	}
	return out, nil
}

// Create inserts a new catalog item. The id is caller-assigned; an existing
// id fails with ErrDuplicateID.
func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&equipmentModel{}).Where("id = ?", e.ID).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return ErrDuplicateID
	}

	m := toEquipmentModel(e)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		// Two concurrent adds can both pass the count above; under postgres
		// the primary key still catches the loser.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateID
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateID
		}
		return err
	}
	*e = *toDomainEquipment(m)
	return nil
}

func (r *EquipmentRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&equipmentModel{}).Count(&cnt)
	return cnt, tx.Error
}
