package admin

import (
	"context"

	"github.com/loopin51/KSHSManagement/internal/domain"
)

type RentalRepository interface {
	List(ctx context.Context) ([]domain.Rental, error)
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	UpdateStatus(ctx context.Context, id int64, next domain.RentalStatus) (*domain.Rental, error)
	CountByStatus(ctx context.Context, status domain.RentalStatus) (int64, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	List(ctx context.Context) ([]domain.Equipment, error)
	Count(ctx context.Context) (int64, error)
}

// EventPublisher pushes status changes to live status views. Optional.
type EventPublisher interface {
	PublishRentalStatusChanged(ctx context.Context, rental domain.Rental) error
}
