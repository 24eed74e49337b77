package rental

import (
	"context"

	"github.com/loopin51/KSHSManagement/internal/domain"
)

// RentalRepository defines the rental store operations the engine needs.
type RentalRepository interface {
	List(ctx context.Context) ([]domain.Rental, error)
	ListByEquipment(ctx context.Context, equipmentID string) ([]domain.Rental, error)
	ListConsuming(ctx context.Context, equipmentID string, statuses ...domain.RentalStatus) ([]domain.Rental, error)
	CreateBatch(ctx context.Context, rentals []*domain.Rental) error
}

// EquipmentRepository defines the inventory lookups the engine needs.
type EquipmentRepository interface {
	Get(ctx context.Context, id string) (*domain.Equipment, error)
}

// EventPublisher pushes rental activity to live status views. Optional; a
// nil publisher disables the feed.
type EventPublisher interface {
	PublishRentalsRequested(ctx context.Context, rentals []domain.Rental) error
}
