package catalog

import (
	"context"
	"time"

	"github.com/loopin51/KSHSManagement/internal/domain"
)

type EquipmentRepository interface {
	Get(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	ListByDepartment(ctx context.Context, dept domain.Department) ([]domain.Equipment, error)
}

// AvailabilityCalculator is the read side of the rental engine.
type AvailabilityCalculator interface {
	AvailableQuantity(ctx context.Context, equipmentID string, at time.Time) (int, error)
	ListByEquipment(ctx context.Context, equipmentID string) ([]domain.Rental, error)
}
