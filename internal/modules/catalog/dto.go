package catalog

import (
	"time"

	"github.com/loopin51/KSHSManagement/internal/domain"
)

// EquipmentView is a catalog row: the item plus its free units at the
// queried instant. AvailableQuantity is clamped at zero for display; the
// raw engine value stays internal.
type EquipmentView struct {
	domain.Equipment
	AvailableQuantity int `json:"available_quantity"`
}

// EquipmentDetail adds the rental timeline shown on the item page.
type EquipmentDetail struct {
	EquipmentView
	Rentals []domain.Rental `json:"rentals"`
}

type AvailabilityView struct {
	EquipmentID       string    `json:"equipment_id"`
	At                time.Time `json:"at"`
	AvailableQuantity int       `json:"available_quantity"`
}
