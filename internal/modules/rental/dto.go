package rental

import "time"

// CreateRentalRequest is one borrowing request over one or more items
// sharing a single [start, end) window.
type CreateRentalRequest struct {
	EquipmentIDs []string  `json:"equipment_ids" binding:"required,min=1"`
	BorrowerName string    `json:"borrower_name" binding:"required"`
	Purpose      string    `json:"purpose" binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
}

// CheckCollisionRequest mirrors the pre-submit check the borrowing form runs.
type CheckCollisionRequest struct {
	EquipmentIDs []string  `json:"equipment_ids" binding:"required,min=1"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
}

// CollisionResult is a normal negative result, not an error: Collision true
// means the request would oversubscribe ConflictingItem somewhere inside the
// window, and Message is the user-facing explanation.
type CollisionResult struct {
	Collision       bool   `json:"collision"`
	Message         string `json:"message"`
	ConflictingItem string `json:"conflicting_item,omitempty"`
}
