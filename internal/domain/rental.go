package domain

import "time"

type RentalStatus string

const (
	RentalPending  RentalStatus = "pending"
	RentalApproved RentalStatus = "approved"
	RentalRejected RentalStatus = "rejected"
	RentalReturned RentalStatus = "returned"
)

func ParseRentalStatus(s string) (RentalStatus, bool) {
	switch RentalStatus(s) {
	case RentalPending, RentalApproved, RentalRejected, RentalReturned:
		return RentalStatus(s), true
	}
	return "", false
}

// CanTransitionTo reports whether the status may move to next.
// Allowed: pending -> approved, pending -> rejected, approved -> returned.
func (s RentalStatus) CanTransitionTo(next RentalStatus) bool {
	switch s {
	case RentalPending:
		return next == RentalApproved || next == RentalRejected
	case RentalApproved:
		return next == RentalReturned
	}
	return false
}

// Terminal statuses never consume stock and accept no further transitions.
func (s RentalStatus) Terminal() bool {
	return s == RentalRejected || s == RentalReturned
}

// Rental occupies one unit of an equipment item over the half-open window
// [StartTime, EndTime): an instant equal to EndTime is free again, so
// back-to-back rentals on the same unit never overlap.
//
// EquipmentID is a loose reference. Rentals pointing at a removed item are
// tolerated everywhere and treated as "unknown item".
type Rental struct {
	ID           int64        `json:"id"`
	EquipmentID  string       `json:"equipment_id" validate:"required"`
	BorrowerName string       `json:"borrower_name" validate:"required"`
	Purpose      string       `json:"purpose" validate:"required"`
	StartTime    time.Time    `json:"start_time" validate:"required"`
	EndTime      time.Time    `json:"end_time" validate:"required"`
	Status       RentalStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Occupies reports whether the rental's window covers the instant.
func (r *Rental) Occupies(at time.Time) bool {
	return !at.Before(r.StartTime) && at.Before(r.EndTime)
}
