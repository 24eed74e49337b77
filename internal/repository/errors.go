// Package repository persists equipment and rentals behind gorm. Sentinel
// errors returned here let services and handlers distinguish failure kinds
// without inspecting driver-specific error values.
package repository

import "errors"

// ErrNotFound is returned when an equipment or rental id does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateID is returned when adding equipment whose id already exists.
var ErrDuplicateID = errors.New("duplicate equipment id")

// ErrInvalidTransition is returned when a rental status update does not
// follow the pending -> approved/rejected, approved -> returned state machine.
var ErrInvalidTransition = errors.New("invalid status transition")
