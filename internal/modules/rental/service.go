package rental

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/loopin51/KSHSManagement/internal/domain"
	"github.com/loopin51/KSHSManagement/internal/repository"
)

type Service struct {
	rentals   RentalRepository
	equipment EquipmentRepository
	events    EventPublisher

	// Serializes check+create so two near-simultaneous requests cannot both
	// pass the collision check and jointly overcommit stock. Reservation
	// state has a single process owner, so an in-process lock is enough.
	mu sync.Mutex
}

func NewService(rentals RentalRepository, equipment EquipmentRepository, events EventPublisher) *Service {
	return &Service{
		rentals:   rentals,
		equipment: equipment,
		events:    events,
	}
}

// AvailableQuantity returns the free units of an item at the given instant:
// total stock minus approved rentals whose [start, end) covers it. Pending
// requests do not reduce this number; it is the display-facing count of
// units physically out. Unknown items report 0.
//
// The result can go negative if the stored data already violates stock
// limits. The raw value is returned; display code clamps.
func (s *Service) AvailableQuantity(ctx context.Context, equipmentID string, at time.Time) (int, error) {
	item, err := s.equipment.Get(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	occupying, err := s.rentals.ListConsuming(ctx, equipmentID, domain.RentalApproved)
	if err != nil {
		return 0, err
	}

	out := 0
	for i := range occupying {
		if occupying[i].Occupies(at) {
			out++
		}
	}
	return item.TotalQuantity - out, nil
}

// CheckCollision decides whether granting [start, end) over the given items
// would push any item's concurrent demand past its stock at some instant.
//
// Both approved and pending rentals consume capacity here, unlike in
// AvailableQuantity, so two overlapping requests cannot both be told
// "available" and both get approved later.
//
// Occupancy only changes where some rental starts, so it suffices to test
// start itself plus every existing start strictly inside the window instead
// of the whole continuum. The first conflict wins: items in input order,
// checkpoints in discovery order.
//
// Ids with no matching item are skipped, matching the legacy catalog
// behavior; the caller sees them as a no-op.
func (s *Service) CheckCollision(ctx context.Context, equipmentIDs []string, start, end time.Time) (*CollisionResult, error) {
	if !start.Before(end) {
		return nil, ErrValidation
	}

	for _, id := range equipmentIDs {
		item, err := s.equipment.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}

		existing, err := s.rentals.ListConsuming(ctx, id, domain.RentalApproved, domain.RentalPending)
		if err != nil {
			return nil, err
		}

		checkpoints := []time.Time{start}
		for i := range existing {
			st := existing[i].StartTime
			if st.After(start) && st.Before(end) {
				checkpoints = append(checkpoints, st)
			}
		}

		for _, p := range checkpoints {
			concurrent := 0
			for i := range existing {
				if existing[i].Occupies(p) {
					concurrent++
				}
			}
			if item.TotalQuantity-concurrent < 1 {
				return &CollisionResult{
					Collision:       true,
					Message:         fmt.Sprintf("\"%s\"은(는) %s에 대여가 불가능합니다.", item.Name, p.Format("2006-01-02 15:04")),
					ConflictingItem: item.Name,
				}, nil
			}
		}
	}

	return &CollisionResult{Collision: false, Message: "대여 가능합니다."}, nil
}

// CreateRequest validates a borrowing request, runs the collision check once
// for the whole batch and, if it passes, creates one pending rental per item
// in a single transaction. All-or-nothing: a collision on any item creates
// nothing, and the result carries the refusal for the caller to surface.
func (s *Service) CreateRequest(ctx context.Context, req CreateRentalRequest) (*CollisionResult, []domain.Rental, error) {
	if len(req.EquipmentIDs) == 0 ||
		strings.TrimSpace(req.BorrowerName) == "" ||
		strings.TrimSpace(req.Purpose) == "" {
		return nil, nil, ErrValidation
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.CheckCollision(ctx, req.EquipmentIDs, req.StartTime, req.EndTime)
	if err != nil {
		return nil, nil, err
	}
	if res.Collision {
		return res, nil, nil
	}

	rentals := make([]*domain.Rental, 0, len(req.EquipmentIDs))
	for _, id := range req.EquipmentIDs {
		rentals = append(rentals, &domain.Rental{
			EquipmentID:  id,
			BorrowerName: req.BorrowerName,
			Purpose:      req.Purpose,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Status:       domain.RentalPending,
		})
	}

	if err := s.rentals.CreateBatch(ctx, rentals); err != nil {
		return nil, nil, err
	}

	created := make([]domain.Rental, 0, len(rentals))
	for _, r := range rentals {
		created = append(created, *r)
	}

	if s.events != nil {
		_ = s.events.PublishRentalsRequested(ctx, created)
	}

	return res, created, nil
}

// ListRentals returns every rental newest-window-first for the status page.
func (s *Service) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentals.List(ctx)
}

// ListByEquipment returns an item's rental history for the timeline view.
func (s *Service) ListByEquipment(ctx context.Context, equipmentID string) ([]domain.Rental, error) {
	return s.rentals.ListByEquipment(ctx, equipmentID)
}
