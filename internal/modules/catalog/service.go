package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/loopin51/KSHSManagement/internal/domain"
)

var ErrUnknownDepartment = errors.New("unknown department")

type Service struct {
	equipment    EquipmentRepository
	availability AvailabilityCalculator
}

func NewService(equipment EquipmentRepository, availability AvailabilityCalculator) *Service {
	return &Service{
		equipment:    equipment,
		availability: availability,
	}
}

func (s *Service) ListDepartments() []domain.Department {
	return domain.Departments()
}

// ListEquipment returns the catalog, name-ordered, each row annotated with
// the clamped free-unit count at the given instant.
func (s *Service) ListEquipment(ctx context.Context, dept string, at time.Time) ([]EquipmentView, error) {
	var (
		items []domain.Equipment
		err   error
	)
	if dept == "" {
		items, err = s.equipment.List(ctx)
	} else {
		d := domain.Department(dept)
		if !d.Valid() {
			return nil, ErrUnknownDepartment
		}
		items, err = s.equipment.ListByDepartment(ctx, d)
	}
	if err != nil {
		return nil, err
	}

	out := make([]EquipmentView, 0, len(items))
	for _, item := range items {
		free, err := s.availability.AvailableQuantity(ctx, item.ID, at)
		if err != nil {
			return nil, err
		}
		out = append(out, EquipmentView{Equipment: item, AvailableQuantity: clamp(free)})
	}
	return out, nil
}

// GetEquipment returns one item with its availability and rental timeline.
func (s *Service) GetEquipment(ctx context.Context, id string, at time.Time) (*EquipmentDetail, error) {
	item, err := s.equipment.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	free, err := s.availability.AvailableQuantity(ctx, id, at)
	if err != nil {
		return nil, err
	}

	rentals, err := s.availability.ListByEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	return &EquipmentDetail{
		EquipmentView: EquipmentView{Equipment: *item, AvailableQuantity: clamp(free)},
		Rentals:       rentals,
	}, nil
}

// Availability answers "how many units are free right now / at t" for one
// item, clamped for display.
func (s *Service) Availability(ctx context.Context, id string, at time.Time) (*AvailabilityView, error) {
	free, err := s.availability.AvailableQuantity(ctx, id, at)
	if err != nil {
		return nil, err
	}
	return &AvailabilityView{
		EquipmentID:       id,
		At:                at,
		AvailableQuantity: clamp(free),
	}, nil
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
