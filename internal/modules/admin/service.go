package admin

import (
	"context"
	"strings"

	"github.com/loopin51/KSHSManagement/internal/domain"
	"github.com/loopin51/KSHSManagement/internal/pkg/validator"
)

type Service struct {
	rentals   RentalRepository
	equipment EquipmentRepository
	events    EventPublisher
}

func NewService(rentals RentalRepository, equipment EquipmentRepository, events EventPublisher) *Service {
	return &Service{
		rentals:   rentals,
		equipment: equipment,
		events:    events,
	}
}

// ApproveRental moves a pending request to approved; from then on the rental
// firmly consumes stock in both the collision check and the display count.
func (s *Service) ApproveRental(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.transition(ctx, id, domain.RentalApproved)
}

// RejectRental terminally refuses a pending request, releasing its
// provisional hold on stock.
func (s *Service) RejectRental(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.transition(ctx, id, domain.RentalRejected)
}

// ReturnRental closes out an approved rental once the items come back.
func (s *Service) ReturnRental(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.transition(ctx, id, domain.RentalReturned)
}

func (s *Service) transition(ctx context.Context, id int64, next domain.RentalStatus) (*domain.Rental, error) {
	rental, err := s.rentals.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.PublishRentalStatusChanged(ctx, *rental)
	}
	return rental, nil
}

func (s *Service) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentals.List(ctx)
}

func (s *Service) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.rentals.GetByID(ctx, id)
}

// CreateEquipment adds a catalog item. The id is admin-assigned and must be
// unique; the department must be one of the known three.
func (s *Service) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	dept := domain.Department(req.Department)
	if !dept.Valid() {
		return nil, ErrValidation
	}

	e := &domain.Equipment{
		ID:            strings.TrimSpace(req.ID),
		Name:          strings.TrimSpace(req.Name),
		Department:    dept,
		TotalQuantity: req.TotalQuantity,
	}
	if fields := validator.Validate(e); len(fields) > 0 {
		return nil, ErrValidation
	}
	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipment.List(ctx)
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.EquipmentCount, err = s.equipment.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingRentals, err = s.rentals.CountByStatus(ctx, domain.RentalPending); err != nil {
		return nil, err
	}
	if stats.ApprovedRentals, err = s.rentals.CountByStatus(ctx, domain.RentalApproved); err != nil {
		return nil, err
	}
	if stats.ReturnedRentals, err = s.rentals.CountByStatus(ctx, domain.RentalReturned); err != nil {
		return nil, err
	}
	return stats, nil
}
