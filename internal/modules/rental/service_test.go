package rental

import (
	"context"
	"testing"
	"time"

	"github.com/loopin51/KSHSManagement/internal/domain"
	"github.com/loopin51/KSHSManagement/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) ListByEquipment(ctx context.Context, equipmentID string) ([]domain.Rental, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) ListConsuming(ctx context.Context, equipmentID string, statuses ...domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, equipmentID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) CreateBatch(ctx context.Context, rentals []*domain.Rental) error {
	args := m.Called(ctx, rentals)
	for i, r := range rentals {
		r.ID = int64(100 + i) // simulate DB insert
		r.Status = domain.RentalPending
	}
	return args.Error(0)
}

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) Get(ctx context.Context, id string) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishRentalsRequested(ctx context.Context, rentals []domain.Rental) error {
	args := m.Called(ctx, rentals)
	return args.Error(0)
}

func day(h, min int) time.Time {
	return time.Date(2024, 8, 5, h, min, 0, 0, time.UTC)
}

func approved(id string, start, end time.Time) domain.Rental {
	return domain.Rental{EquipmentID: id, StartTime: start, EndTime: end, Status: domain.RentalApproved}
}

func consumingStatuses() []domain.RentalStatus {
	return []domain.RentalStatus{domain.RentalApproved, domain.RentalPending}
}

func TestService_CheckCollision_FullyBookedWindow(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockEquipment := new(MockEquipmentRepository)

	mockEquipment.On("Get", mock.Anything, "X").
		Return(&domain.Equipment{ID: "X", Name: "오실로스코프", TotalQuantity: 1}, nil)
	mockRentals.On("ListConsuming", mock.Anything, "X", consumingStatuses()).
		Return([]domain.Rental{approved("X", day(9, 0), day(17, 0))}, nil)

	service := NewService(mockRentals, mockEquipment, nil)

	res, err := service.CheckCollision(context.Background(), []string{"X"}, day(10, 0), day(12, 0))
	assert.NoError(t, err)
	assert.True(t, res.Collision)
	assert.Equal(t, "오실로스코프", res.ConflictingItem)
	assert.Contains(t, res.Message, "오실로스코프")
}

func TestService_CheckCollision_BackToBackDoesNotCollide(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockEquipment := new(MockEquipmentRepository)

	// [09:00,17:00) releases the unit at exactly 17:00.
	mockEquipment.On("Get", mock.Anything, "X").
		Return(&domain.Equipment{ID: "X", Name: "오실로스코프", TotalQuantity: 1}, nil)
	mockRentals.On("ListConsuming", mock.Anything, "X", consumingStatuses()).
		Return([]domain.Rental{approved("X", day(9, 0), day(17, 0))}, nil)

	service := NewService(mockRentals, mockEquipment, nil)

	res, err := service.CheckCollision(context.Background(), []string{"X"}, day(17, 0), day(18, 0))
	assert.NoError(t, err)
	assert.False(t, res.Collision)
}

func TestService_CheckCollision_SweepLineCheckpoints(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockEquipment := new(MockEquipmentRepository)

	// Stock 2, existing [09:00,11:00) and [10:00,12:00): both held between
	// 10:00 and 11:00, only the second one afterwards.
	mockEquipment.On("Get", mock.Anything, "EQ-001").
		Return(&domain.Equipment{ID: "EQ-001", Name: "함수 발생기", TotalQuantity: 2}, nil)
	mockRentals.On("ListConsuming", mock.Anything, "EQ-001", consumingStatuses()).
		Return([]domain.Rental{
			approved("EQ-001", day(9, 0), day(11, 0)),
			approved("EQ-001", day(10, 0), day(12, 0)),
		}, nil)

	service := NewService(mockRentals, mockEquipment, nil)

	res, err := service.CheckCollision(context.Background(), []string{"EQ-001"}, day(10, 30), day(10, 45))
	assert.NoError(t, err)
	assert.True(t, res.Collision, "a third unit would be needed at 10:30")

	res, err = service.CheckCollision(context.Background(), []string{"EQ-001"}, day(11, 0), day(12, 0))
	assert.NoError(t, err)
	assert.False(t, res.Collision, "at most two concurrent after 11:00")
}

func TestService_CheckCollision_ConflictOnlyInsideWindow(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockEquipment := new(MockEquipmentRepository)

	// The second rental starts at 14:00, after the requested window ends;
	// its start must not be probed as a checkpoint.
	mockEquipment.On("Get", mock.Anything, "EQ-001").
		Return(&domain.Equipment{ID: "EQ-001", Name: "함수 발생기", TotalQuantity: 2}, nil)
	mockRentals.On("ListConsuming", mock.Anything, "EQ-001", consumingStatuses()).
		Return([]domain.Rental{
			approved("EQ-001", day(9, 0), day(15, 0)),
			approved("EQ-001", day(14, 0), day(16, 0)),
		}, nil)

	service := NewService(mockRentals, mockEquipment, nil)

	res, err := service.CheckCollision(context.Background(), []string{"EQ-001"}, day(10, 0), day(12, 0))
	assert.NoError(t, err)
	assert.False(t, res.Collision)
}

func TestService_CheckCollision_PendingConsumesCapacity(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockEquipment := new(MockEquipmentRepository)

	pending := domain.Rental{
		EquipmentID: "EQ-007",
		StartTime:   day(9, 0),
		EndTime:     day(18, 0),
		Status:      domain.RentalPending,
	}

	mockEquipment.On("Get", mock.Anything, "EQ-007").
		Return(&domain.Equipment{ID: "EQ-007", Name: "3D 프린터", TotalQuantity: 1}, nil)
	mockRentals.On("ListConsuming", mock.Anything, "EQ-007", consumingStatuses()).
		Return([]domain.Rental{pending}, nil)
	// Availability sees approved rentals only.
	mockRentals.On("ListConsuming", mock.Anything, "EQ-007", []domain.RentalStatus{domain.RentalApproved}).
		Return([]domain.Rental{}, nil)

	service := NewService(mockRentals, mockEquipment, nil)

	res, err := service.CheckCollision(context.Background(), []string{"EQ-007"}, day(10, 0), day(12, 0))
	assert.NoError(t, err)
	assert.True(t, res.Collision, "a pending hold blocks new requests")

	free, err := service.AvailableQuantity(context.Background(), "EQ-007", day(10, 0))
	assert.NoError(t, err)
	assert.Equal(t, 1, free, "the display count ignores pending holds")
}

func TestService_CheckCollision_UnknownItemSkipped(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockEquipment := new(MockEquipmentRepository)

	mockEquipment.On("Get", mock.Anything, "GHOST").Return(nil, repository.ErrNotFound)

	service := NewService(mockRentals, mockEquipment, nil)

	res, err := service.CheckCollision(context.Background(), []string{"GHOST"}, day(10, 0), day(12, 0))
	assert.NoError(t, err)
	assert.False(t, res.Collision)
	mockRentals.AssertNotCalled(t, "ListConsuming", mock.Anything, "GHOST", mock.Anything)
}

func TestService_CheckCollision_InvalidRange(t *testing.T) {
	service := NewService(new(MockRentalRepository), new(MockEquipmentRepository), nil)

	_, err := service.CheckCollision(context.Background(), []string{"X"}, day(12, 0), day(12, 0))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CheckCollision(context.Background(), []string{"X"}, day(13, 0), day(12, 0))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_AvailableQuantity(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockEquipment := new(MockEquipmentRepository)

	mockEquipment.On("Get", mock.Anything, "EQ-001").
		Return(&domain.Equipment{ID: "EQ-001", Name: "오실로스코프", TotalQuantity: 5}, nil)
	mockRentals.On("ListConsuming", mock.Anything, "EQ-001", []domain.RentalStatus{domain.RentalApproved}).
		Return([]domain.Rental{
			approved("EQ-001", day(9, 0), day(17, 0)),
			approved("EQ-001", day(8, 0), day(10, 0)),
		}, nil)

	service := NewService(mockRentals, mockEquipment, nil)

	free, err := service.AvailableQuantity(context.Background(), "EQ-001", day(9, 30))
	assert.NoError(t, err)
	assert.Equal(t, 3, free)

	// End instants are exclusive: at 10:00 the early rental is back.
	free, err = service.AvailableQuantity(context.Background(), "EQ-001", day(10, 0))
	assert.NoError(t, err)
	assert.Equal(t, 4, free)

	// Reads are idempotent.
	again, err := service.AvailableQuantity(context.Background(), "EQ-001", day(10, 0))
	assert.NoError(t, err)
	assert.Equal(t, free, again)
}

func TestService_AvailableQuantity_UnknownItemIsZero(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockEquipment := new(MockEquipmentRepository)

	mockEquipment.On("Get", mock.Anything, "GHOST").Return(nil, repository.ErrNotFound)

	service := NewService(mockRentals, mockEquipment, nil)

	free, err := service.AvailableQuantity(context.Background(), "GHOST", day(10, 0))
	assert.NoError(t, err)
	assert.Equal(t, 0, free)
}

func TestService_AvailableQuantity_NegativeRawPreserved(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockEquipment := new(MockEquipmentRepository)

	// Inconsistent data: more approved rentals than stock. The raw value
	// must come back untouched; clamping is the caller's job.
	mockEquipment.On("Get", mock.Anything, "EQ-003").
		Return(&domain.Equipment{ID: "EQ-003", Name: "원심분리기", TotalQuantity: 1}, nil)
	mockRentals.On("ListConsuming", mock.Anything, "EQ-003", []domain.RentalStatus{domain.RentalApproved}).
		Return([]domain.Rental{
			approved("EQ-003", day(9, 0), day(17, 0)),
			approved("EQ-003", day(9, 0), day(17, 0)),
		}, nil)

	service := NewService(mockRentals, mockEquipment, nil)

	free, err := service.AvailableQuantity(context.Background(), "EQ-003", day(12, 0))
	assert.NoError(t, err)
	assert.Equal(t, -1, free)
}

func TestService_CreateRequest_Success(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockEquipment := new(MockEquipmentRepository)
	mockEvents := new(MockEventPublisher)

	mockEquipment.On("Get", mock.Anything, "EQ-001").
		Return(&domain.Equipment{ID: "EQ-001", Name: "오실로스코프", TotalQuantity: 5}, nil)
	mockRentals.On("ListConsuming", mock.Anything, "EQ-001", consumingStatuses()).
		Return([]domain.Rental{}, nil)
	mockRentals.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	mockEvents.On("PublishRentalsRequested", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRentals, mockEquipment, mockEvents)

	res, created, err := service.CreateRequest(context.Background(), CreateRentalRequest{
		EquipmentIDs: []string{"EQ-001"},
		BorrowerName: "홍길동",
		Purpose:      "캡스톤 디자인 프로젝트",
		StartTime:    day(10, 0),
		EndTime:      day(12, 0),
	})

	assert.NoError(t, err)
	assert.False(t, res.Collision)
	assert.Len(t, created, 1)
	assert.Equal(t, domain.RentalPending, created[0].Status)
	assert.NotZero(t, created[0].ID)
	mockEvents.AssertCalled(t, "PublishRentalsRequested", mock.Anything, mock.Anything)
}

func TestService_CreateRequest_BatchAllOrNothing(t *testing.T) {
	mockRentals := new(MockRentalRepository)
	mockEquipment := new(MockEquipmentRepository)

	// X is free, Y is fully booked. The Y conflict must be reported and no
	// rental may be created for X either.
	mockEquipment.On("Get", mock.Anything, "X").
		Return(&domain.Equipment{ID: "X", Name: "노트북", TotalQuantity: 3}, nil)
	mockEquipment.On("Get", mock.Anything, "Y").
		Return(&domain.Equipment{ID: "Y", Name: "프로젝터", TotalQuantity: 1}, nil)
	mockRentals.On("ListConsuming", mock.Anything, "X", consumingStatuses()).
		Return([]domain.Rental{}, nil)
	mockRentals.On("ListConsuming", mock.Anything, "Y", consumingStatuses()).
		Return([]domain.Rental{approved("Y", day(9, 0), day(18, 0))}, nil)

	service := NewService(mockRentals, mockEquipment, nil)

	res, created, err := service.CreateRequest(context.Background(), CreateRentalRequest{
		EquipmentIDs: []string{"X", "Y"},
		BorrowerName: "김철수",
		Purpose:      "유기화학 실험 준비",
		StartTime:    day(10, 0),
		EndTime:      day(12, 0),
	})

	assert.NoError(t, err)
	assert.True(t, res.Collision)
	assert.Equal(t, "프로젝터", res.ConflictingItem)
	assert.Empty(t, created)
	mockRentals.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestService_CreateRequest_Validation(t *testing.T) {
	service := NewService(new(MockRentalRepository), new(MockEquipmentRepository), nil)

	cases := []CreateRentalRequest{
		{EquipmentIDs: nil, BorrowerName: "홍길동", Purpose: "실험", StartTime: day(10, 0), EndTime: day(12, 0)},
		{EquipmentIDs: []string{"X"}, BorrowerName: "  ", Purpose: "실험", StartTime: day(10, 0), EndTime: day(12, 0)},
		{EquipmentIDs: []string{"X"}, BorrowerName: "홍길동", Purpose: "", StartTime: day(10, 0), EndTime: day(12, 0)},
		{EquipmentIDs: []string{"X"}, BorrowerName: "홍길동", Purpose: "실험", StartTime: day(12, 0), EndTime: day(12, 0)},
		{EquipmentIDs: []string{"X"}, BorrowerName: "홍길동", Purpose: "실험", StartTime: day(13, 0), EndTime: day(12, 0)},
	}

	for i, req := range cases {
		_, _, err := service.CreateRequest(context.Background(), req)
		assert.ErrorIsf(t, err, ErrValidation, "case %d", i)
	}
}
