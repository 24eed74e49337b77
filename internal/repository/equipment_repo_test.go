package repository

import (
	"context"
	"testing"

	"github.com/loopin51/KSHSManagement/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentRepository_CreateAndGet(t *testing.T) {
	repo := NewEquipmentRepository(setupDB(t))
	ctx := context.Background()

	e := &domain.Equipment{
		ID:            "EQ-001",
		Name:          "오실로스코프 TDS2024C",
		Department:    domain.DepartmentPhysics,
		TotalQuantity: 5,
	}
	require.NoError(t, repo.Create(ctx, e))
	assert.False(t, e.CreatedAt.IsZero())

	got, err := repo.Get(ctx, "EQ-001")
	require.NoError(t, err)
	assert.Equal(t, "오실로스코프 TDS2024C", got.Name)
	assert.Equal(t, domain.DepartmentPhysics, got.Department)
	assert.Equal(t, 5, got.TotalQuantity)
}

func TestEquipmentRepository_GetUnknown(t *testing.T) {
	repo := NewEquipmentRepository(setupDB(t))

	_, err := repo.Get(context.Background(), "GHOST")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEquipmentRepository_DuplicateID(t *testing.T) {
	repo := NewEquipmentRepository(setupDB(t))
	ctx := context.Background()

	first := &domain.Equipment{ID: "EQ-001", Name: "A", Department: domain.DepartmentIT, TotalQuantity: 1}
	require.NoError(t, repo.Create(ctx, first))

	dup := &domain.Equipment{ID: "EQ-001", Name: "B", Department: domain.DepartmentIT, TotalQuantity: 2}
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrDuplicateID)
}

func TestEquipmentRepository_ListOrdersByName(t *testing.T) {
	repo := NewEquipmentRepository(setupDB(t))
	ctx := context.Background()

	items := []*domain.Equipment{
		{ID: "EQ-003", Name: "C 장비", Department: domain.DepartmentIT, TotalQuantity: 1},
		{ID: "EQ-001", Name: "A 장비", Department: domain.DepartmentPhysics, TotalQuantity: 1},
		{ID: "EQ-002", Name: "B 장비", Department: domain.DepartmentChemistry, TotalQuantity: 1},
	}
	for _, e := range items {
		require.NoError(t, repo.Create(ctx, e))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "A 장비", got[0].Name)
	assert.Equal(t, "B 장비", got[1].Name)
	assert.Equal(t, "C 장비", got[2].Name)
}

func TestEquipmentRepository_ListByDepartment(t *testing.T) {
	repo := NewEquipmentRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Equipment{ID: "EQ-001", Name: "레이저", Department: domain.DepartmentPhysics, TotalQuantity: 3}))
	require.NoError(t, repo.Create(ctx, &domain.Equipment{ID: "EQ-002", Name: "노트북", Department: domain.DepartmentIT, TotalQuantity: 8}))

	got, err := repo.ListByDepartment(ctx, domain.DepartmentPhysics)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "EQ-001", got[0].ID)

	cnt, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, cnt)
}
