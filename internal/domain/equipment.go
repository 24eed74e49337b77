package domain

import "time"

type Department string

const (
	DepartmentPhysics   Department = "물리과"
	DepartmentChemistry Department = "화학과"
	DepartmentIT        Department = "IT과"
)

// Departments lists every known department in display order.
func Departments() []Department {
	return []Department{DepartmentPhysics, DepartmentChemistry, DepartmentIT}
}

func (d Department) Valid() bool {
	switch d {
	case DepartmentPhysics, DepartmentChemistry, DepartmentIT:
		return true
	}
	return false
}

// Equipment is a catalog item. The ID is admin-assigned (e.g. "EQ-001") and
// doubles as the stable sort/display key. TotalQuantity is the department's
// full stock; free units at a given instant are derived from rentals.
type Equipment struct {
	ID            string     `json:"id" validate:"required"`
	Name          string     `json:"name" validate:"required"`
	Department    Department `json:"department" validate:"required"`
	TotalQuantity int        `json:"total_quantity" validate:"required,gte=1"`
	CreatedAt     time.Time  `json:"created_at"`
}
