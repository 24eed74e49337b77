package admin

type CreateEquipmentRequest struct {
	ID            string `json:"id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Department    string `json:"department" binding:"required"`
	TotalQuantity int    `json:"total_quantity" binding:"required,gte=1"`
}

// DashboardStats backs the admin landing page counters.
type DashboardStats struct {
	EquipmentCount  int64 `json:"equipment_count"`
	PendingRentals  int64 `json:"pending_rentals"`
	ApprovedRentals int64 `json:"approved_rentals"`
	ReturnedRentals int64 `json:"returned_rentals"`
}
