package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the equipment and rentals tables. Rentals
// keep no foreign key to equipment on purpose: a rental pointing at a removed
// item must stay readable.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&equipmentModel{}, &rentalModel{})
}
