// Resets the database and loads the demo catalog and rental fixtures.
// Intended for local development only.
package main

import (
	"context"
	"log"
	"time"

	"github.com/loopin51/KSHSManagement/internal/config"
	"github.com/loopin51/KSHSManagement/internal/database"
	"github.com/loopin51/KSHSManagement/internal/domain"
	"github.com/loopin51/KSHSManagement/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.AppEnv != "dev" {
		log.Fatal("seeding is only allowed in dev")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("cleaning old data...")
	db.Exec("DELETE FROM rentals")
	db.Exec("DELETE FROM equipment")

	ctx := context.Background()
	equipmentRepo := repository.NewEquipmentRepository(db)
	rentalRepo := repository.NewRentalRepository(db)

	log.Println("creating equipment...")
	items := []domain.Equipment{
		{ID: "EQ-001", Name: "오실로스코프 TDS2024C", Department: domain.DepartmentPhysics, TotalQuantity: 5},
		{ID: "EQ-002", Name: "함수 발생기 AFG1022", Department: domain.DepartmentPhysics, TotalQuantity: 3},
		{ID: "EQ-003", Name: "원심분리기 Combi-514R", Department: domain.DepartmentChemistry, TotalQuantity: 2},
		{ID: "EQ-004", Name: "pH 미터 ST3100-F", Department: domain.DepartmentChemistry, TotalQuantity: 10},
		{ID: "EQ-005", Name: "고성능 노트북 LG Gram Pro", Department: domain.DepartmentIT, TotalQuantity: 8},
		{ID: "EQ-006", Name: "VR 헤드셋 Meta Quest 3", Department: domain.DepartmentIT, TotalQuantity: 4},
		{ID: "EQ-007", Name: "3D 프린터 Ender 3 V2", Department: domain.DepartmentIT, TotalQuantity: 2},
	}
	for i := range items {
		if err := equipmentRepo.Create(ctx, &items[i]); err != nil {
			log.Fatal("equipment seed failed:", err)
		}
	}

	log.Println("creating rentals...")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	fixtures := []struct {
		rental domain.Rental
		status domain.RentalStatus
	}{
		{
			rental: domain.Rental{
				EquipmentID:  "EQ-001",
				BorrowerName: "김물리",
				Purpose:      "양자역학 실험",
				StartTime:    today.AddDate(0, 0, -2),
				EndTime:      today.AddDate(0, 0, 2),
			},
			status: domain.RentalApproved,
		},
		{
			rental: domain.Rental{
				EquipmentID:  "EQ-005",
				BorrowerName: "이개발",
				Purpose:      "캡스톤 디자인 프로젝트",
				StartTime:    today.AddDate(0, 0, 1),
				EndTime:      today.AddDate(0, 0, 8),
			},
			status: domain.RentalApproved,
		},
		{
			rental: domain.Rental{
				EquipmentID:  "EQ-003",
				BorrowerName: "박화학",
				Purpose:      "유기화합물 분석",
				StartTime:    today.AddDate(0, 0, 3),
				EndTime:      today.AddDate(0, 0, 5),
			},
			status: domain.RentalPending,
		},
		{
			rental: domain.Rental{
				EquipmentID:  "EQ-006",
				BorrowerName: "최가상",
				Purpose:      "VR 콘텐츠 시연 준비",
				StartTime:    today.AddDate(0, 0, -7),
				EndTime:      today.AddDate(0, 0, -3),
			},
			status: domain.RentalReturned,
		},
	}

	for _, f := range fixtures {
		r := f.rental
		if err := rentalRepo.Create(ctx, &r); err != nil {
			log.Fatal("rental seed failed:", err)
		}
		// Walk non-pending fixtures through the state machine instead of
		// writing the status directly.
		switch f.status {
		case domain.RentalApproved:
			if _, err := rentalRepo.UpdateStatus(ctx, r.ID, domain.RentalApproved); err != nil {
				log.Fatal("rental seed failed:", err)
			}
		case domain.RentalReturned:
			if _, err := rentalRepo.UpdateStatus(ctx, r.ID, domain.RentalApproved); err != nil {
				log.Fatal("rental seed failed:", err)
			}
			if _, err := rentalRepo.UpdateStatus(ctx, r.ID, domain.RentalReturned); err != nil {
				log.Fatal("rental seed failed:", err)
			}
		}
	}

	log.Println("seed complete:", len(items), "equipment,", len(fixtures), "rentals")
}
