package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/loopin51/KSHSManagement/internal/config"
	"github.com/loopin51/KSHSManagement/internal/database"
	"github.com/loopin51/KSHSManagement/internal/middleware"
	"github.com/loopin51/KSHSManagement/internal/modules/admin"
	"github.com/loopin51/KSHSManagement/internal/modules/auth"
	"github.com/loopin51/KSHSManagement/internal/modules/catalog"
	"github.com/loopin51/KSHSManagement/internal/modules/rental"
	"github.com/loopin51/KSHSManagement/internal/modules/statusfeed"
	jwtsvc "github.com/loopin51/KSHSManagement/internal/pkg/jwt"
	"github.com/loopin51/KSHSManagement/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	equipmentRepo := repository.NewEquipmentRepository(db)
	rentalRepo := repository.NewRentalRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := statusfeed.NewHub()
	defer hub.Close()
	feedHandler := statusfeed.NewHandler(hub)

	authService := auth.NewService(cfg.AdminPasswordHash, j)
	authHandler := auth.NewHandler(authService)

	rentalService := rental.NewService(rentalRepo, equipmentRepo, hub)
	rentalHandler := rental.NewHandler(rentalService)

	catalogService := catalog.NewService(equipmentRepo, rentalService)
	catalogHandler := catalog.NewHandler(catalogService)

	adminService := admin.NewService(rentalRepo, equipmentRepo, hub)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public: catalog, borrowing requests, status feed
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		rentalHandler.RegisterRoutes(v1)
		feedHandler.RegisterRoutes(v1)

		// admin: lifecycle transitions and catalog management
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.RequireAdmin(j))
		adminHandler.RegisterRoutes(adminGroup)
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
