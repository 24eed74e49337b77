package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/loopin51/KSHSManagement/internal/domain"
	"github.com/loopin51/KSHSManagement/internal/pkg/response"
	"github.com/loopin51/KSHSManagement/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
	rg.GET("/rentals", h.ListRentals)
	rg.POST("/rentals/:id/approve", h.ApproveRental)
	rg.POST("/rentals/:id/reject", h.RejectRental)
	rg.POST("/rentals/:id/return", h.ReturnRental)
	rg.GET("/equipment", h.ListEquipment)
	rg.POST("/equipment", h.CreateEquipment)
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load dashboard")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) ListRentals(c *gin.Context) {
	rentals, err := h.service.ListRentals(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rentals")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rentals": rentals})
}

func (h *Handler) ApproveRental(c *gin.Context) { h.transition(c, h.service.ApproveRental) }

func (h *Handler) RejectRental(c *gin.Context) { h.transition(c, h.service.RejectRental) }

func (h *Handler) ReturnRental(c *gin.Context) { h.transition(c, h.service.ReturnRental) }

func (h *Handler) transition(c *gin.Context, fn func(ctx context.Context, id int64) (*domain.Rental, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid rental id")
		return
	}

	rental, err := fn(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Rental not found")
		case errors.Is(err, repository.ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status change is not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update rental")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rental": rental})
}

func (h *Handler) ListEquipment(c *gin.Context) {
	equipment, err := h.service.ListEquipment(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list equipment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": equipment})
}

func (h *Handler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid equipment data")
		case errors.Is(err, repository.ErrDuplicateID):
			response.Error(c, http.StatusConflict, "DUPLICATE_ID", "Equipment id already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create equipment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"equipment": e})
}
