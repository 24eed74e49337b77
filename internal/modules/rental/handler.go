package rental

import (
	"errors"
	"net/http"

	"github.com/loopin51/KSHSManagement/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/rentals", h.CreateRental)
	rg.POST("/rentals/check", h.CheckCollision)
	rg.GET("/rentals", h.ListRentals)
}

// CreateRental handles POST /rentals: one request over several items sharing
// a window. A collision is a 409 with the refusal message, not a 5xx.
func (h *Handler) CreateRental(c *gin.Context) {
	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, created, err := h.service.CreateRequest(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rental request")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create rental request")
		return
	}

	if res.Collision {
		response.ErrorWithDetails(c, http.StatusConflict, "RENTAL_COLLISION", res.Message, gin.H{
			"conflicting_item": res.ConflictingItem,
		})
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": res.Message,
		"rentals": created,
	})
}

// CheckCollision handles POST /rentals/check, the pre-submit availability
// probe the borrowing form runs. Always 200; the verdict is in the body.
func (h *Handler) CheckCollision(c *gin.Context) {
	var req CheckCollisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.CheckCollision(c.Request.Context(), req.EquipmentIDs, req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid time range")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ListRentals(c *gin.Context) {
	rentals, err := h.service.ListRentals(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rentals")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rentals": rentals})
}
