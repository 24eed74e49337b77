package catalog

import (
	"errors"
	"net/http"
	"time"

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
	rg.GET("/departments", h.ListDepartments)
	rg.GET("/equipment", h.ListEquipment)
	rg.GET("/equipment/:id", h.GetEquipment)
	rg.GET("/equipment/:id/availability", h.Availability)
}

func (h *Handler) ListDepartments(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"departments": h.service.ListDepartments()})
}

// ListEquipment handles GET /equipment?department=...&at=RFC3339.
// The instant defaults to now; availability on the rows reflects it.
func (h *Handler) ListEquipment(c *gin.Context) {
	at, ok := parseAt(c)
	if !ok {
		return
	}

	views, err := h.service.ListEquipment(c.Request.Context(), c.Query("department"), at)
	if err != nil {
		if errors.Is(err, ErrUnknownDepartment) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown department")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list equipment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"equipment": views, "at": at})
}

func (h *Handler) GetEquipment(c *gin.Context) {
	at, ok := parseAt(c)
	if !ok {
		return
	}

	detail, err := h.service.GetEquipment(c.Request.Context(), c.Param("id"), at)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load equipment")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Availability(c *gin.Context) {
	at, ok := parseAt(c)
	if !ok {
		return
	}

	view, err := h.service.Availability(c.Request.Context(), c.Param("id"), at)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute availability")
		return
	}
	response.Success(c, http.StatusOK, view)
}

func parseAt(c *gin.Context) (time.Time, bool) {
	raw := c.Query("at")
	if raw == "" {
		return time.Now().UTC(), true
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "at must be RFC3339")
		return time.Time{}, false
	}
	return at, true
}
