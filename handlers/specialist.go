package handlers

import (
	"net/http"
	"time"

	specialistRepo "glowdesk/database/repository/specialist"
	"glowdesk/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SpecialistHandler manages the staff roster.
type SpecialistHandler struct {
	Repo specialistRepo.SpecialistRepository
}

func NewSpecialistHandler(repo specialistRepo.SpecialistRepository) *SpecialistHandler {
	return &SpecialistHandler{Repo: repo}
}

// GetSpecialistsHandler returns the full roster.
func (h *SpecialistHandler) GetSpecialistsHandler(c *gin.Context) {
	logger := getLogger(c)
	specialists, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list specialists", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list specialists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialists": specialists})
}

// CreateSpecialistHandler adds a staff member.
func (h *SpecialistHandler) CreateSpecialistHandler(c *gin.Context) {
	logger := getLogger(c)
	var specialist models.Specialist
	if err := c.ShouldBindJSON(&specialist); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid specialist payload", "details": err.Error()})
		return
	}
	if specialist.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if specialist.ID == "" {
		specialist.ID = uuid.New().String()
	}

	if err := h.Repo.Create(c.Request.Context(), &specialist); err != nil {
		logger.Error("Failed to create specialist", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create specialist"})
		return
	}
	c.JSON(http.StatusCreated, specialist)
}

// UpdateSpecialistHandler replaces a staff record, including any weekly
// availability overrides.
func (h *SpecialistHandler) UpdateSpecialistHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	var specialist models.Specialist
	if err := c.ShouldBindJSON(&specialist); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid specialist payload", "details": err.Error()})
		return
	}
	specialist.ID = id

	if err := h.Repo.Update(c.Request.Context(), &specialist); err != nil {
		logger.Error("Failed to update specialist", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Specialist not found"})
		return
	}
	c.JSON(http.StatusOK, specialist)
}

// DeleteSpecialistHandler removes a staff member.
func (h *SpecialistHandler) DeleteSpecialistHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete specialist", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Specialist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// AddOffDayHandler records a personal whole-day exception.
// POST /api/specialists/:id/off-days {"date": "YYYY-MM-DD"}
func (h *SpecialistHandler) AddOffDayHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	if err := h.Repo.AddOffDay(c.Request.Context(), id, input.Date); err != nil {
		logger.Error("Failed to add off-day", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Specialist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialistId": id, "date": input.Date})
}

// RemoveOffDayHandler clears a personal exception.
// DELETE /api/specialists/:id/off-days/:date
func (h *SpecialistHandler) RemoveOffDayHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	date := c.Param("date")

	if err := h.Repo.RemoveOffDay(c.Request.Context(), id, date); err != nil {
		logger.Error("Failed to remove off-day", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Specialist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialistId": id, "date": date})
}
