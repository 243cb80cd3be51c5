package handlers

import (
	"net/http"
	"time"

	scheduleRepo "glowdesk/database/repository/schedule"
	"glowdesk/models"
	"glowdesk/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler manages the salon's weekly template and closures.
type ScheduleHandler struct {
	Repo         scheduleRepo.ScheduleRepository
	Availability availability.AvailabilityService
}

func NewScheduleHandler(repo scheduleRepo.ScheduleRepository, svc availability.AvailabilityService) *ScheduleHandler {
	return &ScheduleHandler{Repo: repo, Availability: svc}
}

// GetScheduleHandler returns the stored weekly template plus closures.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	logger := getLogger(c)
	schedule, err := h.Repo.Get(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedule"})
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// UpdateScheduleHandler replaces the weekly template.
func (h *ScheduleHandler) UpdateScheduleHandler(c *gin.Context) {
	logger := getLogger(c)
	var week models.WeeklySchedule
	if err := c.ShouldBindJSON(&week); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule payload", "details": err.Error()})
		return
	}

	if err := h.Repo.ReplaceWeek(c.Request.Context(), week); err != nil {
		logger.Error("Failed to update schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"week": week})
}

// AddClosureHandler records a whole-day closure.
func (h *ScheduleHandler) AddClosureHandler(c *gin.Context) {
	logger := getLogger(c)
	var closure models.SpecialClosure
	if err := c.ShouldBindJSON(&closure); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid closure payload", "details": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", closure.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid closure date, expected YYYY-MM-DD"})
		return
	}

	if err := h.Repo.AddClosure(c.Request.Context(), closure); err != nil {
		logger.Error("Failed to add closure", zap.String("date", closure.Date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add closure"})
		return
	}
	c.JSON(http.StatusCreated, closure)
}

// RemoveClosureHandler removes the closure for one date.
func (h *ScheduleHandler) RemoveClosureHandler(c *gin.Context) {
	logger := getLogger(c)
	date := c.Param("date")

	if err := h.Repo.RemoveClosure(c.Request.Context(), date); err != nil {
		logger.Error("Failed to remove closure", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "No closure found for " + date})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": date})
}

// GetDayScheduleHandler resolves the effective schedule for one date.
// GET /api/schedule/day?date=YYYY-MM-DD
func (h *ScheduleHandler) GetDayScheduleHandler(c *gin.Context) {
	logger := getLogger(c)
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'date', expected YYYY-MM-DD"})
		return
	}

	day, err := h.Availability.ResolveDaySchedule(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to resolve day schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve day schedule"})
		return
	}
	c.JSON(http.StatusOK, day)
}
