package handlers

import (
	"net/http"
	"strconv"
	"time"

	"glowdesk/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the availability engine over HTTP.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(service availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: service}
}

// OpenAtHandler reports whether the salon is open at an instant.
// GET /api/availability/open?at=RFC3339
func (h *AvailabilityHandler) OpenAtHandler(c *gin.Context) {
	logger := getLogger(c)
	at, err := time.Parse(time.RFC3339, c.Query("at"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'at' timestamp: " + err.Error()})
		return
	}

	open, err := h.Service.IsOpenAt(c.Request.Context(), at)
	if err != nil {
		logger.Error("Failed to resolve open state", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve open state"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"open": open})
}

// CheckAvailabilityHandler answers whether a candidate interval can be
// booked with a specialist.
// POST /api/availability/check
func (h *AvailabilityHandler) CheckAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	var input struct {
		SpecialistID   string    `json:"specialistId" binding:"required"`
		Start          time.Time `json:"start" binding:"required"`
		End            time.Time `json:"end" binding:"required"`
		ExcludeVisitID string    `json:"excludeVisitId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	available, err := h.Service.CheckSpecialist(c.Request.Context(), input.SpecialistID, input.Start, input.End, input.ExcludeVisitID)
	if err != nil {
		logger.Error("Failed to check availability", zap.String("specialistID", input.SpecialistID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// NextSlotHandler finds the earliest bookable start for one specialist.
// GET /api/availability/next-slot?specialistId=&after=RFC3339&duration=60
func (h *AvailabilityHandler) NextSlotHandler(c *gin.Context) {
	logger := getLogger(c)
	specialistID := c.Query("specialistId")
	if specialistID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialistId is required"})
		return
	}
	after, err := time.Parse(time.RFC3339, c.Query("after"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'after' timestamp: " + err.Error()})
		return
	}
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "60"))
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'duration' minutes"})
		return
	}

	slot, err := h.Service.NextSlot(c.Request.Context(), specialistID, after, duration)
	if err != nil {
		logger.Error("Failed to find next slot", zap.String("specialistID", specialistID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find next slot"})
		return
	}
	// A null slot means the search horizon was exhausted, not an error.
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

// SlotsHandler enumerates candidate openings.
// GET /api/availability/slots?specialistId=&after=RFC3339&duration=60&days=7&excludeVisitId=
func (h *AvailabilityHandler) SlotsHandler(c *gin.Context) {
	logger := getLogger(c)
	after, err := time.Parse(time.RFC3339, c.Query("after"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'after' timestamp: " + err.Error()})
		return
	}
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "60"))
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'duration' minutes"})
		return
	}
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'days'"})
		return
	}

	slots, err := h.Service.FindSlots(c.Request.Context(), availability.SlotQuery{
		SpecialistID:    c.Query("specialistId"),
		After:           after,
		DurationMinutes: duration,
		DaysToSearch:    days,
		ExcludeVisitID:  c.Query("excludeVisitId"),
	})
	if err != nil {
		logger.Error("Failed to find available slots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find available slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
