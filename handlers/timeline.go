package handlers

import (
	"net/http"
	"time"

	"glowdesk/services/timeline"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TimelineHandler serves day columns ready for rendering.
type TimelineHandler struct {
	Service timeline.TimelineService
}

func NewTimelineHandler(service timeline.TimelineService) *TimelineHandler {
	return &TimelineHandler{Service: service}
}

// DayTimelineHandler returns one day's visits packed into lanes with
// column geometry attached.
// GET /api/timeline/day?date=YYYY-MM-DD&specialistId=
func (h *TimelineHandler) DayTimelineHandler(c *gin.Context) {
	logger := getLogger(c)
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'date', expected YYYY-MM-DD"})
		return
	}

	positioned, err := h.Service.DayTimeline(c.Request.Context(), date, c.Query("specialistId"))
	if err != nil {
		logger.Error("Failed to build day timeline", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build day timeline"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"visits": positioned, "hourHeight": timeline.HourHeight})
}
