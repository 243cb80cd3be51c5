package handlers

import (
	"errors"
	"net/http"
	"time"

	"glowdesk/models"
	"glowdesk/services/timeline"
	visitSvc "glowdesk/services/visit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VisitHandler exposes visit lifecycle and lookup endpoints.
type VisitHandler struct {
	Service  visitSvc.VisitService
	Timeline timeline.TimelineService
}

func NewVisitHandler(service visitSvc.VisitService, tl timeline.TimelineService) *VisitHandler {
	return &VisitHandler{Service: service, Timeline: tl}
}

// visitError maps service errors onto HTTP responses: conflicts are 409,
// validation problems 422, anything else 500.
func visitError(c *gin.Context, logger *zap.Logger, err error) {
	var conflict *visitSvc.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message, "specialistId": conflict.SpecialistID})
		return
	}
	var invalid *visitSvc.ValidationError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": invalid.Message})
		return
	}
	logger.Error("Visit operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Visit operation failed"})
}

// CreateVisitHandler books a visit, rejecting conflicting intervals.
func (h *VisitHandler) CreateVisitHandler(c *gin.Context) {
	logger := getLogger(c)
	var visit models.Visit
	if err := c.ShouldBindJSON(&visit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid visit payload", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &visit)
	if err != nil {
		visitError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateVisitHandler reschedules or edits a visit. The visit's own slot is
// excluded from the conflict scan.
func (h *VisitHandler) UpdateVisitHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	var visit models.Visit
	if err := c.ShouldBindJSON(&visit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid visit payload", "details": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), id, &visit)
	if err != nil {
		visitError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ConfirmVisitHandler marks a visit confirmed.
func (h *VisitHandler) ConfirmVisitHandler(c *gin.Context) {
	logger := getLogger(c)
	visit, err := h.Service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Error("Failed to confirm visit", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Visit not found"})
		return
	}
	c.JSON(http.StatusOK, visit)
}

// CancelVisitHandler marks a visit cancelled.
func (h *VisitHandler) CancelVisitHandler(c *gin.Context) {
	logger := getLogger(c)
	visit, err := h.Service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Error("Failed to cancel visit", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Visit not found"})
		return
	}
	c.JSON(http.StatusOK, visit)
}

// DeleteVisitHandler removes a visit outright.
func (h *VisitHandler) DeleteVisitHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete visit", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Visit not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// GetVisitsForDayHandler returns one day's bucket.
// GET /api/visits/day?date=YYYY-MM-DD
func (h *VisitHandler) GetVisitsForDayHandler(c *gin.Context) {
	logger := getLogger(c)
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'date', expected YYYY-MM-DD"})
		return
	}

	visits, err := h.Timeline.VisitsForDate(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to load day visits", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load visits"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"visits": visits})
}

// GetVisitsForRangeHandler returns visits across an inclusive day range.
// GET /api/visits?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *VisitHandler) GetVisitsForRangeHandler(c *gin.Context) {
	logger := getLogger(c)
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from', expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to', expected YYYY-MM-DD"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' must not precede 'from'"})
		return
	}

	visits, err := h.Timeline.VisitsForRange(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to load range visits", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load visits"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"visits": visits})
}
