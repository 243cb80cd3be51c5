package routes

import (
	"net/http"
	"time"

	"glowdesk/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle carries every handler the router needs.
type HandlerBundle struct {
	Schedule     *handlers.ScheduleHandler
	Availability *handlers.AvailabilityHandler
	Specialist   *handlers.SpecialistHandler
	Visit        *handlers.VisitHandler
	Timeline     *handlers.TimelineHandler
}

// RegisterScheduleRoutes registers salon schedule and closure endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.GET("", hb.Schedule.GetScheduleHandler)
		api.PUT("", hb.Schedule.UpdateScheduleHandler)
		api.GET("/day", hb.Schedule.GetDayScheduleHandler)
		api.POST("/closures", hb.Schedule.AddClosureHandler)
		api.DELETE("/closures/:date", hb.Schedule.RemoveClosureHandler)
	}
}

// RegisterAvailabilityRoutes registers the availability engine endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/open", hb.Availability.OpenAtHandler)
		api.POST("/check", hb.Availability.CheckAvailabilityHandler)
		api.GET("/next-slot", hb.Availability.NextSlotHandler)
		api.GET("/slots", hb.Availability.SlotsHandler)
	}
}

// RegisterSpecialistRoutes registers staff roster endpoints.
func RegisterSpecialistRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/specialists")
	{
		api.GET("", hb.Specialist.GetSpecialistsHandler)
		api.POST("", hb.Specialist.CreateSpecialistHandler)
		api.PUT("/:id", hb.Specialist.UpdateSpecialistHandler)
		api.DELETE("/:id", hb.Specialist.DeleteSpecialistHandler)
		api.POST("/:id/off-days", hb.Specialist.AddOffDayHandler)
		api.DELETE("/:id/off-days/:date", hb.Specialist.RemoveOffDayHandler)
	}
}

// RegisterVisitRoutes registers visit lifecycle and lookup endpoints.
func RegisterVisitRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/visits")
	{
		api.GET("", hb.Visit.GetVisitsForRangeHandler)
		api.GET("/day", hb.Visit.GetVisitsForDayHandler)
		api.POST("", hb.Visit.CreateVisitHandler)
		api.PUT("/:id", hb.Visit.UpdateVisitHandler)
		api.DELETE("/:id", hb.Visit.DeleteVisitHandler)
		api.POST("/:id/confirm", hb.Visit.ConfirmVisitHandler)
		api.POST("/:id/cancel", hb.Visit.CancelVisitHandler)
	}
}

// RegisterTimelineRoutes registers rendered-day endpoints.
func RegisterTimelineRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/timeline")
	{
		api.GET("/day", hb.Timeline.DayTimelineHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Glowdesk"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterSpecialistRoutes(r, hb)
	RegisterVisitRoutes(r, hb)
	RegisterTimelineRoutes(r, hb)
}
