package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowdesk/config"
	"glowdesk/database"
	scheduleRepo "glowdesk/database/repository/schedule"
	specialistRepo "glowdesk/database/repository/specialist"
	visitRepo "glowdesk/database/repository/visit"
	"glowdesk/handlers"
	"glowdesk/middleware"
	"glowdesk/routes"
	"glowdesk/services/availability"
	"glowdesk/services/timeline"
	"glowdesk/services/visit"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	specRepo := specialistRepo.NewMongoSpecialistRepo()
	visRepo := visitRepo.NewMongoVisitRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		ScheduleRepo:   schedRepo,
		SpecialistRepo: specRepo,
		VisitRepo:      visRepo,
		Cache:          utils.GetCacheClient(),
		CacheTTL:       time.Duration(config.AppConfig.SlotCacheTTL) * time.Second,
	}
	timelineService := &timeline.DefaultTimelineService{
		VisitRepo: visRepo,
	}
	visitService := &visit.DefaultVisitService{
		Repo:         visRepo,
		Availability: availabilityService,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Schedule:     handlers.NewScheduleHandler(schedRepo, availabilityService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Specialist:   handlers.NewSpecialistHandler(specRepo),
		Visit:        handlers.NewVisitHandler(visitService, timelineService),
		Timeline:     handlers.NewTimelineHandler(timelineService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
