package main

import (
	"context"
	"court_docket_app_go/config"
	"court_docket_app_go/db"
	"court_docket_app_go/handlers"
	"court_docket_app_go/middleware"
	"court_docket_app_go/models"
	"court_docket_app_go/services"
	"court_docket_app_go/services/jobs"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Case{}, &models.Hearing{}, &models.HearingOutcome{}, &models.AuditLog{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	services.InitializeStorage(cfg)

	loc, err := time.LoadLocation(cfg.ReminderTimezone)
	if err != nil {
		log.Printf("Unknown REMINDER_TIMEZONE %q, using UTC", cfg.ReminderTimezone)
		loc = time.UTC
	}

	// Create Echo instance
	e := echo.New()
	e.Validator = handlers.NewRequestValidator()

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	e.Use(middleware.InjectClock(services.SystemClock{Location: loc}))
	e.Use(middleware.AuditContext())

	handlers.RegisterAPIRoutes(e.Group("/api"))

	if cfg.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// Exports stored on the local disk are served from the export directory
	if !cfg.R2Configured() {
		e.Static("/"+cfg.ExportDir, cfg.ExportDir)
	}

	scheduler, err := jobs.StartScheduler(db.DB, cfg)
	if err != nil {
		log.Fatalf("Failed to start reminder scheduler: %v", err)
	}

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("[WARNING] Server shutdown: %v", err)
	}
	<-scheduler.Stop().Done()
	services.WaitForAuditWrites()
	log.Println("Server stopped")
}
