package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/hackinsight-team/hackinsight/pkg/validator"

	"github.com/hackinsight-team/hackinsight/internal/adapter/handler"
	"github.com/hackinsight-team/hackinsight/internal/infrastructure/export"
	"github.com/hackinsight-team/hackinsight/internal/infrastructure/store"
	"github.com/hackinsight-team/hackinsight/internal/usecase/analytics"
	"github.com/hackinsight-team/hackinsight/internal/usecase/dataset"
	"github.com/hackinsight-team/hackinsight/internal/usecase/feedback"
	"github.com/hackinsight-team/hackinsight/internal/usecase/imaging"
	"github.com/hackinsight-team/hackinsight/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Session store and CSV codec
	log.Println("📦 Initializing session store...")
	datasetStore := store.NewDatasetStore(cfg.Dataset.SessionTTL)
	csvCodec := export.NewCSVCodec(cfg.Export.SnapshotPath)

	// Initialize services
	log.Println("⚙️  Initializing services...")
	datasetService := dataset.NewService(cfg.Dataset.MaxParticipants)
	analyticsService := analytics.NewService()
	feedbackService := feedback.NewService()
	imagingService := imaging.NewService()

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	datasetHandler := handler.NewDatasetHandler(datasetService, datasetStore, csvCodec, cfg, logger)
	analyticsHandler := handler.NewAnalyticsHandler(datasetService, analyticsService, datasetStore, logger)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, datasetStore, logger)
	imageHandler := handler.NewImageHandler(imagingService, cfg, logger)
	galleryHandler := handler.NewGalleryHandler(logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, datasetHandler, analyticsHandler, feedbackHandler, imageHandler, galleryHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
