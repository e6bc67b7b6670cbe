package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/smreview/smreview-backend/config"
	"github.com/smreview/smreview-backend/internal/app/controller"
	"github.com/smreview/smreview-backend/internal/app/model"
	"github.com/smreview/smreview-backend/internal/app/repository"
	"github.com/smreview/smreview-backend/internal/app/service"
	"github.com/smreview/smreview-backend/internal/db"
	"github.com/smreview/smreview-backend/internal/middleware"
	"github.com/smreview/smreview-backend/internal/router"
	"github.com/smreview/smreview-backend/internal/scheduler"
	"github.com/smreview/smreview-backend/internal/storage"
	"github.com/smreview/smreview-backend/internal/sync"
	"github.com/smreview/smreview-backend/internal/websocket"
	"github.com/smreview/smreview-backend/pkg/logger"
	"github.com/smreview/smreview-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting SM REVIEW Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Select the backend strategy once at startup. Without a database
	// the server runs in demo mode: every interaction stays in memory.
	var (
		backend    sync.Backend
		reviewRepo repository.ReviewRepository
		adminRepo  repository.AdminRepository
	)

	if cfg.Database.Configured() {
		if err := db.Initialize(&cfg.Database); err != nil {
			logger.Fatal("Failed to initialize database", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("Failed to close database connection", err)
			}
		}()

		if err := db.Migrate(cfg); err != nil {
			logger.Fatal("Failed to run migrations", err)
		}

		reviewRepo = repository.NewReviewRepository(db.GetDB())
		adminRepo = repository.NewAdminRepository(db.GetDB())
		commentRepo := repository.NewCommentRepository(db.GetDB())
		counterRepo := repository.NewCounterRepository(db.GetDB())
		backend = sync.NewRemoteBackend(reviewRepo, commentRepo, counterRepo)
	} else {
		logger.Warn("Database not configured, running in demo mode", map[string]interface{}{
			"hint": "interactions will not persist across restarts",
		})
		backend = sync.NewNullBackend()
	}

	// Redis keeps the idempotency ledger across restarts; fall back to
	// the in-process ledger when it is unreachable.
	var ledger sync.Ledger
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, using in-memory ledger", map[string]interface{}{
			"error": err.Error(),
		})
		ledger = sync.NewMemoryLedger()
	} else {
		defer redis.Close()
		ledger = sync.NewRedisLedger(redis.GetClient())
	}

	syncClient := sync.NewClient(backend, ledger, cfg.Server.BaseURL)

	// Feed hub pushes every rebuilt snapshot to websocket subscribers
	hub := websocket.NewHub()
	go hub.Run()
	syncClient.SetOnChange(func(reviews []model.Review) {
		hub.BroadcastFeed(reviews)
	})

	// Initialize services
	authService := service.NewAuthService(adminRepo, cfg.JWT)
	reviewService := service.NewReviewService(reviewRepo, syncClient)

	if err := reviewService.ReseedFeed(context.Background()); err != nil {
		logger.Fatal("Failed to build the initial feed", err)
	}

	// S3 storage for poster uploads, optional
	var s3Storage *storage.S3Storage
	if cfg.S3.Bucket != "" {
		s3Storage = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		)
	}

	// Initialize controllers
	reviewController := controller.NewReviewController(syncClient)
	adminController := controller.NewAdminController(authService, reviewService)
	uploadController := controller.NewUploadController(s3Storage)
	feedController := controller.NewFeedController(hub, syncClient, cfg.CORS.AllowedOrigins)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		reviewController,
		adminController,
		uploadController,
		feedController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Nightly ledger maintenance
	ledgerScheduler := scheduler.NewLedgerScheduler(ledger, backend)
	if err := ledgerScheduler.Start(); err != nil {
		logger.Warn("Ledger scheduler failed to start", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer ledgerScheduler.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address":   addr,
			"pid":       os.Getpid(),
			"demo_mode": !backend.Remote(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
