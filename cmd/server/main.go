package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jlin/peacepet-backend/config"
	"github.com/jlin/peacepet-backend/internal/app/controller"
	"github.com/jlin/peacepet-backend/internal/app/repository"
	"github.com/jlin/peacepet-backend/internal/app/service"
	"github.com/jlin/peacepet-backend/internal/db"
	"github.com/jlin/peacepet-backend/internal/middleware"
	"github.com/jlin/peacepet-backend/internal/reconciler"
	"github.com/jlin/peacepet-backend/internal/router"
	"github.com/jlin/peacepet-backend/internal/storage"
	"github.com/jlin/peacepet-backend/pkg/logger"
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

	logger.Info("Starting PEACEPET CMS Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize object storage
	objectStorage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)
	assets := service.NewAssetSyncer(objectStorage)

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	feedbackRepo := repository.NewFeedbackRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	settingRepo := repository.NewSettingRepository(db.GetDB())

	// Initialize services
	verifier := service.NewStaticVerifier(
		cfg.Admin.Username,
		cfg.Admin.Password,
		cfg.Admin.PasswordHash,
	)
	authService := service.NewAuthService(verifier, cfg.Session.Secret, cfg.Session.Expiry)
	categoryService := service.NewCategoryService(categoryRepo, assets)
	productService := service.NewProductService(productRepo, feedbackRepo, assets)
	feedbackService := service.NewFeedbackService(feedbackRepo, assets)
	orderService := service.NewOrderService(orderRepo)
	settingService := service.NewSettingService(settingRepo, assets)

	// Initialize controllers
	catalogController := controller.NewCatalogController(categoryService, productService)
	orderController := controller.NewOrderController(orderService)
	authController := controller.NewAuthController(authService, int(cfg.Session.Expiry.Seconds()))
	adminController := controller.NewAdminController(
		categoryService,
		productService,
		feedbackService,
		orderService,
		settingService,
	)

	// Initialize middleware
	adminMiddleware := middleware.NewAdminMiddleware(authService)

	// Optional orphaned-asset sweep
	if cfg.Reconciler.Enabled {
		sweep := reconciler.New(objectStorage, categoryRepo, productRepo, feedbackRepo, settingRepo)
		if err := sweep.Start(cfg.Reconciler.Schedule); err != nil {
			logger.Fatal("Failed to start asset reconciler", err)
		}
		defer sweep.Stop()
	}

	// Setup router
	r := router.NewRouter(
		catalogController,
		orderController,
		authController,
		adminController,
		adminMiddleware,
		categoryRepo,
		settingRepo,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
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
