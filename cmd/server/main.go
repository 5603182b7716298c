package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kalpana12-cmd/amazon/config"
	"github.com/Kalpana12-cmd/amazon/internal/app/controller"
	"github.com/Kalpana12-cmd/amazon/internal/app/model"
	"github.com/Kalpana12-cmd/amazon/internal/app/repository"
	"github.com/Kalpana12-cmd/amazon/internal/app/service"
	"github.com/Kalpana12-cmd/amazon/internal/db"
	"github.com/Kalpana12-cmd/amazon/internal/router"
	"github.com/Kalpana12-cmd/amazon/internal/scheduler"
	"github.com/Kalpana12-cmd/amazon/pkg/catalog"
	"github.com/Kalpana12-cmd/amazon/pkg/logger"
	"github.com/Kalpana12-cmd/amazon/pkg/redis"
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

	logger.Info("Starting storefront cart server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"storage":     cfg.Storage.Backend,
		"log_level":   logLevel,
	})

	// Select the cart slot storage backend
	var storage repository.CartStorage
	switch cfg.Storage.Backend {
	case "redis":
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to initialize Redis", err)
		}
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
		storage = repository.NewRedisStorage(redis.GetClient())
	case "postgres":
		if err := db.Initialize(&cfg.Database); err != nil {
			logger.Fatal("Failed to initialize database", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("Failed to close database connection", err)
			}
		}()
		if err := db.Migrate(); err != nil {
			logger.Fatal("Failed to run migrations", err)
		}
		storage = repository.NewPostgresStorage(db.GetDB())
	default:
		storage = repository.NewMemoryStorage()
	}

	// Initialize the catalog client
	catalogClient, err := catalog.NewClient(catalog.Config{
		EndpointURL: cfg.Catalog.EndpointURL,
		Timeout:     cfg.Catalog.FetchTimeout,
	})
	if err != nil {
		logger.Fatal("Failed to create catalog client", err)
	}

	// Initialize services
	catalogService := service.NewCatalogService(catalogClient)
	cartService := service.NewCartService(storage, cfg.Storage.SlotKey, model.DefaultDeliveryOptions())
	summaryService := service.NewSummaryService(cfg.Pricing.TaxRateBps)

	// Restore the persisted cart and fetch the initial catalog
	if err := cartService.LoadFromStorage(context.Background()); err != nil {
		logger.Fatal("Failed to load cart from storage", err)
	}
	if err := catalogService.Load(context.Background()); err != nil {
		logger.Fatal("Failed to load catalog", err)
	}

	// Initialize controllers
	catalogController := controller.NewCatalogController(catalogService)
	cartController := controller.NewCartController(cartService)
	summaryController := controller.NewSummaryController(cartService, catalogService, summaryService)

	// Setup router
	r := router.NewRouter(catalogController, cartController, summaryController, cfg)
	engine := r.Setup()

	// Start the catalog refresh scheduler when configured
	if cfg.Catalog.RefreshCron != "" {
		catalogScheduler := scheduler.NewCatalogScheduler(catalogService, cfg.Catalog.RefreshCron)
		if err := catalogScheduler.Start(); err != nil {
			logger.Fatal("Failed to start catalog scheduler", err)
		}
		defer catalogScheduler.Stop()
	}

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
