package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"accounting-api/internal/api"
	"accounting-api/internal/api/handlers"
	"accounting-api/internal/repository"
	"accounting-api/pkg/config"
	"accounting-api/pkg/logger"
	"accounting-api/pkg/mongodb"

	"go.uber.org/zap"
)

// @title Accounting API
// @version 1.0
// @description Personal bookkeeping service: spendings, categories, funding sources and per-database metadata over MongoDB.

// @host localhost:8787
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting accounting service")

	// One client for the whole process; the database is selected per request
	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, &cfg.Mongo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			appLogger.Error("MongoDB disconnect error", zap.Error(err))
		}
	}()

	// Initialize repositories
	spendingRepo := repository.NewSpendingRepository(client, appLogger)
	categoryRepo := repository.NewCategoryRepository(client, appLogger)
	sourceRepo := repository.NewSourceRepository(client, appLogger)
	propertyRepo := repository.NewPropertyRepository(client, appLogger)

	// Initialize handlers
	spendingHandler := handlers.NewSpendingHandler(spendingRepo, appLogger)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, appLogger)
	sourceHandler := handlers.NewSourceHandler(sourceRepo, appLogger)
	managingHandler := handlers.NewManagingHandler(propertyRepo, appLogger)

	// Setup router
	app := api.SetupRouter(spendingHandler, categoryHandler, sourceHandler, managingHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
