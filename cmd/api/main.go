package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/listing-monitor/internal/config"
	httpDelivery "github.com/listing-monitor/internal/delivery/http"
	"github.com/listing-monitor/internal/delivery/http/handler"
	"github.com/listing-monitor/internal/pkg/logger"
	"github.com/listing-monitor/internal/repository/cache"
	"github.com/listing-monitor/internal/repository/postgres"
	"github.com/listing-monitor/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Listing Monitor")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	cityRepo := postgres.NewCityRepository(db)
	districtRepo := postgres.NewDistrictRepository(db)
	itemRepo := postgres.NewItemRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	taxonomyUC := usecase.NewTaxonomyUseCase(
		cityRepo,
		districtRepo,
		cacheRepo,
		log,
		cfg.Cache.SentinelCacheTTL,
	)

	resolver := usecase.NewLocationResolver(taxonomyUC, log)

	itemUC := usecase.NewItemUseCase(
		itemRepo,
		resolver,
		log,
	)

	taskUC := usecase.NewTaskUseCase(
		taskRepo,
		districtRepo,
		log,
		cfg.Monitor,
	)

	dispatchUC := usecase.NewDispatchUseCase(
		itemRepo,
		taskRepo,
		taxonomyUC,
		log,
		cfg.Monitor,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	itemHandler := handler.NewItemHandler(itemUC, log)
	taskHandler := handler.NewTaskHandler(taskUC, dispatchUC, log)
	cityHandler := handler.NewCityHandler(taxonomyUC, log)
	districtHandler := handler.NewDistrictHandler(taxonomyUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		db,
		redisClient,
		itemHandler,
		taskHandler,
		cityHandler,
		districtHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
