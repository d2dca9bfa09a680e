package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/listing-monitor/internal/config"
	"github.com/listing-monitor/internal/pkg/logger"
	"github.com/listing-monitor/internal/repository/cache"
	"github.com/listing-monitor/internal/repository/postgres"
	"github.com/listing-monitor/internal/usecase"
	"github.com/listing-monitor/internal/worker"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Retention Worker")
	log.Info("Configuration loaded",
		zap.Int("retention_days", cfg.Worker.RetentionDays),
		zap.String("retention_schedule", cfg.Worker.RetentionSchedule))

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

	// 5. Initialize repositories
	cityRepo := postgres.NewCityRepository(db)
	districtRepo := postgres.NewDistrictRepository(db)
	itemRepo := postgres.NewItemRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	// 6. Initialize use cases
	taxonomyUC := usecase.NewTaxonomyUseCase(
		cityRepo,
		districtRepo,
		cacheRepo,
		log,
		cfg.Cache.SentinelCacheTTL,
	)
	resolver := usecase.NewLocationResolver(taxonomyUC, log)
	itemUC := usecase.NewItemUseCase(itemRepo, resolver, log)

	// 7. Initialize workers
	retentionWorker := worker.NewRetentionWorker(itemUC, cfg.Worker, log)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(retentionWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker stopped successfully")
}
