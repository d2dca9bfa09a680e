package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"github.com/listing-monitor/internal/config"
	"github.com/listing-monitor/internal/delivery/http/handler"
	"github.com/listing-monitor/internal/delivery/http/middleware"
	"github.com/listing-monitor/internal/repository/cache"
	"github.com/listing-monitor/internal/repository/postgres"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	db    *postgres.DB
	redis *cache.Redis

	// Handlers
	itemHandler     *handler.ItemHandler
	taskHandler     *handler.TaskHandler
	cityHandler     *handler.CityHandler
	districtHandler *handler.DistrictHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	db *postgres.DB,
	redis *cache.Redis,
	itemHandler *handler.ItemHandler,
	taskHandler *handler.TaskHandler,
	cityHandler *handler.CityHandler,
	districtHandler *handler.DistrictHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Listing Monitor",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		db:              db,
		redis:           redis,
		itemHandler:     itemHandler,
		taskHandler:     taskHandler,
		cityHandler:     cityHandler,
		districtHandler: districtHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.health)

	// Item routes
	api.Get("/items", s.itemHandler.GetAll)
	api.Get("/items/recent", s.itemHandler.GetRecent)
	api.Get("/items/by-source", s.itemHandler.GetBySourceURL)
	api.Get("/items/by-url/*", s.itemHandler.GetByURL)
	api.Get("/items/:id", s.itemHandler.GetByID)
	api.Post("/items", s.itemHandler.Create)
	api.Delete("/items/cleanup/older-than/:days", s.itemHandler.CleanupOlderThan)
	api.Delete("/items/:id", s.itemHandler.Delete)

	// Task routes
	api.Get("/tasks", s.taskHandler.GetAll)
	api.Get("/tasks/pending", s.taskHandler.GetPending)
	api.Get("/tasks/chat/:chatID", s.taskHandler.GetByChatID)
	api.Get("/tasks/:id/items-to-send", s.taskHandler.ItemsToSend)
	api.Get("/tasks/:id", s.taskHandler.GetByID)
	api.Post("/tasks", s.taskHandler.Create)
	api.Post("/tasks/:id/got-items", s.taskHandler.GotItems)
	api.Put("/tasks/:id", s.taskHandler.Update)
	api.Delete("/tasks/chat/:chatID", s.taskHandler.DeleteByChat)
	api.Delete("/tasks/:id", s.taskHandler.Delete)

	// City routes
	api.Get("/cities", s.cityHandler.GetAll)
	api.Get("/cities/:id/districts", s.cityHandler.GetDistricts)
	api.Get("/cities/:id", s.cityHandler.GetByID)
	api.Post("/cities", s.cityHandler.Create)
	api.Put("/cities/:id", s.cityHandler.Update)
	api.Delete("/cities/:id", s.cityHandler.Delete)

	// District routes
	api.Get("/districts", s.districtHandler.GetAll)
	api.Get("/districts/:id", s.districtHandler.GetByID)
	api.Post("/districts", s.districtHandler.Create)
	api.Put("/districts/:id", s.districtHandler.Update)
	api.Delete("/districts/:id", s.districtHandler.Delete)

	// Location resolver debug route
	api.Get("/locations/resolve", s.itemHandler.ResolveLocation)
}

// health - проверка доступности базы и кеша
func (s *Server) health(c *fiber.Ctx) error {
	status := "healthy"
	checks := fiber.Map{"database": "ok", "redis": "ok"}

	if err := s.db.Health(c.Context()); err != nil {
		status = "unhealthy"
		checks["database"] = err.Error()
	}
	if err := s.redis.Health(c.Context()); err != nil {
		status = "unhealthy"
		checks["redis"] = err.Error()
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
