package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "weatherserve/internal/api/http"
	"weatherserve/internal/config"
	"weatherserve/internal/logging"
	"weatherserve/internal/store"
	"weatherserve/internal/weather"
	"weatherserve/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg, "weatherserve")

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// In-memory store holding the latest fetched records.
	memStore := store.NewMemoryStore()

	// Single configured provider, shared read-only across requests.
	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, cfg.Location)

	// Core service coordinating provider and store.
	service := weather.NewService(memStore, provider)

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weatherserve",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
	})

	// Global middleware
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	// Boundary CORS policy for browser callers. The literal "null" origin is
	// accepted for sandboxed and file:// test clients.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost") || origin == "null"
		},
		AllowMethods: fiber.MethodGet,
		AllowHeaders: strings.Join([]string{
			fiber.HeaderAuthorization,
			fiber.HeaderAccept,
			fiber.HeaderContentType,
		}, ","),
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weatherserve",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, cfg.FetchTimeout, logger)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber server stopped", "error", err)
		}
	}()

	logger.Info("listening", "port", cfg.Port, "location", cfg.Location)

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
}
