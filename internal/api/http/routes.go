package httpapi

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"weatherserve/internal/weather"
)

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, fetchTimeout time.Duration, logger *slog.Logger) {
	app.Get("/weather", func(c *fiber.Ctx) error {
		// Detached from the request context: a client disconnect must not
		// cancel an in-flight fetch, and an abandoned store update keeps the
		// cache useful for subsequent requests.
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		records, err := service.Refresh(ctx)
		if err != nil {
			logger.Error("weather refresh failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).Send(nil)
		}

		return c.JSON(records)
	})
}
