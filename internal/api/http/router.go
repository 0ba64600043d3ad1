package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/newsletter-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Subscriptions *handlers.SubscriptionsHandler
	Metrics       fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health-check", cfg.Health.HealthCheck)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics)
	}

	app.Post("/subscriptions", cfg.Subscriptions.Subscribe)
}
