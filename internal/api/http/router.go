package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-tracker/internal/api/http/handlers"
	"github.com/spec-kit/ticket-tracker/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	tickets := api.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Patch("/:id", cfg.Tickets.UpdateTicket)
	tickets.Delete("/:id", cfg.Tickets.DeleteTicket)
}
