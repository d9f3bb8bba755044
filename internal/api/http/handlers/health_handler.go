package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-tracker/internal/observability"
	"github.com/spec-kit/ticket-tracker/internal/store"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	store       *store.Store
	sessions    *store.SessionRegistry
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, entityStore *store.Store, sessions *store.SessionRegistry, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, store: entityStore, sessions: sessions, metrics: metrics}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness. The store and registry are in-process,
// so readiness surfaces their record counts plus the request counters.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	users, tickets := h.store.Counts()
	requests, errors := h.metrics.Totals()
	return c.JSON(fiber.Map{
		"status": "ready",
		"stats": fiber.Map{
			"users":    users,
			"tickets":  tickets,
			"sessions": h.sessions.Active(),
			"requests": requests,
			"errors":   errors,
		},
	})
}
