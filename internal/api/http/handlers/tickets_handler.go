package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/ticket-tracker/internal/api/dto"
	"github.com/spec-kit/ticket-tracker/internal/auth"
	"github.com/spec-kit/ticket-tracker/internal/events"
	"github.com/spec-kit/ticket-tracker/internal/store"
	apperrors "github.com/spec-kit/ticket-tracker/pkg/util"
)

// TicketsHandler manages ticket CRUD endpoints. All routes are guarded, so
// an authenticated user id is always available; tickets are not owned
// per-user, so it is only used for event attribution.
type TicketsHandler struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(entityStore *store.Store, dispatcher events.Dispatcher) *TicketsHandler {
	return &TicketsHandler{store: entityStore, dispatcher: dispatcher}
}

// ListTickets GET /api/tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	tickets := h.store.ListTickets()
	items := make([]dto.TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		items = append(items, dto.NewTicketResponse(ticket))
	}
	return c.JSON(items)
}

// GetTicket GET /api/tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, ok := h.store.GetTicket(c.Params("id"))
	if !ok {
		return apperrors.NewNotFound("Ticket")
	}
	return c.JSON(dto.NewTicketResponse(ticket))
}

// CreateTicket POST /api/tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if fields := req.Validate(); len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}

	ticket := h.store.CreateTicket(req.Fields())

	h.publish(c, events.EventTicketCreated, events.TicketPayload{
		TicketID: ticket.ID,
		Title:    ticket.Title,
		Status:   ticket.Status,
		Priority: ticket.Priority,
	})

	return c.Status(http.StatusCreated).JSON(dto.NewTicketResponse(ticket))
}

// UpdateTicket PATCH /api/tickets/:id. Updates replace every editable
// field; the payload is validated exactly like create.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if fields := req.Validate(); len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}

	ticket, ok := h.store.UpdateTicket(c.Params("id"), req.Fields())
	if !ok {
		return apperrors.NewNotFound("Ticket")
	}

	h.publish(c, events.EventTicketUpdated, events.TicketPayload{
		TicketID: ticket.ID,
		Title:    ticket.Title,
		Status:   ticket.Status,
		Priority: ticket.Priority,
	})

	return c.JSON(dto.NewTicketResponse(ticket))
}

// DeleteTicket DELETE /api/tickets/:id.
func (h *TicketsHandler) DeleteTicket(c *fiber.Ctx) error {
	id := c.Params("id")
	if !h.store.DeleteTicket(id) {
		return apperrors.NewNotFound("Ticket")
	}

	h.publish(c, events.EventTicketDeleted, events.TicketPayload{TicketID: id})

	return c.JSON(fiber.Map{"message": "Ticket deleted successfully"})
}

func (h *TicketsHandler) publish(c *fiber.Ctx, eventType events.EventType, payload events.TicketPayload) {
	if h.dispatcher == nil {
		return
	}
	userID, _ := auth.UserIDFromContext(c)
	_ = h.dispatcher.Publish(c.Context(), events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
