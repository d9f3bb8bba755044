package events

import (
	"time"

	"github.com/spec-kit/ticket-tracker/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserSignedUp  EventType = "user_signed_up"
	EventUserLoggedIn  EventType = "user_logged_in"
	EventTicketCreated EventType = "ticket_created"
	EventTicketUpdated EventType = "ticket_updated"
	EventTicketDeleted EventType = "ticket_deleted"
)

// Event represents a domain event emitted by handlers after a successful
// store mutation.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserPayload payload for signup/login events.
type UserPayload struct {
	Username string `json:"username"`
}

// TicketPayload payload for ticket lifecycle events.
type TicketPayload struct {
	TicketID string                 `json:"ticket_id"`
	Title    string                 `json:"title,omitempty"`
	Status   domain.TicketStatus    `json:"status,omitempty"`
	Priority *domain.TicketPriority `json:"priority,omitempty"`
}
