package dto

import (
	"time"

	"github.com/spec-kit/ticket-tracker/internal/domain"
	"github.com/spec-kit/ticket-tracker/internal/store"
	apperrors "github.com/spec-kit/ticket-tracker/pkg/util"
)

// TicketRequest is the payload for both create and update; updates are a
// full replace, so the same required fields apply.
type TicketRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    *string `json:"priority"`
}

// Validate checks the ticket shape, returning one entry per failing field.
func (r TicketRequest) Validate() []apperrors.FieldError {
	var fields []apperrors.FieldError
	if r.Title == "" {
		fields = append(fields, apperrors.FieldError{Field: "title", Message: "Title is required"})
	}
	if !domain.TicketStatus(r.Status).Valid() {
		fields = append(fields, apperrors.FieldError{Field: "status", Message: "Please select a valid status"})
	}
	if r.Priority != nil && !domain.TicketPriority(*r.Priority).Valid() {
		fields = append(fields, apperrors.FieldError{Field: "priority", Message: "Please select a valid priority"})
	}
	return fields
}

// Fields converts a validated request into store fields. A blank
// description is stored as absent.
func (r TicketRequest) Fields() store.TicketFields {
	fields := store.TicketFields{
		Title:  r.Title,
		Status: domain.TicketStatus(r.Status),
	}
	if r.Description != nil && *r.Description != "" {
		fields.Description = r.Description
	}
	if r.Priority != nil {
		p := domain.TicketPriority(*r.Priority)
		fields.Priority = &p
	}
	return fields
}

// TicketResponse is the wire shape of a ticket. Description and priority
// serialize as null when absent; timestamps as ISO-8601.
type TicketResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description *string                `json:"description"`
	Status      domain.TicketStatus    `json:"status"`
	Priority    *domain.TicketPriority `json:"priority"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// NewTicketResponse maps a domain ticket onto the wire shape.
func NewTicketResponse(ticket domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		Priority:    ticket.Priority,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}
}
