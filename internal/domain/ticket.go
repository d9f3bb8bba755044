package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// Valid reports whether the status belongs to the closed set.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// Valid reports whether the priority belongs to the closed set.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// Ticket is the aggregate for tracked work items. Description and Priority
// are optional and nil when absent.
type Ticket struct {
	ID          string
	Title       string
	Description *string
	Status      TicketStatus
	Priority    *TicketPriority
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
