package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ticket-tracker/internal/domain"
)

// TicketFields carries the editable fields of a ticket. Updates are a full
// replace: every call supplies the complete set, and a nil Description or
// Priority clears the field.
type TicketFields struct {
	Title       string
	Description *string
	Status      domain.TicketStatus
	Priority    *domain.TicketPriority
}

// Store holds all User and Ticket records in memory. It is the exclusive
// owner of those records; every method returns copies, never aliases into
// the maps. A single mutex guards both maps since the data model has no
// per-record locking.
type Store struct {
	mu          sync.RWMutex
	users       map[string]domain.User
	tickets     map[string]domain.Ticket
	ticketOrder []string
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:   make(map[string]domain.User),
		tickets: make(map[string]domain.Ticket),
	}
}

// CreateUserIfAbsent stores a new user unless the username is already
// taken, in which case the existing record is returned and created is
// false. The scan and the insert run under one lock acquisition; request
// handlers run on parallel goroutines, so a check-then-create split across
// two calls could admit duplicate usernames.
func (s *Store) CreateUserIfAbsent(username, password string) (user domain.User, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == username {
			return existing, false
		}
	}

	user = domain.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: password,
	}
	s.users[user.ID] = user
	return user, true
}

// GetUser looks a user up by id.
func (s *Store) GetUser(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

// GetUserByUsername scans for a user with the given username. Usernames are
// unique (enforced at signup) and compared case-sensitively.
func (s *Store) GetUserByUsername(username string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}
	return domain.User{}, false
}

// CreateTicket stores a new ticket with CreatedAt == UpdatedAt == now.
func (s *Store) CreateTicket(fields TicketFields) domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	ticket := domain.Ticket{
		ID:          uuid.NewString(),
		Title:       fields.Title,
		Description: cloneString(fields.Description),
		Status:      fields.Status,
		Priority:    clonePriority(fields.Priority),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tickets[ticket.ID] = ticket
	s.ticketOrder = append(s.ticketOrder, ticket.ID)
	return copyTicket(ticket)
}

// GetTicket looks a ticket up by id.
func (s *Store) GetTicket(id string) (domain.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticket, ok := s.tickets[id]
	if !ok {
		return domain.Ticket{}, false
	}
	return copyTicket(ticket), true
}

// ListTickets returns all tickets ordered by CreatedAt descending; tickets
// sharing a timestamp keep their insertion order.
func (s *Store) ListTickets() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Ticket, 0, len(s.ticketOrder))
	for _, id := range s.ticketOrder {
		out = append(out, copyTicket(s.tickets[id]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UpdateTicket replaces the editable fields of a ticket and refreshes
// UpdatedAt. CreatedAt is untouched. Returns false if the id is unknown.
func (s *Store) UpdateTicket(id string, fields TicketFields) (domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tickets[id]
	if !ok {
		return domain.Ticket{}, false
	}

	existing.Title = fields.Title
	existing.Description = cloneString(fields.Description)
	existing.Status = fields.Status
	existing.Priority = clonePriority(fields.Priority)
	existing.UpdatedAt = time.Now().UTC()
	s.tickets[id] = existing
	return copyTicket(existing), true
}

// DeleteTicket removes a ticket, reporting whether a record existed.
func (s *Store) DeleteTicket(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tickets[id]; !ok {
		return false
	}
	delete(s.tickets, id)
	for i, ordered := range s.ticketOrder {
		if ordered == id {
			s.ticketOrder = append(s.ticketOrder[:i], s.ticketOrder[i+1:]...)
			break
		}
	}
	return true
}

// Counts reports the number of stored users and tickets.
func (s *Store) Counts() (users, tickets int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users), len(s.tickets)
}

func copyTicket(t domain.Ticket) domain.Ticket {
	t.Description = cloneString(t.Description)
	t.Priority = clonePriority(t.Priority)
	return t
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func clonePriority(p *domain.TicketPriority) *domain.TicketPriority {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
