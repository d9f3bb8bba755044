package store

import (
	"sync"

	"github.com/google/uuid"
)

// SessionRegistry maps opaque bearer tokens to user ids. Tokens never
// expire; they stay valid until an explicit Destroy. A user may hold any
// number of concurrent tokens.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewSessionRegistry returns an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]string)}
}

// Create issues a fresh token for the given user id.
func (r *SessionRegistry) Create(userID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := uuid.NewString()
	r.sessions[token] = userID
	return token
}

// Resolve returns the user id a token was issued for.
func (r *SessionRegistry) Resolve(token string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.sessions[token]
	return userID, ok
}

// Destroy invalidates a token. Destroying an unknown token is a no-op.
func (r *SessionRegistry) Destroy(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
}

// Active reports the number of live sessions.
func (r *SessionRegistry) Active() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
