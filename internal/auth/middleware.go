package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-tracker/internal/store"
	apperrors "github.com/spec-kit/ticket-tracker/pkg/util"
)

const userIDKey = "auth_user_id"

// AuthMiddleware validates bearer tokens against the session registry.
type AuthMiddleware struct {
	sessions *store.SessionRegistry
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(sessions *store.SessionRegistry) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Handle enforces authentication for protected routes. On success the
// resolved user id is available via UserIDFromContext.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	userID, ok := m.sessions.Resolve(parts[1])
	if !ok {
		return apperrors.NewUnauthorized("Invalid or expired token")
	}

	c.Locals(userIDKey, userID)
	return c.Next()
}

// UserIDFromContext retrieves the authenticated user id.
func UserIDFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(userIDKey)
	if val == nil {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok
}

// TokenFromContext extracts the bearer token from the request, if present.
func TokenFromContext(c *fiber.Ctx) (string, bool) {
	parts := strings.SplitN(c.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
