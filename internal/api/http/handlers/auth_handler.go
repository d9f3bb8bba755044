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

// AuthHandler exposes signup, login and logout endpoints.
type AuthHandler struct {
	store      *store.Store
	sessions   *store.SessionRegistry
	dispatcher events.Dispatcher
}

// NewAuthHandler constructs handler.
func NewAuthHandler(entityStore *store.Store, sessions *store.SessionRegistry, dispatcher events.Dispatcher) *AuthHandler {
	return &AuthHandler{store: entityStore, sessions: sessions, dispatcher: dispatcher}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if fields := req.Validate(); len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}

	user, created := h.store.CreateUserIfAbsent(req.Username, req.Password)
	if !created {
		return apperrors.NewConflict("Username already exists")
	}
	token := h.sessions.Create(user.ID)

	h.publish(c, events.EventUserSignedUp, user.ID, events.UserPayload{Username: user.Username})

	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Username: user.Username},
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewBadRequest("Username and password are required")
	}

	user, ok := h.store.GetUserByUsername(req.Username)
	if !ok || user.Password != req.Password {
		return apperrors.NewUnauthorized("Invalid credentials")
	}

	token := h.sessions.Create(user.ID)

	h.publish(c, events.EventUserLoggedIn, user.ID, events.UserPayload{Username: user.Username})

	return c.JSON(dto.AuthResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Username: user.Username},
	})
}

// Logout handles POST /api/auth/logout. Destroying the token is idempotent.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	h.sessions.Destroy(token)
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *AuthHandler) publish(c *fiber.Ctx, eventType events.EventType, userID string, payload interface{}) {
	if h.dispatcher == nil {
		return
	}
	_ = h.dispatcher.Publish(c.Context(), events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}
