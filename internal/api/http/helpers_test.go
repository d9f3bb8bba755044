package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/ticket-tracker/internal/api/http/handlers"
	"github.com/spec-kit/ticket-tracker/internal/auth"
	"github.com/spec-kit/ticket-tracker/internal/events"
	"github.com/spec-kit/ticket-tracker/internal/observability"
	"github.com/spec-kit/ticket-tracker/internal/store"
	"github.com/spec-kit/ticket-tracker/internal/worker"
)

// testEnv wires one fresh app per test: its own store, registry,
// dispatcher and log sink, never shared state.
type testEnv struct {
	app      *fiber.App
	store    *store.Store
	sessions *store.SessionRegistry
	logs     *observer.ObservedLogs
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	metrics := observability.NewMetrics()
	entityStore := store.New()
	sessions := store.NewSessionRegistry()
	dispatcher := events.NewInMemoryDispatcher(logger)
	worker.StartAuditWorker(dispatcher, logger)

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("ticket-tracker", "test", entityStore, sessions, metrics),
		Auth:           handlers.NewAuthHandler(entityStore, sessions, dispatcher),
		Tickets:        handlers.NewTicketsHandler(entityStore, dispatcher),
		AuthMiddleware: auth.NewAuthMiddleware(sessions),
	})

	return &testEnv{app: app, store: entityStore, sessions: sessions, logs: logs}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// signup registers a user and returns the issued token.
func (e *testEnv) signup(t *testing.T, username, password string) string {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

type ticketBody struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    *string `json:"priority"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}
