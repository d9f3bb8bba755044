package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func createTicket(t *testing.T, env *testEnv, token string, payload map[string]any) ticketBody {
	t.Helper()

	resp := env.request(t, http.MethodPost, "/api/tickets", token, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var ticket ticketBody
	decodeJSON(t, resp, &ticket)
	require.NotEmpty(t, ticket.ID)
	return ticket
}

func TestTicketsRequireAuth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/tickets"},
		{http.MethodGet, "/api/tickets/some-id"},
		{http.MethodPost, "/api/tickets"},
		{http.MethodPatch, "/api/tickets/some-id"},
		{http.MethodDelete, "/api/tickets/some-id"},
	}

	for _, route := range routes {
		resp := env.request(t, route.method, route.path, "", nil)
		require.Equalf(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", route.method, route.path)
	}

	_, tickets := env.store.Counts()
	require.Zero(t, tickets, "unauthenticated requests must not touch the store")
}

func TestCreateTicket(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all business fields", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.signup(t, "alice", "secret")

		created := createTicket(t, env, token, map[string]any{
			"title":    "Fix login bug",
			"status":   "open",
			"priority": "high",
		})
		require.Equal(t, "Fix login bug", created.Title)
		require.Equal(t, "open", created.Status)
		require.NotNil(t, created.Priority)
		require.Equal(t, "high", *created.Priority)
		require.Nil(t, created.Description)
		require.Equal(t, created.CreatedAt, created.UpdatedAt)

		resp := env.request(t, http.MethodGet, "/api/tickets/"+created.ID, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var fetched ticketBody
		decodeJSON(t, resp, &fetched)
		require.Equal(t, created, fetched)
	})

	t.Run("timestamps serialize as ISO-8601", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.signup(t, "alice", "secret")

		created := createTicket(t, env, token, map[string]any{
			"title":  "Fix login bug",
			"status": "open",
		})
		_, err := time.Parse(time.RFC3339, created.CreatedAt)
		require.NoError(t, err)
	})

	t.Run("rejects an invalid payload with field errors", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.signup(t, "alice", "secret")

		resp := env.request(t, http.MethodPost, "/api/tickets", token, map[string]any{
			"description": "no title, no status",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorBody
		decodeJSON(t, resp, &body)
		require.Equal(t, "Validation error", body.Message)
		require.Len(t, body.Errors, 2)
		require.Equal(t, "title", body.Errors[0].Field)
		require.Equal(t, "status", body.Errors[1].Field)

		_, tickets := env.store.Counts()
		require.Zero(t, tickets)
	})

	t.Run("rejects an unknown priority", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.signup(t, "alice", "secret")

		resp := env.request(t, http.MethodPost, "/api/tickets", token, map[string]any{
			"title":    "x",
			"status":   "open",
			"priority": "urgent",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListTickets(t *testing.T) {
	t.Parallel()

	t.Run("empty list", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.signup(t, "alice", "secret")

		resp := env.request(t, http.MethodGet, "/api/tickets", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list []ticketBody
		decodeJSON(t, resp, &list)
		require.Empty(t, list)
	})

	t.Run("orders newest first", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.signup(t, "alice", "secret")

		var ids []string
		for _, title := range []string{"first", "second", "third"} {
			ticket := createTicket(t, env, token, map[string]any{
				"title":  title,
				"status": "open",
			})
			ids = append(ids, ticket.ID)
			time.Sleep(time.Millisecond)
		}

		resp := env.request(t, http.MethodGet, "/api/tickets", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list []ticketBody
		decodeJSON(t, resp, &list)
		require.Len(t, list, 3)
		require.Equal(t, ids[2], list[0].ID)
		require.Equal(t, ids[1], list[1].ID)
		require.Equal(t, ids[0], list[2].ID)
	})
}

func TestGetTicket(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := env.signup(t, "alice", "secret")

	resp := env.request(t, http.MethodGet, "/api/tickets/unknown-id", token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body errorBody
	decodeJSON(t, resp, &body)
	require.Equal(t, "Ticket not found", body.Message)
}

func TestUpdateTicket(t *testing.T) {
	t.Parallel()

	t.Run("replaces every editable field", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.signup(t, "alice", "secret")

		created := createTicket(t, env, token, map[string]any{
			"title":       "Fix login bug",
			"description": "session drops on refresh",
			"status":      "open",
			"priority":    "high",
		})

		time.Sleep(time.Millisecond)
		resp := env.request(t, http.MethodPatch, "/api/tickets/"+created.ID, token, map[string]any{
			"title":  "Fix login bug for real",
			"status": "in_progress",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated ticketBody
		decodeJSON(t, resp, &updated)
		require.Equal(t, "Fix login bug for real", updated.Title)
		require.Equal(t, "in_progress", updated.Status)
		require.Nil(t, updated.Description, "omitted fields are cleared on full replace")
		require.Nil(t, updated.Priority)
		require.Equal(t, created.CreatedAt, updated.CreatedAt)

		createdAt, err := time.Parse(time.RFC3339, updated.CreatedAt)
		require.NoError(t, err)
		updatedAt, err := time.Parse(time.RFC3339, updated.UpdatedAt)
		require.NoError(t, err)
		require.True(t, updatedAt.After(createdAt))
	})

	t.Run("validates like create", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.signup(t, "alice", "secret")
		created := createTicket(t, env, token, map[string]any{
			"title":  "x",
			"status": "open",
		})

		resp := env.request(t, http.MethodPatch, "/api/tickets/"+created.ID, token, map[string]any{
			"title":  "x",
			"status": "done",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		env := newTestEnv(t)
		token := env.signup(t, "alice", "secret")

		resp := env.request(t, http.MethodPatch, "/api/tickets/unknown-id", token, map[string]any{
			"title":  "x",
			"status": "open",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteTicket(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := env.signup(t, "alice", "secret")
	created := createTicket(t, env, token, map[string]any{
		"title":  "x",
		"status": "open",
	})

	resp := env.request(t, http.MethodDelete, "/api/tickets/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body errorBody
	decodeJSON(t, resp, &body)
	require.Equal(t, "Ticket deleted successfully", body.Message)

	resp = env.request(t, http.MethodDelete, "/api/tickets/"+created.ID, token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
