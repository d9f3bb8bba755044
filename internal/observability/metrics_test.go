package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMetricsTotals(t *testing.T) {
	t.Parallel()

	t.Run("empty metrics report zero", func(t *testing.T) {
		m := NewMetrics()
		requests, errors := m.Totals()
		require.Zero(t, requests)
		require.Zero(t, errors)
	})

	t.Run("aggregates across routes and statuses", func(t *testing.T) {
		m := NewMetrics()
		m.RecordRequest("/api/tickets", "GET", 200, time.Millisecond)
		m.RecordRequest("/api/tickets", "GET", 200, time.Millisecond)
		m.RecordRequest("/api/tickets", "POST", 201, time.Millisecond)
		m.RecordError("/api/tickets", "GET", "UNAUTHORIZED")

		requests, errors := m.Totals()
		require.EqualValues(t, 3, requests)
		require.EqualValues(t, 1, errors)
	})

	t.Run("nil receiver is safe", func(t *testing.T) {
		var m *Metrics
		m.RecordRequest("/x", "GET", 200, 0)
		m.RecordError("/x", "GET", "INTERNAL_ERROR")
		requests, errors := m.Totals()
		require.Zero(t, requests)
		require.Zero(t, errors)
	})
}
