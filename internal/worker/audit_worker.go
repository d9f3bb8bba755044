package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-tracker/internal/events"
)

// StartAuditWorker subscribes audit-log handlers for every domain event.
// Handlers run synchronously on the publishing request.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil || logger == nil {
		return
	}

	audit := func(_ context.Context, event events.Event) error {
		logger.Info("audit",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.String("user_id", event.UserID),
			zap.Time("timestamp", event.Timestamp),
			zap.Any("payload", event.Payload),
		)
		return nil
	}

	for _, eventType := range []events.EventType{
		events.EventUserSignedUp,
		events.EventUserLoggedIn,
		events.EventTicketCreated,
		events.EventTicketUpdated,
		events.EventTicketDeleted,
	} {
		dispatcher.Subscribe(eventType, audit)
	}
}
