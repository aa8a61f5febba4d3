package notification

import (
	"context"

	"ticketdesk/internal/model"
)

// Channel is an opaque handle to one live realtime connection. Send attempts
// delivery of a single record and must not block; any returned error marks the
// channel dead and it will be pruned from the registry after the current
// fan-out pass.
type Channel interface {
	Send(n model.Notification) error
}

// UseCase is the notification subsystem: the event bus plus the durable store.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Lifecycle. Run blocks draining the delivery queue; call it in its own
	// goroutine. Shutdown stops the dispatch loop after the queue drains.
	Run()
	Shutdown(ctx context.Context) error

	// Subscription management, keyed by user identity. Both operations are
	// idempotent.
	Subscribe(userID string, ch Channel)
	Unsubscribe(userID string, ch Channel)

	// Publish validates the input, enqueues the record for realtime fan-out
	// and persists it to the store. It never blocks on delivery and returns
	// as soon as the record is queued.
	Publish(ctx context.Context, ip PublishInput) (model.Notification, error)

	// History returns the most recent records for a user from the durable
	// store, newest first.
	History(ctx context.Context, ip HistoryInput) ([]model.Notification, error)

	// MarkRead flips a stored record from unread to read. Idempotent.
	MarkRead(ctx context.Context, id string) error
}
