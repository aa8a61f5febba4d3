package repository

import (
	"context"
	"errors"

	"ticketdesk/internal/model"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Repository is the durable notification store. It is independent of the
// realtime delivery path; the event bus never waits on it.
//
//go:generate mockery --name Repository
type Repository interface {
	Save(ctx context.Context, n model.Notification) error
	ListRecent(ctx context.Context, userID string, limit int64) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
