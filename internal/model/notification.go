package model

import "time"

// Notification types produced by the platform.
const (
	NotificationTypeTicketUpdate = "ticket_update"
	NotificationTypeComment      = "comment"
	NotificationTypeManual       = "manual"
)

// Notification describes one notification addressed to a single user.
// The event bus never mutates a record after it is enqueued; the Read flag
// is flipped only by the store layer.
type Notification struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	UserID           string    `json:"user_id" bson:"user_id"`
	Message          string    `json:"message" bson:"message"`
	TicketID         string    `json:"ticket_id,omitempty" bson:"ticket_id,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	Read             bool      `json:"read" bson:"read"`
	NotificationType string    `json:"notification_type" bson:"notification_type"`
}
