package notification

// PublishInput carries a notification submitted by a producer.
type PublishInput struct {
	UserID           string
	Message          string
	TicketID         string
	NotificationType string
}

// HistoryInput selects recent notifications for one user.
type HistoryInput struct {
	UserID string
	Limit  int64
}
