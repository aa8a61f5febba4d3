package repository

import "ticketdesk/internal/model"

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	User model.User
}

// GetOneOptions contains options for getting a single user. Exactly one
// selector should be set.
type GetOneOptions struct {
	ID       string
	Username string
	Email    string
}

// CreateActivityOptions contains options for recording an activity entry.
type CreateActivityOptions struct {
	Activity model.ActivityLog
}
