package repository

import (
	"ticketdesk/internal/model"
	"ticketdesk/pkg/paginator"
)

// Filter contains filtering options for ticket queries.
type Filter struct {
	IDs    []string
	Status string
	UserID string
}

// CreateOptions contains options for creating a ticket.
type CreateOptions struct {
	Ticket model.Ticket
}

// UpdateOptions contains options for updating a ticket.
// Only non-nil fields will be updated.
type UpdateOptions struct {
	ID          string
	Title       *string
	Description *string
	Status      *model.TicketStatus
}

// GetOptions contains options for paginated ticket listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// CreateCommentOptions contains options for creating a comment.
type CreateCommentOptions struct {
	Comment model.Comment
}

// CreateAttachmentOptions contains options for recording attachment metadata.
type CreateAttachmentOptions struct {
	Attachment model.Attachment
}
