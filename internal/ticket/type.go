package ticket

import (
	"io"

	"ticketdesk/internal/model"
	"ticketdesk/pkg/paginator"
)

// CreateInput carries a new ticket submission. Status is always assigned by
// the use case, never by the caller.
type CreateInput struct {
	Title       string
	Description string
}

// UpdateInput carries a partial ticket update. Nil fields are left unchanged.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Status      *model.TicketStatus
}

// Filter narrows ticket listings.
type Filter struct {
	Status string
	UserID string
}

// GetInput selects a page of tickets.
type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// AddCommentInput carries a new comment on a ticket.
type AddCommentInput struct {
	TicketID string
	Content  string
}

// UploadAttachmentInput carries one file uploaded against a ticket.
type UploadAttachmentInput struct {
	TicketID    string
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// AttachmentInput addresses one attachment of a ticket.
type AttachmentInput struct {
	TicketID     string
	AttachmentID string
}

// NotifyInput is the event a ticket operation pushes to the notification
// service.
type NotifyInput struct {
	UserID           string
	Message          string
	TicketID         string
	NotificationType string
}
