package ticket

import (
	"context"
	"io"

	"ticketdesk/internal/model"
	"ticketdesk/pkg/paginator"
)

// Notifier publishes ticket events to the notification service. Implementations
// must not block ticket operations on delivery problems.
type Notifier interface {
	Notify(ctx context.Context, ip NotifyInput) error
}

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Ticket, error)
	Detail(ctx context.Context, sc model.Scope, id string) (TicketDetailOutput, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Ticket, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	AddComment(ctx context.Context, sc model.Scope, ip AddCommentInput) (model.Comment, error)
	ListComments(ctx context.Context, sc model.Scope, ticketID string) ([]model.Comment, error)

	UploadAttachment(ctx context.Context, sc model.Scope, ip UploadAttachmentInput) (model.Attachment, error)
	DownloadAttachment(ctx context.Context, sc model.Scope, ip AttachmentInput) (model.Attachment, io.ReadCloser, error)
	DeleteAttachment(ctx context.Context, sc model.Scope, ip AttachmentInput) error
}

// GetOutput is a page of tickets.
type GetOutput struct {
	Tickets   []model.Ticket
	Paginator paginator.Paginator
}

// TicketDetailOutput bundles a ticket with its comments and attachments.
type TicketDetailOutput struct {
	Ticket      model.Ticket       `json:"ticket"`
	Comments    []model.Comment    `json:"comments"`
	Attachments []model.Attachment `json:"attachments"`
}
