package repository

import (
	"context"
	"errors"

	"ticketdesk/internal/model"
	"ticketdesk/pkg/paginator"
)

var ErrNotFound = errors.New("record not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Ticket, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Ticket, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Ticket, paginator.Paginator, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Ticket, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	CreateComment(ctx context.Context, sc model.Scope, opts CreateCommentOptions) (model.Comment, error)
	ListComments(ctx context.Context, sc model.Scope, ticketID string) ([]model.Comment, error)

	CreateAttachment(ctx context.Context, sc model.Scope, opts CreateAttachmentOptions) (model.Attachment, error)
	ListAttachments(ctx context.Context, sc model.Scope, ticketID string) ([]model.Attachment, error)
	DetailAttachment(ctx context.Context, sc model.Scope, id string) (model.Attachment, error)
	DeleteAttachment(ctx context.Context, sc model.Scope, id string) error
}
