package usecase

import (
	"context"
	"fmt"

	"ticketdesk/internal/model"
	"ticketdesk/internal/ticket"
	"ticketdesk/internal/ticket/repository"
)

func (uc *usecase) AddComment(ctx context.Context, sc model.Scope, ip ticket.AddCommentInput) (model.Comment, error) {
	if ip.Content == "" {
		return model.Comment{}, ticket.ErrContentRequired
	}

	t, err := uc.authorizedTicket(ctx, sc, ip.TicketID)
	if err != nil {
		return model.Comment{}, err
	}

	cm, err := uc.repo.CreateComment(ctx, sc, repository.CreateCommentOptions{
		Comment: model.Comment{
			Content:  ip.Content,
			TicketID: ip.TicketID,
			UserID:   sc.UserID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.ticket.usecase.AddComment: %v", err)
		return model.Comment{}, err
	}

	// The owner commenting on their own ticket is not news to them.
	if t.UserID != sc.UserID {
		uc.notify(ctx, ticket.NotifyInput{
			UserID:           t.UserID,
			Message:          fmt.Sprintf("New comment on ticket %q", t.Title),
			TicketID:         t.ID,
			NotificationType: model.NotificationTypeComment,
		})
	}

	return cm, nil
}

func (uc *usecase) ListComments(ctx context.Context, sc model.Scope, ticketID string) ([]model.Comment, error) {
	if _, err := uc.authorizedTicket(ctx, sc, ticketID); err != nil {
		return nil, err
	}

	comments, err := uc.repo.ListComments(ctx, sc, ticketID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.ticket.usecase.ListComments: %v", err)
		return nil, err
	}

	return comments, nil
}
