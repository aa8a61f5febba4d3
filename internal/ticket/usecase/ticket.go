package usecase

import (
	"context"
	"fmt"

	"ticketdesk/internal/model"
	"ticketdesk/internal/ticket"
	"ticketdesk/internal/ticket/repository"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip ticket.CreateInput) (model.Ticket, error) {
	if ip.Title == "" {
		return model.Ticket{}, ticket.ErrTitleRequired
	}
	if ip.Description == "" {
		return model.Ticket{}, ticket.ErrDescriptionRequired
	}

	t, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Ticket: model.Ticket{
			Title:       ip.Title,
			Description: ip.Description,
			Status:      model.StatusOpen,
			UserID:      sc.UserID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.ticket.usecase.Create: %v", err)
		return model.Ticket{}, err
	}

	return t, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (ticket.TicketDetailOutput, error) {
	t, err := uc.authorizedTicket(ctx, sc, id)
	if err != nil {
		return ticket.TicketDetailOutput{}, err
	}

	comments, err := uc.repo.ListComments(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "internal.ticket.usecase.Detail.ListComments: %v", err)
		return ticket.TicketDetailOutput{}, err
	}

	attachments, err := uc.repo.ListAttachments(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "internal.ticket.usecase.Detail.ListAttachments: %v", err)
		return ticket.TicketDetailOutput{}, err
	}

	return ticket.TicketDetailOutput{
		Ticket:      t,
		Comments:    comments,
		Attachments: attachments,
	}, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip ticket.GetInput) (ticket.GetOutput, error) {
	if ip.Filter.Status != "" && !model.TicketStatus(ip.Filter.Status).Valid() {
		return ticket.GetOutput{}, ticket.ErrInvalidStatus
	}

	filter := repository.Filter{
		Status: ip.Filter.Status,
		UserID: ip.Filter.UserID,
	}

	// Regular users only ever see their own tickets.
	if !sc.IsStaff() {
		filter.UserID = sc.UserID
	}

	tickets, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter:        filter,
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.ticket.usecase.Get: %v", err)
		return ticket.GetOutput{}, err
	}

	return ticket.GetOutput{Tickets: tickets, Paginator: pag}, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip ticket.UpdateInput) (model.Ticket, error) {
	if ip.Status != nil && !ip.Status.Valid() {
		return model.Ticket{}, ticket.ErrInvalidStatus
	}

	existing, err := uc.authorizedTicket(ctx, sc, ip.ID)
	if err != nil {
		return model.Ticket{}, err
	}

	t, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{
		ID:          ip.ID,
		Title:       ip.Title,
		Description: ip.Description,
		Status:      ip.Status,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Ticket{}, ticket.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.ticket.usecase.Update: %v", err)
		return model.Ticket{}, err
	}

	uc.notify(ctx, ticket.NotifyInput{
		UserID:           existing.UserID,
		Message:          fmt.Sprintf("Ticket %q is now %s", t.Title, t.Status),
		TicketID:         t.ID,
		NotificationType: model.NotificationTypeTicketUpdate,
	})

	return t, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.authorizedTicket(ctx, sc, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return ticket.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.ticket.usecase.Delete: %v", err)
		return err
	}

	return nil
}

// authorizedTicket loads a ticket and checks the caller may act on it.
func (uc *usecase) authorizedTicket(ctx context.Context, sc model.Scope, id string) (model.Ticket, error) {
	t, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Ticket{}, ticket.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.ticket.usecase.authorizedTicket: %v", err)
		return model.Ticket{}, err
	}

	if t.UserID != sc.UserID && !sc.IsStaff() {
		return model.Ticket{}, ticket.ErrForbidden
	}

	return t, nil
}

// notify pushes an event to the notification service. Delivery problems are
// logged and never fail the ticket operation.
func (uc *usecase) notify(ctx context.Context, ip ticket.NotifyInput) {
	go func() {
		ctx := context.WithoutCancel(ctx)
		if err := uc.notifier.Notify(ctx, ip); err != nil {
			uc.l.Warnf(ctx, "internal.ticket.usecase.notify: %v", err)
		}
	}()
}
