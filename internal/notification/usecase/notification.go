package usecase

import (
	"context"

	"ticketdesk/internal/model"
	"ticketdesk/internal/notification"
	"ticketdesk/internal/notification/repository"

	"github.com/google/uuid"
)

const defaultHistoryLimit = 10

func newNotificationID() string {
	return uuid.New().String()
}

func (uc *implUseCase) Run() {
	uc.bus.run()
}

func (uc *implUseCase) Shutdown(ctx context.Context) error {
	return uc.bus.shutdown(ctx)
}

func (uc *implUseCase) Subscribe(userID string, ch notification.Channel) {
	uc.bus.subscribe(userID, ch)
}

func (uc *implUseCase) Unsubscribe(userID string, ch notification.Channel) {
	uc.bus.unsubscribe(userID, ch)
}

func (uc *implUseCase) Publish(ctx context.Context, ip notification.PublishInput) (model.Notification, error) {
	if err := validatePublishInput(ip); err != nil {
		return model.Notification{}, err
	}

	n := model.Notification{
		ID:               uc.newID(),
		UserID:           ip.UserID,
		Message:          ip.Message,
		TicketID:         ip.TicketID,
		CreatedAt:        uc.clock(),
		Read:             false,
		NotificationType: ip.NotificationType,
	}

	uc.bus.publish(n)

	// Persistence is independent of realtime delivery; the publish path does
	// not wait on the store.
	go func() {
		if err := uc.repo.Save(context.WithoutCancel(ctx), n); err != nil {
			uc.l.Errorf(ctx, "internal.notification.usecase.Publish.Save: %v", err)
		}
	}()

	return n, nil
}

func (uc *implUseCase) History(ctx context.Context, ip notification.HistoryInput) ([]model.Notification, error) {
	if ip.UserID == "" {
		return nil, notification.ErrUserIDRequired
	}
	limit := ip.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	res, err := uc.repo.ListRecent(ctx, ip.UserID, limit)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.History: %v", err)
		return nil, err
	}
	return res, nil
}

func (uc *implUseCase) MarkRead(ctx context.Context, id string) error {
	if err := uc.repo.MarkRead(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return notification.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.notification.usecase.MarkRead: %v", err)
		return err
	}
	return nil
}

func validatePublishInput(ip notification.PublishInput) error {
	if ip.UserID == "" {
		return notification.ErrUserIDRequired
	}
	if ip.Message == "" {
		return notification.ErrMessageRequired
	}
	if ip.NotificationType == "" {
		return notification.ErrTypeRequired
	}
	return nil
}
