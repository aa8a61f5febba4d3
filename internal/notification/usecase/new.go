package usecase

import (
	"time"

	"ticketdesk/internal/notification"
	"ticketdesk/internal/notification/repository"
	pkgLog "ticketdesk/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	bus   *eventBus
	clock func() time.Time
	newID func() string
}

func New(l pkgLog.Logger, repo repository.Repository) notification.UseCase {
	return newImpl(l, repo)
}

func newImpl(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		bus:   newEventBus(l),
		clock: time.Now,
		newID: newNotificationID,
	}
}
