package usecase

import (
	"ticketdesk/internal/ticket"
	"ticketdesk/internal/ticket/repository"
	pkgLog "ticketdesk/pkg/log"
	"ticketdesk/pkg/storage"

	"github.com/google/uuid"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	store    storage.Storage
	notifier ticket.Notifier
	newID    func() string
}

func New(l pkgLog.Logger, repo repository.Repository, store storage.Storage, notifier ticket.Notifier) ticket.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		store:    store,
		notifier: notifier,
		newID:    uuid.NewString,
	}
}
