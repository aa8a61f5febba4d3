package usecase

import (
	"ticketdesk/config"
	"ticketdesk/internal/user"
	"ticketdesk/internal/user/repository"
	pkgLog "ticketdesk/pkg/log"
	"ticketdesk/pkg/mailer"
	"ticketdesk/pkg/scope"

	"github.com/google/uuid"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	tokens   repository.TokenRepository
	mailer   mailer.Sender
	jwtMgr   scope.Manager
	cfg      config.AuthConfig
	newToken func() string
}

func New(
	l pkgLog.Logger,
	repo repository.Repository,
	tokens repository.TokenRepository,
	sender mailer.Sender,
	jwtMgr scope.Manager,
	cfg config.AuthConfig,
) user.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		tokens:   tokens,
		mailer:   sender,
		jwtMgr:   jwtMgr,
		cfg:      cfg,
		newToken: uuid.NewString,
	}
}
