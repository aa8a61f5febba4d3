package http

import (
	"ticketdesk/internal/user"
	"ticketdesk/pkg/log"
)

type Handler struct {
	uc     user.UseCase
	logger log.Logger
}

func New(uc user.UseCase, logger log.Logger) *Handler {
	return &Handler{
		uc:     uc,
		logger: logger,
	}
}
