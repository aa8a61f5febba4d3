package http

import (
	"ticketdesk/internal/ticket"
	"ticketdesk/pkg/log"
)

type Handler struct {
	uc     ticket.UseCase
	logger log.Logger
}

func New(uc ticket.UseCase, logger log.Logger) *Handler {
	return &Handler{
		uc:     uc,
		logger: logger,
	}
}
