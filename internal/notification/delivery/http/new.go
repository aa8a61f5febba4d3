package http

import (
	"ticketdesk/config"
	"ticketdesk/internal/notification"
	"ticketdesk/pkg/log"
)

type Handler struct {
	uc     notification.UseCase
	logger log.Logger
	wsCfg  config.WebSocketConfig
}

func New(uc notification.UseCase, logger log.Logger, wsCfg config.WebSocketConfig) *Handler {
	return &Handler{
		uc:     uc,
		logger: logger,
		wsCfg:  wsCfg,
	}
}
