package http

import (
	"strconv"

	"ticketdesk/internal/notification"

	"github.com/gin-gonic/gin"
)

// notifyRequest is the producer-facing publish payload. Server-assigned
// fields (id, created_at, read) are not accepted.
type notifyRequest struct {
	UserID           string `json:"user_id" binding:"required"`
	Message          string `json:"message" binding:"required"`
	TicketID         string `json:"ticket_id"`
	NotificationType string `json:"notification_type" binding:"required"`
}

func (req notifyRequest) toInput() notification.PublishInput {
	return notification.PublishInput{
		UserID:           req.UserID,
		Message:          req.Message,
		TicketID:         req.TicketID,
		NotificationType: req.NotificationType,
	}
}

func historyInput(c *gin.Context) notification.HistoryInput {
	ip := notification.HistoryInput{UserID: c.Param("user_id")}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.ParseInt(raw, 10, 64); err == nil {
			ip.Limit = limit
		}
	}
	return ip
}
