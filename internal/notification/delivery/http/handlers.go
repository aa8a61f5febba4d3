package http

import (
	"net/http"

	"ticketdesk/internal/notification"
	"ticketdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// Notify enqueues a notification for realtime delivery and persistence. The
// 202 acknowledgment only means "queued"; delivery is best effort.
func (h *Handler) Notify(c *gin.Context) {
	var req notifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	n, err := h.uc.Publish(c.Request.Context(), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":       "queued",
		"notification": n,
	})
}

// History returns the most recent stored notifications for a user, newest
// first. It reads the durable store, not the live subscriber registry, so
// offline users see their history too.
func (h *Handler) History(c *gin.Context) {
	res, err := h.uc.History(c.Request.Context(), historyInput(c))
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, res)
}

// MarkRead flips one stored notification to read.
func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.uc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *Handler) mapError(c *gin.Context, err error) {
	switch err {
	case notification.ErrUserIDRequired, notification.ErrMessageRequired, notification.ErrTypeRequired:
		response.BadRequest(c, err.Error())
	case notification.ErrNotFound:
		response.NotFound(c, err.Error())
	default:
		h.logger.Errorf(c.Request.Context(), "internal.notification.delivery.http: %v", err)
		response.InternalError(c)
	}
}
