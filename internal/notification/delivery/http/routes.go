package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the notification routes.
//
// The websocket endpoint carries the subscription key in the path and does
// not enforce auth here; authentication is delegated to the upstream gateway.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/notify", h.Notify)
	r.GET("/notifications/:user_id", h.History)
	r.PATCH("/notifications/:user_id/read/:id", h.MarkRead)
	r.GET("/ws/:user_id", h.HandleWebSocket)
}
