package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the ticket routes. The group is expected to carry
// the auth middleware; every handler reads the caller from the context scope.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/tickets", h.Create)
	r.GET("/tickets", h.Get)
	r.GET("/tickets/:id", h.Detail)
	r.PATCH("/tickets/:id", h.Update)
	r.DELETE("/tickets/:id", h.Delete)

	r.POST("/tickets/:id/comments", h.AddComment)
	r.GET("/tickets/:id/comments", h.ListComments)

	r.POST("/tickets/:id/attachments", h.UploadAttachment)
	r.GET("/tickets/:id/attachments/:attachment_id", h.DownloadAttachment)
	r.DELETE("/tickets/:id/attachments/:attachment_id", h.DeleteAttachment)
}
