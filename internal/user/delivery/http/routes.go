package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the public auth routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/forgot-password", h.ForgotPassword)
	r.POST("/reset-password", h.ResetPassword)
}

// RegisterProtectedRoutes registers routes that require a verified token.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/me", h.Me)
	r.GET("/users/:id", h.Detail)
	r.GET("/activity", h.ListActivity)
}
