package http

import (
	"ticketdesk/internal/model"
	"ticketdesk/internal/user"
	"ticketdesk/pkg/response"
	"ticketdesk/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.uc.Register(c.Request.Context(), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Created(c, created)
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	out, err := h.uc.Login(c.Request.Context(), user.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, out)
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.uc.ForgotPassword(c.Request.Context(), user.ForgotPasswordInput{Email: req.Email}); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "if the address exists, a reset email has been sent"})
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := h.uc.ResetPassword(c.Request.Context(), user.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *Handler) Me(c *gin.Context) {
	usr, err := h.uc.Me(c.Request.Context(), h.scope(c))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, usr)
}

func (h *Handler) Detail(c *gin.Context) {
	usr, err := h.uc.Detail(c.Request.Context(), h.scope(c), c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, usr)
}

func (h *Handler) ListActivity(c *gin.Context) {
	logs, err := h.uc.ListActivity(c.Request.Context(), h.scope(c), c.Query("user_id"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, logs)
}

func (h *Handler) scope(c *gin.Context) model.Scope {
	payload, _ := scope.GetPayloadFromContext(c.Request.Context())
	return model.NewScope(payload)
}

func (h *Handler) mapError(c *gin.Context, err error) {
	switch err {
	case user.ErrUsernameRequired, user.ErrEmailRequired, user.ErrPasswordRequired,
		user.ErrPasswordTooShort, user.ErrUsernameTaken, user.ErrEmailTaken,
		user.ErrInvalidResetToken:
		response.BadRequest(c, err.Error())
	case user.ErrInvalidCredentials, user.ErrUserInactive:
		response.Unauthorized(c)
	case user.ErrTooManyAttempts:
		response.TooManyRequests(c, err.Error())
	case user.ErrUserNotFound:
		response.NotFound(c, err.Error())
	default:
		h.logger.Errorf(c.Request.Context(), "internal.user.delivery.http: %v", err)
		response.InternalError(c)
	}
}
