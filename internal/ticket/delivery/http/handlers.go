package http

import (
	"net/http"

	"ticketdesk/internal/model"
	"ticketdesk/internal/ticket"
	"ticketdesk/pkg/response"
	"ticketdesk/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := h.uc.Create(c.Request.Context(), h.scope(c), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Created(c, t)
}

func (h *Handler) Detail(c *gin.Context) {
	out, err := h.uc.Detail(c.Request.Context(), h.scope(c), c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, out)
}

func (h *Handler) Get(c *gin.Context) {
	out, err := h.uc.Get(c.Request.Context(), h.scope(c), getInput(c))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, getResponse{
		Tickets:   out.Tickets,
		Paginator: out.Paginator,
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := h.uc.Update(c.Request.Context(), h.scope(c), req.toInput(c.Param("id")))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, t)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), h.scope(c), c.Param("id")); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cm, err := h.uc.AddComment(c.Request.Context(), h.scope(c), ticket.AddCommentInput{
		TicketID: c.Param("id"),
		Content:  req.Content,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Created(c, cm)
}

func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.uc.ListComments(c.Request.Context(), h.scope(c), c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, comments)
}

func (h *Handler) UploadAttachment(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer file.Close()

	at, err := h.uc.UploadAttachment(c.Request.Context(), h.scope(c), ticket.UploadAttachmentInput{
		TicketID:    c.Param("id"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Created(c, at)
}

func (h *Handler) DownloadAttachment(c *gin.Context) {
	at, body, err := h.uc.DownloadAttachment(c.Request.Context(), h.scope(c), ticket.AttachmentInput{
		TicketID:     c.Param("id"),
		AttachmentID: c.Param("attachment_id"),
	})
	if err != nil {
		h.mapError(c, err)
		return
	}
	defer body.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": `attachment; filename="` + at.FileName + `"`,
	}
	c.DataFromReader(http.StatusOK, at.Size, at.ContentType, body, extraHeaders)
}

func (h *Handler) DeleteAttachment(c *gin.Context) {
	err := h.uc.DeleteAttachment(c.Request.Context(), h.scope(c), ticket.AttachmentInput{
		TicketID:     c.Param("id"),
		AttachmentID: c.Param("attachment_id"),
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *Handler) scope(c *gin.Context) model.Scope {
	payload, _ := scope.GetPayloadFromContext(c.Request.Context())
	return model.NewScope(payload)
}

func (h *Handler) mapError(c *gin.Context, err error) {
	switch err {
	case ticket.ErrTitleRequired, ticket.ErrDescriptionRequired,
		ticket.ErrInvalidStatus, ticket.ErrContentRequired, ticket.ErrFileRequired:
		response.BadRequest(c, err.Error())
	case ticket.ErrNotFound, ticket.ErrAttachmentNotFound:
		response.NotFound(c, err.Error())
	case ticket.ErrForbidden:
		response.Forbidden(c)
	default:
		h.logger.Errorf(c.Request.Context(), "internal.ticket.delivery.http: %v", err)
		response.InternalError(c)
	}
}
