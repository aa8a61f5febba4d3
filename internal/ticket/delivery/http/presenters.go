package http

import (
	"ticketdesk/internal/model"
	"ticketdesk/internal/ticket"
	"ticketdesk/pkg/paginator"

	"github.com/gin-gonic/gin"
)

type createRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (req createRequest) toInput() ticket.CreateInput {
	return ticket.CreateInput{
		Title:       req.Title,
		Description: req.Description,
	}
}

type updateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (req updateRequest) toInput(id string) ticket.UpdateInput {
	ip := ticket.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := model.TicketStatus(*req.Status)
		ip.Status = &status
	}
	return ip
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func getInput(c *gin.Context) ticket.GetInput {
	var pq paginator.PaginateQuery
	_ = c.ShouldBindQuery(&pq)

	return ticket.GetInput{
		Filter: ticket.Filter{
			Status: c.Query("status"),
			UserID: c.Query("user_id"),
		},
		PaginateQuery: pq,
	}
}

type getResponse struct {
	Tickets   []model.Ticket      `json:"tickets"`
	Paginator paginator.Paginator `json:"paginator"`
}
