package postgre

import (
	"time"

	"ticketdesk/internal/model"

	"github.com/aarondl/null/v8"
)

type ticketRow struct {
	ID          string      `boil:"id"`
	Title       string      `boil:"title"`
	Description null.String `boil:"description"`
	Status      string      `boil:"status"`
	UserID      string      `boil:"user_id"`
	CreatedAt   time.Time   `boil:"created_at"`
	UpdatedAt   time.Time   `boil:"updated_at"`
}

func (row ticketRow) toModel() model.Ticket {
	return model.Ticket{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description.String,
		Status:      model.TicketStatus(row.Status),
		UserID:      row.UserID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

type commentRow struct {
	ID        string    `boil:"id"`
	Content   string    `boil:"content"`
	TicketID  string    `boil:"ticket_id"`
	UserID    string    `boil:"user_id"`
	CreatedAt time.Time `boil:"created_at"`
}

func (row commentRow) toModel() model.Comment {
	return model.Comment{
		ID:        row.ID,
		Content:   row.Content,
		TicketID:  row.TicketID,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
	}
}

type attachmentRow struct {
	ID          string      `boil:"id"`
	TicketID    string      `boil:"ticket_id"`
	ObjectName  string      `boil:"object_name"`
	FileName    string      `boil:"file_name"`
	ContentType null.String `boil:"content_type"`
	Size        int64       `boil:"size"`
	CreatedAt   time.Time   `boil:"created_at"`
}

func (row attachmentRow) toModel() model.Attachment {
	return model.Attachment{
		ID:          row.ID,
		TicketID:    row.TicketID,
		ObjectName:  row.ObjectName,
		FileName:    row.FileName,
		ContentType: row.ContentType.String,
		Size:        row.Size,
		CreatedAt:   row.CreatedAt,
	}
}
