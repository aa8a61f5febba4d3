package postgre

import (
	"time"

	"ticketdesk/internal/model"

	"github.com/aarondl/null/v8"
)

type userRow struct {
	ID           string      `boil:"id"`
	Username     string      `boil:"username"`
	Email        string      `boil:"email"`
	FullName     null.String `boil:"full_name"`
	Phone        null.String `boil:"phone"`
	PasswordHash string      `boil:"password_hash"`
	IsActive     bool        `boil:"is_active"`
	Role         string      `boil:"role"`
	CreatedAt    time.Time   `boil:"created_at"`
	UpdatedAt    time.Time   `boil:"updated_at"`
}

func (row userRow) toModel() model.User {
	return model.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		FullName:     row.FullName.String,
		Phone:        row.Phone.String,
		PasswordHash: row.PasswordHash,
		IsActive:     row.IsActive,
		Role:         row.Role,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

type activityRow struct {
	ID        string      `boil:"id"`
	Action    string      `boil:"action"`
	Timestamp time.Time   `boil:"timestamp"`
	UserID    null.String `boil:"user_id"`
}

func (row activityRow) toModel() model.ActivityLog {
	return model.ActivityLog{
		ID:        row.ID,
		Action:    row.Action,
		Timestamp: row.Timestamp,
		UserID:    row.UserID.String,
	}
}
