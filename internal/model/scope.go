package model

import "ticketdesk/pkg/scope"

// Scope carries the caller identity through use cases and repositories.
type Scope struct {
	UserID   string
	Username string
	Email    string
	Role     string
}

// NewScope builds a Scope from a verified token payload.
func NewScope(p scope.Payload) Scope {
	return Scope{
		UserID:   p.UserID,
		Username: p.Username,
		Email:    p.Email,
		Role:     p.Role,
	}
}

// IsStaff reports whether the caller may act on tickets they do not own.
func (s Scope) IsStaff() bool {
	return s.Role == RoleAgent || s.Role == RoleAdmin
}
