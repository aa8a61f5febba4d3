package user

import "ticketdesk/internal/model"

// RegisterInput carries a new account submission.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
}

// LoginInput carries login credentials. Username may also be an email address.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput bundles the issued token with the authenticated user.
type LoginOutput struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// ForgotPasswordInput starts a password reset.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput completes a password reset with a one-time token.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}
