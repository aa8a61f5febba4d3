package user

import (
	"context"

	"ticketdesk/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, ip RegisterInput) (model.User, error)
	Login(ctx context.Context, ip LoginInput) (LoginOutput, error)

	Detail(ctx context.Context, sc model.Scope, id string) (model.User, error)
	Me(ctx context.Context, sc model.Scope) (model.User, error)

	ForgotPassword(ctx context.Context, ip ForgotPasswordInput) error
	ResetPassword(ctx context.Context, ip ResetPasswordInput) error

	ListActivity(ctx context.Context, sc model.Scope, userID string) ([]model.ActivityLog, error)
}
