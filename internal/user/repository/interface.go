package repository

import (
	"context"
	"errors"
	"time"

	"ticketdesk/internal/model"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrTokenNotFound = errors.New("token not found")
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.User, error)
	Detail(ctx context.Context, id string) (model.User, error)
	GetOne(ctx context.Context, opts GetOneOptions) (model.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	CreateActivity(ctx context.Context, opts CreateActivityOptions) (model.ActivityLog, error)
	ListActivity(ctx context.Context, userID string, limit int64) ([]model.ActivityLog, error)
}

// TokenRepository holds short-lived auth state: one-time reset tokens and
// login attempt counters.
//
//go:generate mockery --name TokenRepository
type TokenRepository interface {
	SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error
	// ResolveResetToken returns the user id a token was issued for, or
	// ErrTokenNotFound for unknown or expired tokens.
	ResolveResetToken(ctx context.Context, token string) (string, error)
	DeleteResetToken(ctx context.Context, token string) error

	// LoginAttempts returns the current failed-login counter for a key.
	LoginAttempts(ctx context.Context, key string) (int64, error)
	// IncrLoginAttempts bumps the failed-login counter for a key and returns
	// the new value. The counter expires after window.
	IncrLoginAttempts(ctx context.Context, key string, window time.Duration) (int64, error)
	ResetLoginAttempts(ctx context.Context, key string) error
}
