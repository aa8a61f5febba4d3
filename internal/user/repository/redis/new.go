package redis

import (
	"ticketdesk/internal/user/repository"
	pkgLog "ticketdesk/pkg/log"

	"github.com/redis/go-redis/v9"
)

type implTokenRepository struct {
	l      pkgLog.Logger
	client *redis.Client
}

var _ repository.TokenRepository = &implTokenRepository{}

func New(l pkgLog.Logger, client *redis.Client) *implTokenRepository {
	return &implTokenRepository{
		l:      l,
		client: client,
	}
}
