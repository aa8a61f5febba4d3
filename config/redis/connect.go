package redis

import (
	"context"
	"fmt"
	"time"

	"ticketdesk/config"

	redisclient "github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

// Connect creates a Redis client and verifies connectivity with a ping.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redisclient.Client, error) {
	client := redisclient.NewClient(&redisclient.Options{
		Addr:         cfg.Host,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		MinIdleConns: cfg.MinIdleConns,
		PoolSize:     cfg.PoolSize,
		PoolTimeout:  cfg.PoolTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// Disconnect closes the Redis client.
func Disconnect(client *redisclient.Client) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
