package redis

import (
	"context"
	"time"

	"ticketdesk/internal/user/repository"

	"github.com/redis/go-redis/v9"
)

const (
	resetTokenPrefix   = "auth:reset:"
	loginAttemptPrefix = "auth:attempts:"
)

func (r *implTokenRepository) SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, resetTokenPrefix+token, userID, ttl).Err(); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.redis.SaveResetToken: %v", err)
		return err
	}
	return nil
}

func (r *implTokenRepository) ResolveResetToken(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, resetTokenPrefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return "", repository.ErrTokenNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.redis.ResolveResetToken: %v", err)
		return "", err
	}
	return userID, nil
}

func (r *implTokenRepository) DeleteResetToken(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, resetTokenPrefix+token).Err(); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.redis.DeleteResetToken: %v", err)
		return err
	}
	return nil
}

func (r *implTokenRepository) LoginAttempts(ctx context.Context, key string) (int64, error) {
	count, err := r.client.Get(ctx, loginAttemptPrefix+key).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		r.l.Errorf(ctx, "internal.user.repository.redis.LoginAttempts: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *implTokenRepository) IncrLoginAttempts(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := loginAttemptPrefix + key

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.redis.IncrLoginAttempts: %v", err)
		return 0, err
	}

	// First failure in a window starts the expiry clock.
	if count == 1 {
		if err := r.client.Expire(ctx, redisKey, window).Err(); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.redis.IncrLoginAttempts.Expire: %v", err)
		}
	}

	return count, nil
}

func (r *implTokenRepository) ResetLoginAttempts(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, loginAttemptPrefix+key).Err(); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.redis.ResetLoginAttempts: %v", err)
		return err
	}
	return nil
}
