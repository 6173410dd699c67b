package otp

import (
	"context"
	"time"

	"passport/config"
	"passport/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const limiterKeyPrefix = "otp:limit:"

// redisRateLimiter is a fixed-window counter. INCR creates the key at 1, and
// only the creator sets the expiry, so the window boundary is race-free.
type redisRateLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewRateLimiter is the constructor for redisRateLimiter.
func NewRateLimiter(client *redis.Client, cfg *config.Config) service.OtpRateLimiter {
	return &redisRateLimiter{
		client: client,
		max:    cfg.Otp.RateLimitMax,
		window: cfg.Otp.RateLimitWindow,
	}
}

// Allow consumes one generation slot for the user.
func (l *redisRateLimiter) Allow(ctx context.Context, userID uuid.UUID) (bool, time.Duration, error) {
	key := limiterKeyPrefix + userID.String()

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, errors.Wrap(err, "failed to increment rate limit counter")
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, errors.Wrap(err, "failed to set rate limit window")
		}
	}

	if count <= int64(l.max) {
		return true, 0, nil
	}

	retryAfter, err := l.client.TTL(ctx, key).Result()
	if err != nil {
		return false, 0, errors.Wrap(err, "failed to read rate limit window")
	}
	if retryAfter < 0 {
		// Counter without expiry, from a crash between INCR and EXPIRE.
		// Re-arm the window instead of locking the user out forever.
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, errors.Wrap(err, "failed to re-arm rate limit window")
		}
		retryAfter = l.window
	}

	return false, retryAfter, nil
}
