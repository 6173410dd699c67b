// Package otp implements the ephemeral verification-code store and its rate
// limiter on Redis.
package otp

import (
	"context"
	"log/slog"
	"time"

	"passport/config"
	"passport/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisStartTimeout = 10 * time.Second

// ClientParams defines the required parameters
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the Redis client backing the OTP engine.
func NewRedisClient(params ClientParams) (*redis.Client, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis config is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, redisStartTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.LogAttrs(ctx, slog.LevelInfo, "Redis connected",
				slog.String("addr", params.Config.Redis.Addr),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
