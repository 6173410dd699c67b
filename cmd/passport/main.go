package main

import (
	"context"
	"log/slog"
	"time"

	"passport/config"
	"passport/internal/infra/audit"
	"passport/internal/infra/auth"
	"passport/internal/infra/auth/google"
	logs "passport/internal/infra/log"
	"passport/internal/infra/notification"
	"passport/internal/infra/otp"
	"passport/internal/infra/persistence/postgres"
	"passport/internal/usecase"
	"passport/internal/usecase/impl"

	"go.uber.org/fx"
)

const sessionSweepInterval = time.Hour

type startServiceParams struct {
	fx.In
	fx.Lifecycle

	Auth   usecase.AuthUsecase
	Google usecase.GoogleUsecase
	Otp    usecase.OtpUsecase
	Logger *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			startService,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		otp.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTenantRepository,
			postgres.NewRoleRepository,
			postgres.NewRefreshSessionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewOAuthService,
			google.NewAuthService,
			otp.NewStore,
			otp.NewRateLimiter,
			notification.NewOtpSender,
			audit.NewSink,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOtpService,
			impl.NewAuthService,
			impl.NewGoogleService,
		),
	)
}

// startService constructs the full usecase graph and runs the
// expired-session sweeper for the lifetime of the application.
func startService(params startServiceParams) {
	ctx, cancel := context.WithCancel(context.Background())

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go sweepExpiredSessions(ctx, params.Auth, params.Logger)

			params.Logger.Info("passport service started")

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

func sweepExpiredSessions(ctx context.Context, authUsecase usecase.AuthUsecase, logger *slog.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := authUsecase.DeleteExpiredSessions(ctx); err != nil {
				logger.Error("failed to delete expired sessions", slog.Any("error", err))
			}
		}
	}
}
