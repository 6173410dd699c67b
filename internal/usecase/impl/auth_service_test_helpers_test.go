package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"passport/config"
	mockRepo "passport/internal/mocks/repository"
	mockService "passport/internal/mocks/service"
	mockUsecase "passport/internal/mocks/usecase"
	"passport/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			AccessTokenTTL:    15 * time.Minute,
			RefreshTokenTTL:   7 * 24 * time.Hour,
			MaxActiveSessions: maxActiveSessions,
		},
		Otp: &config.OtpConfig{
			Length:          6,
			TTL:             30 * time.Minute,
			MaxAttempts:     5,
			RateLimitMax:    3,
			RateLimitWindow: 10 * time.Minute,
		},
	}
}

type authMocks struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	sessionRepo  *mockRepo.MockRefreshSessionRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	otpUsecase   *mockUsecase.MockOtpUsecase
}

func newAuthServiceForTest(t *testing.T, maxActiveSessions int) (usecase.AuthUsecase, *authMocks) {
	t.Helper()

	m := &authMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		sessionRepo:  mockRepo.NewMockRefreshSessionRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
		otpUsecase:   mockUsecase.NewMockOtpUsecase(t),
	}

	service := NewAuthService(AuthServiceParams{
		TxManager:    m.txManager,
		UserRepo:     m.userRepo,
		SessionRepo:  m.sessionRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		OtpUsecase:   m.otpUsecase,
		Config:       newTestConfig(maxActiveSessions),
		Logger:       newDiscardLogger(),
	})

	return service, m
}
