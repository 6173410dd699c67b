package impl

import (
	"context"
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login_Success(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:            userID,
		Email:         "user@example.com",
		PasswordHash:  "$2a$12$hash",
		EmailVerified: true,
	}

	m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com", (*uuid.UUID)(nil)).Return(user, nil)
	m.hasher.EXPECT().Check("correct-password", "$2a$12$hash").Return(true)

	m.tokenService.EXPECT().GenerateAccessToken(userID, (*uuid.UUID)(nil), []string{}).Return("access-token", nil)
	m.tokenService.EXPECT().GenerateRefreshToken(userID, mock.AnythingOfType("uuid.UUID")).Return("refresh-token", nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

			factory.EXPECT().RefreshSessionRepo().Return(sessionRepo)
			sessionRepo.EXPECT().
				CreateSession(ctx, mock.AnythingOfType("*entity.RefreshSession")).
				RunAndReturn(func(_ context.Context, session *entity.RefreshSession) error {
					assert.Equal(t, userID, session.UserID)
					assert.Equal(t, "refresh-hash", session.TokenHash)

					return nil
				})

			return fn(factory)
		})

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.False(t, output.RequiresVerification)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()

	m.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com", (*uuid.UUID)(nil)).
		Return(nil, repository.ErrUserNotFound)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "$2a$12$hash",
	}

	m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com", (*uuid.UUID)(nil)).Return(user, nil)
	m.hasher.EXPECT().Check("wrong-password", "$2a$12$hash").Return(false)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_OAuthOnlyAccount(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	googleID := "google-sub-1"
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "user@example.com",
		GoogleID: &googleID,
	}

	// No password hash means the check fails before the hasher is consulted.
	m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com", (*uuid.UUID)(nil)).Return(user, nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "anything",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_TenantPartition(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	tenantID := uuid.New()

	// The same email existing in another partition must not be reachable.
	m.userRepo.EXPECT().
		FindByEmail(ctx, "user@example.com", &tenantID).
		Return(nil, repository.ErrUserNotFound)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "correct-password",
		TenantID: &tenantID,
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnverifiedEmailFlagged(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "user@example.com",
		PasswordHash: "$2a$12$hash",
	}

	m.userRepo.EXPECT().FindByEmail(ctx, "user@example.com", (*uuid.UUID)(nil)).Return(user, nil)
	m.hasher.EXPECT().Check("correct-password", "$2a$12$hash").Return(true)

	m.tokenService.EXPECT().GenerateAccessToken(userID, (*uuid.UUID)(nil), []string{}).Return("access-token", nil)
	m.tokenService.EXPECT().GenerateRefreshToken(userID, mock.AnythingOfType("uuid.UUID")).Return("refresh-token", nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

			factory.EXPECT().RefreshSessionRepo().Return(sessionRepo)
			sessionRepo.EXPECT().CreateSession(ctx, mock.AnythingOfType("*entity.RefreshSession")).Return(nil)

			return fn(factory)
		})

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.True(t, output.RequiresVerification)
}

func TestAuthService_RegisterTenantless_Success(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	newUserID := uuid.New()

	m.hasher.EXPECT().ValidatePasswordStrength("Str0ngPass!").Return(nil)
	m.hasher.EXPECT().Hash("Str0ngPass!").Return("$2a$12$newhash", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().
				FindByEmail(ctx, "new@example.com", (*uuid.UUID)(nil)).
				Return(nil, repository.ErrUserNotFound)
			userRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(_ context.Context, user *entity.User) error {
					assert.Nil(t, user.TenantID)
					assert.Equal(t, "$2a$12$newhash", user.PasswordHash)
					user.ID = newUserID

					return nil
				})

			return fn(factory)
		}).
		Once()

	m.tokenService.EXPECT().GenerateAccessToken(newUserID, (*uuid.UUID)(nil), []string{}).Return("access-token", nil)
	m.tokenService.EXPECT().GenerateRefreshToken(newUserID, mock.AnythingOfType("uuid.UUID")).Return("refresh-token", nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

			factory.EXPECT().RefreshSessionRepo().Return(sessionRepo)
			sessionRepo.EXPECT().CreateSession(ctx, mock.AnythingOfType("*entity.RefreshSession")).Return(nil)

			return fn(factory)
		}).
		Once()

	m.otpUsecase.EXPECT().
		GenerateOtp(ctx, newUserID).
		Return(&usecase.GenerateOtpOutput{Dispatched: true}, nil)

	output, err := svc.RegisterTenantless(ctx, &usecase.RegisterTenantlessInput{
		Email:    "new@example.com",
		Password: "Str0ngPass!",
		Name:     "New User",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.True(t, output.RequiresVerification)
}

func TestAuthService_RegisterTenantless_EmailExists(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "taken@example.com"}

	m.hasher.EXPECT().ValidatePasswordStrength("Str0ngPass!").Return(nil)
	m.hasher.EXPECT().Hash("Str0ngPass!").Return("$2a$12$newhash", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().
				FindByEmail(ctx, "taken@example.com", (*uuid.UUID)(nil)).
				Return(existing, nil)

			return fn(factory)
		})

	output, err := svc.RegisterTenantless(ctx, &usecase.RegisterTenantlessInput{
		Email:    "taken@example.com",
		Password: "Str0ngPass!",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestAuthService_RegisterTenantless_WeakPassword(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()

	m.hasher.EXPECT().
		ValidatePasswordStrength("weak").
		Return(errors.New("password too short"))

	output, err := svc.RegisterTenantless(ctx, &usecase.RegisterTenantlessInput{
		Email:    "new@example.com",
		Password: "weak",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Logout_Success(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	sessionID := uuid.New()
	claims := &service.Claims{
		UserID:    uuid.New(),
		Type:      service.TokenTypeRefresh,
		SessionID: &sessionID,
	}

	m.tokenService.EXPECT().ValidateRefreshToken("raw-refresh").Return(claims, nil)
	m.sessionRepo.EXPECT().
		RevokeSessionByID(ctx, sessionID, mock.AnythingOfType("time.Time")).
		Return(nil)

	err := svc.Logout(ctx, &usecase.LogoutInput{RefreshToken: "raw-refresh"})

	require.NoError(t, err)
}

func TestAuthService_Logout_InvalidTokenIsIdempotent(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()

	m.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, domainerrors.ErrTokenInvalid)

	err := svc.Logout(ctx, &usecase.LogoutInput{RefreshToken: "garbage"})

	require.NoError(t, err)
}

func TestAuthService_RevokeSession_OwnerMismatch(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	session := &entity.RefreshSession{ID: sessionID, UserID: uuid.New()}

	m.sessionRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(session, nil)

	err := svc.RevokeSession(ctx, userID, sessionID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthService_SetPassword_RevokesAllSessions(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com"}

	m.hasher.EXPECT().ValidatePasswordStrength("Str0ngPass!").Return(nil)
	m.hasher.EXPECT().Hash("Str0ngPass!").Return("$2a$12$newhash", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			sessionRepo := mockRepo.NewMockRefreshSessionRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().RefreshSessionRepo().Return(sessionRepo)

			userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			userRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(_ context.Context, updated *entity.User) error {
					assert.Equal(t, "$2a$12$newhash", updated.PasswordHash)

					return nil
				})
			sessionRepo.EXPECT().
				RevokeSessionsByUserID(ctx, userID, mock.AnythingOfType("time.Time")).
				Return(nil)

			return fn(factory)
		})

	err := svc.SetPassword(ctx, &usecase.SetPasswordInput{
		UserID:   userID,
		Password: "Str0ngPass!",
	})

	require.NoError(t, err)
}

func TestAuthService_GetAuthMethods(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	googleID := "google-sub-1"
	user := &entity.User{
		ID:           userID,
		PasswordHash: "$2a$12$hash",
		GoogleID:     &googleID,
	}

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	methods, err := svc.GetAuthMethods(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, []entity.AuthMethod{entity.AuthMethodPassword, entity.AuthMethodGoogle}, methods)
}

func TestAuthService_GetActiveSessions(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	sessions := []*entity.RefreshSession{
		{ID: uuid.New(), UserID: userID, CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)},
	}

	m.sessionRepo.EXPECT().FindSessionsByUserID(ctx, userID).Return(sessions, nil)

	got, err := svc.GetActiveSessions(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, sessions[0].ID, got[0].ID)
}

func TestAuthService_LogoutAllDevices(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	m.sessionRepo.EXPECT().
		RevokeSessionsByUserID(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	err := svc.LogoutAllDevices(ctx, userID)

	require.NoError(t, err)
}

func TestAuthService_DeleteExpiredSessions(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()

	m.sessionRepo.EXPECT().DeleteExpiredSessions(ctx).Return(nil)

	err := svc.DeleteExpiredSessions(ctx)

	require.NoError(t, err)
}
