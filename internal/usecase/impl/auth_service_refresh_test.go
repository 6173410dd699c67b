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

func refreshClaims(userID, sessionID uuid.UUID) *service.Claims {
	return &service.Claims{
		UserID:    userID,
		Type:      service.TokenTypeRefresh,
		SessionID: &sessionID,
	}
}

func TestAuthService_Refresh_RotatesWithinFamily(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	familyID := uuid.New()
	user := &entity.User{ID: userID, EmailVerified: true}
	session := &entity.RefreshSession{
		ID:        sessionID,
		UserID:    userID,
		TokenHash: "presented-hash",
		FamilyID:  familyID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	m.tokenService.EXPECT().ValidateRefreshToken("raw-refresh").Return(refreshClaims(userID, sessionID), nil)
	m.tokenService.EXPECT().HashToken("raw-refresh").Return("presented-hash")
	m.tokenService.EXPECT().GenerateAccessToken(userID, (*uuid.UUID)(nil), []string{}).Return("new-access", nil)
	m.tokenService.EXPECT().GenerateRefreshToken(userID, mock.AnythingOfType("uuid.UUID")).Return("new-refresh", nil)
	m.tokenService.EXPECT().HashToken("new-refresh").Return("successor-hash")
	m.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessionRepo := mockRepo.NewMockRefreshSessionRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().RefreshSessionRepo().Return(sessionRepo)
			factory.EXPECT().UserRepo().Return(userRepo)

			sessionRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(session, nil)
			userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			// The successor inherits the lineage instead of starting a new one.
			sessionRepo.EXPECT().
				CreateSession(ctx, mock.AnythingOfType("*entity.RefreshSession")).
				RunAndReturn(func(_ context.Context, successor *entity.RefreshSession) error {
					assert.Equal(t, familyID, successor.FamilyID)
					assert.Equal(t, "successor-hash", successor.TokenHash)
					assert.NotEqual(t, sessionID, successor.ID)

					return nil
				})
			sessionRepo.EXPECT().
				RevokeSessionIfActive(ctx, sessionID, mock.AnythingOfType("*uuid.UUID"), mock.AnythingOfType("time.Time")).
				Return(true, nil)

			return fn(factory)
		})

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "raw-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_Refresh_ReuseRevokesFamily(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	familyID := uuid.New()
	revokedAt := time.Now().Add(-time.Minute)
	session := &entity.RefreshSession{
		ID:        sessionID,
		UserID:    userID,
		TokenHash: "presented-hash",
		FamilyID:  familyID,
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}

	m.tokenService.EXPECT().ValidateRefreshToken("raw-refresh").Return(refreshClaims(userID, sessionID), nil)
	m.tokenService.EXPECT().HashToken("raw-refresh").Return("presented-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessionRepo := mockRepo.NewMockRefreshSessionRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().RefreshSessionRepo().Return(sessionRepo)
			factory.EXPECT().UserRepo().Return(userRepo)

			sessionRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(session, nil)

			return fn(factory)
		})

	// The family burn runs on the service-level repository, after the
	// read transaction has already rolled back on the reuse error.
	m.sessionRepo.EXPECT().
		RevokeFamily(ctx, familyID, mock.AnythingOfType("time.Time")).
		Return(nil)

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "raw-refresh"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthService_Refresh_HashMismatchRevokesFamily(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	familyID := uuid.New()
	session := &entity.RefreshSession{
		ID:        sessionID,
		UserID:    userID,
		TokenHash: "stored-hash",
		FamilyID:  familyID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	m.tokenService.EXPECT().ValidateRefreshToken("forged-refresh").Return(refreshClaims(userID, sessionID), nil)
	m.tokenService.EXPECT().HashToken("forged-refresh").Return("other-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessionRepo := mockRepo.NewMockRefreshSessionRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().RefreshSessionRepo().Return(sessionRepo)
			factory.EXPECT().UserRepo().Return(userRepo)

			sessionRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(session, nil)

			return fn(factory)
		})

	m.sessionRepo.EXPECT().
		RevokeFamily(ctx, familyID, mock.AnythingOfType("time.Time")).
		Return(nil)

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "forged-refresh"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthService_Refresh_FamilyRevocationFailureStillFailsClosed(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	familyID := uuid.New()
	revokedAt := time.Now().Add(-time.Minute)
	session := &entity.RefreshSession{
		ID:        sessionID,
		UserID:    userID,
		TokenHash: "presented-hash",
		FamilyID:  familyID,
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}

	m.tokenService.EXPECT().ValidateRefreshToken("raw-refresh").Return(refreshClaims(userID, sessionID), nil)
	m.tokenService.EXPECT().HashToken("raw-refresh").Return("presented-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessionRepo := mockRepo.NewMockRefreshSessionRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().RefreshSessionRepo().Return(sessionRepo)
			factory.EXPECT().UserRepo().Return(userRepo)

			sessionRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(session, nil)

			return fn(factory)
		})

	m.sessionRepo.EXPECT().
		RevokeFamily(ctx, familyID, mock.AnythingOfType("time.Time")).
		Return(errors.New("connection reset"))

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "raw-refresh"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthService_Refresh_RaceLoserFailsClosed(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	familyID := uuid.New()
	user := &entity.User{ID: userID}
	session := &entity.RefreshSession{
		ID:        sessionID,
		UserID:    userID,
		TokenHash: "presented-hash",
		FamilyID:  familyID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	m.tokenService.EXPECT().ValidateRefreshToken("raw-refresh").Return(refreshClaims(userID, sessionID), nil)
	m.tokenService.EXPECT().HashToken("raw-refresh").Return("presented-hash")
	m.tokenService.EXPECT().GenerateAccessToken(userID, (*uuid.UUID)(nil), []string{}).Return("new-access", nil)
	m.tokenService.EXPECT().GenerateRefreshToken(userID, mock.AnythingOfType("uuid.UUID")).Return("new-refresh", nil)
	m.tokenService.EXPECT().HashToken("new-refresh").Return("successor-hash")
	m.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessionRepo := mockRepo.NewMockRefreshSessionRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().RefreshSessionRepo().Return(sessionRepo)
			factory.EXPECT().UserRepo().Return(userRepo)

			sessionRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(session, nil)
			userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			sessionRepo.EXPECT().CreateSession(ctx, mock.AnythingOfType("*entity.RefreshSession")).Return(nil)

			// A concurrent rotation claimed the session first.
			sessionRepo.EXPECT().
				RevokeSessionIfActive(ctx, sessionID, mock.AnythingOfType("*uuid.UUID"), mock.AnythingOfType("time.Time")).
				Return(false, nil)

			return fn(factory)
		})

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "raw-refresh"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthService_Refresh_ExpiredSession(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	session := &entity.RefreshSession{
		ID:        sessionID,
		UserID:    userID,
		TokenHash: "presented-hash",
		FamilyID:  uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	m.tokenService.EXPECT().ValidateRefreshToken("raw-refresh").Return(refreshClaims(userID, sessionID), nil)
	m.tokenService.EXPECT().HashToken("raw-refresh").Return("presented-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessionRepo := mockRepo.NewMockRefreshSessionRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().RefreshSessionRepo().Return(sessionRepo)
			factory.EXPECT().UserRepo().Return(userRepo)

			sessionRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(session, nil)

			return fn(factory)
		})

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "raw-refresh"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthService_Refresh_UnknownSession(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	m.tokenService.EXPECT().ValidateRefreshToken("raw-refresh").Return(refreshClaims(userID, sessionID), nil)
	m.tokenService.EXPECT().HashToken("raw-refresh").Return("presented-hash")

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			sessionRepo := mockRepo.NewMockRefreshSessionRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().RefreshSessionRepo().Return(sessionRepo)
			factory.EXPECT().UserRepo().Return(userRepo)

			sessionRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)

			return fn(factory)
		})

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "raw-refresh"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()

	m.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, domainerrors.ErrTokenInvalid)

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "garbage"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_Refresh_MissingSessionClaim(t *testing.T) {
	svc, m := newAuthServiceForTest(t, 0)

	ctx := context.Background()
	claims := &service.Claims{
		UserID: uuid.New(),
		Type:   service.TokenTypeRefresh,
	}

	m.tokenService.EXPECT().ValidateRefreshToken("legacy-refresh").Return(claims, nil)

	output, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "legacy-refresh"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}
