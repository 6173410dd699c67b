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
	mockService "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type googleMocks struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	oauthService *mockService.MockOAuthService
	authService  *mockService.MockOAuthAuthService
	auditSink    *mockService.MockAuditSink
	tokenService *mockService.MockTokenService
}

func newGoogleServiceForTest(t *testing.T) (usecase.GoogleUsecase, *googleMocks) {
	t.Helper()

	m := &googleMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		oauthService: mockService.NewMockOAuthService(t),
		authService:  mockService.NewMockOAuthAuthService(t),
		auditSink:    mockService.NewMockAuditSink(t),
		tokenService: mockService.NewMockTokenService(t),
	}

	svc := NewGoogleService(GoogleServiceParams{
		TxManager:    m.txManager,
		UserRepo:     m.userRepo,
		OAuthService: m.oauthService,
		AuthService:  m.authService,
		AuditSink:    m.auditSink,
		TokenService: m.tokenService,
		Config:       newTestConfig(0),
		Logger:       newDiscardLogger(),
	})

	return svc, m
}

func (m *googleMocks) expectTokenPair(userID uuid.UUID, tenantID *uuid.UUID) {
	m.tokenService.EXPECT().GenerateAccessToken(userID, tenantID, mock.AnythingOfType("[]string")).Return("access-token", nil)
	m.tokenService.EXPECT().GenerateRefreshToken(userID, mock.AnythingOfType("uuid.UUID")).Return("refresh-token", nil)
	m.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	m.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
}

func (m *googleMocks) expectIssueSessionTx(t *testing.T, ctx context.Context) {
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
}

func TestGoogleService_GoogleAuthURL(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()

	m.oauthService.EXPECT().GenerateState().Return("csrf-state")
	m.oauthService.EXPECT().BuildAuthorizationURL("csrf-state").Return("https://accounts.google.com/o/oauth2/v2/auth?state=csrf-state")

	output, err := svc.GoogleAuthURL(ctx)

	require.NoError(t, err)
	assert.Equal(t, "csrf-state", output.State)
	assert.Contains(t, output.URL, "state=csrf-state")
}

func TestGoogleService_Callback_InvalidState(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()

	m.oauthService.EXPECT().ValidateState("stale-state").Return(false)
	m.auditSink.EXPECT().
		Record(ctx, mock.AnythingOfType("service.AuditEvent")).
		Run(func(_ context.Context, event service.AuditEvent) {
			assert.Equal(t, service.AuditActorUnknown, event.ActorID)
			assert.Equal(t, "google_login", event.Action)
			assert.False(t, event.Success)
			assert.Equal(t, "OAUTH_STATE_INVALID", event.ErrorKind)
		})

	output, err := svc.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		Code:  "auth-code",
		State: "stale-state",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestGoogleService_Callback_AutoLinksByEmail(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:           userID,
		Email:        "user@example.com",
		PasswordHash: "$2a$12$hash",
	}
	oauthUser := &service.OAuthUser{
		ID:    "google-sub-1",
		Email: "user@example.com",
		Name:  "User",
	}

	m.oauthService.EXPECT().ValidateState("good-state").Return(true)
	m.oauthService.EXPECT().ExchangeCodeForToken(ctx, "auth-code").Return("provider-token", nil)
	m.oauthService.EXPECT().GetUserInfo(ctx, "provider-token").Return(oauthUser, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().FindByGoogleID(ctx, "google-sub-1").Return(nil, repository.ErrUserNotFound)
			userRepo.EXPECT().FindByEmail(ctx, "user@example.com", (*uuid.UUID)(nil)).Return(existing, nil)
			userRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(_ context.Context, updated *entity.User) error {
					require.NotNil(t, updated.GoogleID)
					assert.Equal(t, "google-sub-1", *updated.GoogleID)
					assert.True(t, updated.EmailVerified)

					return nil
				})

			return fn(factory)
		}).
		Once()

	m.expectTokenPair(userID, nil)
	m.expectIssueSessionTx(t, ctx)

	m.auditSink.EXPECT().
		Record(ctx, mock.AnythingOfType("service.AuditEvent")).
		Run(func(_ context.Context, event service.AuditEvent) {
			assert.Equal(t, userID.String(), event.ActorID)
			assert.True(t, event.Success)
		})

	output, err := svc.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		Code:  "auth-code",
		State: "good-state",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestGoogleService_Callback_CrossTenantMismatch(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()
	otherTenant := uuid.New()
	googleID := "google-sub-1"
	linked := &entity.User{
		ID:       uuid.New(),
		Email:    "user@example.com",
		GoogleID: &googleID,
		TenantID: &otherTenant,
	}
	oauthUser := &service.OAuthUser{ID: googleID, Email: "user@example.com"}

	m.oauthService.EXPECT().ValidateState("good-state").Return(true)
	m.oauthService.EXPECT().ExchangeCodeForToken(ctx, "auth-code").Return("provider-token", nil)
	m.oauthService.EXPECT().GetUserInfo(ctx, "provider-token").Return(oauthUser, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().FindByGoogleID(ctx, googleID).Return(linked, nil)

			return fn(factory)
		})

	m.auditSink.EXPECT().
		Record(ctx, mock.AnythingOfType("service.AuditEvent")).
		Run(func(_ context.Context, event service.AuditEvent) {
			assert.False(t, event.Success)
			assert.Equal(t, "CROSS_TENANT_MISMATCH", event.ErrorKind)
		})

	output, err := svc.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		Code:  "auth-code",
		State: "good-state",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCrossTenantMismatch)
}

func TestGoogleService_Callback_SSODisabled(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()
	tenantID := uuid.New()
	tenant := &entity.Tenant{ID: tenantID, GoogleSSOEnabled: false}
	oauthUser := &service.OAuthUser{ID: "google-sub-1", Email: "user@example.com"}

	m.oauthService.EXPECT().ValidateState("good-state").Return(true)
	m.oauthService.EXPECT().ExchangeCodeForToken(ctx, "auth-code").Return("provider-token", nil)
	m.oauthService.EXPECT().GetUserInfo(ctx, "provider-token").Return(oauthUser, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			tenantRepo := mockRepo.NewMockTenantRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().TenantRepo().Return(tenantRepo)
			tenantRepo.EXPECT().FindByID(ctx, tenantID).Return(tenant, nil)

			return fn(factory)
		})

	m.auditSink.EXPECT().
		Record(ctx, mock.AnythingOfType("service.AuditEvent")).
		Run(func(_ context.Context, event service.AuditEvent) {
			assert.False(t, event.Success)
			require.NotNil(t, event.TenantID)
			assert.Equal(t, tenantID, *event.TenantID)
		})

	output, err := svc.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		Code:     "auth-code",
		State:    "good-state",
		TenantID: &tenantID,
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSSODisabled)
}

func TestGoogleService_Callback_AutoProvisionDisabled(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()
	tenantID := uuid.New()
	tenant := &entity.Tenant{ID: tenantID, GoogleSSOEnabled: true, GoogleAutoProvision: false}
	oauthUser := &service.OAuthUser{ID: "google-sub-1", Email: "new@example.com"}

	m.oauthService.EXPECT().ValidateState("good-state").Return(true)
	m.oauthService.EXPECT().ExchangeCodeForToken(ctx, "auth-code").Return("provider-token", nil)
	m.oauthService.EXPECT().GetUserInfo(ctx, "provider-token").Return(oauthUser, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			tenantRepo := mockRepo.NewMockTenantRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().TenantRepo().Return(tenantRepo)
			tenantRepo.EXPECT().FindByID(ctx, tenantID).Return(tenant, nil)
			userRepo.EXPECT().FindByGoogleID(ctx, "google-sub-1").Return(nil, repository.ErrUserNotFound)
			userRepo.EXPECT().FindByEmail(ctx, "new@example.com", &tenantID).Return(nil, repository.ErrUserNotFound)

			return fn(factory)
		})

	m.auditSink.EXPECT().
		Record(ctx, mock.AnythingOfType("service.AuditEvent")).
		Run(func(_ context.Context, event service.AuditEvent) {
			assert.False(t, event.Success)
			assert.Equal(t, "AUTO_PROVISION_DISABLED", event.ErrorKind)
		})

	output, err := svc.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		Code:     "auth-code",
		State:    "good-state",
		TenantID: &tenantID,
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAutoProvisionDisabled)
}

func TestGoogleService_Callback_ProvisionsWithDefaultRole(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()
	tenantID := uuid.New()
	newUserID := uuid.New()
	roleID := uuid.New()
	tenant := &entity.Tenant{ID: tenantID, GoogleSSOEnabled: true, GoogleAutoProvision: true}
	defaultRole := &entity.Role{ID: roleID, TenantID: tenantID, Name: "member", IsDefault: true}
	oauthUser := &service.OAuthUser{ID: "google-sub-1", Email: "new@example.com", Name: "New User"}

	m.oauthService.EXPECT().ValidateState("good-state").Return(true)
	m.oauthService.EXPECT().ExchangeCodeForToken(ctx, "auth-code").Return("provider-token", nil)
	m.oauthService.EXPECT().GetUserInfo(ctx, "provider-token").Return(oauthUser, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			tenantRepo := mockRepo.NewMockTenantRepository(t)
			roleRepo := mockRepo.NewMockRoleRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().TenantRepo().Return(tenantRepo)
			factory.EXPECT().RoleRepo().Return(roleRepo)

			tenantRepo.EXPECT().FindByID(ctx, tenantID).Return(tenant, nil)
			userRepo.EXPECT().FindByGoogleID(ctx, "google-sub-1").Return(nil, repository.ErrUserNotFound)
			userRepo.EXPECT().FindByEmail(ctx, "new@example.com", &tenantID).Return(nil, repository.ErrUserNotFound)
			userRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(_ context.Context, user *entity.User) error {
					require.NotNil(t, user.TenantID)
					assert.Equal(t, tenantID, *user.TenantID)
					assert.True(t, user.EmailVerified)
					user.ID = newUserID

					return nil
				})
			roleRepo.EXPECT().FindDefaultRole(ctx, tenantID).Return(defaultRole, nil)
			userRepo.EXPECT().AssignRole(ctx, newUserID, roleID).Return(nil)

			return fn(factory)
		}).
		Once()

	m.expectTokenPair(newUserID, &tenantID)
	m.expectIssueSessionTx(t, ctx)

	m.auditSink.EXPECT().
		Record(ctx, mock.AnythingOfType("service.AuditEvent")).
		Run(func(_ context.Context, event service.AuditEvent) {
			assert.True(t, event.Success)
		})

	output, err := svc.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		Code:     "auth-code",
		State:    "good-state",
		TenantID: &tenantID,
	})

	require.NoError(t, err)
	assert.Equal(t, newUserID, output.User.ID)
	assert.True(t, output.User.Roles.Contains("member"))
}

func TestGoogleService_Link_EmailMismatch(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", PasswordHash: "$2a$12$hash"}
	oauthUser := &service.OAuthUser{ID: "google-sub-1", Email: "other@example.com"}

	m.authService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(factory)
		})

	m.auditSink.EXPECT().
		Record(ctx, mock.AnythingOfType("service.AuditEvent")).
		Run(func(_ context.Context, event service.AuditEvent) {
			assert.Equal(t, "google_link", event.Action)
			assert.False(t, event.Success)
		})

	err := svc.LinkGoogleAccount(ctx, &usecase.LinkGoogleInput{UserID: userID, IDToken: "id-token"})

	assert.ErrorIs(t, err, domainerrors.ErrEmailMismatch)
}

func TestGoogleService_Link_AlreadyLinkedElsewhere(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	googleID := "google-sub-1"
	user := &entity.User{ID: userID, Email: "user@example.com", PasswordHash: "$2a$12$hash"}
	owner := &entity.User{ID: uuid.New(), Email: "user@example.com", GoogleID: &googleID}
	oauthUser := &service.OAuthUser{ID: googleID, Email: "user@example.com"}

	m.authService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			userRepo.EXPECT().FindByGoogleID(ctx, googleID).Return(owner, nil)

			return fn(factory)
		})

	m.auditSink.EXPECT().Record(ctx, mock.AnythingOfType("service.AuditEvent"))

	err := svc.LinkGoogleAccount(ctx, &usecase.LinkGoogleInput{UserID: userID, IDToken: "id-token"})

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyLinked)
}

func TestGoogleService_Link_Success(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", PasswordHash: "$2a$12$hash"}
	oauthUser := &service.OAuthUser{ID: "google-sub-1", Email: "user@example.com"}

	m.authService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			userRepo.EXPECT().FindByGoogleID(ctx, "google-sub-1").Return(nil, repository.ErrUserNotFound)
			userRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(_ context.Context, updated *entity.User) error {
					require.NotNil(t, updated.GoogleID)
					assert.Equal(t, "google-sub-1", *updated.GoogleID)

					return nil
				})

			return fn(factory)
		})

	m.auditSink.EXPECT().
		Record(ctx, mock.AnythingOfType("service.AuditEvent")).
		Run(func(_ context.Context, event service.AuditEvent) {
			assert.Equal(t, "google_link", event.Action)
			assert.True(t, event.Success)
		})

	err := svc.LinkGoogleAccount(ctx, &usecase.LinkGoogleInput{UserID: userID, IDToken: "id-token"})

	require.NoError(t, err)
}

func TestGoogleService_Unlink_LastAuthMethod(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	googleID := "google-sub-1"
	user := &entity.User{ID: userID, Email: "user@example.com", GoogleID: &googleID}

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(factory)
		})

	m.auditSink.EXPECT().
		Record(ctx, mock.AnythingOfType("service.AuditEvent")).
		Run(func(_ context.Context, event service.AuditEvent) {
			assert.Equal(t, "google_unlink", event.Action)
			assert.False(t, event.Success)
			assert.Equal(t, "LAST_AUTH_METHOD", event.ErrorKind)
		})

	err := svc.UnlinkGoogleAccount(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrLastAuthMethod)
}

func TestGoogleService_Unlink_NotLinked(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", PasswordHash: "$2a$12$hash"}

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(factory)
		})

	m.auditSink.EXPECT().Record(ctx, mock.AnythingOfType("service.AuditEvent"))

	err := svc.UnlinkGoogleAccount(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrNotLinked)
}

func TestGoogleService_Unlink_Success(t *testing.T) {
	svc, m := newGoogleServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	googleID := "google-sub-1"
	user := &entity.User{
		ID:           userID,
		Email:        "user@example.com",
		PasswordHash: "$2a$12$hash",
		GoogleID:     &googleID,
	}

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			userRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				RunAndReturn(func(_ context.Context, updated *entity.User) error {
					assert.Nil(t, updated.GoogleID)
					assert.Nil(t, updated.GoogleLinkedAt)

					return nil
				})

			return fn(factory)
		})

	m.auditSink.EXPECT().
		Record(ctx, mock.AnythingOfType("service.AuditEvent")).
		Run(func(_ context.Context, event service.AuditEvent) {
			assert.True(t, event.Success)
		})

	err := svc.UnlinkGoogleAccount(ctx, userID)

	require.NoError(t, err)
}
