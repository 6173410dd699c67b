package impl

import (
	"context"
	"log/slog"
	"time"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Audit action names for the Google flows.
const (
	auditActionGoogleLogin  = "google_login"
	auditActionGoogleLink   = "google_link"
	auditActionGoogleUnlink = "google_unlink"
)

// googleService implements the GoogleUsecase interface.
type googleService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	oauthService service.OAuthService
	authService  service.OAuthAuthService
	auditSink    service.AuditSink
	issuer       *sessionIssuer
	logger       *slog.Logger
}

// GoogleServiceParams holds dependencies for googleService, injected by Fx.
type GoogleServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	OAuthService service.OAuthService
	AuthService  service.OAuthAuthService
	AuditSink    service.AuditSink
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewGoogleService is the constructor for googleService.
func NewGoogleService(params GoogleServiceParams) usecase.GoogleUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &googleService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		oauthService: params.OAuthService,
		authService:  params.AuthService,
		auditSink:    params.AuditSink,
		issuer:       newSessionIssuer(params.TxManager, params.TokenService, maxActiveSessions),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *googleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GoogleAuthURL issues the provider consent URL with a fresh single-use CSRF
// state. The state carries no other meaning; the target tenant partition is
// always an explicit parameter of the callback.
func (srv *googleService) GoogleAuthURL(ctx context.Context) (*usecase.GoogleAuthURLOutput, error) {
	state := srv.oauthService.GenerateState()
	url := srv.oauthService.BuildAuthorizationURL(state)
	srv.log(ctx).Debug("Issued Google authorization URL")

	return &usecase.GoogleAuthURLOutput{
		URL:   url,
		State: state,
	}, nil
}

// GoogleCallback handles the provider redirect: validates state, exchanges
// the code, resolves the Google profile to a local account and starts a
// session. Every outcome, success or failure, lands in the audit trail.
func (srv *googleService) GoogleCallback(ctx context.Context, input *usecase.GoogleCallbackInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Handling Google callback")

	if !srv.oauthService.ValidateState(input.State) {
		err := errors.Wrap(domainerrors.ErrOAuthStateInvalid, "state validation failed")
		srv.recordLoginFailure(ctx, service.AuditActorUnknown, input.TenantID, domainerrors.ErrOAuthStateInvalid, "")

		return nil, err
	}

	providerToken, err := srv.oauthService.ExchangeCodeForToken(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Google code exchange failed", slog.Any("error", err))
		srv.recordLoginFailure(ctx, service.AuditActorUnknown, input.TenantID, domainerrors.ErrOAuthFailed, "")

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "failed to exchange authorization code")
	}

	oauthUser, err := srv.oauthService.GetUserInfo(ctx, providerToken)
	if err != nil {
		srv.log(ctx).Warn("Google profile fetch failed", slog.Any("error", err))
		srv.recordLoginFailure(ctx, service.AuditActorUnknown, input.TenantID, domainerrors.ErrOAuthFailed, "")

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "failed to fetch Google profile")
	}

	var resolvedUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, resolveErr := srv.resolveIdentity(ctx, repoFactory, oauthUser, input.TenantID)
		if resolveErr != nil {
			return resolveErr
		}
		resolvedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Google identity resolution failed", slog.String("email", oauthUser.Email), slog.Any("error", err))
		srv.recordLoginFailure(ctx, service.AuditActorUnknown, input.TenantID, err, oauthUser.Email)

		return nil, errors.Wrap(err, "failed to resolve Google identity")
	}

	accessToken, refreshToken, err := srv.issuer.IssueSession(ctx, resolvedUser, uuid.New(), input.IPAddress, input.UserAgent)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session for Google login", slog.Any("userID", resolvedUser.ID), slog.Any("error", err))
		srv.recordLoginFailure(ctx, resolvedUser.ID.String(), input.TenantID, err, oauthUser.Email)

		return nil, errors.Wrap(err, "failed to issue session for Google login")
	}

	srv.auditSink.Record(ctx, service.AuditEvent{
		ActorID:  resolvedUser.ID.String(),
		TenantID: input.TenantID,
		Action:   auditActionGoogleLogin,
		Success:  true,
		Context:  map[string]any{"email": oauthUser.Email},
	})
	srv.log(ctx).Debug("Google login completed", slog.Any("userID", resolvedUser.ID))

	return &usecase.LoginOutput{
		AccessToken:          accessToken,
		RefreshToken:         refreshToken,
		User:                 resolvedUser,
		RequiresVerification: !resolvedUser.EmailVerified,
	}, nil
}

// resolveIdentity maps a verified Google profile to a local account within
// one tenant partition: existing link, auto-link by email, or provisioning.
func (srv *googleService) resolveIdentity(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser, tenantID *uuid.UUID) (*entity.User, error) {
	userRepo := repoFactory.UserRepo()

	var tenant *entity.Tenant
	if tenantID != nil {
		var err error
		tenant, err = repoFactory.TenantRepo().FindByID(ctx, *tenantID)
		if err != nil {
			if errors.Is(err, repository.ErrTenantNotFound) {
				return nil, errors.Wrap(domainerrors.ErrTenantNotFound, "unknown tenant")
			}

			return nil, errors.Wrap(err, "failed to load tenant")
		}
		if !tenant.GoogleSSOEnabled {
			return nil, errors.Wrap(domainerrors.ErrSSODisabled, "google sign-in disabled for tenant")
		}
	}

	linked, err := userRepo.FindByGoogleID(ctx, oauthUser.ID)
	if err == nil {
		if !linked.InTenant(tenantID) {
			return nil, errors.Wrap(domainerrors.ErrCrossTenantMismatch, "google account bound to another partition")
		}

		return linked, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up google identity")
	}

	byEmail, err := userRepo.FindByEmail(ctx, oauthUser.Email, tenantID)
	if err == nil {
		return srv.autoLink(ctx, userRepo, byEmail, oauthUser)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email in partition")
	}

	return srv.provision(ctx, repoFactory, oauthUser, tenant)
}

// autoLink attaches the Google identity to the account that already owns the
// email in this partition. Sign-in through Google proves email ownership.
func (srv *googleService) autoLink(ctx context.Context, userRepo repository.UserRepository, user *entity.User, oauthUser *service.OAuthUser) (*entity.User, error) {
	srv.log(ctx).Info("Auto-linking Google identity", slog.Any("userID", user.ID))

	user.LinkGoogle(oauthUser.ID, time.Now())
	if err := userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			// The google_id unique index caught a concurrent link elsewhere.
			return nil, errors.Wrap(domainerrors.ErrAlreadyLinked, "google account linked concurrently")
		}

		return nil, errors.Wrap(err, "failed to auto-link google identity")
	}

	return user, nil
}

// provision creates a new account for an unknown Google identity. Tenant-less
// sign-ins always provision; tenant-bound ones require the tenant to allow it.
func (srv *googleService) provision(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser, tenant *entity.Tenant) (*entity.User, error) {
	userRepo := repoFactory.UserRepo()

	newUser := &entity.User{
		Email: oauthUser.Email,
		Name:  oauthUser.Name,
	}
	newUser.LinkGoogle(oauthUser.ID, time.Now())

	if tenant == nil {
		srv.log(ctx).Info("Provisioning tenant-less account for Google identity", slog.String("email", oauthUser.Email))

		if err := userRepo.Create(ctx, newUser); err != nil {
			return nil, errors.Wrap(err, "failed to provision tenant-less user")
		}

		return newUser, nil
	}

	if !tenant.GoogleAutoProvision {
		return nil, errors.Wrap(domainerrors.ErrAutoProvisionDisabled, "auto-provisioning disabled for tenant")
	}
	srv.log(ctx).Info("Provisioning tenant account for Google identity",
		slog.String("email", oauthUser.Email), slog.Any("tenantID", tenant.ID))

	newUser.TenantID = &tenant.ID
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to provision tenant user")
	}

	defaultRole, err := repoFactory.RoleRepo().FindDefaultRole(ctx, tenant.ID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			// Tenant without a default role: the account starts role-less.
			srv.log(ctx).Warn("Tenant has no default role", slog.Any("tenantID", tenant.ID))

			return newUser, nil
		}

		return nil, errors.Wrap(err, "failed to load default role")
	}
	if err := userRepo.AssignRole(ctx, newUser.ID, defaultRole.ID); err != nil {
		return nil, errors.Wrap(err, "failed to assign default role")
	}
	newUser.Roles = entity.Roles{*defaultRole}

	return newUser, nil
}

// LinkGoogleAccount attaches a Google identity to an authenticated account.
func (srv *googleService) LinkGoogleAccount(ctx context.Context, input *usecase.LinkGoogleInput) error {
	oauthUser, err := srv.authService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token verification failed", slog.Any("error", err))
		srv.recordFailure(ctx, input.UserID.String(), auditActionGoogleLink, domainerrors.ErrOAuthFailed, "")

		return errors.Wrap(domainerrors.ErrOAuthFailed, "failed to verify Google ID token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to load user")
		}
		if user.GoogleID != nil {
			return errors.Wrap(domainerrors.ErrAlreadyLinked, "account already has a google identity")
		}

		// Linking never changes the account email, so the identities must
		// already agree exactly.
		if user.Email != oauthUser.Email {
			return errors.Wrap(domainerrors.ErrEmailMismatch, "google email does not match account email")
		}

		owner, err := userRepo.FindByGoogleID(ctx, oauthUser.ID)
		if err == nil && owner.ID != user.ID {
			return errors.Wrap(domainerrors.ErrAlreadyLinked, "google account bound to another user")
		}
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check google identity ownership")
		}

		user.LinkGoogle(oauthUser.ID, time.Now())
		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, domainerrors.ErrConflict) {
				return errors.Wrap(domainerrors.ErrAlreadyLinked, "google account linked concurrently")
			}

			return errors.Wrap(err, "failed to link google identity")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Google link failed", slog.Any("userID", input.UserID), slog.Any("error", err))
		srv.recordFailure(ctx, input.UserID.String(), auditActionGoogleLink, err, oauthUser.Email)

		return errors.Wrap(err, "failed to execute google link transaction")
	}

	srv.auditSink.Record(ctx, service.AuditEvent{
		ActorID: input.UserID.String(),
		Action:  auditActionGoogleLink,
		Success: true,
		Context: map[string]any{"email": oauthUser.Email},
	})
	srv.log(ctx).Info("Google identity linked", slog.Any("userID", input.UserID))

	return nil
}

// UnlinkGoogleAccount removes the Google identity, refusing to strand the
// account without any way to sign in.
func (srv *googleService) UnlinkGoogleAccount(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to load user")
		}
		if user.GoogleID == nil {
			return errors.Wrap(domainerrors.ErrNotLinked, "account has no google identity")
		}
		if !user.HasAuthMethod(entity.AuthMethodPassword) {
			return errors.Wrap(domainerrors.ErrLastAuthMethod, "google is the only auth method")
		}

		user.UnlinkGoogle()

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Google unlink failed", slog.Any("userID", userID), slog.Any("error", err))
		srv.recordFailure(ctx, userID.String(), auditActionGoogleUnlink, err, "")

		return errors.Wrap(err, "failed to execute google unlink transaction")
	}

	srv.auditSink.Record(ctx, service.AuditEvent{
		ActorID: userID.String(),
		Action:  auditActionGoogleUnlink,
		Success: true,
	})
	srv.log(ctx).Info("Google identity unlinked", slog.Any("userID", userID))

	return nil
}

func (srv *googleService) recordLoginFailure(ctx context.Context, actorID string, tenantID *uuid.UUID, err error, email string) {
	event := service.AuditEvent{
		ActorID:      actorID,
		TenantID:     tenantID,
		Action:       auditActionGoogleLogin,
		Success:      false,
		ErrorKind:    errorKind(err),
		ErrorMessage: err.Error(),
	}
	if email != "" {
		event.Context = map[string]any{"email": email}
	}
	srv.auditSink.Record(ctx, event)
}

func (srv *googleService) recordFailure(ctx context.Context, actorID, action string, err error, email string) {
	event := service.AuditEvent{
		ActorID:      actorID,
		Action:       action,
		Success:      false,
		ErrorKind:    errorKind(err),
		ErrorMessage: err.Error(),
	}
	if email != "" {
		event.Context = map[string]any{"email": email}
	}
	srv.auditSink.Record(ctx, event)
}

// errorKind extracts the business error code when the chain carries one.
func errorKind(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return "INTERNAL"
}
