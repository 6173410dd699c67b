// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	sessionRepo  repository.RefreshSessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	otpUsecase   usecase.OtpUsecase
	issuer       *sessionIssuer
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.RefreshSessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OtpUsecase   usecase.OtpUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		otpUsecase:   params.OtpUsecase,
		issuer:       newSessionIssuer(params.TxManager, params.TokenService, maxActiveSessions),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login orchestrates the password login process. Unknown email, wrong tenant
// partition, password-less account and wrong password all surface as the same
// ErrInvalidCredentials.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting password login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email, input.TenantID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	// Check password outside transaction (bcrypt is CPU-bound). An account
	// without a password hash (OAuth-only) can never pass this check.
	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.issuer.IssueSession(ctx, user, uuid.New(), input.IPAddress, input.UserAgent)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session during login")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:          accessToken,
		RefreshToken:         refreshToken,
		User:                 user,
		RequiresVerification: !user.EmailVerified,
	}, nil
}

// RegisterTenantless creates a self-service account in the tenant-less
// partition, issues a first session and kicks off email verification.
func (srv *authService) RegisterTenantless(ctx context.Context, input *usecase.RegisterTenantlessInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Starting tenant-less registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var newUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email, nil)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		newUser = &entity.User{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: hashedPassword,
		}

		// The unique index on (email, tenant_id) is the backstop when two
		// registrations race past the lookup above.
		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	accessToken, refreshToken, err := srv.issuer.IssueSession(ctx, newUser, uuid.New(), input.IPAddress, input.UserAgent)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session during registration", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session during registration")
	}

	// Kick off verification. The account already exists; a failure here only
	// delays the first code, so it never fails the registration.
	if _, otpErr := srv.otpUsecase.GenerateOtp(ctx, newUser.ID); otpErr != nil {
		srv.log(ctx).Warn("Failed to generate initial verification code", slog.Any("userID", newUser.ID), slog.Any("error", otpErr))
	}
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.LoginOutput{
		AccessToken:          accessToken,
		RefreshToken:         refreshToken,
		User:                 newUser,
		RequiresVerification: true,
	}, nil
}

// Refresh rotates a refresh session: the presented session is atomically
// claimed and a successor in the same family takes its place. Presenting an
// already-rotated or otherwise dead token burns the entire family.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Debug("Attempting to rotate refresh session")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid refresh token")
	}
	if claims.SessionID == nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "refresh token missing session id")
	}

	presentedHash := srv.tokenService.HashToken(input.RefreshToken)
	now := time.Now()

	var output *usecase.RefreshOutput
	var reuseFamilyID *uuid.UUID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.RefreshSessionRepo()
		userRepo := repoFactory.UserRepo()

		session, err := sessionRepo.FindSessionByID(ctx, *claims.SessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrSessionInvalid, "refresh session not found")
			}

			return errors.Wrap(err, "failed to load refresh session")
		}

		// A signed token pointing at a live session with a different hash, or
		// at a session that was already rotated away, is evidence the secret
		// leaked somewhere along the chain. The error return below rolls this
		// transaction back, so the family burn itself runs after Execute, on
		// the service-level repository.
		if subtle.ConstantTimeCompare([]byte(presentedHash), []byte(session.TokenHash)) != 1 || session.RevokedAt != nil {
			familyID := session.FamilyID
			reuseFamilyID = &familyID

			srv.log(ctx).Warn("Refresh token reuse detected, revoking session family",
				slog.Any("userID", session.UserID), slog.Any("familyID", session.FamilyID))

			return errors.Wrap(domainerrors.ErrSessionInvalid, "refresh session reused")
		}

		if !session.Usable(now) {
			return errors.Wrap(domainerrors.ErrSessionInvalid, "refresh session expired")
		}

		user, err := userRepo.FindByID(ctx, session.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load user for refresh")
		}

		accessToken, refreshToken, successorID, err := srv.issuer.mint(ctx, sessionRepo, user, session.FamilyID, input.IPAddress, input.UserAgent, now)
		if err != nil {
			return errors.Wrap(err, "failed to mint successor session")
		}

		claimed, err := sessionRepo.RevokeSessionIfActive(ctx, session.ID, &successorID, now)
		if err != nil {
			return errors.Wrap(err, "failed to claim refresh session")
		}
		if !claimed {
			// A concurrent rotation won the race. Fail closed; the rollback
			// discards the successor created above.
			return errors.Wrap(domainerrors.ErrSessionInvalid, "refresh session concurrently rotated")
		}

		output = &usecase.RefreshOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		}

		return nil
	})
	if err != nil {
		if reuseFamilyID != nil {
			if revokeErr := srv.sessionRepo.RevokeFamily(ctx, *reuseFamilyID, now); revokeErr != nil {
				srv.log(ctx).Error("Failed to revoke session family after reuse detection",
					slog.Any("familyID", *reuseFamilyID), slog.Any("error", revokeErr))
			}
		}
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh transaction")
	}

	return output, nil
}

// Logout ends the session behind the presented refresh token. Idempotent: an
// invalid or already-revoked token still logs out successfully.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil || claims.SessionID == nil {
		// Nothing identifiable to revoke; logout still succeeds.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))

		return nil
	}

	if err := srv.sessionRepo.RevokeSessionByID(ctx, *claims.SessionID, time.Now()); err != nil {
		srv.log(ctx).Error("Failed to revoke refresh session", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke refresh session")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// LogoutAllDevices revokes every active session of the user.
func (srv *authService) LogoutAllDevices(ctx context.Context, userID uuid.UUID) error {
	if err := srv.sessionRepo.RevokeSessionsByUserID(ctx, userID, time.Now()); err != nil {
		srv.log(ctx).Error("Failed to revoke user sessions", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke user sessions")
	}
	srv.log(ctx).Info("Logged out all devices", slog.Any("userID", userID))

	return nil
}

// GetActiveSessions lists the user's live sessions, newest first.
func (srv *authService) GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshSession, error) {
	sessions, err := srv.sessionRepo.FindSessionsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active sessions")
	}

	return sessions, nil
}

// RevokeSession revokes one session after checking the caller owns it.
func (srv *authService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	session, err := srv.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(domainerrors.ErrSessionInvalid, "session not found")
		}

		return errors.Wrap(err, "failed to load session for revocation")
	}
	if session.UserID != userID {
		srv.log(ctx).Warn("Session revocation denied", slog.Any("userID", userID), slog.Any("sessionID", sessionID))

		return errors.Wrap(domainerrors.ErrForbidden, "session belongs to another user")
	}

	if err := srv.sessionRepo.RevokeSessionByID(ctx, sessionID, time.Now()); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

// SetPassword sets or replaces the account password and signs out every
// device. For OAuth-only accounts this adds the password auth method.
func (srv *authService) SetPassword(ctx context.Context, input *usecase.SetPasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.RefreshSessionRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to load user")
		}

		user.PasswordHash = hashedPassword
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		// Credential change is a security event: every existing session dies.
		return sessionRepo.RevokeSessionsByUserID(ctx, user.ID, time.Now())
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute set password transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute set password transaction")
	}
	srv.log(ctx).Info("Password set, all sessions revoked", slog.Any("userID", input.UserID))

	return nil
}

// GetAuthMethods reports how the account can currently authenticate.
func (srv *authService) GetAuthMethods(ctx context.Context, userID uuid.UUID) ([]entity.AuthMethod, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user.AuthMethods(), nil
}

// DeleteExpiredSessions prunes session rows past their expiry.
func (srv *authService) DeleteExpiredSessions(ctx context.Context) error {
	if err := srv.sessionRepo.DeleteExpiredSessions(ctx); err != nil {
		return errors.Wrap(err, "failed to delete expired sessions")
	}

	return nil
}
