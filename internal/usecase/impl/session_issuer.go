package impl

import (
	"context"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionIssuer mints token pairs and the refresh-session rows behind them.
// Shared by every entry point that starts a session (password login,
// registration, Google callback) and by the refresh rotation.
type sessionIssuer struct {
	txManager         repository.TransactionManager
	tokenService      service.TokenService
	maxActiveSessions int
}

func newSessionIssuer(txManager repository.TransactionManager, tokenService service.TokenService, maxActiveSessions int) *sessionIssuer {
	return &sessionIssuer{
		txManager:         txManager,
		tokenService:      tokenService,
		maxActiveSessions: maxActiveSessions,
	}
}

// IssueSession starts a brand-new session lineage for the user and returns
// the token pair. Rotations inherit a family instead and go through mint
// directly inside their own transaction.
func (si *sessionIssuer) IssueSession(ctx context.Context, user *entity.User, familyID uuid.UUID, ipAddress, userAgent string) (string, string, error) {
	var accessToken, refreshToken string

	err := si.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.RefreshSessionRepo()

		if si.maxActiveSessions > 0 {
			activeSessions, err := sessionRepo.CountActiveSessionsByUserID(ctx, user.ID)
			if err != nil {
				return errors.Wrap(err, "failed to count active sessions")
			}
			if activeSessions >= si.maxActiveSessions {
				return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
			}
		}

		var err error
		accessToken, refreshToken, _, err = si.mint(ctx, sessionRepo, user, familyID, ipAddress, userAgent, time.Now())

		return err
	})
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// mint generates the token pair and persists the session row the refresh
// token points at.
func (si *sessionIssuer) mint(
	ctx context.Context,
	sessionRepo repository.RefreshSessionRepository,
	user *entity.User,
	familyID uuid.UUID,
	ipAddress, userAgent string,
	now time.Time,
) (string, string, uuid.UUID, error) {
	accessToken, err := si.tokenService.GenerateAccessToken(user.ID, user.TenantID, user.Roles.IDs())
	if err != nil {
		return "", "", uuid.Nil, errors.Wrap(err, "failed to generate access token")
	}

	// The session id goes inside the refresh JWT, so it is minted here rather
	// than by the database.
	sessionID := uuid.New()
	refreshToken, err := si.tokenService.GenerateRefreshToken(user.ID, sessionID)
	if err != nil {
		return "", "", uuid.Nil, errors.Wrap(err, "failed to generate refresh token")
	}

	session := &entity.RefreshSession{
		ID:        sessionID,
		UserID:    user.ID,
		TokenHash: si.tokenService.HashToken(refreshToken),
		FamilyID:  familyID,
		ExpiresAt: now.Add(si.tokenService.RefreshTokenDuration()),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := sessionRepo.CreateSession(ctx, session); err != nil {
		return "", "", uuid.Nil, errors.Wrap(err, "failed to create refresh session")
	}

	return accessToken, refreshToken, sessionID, nil
}
