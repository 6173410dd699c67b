package repository

import (
	"context"
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when a refresh session is not found.
var ErrSessionNotFound = errors.New("refresh session not found")

// RefreshSessionRepository manages the rotation-chain state over refresh
// sessions. It stores rows as-is; deciding whether a session is exchangeable
// (revoked/expired/hash checks) belongs to the use-case layer so that all
// failure shapes stay indistinguishable to callers.
type RefreshSessionRepository interface {
	// CreateSession persists a new session node. FamilyID must already be
	// set; new login lineages mint one, rotations inherit the current one.
	CreateSession(ctx context.Context, session *entity.RefreshSession) error

	// FindSessionByID retrieves a session row regardless of its state.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.RefreshSession, error)

	// RevokeSessionIfActive atomically claims a still-active session:
	// UPDATE ... SET revoked_at = now, replaced_by_id = replacedBy
	// WHERE id = id AND revoked_at IS NULL.
	// It reports whether this caller won the claim. Two concurrent rotations
	// of the same session resolve here: exactly one observes claimed=true.
	RevokeSessionIfActive(ctx context.Context, id uuid.UUID, replacedBy *uuid.UUID, now time.Time) (claimed bool, err error)

	// RevokeSessionByID unconditionally revokes one session. Idempotent.
	RevokeSessionByID(ctx context.Context, id uuid.UUID, now time.Time) error

	// RevokeSessionsByUserID revokes every active session of a user, used by
	// logout-all and security actions such as password changes. Idempotent.
	RevokeSessionsByUserID(ctx context.Context, userID uuid.UUID, now time.Time) error

	// RevokeFamily revokes every active session sharing a rotation lineage.
	// This is the theft-containment hook for detected token reuse.
	RevokeFamily(ctx context.Context, familyID uuid.UUID, now time.Time) error

	// FindSessionsByUserID retrieves all active (non-revoked, non-expired)
	// sessions for a user, newest first.
	FindSessionsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshSession, error)

	// CountActiveSessionsByUserID returns the number of active sessions,
	// used to enforce the per-user session limit.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteExpiredSessions removes rows whose ExpiresAt has passed.
	// This should be called periodically for cleanup.
	DeleteExpiredSessions(ctx context.Context) error
}
