package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshSession is one node of a refresh-token rotation chain. Every refresh
// exchange revokes the presented session and creates a successor sharing the
// same FamilyID, so a leaked token is good for at most one hop.
type RefreshSession struct {
	ID           uuid.UUID  // The unique ID for this session record; embedded in the refresh JWT.
	UserID       uuid.UUID  // The user this session belongs to.
	TokenHash    string     // SHA-256 hash of the raw refresh token. The raw secret is never persisted.
	FamilyID     uuid.UUID  // Shared by every session descended from one original login.
	ExpiresAt    time.Time  // When this session becomes unusable regardless of state.
	RevokedAt    *time.Time // Set exactly once, at rotation or explicit revocation. Never cleared.
	ReplacedByID *uuid.UUID // Successor session when rotated forward.
	IPAddress    string     // Audit only.
	UserAgent    string     // Audit only.
	CreatedAt    time.Time  // Timestamp of when this session was created.
}

// Usable reports whether the session may still be exchanged: not revoked and
// not expired. The token-hash comparison happens in the use case so that all
// failure shapes stay indistinguishable to the caller.
func (s *RefreshSession) Usable(now time.Time) bool {
	return s.RevokedAt == nil && s.ExpiresAt.After(now)
}
