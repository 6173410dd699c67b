package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type discriminators carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID   uuid.UUID  `json:"uid"`
	TenantID *uuid.UUID `json:"tid,omitempty"`
	Roles    []string   `json:"roles,omitempty"`
	Type     string     `json:"type"`
	// SessionID points the refresh exchange at its RefreshSession row,
	// avoiding a linear scan. Only present on refresh tokens.
	SessionID *uuid.UUID `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token carrying the user's
	// identity, tenant partition and role ids.
	GenerateAccessToken(userID uuid.UUID, tenantID *uuid.UUID, roles []string) (string, error)

	// GenerateRefreshToken creates a signed refresh token bound to a
	// RefreshSession row.
	GenerateRefreshToken(userID uuid.UUID, sessionID uuid.UUID) (string, error)

	// ValidateAccessToken checks an access token. Signature, expiry and
	// malformed-payload failures are indistinguishable.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token the same way.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the one-way hash under which a raw refresh token is
	// persisted. The raw secret itself never reaches the database.
	HashToken(tokenString string) string

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
