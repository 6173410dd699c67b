package service

import (
	"context"
)

// OAuthUser represents the verified profile returned by an OAuth provider.
type OAuthUser struct {
	ID            string // Provider-specific user ID (Google's 'sub' claim).
	Email         string // User's email address.
	Name          string // User's display name.
	AvatarURL     string // URL to user's profile picture.
	EmailVerified bool   // Whether the provider vouches for the email.
}

// OAuthService drives the server-side authorization-code flow.
type OAuthService interface {
	// BuildAuthorizationURL constructs the provider's consent URL, binding
	// the given CSRF state parameter.
	BuildAuthorizationURL(state string) string

	// GenerateState mints a fresh CSRF state value and registers it for
	// later validation.
	GenerateState() string

	// ValidateState checks and consumes a state parameter. A state validates
	// at most once.
	ValidateState(state string) bool

	// ExchangeCodeForToken exchanges an authorization code for a provider
	// access token.
	ExchangeCodeForToken(ctx context.Context, code string) (string, error)

	// GetUserInfo retrieves the profile behind a provider access token.
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUser, error)
}

// OAuthAuthService verifies provider-issued ID tokens directly, used when the
// client already holds a Google ID token (linking, native sign-in).
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
