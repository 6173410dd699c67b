package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// GoogleCallbackInput carries the provider redirect parameters. TenantID is
// the partition the sign-in targets; it is an explicit parameter, never
// inferred from the state value.
type GoogleCallbackInput struct {
	Code      string
	State     string
	TenantID  *uuid.UUID
	IPAddress string
	UserAgent string
}

// LinkGoogleInput defines the data required to attach a Google identity to an
// existing, authenticated account.
type LinkGoogleInput struct {
	UserID  uuid.UUID
	IDToken string
}

// --- Output DTOs ---

// GoogleAuthURLOutput returns the provider consent URL and the CSRF state
// bound into it.
type GoogleAuthURLOutput struct {
	URL   string
	State string
}

// GoogleUsecase defines the interface for Google Sign-In business operations.
type GoogleUsecase interface {
	GoogleAuthURL(ctx context.Context) (*GoogleAuthURLOutput, error)
	GoogleCallback(ctx context.Context, input *GoogleCallbackInput) (*LoginOutput, error)
	LinkGoogleAccount(ctx context.Context, input *LinkGoogleInput) error
	UnlinkGoogleAccount(ctx context.Context, userID uuid.UUID) error
}
