// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a password login. A nil TenantID
// selects the tenant-less partition.
type LoginInput struct {
	Email     string
	Password  string
	TenantID  *uuid.UUID
	IPAddress string
	UserAgent string
}

// RegisterTenantlessInput defines the data required to self-register a
// tenant-less account.
type RegisterTenantlessInput struct {
	Email     string
	Password  string
	Name      string
	IPAddress string
	UserAgent string
}

// RefreshInput carries the raw refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
	IPAddress    string
	UserAgent    string
}

// LogoutInput carries the raw refresh token whose session should end.
type LogoutInput struct {
	RefreshToken string
}

// SetPasswordInput defines the data for setting or replacing a password.
type SetPasswordInput struct {
	UserID   uuid.UUID
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the issued tokens after a successful authentication.
// RequiresVerification signals that the account's email is still unproven;
// issuing tokens anyway is the caller's signal to route into verification.
type LoginOutput struct {
	AccessToken          string
	RefreshToken         string
	User                 *entity.User
	RequiresVerification bool
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RegisterTenantless(ctx context.Context, input *RegisterTenantlessInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	LogoutAllDevices(ctx context.Context, userID uuid.UUID) error
	GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshSession, error)
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error
	SetPassword(ctx context.Context, input *SetPasswordInput) error
	GetAuthMethods(ctx context.Context, userID uuid.UUID) ([]entity.AuthMethod, error)
	DeleteExpiredSessions(ctx context.Context) error
}
