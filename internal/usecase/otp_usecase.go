package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// VerifyOtpInput carries a code presented by a known user.
type VerifyOtpInput struct {
	UserID uuid.UUID
	Code   string
}

// VerifyOtpByEmailInput carries a code presented without a user id. The code
// is resolved against live records within one tenant partition.
type VerifyOtpByEmailInput struct {
	Code     string
	TenantID *uuid.UUID
}

// --- Output DTOs ---

// GenerateOtpOutput reports the outcome of a code generation.
// RateLimited=true is a non-error outcome; RetryAfter tells the caller when
// the window reopens. Dispatched=false means the code was stored but the
// delivery hand-off failed.
type GenerateOtpOutput struct {
	Dispatched  bool
	RateLimited bool
	RetryAfter  time.Duration
}

// VerifyOtpOutput reports the outcome of a verification attempt. A mismatch
// is a non-error outcome: Verified=false with the attempts left before the
// record burns.
type VerifyOtpOutput struct {
	Verified          bool
	RemainingAttempts int64
}

// ResendOtpOutput reports the outcome of a resend. Sent=false with a nil
// error means the email was already verified.
type ResendOtpOutput struct {
	Sent        bool
	RateLimited bool
	RetryAfter  time.Duration
}

// OtpUsecase defines the interface for email-verification code operations.
type OtpUsecase interface {
	GenerateOtp(ctx context.Context, userID uuid.UUID) (*GenerateOtpOutput, error)
	VerifyOtp(ctx context.Context, input *VerifyOtpInput) (*VerifyOtpOutput, error)
	ResendOtp(ctx context.Context, userID uuid.UUID) (*ResendOtpOutput, error)
	VerifyOtpByEmail(ctx context.Context, input *VerifyOtpByEmailInput) (*VerifyOtpOutput, error)
}
