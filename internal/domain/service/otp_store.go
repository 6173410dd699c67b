package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrOtpRecordNotFound is returned when no live OTP record exists for a user.
var ErrOtpRecordNotFound = errors.New("otp record not found")

// OtpRecord is one live verification code. At most one exists per user.
type OtpRecord struct {
	UserID   uuid.UUID // Owner of the code; also the storage key.
	Code     string    // Fixed-length numeric code.
	Attempts int64     // Failed verification attempts so far.
}

// OtpStore keeps short-lived OTP records in a TTL-capable ephemeral store.
type OtpStore interface {
	// Save stores a fresh record with attempts reset to zero, replacing any
	// live record for the same user.
	Save(ctx context.Context, userID uuid.UUID, code string, ttl time.Duration) error

	// Get retrieves the live record, or ErrOtpRecordNotFound.
	Get(ctx context.Context, userID uuid.UUID) (*OtpRecord, error)

	// IncrementAttempts atomically bumps the attempt counter and returns the
	// new value, keeping the cap exact under concurrent verifies.
	IncrementAttempts(ctx context.Context, userID uuid.UUID) (int64, error)

	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, userID uuid.UUID) error

	// FindByCode scans live records for ones matching the code. Live volume
	// is bounded by the generation rate limiter, not by total user count.
	FindByCode(ctx context.Context, code string) ([]*OtpRecord, error)
}

// OtpRateLimiter bounds how often a user may generate codes.
type OtpRateLimiter interface {
	// Allow consumes one generation slot. When the window is exhausted it
	// returns allowed=false and the time until the window resets.
	Allow(ctx context.Context, userID uuid.UUID) (allowed bool, retryAfter time.Duration, err error)
}
