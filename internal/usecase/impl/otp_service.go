package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"log/slog"
	"math/big"
	"time"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// otpService implements the OtpUsecase interface.
type otpService struct {
	userRepo    repository.UserRepository
	store       service.OtpStore
	limiter     service.OtpRateLimiter
	sender      service.OtpSender
	codeLength  int
	codeTTL     time.Duration
	maxAttempts int64
	logger      *slog.Logger
}

// OtpServiceParams holds dependencies for otpService, injected by Fx.
type OtpServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Store    service.OtpStore
	Limiter  service.OtpRateLimiter
	Sender   service.OtpSender
	Config   *config.Config
	Logger   *slog.Logger
}

// NewOtpService is the constructor for otpService.
func NewOtpService(params OtpServiceParams) usecase.OtpUsecase {
	return &otpService{
		userRepo:    params.UserRepo,
		store:       params.Store,
		limiter:     params.Limiter,
		sender:      params.Sender,
		codeLength:  params.Config.Otp.Length,
		codeTTL:     params.Config.Otp.TTL,
		maxAttempts: int64(params.Config.Otp.MaxAttempts),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *otpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateOtp mints a fresh verification code for the user, replacing any
// live one. Hitting the rate limit is a non-error outcome carrying the wait.
func (srv *otpService) GenerateOtp(ctx context.Context, userID uuid.UUID) (*usecase.GenerateOtpOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to load user for otp generation")
	}

	allowed, retryAfter, err := srv.limiter.Allow(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check otp rate limit")
	}
	if !allowed {
		srv.log(ctx).Warn("OTP generation rate limited", slog.Any("userID", userID), slog.Duration("retryAfter", retryAfter))

		return &usecase.GenerateOtpOutput{
			RateLimited: true,
			RetryAfter:  retryAfter,
		}, nil
	}

	code, err := generateNumericCode(srv.codeLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp code")
	}
	if err := srv.store.Save(ctx, userID, code, srv.codeTTL); err != nil {
		return nil, errors.Wrap(err, "failed to store otp record")
	}

	// The code is live from this point; a delivery failure only means the
	// user has to ask for a resend.
	if err := srv.sender.SendOtpEmail(ctx, user.Email, code, srv.codeTTL); err != nil {
		srv.log(ctx).Warn("OTP dispatch failed", slog.Any("userID", userID), slog.Any("error", err))

		return &usecase.GenerateOtpOutput{Dispatched: false}, nil
	}
	srv.log(ctx).Debug("OTP generated", slog.Any("userID", userID))

	return &usecase.GenerateOtpOutput{Dispatched: true}, nil
}

// VerifyOtp checks a presented code. A match proves email ownership and burns
// the record; a mismatch spends one of the capped attempts.
func (srv *otpService) VerifyOtp(ctx context.Context, input *usecase.VerifyOtpInput) (*usecase.VerifyOtpOutput, error) {
	record, err := srv.store.Get(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, service.ErrOtpRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOtpNotFound, "no live otp record")
		}

		return nil, errors.Wrap(err, "failed to load otp record")
	}

	// A record already at the cap is spent regardless of the presented code;
	// a failed burn on an earlier capped attempt can leave one behind.
	if record.Attempts >= srv.maxAttempts {
		srv.log(ctx).Warn("OTP attempt cap reached", slog.Any("userID", input.UserID))

		if err := srv.store.Delete(ctx, input.UserID); err != nil {
			return nil, errors.Wrap(err, "failed to burn otp record")
		}

		return nil, errors.Wrap(domainerrors.ErrOtpAttemptsExceeded, "otp attempt cap reached")
	}

	if subtle.ConstantTimeCompare([]byte(record.Code), []byte(input.Code)) == 1 {
		return srv.completeVerification(ctx, input.UserID)
	}

	attempts, err := srv.store.IncrementAttempts(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, service.ErrOtpRecordNotFound) {
			// Record expired between Get and the increment.
			return nil, errors.Wrap(domainerrors.ErrOtpNotFound, "otp record expired")
		}

		return nil, errors.Wrap(err, "failed to record otp attempt")
	}

	remaining := srv.maxAttempts - attempts
	if remaining <= 0 {
		srv.log(ctx).Warn("OTP attempt cap reached", slog.Any("userID", input.UserID))

		if err := srv.store.Delete(ctx, input.UserID); err != nil {
			return nil, errors.Wrap(err, "failed to burn otp record")
		}

		return nil, errors.Wrap(domainerrors.ErrOtpAttemptsExceeded, "otp attempt cap reached")
	}
	srv.log(ctx).Debug("OTP mismatch", slog.Any("userID", input.UserID), slog.Int64("remaining", remaining))

	return &usecase.VerifyOtpOutput{
		Verified:          false,
		RemainingAttempts: remaining,
	}, nil
}

// completeVerification burns the record and marks the email as proven.
// Marking an already-verified account again is harmless, which keeps the
// whole flow idempotent under racing verifies.
func (srv *otpService) completeVerification(ctx context.Context, userID uuid.UUID) (*usecase.VerifyOtpOutput, error) {
	if err := srv.store.Delete(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to delete otp record")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to load user for verification")
	}

	if !user.EmailVerified {
		user.MarkEmailVerified(time.Now())
		if err := srv.userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to mark email verified")
		}
	}
	srv.log(ctx).Info("Email verified", slog.Any("userID", userID))

	return &usecase.VerifyOtpOutput{Verified: true}, nil
}

// ResendOtp replaces the live code with a fresh one. Already-verified
// accounts get a quiet no-op.
func (srv *otpService) ResendOtp(ctx context.Context, userID uuid.UUID) (*usecase.ResendOtpOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to load user for otp resend")
	}
	if user.EmailVerified {
		return &usecase.ResendOtpOutput{Sent: false}, nil
	}

	if err := srv.store.Delete(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to discard previous otp record")
	}

	generated, err := srv.GenerateOtp(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to regenerate otp")
	}

	return &usecase.ResendOtpOutput{
		Sent:        !generated.RateLimited,
		RateLimited: generated.RateLimited,
		RetryAfter:  generated.RetryAfter,
	}, nil
}

// VerifyOtpByEmail resolves a bare code against live records, constrained to
// one tenant partition, then verifies as usual.
func (srv *otpService) VerifyOtpByEmail(ctx context.Context, input *usecase.VerifyOtpByEmailInput) (*usecase.VerifyOtpOutput, error) {
	records, err := srv.store.FindByCode(ctx, input.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search otp records")
	}

	for _, record := range records {
		user, err := srv.userRepo.FindByID(ctx, record.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load otp record owner")
		}
		if !user.InTenant(input.TenantID) {
			continue
		}

		return srv.VerifyOtp(ctx, &usecase.VerifyOtpInput{
			UserID: record.UserID,
			Code:   input.Code,
		})
	}

	return nil, errors.Wrap(domainerrors.ErrOtpNotFound, "no matching otp record in partition")
}

// generateNumericCode returns a uniformly random fixed-length digit string.
func generateNumericCode(length int) (string, error) {
	const digits = "0123456789"

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", errors.Wrap(err, "failed to read random digit")
		}
		code[i] = digits[n.Int64()]
	}

	return string(code), nil
}
