// Package notification holds the outbound edge of the auth core. The real
// mail pipeline lives in a separate delivery system; this implementation only
// hands codes over and records the hand-off.
package notification

import (
	"context"
	"log/slog"
	"time"

	"passport/internal/domain/service"

	deliverycontext "passport/internal/delivery/context"
)

type slogOtpSender struct {
	logger *slog.Logger
}

// NewOtpSender is the constructor for slogOtpSender.
func NewOtpSender(logger *slog.Logger) service.OtpSender {
	return &slogOtpSender{logger: logger}
}

// SendOtpEmail records the dispatch. The code itself is never logged.
func (s *slogOtpSender) SendOtpEmail(ctx context.Context, email, _ string, expiresIn time.Duration) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.LogAttrs(ctx, slog.LevelInfo, "OTP email dispatched",
		slog.String("email", email),
		slog.Duration("expiresIn", expiresIn),
	)

	return nil
}
