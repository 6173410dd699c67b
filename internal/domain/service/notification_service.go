package service

import (
	"context"
	"time"
)

// OtpSender dispatches a verification code to the user. Delivery transport
// (mail provider, queues, templates) is owned by another system; from this
// core's perspective the call is fire-and-forget and a failure never
// invalidates the already-stored code.
type OtpSender interface {
	// SendOtpEmail dispatches the code to the given address.
	SendOtpEmail(ctx context.Context, email, code string, expiresIn time.Duration) error
}
