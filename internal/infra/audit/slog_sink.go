// Package audit records authentication decisions through the structured logger.
package audit

import (
	"context"
	"log/slog"

	"passport/internal/domain/service"

	deliverycontext "passport/internal/delivery/context"
)

type slogSink struct {
	logger *slog.Logger
}

// NewSink is the constructor for slogSink.
func NewSink(logger *slog.Logger) service.AuditSink {
	return &slogSink{logger: logger}
}

// Record writes one audit event. Failures surface as warn-level records so a
// stream of rejected attempts stands out.
func (s *slogSink) Record(ctx context.Context, event service.AuditEvent) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	attrs := []slog.Attr{
		slog.String("actorId", event.ActorID),
		slog.String("action", event.Action),
		slog.Bool("success", event.Success),
	}
	if event.TenantID != nil {
		attrs = append(attrs, slog.String("tenantId", event.TenantID.String()))
	}
	if event.ErrorKind != "" {
		attrs = append(attrs, slog.String("errorKind", event.ErrorKind))
	}
	if event.ErrorMessage != "" {
		attrs = append(attrs, slog.String("errorMessage", event.ErrorMessage))
	}
	for key, value := range event.Context {
		attrs = append(attrs, slog.Any(key, value))
	}

	level := slog.LevelInfo
	if !event.Success {
		level = slog.LevelWarn
	}
	logger.LogAttrs(ctx, level, "auth audit event", attrs...)
}
