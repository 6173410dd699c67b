package service

import (
	"context"

	"github.com/google/uuid"
)

// AuditActorUnknown is the sentinel actor recorded for failures that happen
// before any local identity is established (e.g. a rejected OAuth callback).
// Using a sentinel instead of omitting the record keeps failure events
// correlatable.
const AuditActorUnknown = "unknown"

// AuditEvent describes one authentication decision, success or failure.
type AuditEvent struct {
	ActorID      string         // Local user id, or AuditActorUnknown.
	TenantID     *uuid.UUID     // Tenant partition of the attempt, nil for tenant-less.
	Action       string         // e.g. "google_login", "google_link".
	Success      bool           //
	ErrorKind    string         // Business error code on failure.
	ErrorMessage string         // Human-readable failure detail.
	Context      map[string]any // Optional extra fields (email, ip, ...).
}

// AuditSink records authentication events. Best effort: implementations and
// callers must never let an audit failure propagate into the user-facing
// operation.
type AuditSink interface {
	Record(ctx context.Context, event AuditEvent)
}
