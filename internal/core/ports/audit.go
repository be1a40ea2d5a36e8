package ports

import (
	"context"
	"time"
)

// AuthEvent is a single auth-flow occurrence recorded for audit purposes.
type AuthEvent struct {
	Action    string    // "sign_up", "sign_in", "sign_in_failed", "sign_out"
	UserID    string    // empty for failed sign-ins against unknown emails
	Email     string
	RequestID string
	At        time.Time
}

// AuditRecorder persists auth events. Recording is fire-and-forget: it never
// sits on the critical path of an auth flow.
type AuditRecorder interface {
	Record(ctx context.Context, event AuthEvent) error
}

// AuthEventSink accepts events for asynchronous recording.
type AuthEventSink interface {
	Enqueue(event AuthEvent)
}

// AuditRepository is the persistence interface behind the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event AuthEvent) error
}
