package core

import (
	"context"
	"time"
)

// Logger is the minimal leveled logger the store emits through. Arguments are
// alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Clock abstracts the store's time source for deterministic tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// MetricsRecorder receives one observation per store operation.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// Tracer starts spans around store operations.
type Tracer interface {
	Start(ctx context.Context, operation string) (context.Context, TraceSpan)
}

// TraceSpan terminates a span started by a Tracer.
type TraceSpan interface {
	End(err error)
}

// AuditStatus classifies the outcome recorded in an audit entry.
type AuditStatus string

// Canonical audit statuses.
const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusError   AuditStatus = "error"
)

// AuditEntry describes one store operation for external audit sinks. It is
// distinct from the in-document audit log collection, which the reducer
// maintains as application data.
type AuditEntry struct {
	Operation string
	Action    ActionType
	Status    AuditStatus
	Duration  time.Duration
	Timestamp time.Time
	Details   string
}

// AuditRecorder receives audit entries emitted by the store.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry)
}
