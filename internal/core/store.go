package core

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// Store owns the live document and serializes every transition through the
// reducer. Persistence is best effort: the adapter is written after each
// dispatch and failures are logged and counted, never surfaced to callers.
type Store struct {
	mu      sync.Mutex
	doc     Document
	adapter Adapter
	reducer *Reducer

	logger  Logger
	metrics MetricsRecorder
	tracer  Tracer
	audit   AuditRecorder
	clock   Clock
	newID   func() string
}

// Option customizes a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetricsRecorder sets the metrics sink.
func WithMetricsRecorder(rec MetricsRecorder) Option {
	return func(s *Store) {
		s.metrics = rec
	}
}

// WithTracer sets the tracer.
func WithTracer(tracer Tracer) Option {
	return func(s *Store) {
		s.tracer = tracer
	}
}

// WithAuditRecorder sets the audit sink.
func WithAuditRecorder(rec AuditRecorder) Option {
	return func(s *Store) {
		s.audit = rec
	}
}

// WithClock overrides the time source used for timestamps and durations.
func WithClock(clock Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDFunc overrides the identifier source used for new records.
func WithIDFunc(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewStore loads, migrates, and holds the document. A load error or missing
// blob falls back to sample data; the migrated document is written back so
// the persisted form is always current.
func NewStore(ctx context.Context, adapter Adapter, sample SampleProvider, opts ...Option) *Store {
	s := &Store{
		adapter: adapter,
		logger:  noopLogger{},
		clock:   ClockFunc(func() time.Time { return time.Now().UTC() }),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reducer = NewReducer(sample, s.clock, s.newID)

	var raw []byte
	if adapter != nil {
		loaded, found, err := adapter.Load(ctx)
		switch {
		case err != nil:
			s.logger.Warn("load failed, falling back to sample data", "error", err)
		case found:
			raw = loaded
		}
	}
	s.doc = Migrate(raw, sample)
	s.persist(ctx, "boot")
	return s
}

// Document returns a deep clone of the current document.
func (s *Store) Document() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Dispatch applies one action and persists the result. The returned document
// is a clone of the new state; callers never observe internal aliasing.
func (s *Store) Dispatch(ctx context.Context, action Action) Document {
	operation := "dispatch_" + strings.ToLower(string(action.Type))
	s.logger.Debug("dispatch", "action", string(action.Type))
	var span TraceSpan
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, operation)
	}
	started := s.clock.Now()

	s.mu.Lock()
	s.doc = s.reducer.Reduce(s.doc, action)
	next := s.doc.Clone()
	s.mu.Unlock()

	duration := s.clock.Now().Sub(started)
	s.persist(ctx, operation)
	if s.metrics != nil {
		s.metrics.Observe(ctx, operation, true, duration)
	}
	if s.audit != nil {
		s.audit.Record(ctx, AuditEntry{
			Operation: operation,
			Action:    action.Type,
			Status:    AuditStatusSuccess,
			Duration:  duration,
			Timestamp: s.clock.Now(),
		})
	}
	if span != nil {
		span.End(nil)
	}
	return next
}

// persist writes the current document through the adapter. Failures are
// swallowed after logging and counting; the in-memory document stays
// authoritative.
func (s *Store) persist(ctx context.Context, operation string) {
	if s.adapter == nil {
		return
	}
	s.mu.Lock()
	raw, err := json.Marshal(s.doc)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("encode document failed", "operation", operation, "error", err)
		return
	}
	started := s.clock.Now()
	err = s.adapter.Save(ctx, raw)
	if s.metrics != nil {
		s.metrics.Observe(ctx, "save", err == nil, s.clock.Now().Sub(started))
	}
	if err != nil {
		s.logger.Warn("save failed", "operation", operation, "error", err)
	}
}
