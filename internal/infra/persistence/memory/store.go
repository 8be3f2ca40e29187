// Package memory provides an in-process document adapter for tests and
// ephemeral deployments.
package memory

import (
	"context"
	"sync"

	"shiftcore/pkg/domain"
)

var _ domain.Adapter = (*Adapter)(nil)

// Adapter holds the persisted document blob in a single in-memory slot.
type Adapter struct {
	mu    sync.RWMutex
	raw   []byte
	found bool
}

// NewAdapter constructs an empty in-memory adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Load returns a copy of the stored blob.
func (a *Adapter) Load(_ context.Context) ([]byte, bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.found {
		return nil, false, nil
	}
	out := make([]byte, len(a.raw))
	copy(out, a.raw)
	return out, true, nil
}

// Save replaces the stored blob with a copy of raw.
func (a *Adapter) Save(_ context.Context, raw []byte) error {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	a.mu.Lock()
	a.raw = cp
	a.found = true
	a.mu.Unlock()
	return nil
}

// Reset clears the slot so the next Load reports no document.
func (a *Adapter) Reset() {
	a.mu.Lock()
	a.raw = nil
	a.found = false
	a.mu.Unlock()
}
