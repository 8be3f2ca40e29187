// Package file persists the document as a single JSON file on disk, the
// closest server-side analog to browser local storage.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"shiftcore/pkg/domain"
)

var _ domain.Adapter = (*Adapter)(nil)

const defaultPath = "shiftcore.json"

// Adapter reads and writes one JSON file. Writes go through a temp file and
// rename so a crash never leaves a truncated document behind.
type Adapter struct {
	mu   sync.Mutex
	path string
}

// NewAdapter constructs a file adapter at path (default ./shiftcore.json).
func NewAdapter(path string) *Adapter {
	if path == "" {
		path = defaultPath
	}
	return &Adapter{path: path}
}

// Path returns the backing file path.
func (a *Adapter) Path() string {
	return a.path
}

// Load reads the backing file. A missing file is not an error.
func (a *Adapter) Load(_ context.Context) ([]byte, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	raw, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read document: %w", err)
	}
	return raw, true, nil
}

// Save atomically replaces the backing file.
func (a *Adapter) Save(_ context.Context, raw []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	dir := filepath.Dir(a.path)
	if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("create dirs: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".shiftcore-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), a.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
