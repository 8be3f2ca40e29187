// Package sqlite persists the document snapshot in an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"shiftcore/pkg/domain"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

var _ domain.Adapter = (*Adapter)(nil)

const (
	defaultPath    = "shiftcore.db"
	documentBucket = "document"
)

// Adapter stores the whole document as one JSON blob in a single-row state
// table, keyed by bucket.
type Adapter struct {
	mu sync.Mutex
	db *sql.DB
}

// NewAdapter opens (or creates) the SQLite file and ensures the state table
// exists. An empty path defaults to ./shiftcore.db.
func NewAdapter(path string) (*Adapter, error) {
	if path == "" {
		path = defaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Adapter{db: db}, nil
}

// Load reads the document blob. An empty table is not an error.
func (a *Adapter) Load(ctx context.Context) ([]byte, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var raw []byte
	err := a.db.QueryRowContext(ctx,
		`SELECT payload FROM state WHERE bucket = ?`, documentBucket).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select state: %w", err)
	}
	return raw, true, nil
}

// Save upserts the document blob.
func (a *Adapter) Save(ctx context.Context, raw []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.db.ExecContext(ctx,
		`INSERT INTO state(bucket,payload) VALUES(?,?)
		 ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
		documentBucket, raw); err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (a *Adapter) Close() error {
	return a.db.Close()
}
