// Package postgres persists the document snapshot in a PostgreSQL state
// table via the pgx database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"shiftcore/pkg/domain"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

var _ domain.Adapter = (*Adapter)(nil)

const (
	defaultDriver  = "pgx"
	defaultDSN     = "postgres://localhost/shiftcore?sslmode=disable"
	documentBucket = "document"
)

// sqlOpen is swappable for tests that inject a fake driver.
var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// OverrideSQLOpen replaces the database opener and returns a restore
// function.
func OverrideSQLOpen(open func(driverName, dsn string) (*sql.DB, error)) func() {
	openMu.Lock()
	prev := sqlOpen
	sqlOpen = open
	openMu.Unlock()
	return func() {
		openMu.Lock()
		sqlOpen = prev
		openMu.Unlock()
	}
}

// Adapter stores the whole document as one JSON blob keyed by bucket.
type Adapter struct {
	mu sync.Mutex
	db *sql.DB
}

// NewAdapter opens a Postgres connection using the provided DSN (falls back
// to defaultDSN) and ensures the state table exists.
func NewAdapter(dsn string) (*Adapter, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	openMu.Lock()
	db, err := sqlOpen(defaultDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BYTEA NOT NULL
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
		`SELECT payload FROM state WHERE bucket = $1`, documentBucket).Scan(&raw)
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
		`INSERT INTO state(bucket,payload) VALUES($1,$2)
		 ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
		documentBucket, raw); err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}
	return nil
}

// DB exposes the underlying sql.DB for integration testing hooks.
func (a *Adapter) DB() *sql.DB { return a.db }

// Close releases the database handle.
func (a *Adapter) Close() error {
	return a.db.Close()
}
