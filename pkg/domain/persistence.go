package domain

import "context"

// Adapter reads and writes the single serialized document snapshot. The store
// treats both operations as best-effort: a failed Load falls back to sample
// data and a failed Save is dropped, so implementations should return errors
// only for observability, never expecting retries.
type Adapter interface {
	// Load returns the raw persisted document bytes. found is false when no
	// snapshot has ever been written.
	Load(ctx context.Context) (raw []byte, found bool, err error)
	// Save replaces the persisted snapshot.
	Save(ctx context.Context, raw []byte) error
}

// SampleProvider supplies a fully populated document when no valid persisted
// snapshot exists. The returned document carries no schema version; the
// migrator stamps it.
type SampleProvider func() Document
