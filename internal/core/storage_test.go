package core

import (
	"context"
	"path/filepath"
	"testing"

	"shiftcore/internal/infra/persistence/file"
	"shiftcore/internal/infra/persistence/memory"
	"shiftcore/internal/infra/persistence/sqlite"
)

func TestOpenAdapterDefaultsToMemory(t *testing.T) {
	t.Setenv("SHIFTCORE_STORAGE_DRIVER", "")

	adapter, err := OpenAdapter(context.Background())
	if err != nil {
		t.Fatalf("OpenAdapter: %v", err)
	}
	if _, ok := adapter.(*memory.Adapter); !ok {
		t.Fatalf("expected memory adapter, got %T", adapter)
	}
}

func TestOpenAdapterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	t.Setenv("SHIFTCORE_STORAGE_DRIVER", "file")
	t.Setenv("SHIFTCORE_FILE_PATH", path)

	adapter, err := OpenAdapter(context.Background())
	if err != nil {
		t.Fatalf("OpenAdapter: %v", err)
	}
	fa, ok := adapter.(*file.Adapter)
	if !ok {
		t.Fatalf("expected file adapter, got %T", adapter)
	}
	if fa.Path() != path {
		t.Fatalf("path not honored: %q", fa.Path())
	}
}

func TestOpenAdapterSQLite(t *testing.T) {
	t.Setenv("SHIFTCORE_STORAGE_DRIVER", "sqlite")
	t.Setenv("SHIFTCORE_SQLITE_PATH", filepath.Join(t.TempDir(), "doc.db"))

	adapter, err := OpenAdapter(context.Background())
	if err != nil {
		t.Fatalf("OpenAdapter: %v", err)
	}
	sa, ok := adapter.(*sqlite.Adapter)
	if !ok {
		t.Fatalf("expected sqlite adapter, got %T", adapter)
	}
	if err := sa.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpenAdapterUnknownDriver(t *testing.T) {
	t.Setenv("SHIFTCORE_STORAGE_DRIVER", "tape")

	if _, err := OpenAdapter(context.Background()); err == nil {
		t.Fatalf("unknown driver should fail")
	}
}

func TestOpenAdapterS3RequiresBucket(t *testing.T) {
	t.Setenv("SHIFTCORE_STORAGE_DRIVER", "s3")
	t.Setenv("SHIFTCORE_S3_BUCKET", "")

	if _, err := OpenAdapter(context.Background()); err == nil {
		t.Fatalf("s3 driver without bucket should fail")
	}
}
