package core

import (
	"context"
	"fmt"
	"os"

	"shiftcore/internal/infra/persistence/file"
	"shiftcore/internal/infra/persistence/memory"
	"shiftcore/internal/infra/persistence/postgres"
	"shiftcore/internal/infra/persistence/s3"
	"shiftcore/internal/infra/persistence/sqlite"
)

// StorageDriver identifies a concrete persistence backend.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // in-process only (tests / ephemeral)
	StorageFile     StorageDriver = "file"     // single JSON file on disk
	StorageSQLite   StorageDriver = "sqlite"   // embedded sqlite file
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server
	StorageS3       StorageDriver = "s3"       // S3 object storage
)

// OpenAdapter selects a persistence backend using environment variables.
// Defaults to memory when unset.
//
//	SHIFTCORE_STORAGE_DRIVER: memory|file|sqlite|postgres|s3 (default memory)
//	SHIFTCORE_FILE_PATH: path to json file (default ./shiftcore.json)
//	SHIFTCORE_SQLITE_PATH: path to sqlite file (default ./shiftcore.db)
//	SHIFTCORE_POSTGRES_DSN: postgres DSN when driver=postgres
//	SHIFTCORE_S3_BUCKET, SHIFTCORE_S3_KEY: object location when driver=s3
func OpenAdapter(ctx context.Context) (Adapter, error) {
	driver := os.Getenv("SHIFTCORE_STORAGE_DRIVER")
	if driver == "" {
		driver = string(StorageMemory)
	}
	switch StorageDriver(driver) {
	case StorageMemory:
		return memory.NewAdapter(), nil
	case StorageFile:
		path := os.Getenv("SHIFTCORE_FILE_PATH")
		return file.NewAdapter(path), nil
	case StorageSQLite:
		path := os.Getenv("SHIFTCORE_SQLITE_PATH")
		return sqlite.NewAdapter(path)
	case StoragePostgres:
		dsn := os.Getenv("SHIFTCORE_POSTGRES_DSN")
		return postgres.NewAdapter(dsn)
	case StorageS3:
		bucket := os.Getenv("SHIFTCORE_S3_BUCKET")
		key := os.Getenv("SHIFTCORE_S3_KEY")
		return s3.NewAdapter(ctx, bucket, key)
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
