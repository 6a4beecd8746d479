package storage

import (
	"context"
	"fmt"

	"zoo-records/internal/adapters/storage/bolt"
	"zoo-records/internal/adapters/storage/file"
	"zoo-records/internal/adapters/storage/memory"
	"zoo-records/internal/adapters/storage/postgres"
	"zoo-records/internal/adapters/storage/s3"
	"zoo-records/internal/adapters/storage/sqlite"
	"zoo-records/internal/platform/config"
	"zoo-records/internal/ports/blob"
)

// Open elige el backend según cfg.StoreDriver.
func Open(ctx context.Context, cfg config.Config) (blob.Store, error) {
	switch cfg.StoreDriver {
	case blob.DriverFile, "":
		return file.NewStore(cfg.DataDir)
	case blob.DriverMemory:
		return memory.NewStore(), nil
	case blob.DriverPostgres:
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		repo, err := postgres.NewDocumentsRepo(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return repo, nil
	case blob.DriverSQLite:
		return sqlite.NewStore(ctx, cfg.SQLitePath)
	case blob.DriverBolt:
		return bolt.NewStore(cfg.BoltPath)
	case blob.DriverS3:
		return s3.New(ctx, s3.Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			Prefix:    cfg.S3.Prefix,
			PathStyle: cfg.S3.PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
