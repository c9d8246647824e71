package snapshot

import (
	"context"
	"fmt"

	"github.com/veecerts/veevault/internal/config"
)

// Open constructs the blob store selected by configuration.
func Open(ctx context.Context, cfg config.SnapshotConfig) (BlobStore, error) {
	switch cfg.Backend {
	case "file":
		return NewFileStore(cfg.Dir)
	case "postgres":
		return NewPostgresStore(ctx, cfg.Postgres)
	case "minio":
		return NewMinIOStore(ctx, cfg.MinIO)
	case "badger":
		return NewBadgerStore(cfg.Badger)
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.Backend)
	}
}
