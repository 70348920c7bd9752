package storage

import (
	"context"
	"fmt"

	"github.com/adityakr/bazaari/config"
)

// NewFromConfig builds the disk named by STORAGE_DEFAULT (local | s3).
func NewFromConfig(ctx context.Context) (Disk, error) {
	switch name := config.StorageDefault(); name {
	case "s3":
		return NewS3Disk(ctx)
	case "local", "":
		return NewLocalDisk(config.StorageLocalRoot(), config.StorageURL()), nil
	default:
		return nil, fmt.Errorf("storage: unknown disk %q", name)
	}
}
