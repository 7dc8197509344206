package cli

import (
	"context"

	"github.com/pgEdge/pgedge-findata/internal/storage"
)

// openBucket returns a bucket for the configured object store, or a local
// directory bucket when localDir is set.
func openBucket(ctx context.Context, localDir string) (storage.Bucket, string, error) {
	if localDir != "" {
		return storage.NewDirBucket(localDir), "", nil
	}

	if err := cfg.ValidateStorage(); err != nil {
		return nil, "", err
	}

	client, err := storage.NewS3Client(ctx, storage.Options{
		Region:          cfg.Storage.Region,
		Endpoint:        cfg.Storage.Endpoint,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		UsePathStyle:    cfg.Storage.UsePathStyle,
	})
	if err != nil {
		return nil, "", err
	}

	return storage.NewS3Bucket(client, cfg.Storage.Bucket), cfg.Storage.Prefix, nil
}
