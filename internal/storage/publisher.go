package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pgEdge/pgedge-findata/internal/dataset"
	"github.com/pgEdge/pgedge-findata/internal/datagen"
	"github.com/pgEdge/pgedge-findata/internal/logging"
)

// Publisher uploads local partitions to a Bucket.
type Publisher struct {
	bucket Bucket
	prefix string
}

// NewPublisher creates a publisher writing under prefix in bucket.
func NewPublisher(bucket Bucket, prefix string) *Publisher {
	return &Publisher{bucket: bucket, prefix: prefix}
}

// Publish uploads the four table files found in dir as the given
// partition and returns the keys written. It stops at the first failure.
func (p *Publisher) Publish(ctx context.Context, dir, partition string) ([]string, error) {
	keys := make([]string, 0, len(dataset.TableNames))

	for _, table := range dataset.TableNames {
		key := ObjectKey(p.prefix, partition, table)
		if err := p.publishFile(ctx, filepath.Join(dir, dataset.FileName(table)), key); err != nil {
			return keys, fmt.Errorf("failed to upload table %s to %s: %w", table, key, err)
		}
		keys = append(keys, key)
	}

	logging.Info().
		Str("partition", partition).
		Int("objects", len(keys)).
		Msg("Partition published")

	return keys, nil
}

func (p *Publisher) publishFile(ctx context.Context, path, key string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	if err := p.bucket.Put(ctx, key, f, info.Size()); err != nil {
		return err
	}

	logging.Debug().
		Str("key", key).
		Str("size", datagen.FormatSize(info.Size())).
		Msg("Uploaded object")
	return nil
}
