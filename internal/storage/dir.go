package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DirBucket is a Bucket backed by a local directory. Keys map to paths
// below the root, so a generator output directory can be read in place.
type DirBucket struct {
	root string
}

// NewDirBucket returns a bucket rooted at dir.
func NewDirBucket(dir string) *DirBucket {
	return &DirBucket{root: dir}
}

func (b *DirBucket) path(key string) string {
	return filepath.Join(b.root, filepath.FromSlash(key))
}

// Get opens the file for key.
func (b *DirBucket) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(b.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", b.path(key), ErrNotFound)
		}
		return nil, err
	}
	return f, nil
}

// Put writes body to the file for key, replacing it atomically.
func (b *DirBucket) Put(ctx context.Context, key string, body io.Reader, size int64) error {
	dst := b.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.CopyN(tmp, body, size); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
