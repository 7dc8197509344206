//-------------------------------------------------------------------------
//
// pgEdge Financial Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pgEdge/pgedge-findata/internal/datagen"
	"github.com/pgEdge/pgedge-findata/internal/logging"
)

// createFile opens a table file for writing. Tests replace it to inject
// failures.
var createFile = os.Create

// FileName returns the file name of a table inside a partition directory.
func FileName(table string) string {
	return table + ".csv"
}

// PartitionDir returns the directory holding a partition under root.
func PartitionDir(root, partition string) string {
	return filepath.Join(root, partition)
}

// Write persists the dataset as root/<partition>/<table>.csv and returns
// the partition directory. The four files are written into a staging
// directory that is renamed into place only after every file is complete,
// so a failed write leaves no partial partition behind. An existing
// partition with the same name is replaced as a whole.
func Write(root string, ds *Dataset) (string, error) {
	if ds.Partition == "" {
		return "", &WriteError{Path: root, Err: errors.New("dataset has no partition name")}
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", &WriteError{Path: root, Err: err}
	}

	final := PartitionDir(root, ds.Partition)
	staging, err := os.MkdirTemp(root, "."+ds.Partition+".tmp-")
	if err != nil {
		return "", &WriteError{Path: root, Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			if err := os.RemoveAll(staging); err != nil {
				logging.Warn().Err(err).Str("path", staging).Msg("Failed to remove staging directory")
			}
		}
	}()

	if err := os.Chmod(staging, 0o755); err != nil {
		return "", &WriteError{Path: staging, Err: err}
	}

	for _, t := range ds.Tables() {
		path := filepath.Join(staging, FileName(t.Name))
		size, err := writeTable(path, t)
		if err != nil {
			return "", &WriteError{Table: t.Name, Path: filepath.Join(final, FileName(t.Name)), Err: err}
		}
		logging.Debug().
			Str("table", t.Name).
			Int("rows", len(t.Rows)).
			Str("size", datagen.FormatSize(size)).
			Msg("Wrote table")
	}

	if err := replaceDir(staging, final); err != nil {
		return "", &WriteError{Path: final, Err: err}
	}
	committed = true

	logging.Info().
		Str("path", final).
		Int("rows", ds.Counts().Total()).
		Msg("Partition written")

	return final, nil
}

func writeTable(path string, t Table) (int64, error) {
	f, err := createFile(path)
	if err != nil {
		return 0, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		f.Close()
		return 0, err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		f.Close()
		return 0, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// replaceDir moves src to dst. A pre-existing dst is moved aside first and
// restored if the swap fails.
func replaceDir(src, dst string) error {
	if _, err := os.Stat(dst); errors.Is(err, os.ErrNotExist) {
		return os.Rename(src, dst)
	} else if err != nil {
		return err
	}

	backup := src + ".prev"
	if err := os.Rename(dst, backup); err != nil {
		return fmt.Errorf("failed to move existing partition aside: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		if rerr := os.Rename(backup, dst); rerr != nil {
			logging.Error().Err(rerr).Str("path", backup).Msg("Failed to restore previous partition")
		}
		return err
	}
	if err := os.RemoveAll(backup); err != nil {
		logging.Warn().Err(err).Str("path", backup).Msg("Failed to remove previous partition")
	}
	return nil
}
