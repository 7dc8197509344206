//-------------------------------------------------------------------------
//
// pgEdge Financial Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package storage reads and publishes dataset partitions kept in an object
// store. Objects are laid out as <prefix>/<partition>/<table>.csv, the same
// layout the generator writes to a local directory.
package storage

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/pgEdge/pgedge-findata/internal/dataset"
)

var (
	// ErrNotFound is returned when an object does not exist.
	ErrNotFound = errors.New("object not found")

	// ErrUnknownTable is returned for a table name outside the dataset.
	ErrUnknownTable = errors.New("unknown table")

	// ErrMalformed is returned when an object cannot be parsed as a table.
	ErrMalformed = errors.New("malformed table")
)

// Bucket is the minimal object store surface used by Reader and Publisher.
type Bucket interface {
	// Get opens the object stored under key. Missing objects yield an
	// error wrapping ErrNotFound.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Put stores size bytes read from body under key.
	Put(ctx context.Context, key string, body io.Reader, size int64) error
}

// ObjectKey returns the key of a table within a partition.
func ObjectKey(prefix, partition, table string) string {
	return path.Join(prefix, partition, dataset.FileName(table))
}

func knownTable(table string) bool {
	return dataset.Columns(table) != nil
}
