//-------------------------------------------------------------------------
//
// pgEdge Financial Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package storage

import (
	"context"
	"fmt"
	"slices"

	"github.com/pgEdge/pgedge-findata/internal/dataset"
	"github.com/pgEdge/pgedge-findata/internal/logging"
)

// RetrievalError reports a table that could not be fetched or parsed.
type RetrievalError struct {
	Partition string
	Table     string
	Key       string
	Err       error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to retrieve table %s for partition %s (key %s): %v",
		e.Table, e.Partition, e.Key, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// Reader fetches partition tables from a Bucket.
type Reader struct {
	bucket Bucket
	prefix string
}

// NewReader creates a reader for objects under prefix in bucket.
func NewReader(bucket Bucket, prefix string) *Reader {
	return &Reader{bucket: bucket, prefix: prefix}
}

// ReadTable fetches and parses one table of a partition. The object's
// header must match the table's columns.
func (r *Reader) ReadTable(ctx context.Context, partition, table string) (*Table, error) {
	key := ObjectKey(r.prefix, partition, table)
	fail := func(err error) error {
		return &RetrievalError{Partition: partition, Table: table, Key: key, Err: err}
	}

	if !knownTable(table) {
		return nil, fail(ErrUnknownTable)
	}

	body, err := r.bucket.Get(ctx, key)
	if err != nil {
		return nil, fail(err)
	}
	defer body.Close()

	t, err := ParseTable(table, body)
	if err != nil {
		return nil, fail(err)
	}
	if want := dataset.Columns(table); !slices.Equal(t.Header, want) {
		return nil, fail(fmt.Errorf("%w: %s header %v, want %v", ErrMalformed, table, t.Header, want))
	}

	logging.Debug().
		Str("partition", partition).
		Str("table", table).
		Int("rows", t.NumRows()).
		Msg("Read table")

	return t, nil
}

// TableSummary holds the metrics of one table. Err is set when the table
// could not be read, in which case the counts are zero.
type TableSummary struct {
	Table   string `json:"table"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Bytes   int64  `json:"bytes"`
	Memory  int64  `json:"memory"`
	Err     error  `json:"-"`
}

// Summary aggregates the metrics of every table in a partition.
type Summary struct {
	Partition string         `json:"partition"`
	Tables    []TableSummary `json:"tables"`
}

// TotalRows returns the number of rows across readable tables.
func (s Summary) TotalRows() int {
	var total int
	for _, t := range s.Tables {
		total += t.Rows
	}
	return total
}

// Failed returns the tables that could not be read.
func (s Summary) Failed() []TableSummary {
	var failed []TableSummary
	for _, t := range s.Tables {
		if t.Err != nil {
			failed = append(failed, t)
		}
	}
	return failed
}

// Table returns the summary of the named table.
func (s Summary) Table(name string) (TableSummary, bool) {
	for _, t := range s.Tables {
		if t.Table == name {
			return t, true
		}
	}
	return TableSummary{}, false
}

// Summarize reads every table of the partition and reports its metrics.
// A table that fails is recorded with zero counts and its error; the
// remaining tables are still read.
func (r *Reader) Summarize(ctx context.Context, partition string) Summary {
	s := Summary{Partition: partition}

	for _, name := range dataset.TableNames {
		t, err := r.ReadTable(ctx, partition, name)
		if err != nil {
			logging.Warn().
				Err(err).
				Str("partition", partition).
				Str("table", name).
				Msg("Table unavailable")
			s.Tables = append(s.Tables, TableSummary{Table: name, Err: err})
			continue
		}
		s.Tables = append(s.Tables, TableSummary{
			Table:   name,
			Rows:    t.NumRows(),
			Columns: t.NumColumns(),
			Bytes:   t.Size,
			Memory:  t.MemoryUsage(),
		})
	}

	return s
}

// CountRecords returns the row count of every table in the partition,
// with zero for tables that could not be read.
func (r *Reader) CountRecords(ctx context.Context, partition string) map[string]int {
	counts := make(map[string]int, len(dataset.TableNames))
	for _, t := range r.Summarize(ctx, partition).Tables {
		counts[t.Table] = t.Rows
	}
	return counts
}
