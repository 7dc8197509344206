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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"unsafe"
)

// Table is a parsed CSV object: a header and string rows.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string

	// Size is the number of bytes read from the object.
	Size int64
}

// ParseTable reads a header row followed by data rows. Every row must have
// as many fields as the header.
func ParseTable(name string, r io.Reader) (*Table, error) {
	cr := &countingReader{r: r}
	reader := csv.NewReader(cr)
	reader.ReuseRecord = false

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s is empty", ErrMalformed, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s header: %v", ErrMalformed, name, err)
	}

	t := &Table{Name: name, Header: header}
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
		}
		t.Rows = append(t.Rows, rec)
	}
	t.Size = cr.n
	return t, nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.Header)
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]string, bool) {
	idx := slices.Index(t.Header, name)
	if idx < 0 {
		return nil, false
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, true
}

// MemoryUsage approximates the bytes held by the parsed table: string
// headers plus cell contents.
func (t *Table) MemoryUsage() int64 {
	const strHeader = int64(unsafe.Sizeof(""))

	var total int64
	for _, h := range t.Header {
		total += strHeader + int64(len(h))
	}
	for _, row := range t.Rows {
		for _, cell := range row {
			total += strHeader + int64(len(cell))
		}
	}
	return total
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
