//-------------------------------------------------------------------------
//
// pgEdge Financial Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package testutil provides fixtures for tests: seeded datasets and
// partitions, and throwaway PostgreSQL databases holding a loaded
// partition.
package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-findata/internal/datagen"
	"github.com/pgEdge/pgedge-findata/internal/dataset"
	"github.com/pgEdge/pgedge-findata/internal/db"
)

const (
	// DefaultTestConnString is the default connection string for tests.
	// Override with PGEDGE_TEST_CONN environment variable.
	DefaultTestConnString = "postgres://postgres@localhost:5432/postgres"

	// TestDBPrefix is the prefix for test databases.
	TestDBPrefix = "findata_test_"

	// Partition names every seeded fixture.
	Partition = "2024-12-19"
)

// FixedDate is the generation date of seeded fixtures.
var FixedDate = time.Date(2024, 12, 19, 0, 0, 0, 0, time.UTC)

// GenerateDataset builds a dataset for Partition from seed.
func GenerateDataset(t *testing.T, seed uint64, customers, transactions int) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.NewGenerator(datagen.NewFakerWithSeed(seed)).Generate(dataset.Params{
		Customers:    customers,
		Transactions: transactions,
		Date:         FixedDate,
	})
	if err != nil {
		t.Fatalf("Failed to generate dataset: %v", err)
	}
	return ds
}

// WritePartition generates a dataset from seed and writes it under root.
// It returns the row counts and the partition directory.
func WritePartition(t *testing.T, root string, seed uint64, customers, transactions int) (dataset.Counts, string) {
	t.Helper()

	ds := GenerateDataset(t, seed, customers, transactions)
	dir, err := dataset.Write(root, ds)
	if err != nil {
		t.Fatalf("Failed to write partition: %v", err)
	}
	return ds.Counts(), dir
}

// baseConnString returns the server connection string, or "" when no
// server answers.
func baseConnString() string {
	connStr := os.Getenv("PGEDGE_TEST_CONN")
	if connStr == "" {
		connStr = DefaultTestConnString
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return ""
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return ""
	}
	return connStr
}

// TestDB is a database created for one test. It is dropped when the test
// passes and kept for diagnostics when it fails.
type TestDB struct {
	Pool *pgxpool.Pool
	Name string

	baseConnStr string
}

// NewTestDB skips t when PostgreSQL is unavailable. Otherwise it creates an
// empty database named after name, connects to it and registers cleanup.
func NewTestDB(t *testing.T, name string) *TestDB {
	t.Helper()

	base := baseConnString()
	if base == "" {
		t.Skip("PostgreSQL not available, skipping integration test")
	}

	suffix := make([]byte, 8)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("Failed to generate database name: %v", err)
	}
	tdb := &TestDB{
		Name:        TestDBPrefix + name + "_" + hex.EncodeToString(suffix),
		baseConnStr: base,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, base)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	_, err = admin.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{tdb.Name}.Sanitize())
	admin.Close()
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { tdb.cleanup(t) })

	config, err := pgxpool.ParseConfig(base)
	if err != nil {
		t.Fatalf("Failed to parse connection string: %v", err)
	}
	config.ConnConfig.Database = tdb.Name

	tdb.Pool, err = pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	return tdb
}

// LoadPartition creates the schema and loads a dataset generated from
// seed, returning the dataset that was loaded.
func (d *TestDB) LoadPartition(t *testing.T, seed uint64, customers, transactions int) *dataset.Dataset {
	t.Helper()

	ctx := context.Background()
	ds := GenerateDataset(t, seed, customers, transactions)

	if err := db.CreateSchema(ctx, d.Pool); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	counts, err := db.LoadDataset(ctx, d.Pool, ds)
	if err != nil {
		t.Fatalf("Failed to load dataset: %v", err)
	}
	if counts != ds.Counts() {
		t.Fatalf("Loaded counts %+v, want %+v", counts, ds.Counts())
	}
	return ds
}

// CountRows returns the number of rows in table.
func (d *TestDB) CountRows(t *testing.T, table string) int {
	t.Helper()

	var n int
	err := d.Pool.QueryRow(context.Background(),
		"SELECT count(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

func (d *TestDB) cleanup(t *testing.T) {
	if d.Pool != nil {
		d.Pool.Close()
	}
	if t.Failed() {
		t.Logf("Test failed - keeping database %s for diagnostics", d.Name)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, d.baseConnStr)
	if err != nil {
		t.Logf("Warning: Failed to connect to drop test database: %v", err)
		return
	}
	defer admin.Close()

	_, err = admin.Exec(ctx, "DROP DATABASE IF EXISTS "+pgx.Identifier{d.Name}.Sanitize()+" WITH (FORCE)")
	if err != nil {
		t.Logf("Warning: Failed to drop test database: %v", err)
	}
}
