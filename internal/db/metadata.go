//-------------------------------------------------------------------------
//
// pgEdge Financial Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-findata/internal/dataset"
	"github.com/pgEdge/pgedge-findata/internal/logging"
	"github.com/pgEdge/pgedge-findata/pkg/version"
)

const metadataTable = "findata_metadata"

var (
	createMetadataTableSQL = fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`, metadataTable)

	upsertMetadataSQL = fmt.Sprintf(`
INSERT INTO %s (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, metadataTable)

	selectMetadataSQL = fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, metadataTable)

	dropMetadataSQL = fmt.Sprintf(`DROP TABLE IF EXISTS %s`, metadataTable)
)

// SaveMetadata records which partition was loaded and its row counts.
func SaveMetadata(ctx context.Context, pool *pgxpool.Pool, partition string, counts dataset.Counts) error {
	_, err := pool.Exec(ctx, createMetadataTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	metadata := map[string]string{
		"partition": partition,
		"version":   version.Short(),
		"loaded_at": time.Now().UTC().Format(time.RFC3339),
	}
	for table, n := range counts.ByTable() {
		metadata[table+"_rows"] = strconv.Itoa(n)
	}

	for key, value := range metadata {
		_, err := pool.Exec(ctx, upsertMetadataSQL, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Str("partition", partition).
		Int("rows", counts.Total()).
		Msg("Saved metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var value string
	err := pool.QueryRow(ctx, selectMetadataSQL, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, dropMetadataSQL)
	return err
}
