//-------------------------------------------------------------------------
//
// pgEdge Financial Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-findata/internal/datagen"
	"github.com/pgEdge/pgedge-findata/internal/dataset"
)

func TestDefaultPoolConfig(t *testing.T) {
	cfg := DefaultPoolConfig()
	if cfg.MaxConns < cfg.MinConns {
		t.Errorf("MaxConns %d below MinConns %d", cfg.MaxConns, cfg.MinConns)
	}
	if cfg.MaxConnLifetime != 30*time.Minute {
		t.Errorf("unexpected MaxConnLifetime %v", cfg.MaxConnLifetime)
	}
}

func TestTableRows(t *testing.T) {
	ds, err := dataset.NewGenerator(datagen.NewFakerWithSeed(3)).Generate(dataset.Params{
		Customers:    4,
		Transactions: 9,
		Date:         time.Date(2024, 12, 19, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tables := tableRows(ds)
	if len(tables) != len(dataset.TableNames) {
		t.Fatalf("expected %d tables, got %d", len(dataset.TableNames), len(tables))
	}

	counts := ds.Counts().ByTable()
	for i, tbl := range tables {
		if tbl.name != dataset.TableNames[i] {
			t.Errorf("table %d: expected %s, got %s", i, dataset.TableNames[i], tbl.name)
		}
		if len(tbl.rows) != counts[tbl.name] {
			t.Errorf("%s: expected %d rows, got %d", tbl.name, counts[tbl.name], len(tbl.rows))
		}
		for _, row := range tbl.rows {
			if len(row) != len(dataset.Columns(tbl.name)) {
				t.Fatalf("%s: row has %d values, want %d", tbl.name, len(row), len(dataset.Columns(tbl.name)))
			}
		}
	}

	first := tables[0].rows[0]
	id, ok := first[0].(pgtype.UUID)
	if !ok || !id.Valid || id.Bytes != ds.Customers[0].ID {
		t.Errorf("customer id not converted: %#v", first[0])
	}
}

func TestPgNumeric(t *testing.T) {
	tests := []string{"12345.67", "-9.50", "0.00", "500000.00"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)
			n := pgNumeric(d)
			if !n.Valid {
				t.Fatal("numeric should be valid")
			}
			back := decimal.NewFromBigInt(n.Int, n.Exp)
			if !back.Equal(d) {
				t.Errorf("pgNumeric(%s) = %s", d, back)
			}
		})
	}
}
