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
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-findata/internal/dataset"
	"github.com/pgEdge/pgedge-findata/internal/logging"
)

// LoadDataset copies every table of ds into the database inside a single
// transaction. Either all four tables are loaded or none is.
func LoadDataset(ctx context.Context, pool *pgxpool.Pool, ds *dataset.Dataset) (dataset.Counts, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return dataset.Counts{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var counts dataset.Counts
	for _, tbl := range tableRows(ds) {
		n, err := tx.CopyFrom(ctx, pgx.Identifier{tbl.name}, dataset.Columns(tbl.name), pgx.CopyFromRows(tbl.rows))
		if err != nil {
			return dataset.Counts{}, fmt.Errorf("failed to copy %s: %w", tbl.name, err)
		}

		logging.Debug().
			Str("table", tbl.name).
			Int64("rows", n).
			Msg("Copied table")

		switch tbl.name {
		case dataset.TableCustomers:
			counts.Customers = int(n)
		case dataset.TableAccounts:
			counts.Accounts = int(n)
		case dataset.TableTransactions:
			counts.Transactions = int(n)
		case dataset.TableInvestments:
			counts.Investments = int(n)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return dataset.Counts{}, fmt.Errorf("failed to commit load: %w", err)
	}

	logging.Info().
		Str("partition", ds.Partition).
		Int("rows", counts.Total()).
		Msg("Loaded dataset")

	return counts, nil
}

type copyTable struct {
	name string
	rows [][]any
}

// tableRows converts ds into COPY rows, parents before children.
func tableRows(ds *dataset.Dataset) []copyTable {
	customers := make([][]any, len(ds.Customers))
	for i, c := range ds.Customers {
		customers[i] = []any{pgUUID(c.ID), c.Name, c.Email, int32(c.Age),
			pgNumeric(c.AnnualIncome), int32(c.CreditScore), c.Country, c.City}
	}

	accounts := make([][]any, len(ds.Accounts))
	for i, a := range ds.Accounts {
		accounts[i] = []any{pgUUID(a.ID), pgUUID(a.CustomerID), a.Type, a.RiskProfile, a.OpeningDate}
	}

	transactions := make([][]any, len(ds.Transactions))
	for i, t := range ds.Transactions {
		transactions[i] = []any{pgUUID(t.ID), pgUUID(t.AccountID), t.Type,
			pgNumeric(t.Amount), t.Currency, t.Date}
	}

	investments := make([][]any, len(ds.Investments))
	for i, inv := range ds.Investments {
		investments[i] = []any{pgUUID(inv.ID), pgUUID(inv.AccountID), inv.Type,
			pgNumeric(inv.Amount), inv.MarketSector,
			pgNumeric(inv.InterestRate), pgNumeric(inv.ReturnPercentage)}
	}

	return []copyTable{
		{dataset.TableCustomers, customers},
		{dataset.TableAccounts, accounts},
		{dataset.TableTransactions, transactions},
		{dataset.TableInvestments, investments},
	}
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func pgNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}
