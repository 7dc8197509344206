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

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema SQL for the financial dataset. Foreign keys mirror the
// references between generated records.
const createSchemaSQL = `
-- Customers: account holders
CREATE TABLE IF NOT EXISTS customers (
    customer_id     UUID PRIMARY KEY,
    customer_name   TEXT NOT NULL,
    customer_email  TEXT NOT NULL,
    customer_age    INTEGER NOT NULL CHECK (customer_age BETWEEN 18 AND 75),
    annual_income   NUMERIC(12,2) NOT NULL,
    credit_score    INTEGER NOT NULL CHECK (credit_score BETWEEN 300 AND 850),
    country         CHAR(2) NOT NULL,
    city            TEXT NOT NULL
);

-- Accounts: owned by exactly one customer
CREATE TABLE IF NOT EXISTS accounts (
    account_id      UUID PRIMARY KEY,
    customer_id     UUID NOT NULL REFERENCES customers(customer_id),
    account_type    VARCHAR(32) NOT NULL,
    risk_profile    VARCHAR(32) NOT NULL,
    opening_date    DATE NOT NULL
);

-- Transactions: money movements on an account
CREATE TABLE IF NOT EXISTS transactions (
    transaction_id      UUID PRIMARY KEY,
    account_id          UUID NOT NULL REFERENCES accounts(account_id),
    transaction_type    VARCHAR(32) NOT NULL,
    transaction_amount  NUMERIC(12,2) NOT NULL,
    currency            CHAR(3) NOT NULL,
    transaction_date    DATE NOT NULL
);

-- Investments: positions held in an account
CREATE TABLE IF NOT EXISTS investments (
    investment_id       UUID PRIMARY KEY,
    account_id          UUID NOT NULL REFERENCES accounts(account_id),
    investment_type     VARCHAR(32) NOT NULL,
    investment_amount   NUMERIC(12,2) NOT NULL,
    market_sector       VARCHAR(30) NOT NULL,
    interest_rate       NUMERIC(5,2) NOT NULL,
    return_percentage   NUMERIC(5,2) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_accounts_customer ON accounts(customer_id);
CREATE INDEX IF NOT EXISTS idx_transactions_account ON transactions(account_id);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(transaction_date);
CREATE INDEX IF NOT EXISTS idx_investments_account ON investments(account_id);
`

const dropSchemaSQL = `
DROP TABLE IF EXISTS investments CASCADE;
DROP TABLE IF EXISTS transactions CASCADE;
DROP TABLE IF EXISTS accounts CASCADE;
DROP TABLE IF EXISTS customers CASCADE;
`

// CreateSchema creates the dataset tables.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, createSchemaSQL)
	return err
}

// DropSchema drops the dataset tables.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, dropSchemaSQL)
	return err
}
