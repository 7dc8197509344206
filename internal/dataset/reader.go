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
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReadPartition parses a partition directory written by Write back into a
// Dataset. The partition name is taken from the directory name.
func ReadPartition(dir string) (*Dataset, error) {
	ds := &Dataset{Partition: filepath.Base(filepath.Clean(dir))}

	var err error
	if ds.Customers, err = readTable(dir, TableCustomers, parseCustomer); err != nil {
		return nil, err
	}
	if ds.Accounts, err = readTable(dir, TableAccounts, parseAccount); err != nil {
		return nil, err
	}
	if ds.Transactions, err = readTable(dir, TableTransactions, parseTransaction); err != nil {
		return nil, err
	}
	if ds.Investments, err = readTable(dir, TableInvestments, parseInvestment); err != nil {
		return nil, err
	}
	return ds, nil
}

func readTable[T any](dir, table string, parse func([]string) (T, error)) ([]T, error) {
	path := filepath.Join(dir, FileName(table))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("failed to parse %s: missing header", path)
	}
	if want := Columns(table); !slices.Equal(records[0], want) {
		return nil, fmt.Errorf("unexpected header in %s: got %v, want %v", path, records[0], want)
	}

	items := make([]T, 0, len(records)-1)
	for i, rec := range records[1:] {
		item, err := parse(rec)
		if err != nil {
			// Line numbers are 1-based and include the header.
			return nil, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// fieldParser accumulates the first parse error so row parsers stay linear.
type fieldParser struct {
	rec []string
	err error
}

func (p *fieldParser) uuidAt(i int) uuid.UUID {
	if p.err != nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(p.rec[i])
	if err != nil {
		p.err = fmt.Errorf("column %d: %w", i+1, err)
	}
	return id
}

func (p *fieldParser) intAt(i int) int {
	if p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(p.rec[i])
	if err != nil {
		p.err = fmt.Errorf("column %d: %w", i+1, err)
	}
	return v
}

func (p *fieldParser) decimalAt(i int) decimal.Decimal {
	if p.err != nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(p.rec[i])
	if err != nil {
		p.err = fmt.Errorf("column %d: %w", i+1, err)
	}
	return d
}

func (p *fieldParser) dateAt(i int) time.Time {
	if p.err != nil {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, p.rec[i])
	if err != nil {
		p.err = fmt.Errorf("column %d: %w", i+1, err)
	}
	return t
}

func parseCustomer(rec []string) (Customer, error) {
	p := &fieldParser{rec: rec}
	c := Customer{
		ID:           p.uuidAt(0),
		Name:         rec[1],
		Email:        rec[2],
		Age:          p.intAt(3),
		AnnualIncome: p.decimalAt(4),
		CreditScore:  p.intAt(5),
		Country:      rec[6],
		City:         rec[7],
	}
	return c, p.err
}

func parseAccount(rec []string) (Account, error) {
	p := &fieldParser{rec: rec}
	a := Account{
		ID:          p.uuidAt(0),
		CustomerID:  p.uuidAt(1),
		Type:        rec[2],
		RiskProfile: rec[3],
		OpeningDate: p.dateAt(4),
	}
	return a, p.err
}

func parseTransaction(rec []string) (Transaction, error) {
	p := &fieldParser{rec: rec}
	t := Transaction{
		ID:        p.uuidAt(0),
		AccountID: p.uuidAt(1),
		Type:      rec[2],
		Amount:    p.decimalAt(3),
		Currency:  rec[4],
		Date:      p.dateAt(5),
	}
	return t, p.err
}

func parseInvestment(rec []string) (Investment, error) {
	p := &fieldParser{rec: rec}
	inv := Investment{
		ID:               p.uuidAt(0),
		AccountID:        p.uuidAt(1),
		Type:             rec[2],
		Amount:           p.decimalAt(3),
		MarketSector:     rec[4],
		InterestRate:     p.decimalAt(5),
		ReturnPercentage: p.decimalAt(6),
	}
	return inv, p.err
}
