//-------------------------------------------------------------------------
//
// pgEdge Financial Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package dataset generates the relational financial dataset: customers,
// their accounts, transactions against those accounts, and investments
// held in them. Generation happens in memory in a single pass; Write then
// persists the four tables as one dated partition.
package dataset

import (
	"time"

	"github.com/google/uuid"

	"github.com/pgEdge/pgedge-findata/internal/datagen"
	"github.com/pgEdge/pgedge-findata/internal/logging"
)

// Field ranges. All bounds are inclusive.
const (
	minCustomerAge     = 18
	maxCustomerAge     = 75
	minAnnualIncome    = 20000.0
	maxAnnualIncome    = 500000.0
	minCreditScore     = 300
	maxCreditScore     = 850
	minAccountsPer     = 1
	maxAccountsPer     = 3
	minTxnAmount       = 10.0
	maxTxnAmount       = 10000.0
	minInvestmentsPer  = 0
	maxInvestmentsPer  = 3
	minInvestAmount    = 100.0
	maxInvestAmount    = 50000.0
	minInterestRate    = 0.5
	maxInterestRate    = 15.0
	minReturnPct       = -10.0
	maxReturnPct       = 20.0
	accountHistoryYrs  = 5
	txnHistoryYrs      = 2
	moneyDecimalPlaces = 2
)

// Today returns the current UTC date at midnight. It names the default
// partition for both writers and readers.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Params are the inputs of one generation run.
type Params struct {
	// Customers is the number of customers to generate.
	Customers int

	// Transactions is the number of transactions to generate.
	Transactions int

	// Date is the generation date. It anchors the date windows of
	// accounts and transactions and names the partition. Zero means Today.
	Date time.Time
}

// Validate checks the parameters before any record is generated.
func (p Params) Validate() error {
	if p.Customers < 0 {
		return &InputError{Field: "customers", Value: p.Customers, Reason: "must be non-negative"}
	}
	if p.Transactions < 0 {
		return &InputError{Field: "transactions", Value: p.Transactions, Reason: "must be non-negative"}
	}
	if p.Transactions > 0 && p.Customers == 0 {
		return &InputError{
			Field:  "transactions",
			Value:  p.Transactions,
			Reason: "transactions require at least one customer to own an account",
		}
	}
	return nil
}

// Generator builds datasets from an explicit random source.
type Generator struct {
	faker            *datagen.Faker
	progressInterval int64
}

// NewGenerator creates a generator drawing every value from f.
func NewGenerator(f *datagen.Faker) *Generator {
	return &Generator{
		faker:            f,
		progressInterval: datagen.DefaultProgressInterval,
	}
}

// Generate builds all four tables in memory.
func (g *Generator) Generate(p Params) (*Dataset, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	today := Today()
	if !p.Date.IsZero() {
		today = time.Date(p.Date.Year(), p.Date.Month(), p.Date.Day(), 0, 0, 0, 0, time.UTC)
	}

	logging.Info().
		Int("customers", p.Customers).
		Int("transactions", p.Transactions).
		Str("partition", today.Format(DateLayout)).
		Msg("Generating financial dataset")

	ds := &Dataset{Partition: today.Format(DateLayout)}

	ds.Customers = g.generateCustomers(p.Customers)
	ds.Accounts = g.generateAccounts(ds.Customers, today)

	accountIDs := make([]uuid.UUID, len(ds.Accounts))
	for i, a := range ds.Accounts {
		accountIDs[i] = a.ID
	}

	// Every transaction must reference a generated account.
	if p.Transactions > 0 && len(accountIDs) == 0 {
		return nil, &InputError{
			Field:  "transactions",
			Value:  p.Transactions,
			Reason: "no accounts available to reference",
		}
	}

	ds.Transactions = g.generateTransactions(p.Transactions, accountIDs, today)
	ds.Investments = g.generateInvestments(accountIDs)

	return ds, nil
}

func (g *Generator) generateCustomers(count int) []Customer {
	progress := datagen.NewProgressReporter(TableCustomers, int64(count), g.progressInterval)
	customers := make([]Customer, 0, count)

	for i := 0; i < count; i++ {
		customers = append(customers, Customer{
			ID:           g.faker.UUID(),
			Name:         g.faker.Name(),
			Email:        g.faker.Email(),
			Age:          g.faker.Int(minCustomerAge, maxCustomerAge),
			AnnualIncome: g.faker.Decimal(minAnnualIncome, maxAnnualIncome, moneyDecimalPlaces),
			CreditScore:  g.faker.Int(minCreditScore, maxCreditScore),
			Country:      g.faker.CountryCode(),
			City:         g.faker.City(),
		})
		progress.Update(1)
	}

	progress.Done()
	return customers
}

func (g *Generator) generateAccounts(customers []Customer, today time.Time) []Account {
	progress := datagen.NewProgressReporter(TableAccounts, 0, g.progressInterval)
	accounts := make([]Account, 0, len(customers)*2)
	oldest := today.AddDate(-accountHistoryYrs, 0, 0)

	for _, c := range customers {
		n := g.faker.Int(minAccountsPer, maxAccountsPer)
		for j := 0; j < n; j++ {
			accounts = append(accounts, Account{
				ID:          g.faker.UUID(),
				CustomerID:  c.ID,
				Type:        datagen.Choose(g.faker, AccountTypes),
				RiskProfile: datagen.Choose(g.faker, RiskProfiles),
				OpeningDate: g.faker.DateBetween(oldest, today),
			})
			progress.Update(1)
		}
	}

	progress.Done()
	return accounts
}

func (g *Generator) generateTransactions(count int, accountIDs []uuid.UUID, today time.Time) []Transaction {
	progress := datagen.NewProgressReporter(TableTransactions, int64(count), g.progressInterval)
	transactions := make([]Transaction, 0, count)
	oldest := today.AddDate(-txnHistoryYrs, 0, 0)

	for i := 0; i < count; i++ {
		transactions = append(transactions, Transaction{
			ID:        g.faker.UUID(),
			AccountID: datagen.Choose(g.faker, accountIDs),
			Type:      datagen.Choose(g.faker, TransactionTypes),
			Amount:    g.faker.Decimal(minTxnAmount, maxTxnAmount, moneyDecimalPlaces),
			Currency:  g.faker.CurrencyCode(),
			Date:      g.faker.DateBetween(oldest, today),
		})
		progress.Update(1)
	}

	progress.Done()
	return transactions
}

func (g *Generator) generateInvestments(accountIDs []uuid.UUID) []Investment {
	progress := datagen.NewProgressReporter(TableInvestments, 0, g.progressInterval)
	investments := make([]Investment, 0, len(accountIDs)*3/2)

	for _, accountID := range accountIDs {
		n := g.faker.Int(minInvestmentsPer, maxInvestmentsPer)
		for j := 0; j < n; j++ {
			investments = append(investments, Investment{
				ID:               g.faker.UUID(),
				AccountID:        accountID,
				Type:             datagen.Choose(g.faker, InvestmentTypes),
				Amount:           g.faker.Decimal(minInvestAmount, maxInvestAmount, moneyDecimalPlaces),
				MarketSector:     datagen.Choose(g.faker, MarketSectors),
				InterestRate:     g.faker.Decimal(minInterestRate, maxInterestRate, moneyDecimalPlaces),
				ReturnPercentage: g.faker.Decimal(minReturnPct, maxReturnPct, moneyDecimalPlaces),
			})
			progress.Update(1)
		}
	}

	progress.Done()
	return investments
}
