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
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgEdge/pgedge-findata/internal/datagen"
)

var testDate = time.Date(2024, 12, 19, 0, 0, 0, 0, time.UTC)

func generate(t *testing.T, seed uint64, p Params) *Dataset {
	t.Helper()
	ds, err := NewGenerator(datagen.NewFakerWithSeed(seed)).Generate(p)
	require.NoError(t, err)
	return ds
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		wantField string
	}{
		{"zero counts", Params{}, ""},
		{"customers only", Params{Customers: 3}, ""},
		{"customers and transactions", Params{Customers: 3, Transactions: 10}, ""},
		{"negative customers", Params{Customers: -1}, "customers"},
		{"negative transactions", Params{Customers: 1, Transactions: -1}, "transactions"},
		{"transactions without customers", Params{Transactions: 5}, "transactions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.wantField, inputErr.Field)
		})
	}
}

func TestGenerateEmpty(t *testing.T) {
	ds := generate(t, 1, Params{Date: testDate})

	assert.Empty(t, ds.Customers)
	assert.Empty(t, ds.Accounts)
	assert.Empty(t, ds.Transactions)
	assert.Empty(t, ds.Investments)
	assert.Equal(t, "2024-12-19", ds.Partition)

	tables := ds.Tables()
	require.Len(t, tables, 4)
	for i, table := range tables {
		assert.Equal(t, TableNames[i], table.Name)
		assert.Equal(t, Columns(table.Name), table.Header)
		assert.Empty(t, table.Rows)
	}
}

func TestGenerateTransactionsWithoutCustomers(t *testing.T) {
	_, err := NewGenerator(datagen.NewFakerWithSeed(1)).Generate(Params{Transactions: 5})

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, 5, inputErr.Value)
}

func TestGenerateSmallRun(t *testing.T) {
	ds := generate(t, 42, Params{Customers: 3, Transactions: 10, Date: testDate})

	assert.Len(t, ds.Customers, 3)
	assert.GreaterOrEqual(t, len(ds.Accounts), 3)
	assert.LessOrEqual(t, len(ds.Accounts), 9)
	assert.Len(t, ds.Transactions, 10)
	assert.LessOrEqual(t, len(ds.Investments), 3*len(ds.Accounts))

	accountIDs := make(map[uuid.UUID]bool)
	for _, a := range ds.Accounts {
		accountIDs[a.ID] = true
	}
	for _, txn := range ds.Transactions {
		assert.True(t, accountIDs[txn.AccountID], "transaction %s references unknown account", txn.ID)
	}
}

func TestGenerateReferentialIntegrity(t *testing.T) {
	ds := generate(t, 7, Params{Customers: 200, Transactions: 1000, Date: testDate})

	customerIDs := make(map[uuid.UUID]bool)
	for _, c := range ds.Customers {
		customerIDs[c.ID] = true
	}

	accountsPerCustomer := make(map[uuid.UUID]int)
	accountIDs := make(map[uuid.UUID]bool)
	for _, a := range ds.Accounts {
		require.True(t, customerIDs[a.CustomerID], "account %s has dangling customer", a.ID)
		accountsPerCustomer[a.CustomerID]++
		accountIDs[a.ID] = true
	}
	assert.Len(t, accountsPerCustomer, len(ds.Customers), "every customer owns an account")
	for id, n := range accountsPerCustomer {
		assert.True(t, n >= 1 && n <= 3, "customer %s owns %d accounts", id, n)
	}

	for _, txn := range ds.Transactions {
		require.True(t, accountIDs[txn.AccountID], "transaction %s has dangling account", txn.ID)
	}

	investmentsPerAccount := make(map[uuid.UUID]int)
	for _, inv := range ds.Investments {
		require.True(t, accountIDs[inv.AccountID], "investment %s has dangling account", inv.ID)
		investmentsPerAccount[inv.AccountID]++
	}
	for id, n := range investmentsPerAccount {
		assert.LessOrEqual(t, n, 3, "account %s holds %d investments", id, n)
	}
}

func TestGenerateUniqueIDs(t *testing.T) {
	ds := generate(t, 99, Params{Customers: 300, Transactions: 2000, Date: testDate})

	seen := make(map[uuid.UUID]string)
	check := func(table string, id uuid.UUID) {
		if prev, ok := seen[id]; ok {
			t.Fatalf("id %s in %s already used in %s", id, table, prev)
		}
		seen[id] = table
	}

	for _, c := range ds.Customers {
		check(TableCustomers, c.ID)
	}
	for _, a := range ds.Accounts {
		check(TableAccounts, a.ID)
	}
	for _, txn := range ds.Transactions {
		check(TableTransactions, txn.ID)
	}
	for _, inv := range ds.Investments {
		check(TableInvestments, inv.ID)
	}
}

func between(t *testing.T, field string, d decimal.Decimal, lo, hi float64) {
	t.Helper()
	if d.LessThan(decimal.NewFromFloat(lo)) || d.GreaterThan(decimal.NewFromFloat(hi)) {
		t.Errorf("%s %s outside [%v, %v]", field, d, lo, hi)
	}
	if !d.Equal(d.Round(2)) {
		t.Errorf("%s %s has more than 2 decimal places", field, d)
	}
}

func TestGenerateFieldBounds(t *testing.T) {
	ds := generate(t, 2024, Params{Customers: 150, Transactions: 600, Date: testDate})

	accountFloor := testDate.AddDate(-5, 0, 0)
	txnFloor := testDate.AddDate(-2, 0, 0)

	for _, c := range ds.Customers {
		assert.True(t, c.Age >= 18 && c.Age <= 75, "age %d", c.Age)
		assert.True(t, c.CreditScore >= 300 && c.CreditScore <= 850, "credit score %d", c.CreditScore)
		between(t, "annual_income", c.AnnualIncome, 20000, 500000)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Email)
		assert.NotEmpty(t, c.City)
		assert.Len(t, c.Country, 2)
	}

	for _, a := range ds.Accounts {
		assert.True(t, slices.Contains(AccountTypes, a.Type), "account type %q", a.Type)
		assert.True(t, slices.Contains(RiskProfiles, a.RiskProfile), "risk profile %q", a.RiskProfile)
		assert.False(t, a.OpeningDate.Before(accountFloor), "opening date %v", a.OpeningDate)
		assert.False(t, a.OpeningDate.After(testDate), "opening date %v", a.OpeningDate)
	}

	for _, txn := range ds.Transactions {
		assert.True(t, slices.Contains(TransactionTypes, txn.Type), "transaction type %q", txn.Type)
		between(t, "transaction_amount", txn.Amount, 10, 10000)
		assert.Len(t, txn.Currency, 3)
		assert.False(t, txn.Date.Before(txnFloor), "transaction date %v", txn.Date)
		assert.False(t, txn.Date.After(testDate), "transaction date %v", txn.Date)
	}

	for _, inv := range ds.Investments {
		assert.True(t, slices.Contains(InvestmentTypes, inv.Type), "investment type %q", inv.Type)
		assert.True(t, slices.Contains(MarketSectors, inv.MarketSector), "market sector %q", inv.MarketSector)
		between(t, "investment_amount", inv.Amount, 100, 50000)
		between(t, "interest_rate", inv.InterestRate, 0.5, 15)
		between(t, "return_percentage", inv.ReturnPercentage, -10, 20)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := Params{Customers: 20, Transactions: 50, Date: testDate}
	a := generate(t, 314, p)
	b := generate(t, 314, p)

	assert.Equal(t, a.Tables(), b.Tables())

	c := generate(t, 315, p)
	assert.NotEqual(t, a.Customers[0].ID, c.Customers[0].ID)
}

func TestGenerateDefaultsToToday(t *testing.T) {
	ds := generate(t, 5, Params{Customers: 1})
	assert.Equal(t, time.Now().UTC().Format(DateLayout), ds.Partition)
}

func TestGenerateDefaultDateIgnoresLocalZone(t *testing.T) {
	for _, offset := range []int{14, -12} {
		t.Run(fmt.Sprintf("UTC%+d", offset), func(t *testing.T) {
			saved := time.Local
			time.Local = time.FixedZone("test", offset*3600)
			t.Cleanup(func() { time.Local = saved })

			ds := generate(t, 5, Params{Customers: 1})
			assert.Equal(t, time.Now().UTC().Format(DateLayout), ds.Partition)
			assert.Equal(t, Today().Format(DateLayout), ds.Partition)
			assert.Equal(t, time.UTC, Today().Location())
		})
	}
}

func TestCounts(t *testing.T) {
	ds := generate(t, 11, Params{Customers: 4, Transactions: 9, Date: testDate})
	c := ds.Counts()

	assert.Equal(t, 4, c.Customers)
	assert.Equal(t, len(ds.Accounts), c.Accounts)
	assert.Equal(t, 9, c.Transactions)
	assert.Equal(t, len(ds.Investments), c.Investments)
	assert.Equal(t, 4+len(ds.Accounts)+9+len(ds.Investments), c.Total())
	assert.Equal(t, c.Accounts, c.ByTable()[TableAccounts])
}

func TestTablesRecordShape(t *testing.T) {
	ds := generate(t, 3, Params{Customers: 5, Transactions: 5, Date: testDate})

	for _, table := range ds.Tables() {
		for _, row := range table.Rows {
			require.Len(t, row, len(table.Header), "row width in %s", table.Name)
		}
	}
}

func TestColumnsUnknownTable(t *testing.T) {
	assert.Nil(t, Columns("ledger"))
}

func TestInputErrorMessage(t *testing.T) {
	err := error(&InputError{Field: "customers", Value: -2, Reason: "must be non-negative"})
	assert.Equal(t, "invalid customers (-2): must be non-negative", err.Error())
}
