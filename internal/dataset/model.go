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
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Table names, which also name the files of a partition.
const (
	TableCustomers    = "customers"
	TableAccounts     = "accounts"
	TableTransactions = "transactions"
	TableInvestments  = "investments"
)

// TableNames lists the tables of a partition in dependency order.
var TableNames = []string{
	TableCustomers,
	TableAccounts,
	TableTransactions,
	TableInvestments,
}

// Column headers per table, in file order.
var (
	CustomerColumns = []string{
		"customer_id", "customer_name", "customer_email", "customer_age",
		"annual_income", "credit_score", "country", "city",
	}
	AccountColumns = []string{
		"account_id", "customer_id", "account_type", "risk_profile", "opening_date",
	}
	TransactionColumns = []string{
		"transaction_id", "account_id", "transaction_type", "transaction_amount",
		"currency", "transaction_date",
	}
	InvestmentColumns = []string{
		"investment_id", "account_id", "investment_type", "investment_amount",
		"market_sector", "interest_rate", "return_percentage",
	}
)

// Columns returns the header of the named table, or nil if the name is not
// one of TableNames.
func Columns(table string) []string {
	switch table {
	case TableCustomers:
		return CustomerColumns
	case TableAccounts:
		return AccountColumns
	case TableTransactions:
		return TransactionColumns
	case TableInvestments:
		return InvestmentColumns
	}
	return nil
}

// Enumerated field values.
var (
	AccountTypes = []string{
		"Checking", "Savings", "Investment", "Retirement", "Business", "Joint",
	}
	RiskProfiles = []string{
		"Low Risk", "Medium Risk", "High Risk", "Aggressive", "Conservative", "Balanced",
	}
	TransactionTypes = []string{
		"Deposit", "Withdrawal", "Transfer", "Purchase", "Sale", "Dividend Reinvestment",
	}
	InvestmentTypes = []string{
		"Stocks", "Bonds", "Mutual Funds", "ETFs", "Cryptocurrency", "REIT",
		"Commodities", "Government Bonds",
	}
	MarketSectors = []string{
		"Technology", "Finance", "Healthcare", "Energy", "Retail", "Manufacturing",
	}
)

// DateLayout is the format of date fields and of partition names.
const DateLayout = "2006-01-02"

// Customer is a row of the customers table.
type Customer struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Age          int
	AnnualIncome decimal.Decimal
	CreditScore  int
	Country      string
	City         string
}

// Account is a row of the accounts table.
type Account struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	Type        string
	RiskProfile string
	OpeningDate time.Time
}

// Transaction is a row of the transactions table.
type Transaction struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Type      string
	Amount    decimal.Decimal
	Currency  string
	Date      time.Time
}

// Investment is a row of the investments table.
type Investment struct {
	ID               uuid.UUID
	AccountID        uuid.UUID
	Type             string
	Amount           decimal.Decimal
	MarketSector     string
	InterestRate     decimal.Decimal
	ReturnPercentage decimal.Decimal
}

func (c Customer) record() []string {
	return []string{
		c.ID.String(),
		c.Name,
		c.Email,
		strconv.Itoa(c.Age),
		c.AnnualIncome.StringFixed(2),
		strconv.Itoa(c.CreditScore),
		c.Country,
		c.City,
	}
}

func (a Account) record() []string {
	return []string{
		a.ID.String(),
		a.CustomerID.String(),
		a.Type,
		a.RiskProfile,
		a.OpeningDate.Format(DateLayout),
	}
}

func (t Transaction) record() []string {
	return []string{
		t.ID.String(),
		t.AccountID.String(),
		t.Type,
		t.Amount.StringFixed(2),
		t.Currency,
		t.Date.Format(DateLayout),
	}
}

func (i Investment) record() []string {
	return []string{
		i.ID.String(),
		i.AccountID.String(),
		i.Type,
		i.Amount.StringFixed(2),
		i.MarketSector,
		i.InterestRate.StringFixed(2),
		i.ReturnPercentage.StringFixed(2),
	}
}

// Dataset holds the four tables of one generation run.
type Dataset struct {
	// Partition is the generation date formatted with DateLayout.
	Partition string

	Customers    []Customer
	Accounts     []Account
	Transactions []Transaction
	Investments  []Investment
}

// Table is one table of a dataset flattened to strings.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Tables returns the dataset's tables in TableNames order.
func (d *Dataset) Tables() []Table {
	return []Table{
		{Name: TableCustomers, Header: CustomerColumns, Rows: records(d.Customers, Customer.record)},
		{Name: TableAccounts, Header: AccountColumns, Rows: records(d.Accounts, Account.record)},
		{Name: TableTransactions, Header: TransactionColumns, Rows: records(d.Transactions, Transaction.record)},
		{Name: TableInvestments, Header: InvestmentColumns, Rows: records(d.Investments, Investment.record)},
	}
}

func records[T any](items []T, fn func(T) []string) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, fn(item))
	}
	return rows
}

// Counts reports the number of rows per table.
type Counts struct {
	Customers    int `json:"customers"`
	Accounts     int `json:"accounts"`
	Transactions int `json:"transactions"`
	Investments  int `json:"investments"`
}

// Total returns the number of rows across all tables.
func (c Counts) Total() int {
	return c.Customers + c.Accounts + c.Transactions + c.Investments
}

// ByTable returns the counts keyed by table name.
func (c Counts) ByTable() map[string]int {
	return map[string]int{
		TableCustomers:    c.Customers,
		TableAccounts:     c.Accounts,
		TableTransactions: c.Transactions,
		TableInvestments:  c.Investments,
	}
}

// Counts returns the row counts of the dataset.
func (d *Dataset) Counts() Counts {
	return Counts{
		Customers:    len(d.Customers),
		Accounts:     len(d.Accounts),
		Transactions: len(d.Transactions),
		Investments:  len(d.Investments),
	}
}
