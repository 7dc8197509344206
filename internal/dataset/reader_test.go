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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPartitionRoundTrip(t *testing.T) {
	root := t.TempDir()
	ds := generate(t, 21, Params{Customers: 12, Transactions: 40, Date: testDate})

	dir, err := Write(root, ds)
	require.NoError(t, err)

	got, err := ReadPartition(dir)
	require.NoError(t, err)

	assert.Equal(t, ds.Partition, got.Partition)
	assert.Equal(t, ds.Counts(), got.Counts())
	assert.Equal(t, ds.Tables(), got.Tables())
}

func TestReadPartitionMissingTable(t *testing.T) {
	root := t.TempDir()
	dir, err := Write(root, generate(t, 1, Params{Customers: 2, Date: testDate}))
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(dir, FileName(TableInvestments))))

	_, err = ReadPartition(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadPartitionBadHeader(t *testing.T) {
	root := t.TempDir()
	dir, err := Write(root, generate(t, 1, Params{Customers: 2, Date: testDate}))
	require.NoError(t, err)

	path := filepath.Join(dir, FileName(TableCustomers))
	require.NoError(t, os.WriteFile(path, []byte("id,name\n"), 0o644))

	_, err = ReadPartition(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected header")
}

func TestReadPartitionBadValue(t *testing.T) {
	root := t.TempDir()
	dir, err := Write(root, generate(t, 1, Params{Customers: 1, Date: testDate}))
	require.NoError(t, err)

	path := filepath.Join(dir, FileName(TableAccounts))
	content := "account_id,customer_id,account_type,risk_profile,opening_date\n" +
		"not-a-uuid,also-not,Checking,Balanced,2024-01-01\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err = ReadPartition(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
