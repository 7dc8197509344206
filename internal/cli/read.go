package cli

import (
	"context"
	"encoding/csv"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-findata/internal/storage"
)

var (
	readPartition string
	readTable     string
	readLimit     int
	readLocal     string
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Print one table of a published partition as CSV",
	Long: `Fetch one table of a partition and print its header and rows as CSV.

Example:
  pgedge-findata read --partition 2024-12-19 --table customers --limit 10`,
	RunE: runRead,
}

func init() {
	readCmd.Flags().StringVar(&readPartition, "partition", "",
		"partition date in YYYY-MM-DD format (default: today)")
	readCmd.Flags().StringVar(&readTable, "table", "",
		"table to read (customers, accounts, transactions, investments)")
	readCmd.Flags().IntVar(&readLimit, "limit", 0,
		"maximum number of rows to print (0 = all)")
	readCmd.Flags().StringVar(&readLocal, "local", "",
		"read partitions from this local directory instead of the object store")
	_ = readCmd.MarkFlagRequired("table")
}

func runRead(cmd *cobra.Command, args []string) error {
	partition, err := partitionOrToday(readPartition)
	if err != nil {
		return err
	}

	ctx := context.Background()
	bucket, prefix, err := openBucket(ctx, readLocal)
	if err != nil {
		return err
	}

	tbl, err := storage.NewReader(bucket, prefix).ReadTable(ctx, partition, readTable)
	if err != nil {
		return err
	}

	rows := tbl.Rows
	if readLimit > 0 && readLimit < len(rows) {
		rows = rows[:readLimit]
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write(tbl.Header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}
