package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-findata/internal/datagen"
	"github.com/pgEdge/pgedge-findata/internal/storage"
)

var (
	inspectPartition string
	inspectLocal     string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report record counts and sizes of a published partition",
	Long: `Read every table of a partition and report its number of records,
columns, object size and approximate memory use. Tables that cannot be
read are reported as ERROR and count as zero records.

Example:
  pgedge-findata inspect --partition 2024-12-19
  pgedge-findata inspect --partition 2024-12-19 --local ./generated_data`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectPartition, "partition", "",
		"partition date in YYYY-MM-DD format (default: today)")
	inspectCmd.Flags().StringVar(&inspectLocal, "local", "",
		"read partitions from this local directory instead of the object store")
}

func runInspect(cmd *cobra.Command, args []string) error {
	partition, err := partitionOrToday(inspectPartition)
	if err != nil {
		return err
	}

	ctx := context.Background()
	bucket, prefix, err := openBucket(ctx, inspectLocal)
	if err != nil {
		return err
	}

	summary := storage.NewReader(bucket, prefix).Summarize(ctx, partition)
	return printSummary(cmd.OutOrStdout(), summary)
}

func printSummary(out io.Writer, s storage.Summary) error {
	fmt.Fprintf(out, "Partition %s\n\n", s.Partition)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tRECORDS\tCOLUMNS\tSIZE\tMEMORY")
	for _, t := range s.Tables {
		if t.Err != nil {
			fmt.Fprintf(w, "%s\tERROR\t\t\t%v\n", t.Table, t.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", t.Table, t.Rows, t.Columns,
			datagen.FormatSize(t.Bytes), datagen.FormatSize(t.Memory))
	}
	fmt.Fprintf(w, "total\t%d\t\t\t\n", s.TotalRows())
	return w.Flush()
}
