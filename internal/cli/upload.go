package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-findata/internal/dataset"
	"github.com/pgEdge/pgedge-findata/internal/storage"
)

var (
	uploadPartition string
	uploadOutput    string
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a generated partition to the object store",
	Long: `Upload the four CSV files of a local partition to
s3://<bucket>/<prefix>/<YYYY-MM-DD>/<table>.csv.

Example:
  pgedge-findata upload --partition 2024-12-19
  pgedge-findata upload --partition 2024-12-19 --output ./generated_data`,
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadPartition, "partition", "",
		"partition date in YYYY-MM-DD format (default: today)")
	uploadCmd.Flags().StringVar(&uploadOutput, "output", "",
		"root directory holding partitions (default: generated_data)")
}

func runUpload(cmd *cobra.Command, args []string) error {
	if uploadOutput != "" {
		cfg.Generate.Output = uploadOutput
	}

	partition, err := partitionOrToday(uploadPartition)
	if err != nil {
		return err
	}

	ctx := context.Background()
	bucket, prefix, err := openBucket(ctx, "")
	if err != nil {
		return err
	}

	dir := dataset.PartitionDir(cfg.Generate.Output, partition)
	keys, err := storage.NewPublisher(bucket, prefix).Publish(ctx, dir, partition)
	if err != nil {
		return fmt.Errorf("failed to publish partition %s: %w", partition, err)
	}

	for _, key := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded s3://%s/%s\n", cfg.Storage.Bucket, key)
	}
	return nil
}
