package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-findata/internal/dataset"
	"github.com/pgEdge/pgedge-findata/internal/db"
	"github.com/pgEdge/pgedge-findata/internal/logging"
)

var (
	loadPartition    string
	loadOutput       string
	loadConnection   string
	loadDropExisting bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a generated partition into PostgreSQL",
	Long: `Create the financial schema in a PostgreSQL database and copy the
four tables of a local partition into it inside a single transaction.

Example:
  pgedge-findata load --partition 2024-12-19 --connection "postgres://..."
  pgedge-findata load --partition 2024-12-19 --connection "postgres://..." --drop-existing`,
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadPartition, "partition", "",
		"partition date in YYYY-MM-DD format (default: today)")
	loadCmd.Flags().StringVar(&loadOutput, "output", "",
		"root directory holding partitions (default: generated_data)")
	loadCmd.Flags().StringVar(&loadConnection, "connection", "",
		"PostgreSQL connection string")
	loadCmd.Flags().BoolVar(&loadDropExisting, "drop-existing", false,
		"drop existing tables before loading")
}

func runLoad(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if loadOutput != "" {
		cfg.Generate.Output = loadOutput
	}
	if loadConnection != "" {
		cfg.Load.Connection = loadConnection
	}
	if loadDropExisting {
		cfg.Load.DropExisting = true
	}

	// Validate configuration
	if err := cfg.ValidateLoad(); err != nil {
		return err
	}

	partition, err := partitionOrToday(loadPartition)
	if err != nil {
		return err
	}

	ds, err := dataset.ReadPartition(dataset.PartitionDir(cfg.Generate.Output, partition))
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Load.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	// Check for an earlier load
	existing, err := db.GetMetadataValue(ctx, pool, "partition")
	if err == nil && existing != "" && !cfg.Load.DropExisting {
		return fmt.Errorf(
			"database already holds partition '%s'; use --drop-existing to reload",
			existing)
	}

	if cfg.Load.DropExisting {
		logging.Info().Msg("Dropping existing schema")
		if err := db.DropSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
		if err := db.DropMetadata(ctx, pool); err != nil {
			logging.Debug().Err(err).Msg("No metadata table to drop")
		}
	}

	logging.Info().Msg("Creating schema")
	if err := db.CreateSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	counts, err := db.LoadDataset(ctx, pool, ds)
	if err != nil {
		return err
	}

	if err := db.SaveMetadata(ctx, pool, partition, counts); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded partition %s (%d records)\n", partition, counts.Total())
	return nil
}
