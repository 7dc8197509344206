//-------------------------------------------------------------------------
//
// pgEdge Financial Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pgedge-findata.
package cli

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-findata/internal/config"
	"github.com/pgEdge/pgedge-findata/internal/dataset"
	"github.com/pgEdge/pgedge-findata/internal/logging"
	"github.com/pgEdge/pgedge-findata/pkg/version"
)

var (
	// Global flags
	cfgFile  string
	envFile  string
	logLevel string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pgedge-findata",
		Short: "Synthetic financial dataset generator",
		Long: `pgedge-findata generates a synthetic relational financial dataset
(customers, accounts, transactions and investments) as dated CSV
partitions, publishes them to an S3-compatible object store, inspects
published partitions and loads them into PostgreSQL.

The data is random but internally consistent: every account belongs to
a generated customer and every transaction and investment references a
generated account.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./pgedge-findata.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env",
		"dotenv file with environment overrides such as AWS credentials")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(loadCmd)
}

func initConfig() error {
	// Variables already set in the environment win over the file.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

// partitionOrToday validates a YYYY-MM-DD partition name, defaulting to
// the partition generate writes when no date is given.
func partitionOrToday(partition string) (string, error) {
	if partition == "" {
		return dataset.Today().Format(dataset.DateLayout), nil
	}
	if _, err := time.Parse(dataset.DateLayout, partition); err != nil {
		return "", errors.New("partition must be a date in YYYY-MM-DD format")
	}
	return partition, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
