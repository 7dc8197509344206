//-------------------------------------------------------------------------
//
// pgEdge Financial Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-findata.
// Configuration is loaded from config files and CLI flags. CLI flags take
// precedence over config file values. Object store credentials may also
// come from the standard AWS environment, which the SDK reads directly.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for pgedge-findata.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Seed makes generation reproducible. Zero means a time-based seed.
	Seed uint64 `mapstructure:"seed"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`

	// Storage holds object store settings used by upload, inspect and read.
	Storage StorageConfig `mapstructure:"storage"`

	// Load holds configuration for the load subcommand.
	Load LoadConfig `mapstructure:"load"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// Customers is the number of customers to generate.
	Customers int `mapstructure:"customers"`

	// Transactions is the number of transactions to generate.
	Transactions int `mapstructure:"transactions"`

	// Output is the root directory that receives dated partitions.
	Output string `mapstructure:"output"`
}

// StorageConfig holds S3-compatible object store settings.
type StorageConfig struct {
	// Bucket is the bucket holding the partitions.
	Bucket string `mapstructure:"bucket"`

	// Prefix is the key prefix in front of each partition.
	Prefix string `mapstructure:"prefix"`

	// Region is the AWS region. S3-compatible stores may ignore it.
	Region string `mapstructure:"region"`

	// Endpoint overrides the service endpoint (MinIO, R2, localstack).
	Endpoint string `mapstructure:"endpoint"`

	// AccessKeyID and SecretAccessKey set static credentials. When empty
	// the default AWS credential chain is used.
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`

	// UsePathStyle forces path-style addressing.
	UsePathStyle bool `mapstructure:"use_path_style"`
}

// LoadConfig holds configuration for loading a partition into PostgreSQL.
type LoadConfig struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// DropExisting drops the existing schema before loading.
	DropExisting bool `mapstructure:"drop_existing"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Customers:    100,
			Transactions: 200,
			Output:       "generated_data",
		},
		Storage: StorageConfig{
			Bucket: "financial-data1215",
			Prefix: "financial_data",
			Region: "us-east-1",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-findata.yaml
// 3. ~/.config/pgedge-findata/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pgedge-findata")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-findata"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ValidateGenerate checks configuration required for the generate command.
func (c *Config) ValidateGenerate() error {
	if c.Generate.Customers < 0 {
		return fmt.Errorf("customers must be non-negative")
	}
	if c.Generate.Transactions < 0 {
		return fmt.Errorf("transactions must be non-negative")
	}
	if c.Generate.Output == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}

// ValidateStorage checks configuration required to reach the object store.
func (c *Config) ValidateStorage() error {
	if c.Storage.Bucket == "" {
		return fmt.Errorf("storage bucket is required")
	}
	if (c.Storage.AccessKeyID == "") != (c.Storage.SecretAccessKey == "") {
		return fmt.Errorf("access_key_id and secret_access_key must be set together")
	}
	return nil
}

// ValidateLoad checks configuration required for the load command.
func (c *Config) ValidateLoad() error {
	if c.Load.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	if c.Generate.Output == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}
