// Package config contains everything related to configuration.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Output format names.
const (
	FormatTable    = "table"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// Defaults mirror the original deployment: history.csv next to the
// binary, one fixed tracked contract.
const (
	DefaultContractAddress = "0x43C3EBaFdF32909aC60E80ee34aE46637E743d65"
	DefaultInputFile       = "history.csv"
	DefaultOutputFormat    = FormatTable
)

// Config holds the report tool configuration.
type Config struct {
	ContractAddress string // contract address whose liquidity is tracked
	InputFile       string // event log file to analyze
	OutputFormat    string // "table", "csv" or "markdown"
}

// Load reads configuration from a .env file (when present) and
// environment variables, falling back to defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ContractAddress: getEnvString("LIQUIDITY_CONTRACT_ADDRESS", DefaultContractAddress),
		InputFile:       getEnvString("LIQUIDITY_INPUT_FILE", DefaultInputFile),
		OutputFormat:    getEnvString("LIQUIDITY_OUTPUT_FORMAT", DefaultOutputFormat),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Override replaces the configuration with resolved CLI flag values and
// re-validates. Flag defaults are seeded from the loaded configuration,
// so flags win over environment values, which win over defaults.
func (c *Config) Override(contractAddress, inputFile, outputFormat string) error {
	c.ContractAddress = contractAddress
	c.InputFile = inputFile
	c.OutputFormat = outputFormat
	return c.Validate()
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.ContractAddress == "" {
		return fmt.Errorf("contract address must not be empty")
	}
	if c.InputFile == "" {
		return fmt.Errorf("input file must not be empty")
	}
	switch c.OutputFormat {
	case FormatTable, FormatCSV, FormatMarkdown:
	default:
		return fmt.Errorf("unknown output format %q", c.OutputFormat)
	}
	return nil
}

// getEnvString returns the environment value for key, or fallback when
// unset or empty.
func getEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
