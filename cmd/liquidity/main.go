// Command liquidity analyzes a smart-contract event log and prints an
// hourly net liquidity breakdown for one tracked contract address.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"token-liquidity-report/internal/analysis"
	"token-liquidity-report/internal/config"
	"token-liquidity-report/internal/reporting"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override environment configuration.
	inputFile := flag.String("input", cfg.InputFile, "Event log file to analyze")
	contract := flag.String("contract", cfg.ContractAddress, "Contract address to track")
	format := flag.String("format", cfg.OutputFormat, "Output format: table, csv or markdown")
	flag.Parse()

	if err := cfg.Override(*contract, *inputFile, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Reading data from: %s\n", cfg.InputFile)
	data, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read the file at %q: %v\n", cfg.InputFile, err)
		os.Exit(1)
	}

	raw := string(data)
	if strings.TrimSpace(raw) == "" {
		fmt.Fprintf(os.Stderr, "Error: %q is empty. No data to analyze.\n", cfg.InputFile)
		os.Exit(1)
	}

	report := analysis.New(cfg.ContractAddress).Analyze(raw)

	switch cfg.OutputFormat {
	case config.FormatCSV:
		fmt.Print(reporting.RenderCSV(report))
	case config.FormatMarkdown:
		fmt.Print(reporting.RenderMarkdown(report))
	default:
		fmt.Print(reporting.RenderTable(report))
	}
}
