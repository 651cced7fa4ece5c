// Package analysis computes hourly liquidity changes for a tracked contract.
package analysis

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"strings"

	"token-liquidity-report/internal/eventlog"
	"token-liquidity-report/internal/reporting"
)

// Analyzer aggregates Transfer events into an hourly liquidity report.
type Analyzer struct {
	contract string    // tracked contract address, lowercased
	diag     io.Writer // destination for malformed-line diagnostics
}

// New creates an Analyzer tracking the given contract address.
// Address comparison is case-insensitive.
func New(contractAddress string) *Analyzer {
	return &Analyzer{
		contract: strings.ToLower(contractAddress),
		diag:     os.Stderr,
	}
}

// WithDiagnostics redirects malformed-line diagnostics away from stderr.
func (a *Analyzer) WithDiagnostics(w io.Writer) *Analyzer {
	a.diag = w
	return a
}

// Analyze parses raw log text and aggregates Transfer events touching the
// tracked contract into chronologically ordered hourly rows with a running
// cumulative total.
//
// Per-line failures never abort the run: lines that don't fit the
// five-column shape and non-Transfer events are dropped quietly; Transfer
// lines with undecodable content produce one diagnostic line and are
// skipped. Input line order does not affect the result.
func (a *Analyzer) Analyze(raw string) *reporting.Report {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	netChange := make(map[string]*big.Int) // hour key -> net change

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")

		rec, ok := eventlog.ParseLine(line)
		if !ok {
			continue
		}
		if rec.EventName != eventlog.EventTransfer {
			continue
		}

		ev, err := eventlog.DecodeTransfer(rec)
		if err != nil {
			if errors.Is(err, eventlog.ErrNoValue) {
				continue
			}
			fmt.Fprintf(a.diag, "Skipping malformed line: %s\nError: %v\n", line, err)
			continue
		}

		// Inflow takes precedence on a self-transfer (from == to == contract).
		switch {
		case ev.To == a.contract:
			accumulate(netChange, ev.Hour, ev.Value)
		case ev.From == a.contract:
			accumulate(netChange, ev.Hour, new(big.Int).Neg(ev.Value))
		}
	}

	return buildReport(a.contract, netChange)
}

// accumulate adds delta to the hour's net change, creating the bucket on
// first contribution.
func accumulate(netChange map[string]*big.Int, hour string, delta *big.Int) {
	sum, ok := netChange[hour]
	if !ok {
		sum = new(big.Int)
		netChange[hour] = sum
	}
	sum.Add(sum, delta)
}

// buildReport walks hour keys in chronological order with a running
// cumulative sum. The zero-padded fixed-width key format makes
// lexicographic order chronological.
func buildReport(contract string, netChange map[string]*big.Int) *reporting.Report {
	hours := make([]string, 0, len(netChange))
	for hour := range netChange {
		hours = append(hours, hour)
	}
	sort.Strings(hours)

	report := &reporting.Report{
		ContractAddress: contract,
		Rows:            make([]reporting.HourRow, 0, len(hours)),
		Total:           new(big.Int),
	}

	running := new(big.Int)
	for _, hour := range hours {
		running.Add(running, netChange[hour])
		report.Rows = append(report.Rows, reporting.HourRow{
			Hour:       hour,
			NetChange:  new(big.Int).Set(netChange[hour]),
			Cumulative: new(big.Int).Set(running),
		})
	}
	report.Total.Set(running)

	return report
}
