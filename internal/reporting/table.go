package reporting

import (
	"fmt"
	"strings"
)

const ruleWidth = 85

// RenderTable renders the report as a fixed-width text table.
func RenderTable(r *Report) string {
	var sb strings.Builder

	sb.WriteString("--- Hourly Liquidity Breakdown (Based on Transfers Only) ---\n")
	sb.WriteString(fmt.Sprintf("%-20s | %-30s | %s\n",
		"Hour", "Net Change in Liquidity", "Cumulative Liquidity"))
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	for _, row := range r.Rows {
		sb.WriteString(fmt.Sprintf("%-20s | %-30s | %s\n",
			row.Hour, row.NetChange.String(), row.Cumulative.String()))
	}

	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	sb.WriteString(fmt.Sprintf("\nFinal Calculated Cumulative Liquidity: %s\n", r.Total.String()))

	return sb.String()
}
