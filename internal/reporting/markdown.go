package reporting

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders the report as Markdown.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString("# Hourly Liquidity Breakdown\n\n")
	sb.WriteString("Based on Transfer events only.\n\n")
	sb.WriteString(fmt.Sprintf("Contract: `%s`\n\n", r.ContractAddress))

	if len(r.Rows) > 0 {
		sb.WriteString("| Hour | Net Change in Liquidity | Cumulative Liquidity |\n")
		sb.WriteString("|------|-------------------------|----------------------|\n")
		for _, row := range r.Rows {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
				row.Hour, row.NetChange.String(), row.Cumulative.String()))
		}
	} else {
		sb.WriteString("No Transfer activity recorded.\n")
	}

	sb.WriteString(fmt.Sprintf("\nFinal Calculated Cumulative Liquidity: **%s**\n", r.Total.String()))

	return sb.String()
}
