package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders report rows as a CSV string.
func RenderCSV(r *Report) string {
	var sb strings.Builder

	sb.WriteString("hour,net_change,cumulative\n")
	for _, row := range r.Rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%s\n",
			row.Hour, row.NetChange.String(), row.Cumulative.String()))
	}

	return sb.String()
}
