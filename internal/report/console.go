// Package report renders an analysis result for the console and exports it
// as a three-section CSV file.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"log-audit/internal/analyzer"
)

// Console renders the result as a human-readable report on w. The layout
// mirrors the CSV export section for section but is not a machine-parseable
// surface.
func Console(w io.Writer, res analyzer.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Requests per IP:")
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "IP Address\tRequest Count")
	for _, e := range res.IPRequests {
		fmt.Fprintf(tw, "%s\t%d\n", e.Key, e.Count)
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Most Frequently Accessed Endpoint:")
	fmt.Fprintf(w, "%s (accessed %d times)\n", res.TopEndpoint.Key, res.TopEndpoint.Count)

	fmt.Fprintln(w)
	if len(res.Suspicious) == 0 {
		fmt.Fprintln(w, "No suspicious activity detected.")
		return
	}
	fmt.Fprintln(w, "Suspicious Activity Detected:")
	tw = tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "IP Address\tFailed Login Count")
	for _, e := range res.Suspicious {
		fmt.Fprintf(tw, "%s\t%d\n", e.Key, e.Count)
	}
	tw.Flush()
}
