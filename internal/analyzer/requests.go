package analyzer

import (
	"log"
	"strings"
)

// CountRequestsPerIP tallies how many lines each client produced. The client
// identifier is the first whitespace-delimited token of the line. Lines with
// no token at all are skipped with a diagnostic naming the line; the pass
// never aborts. Results are ranked by descending count, ties in first-seen
// order.
func CountRequestsPerIP(lines []string) ([]Entry, PassStats) {
	t := newTally()
	stats := PassStats{Lines: len(lines)}
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			log.Printf("Skipping malformed line: %s", strings.TrimSpace(line))
			stats.Skipped++
			continue
		}
		t.add(fields[0])
		stats.Matched++
	}
	return t.ranked(), stats
}
