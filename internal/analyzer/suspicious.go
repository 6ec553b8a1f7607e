package analyzer

import (
	"log"
	"strings"
)

// Failed-authentication markers, matched as raw substrings anywhere in the
// line. "401" can false-positive on unrelated numeric fields such as byte
// sizes; the match is deliberately this loose.
const (
	markerStatus = "401"
	markerPhrase = "Invalid credentials"
)

// DetectSuspicious tallies failed-authentication events per client and
// returns the clients whose event count strictly exceeds threshold, in
// first-seen order. A marker line with no identifier token is skipped with a
// diagnostic.
func DetectSuspicious(lines []string, threshold int) ([]Entry, PassStats) {
	t := newTally()
	stats := PassStats{Lines: len(lines)}
	for _, line := range lines {
		if !strings.Contains(line, markerStatus) && !strings.Contains(line, markerPhrase) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			log.Printf("Skipping malformed line: %s", strings.TrimSpace(line))
			stats.Skipped++
			continue
		}
		t.add(fields[0])
		stats.Matched++
	}

	var flagged []Entry
	for _, key := range t.order {
		if count := t.counts[key]; count > threshold {
			flagged = append(flagged, Entry{Key: key, Count: count})
		}
	}
	return flagged, stats
}
