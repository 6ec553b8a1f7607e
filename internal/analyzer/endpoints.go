package analyzer

import "regexp"

// endpointRegex matches the quoted request line of common/combined format
// access logs and captures the request path.
var endpointRegex = regexp.MustCompile(`"(?:GET|POST|PUT|DELETE) (.*?) HTTP`)

// NoEndpoint is reported when no line carries a recognizable request line.
var NoEndpoint = Entry{Key: "N/A", Count: 0}

// MostFrequentEndpoint returns the single most requested path with its count.
// Lines without a request line are not an error and contribute nothing. With
// no matches at all the NoEndpoint sentinel is returned. On a tied maximum
// the endpoint encountered first wins.
func MostFrequentEndpoint(lines []string) (Entry, PassStats) {
	t := newTally()
	stats := PassStats{Lines: len(lines)}
	for _, line := range lines {
		m := endpointRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		t.add(m[1])
		stats.Matched++
	}
	top, ok := t.top()
	if !ok {
		return NoEndpoint, stats
	}
	return top, stats
}
