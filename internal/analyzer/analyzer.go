// Package analyzer implements the three aggregation passes over an access
// log: requests per IP, most frequently accessed endpoint, and clients with
// repeated authentication failures.
package analyzer

import (
	"errors"
	"log"

	"log-audit/internal/collector"
	"log-audit/internal/reader"
)

// Result aggregates the output of one full analysis run. It is built once
// per run and never mutated afterwards.
type Result struct {
	IPRequests  []Entry // ranked descending by count
	TopEndpoint Entry   // NoEndpoint sentinel when nothing matched
	Suspicious  []Entry // clients over the failed-login threshold
}

// Run performs the three aggregation passes. Each pass opens the input file
// independently, and a failure in one never prevents the others: a missing
// or unreadable file is diagnosed and yields that pass's empty default.
func Run(path string, threshold int, coll *collector.Collector) Result {
	res := Result{TopEndpoint: NoEndpoint}

	if lines, ok := loadLines(path, coll); ok {
		entries, stats := CountRequestsPerIP(lines)
		res.IPRequests = entries
		coll.ObserveRequestPass(stats.Lines, stats.Skipped)
	}

	if lines, ok := loadLines(path, coll); ok {
		top, stats := MostFrequentEndpoint(lines)
		res.TopEndpoint = top
		coll.ObserveEndpointPass(stats.Lines, stats.Matched)
	}

	if lines, ok := loadLines(path, coll); ok {
		flagged, stats := DetectSuspicious(lines, threshold)
		res.Suspicious = flagged
		coll.ObserveSuspiciousPass(stats.Lines, stats.Matched, stats.Skipped)
	}

	return res
}

func loadLines(path string, coll *collector.Collector) ([]string, bool) {
	lines, err := reader.Lines(path)
	switch {
	case err == nil:
		return lines, true
	case errors.Is(err, reader.ErrNotFound):
		log.Printf("Error: the file %s does not exist.", path)
	case errors.Is(err, reader.ErrPermission):
		log.Printf("Error: %v", err)
	default:
		log.Printf("Unexpected error while reading %s: %v", path, err)
	}
	coll.ReadFailures.Inc()
	return nil, false
}
