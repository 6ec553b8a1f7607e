package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"log-audit/internal/analyzer"
	"log-audit/internal/collector"
	"log-audit/internal/config"
	"log-audit/internal/recorder"
	"log-audit/internal/report"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	logFile := flag.String("log-file", cfg.LogFile, "Path to the access log file.")
	outputFile := flag.String("output-file", cfg.OutputFile, "Path for the CSV results file.")
	threshold := flag.Int("threshold", cfg.Threshold, "Failed login attempt threshold.")
	flag.Parse()

	start := time.Now()
	coll := collector.New()

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, coll)
	}

	res := analyzer.Run(*logFile, *threshold, coll)

	report.Console(os.Stdout, res)

	if err := report.WriteCSV(*outputFile, res); err != nil {
		coll.ExportFailures.Inc()
		log.Printf("Error while saving results to %s: %v", *outputFile, err)
	} else {
		log.Printf("Results saved to %s", *outputFile)
	}

	log.Printf("Run summary:")
	coll.LogSummary()

	snap := recorder.Snapshot(start)
	log.Printf("Run finished in %s (cpu=%.2fs, rss=%.1fMB)",
		snap.Elapsed.Round(time.Millisecond), snap.CPUSeconds, snap.MemRSSMB)
}

// serveMetrics exposes the run counters for scraping during long analyses.
func serveMetrics(addr string, coll *collector.Collector) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(coll.Gatherer(), promhttp.HandlerOpts{}))
	log.Printf("Metrics listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("Metrics server error: %v", err)
	}
}
