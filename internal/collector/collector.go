package collector

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector carries the run's processing metrics. It owns a private registry
// so repeated runs in the same process never collide on registration.
type Collector struct {
	LinesRead       *prometheus.CounterVec
	MalformedLines  *prometheus.CounterVec
	EndpointMatches prometheus.Counter
	FailedLogins    prometheus.Counter
	ReadFailures    prometheus.Counter
	ExportFailures  prometheus.Counter

	registry *prometheus.Registry
}

func New() *Collector {
	c := &Collector{
		LinesRead: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logaudit_lines_read_total",
				Help: "Total log lines read, per aggregation pass.",
			},
			[]string{"pass"},
		),
		MalformedLines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logaudit_malformed_lines_total",
				Help: "Lines skipped for lacking a leading identifier token.",
			},
			[]string{"pass"},
		),
		EndpointMatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "logaudit_endpoint_matches_total",
			Help: "Lines carrying a recognizable HTTP request line.",
		}),
		FailedLogins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "logaudit_failed_logins_total",
			Help: "Lines classified as failed-authentication events.",
		}),
		ReadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "logaudit_read_failures_total",
			Help: "Aggregation passes that could not read the input file.",
		}),
		ExportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "logaudit_export_failures_total",
			Help: "CSV export attempts that failed.",
		}),
		registry: prometheus.NewRegistry(),
	}
	c.Register(c.registry)
	return c
}

func (c *Collector) Register(reg prometheus.Registerer) {
	reg.MustRegister(
		c.LinesRead,
		c.MalformedLines,
		c.EndpointMatches,
		c.FailedLogins,
		c.ReadFailures,
		c.ExportFailures,
	)
}

// Gatherer exposes the private registry, for serving /metrics.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// ObserveRequestPass records the bookkeeping of the per-IP counting pass.
func (c *Collector) ObserveRequestPass(lines, skipped int) {
	c.LinesRead.WithLabelValues("requests").Add(float64(lines))
	c.MalformedLines.WithLabelValues("requests").Add(float64(skipped))
}

// ObserveEndpointPass records the bookkeeping of the endpoint pass.
func (c *Collector) ObserveEndpointPass(lines, matched int) {
	c.LinesRead.WithLabelValues("endpoints").Add(float64(lines))
	c.EndpointMatches.Add(float64(matched))
}

// ObserveSuspiciousPass records the bookkeeping of the failed-login pass.
func (c *Collector) ObserveSuspiciousPass(lines, matched, skipped int) {
	c.LinesRead.WithLabelValues("suspicious").Add(float64(lines))
	c.FailedLogins.Add(float64(matched))
	c.MalformedLines.WithLabelValues("suspicious").Add(float64(skipped))
}

// LogSummary gathers the registry and logs each counter's final value as a
// processing summary for the operator.
func (c *Collector) LogSummary() {
	families, err := c.registry.Gather()
	if err != nil {
		log.Printf("Failed to gather run metrics: %v", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := ""
			for _, lp := range m.GetLabel() {
				labels += " " + lp.GetName() + "=" + lp.GetValue()
			}
			log.Printf("  %s%s = %.0f", mf.GetName(), labels, m.GetCounter().GetValue())
		}
	}
}
