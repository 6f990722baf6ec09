// Package metrics provides centralized Prometheus metrics for the service.
// All metrics register with the default registry and are exposed through the
// /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis metrics track the text-statistics operations themselves,
// independent of the transport that invoked them.
var (
	// AnalysisOperationsTotal counts analysis operations by name and outcome.
	AnalysisOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textstats_operations_total",
			Help: "Total number of analysis operations",
		},
		[]string{"operation", "status"},
	)

	// AnalysisDuration measures how long a single operation takes.
	// Most calls land well under 10ms; the tail matters up to ~1s for
	// very large documents.
	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textstats_operation_duration_seconds",
			Help:    "Analysis operation duration in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// AnalysisInputBytes measures the size of analyzed texts.
	AnalysisInputBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textstats_input_bytes",
			Help:    "Size of analyzed input text in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		},
		[]string{"operation"},
	)

	// ActiveLocales tracks how many locales currently have a built
	// analyzer. A steadily growing value indicates callers are sending
	// unbounded locale variants.
	ActiveLocales = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "textstats_active_locales",
			Help: "Number of locales with a built analyzer",
		},
	)
)
