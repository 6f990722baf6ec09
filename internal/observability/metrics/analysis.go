package metrics

import "time"

// RecordAnalysis records one completed analysis operation: outcome counter,
// latency, and input size.
func RecordAnalysis(operation string, duration time.Duration, inputBytes int) {
	AnalysisOperationsTotal.WithLabelValues(operation, "success").Inc()
	AnalysisDuration.WithLabelValues(operation).Observe(duration.Seconds())
	AnalysisInputBytes.WithLabelValues(operation).Observe(float64(inputBytes))
}

// RecordAnalysisError records a rejected operation, e.g. an unknown
// operation name. Rejections happen before any counting runs, so no
// duration is observed.
func RecordAnalysisError(operation, reason string) {
	AnalysisOperationsTotal.WithLabelValues(operation, reason).Inc()
}

// SetActiveLocales updates the gauge of locales with a built analyzer.
func SetActiveLocales(n int) {
	ActiveLocales.Set(float64(n))
}
