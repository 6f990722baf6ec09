package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAnalysis(t *testing.T) {
	tests := []struct {
		name       string
		operation  string
		duration   time.Duration
		inputBytes int
	}{
		{
			name:       "fast small input",
			operation:  "count_words",
			duration:   200 * time.Microsecond,
			inputBytes: 13,
		},
		{
			name:       "slow large input",
			operation:  "count_sentences",
			duration:   80 * time.Millisecond,
			inputBytes: 1 << 20,
		},
		{
			name:       "empty input",
			operation:  "count_characters",
			duration:   0,
			inputBytes: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordAnalysis(tt.operation, tt.duration, tt.inputBytes)
			})
		})
	}
}

func TestRecordAnalysisError(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordAnalysisError("count_vowels", "unknown_operation")
	})
}

func TestSetActiveLocales(t *testing.T) {
	assert.NotPanics(t, func() {
		SetActiveLocales(3)
		SetActiveLocales(0)
	})
}

// TestMetricsRegistered gathers the default registry and verifies the
// analysis metric families are present after recording.
func TestMetricsRegistered(t *testing.T) {
	RecordAnalysis("count_words", time.Millisecond, 42)
	SetActiveLocales(1)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), "textstats_") {
			byName[mf.GetName()] = mf
		}
	}

	for _, name := range []string{
		"textstats_operations_total",
		"textstats_operation_duration_seconds",
		"textstats_input_bytes",
		"textstats_active_locales",
	} {
		mf, ok := byName[name]
		require.True(t, ok, "metric family %s not registered", name)
		assert.NotEmpty(t, mf.GetMetric(), "metric family %s has no samples", name)
	}
}
