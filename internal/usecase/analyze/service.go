package analyze

import (
	"context"
	"fmt"
	"sort"
	"time"

	"textstats/internal/analyzer"
	"textstats/internal/observability/metrics"
)

// Operation names exposed by the dispatcher. Each maps to one bound
// analyzer method; there is no dynamic lookup beyond this table.
const (
	OpCountWords      = "count_words"
	OpCountLetters    = "count_letters"
	OpCountCharacters = "count_characters"
	OpCountSentences  = "count_sentences"
	OpCountParagraphs = "count_paragraphs"

	// opAnalyze labels aggregate calls in metrics; it is not part of the
	// external operation table.
	opAnalyze = "analyze_text"
)

type countFunc func(*analyzer.Analyzer, string) int

var operations = map[string]countFunc{
	OpCountWords:      (*analyzer.Analyzer).CountWords,
	OpCountLetters:    (*analyzer.Analyzer).CountLetters,
	OpCountCharacters: (*analyzer.Analyzer).CountCharacters,
	OpCountSentences:  (*analyzer.Analyzer).CountSentences,
	OpCountParagraphs: (*analyzer.Analyzer).CountParagraphs,
}

// Descriptions maps each operation name to a short human-readable summary,
// used by the tool-listing endpoint.
var Descriptions = map[string]string{
	OpCountWords:      "Count word-like segments using locale-aware word boundaries",
	OpCountLetters:    "Count unaccented Latin letters (a-z, A-Z) only",
	OpCountCharacters: "Count user-perceived characters (grapheme clusters)",
	OpCountSentences:  "Count sentences using Unicode sentence boundaries",
	OpCountParagraphs: "Count paragraphs separated by blank lines",
}

// Operations returns the external operation names in sorted order.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Service dispatches named counting operations to locale-scoped analyzers.
type Service struct {
	Registry *analyzer.Registry
}

// Count runs the named operation against text with the given locale
// (empty means the registry default). Returns ErrUnknownOperation for
// names outside the operation table.
func (s Service) Count(_ context.Context, op, text, locale string) (int, error) {
	fn, ok := operations[op]
	if !ok {
		metrics.RecordAnalysisError(op, "unknown_operation")
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	start := time.Now()
	n := fn(s.Registry.Get(locale), text)
	metrics.RecordAnalysis(op, time.Since(start), len(text))
	metrics.SetActiveLocales(len(s.Registry.Locales()))
	return n, nil
}

// Analyze computes the aggregate result for text. The five fields come from
// the same single-count operations Count dispatches to, so the aggregate
// can never diverge from them.
func (s Service) Analyze(_ context.Context, text, locale string) analyzer.Result {
	start := time.Now()
	res := s.Registry.Get(locale).Analyze(text)
	metrics.RecordAnalysis(opAnalyze, time.Since(start), len(text))
	metrics.SetActiveLocales(len(s.Registry.Locales()))
	return res
}

// Locale resolves a requested locale to the canonical tag the analysis
// actually used.
func (s Service) Locale(locale string) string {
	return s.Registry.Get(locale).Locale()
}
