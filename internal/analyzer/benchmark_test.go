package analyzer_test

import (
	"strings"
	"testing"

	"textstats/internal/analyzer"
)

// largeDocument builds a ~10,000-word document with paragraph structure and
// some non-ASCII content, approximating the latency-budget workload.
func largeDocument() string {
	var b strings.Builder
	sentence := "The quick brown fox jumps over the lazy dog near the café. "
	for i := 0; i < 1000; i++ {
		b.WriteString(sentence)
		if i%10 == 9 {
			b.WriteString("\n\n")
		}
	}
	b.WriteString("你好世界 🚀\n")
	return b.String()
}

func BenchmarkAnalyzer(b *testing.B) {
	a := analyzer.New("en-US")
	doc := largeDocument()

	benchmarks := []struct {
		name string
		op   func(string) int
	}{
		{"CountCharacters", a.CountCharacters},
		{"CountWords", a.CountWords},
		{"CountLetters", a.CountLetters},
		{"CountSentences", a.CountSentences},
		{"CountParagraphs", a.CountParagraphs},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				bm.op(doc)
			}
		})
	}

	b.Run("Analyze", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			a.Analyze(doc)
		}
	})
}

func BenchmarkRegistryGet(b *testing.B) {
	r := analyzer.NewRegistry("en-US")
	r.Get("en-US")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Get("en-US")
	}
}
