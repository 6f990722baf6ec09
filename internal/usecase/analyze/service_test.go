package analyze_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textstats/internal/analyzer"
	"textstats/internal/usecase/analyze"
)

func newService() analyze.Service {
	return analyze.Service{Registry: analyzer.NewRegistry("en-US")}
}

func TestService_Count(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	tests := []struct {
		name     string
		op       string
		text     string
		expected int
	}{
		{name: "count_words", op: analyze.OpCountWords, text: "Hello, world!", expected: 2},
		{name: "count_letters", op: analyze.OpCountLetters, text: "Hello, world!", expected: 10},
		{name: "count_characters", op: analyze.OpCountCharacters, text: "Hello, world!", expected: 13},
		{name: "count_sentences", op: analyze.OpCountSentences, text: "Hello, world!", expected: 1},
		{name: "count_paragraphs", op: analyze.OpCountParagraphs, text: "Hello, world!", expected: 1},
		{name: "empty text", op: analyze.OpCountWords, text: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Count(ctx, tt.op, tt.text, "")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestService_Count_UnknownOperation(t *testing.T) {
	svc := newService()

	_, err := svc.Count(context.Background(), "count_vowels", "some text", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, analyze.ErrUnknownOperation))
}

// TestService_Count_MatchesAnalyzer checks that dispatch through the
// operation table gives the same numbers as calling the analyzer directly.
func TestService_Count_MatchesAnalyzer(t *testing.T) {
	svc := newService()
	a := analyzer.New("en-US")
	ctx := context.Background()

	const text = "Dr. Smith lives on Main St. near the library.\n\nSecond paragraph with 你好."

	direct := map[string]int{
		analyze.OpCountWords:      a.CountWords(text),
		analyze.OpCountLetters:    a.CountLetters(text),
		analyze.OpCountCharacters: a.CountCharacters(text),
		analyze.OpCountSentences:  a.CountSentences(text),
		analyze.OpCountParagraphs: a.CountParagraphs(text),
	}

	for op, want := range direct {
		got, err := svc.Count(ctx, op, text, "en-US")
		require.NoError(t, err, op)
		assert.Equal(t, want, got, op)
	}
}

func TestService_Analyze(t *testing.T) {
	svc := newService()

	res := svc.Analyze(context.Background(), "Hello 🚀 world! 你好", "")
	expected := analyzer.Result{
		WordCount:      3,
		LetterCount:    10,
		CharacterCount: 17,
		SentenceCount:  2,
		ParagraphCount: 1,
	}
	assert.Equal(t, expected, res)
}

func TestService_Locale(t *testing.T) {
	svc := newService()

	assert.Equal(t, "en-US", svc.Locale(""))
	assert.Equal(t, "ko-KR", svc.Locale("ko-KR"))
	assert.Equal(t, "en-US", svc.Locale("not a locale!!"))
}

func TestOperations(t *testing.T) {
	ops := analyze.Operations()
	assert.Equal(t, []string{
		"count_characters",
		"count_letters",
		"count_paragraphs",
		"count_sentences",
		"count_words",
	}, ops)

	for _, op := range ops {
		assert.NotEmpty(t, analyze.Descriptions[op], "missing description for %s", op)
	}
}
