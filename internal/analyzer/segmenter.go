package analyzer

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/graphemes"
	"github.com/clipperhouse/uax29/iterators/filter"
	"github.com/clipperhouse/uax29/sentences"
	"github.com/clipperhouse/uax29/words"
)

// Segmenter partitions text at the three granularities the analyzer needs.
// Implementations must be stateless and safe for concurrent use; the same
// instance is shared by every call on an Analyzer.
type Segmenter interface {
	// GraphemeCount returns the number of user-perceived characters
	// (extended grapheme clusters) in text.
	GraphemeCount(text string) int

	// WordCount returns the number of word-like segments in text.
	// Whitespace and punctuation-only segments are not counted.
	WordCount(text string) int

	// SentenceCount returns the number of sentence segments in text
	// whose trimmed content is non-empty.
	SentenceCount(text string) int
}

// unicodeSegmenter implements Segmenter with the Unicode UAX #29 default
// boundary rules via the uax29 package. The rules are locale-independent;
// the analyzer carries the locale tag for identity and registry keying.
type unicodeSegmenter struct{}

func (unicodeSegmenter) GraphemeCount(text string) int {
	seg := graphemes.NewSegmenter([]byte(text))
	n := 0
	for seg.Next() {
		n++
	}
	return n
}

// WordCount counts word-like segments. UAX #29 default rules break between
// every pair of ideographs, which would make CJK word counts degenerate to
// character counts; contiguous ideographic segments are therefore folded
// into a single word.
func (unicodeSegmenter) WordCount(text string) int {
	seg := words.NewSegmenter([]byte(text))
	n := 0
	prevIdeo := false
	for seg.Next() {
		b := seg.Bytes()
		if !filter.Wordlike(b) || !hasWordRune(b) {
			prevIdeo = false
			continue
		}
		ideo := leadingIdeograph(b)
		if ideo && prevIdeo {
			// Segments partition the text, so two consecutive
			// ideographic segments are adjacent in the input.
			continue
		}
		prevIdeo = ideo
		n++
	}
	return n
}

func (unicodeSegmenter) SentenceCount(text string) int {
	seg := sentences.NewSegmenter([]byte(text))
	n := 0
	for seg.Next() {
		if len(bytes.TrimSpace(seg.Bytes())) > 0 {
			n++
		}
	}
	return n
}

func leadingIdeograph(segment []byte) bool {
	r, _ := utf8.DecodeRune(segment)
	return unicode.Is(unicode.Ideographic, r)
}

// hasWordRune reports whether the segment contains at least one letter,
// number, or ideograph. filter.Wordlike alone admits pictographic segments
// such as emoji, which must not count as words.
func hasWordRune(segment []byte) bool {
	for i := 0; i < len(segment); {
		r, size := utf8.DecodeRune(segment[i:])
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Ideographic, r) {
			return true
		}
		i += size
	}
	return false
}
