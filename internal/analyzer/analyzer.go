// Package analyzer implements locale-configured Unicode text statistics:
// word, letter, character (grapheme cluster), sentence, and paragraph counts.
//
// An Analyzer is built once for a locale and is immutable afterwards; every
// operation is a pure function of the configured locale and the input text,
// so a single instance can be shared across goroutines for the process
// lifetime. Counting correctly handles multi-byte and multi-codepoint
// characters (CJK, combining marks, regional-indicator flags, ZWJ emoji
// sequences) by segmenting on Unicode boundaries instead of bytes or runes.
package analyzer

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is requested or the requested tag
// cannot be parsed.
const DefaultLocale = "en-US"

// Analyzer computes text statistics for a fixed locale.
type Analyzer struct {
	locale string
	tag    language.Tag
	seg    Segmenter
}

// Result aggregates the five counts for a single text. It is a plain value
// produced fresh on every Analyze call; each field equals what the
// corresponding single-count operation returns for the same text.
type Result struct {
	WordCount      int `json:"word_count"`
	LetterCount    int `json:"letter_count"`
	CharacterCount int `json:"character_count"`
	SentenceCount  int `json:"sentence_count"`
	ParagraphCount int `json:"paragraph_count"`
}

// New creates an Analyzer for the given BCP 47 locale tag (e.g. "en-US",
// "ko-KR"). Malformed tags fall back to DefaultLocale; construction never
// fails.
func New(locale string) *Analyzer {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Analyzer{
		locale: tag.String(),
		tag:    tag,
		seg:    unicodeSegmenter{},
	}
}

// Locale returns the canonical form of the analyzer's locale tag.
func (a *Analyzer) Locale() string {
	return a.locale
}

// CountCharacters returns the number of user-perceived characters in text.
// Each grapheme cluster counts as one regardless of how many code points
// compose it: a regional-indicator flag is one character, as is a
// ZWJ-joined family emoji or a base letter with combining marks.
func (a *Analyzer) CountCharacters(text string) int {
	if text == "" {
		return 0
	}
	return a.seg.GraphemeCount(text)
}

// CountWords returns the number of word-like segments in text. Runs of
// whitespace and punctuation never produce words, numeric tokens count as
// words, and contractions stay whole per the Unicode word-boundary rules.
func (a *Analyzer) CountWords(text string) int {
	if text == "" {
		return 0
	}
	return a.seg.WordCount(text)
}

// CountLetters returns the number of unaccented Latin letters (a-z, A-Z) in
// text. The count is deliberately narrow and locale-independent: digits,
// punctuation, accented Latin letters, and all non-Latin scripts are
// excluded, so "café" has 3 letters.
func (a *Analyzer) CountLetters(text string) int {
	n := 0
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			n++
		}
	}
	return n
}

// CountSentences returns the number of sentences in text per the Unicode
// sentence-boundary rules. Trailing whitespace-only segments are not
// counted. Abbreviations such as "Dr." may terminate a sentence when
// followed by an uppercase letter; that is the documented behavior of the
// standard segmentation algorithm, not something corrected with a
// dictionary. An ellipsis is a single boundary.
func (a *Analyzer) CountSentences(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return a.seg.SentenceCount(text)
}

// paragraphBreak matches a line break, optional horizontal whitespace, and
// at least one further line break, in any mix of \n, \r\n, and \r endings.
// Runs of three or more breaks collapse into the same match.
var paragraphBreak = regexp.MustCompile(`(?:\r\n|\r|\n)(?:[ \t]*(?:\r\n|\r|\n))+`)

// CountParagraphs returns the number of paragraphs in text. Paragraphs are
// separated by blank lines (which may contain horizontal whitespace); a
// single line break does not split, extra blank lines do not double-count,
// and whitespace-only segments at the edges are discarded.
func (a *Analyzer) CountParagraphs(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	n := 0
	for _, p := range paragraphBreak.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

// Analyze computes all five counts for text. It is a convenience aggregate:
// each field is produced by the corresponding single-count operation, with
// no shared shortcut that could diverge from them.
func (a *Analyzer) Analyze(text string) Result {
	return Result{
		WordCount:      a.CountWords(text),
		LetterCount:    a.CountLetters(text),
		CharacterCount: a.CountCharacters(text),
		SentenceCount:  a.CountSentences(text),
		ParagraphCount: a.CountParagraphs(text),
	}
}
