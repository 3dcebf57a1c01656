// Package segment splits raw document text into clause candidates.  It is a
// cheap precision filter in front of classification: only sentence-sized
// spans that carry enough legal vocabulary are emitted.
package segment

import (
	"strings"

	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

const (
	// MinCandidateLen and MaxCandidateLen bound candidate spans.  Shorter
	// spans are fragment noise; longer ones are runaway paragraphs that
	// classify unreliably.
	MinCandidateLen = 30
	MaxCandidateLen = 500

	// MinSignalTokens is the number of distinct legal-signal tokens a span
	// must contain to be emitted.
	MinSignalTokens = 2
)

// signalVocabulary lists lowercase stems that indicate legal prose.  Matching
// is substring-based so "terminat" covers terminate/termination/terminated.
var signalVocabulary = []string{
	"shall", "agree", "must", "may", "will",
	"liable", "liability", "indemnif", "terminat", "confidential",
	"payment", "fee", "obligation", "right",
	"party", "parties", "contract", "breach", "dispute",
	"waive", "notice", "damages",
}

// NormalizeText collapses whitespace runs to single spaces and straightens
// typographic quotes.  Offsets reported by Segment refer to the normalized
// text, so callers must normalize once and segment the result.
func NormalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inSpace := false
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			if !inSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			inSpace = true
		case '“', '”':
			b.WriteByte('"')
			inSpace = false
		case '‘', '’':
			b.WriteByte('\'')
			inSpace = false
		default:
			b.WriteRune(r)
			inSpace = false
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// SplitSentences splits text at sentence terminators ([.!?] runs followed by
// whitespace) and returns the sentences with their byte offsets.  The input
// is expected to be normalized.
func SplitSentences(text string) ([]string, []int) {
	var sentences []string
	var offsets []int

	start := 0
	i := 0
	for i < len(text) {
		c := text[i]
		if c == '.' || c == '!' || c == '?' {
			// consume the terminator run
			j := i
			for j < len(text) && (text[j] == '.' || text[j] == '!' || text[j] == '?') {
				j++
			}
			if j >= len(text) || text[j] == ' ' {
				s := strings.TrimSpace(text[start:j])
				if s != "" {
					sentences = append(sentences, s)
					offsets = append(offsets, start)
				}
				for j < len(text) && text[j] == ' ' {
					j++
				}
				start = j
				i = j
				continue
			}
			i = j
			continue
		}
		i++
	}
	if start < len(text) {
		s := strings.TrimSpace(text[start:])
		if s != "" {
			sentences = append(sentences, s)
			offsets = append(offsets, start)
		}
	}
	return sentences, offsets
}

// signalCount returns how many distinct vocabulary entries occur in the span.
func signalCount(span string) int {
	lower := strings.ToLower(span)
	n := 0
	for _, kw := range signalVocabulary {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

// Segment produces clause candidates from normalized document text.  Spans
// outside the length bounds or with too little legal vocabulary are dropped.
func Segment(text string) []legal.ClauseCandidate {
	sentences, offsets := SplitSentences(text)

	var out []legal.ClauseCandidate
	for i, s := range sentences {
		if len(s) < MinCandidateLen || len(s) > MaxCandidateLen {
			continue
		}
		if signalCount(s) < MinSignalTokens {
			continue
		}
		out = append(out, legal.ClauseCandidate{Text: s, SourceOffset: offsets[i]})
	}
	return out
}
