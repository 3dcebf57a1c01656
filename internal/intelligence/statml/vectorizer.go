// Package statml implements the locally trained statistical classifiers:
// a TF-IDF bag-of-ngrams vectorizer feeding per-task models (logistic
// regression for document type, multinomial naive Bayes for clause type, a
// bagged decision-tree ensemble for clause risk) plus an optional semantic
// embedder.  Everything is pure Go and serializes to JSON so artifacts are
// portable and diffable.
package statml

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// englishStopwords are dropped during tokenization.
var englishStopwords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"all": true, "am": true, "an": true, "and": true, "any": true, "are": true,
	"as": true, "at": true, "be": true, "because": true, "been": true,
	"before": true, "being": true, "below": true, "between": true, "both": true,
	"but": true, "by": true, "can": true, "did": true, "do": true, "does": true,
	"doing": true, "down": true, "during": true, "each": true, "few": true,
	"for": true, "from": true, "further": true, "had": true, "has": true,
	"have": true, "having": true, "he": true, "her": true, "here": true,
	"hers": true, "him": true, "his": true, "how": true, "i": true, "if": true,
	"in": true, "into": true, "is": true, "it": true, "its": true, "itself": true,
	"just": true, "me": true, "more": true, "most": true, "my": true, "no": true,
	"nor": true, "not": true, "now": true, "of": true, "off": true, "on": true,
	"once": true, "only": true, "or": true, "other": true, "our": true,
	"ours": true, "out": true, "over": true, "own": true, "same": true,
	"she": true, "so": true, "some": true, "such": true, "than": true,
	"that": true, "the": true, "their": true, "theirs": true, "them": true,
	"then": true, "there": true, "these": true, "they": true, "this": true,
	"those": true, "through": true, "to": true, "too": true, "under": true,
	"until": true, "up": true, "very": true, "was": true, "we": true,
	"were": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "who": true, "whom": true, "why": true, "with": true,
	"you": true, "your": true, "yours": true,
}

// Tokenize lowercases, splits on non-alphanumeric runs, and drops stopwords
// and single-character tokens.
func Tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() >= 2 {
			tok := b.String()
			if !englishStopwords[tok] {
				tokens = append(tokens, tok)
			}
		}
		b.Reset()
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// Vectorizer converts text into L2-normalized TF-IDF vectors over a fixed
// vocabulary of word n-grams.  Fields are exported for JSON persistence; a
// fitted vectorizer is read-only.
type Vectorizer struct {
	NGramMin    int                `json:"ngramMin"`
	NGramMax    int                `json:"ngramMax"`
	MaxFeatures int                `json:"maxFeatures"`
	Vocabulary  map[string]int     `json:"vocabulary"`
	IDF         []float64          `json:"idf"`
}

// NewVectorizer constructs an unfitted vectorizer.
func NewVectorizer(ngramMin, ngramMax, maxFeatures int) *Vectorizer {
	return &Vectorizer{NGramMin: ngramMin, NGramMax: ngramMax, MaxFeatures: maxFeatures}
}

// ngrams expands tokens into the configured n-gram range, joined by spaces.
func (v *Vectorizer) ngrams(tokens []string) []string {
	var out []string
	for n := v.NGramMin; n <= v.NGramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// Fit builds the vocabulary and IDF table from the corpus.  Feature
// selection keeps the MaxFeatures most frequent terms; ties break
// alphabetically so fitting is deterministic.
func (v *Vectorizer) Fit(docs []string) {
	termCount := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range docs {
		grams := v.ngrams(Tokenize(doc))
		seen := make(map[string]bool, len(grams))
		for _, g := range grams {
			termCount[g]++
			if !seen[g] {
				seen[g] = true
				docFreq[g]++
			}
		}
	}

	terms := make([]string, 0, len(termCount))
	for t := range termCount {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termCount[terms[i]] != termCount[terms[j]] {
			return termCount[terms[i]] > termCount[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if v.MaxFeatures > 0 && len(terms) > v.MaxFeatures {
		terms = terms[:v.MaxFeatures]
	}
	// Vocabulary indices are assigned alphabetically over the kept terms so
	// the mapping does not depend on frequency-sort stability.
	sort.Strings(terms)

	n := float64(len(docs))
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, t := range terms {
		v.Vocabulary[t] = i
		df := float64(docFreq[t])
		v.IDF[i] = math.Log((1+n)/(1+df)) + 1
	}
}

// Transform maps text into the fitted TF-IDF space.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.IDF))
	for _, g := range v.ngrams(Tokenize(text)) {
		if idx, ok := v.Vocabulary[g]; ok {
			vec[idx]++
		}
	}
	var norm float64
	for i := range vec {
		vec[i] *= v.IDF[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// TransformAll vectorizes a batch.
func (v *Vectorizer) TransformAll(docs []string) [][]float64 {
	out := make([][]float64, len(docs))
	for i, d := range docs {
		out[i] = v.Transform(d)
	}
	return out
}

// Features returns the vocabulary size.
func (v *Vectorizer) Features() int { return len(v.IDF) }
