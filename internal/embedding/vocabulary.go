// Package embedding implements a deterministic bag-of-words vector space:
// a pruned vocabulary built from the chunk corpus and L2-normalized
// term-frequency vectors over it.
package embedding

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

const (
	DefaultMinDocFreq  = 2
	DefaultMaxDocRatio = 0.7
)

// Options tune vocabulary pruning.
type Options struct {
	// MinDocFreq drops terms appearing in fewer documents (noise).
	MinDocFreq int
	// MaxDocRatio drops terms appearing in more than this share of
	// documents (corpus-specific stopwords).
	MaxDocRatio float64
}

func (o Options) withDefaults() Options {
	if o.MinDocFreq <= 0 {
		o.MinDocFreq = DefaultMinDocFreq
	}
	if o.MaxDocRatio <= 0 {
		o.MaxDocRatio = DefaultMaxDocRatio
	}
	return o
}

// Vocabulary is a stable term→dimension mapping built from one corpus.
// Vectors from different vocabularies are not comparable.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// Tokenize lower-cases the text, strips characters that are neither
// alphanumeric nor spaces, splits on whitespace and drops tokens of
// length <= 2.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	var tokens []string
	for _, tok := range strings.Fields(b.String()) {
		if len(tok) > 2 {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// BuildVocabulary counts document frequency per token across the corpus and
// retains tokens with df >= MinDocFreq whose share of documents does not
// exceed MaxDocRatio. Term order is lexicographic so vectors are
// reproducible across runs.
func BuildVocabulary(corpus []string, opts Options) *Vocabulary {
	opts = opts.withDefaults()

	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	n := float64(len(corpus))
	var terms []string
	for term, freq := range df {
		if freq < opts.MinDocFreq {
			continue
		}
		if float64(freq)/n > opts.MaxDocRatio {
			continue
		}
		terms = append(terms, term)
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}
	return &Vocabulary{terms: terms, index: index}
}

// Size returns the vector dimensionality defined by this vocabulary.
func (v *Vocabulary) Size() int { return len(v.terms) }

// Index returns the dimension of term, or false if the term was pruned.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Terms returns the retained terms in dimension order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Vectorize counts retained-term frequencies in text and L2-normalizes the
// result. A text with no retained terms yields the all-zero vector, the
// designated representation for "nothing to compare".
func (v *Vocabulary) Vectorize(text string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, tok := range Tokenize(text) {
		if i, ok := v.index[tok]; ok {
			vec[i]++
		}
	}
	var sum float64
	for _, x := range vec {
		sum += x * x
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
