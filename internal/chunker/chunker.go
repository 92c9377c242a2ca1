package chunker

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	DefaultChunkSize = 1000
	DefaultOverlap   = 200
)

// Chunker splits normalized text into overlapping fragments bounded by a
// character budget, closing fragments at sentence boundaries where possible.
type Chunker struct {
	chunkSize int
	overlap   int
}

// sentenceEnd marks a sentence boundary: a period followed by whitespace.
// A heuristic, not a linguistic tokenizer; abbreviations ("e.g. ") and
// decimal-free ordinals mis-split. Accepted limitation.
var sentenceEnd = regexp.MustCompile(`\.\s+`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// New validates the fragment budget. overlap >= chunkSize would re-seed every
// fragment with itself, so it is rejected rather than clamped.
func New(chunkSize, overlap int) (*Chunker, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if overlap < 0 || overlap >= chunkSize {
		return nil, fmt.Errorf("overlap must be in [0, %d), got %d", chunkSize, overlap)
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap}, nil
}

// Normalize collapses whitespace runs to single spaces and trims the ends.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// Split divides normalized text into sentence-like units, terminators kept.
func Split(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		// keep the period, drop the trailing whitespace
		sentences = append(sentences, strings.TrimSpace(text[start:loc[0]+1]))
		start = loc[1]
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// Chunk splits text into fragments of at most chunkSize characters, never
// breaking inside a sentence. Adjacent fragments share the trailing overlap
// characters of the previous fragment. A single sentence longer than the
// budget is emitted whole, so fragments may exceed chunkSize in that case.
// Empty or whitespace-only input yields no fragments.
func (c *Chunker) Chunk(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	var fragments []string
	var current strings.Builder
	for _, sentence := range Split(normalized) {
		add := len(sentence)
		if current.Len() > 0 {
			add++ // joining space
		}
		if current.Len() > 0 && current.Len()+add > c.chunkSize {
			closed := current.String()
			fragments = append(fragments, closed)
			current.Reset()
			if len(closed) > c.overlap {
				current.WriteString(closed[len(closed)-c.overlap:])
			}
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sentence)
	}
	if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
		fragments = append(fragments, trimmed)
	}
	for i := range fragments {
		fragments[i] = strings.TrimSpace(fragments[i])
	}
	return fragments
}
