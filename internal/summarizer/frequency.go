// Package summarizer ranks sentences by normalized token frequency to
// produce a short extract of the ingested text.
package summarizer

import (
	"math"
	"sort"
	"strings"

	"docchat/internal/chunker"
	"docchat/internal/embedding"
)

// Frequency scores each sentence by the corpus frequency of its tokens,
// dampened by sentence length, and keeps the best sentences in their
// original order.
type Frequency struct{}

func NewFrequency() *Frequency { return &Frequency{} }

// Summarize returns up to maxSentences sentences (default 5) selected by
// frequency score. Uses the same sentence heuristic and tokenizer as the
// retrieval pipeline, so the summary reflects what is actually indexed.
func (f *Frequency) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		maxSentences = 5
	}
	sentences := chunker.Split(chunker.Normalize(text))
	if len(sentences) == 0 {
		return "", nil
	}

	freq := make(map[string]float64)
	for _, sent := range sentences {
		for _, tok := range embedding.Tokenize(sent) {
			freq[tok]++
		}
	}
	var maxFreq float64
	for _, v := range freq {
		if v > maxFreq {
			maxFreq = v
		}
	}
	if maxFreq > 0 {
		for k := range freq {
			freq[k] /= maxFreq
		}
	}

	type ranked struct {
		idx   int
		score float64
	}
	scores := make([]ranked, len(sentences))
	for i, sent := range sentences {
		tokens := embedding.Tokenize(sent)
		var score float64
		for _, tok := range tokens {
			score += freq[tok]
		}
		if n := float64(len(tokens)); n > 0 {
			score /= math.Sqrt(n)
		}
		scores[i] = ranked{i, score}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	if maxSentences > len(scores) {
		maxSentences = len(scores)
	}
	selected := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)

	out := make([]string, len(selected))
	for i, idx := range selected {
		out[i] = sentences[idx]
	}
	return strings.Join(out, " "), nil
}
