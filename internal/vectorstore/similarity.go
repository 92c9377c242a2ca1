// Package vectorstore provides vector similarity primitives shared by
// store implementations.
package vectorstore

import (
	"fmt"
	"math"
	"sort"

	"docchat/internal/domain"
)

// Cosine returns the cosine similarity of a and b in [-1, 1]. Comparing
// vectors of different dimensionality is a usage error. A zero-magnitude
// vector compares as 0 against anything; zero vectors are a legitimate
// embedding output, not an error.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", domain.ErrDimensionMismatch, len(a), len(b))
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}

// TopK scores every chunk vector against the query and returns the
// min(k, n) best matches in descending score order. Equal scores keep
// their input order, so rankings are deterministic.
func TopK(query []float64, chunks []domain.Chunk, vectors [][]float64, k int) ([]domain.SearchResult, error) {
	if len(chunks) != len(vectors) {
		return nil, fmt.Errorf("chunks and vectors length mismatch: %d vs %d", len(chunks), len(vectors))
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	results := make([]domain.SearchResult, len(chunks))
	for i := range chunks {
		score, err := Cosine(query, vectors[i])
		if err != nil {
			return nil, err
		}
		results[i] = domain.SearchResult{Chunk: chunks[i], Score: score}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}
