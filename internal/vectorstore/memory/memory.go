// Package memory is an in-memory vector store using brute-force cosine
// similarity. The only store implementation: persistence is out of scope.
package memory

import (
	"errors"
	"fmt"
	"sync"

	"docchat/internal/domain"
	"docchat/internal/vectorstore"
)

// Store holds chunks and their vectors for one vector-space generation.
// Init resets it whenever the vocabulary is rebuilt.
type Store struct {
	mu        sync.RWMutex
	dimension int
	chunks    []domain.Chunk
	vectors   [][]float64
}

func New() *Store { return &Store{} }

// Init fixes the vector dimensionality and drops all stored data.
func (s *Store) Init(dimension int) error {
	if dimension < 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.chunks = nil
	s.vectors = nil
	return nil
}

// Upsert appends chunks with their vectors. Every vector must match the
// dimension fixed by Init.
func (s *Store) Upsert(chunks []domain.Chunk, vectors [][]float64) error {
	if len(chunks) != len(vectors) {
		return errors.New("chunks and vectors length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vectors {
		if len(v) != s.dimension {
			return fmt.Errorf("%w: got %d, store has %d", domain.ErrDimensionMismatch, len(v), s.dimension)
		}
	}
	s.chunks = append(s.chunks, chunks...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}

// Search returns the topK most similar chunks in insertion-stable
// descending score order.
func (s *Store) Search(vector []float64, topK int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(vector) != s.dimension {
		return nil, fmt.Errorf("%w: query has %d, store has %d", domain.ErrDimensionMismatch, len(vector), s.dimension)
	}
	if topK <= 0 {
		topK = 3
	}
	return vectorstore.TopK(vector, s.chunks, s.vectors, topK)
}

// Len reports the number of stored chunks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Clear removes all chunks and vectors but keeps the dimension.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = nil
	s.vectors = nil
	return nil
}
