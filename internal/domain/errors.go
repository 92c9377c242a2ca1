package domain

import "errors"

var (
	// ErrNoKnowledgeBase is returned by a query before any successful
	// ingestion, or when the vocabulary retained zero terms. Distinct from
	// an empty result set.
	ErrNoKnowledgeBase = errors.New("no knowledge base: ingest documents first")

	// ErrDimensionMismatch is returned when vectors from different
	// vocabularies are compared. Never silently coerced.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)
