package domain

import "context"

// Document is the raw text extracted from a single source, transient
// between extraction and chunking.
type Document struct {
	Source  string
	Content string
}

// Chunk is a fragment of a document used for retrieval indexing.
// Index is 1-based and contiguous within its source document.
type Chunk struct {
	Source string
	Index  int
	Text   string
}

// SearchResult is a matching chunk with its cosine similarity score.
type SearchResult struct {
	Chunk Chunk
	Score float64
}

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatTurn is one entry in the append-only conversation history.
type ChatTurn struct {
	Role    Role
	Content string
}

// IngestReport summarizes a completed ingestion pass.
type IngestReport struct {
	Ingested   int
	Skipped    int
	Chunks     int
	VocabTerms int
	Summary    string
}

// Extractor turns an opaque source (file path, URL, ...) into plain text.
// Extraction is a collaborator boundary: implementations may do blocking
// I/O and fail per source.
type Extractor interface {
	Extract(ctx context.Context, source string) (Document, error)
}

// Answerer produces a response for a fully assembled prompt. Implementations
// wrap a language model; failures are reported as errors, never panics.
type Answerer interface {
	Answer(ctx context.Context, prompt string) (string, error)
}

// VectorStore holds chunk vectors and supports similarity search.
type VectorStore interface {
	Init(dimension int) error
	Upsert(chunks []Chunk, vectors [][]float64) error
	Search(vector []float64, topK int) ([]SearchResult, error)
	Clear() error
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}
