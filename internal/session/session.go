// Package session orchestrates the retrieval pipeline: ingestion of
// documents into chunks and vectors, and retrieval-augmented answering.
// All state is in-memory and scoped to one session.
package session

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"docchat/internal/chunker"
	"docchat/internal/domain"
	"docchat/internal/embedding"
)

// Session owns the chunk store, the current vocabulary and the chat
// history. A single RWMutex makes Ingest the only writer; queries either
// see the previous vector space or the fully rebuilt one, never a
// half-rebuilt vocabulary.
type Session struct {
	chunker    *chunker.Chunker
	extractor  domain.Extractor
	answerer   domain.Answerer
	store      domain.VectorStore
	summarizer domain.Summarizer
	vocabOpts  embedding.Options
	topK       int
	summaryLen int
	logger     *zap.Logger

	mu      sync.RWMutex
	chunks  []domain.Chunk
	vocab   *embedding.Vocabulary
	history []domain.ChatTurn
}

// Config wires the session's collaborators and retrieval settings.
type Config struct {
	Chunker    *chunker.Chunker
	Extractor  domain.Extractor
	Answerer   domain.Answerer
	Store      domain.VectorStore
	Summarizer domain.Summarizer
	VocabOpts  embedding.Options
	TopK       int
	SummaryLen int
	Logger     *zap.Logger
}

func New(cfg Config) *Session {
	if cfg.TopK <= 0 {
		cfg.TopK = 3
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Session{
		chunker:    cfg.Chunker,
		extractor:  cfg.Extractor,
		answerer:   cfg.Answerer,
		store:      cfg.Store,
		summarizer: cfg.Summarizer,
		vocabOpts:  cfg.VocabOpts,
		topK:       cfg.TopK,
		summaryLen: cfg.SummaryLen,
		logger:     cfg.Logger,
	}
}

// Ingest extracts and chunks each source, appends the chunks to the store,
// then rebuilds the vocabulary over the full corpus and recomputes every
// chunk vector. A source that fails extraction is skipped with a warning;
// the rest of the batch continues. The rebuild is deliberately not
// incremental: document-frequency pruning needs full-corpus statistics.
func (s *Session) Ingest(ctx context.Context, sources []string) (domain.IngestReport, error) {
	var report domain.IngestReport
	var newChunks []domain.Chunk
	var newText strings.Builder

	for _, source := range sources {
		doc, err := s.extractor.Extract(ctx, source)
		if err != nil {
			s.logger.Warn("skipping source: extraction failed",
				zap.String("source", source), zap.Error(err))
			report.Skipped++
			continue
		}
		fragments := s.chunker.Chunk(doc.Content)
		for i, text := range fragments {
			newChunks = append(newChunks, domain.Chunk{
				Source: doc.Source,
				Index:  i + 1,
				Text:   text,
			})
		}
		newText.WriteString(doc.Content)
		newText.WriteString("\n")
		report.Ingested++
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.chunks = append(s.chunks, newChunks...)
	report.Chunks = len(s.chunks)

	corpus := make([]string, len(s.chunks))
	for i, ch := range s.chunks {
		corpus[i] = ch.Text
	}
	s.vocab = embedding.BuildVocabulary(corpus, s.vocabOpts)
	report.VocabTerms = s.vocab.Size()

	if err := s.store.Init(s.vocab.Size()); err != nil {
		return report, err
	}
	vectors := make([][]float64, len(s.chunks))
	for i, ch := range s.chunks {
		vectors[i] = s.vocab.Vectorize(ch.Text)
	}
	if err := s.store.Upsert(s.chunks, vectors); err != nil {
		return report, err
	}

	if s.summarizer != nil && newText.Len() > 0 {
		summary, err := s.summarizer.Summarize(newText.String(), s.summaryLen)
		if err != nil {
			s.logger.Warn("summarization failed", zap.Error(err))
		} else {
			report.Summary = summary
		}
	}

	s.logger.Info("ingestion complete",
		zap.Int("documents", report.Ingested),
		zap.Int("skipped", report.Skipped),
		zap.Int("chunks", report.Chunks),
		zap.Int("vocabulary_terms", report.VocabTerms))
	return report, nil
}

// Query vectorizes text against the current vocabulary and returns the
// topK most similar chunks. ErrNoKnowledgeBase is returned when nothing
// has been ingested or pruning left no terms; callers must not confuse
// that with an empty match set.
func (s *Session) Query(text string, k int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.chunks) == 0 || s.vocab == nil || s.vocab.Size() == 0 {
		return nil, domain.ErrNoKnowledgeBase
	}
	if k <= 0 {
		k = s.topK
	}
	return s.store.Search(s.vocab.Vectorize(text), k)
}

// Ask retrieves context for the question, assembles the prompt and calls
// the answerer. An answerer failure becomes the assistant's reply text so
// the conversation stays consistent and the user can retry; retrieval
// errors (no knowledge base, dimension mismatch) are returned to the
// caller and leave the history untouched.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	results, err := s.Query(question, s.topK)
	if err != nil {
		return "", err
	}

	answer, err := s.answerer.Answer(ctx, BuildPrompt(question, results))
	if err != nil {
		s.logger.Warn("answer generation failed", zap.Error(err))
		answer = "Answer generation failed: " + err.Error()
	}

	s.mu.Lock()
	s.history = append(s.history,
		domain.ChatTurn{Role: domain.RoleUser, Content: question},
		domain.ChatTurn{Role: domain.RoleAssistant, Content: answer},
	)
	s.mu.Unlock()
	return answer, nil
}

// History returns a copy of the chat transcript in turn order.
func (s *Session) History() []domain.ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ChatTurn, len(s.history))
	copy(out, s.history)
	return out
}

// Reset drops all chunks, vectors and the vocabulary, keeping the chat
// history. Used by watch mode before a full re-ingest.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = nil
	s.vocab = nil
	return s.store.Clear()
}
