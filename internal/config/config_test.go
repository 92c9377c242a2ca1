package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Chunker.ChunkSize)
	assert.Equal(t, 200, cfg.Chunker.Overlap)
	assert.Equal(t, 2, cfg.Vocabulary.MinDocFreq)
	assert.InDelta(t, 0.7, cfg.Vocabulary.MaxDocRatio, 1e-9)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
	assert.Equal(t, "openai", cfg.LLM.Type)
}

func TestLoad_PartialConfigGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunker:\n  chunk_size: 500\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Chunker.ChunkSize)
	assert.Equal(t, 200, cfg.Chunker.Overlap)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
	assert.Equal(t, "OPENAI_API_KEY", cfg.LLM.APIKeyEnv)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunker: [not a map"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &AppConfig{
		Chunker:    ChunkerConfig{ChunkSize: 800, Overlap: 100},
		Vocabulary: VocabularyConfig{MinDocFreq: 3, MaxDocRatio: 0.5},
		Retrieval:  RetrievalConfig{TopK: 7},
		LLM:        LLMConfig{Type: "none"},
		Summarizer: SummarizerConfig{MaxSentences: 2},
		Logging:    LoggingConfig{Env: "prod", Level: "warn"},
	}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, got.Chunker.ChunkSize)
	assert.Equal(t, 100, got.Chunker.Overlap)
	assert.Equal(t, 3, got.Vocabulary.MinDocFreq)
	assert.InDelta(t, 0.5, got.Vocabulary.MaxDocRatio, 1e-9)
	assert.Equal(t, 7, got.Retrieval.TopK)
	assert.Equal(t, "none", got.LLM.Type)
	assert.Equal(t, "prod", got.Logging.Env)
}
