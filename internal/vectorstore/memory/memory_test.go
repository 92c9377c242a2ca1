package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docchat/internal/domain"
)

func makeChunks(texts ...string) []domain.Chunk {
	out := make([]domain.Chunk, len(texts))
	for i, text := range texts {
		out[i] = domain.Chunk{Source: "doc.txt", Index: i + 1, Text: text}
	}
	return out
}

func TestStore_InitResetsData(t *testing.T) {
	s := New()
	require.NoError(t, s.Init(2))
	require.NoError(t, s.Upsert(makeChunks("a"), [][]float64{{1, 0}}))
	require.Equal(t, 1, s.Len())

	require.NoError(t, s.Init(3))
	assert.Equal(t, 0, s.Len())
}

func TestStore_UpsertRejectsWrongDimension(t *testing.T) {
	s := New()
	require.NoError(t, s.Init(2))
	err := s.Upsert(makeChunks("a"), [][]float64{{1, 0, 0}})
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestStore_UpsertRejectsLengthMismatch(t *testing.T) {
	s := New()
	require.NoError(t, s.Init(1))
	assert.Error(t, s.Upsert(makeChunks("a", "b"), [][]float64{{1}}))
}

func TestStore_SearchRanksByCosine(t *testing.T) {
	s := New()
	require.NoError(t, s.Init(2))
	require.NoError(t, s.Upsert(
		makeChunks("orthogonal", "aligned", "diagonal"),
		[][]float64{{0, 1}, {1, 0}, {0.7071, 0.7071}},
	))

	got, err := s.Search([]float64{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "aligned", got[0].Chunk.Text)
	assert.Equal(t, "diagonal", got[1].Chunk.Text)
}

func TestStore_SearchRejectsQueryFromOtherSpace(t *testing.T) {
	s := New()
	require.NoError(t, s.Init(2))
	_, err := s.Search([]float64{1, 0, 0}, 3)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestStore_SearchDefaultK(t *testing.T) {
	s := New()
	require.NoError(t, s.Init(1))
	require.NoError(t, s.Upsert(
		makeChunks("a", "b", "c", "d", "e"),
		[][]float64{{1}, {0.9}, {0.8}, {0.7}, {0.6}},
	))
	got, err := s.Search([]float64{1}, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestStore_Clear(t *testing.T) {
	s := New()
	require.NoError(t, s.Init(1))
	require.NoError(t, s.Upsert(makeChunks("a"), [][]float64{{1}}))
	require.NoError(t, s.Clear())
	assert.Equal(t, 0, s.Len())

	got, err := s.Search([]float64{1}, 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}
