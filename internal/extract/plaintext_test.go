package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPlaintext_ExtractReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "some document text")

	doc, err := NewPlaintext().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", doc.Source)
	assert.Equal(t, "some document text", doc.Content)
}

func TestPlaintext_ExtractMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "readme.md", "# title\nbody")

	doc, err := NewPlaintext().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "readme.md", doc.Source)
}

func TestPlaintext_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scan.pdf", "%PDF-1.4")

	_, err := NewPlaintext().Extract(context.Background(), path)
	assert.Error(t, err)
}

func TestPlaintext_MissingFile(t *testing.T) {
	_, err := NewPlaintext().Extract(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestResolveSources_ExpandsGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "a")
	writeFile(t, dir, "b.txt", "b")
	writeFile(t, dir, "c.bin", "c")

	sources := ResolveSources([]string{filepath.Join(dir, "*.txt")})
	assert.Len(t, sources, 2)

	all := ResolveSources([]string{filepath.Join(dir, "*")})
	assert.Len(t, all, 2, "non-text files filtered from glob results")
}

func TestResolveSources_PassesThroughNonMatches(t *testing.T) {
	sources := ResolveSources([]string{"does-not-exist.txt"})
	assert.Equal(t, []string{"does-not-exist.txt"}, sources)
}
