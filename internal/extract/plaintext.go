// Package extract implements the text-extraction boundary. The session
// treats extraction as a black box; this package supplies the plain-text
// implementation and source resolution.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docchat/internal/domain"
)

// Plaintext reads .txt and .md files as-is. Binary formats need their own
// Extractor implementation behind domain.Extractor.
type Plaintext struct{}

func NewPlaintext() *Plaintext { return &Plaintext{} }

var textExtensions = map[string]struct{}{
	".txt": {},
	".md":  {},
}

// Extract reads the file at source and returns its content keyed by the
// file's base name.
func (p *Plaintext) Extract(ctx context.Context, source string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	ext := strings.ToLower(filepath.Ext(source))
	if _, ok := textExtensions[ext]; !ok {
		return domain.Document{}, fmt.Errorf("unsupported file type %q", ext)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read %s: %w", source, err)
	}
	return domain.Document{Source: filepath.Base(source), Content: string(data)}, nil
}

// ResolveSources expands glob patterns into concrete file paths, keeping
// only supported text files. Patterns that match nothing are passed through
// as-is so extraction can report them.
func ResolveSources(patterns []string) []string {
	var sources []string
	for _, p := range patterns {
		matches, err := filepath.Glob(p)
		if err != nil || matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			ext := strings.ToLower(filepath.Ext(m))
			if _, ok := textExtensions[ext]; ok || len(matches) == 1 {
				sources = append(sources, m)
			}
		}
	}
	return sources
}
