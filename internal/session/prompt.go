package session

import (
	"fmt"
	"strings"

	"docchat/internal/domain"
)

// BuildPrompt concatenates each retrieved chunk under its source label and
// appends the question. The answerer sees only this string; retrieval
// scores stay internal.
func BuildPrompt(question string, results []domain.SearchResult) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful assistant. Answer the question using only the provided context.\n\n")
	sb.WriteString("Context:\n")
	for _, r := range results {
		fmt.Fprintf(&sb, "[%s #%d]\n%s\n\n", r.Chunk.Source, r.Chunk.Index, r.Chunk.Text)
	}
	sb.WriteString("Question: ")
	sb.WriteString(question)
	sb.WriteString("\n\nAnswer:")
	return sb.String()
}
