package llm

import (
	"context"
	"fmt"
)

// Unavailable is the answerer used when no real client could be built
// (e.g. missing credential). Every Answer call fails with the recorded
// reason; the session surfaces that as the assistant's reply, so the
// chat keeps working for retrieval-only use.
type Unavailable struct {
	Reason string
}

func (u Unavailable) Answer(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("answer generation unavailable: %s", u.Reason)
}
