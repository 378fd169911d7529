// Package llm exposes text completion as a narrow capability interface
// so callers can be tested with deterministic stubs.
package llm

import "context"

// CompletionProvider produces a single text completion for a prompt.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
