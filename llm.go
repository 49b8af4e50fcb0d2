package storegen

import "context"

// Completer is the single opaque LLM capability the pipeline depends on:
// submit system instructions plus a user prompt, receive raw text. The
// response is expected, but not guaranteed, to contain JSON; parsing and
// fallback are the caller's responsibility.
type Completer interface {
	// Complete returns the text of the first text-typed content block of
	// the provider response. A non-success provider status is a hard
	// error; no retries are attempted at this layer.
	Complete(ctx context.Context, system, prompt string) (string, error)
}
