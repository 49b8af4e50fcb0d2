package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/storegen"
)

// Ensure LoggingCompleter implements storegen.Completer.
var _ storegen.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with debug logging. Prompt and
// response bodies are logged by size only; they can be large and may
// contain scraped page content.
type LoggingCompleter struct {
	next   storegen.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next storegen.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the operation.
func (c *LoggingCompleter) Complete(ctx context.Context, system, prompt string) (response string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("llm completion",
			"prompt_bytes", len(prompt),
			"response_bytes", len(response),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, system, prompt)
}
