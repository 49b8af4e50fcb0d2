// Package gemini provides an implementation of storegen.Completer using
// Google Gemini, as an alternative to the anthropic package.
package gemini

import (
	"context"

	"github.com/fwojciec/storegen"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Completer implements storegen.Completer at compile time.
var _ storegen.Completer = (*Completer)(nil)

// Completer implements storegen.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
}

// NewCompleter creates a new Completer.
func NewCompleter(client *genai.Client) *Completer {
	return &Completer{client: client}
}

// Complete sends the prompt with the given system instruction and
// returns the response text.
func (c *Completer) Complete(ctx context.Context, system, prompt string) (string, error) {
	if prompt == "" {
		return "", storegen.Errorf(storegen.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(system),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", storegen.Errorf(storegen.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Temperature is kept low; the prompts expect strict JSON output.
func BuildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.4)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}
