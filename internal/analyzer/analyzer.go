// Package analyzer counts the Savior's directly spoken words in a section
// of text by delegating the judgment to an LLM.
//
// The division of labor is deliberate: Go code constructs the prompt and
// parses the two labeled fields out of the reply, but the actual decision
// of which words are the Savior's is made entirely by the model. Go never
// attempts deterministic text analysis — the count is the model's, and the
// confidence is the model's own estimate of it.
package analyzer

import (
	"context"

	"github.com/timvw/red-letter/internal/model"
)

// Analyzer sends section text to an LLM and returns the parsed count.
type Analyzer interface {
	// Count asks the model to count the Savior's direct words in the
	// given section content and returns the parsed reply.
	Count(ctx context.Context, section int, content string) (*model.Count, error)

	// Provider returns the provider name (e.g., "openai", "anthropic").
	Provider() string

	// Model returns the model name used for analysis.
	Model() string
}
