// Package llm abstracts the text completion service used by the
// model-assisted parser.
package llm

import "context"

// Client sends one completion request and returns the raw completion text.
type Client interface {
	Complete(ctx context.Context, input CompletionInput) (string, error)
}

// CompletionInput carries the built extraction instructions and the document
// text for one completion call.
type CompletionInput struct {
	System string
	User   string
}
