package llm

import "context"

// CompletionRequest is one generative text completion call.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
}

// CompletionClient issues completion requests against a generative text
// API. Callers treat any returned error uniformly as "enhancement
// unavailable"; the client surfaces errors but never retries.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
