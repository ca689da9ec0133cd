package models

import "context"

// InferenceClient sends a prompt to the inference backend.
type InferenceClient interface {
	// Generate posts {"query": prompt} and returns the backend's JSON reply.
	Generate(ctx context.Context, prompt string) (*SummaryResponse, error)
}

// TokenCounter counts prompt tokens so oversized prompts can be refused before
// they are sent.
type TokenCounter interface {
	CountTokens(text string) (int, error)
}
