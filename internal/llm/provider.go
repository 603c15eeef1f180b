// Package llm abstracts the hosted model providers used to generate
// improvement plans. Everything above this package speaks Provider;
// the vendor SDKs stay behind it.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured completion per call. All plan
// generation in the app is single-turn: one system prompt, one user
// prompt, one JSON document back.
type Provider interface {
	// Generate sends the request and returns the model's output. When
	// req.Schema is set the returned Content is JSON already validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the concrete model the provider was configured with.
	ModelID() string
}

// Request is a single-turn generation request.
type Request struct {
	// System frames the model's role (the advisor persona).
	System string

	// Prompt is the user-side content: the profile, the breakdown, and
	// the draw comparison rendered as text.
	Prompt string

	// Schema, when set, makes the provider request structured output and
	// validate the result. When nil, Content is whatever text came back.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Response is the provider-neutral result of one Generate call.
type Response struct {
	// Content is the generated document. Validated JSON when the request
	// carried a Schema.
	Content json.RawMessage

	// Usage is the token accounting reported by the vendor.
	Usage Usage

	// Model is the model that actually served the request.
	Model string
}

// Usage is token accounting for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
