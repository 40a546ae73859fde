// Package explain generates short coaching explanations for missed
// questions using an LLM provider. The engine treats it as optional:
// when no provider is configured, missed questions simply go
// unexplained.
package explain

import (
	"context"
	"encoding/json"
)

// Provider abstracts the LLM backend. Implementations return JSON
// conforming to the request's Schema when one is set.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Explanations are single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, requests structured JSON output conforming to
	// the definition. The response Content is the validated object.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness; zero means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when a Schema was requested, raw text
	// otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
