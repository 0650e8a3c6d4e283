package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider is the single gateway every pipeline stage talks through.
// Implementations wrap one chat-completion API; failures surface as
// errors the calling stage must absorb with its own fallback.
type Provider interface {
	// Generate sends a prompt and returns the model's output. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and the response Content is validated JSON;
	// otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one LLM invocation.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Stages send a single user message;
	// few-shot examples ride along as alternating user/assistant turns.
	Messages []Message

	// Schema, when set, constrains the response to a JSON shape.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means provider default.
	Temperature float64

	// Language is the target output language ("en" or "zh"). Non-English
	// generation runs slightly warmer to offset terser default output.
	Language string
}

// EffectiveTemperature applies the per-language adjustment. Chinese
// output gets +0.1 on top of the requested temperature, capped at 1.0.
func (r Request) EffectiveTemperature() float64 {
	t := r.Temperature
	if r.Language == "zh" && t > 0 {
		t += 0.1
		if t > 1.0 {
			t = 1.0
		}
	}
	return t
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "profile-analysis".
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is validated JSON when a Schema was requested, raw text
	// otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Text returns the response content as plain text, unwrapping a JSON
// string if the provider quoted it. The free-text parsers consume this.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(r.Content))
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
