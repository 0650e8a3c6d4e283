package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func analysisTestSchema() *Schema {
	return &Schema{
		Name: "validate-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"difficulty_type": map[string]any{
					"type": "string",
					"enum": []any{"ADHD", "Dyslexia", "Combined", "None"},
				},
				"severity_level": map[string]any{
					"type":    "integer",
					"minimum": 1,
					"maximum": 5,
				},
			},
			"required": []any{"difficulty_type", "severity_level"},
		},
	}
}

func TestValidateResponseValid(t *testing.T) {
	raw := json.RawMessage(`{"difficulty_type":"ADHD","severity_level":3}`)
	if err := validateResponse(analysisTestSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponseMissingField(t *testing.T) {
	raw := json.RawMessage(`{"difficulty_type":"ADHD"}`)
	err := validateResponse(analysisTestSchema(), raw)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponseBadEnum(t *testing.T) {
	raw := json.RawMessage(`{"difficulty_type":"Severe","severity_level":3}`)
	if err := validateResponse(analysisTestSchema(), raw); err == nil {
		t.Fatal("expected validation error for unknown enum value")
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"difficulty_type":`)
	err := validateResponse(analysisTestSchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must pass: %v", err)
	}
}
