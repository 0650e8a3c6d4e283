package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestEffectiveTemperature(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want float64
	}{
		{"english unchanged", Request{Temperature: 0.7, Language: "en"}, 0.7},
		{"chinese bumped", Request{Temperature: 0.7, Language: "zh"}, 0.8},
		{"chinese capped", Request{Temperature: 0.95, Language: "zh"}, 1.0},
		{"zero stays provider default", Request{Temperature: 0, Language: "zh"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.EffectiveTemperature()
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("EffectiveTemperature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResponseText(t *testing.T) {
	quoted := &Response{Content: json.RawMessage(`"Unit 1\nhello"`)}
	if got := quoted.Text(); got != "Unit 1\nhello" {
		t.Errorf("quoted Text() = %q", got)
	}

	raw := &Response{Content: json.RawMessage("plain model output")}
	if got := raw.Text(); got != "plain model output" {
		t.Errorf("raw Text() = %q", got)
	}

	obj := &Response{Content: json.RawMessage(`{"difficulty_type":"ADHD"}`)}
	if got := obj.Text(); got != `{"difficulty_type":"ADHD"}` {
		t.Errorf("object Text() = %q", got)
	}
}

func TestMockProviderFIFOAndCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("content = %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("input tokens = %d", resp1.Usage.InputTokens)
	}

	resp2, _ := mock.Generate(context.Background(), Request{})
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("content = %s", resp2.Content)
	}

	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
	if mock.Calls[0].Messages[0].Content != "first" {
		t.Fatalf("recorded call = %+v", mock.Calls[0])
	}
}

func TestMockProviderEmptyQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestContextLabels(t *testing.T) {
	ctx := context.Background()
	if PurposeFrom(ctx) != "unknown" {
		t.Errorf("default purpose = %q", PurposeFrom(ctx))
	}
	if RunIDFrom(ctx) != "" {
		t.Errorf("default run id = %q", RunIDFrom(ctx))
	}

	ctx = WithPurpose(ctx, "micro-content")
	ctx = WithRunID(ctx, "run-123")
	if PurposeFrom(ctx) != "micro-content" {
		t.Errorf("purpose = %q", PurposeFrom(ctx))
	}
	if RunIDFrom(ctx) != "run-123" {
		t.Errorf("run id = %q", RunIDFrom(ctx))
	}
}
