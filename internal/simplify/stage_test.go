package simplify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fairedu/adapt/internal/highlight"
	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/state"
)

func testState(content string) *state.ProcessingState {
	return state.New(state.UserProfile{}, state.LearningMaterials{
		Title:          "Climate Change",
		CurrentContent: content,
	})
}

func TestStageParsesModelOutput(t *testing.T) {
	mock := llm.NewMockTextProvider("Simplified Text:\nThe climate changes. Humans cause it.\n\nVocabulary:\n- emission: gas released into the air")
	stage := NewStage(mock, DefaultConfig(), nil)

	out := stage.Run(context.Background(), testState("A long nested sentence about climate."))

	st := out.ProcessedContent.SimplifiedText
	if st == nil {
		t.Fatal("simplified text missing")
	}
	if st.Content != "The climate changes. Humans cause it." {
		t.Errorf("content = %q", st.Content)
	}
	if st.Vocabulary["emission"] == "" {
		t.Errorf("vocabulary = %v", st.Vocabulary)
	}
	if st.HasTiers() {
		t.Error("model path must produce the content shape only")
	}
	if out.CurrentFocus != state.FocusSyntaxSimplified {
		t.Errorf("focus = %q", out.CurrentFocus)
	}
	last := out.InteractionHistory[len(out.InteractionHistory)-1]
	if last.Step != "syntax_simplifier" || last.Tool != "llm" {
		t.Errorf("history entry = %+v", last)
	}
}

func TestStageFallsBackToTiers(t *testing.T) {
	tests := []struct {
		name string
		mock *llm.MockProvider
	}{
		{"gateway error", llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})},
		{"empty output", llm.NewMockTextProvider("  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := NewStage(tt.mock, DefaultConfig(), nil)
			out := stage.Run(context.Background(), testState("Material."))

			st := out.ProcessedContent.SimplifiedText
			if st == nil || !st.HasTiers() {
				t.Fatalf("simplified = %+v, want canned tiers", st)
			}
			if st.Content != "" || len(st.Vocabulary) != 0 {
				t.Error("fallback must not populate the content shape")
			}
			last := out.InteractionHistory[len(out.InteractionHistory)-1]
			if !strings.Contains(strings.Join(last.Memory, " "), "canned") {
				t.Errorf("memory = %v, want fallback memo", last.Memory)
			}
		})
	}
}

func TestStageFallbackChinese(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	cfg := DefaultConfig()
	cfg.Language = "zh"
	stage := NewStage(mock, cfg, nil)

	out := stage.Run(context.Background(), testState("材料。"))

	st := out.ProcessedContent.SimplifiedText
	if st == nil || !strings.Contains(st.Basic, "基础级") {
		t.Errorf("simplified = %+v, want Chinese tiers", st)
	}
}

func TestStageHighlightsWhenRequested(t *testing.T) {
	mock := llm.NewMockTextProvider("Simplified Text:\nImportant Concepts matter. This point is important.")
	engine := highlight.NewEngine(highlight.RuleDetector{}, nil, nil)
	stage := NewStage(mock, DefaultConfig(), engine)

	in := testState("Material.")
	in.UserProfile.QuestionnaireAnswers = map[string]any{
		"reading_patterns": map[string]any{
			"comprehension_aids": []any{"highlighting"},
		},
	}
	out := stage.Run(context.Background(), in)

	if _, ok := out.ProcessedContent.Highlighted["simplified_text"]; !ok {
		t.Errorf("highlighted keys = %v, want simplified_text", out.ProcessedContent.Highlighted)
	}
}

func TestStageDoesNotMutateInput(t *testing.T) {
	mock := llm.NewMockTextProvider("Simplified Text:\nShort.")
	stage := NewStage(mock, DefaultConfig(), nil)

	in := testState("Material.")
	_ = stage.Run(context.Background(), in)

	if in.ProcessedContent.SimplifiedText != nil {
		t.Error("input state mutated")
	}
	if len(in.InteractionHistory) != 0 {
		t.Error("input history mutated")
	}
}
