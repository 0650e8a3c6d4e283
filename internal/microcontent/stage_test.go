package microcontent

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
		Title:          "Linked Lists",
		CurrentContent: content,
	})
}

func TestStageParsesModelUnits(t *testing.T) {
	mock := llm.NewMockTextProvider("Unit 1\nFirst block.\n\nUnit 2\nSecond block.")
	stage := NewStage(mock, DefaultConfig(), nil)

	in := testState("A linked list is a sequence of nodes.")
	out := stage.Run(context.Background(), in)

	if len(out.ProcessedContent.MicroUnits) != 2 {
		t.Fatalf("units = %d, want 2", len(out.ProcessedContent.MicroUnits))
	}
	if out.CurrentFocus != state.FocusMicroContentDone {
		t.Errorf("focus = %q", out.CurrentFocus)
	}
	last := out.InteractionHistory[len(out.InteractionHistory)-1]
	if last.Step != "micro_content_divider" || last.Tool != "llm" {
		t.Errorf("history entry = %+v", last)
	}
}

func TestStageFallsBackOnGatewayError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	stage := NewStage(mock, DefaultConfig(), nil)

	out := stage.Run(context.Background(), testState(strings.Repeat("Nodes connect via pointers. ", 10)))

	if len(out.ProcessedContent.MicroUnits) != 3 {
		t.Fatalf("units = %d, want thirds fallback", len(out.ProcessedContent.MicroUnits))
	}
	last := out.InteractionHistory[len(out.InteractionHistory)-1]
	if !memoContains(last.Memory, "thirds split") {
		t.Errorf("memory = %v, want fallback memo", last.Memory)
	}
}

func TestStageFallsBackOnUnparseableOutput(t *testing.T) {
	// ParseUnits never returns zero units for non-empty text, so the
	// only unparseable model output is a blank one.
	mock := llm.NewMockTextProvider("   ")
	stage := NewStage(mock, DefaultConfig(), nil)

	out := stage.Run(context.Background(), testState(strings.Repeat("Pointers link the nodes. ", 10)))

	if len(out.ProcessedContent.MicroUnits) != 3 {
		t.Fatalf("units = %d, want thirds fallback", len(out.ProcessedContent.MicroUnits))
	}
}

func TestStageSubstitutesPlaceholder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	stage := NewStage(mock, DefaultConfig(), nil)

	out := stage.Run(context.Background(), testState(""))

	if out.LearningMaterials.CurrentContent == "" {
		t.Fatal("placeholder content not substituted")
	}
	if len(out.ProcessedContent.MicroUnits) == 0 {
		t.Fatal("no units from placeholder content")
	}
	last := out.InteractionHistory[len(out.InteractionHistory)-1]
	if !memoContains(last.Memory, "placeholder") {
		t.Errorf("memory = %v, want placeholder memo", last.Memory)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, placeholder must still reach the model", mock.CallCount())
	}
}

func TestStageHighlightsWhenRequested(t *testing.T) {
	mock := llm.NewMockTextProvider("Unit 1\nImportant Concepts matter here.")
	engine := highlight.NewEngine(highlight.RuleDetector{}, nil, nil)
	stage := NewStage(mock, DefaultConfig(), engine)

	in := testState("Some material.")
	in.UserProfile.QuestionnaireAnswers = map[string]any{
		"reading_patterns": map[string]any{
			"comprehension_aids": []any{"highlighting"},
		},
	}
	out := stage.Run(context.Background(), in)

	if len(out.ProcessedContent.Highlighted) == 0 {
		t.Fatal("no highlighted renditions")
	}
	if _, ok := out.ProcessedContent.Highlighted["micro_unit_1"]; !ok {
		t.Errorf("highlighted keys = %v, want micro_unit_1", out.ProcessedContent.Highlighted)
	}
}

func TestStageSkipsHighlightingWithoutPreference(t *testing.T) {
	mock := llm.NewMockTextProvider("Unit 1\nPlain content.")
	engine := highlight.NewEngine(highlight.RuleDetector{}, nil, nil)
	stage := NewStage(mock, DefaultConfig(), engine)

	out := stage.Run(context.Background(), testState("Some material."))

	if len(out.ProcessedContent.Highlighted) != 0 {
		t.Errorf("highlighted = %v, want none", out.ProcessedContent.Highlighted)
	}
}

func TestStageDoesNotMutateInput(t *testing.T) {
	mock := llm.NewMockTextProvider("Unit 1\nBlock.")
	stage := NewStage(mock, DefaultConfig(), nil)

	in := testState("Material.")
	_ = stage.Run(context.Background(), in)

	if len(in.ProcessedContent.MicroUnits) != 0 {
		t.Error("input state mutated")
	}
	if len(in.InteractionHistory) != 0 {
		t.Error("input history mutated")
	}
}

func memoContains(memos []string, substr string) bool {
	for _, m := range memos {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
