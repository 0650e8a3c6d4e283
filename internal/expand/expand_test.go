package expand

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/state"
)

func stateWithUnits(units ...state.MicroUnit) *state.ProcessingState {
	s := state.New(state.UserProfile{}, state.LearningMaterials{
		Title:          "Linked Lists",
		CurrentContent: "A linked list is a sequence of nodes.",
	})
	s.ProcessedContent.MicroUnits = units
	return s
}

func TestRunExpandsEveryUnit(t *testing.T) {
	mock := llm.NewMockTextProvider(
		"# Unit One\nDetailed content for the first unit.",
		"# Unit Two\nDetailed content for the second unit.",
	)
	exp := New(mock, DefaultConfig())

	in := stateWithUnits(
		state.MicroUnit{Content: "nodes", UnitNumber: 1, EstimatedTimeMinutes: 5},
		state.MicroUnit{Content: "operations", UnitNumber: 2, EstimatedTimeMinutes: 7},
	)
	out := exp.Run(context.Background(), in)

	du := out.ProcessedContent.DetailedUnits
	if len(du) != 2 {
		t.Fatalf("detailed units = %d, want 2", len(du))
	}
	if du[0].UnitNumber != 1 || du[1].UnitNumber != 2 {
		t.Errorf("unit numbers = %d, %d", du[0].UnitNumber, du[1].UnitNumber)
	}
	if du[0].Summary != "nodes" {
		t.Errorf("summary = %q, want source unit content", du[0].Summary)
	}
	if !strings.Contains(du[1].DetailedContent, "second unit") {
		t.Errorf("detailed content = %q", du[1].DetailedContent)
	}
	if du[1].EstimatedTimeMinutes != 7 {
		t.Errorf("time = %d, want carried over", du[1].EstimatedTimeMinutes)
	}
	if out.CurrentFocus != state.FocusContentGenerated {
		t.Errorf("focus = %q", out.CurrentFocus)
	}
}

func TestRunUnitFailureKeepsOutline(t *testing.T) {
	// Second unit fails; the batch still completes.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: []byte(`"expanded one"`)},
		llm.MockResponse{Err: errors.New("boom")},
	)
	exp := New(mock, DefaultConfig())

	in := stateWithUnits(
		state.MicroUnit{Content: "first outline", UnitNumber: 1, EstimatedTimeMinutes: 5},
		state.MicroUnit{Content: "second outline", UnitNumber: 2, EstimatedTimeMinutes: 7},
	)
	out := exp.Run(context.Background(), in)

	du := out.ProcessedContent.DetailedUnits
	if len(du) != 2 {
		t.Fatalf("detailed units = %d, want 2", len(du))
	}
	if du[0].DetailedContent != "expanded one" {
		t.Errorf("du[0] = %q", du[0].DetailedContent)
	}
	if du[1].DetailedContent != "second outline" {
		t.Errorf("du[1] = %q, want outline fallback", du[1].DetailedContent)
	}

	last := out.InteractionHistory[len(out.InteractionHistory)-1]
	if last.Step != "content_generator" {
		t.Errorf("history step = %q", last.Step)
	}
	found := false
	for _, m := range last.Memory {
		if strings.Contains(m, "generation failure") {
			found = true
		}
	}
	if !found {
		t.Errorf("memory = %v, want failure memo", last.Memory)
	}
}

func TestRunWithoutUnitsIsNoOp(t *testing.T) {
	mock := llm.NewMockTextProvider("unused")
	exp := New(mock, DefaultConfig())

	in := state.New(state.UserProfile{}, state.LearningMaterials{CurrentContent: "text"})
	out := exp.Run(context.Background(), in)

	if out != in {
		t.Error("expected the input state back unchanged")
	}
	if mock.CallCount() != 0 {
		t.Errorf("calls = %d, want 0", mock.CallCount())
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	mock := llm.NewMockTextProvider("detail")
	exp := New(mock, DefaultConfig())

	in := stateWithUnits(state.MicroUnit{Content: "outline", UnitNumber: 1, EstimatedTimeMinutes: 5})
	_ = exp.Run(context.Background(), in)

	if len(in.ProcessedContent.DetailedUnits) != 0 {
		t.Error("input state mutated")
	}
}

func TestPromptCarriesMaterialAndProfile(t *testing.T) {
	mock := llm.NewMockTextProvider("detail")
	exp := New(mock, DefaultConfig())

	in := stateWithUnits(state.MicroUnit{Content: "outline", UnitNumber: 1, EstimatedTimeMinutes: 5})
	in.UserProfile.Analysis = &state.Analysis{DifficultyType: state.DifficultyADHD, SeverityLevel: 3}
	_ = exp.Run(context.Background(), in)

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "A linked list is a sequence of nodes.") {
		t.Error("original material missing from prompt")
	}
	if !strings.Contains(msg, "outline") {
		t.Error("unit outline missing from prompt")
	}
	if !strings.Contains(msg, "ADHD") {
		t.Error("profile analysis missing from prompt")
	}
}
