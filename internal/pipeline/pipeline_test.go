package pipeline

import (
	"context"
	"testing"

	"github.com/fairedu/adapt/internal/state"
)

// stubStage fills its slot via fn, or does nothing when fn is nil.
type stubStage struct {
	calls int
	fn    func(*state.ProcessingState) *state.ProcessingState
}

func (s *stubStage) Run(_ context.Context, st *state.ProcessingState) *state.ProcessingState {
	s.calls++
	if s.fn == nil {
		return st
	}
	return s.fn(st)
}

func workingProfile() *stubStage {
	return &stubStage{fn: func(st *state.ProcessingState) *state.ProcessingState {
		out := st.Clone()
		out.UserProfile.Analysis = &state.Analysis{DifficultyType: state.DifficultyADHD, SeverityLevel: 3}
		out.CurrentFocus = state.FocusProfileAnalyzed
		return out
	}}
}

func workingMicro() *stubStage {
	return &stubStage{fn: func(st *state.ProcessingState) *state.ProcessingState {
		out := st.Clone()
		out.ProcessedContent.MicroUnits = []state.MicroUnit{{Content: "unit", UnitNumber: 1, EstimatedTimeMinutes: 5}}
		out.CurrentFocus = state.FocusMicroContentDone
		return out
	}}
}

func workingSimplify() *stubStage {
	return &stubStage{fn: func(st *state.ProcessingState) *state.ProcessingState {
		out := st.Clone()
		out.ProcessedContent.SimplifiedText = &state.SimplifiedText{Content: "simple"}
		out.CurrentFocus = state.FocusSyntaxSimplified
		return out
	}}
}

func newTestState() *state.ProcessingState {
	return state.New(
		state.UserProfile{QuestionnaireAnswers: map[string]any{}},
		state.LearningMaterials{Title: "t", CurrentContent: "some content"},
	)
}

func TestRunHappyPath(t *testing.T) {
	r := &Runner{Profile: workingProfile(), MicroContent: workingMicro(), Simplify: workingSimplify()}

	final := r.Run(context.Background(), newTestState())

	if final.CurrentFocus != state.FocusAllComplete {
		t.Errorf("focus = %q, want all_complete", final.CurrentFocus)
	}
	if !final.ProcessedContent.GeneralToolsApplied {
		t.Error("expected general_tools_applied")
	}
	if final.IterationCount > state.MaxIterations {
		t.Errorf("iteration_count = %d, exceeds cap", final.IterationCount)
	}
}

func TestRunTerminatesWhenStageNeverFillsSlot(t *testing.T) {
	// A broken micro-content stage that never sets micro_units would
	// loop forever without the cap.
	broken := &stubStage{}
	r := &Runner{Profile: workingProfile(), MicroContent: broken, Simplify: workingSimplify()}

	final := r.Run(context.Background(), newTestState())

	if final.IterationCount != state.MaxIterations {
		t.Errorf("iteration_count = %d, want %d", final.IterationCount, state.MaxIterations)
	}
	if final.CurrentFocus == state.FocusAllComplete {
		t.Error("incomplete run must not report all_complete")
	}
	if broken.calls == 0 {
		t.Error("broken stage was never routed to")
	}
}

func TestRunAlreadyComplete(t *testing.T) {
	s := newTestState()
	s.UserProfile.Analysis = &state.Analysis{DifficultyType: state.DifficultyADHD, SeverityLevel: 3}
	s.CurrentFocus = state.FocusAllComplete

	profile := workingProfile()
	r := &Runner{Profile: profile, MicroContent: workingMicro(), Simplify: workingSimplify()}
	final := r.Run(context.Background(), s)

	if profile.calls != 0 {
		t.Error("no stage should run on an already-complete state")
	}
	if final.IterationCount != 1 {
		t.Errorf("iteration_count = %d, want 1", final.IterationCount)
	}
}

func TestRouteDeterminism(t *testing.T) {
	s := newTestState()
	s.UserProfile.Analysis = &state.Analysis{DifficultyType: state.DifficultyDyslexia, SeverityLevel: 2}
	s.ProcessedContent.MicroUnits = []state.MicroUnit{{Content: "u", UnitNumber: 1, EstimatedTimeMinutes: 5}}

	first := Route(s)
	for i := 0; i < 10; i++ {
		if got := Route(s); got != first {
			t.Fatalf("Route not deterministic: %q then %q", first, got)
		}
	}
	if first != StepSimplify {
		t.Errorf("Route = %q, want %q", first, StepSimplify)
	}
}

func TestRouteOrder(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*state.ProcessingState)
		want Step
	}{
		{"no analysis", func(s *state.ProcessingState) {}, StepProfile},
		{"analysis only", func(s *state.ProcessingState) {
			s.UserProfile.Analysis = &state.Analysis{DifficultyType: state.DifficultyADHD}
		}, StepMicroContent},
		{"units present", func(s *state.ProcessingState) {
			s.UserProfile.Analysis = &state.Analysis{DifficultyType: state.DifficultyADHD}
			s.ProcessedContent.MicroUnits = []state.MicroUnit{{Content: "u", UnitNumber: 1, EstimatedTimeMinutes: 5}}
		}, StepSimplify},
		{"simplified present", func(s *state.ProcessingState) {
			s.UserProfile.Analysis = &state.Analysis{DifficultyType: state.DifficultyADHD}
			s.ProcessedContent.MicroUnits = []state.MicroUnit{{Content: "u", UnitNumber: 1, EstimatedTimeMinutes: 5}}
			s.ProcessedContent.SimplifiedText = &state.SimplifiedText{Content: "c"}
		}, StepFinalize},
		{"all complete", func(s *state.ProcessingState) {
			s.UserProfile.Analysis = &state.Analysis{DifficultyType: state.DifficultyADHD}
			s.CurrentFocus = state.FocusAllComplete
		}, StepEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			tt.mut(s)
			if got := Route(s); got != tt.want {
				t.Errorf("Route = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMonotonicAccumulation(t *testing.T) {
	r := &Runner{Profile: workingProfile(), MicroContent: workingMicro(), Simplify: workingSimplify()}

	final := r.Run(context.Background(), newTestState())

	if len(final.ProcessedContent.MicroUnits) == 0 {
		t.Error("micro_units lost after later stages ran")
	}
	if final.ProcessedContent.SimplifiedText == nil {
		t.Error("simplified_text lost after finalize")
	}
	if final.UserProfile.Analysis == nil {
		t.Error("analysis lost after later stages ran")
	}
}

func TestHistoryInExecutionOrder(t *testing.T) {
	logStage := func(name string, fill func(*state.ProcessingState)) *stubStage {
		return &stubStage{fn: func(st *state.ProcessingState) *state.ProcessingState {
			out := st.Clone()
			fill(out)
			out.AppendHistory(name, "", "done")
			return out
		}}
	}

	r := &Runner{
		Profile: logStage("profile", func(s *state.ProcessingState) {
			s.UserProfile.Analysis = &state.Analysis{DifficultyType: state.DifficultyADHD}
		}),
		MicroContent: logStage("micro", func(s *state.ProcessingState) {
			s.ProcessedContent.MicroUnits = []state.MicroUnit{{Content: "u", UnitNumber: 1, EstimatedTimeMinutes: 5}}
		}),
		Simplify: logStage("simplify", func(s *state.ProcessingState) {
			s.ProcessedContent.SimplifiedText = &state.SimplifiedText{Content: "c"}
		}),
	}

	final := r.Run(context.Background(), newTestState())

	want := []string{"profile", "micro", "simplify", "finalize"}
	if len(final.InteractionHistory) != len(want) {
		t.Fatalf("history length = %d, want %d", len(final.InteractionHistory), len(want))
	}
	for i, step := range want {
		if final.InteractionHistory[i].Step != step {
			t.Errorf("history[%d] = %q, want %q", i, final.InteractionHistory[i].Step, step)
		}
	}
}
