// Package pipeline routes a processing state through the adaptation
// stages. Routing is a pure function of the state shape; the runner
// owns the loop and the iteration cap.
package pipeline

import (
	"context"

	"github.com/fairedu/adapt/internal/state"
)

// Step identifies the next stage the router selected.
type Step string

const (
	StepProfile      Step = "profile_analyzer"
	StepMicroContent Step = "micro_content_divider"
	StepSimplify     Step = "syntax_simplifier"
	StepFinalize     Step = "finalize"
	StepEnd          Step = "end"
)

// Stage is one pipeline step. Stages absorb all LLM and parse failures
// internally and always return a state that is a structural superset of
// their input; they never return an error to the router.
type Stage interface {
	Run(ctx context.Context, s *state.ProcessingState) *state.ProcessingState
}

// Route selects the next step from the current state shape. It is a
// pure function: identical snapshots always produce the same step.
func Route(s *state.ProcessingState) Step {
	switch {
	case s.UserProfile.Analysis == nil:
		return StepProfile
	case s.CurrentFocus == state.FocusAllComplete:
		return StepEnd
	case len(s.ProcessedContent.MicroUnits) == 0:
		return StepMicroContent
	case s.ProcessedContent.SimplifiedText == nil:
		return StepSimplify
	default:
		return StepFinalize
	}
}

// Runner drives the routing loop. Each stage returns control here, so
// every transition is re-evaluated against current state; a stage that
// fails to set its slot causes deterministic re-routing, and the
// iteration cap bounds the loop regardless.
type Runner struct {
	Profile      Stage
	MicroContent Stage
	Simplify     Stage
}

// Run routes the state until a terminal step or the iteration cap is
// reached, and returns the final state. The caller detects an
// incomplete run by CurrentFocus != all_complete.
func (r *Runner) Run(ctx context.Context, s *state.ProcessingState) *state.ProcessingState {
	for {
		s.IterationCount++
		if s.IterationCount >= state.MaxIterations {
			return s
		}

		switch Route(s) {
		case StepProfile:
			s = r.Profile.Run(ctx, s)
		case StepMicroContent:
			s = r.MicroContent.Run(ctx, s)
		case StepSimplify:
			s = r.Simplify.Run(ctx, s)
		case StepFinalize:
			s = finalize(s)
		case StepEnd:
			return s
		}
	}
}

// finalize marks the run complete once every content slot is filled.
func finalize(s *state.ProcessingState) *state.ProcessingState {
	out := s.Clone()
	out.ProcessedContent.GeneralToolsApplied = true
	out.CurrentFocus = state.FocusAllComplete
	out.AppendHistory("finalize", "general_tools", "marked adaptation complete")
	return out
}
