package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/state"
)

func TestParseAnalysis(t *testing.T) {
	text := `{
		"difficulty_type": "Dyslexia",
		"severity_level": 4,
		"specific_features": {"reading": {"decoding": "slow"}},
		"strengths": {"verbal_reasoning": "strong"},
		"recommended_strategies": {"primary": ["shorter sentences"], "secondary": ["audio support"]}
	}`

	analysis, strategies, err := ParseAnalysis(text)
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if analysis.DifficultyType != state.DifficultyDyslexia {
		t.Errorf("difficulty = %q, want Dyslexia", analysis.DifficultyType)
	}
	if analysis.SeverityLevel != 4 {
		t.Errorf("severity = %d, want 4", analysis.SeverityLevel)
	}
	if strategies == nil || len(strategies.Primary) != 1 {
		t.Fatalf("strategies = %+v, want 1 primary", strategies)
	}
}

func TestParseAnalysisStripsFences(t *testing.T) {
	text := "```json\n{\"difficulty_type\": \"ADHD\", \"severity_level\": 2}\n```"
	analysis, _, err := ParseAnalysis(text)
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if analysis.DifficultyType != state.DifficultyADHD {
		t.Errorf("difficulty = %q, want ADHD", analysis.DifficultyType)
	}
}

func TestParseAnalysisClampsSeverity(t *testing.T) {
	analysis, _, err := ParseAnalysis(`{"difficulty_type": "Combined", "severity_level": 9}`)
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if analysis.SeverityLevel != 5 {
		t.Errorf("severity = %d, want clamped to 5", analysis.SeverityLevel)
	}
}

func TestParseAnalysisRejectsGarbage(t *testing.T) {
	if _, _, err := ParseAnalysis("I think the student probably has ADHD."); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
	if _, _, err := ParseAnalysis(`{"difficulty_type": "Unknown", "severity_level": 3}`); err == nil {
		t.Fatal("expected error for unknown difficulty type")
	}
}

func TestAnalyzeFallsBackOnGatewayFailure(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Err: errors.New("network down")})
	a := NewAnalyzer(mock, DefaultConfig())

	analysis, strategies, fromModel := a.Analyze(context.Background(), map[string]any{"q1": "yes"})

	if fromModel {
		t.Error("fromModel = true after gateway failure")
	}
	if analysis.DifficultyType != state.DifficultyADHD || analysis.SeverityLevel != 3 {
		t.Errorf("fallback = %s/%d, want ADHD/3", analysis.DifficultyType, analysis.SeverityLevel)
	}
	if strategies == nil || len(strategies.Primary) == 0 {
		t.Error("fallback strategies missing")
	}
}

func TestStageEmptyQuestionnaireSkipsModel(t *testing.T) {
	mock := llm.NewMockProvider()
	stage := NewStage(NewAnalyzer(mock, DefaultConfig()))

	st := state.New(state.UserProfile{}, state.LearningMaterials{CurrentContent: "text"})
	out := stage.Run(context.Background(), st)

	if mock.CallCount() != 0 {
		t.Errorf("model called %d times for empty questionnaire, want 0", mock.CallCount())
	}
	if out.UserProfile.Analysis == nil {
		t.Fatal("analysis not set")
	}
	if out.UserProfile.Analysis.DifficultyType != state.DifficultyADHD {
		t.Errorf("difficulty = %q, want ADHD default", out.UserProfile.Analysis.DifficultyType)
	}
	if out.CurrentFocus != state.FocusProfileAnalyzed {
		t.Errorf("focus = %q, want profile_analyzed", out.CurrentFocus)
	}
	if len(out.InteractionHistory) != 1 {
		t.Errorf("history length = %d, want 1", len(out.InteractionHistory))
	}
}

func TestStageUsesModelResult(t *testing.T) {
	mock := llm.NewMockTextProvider(`{"difficulty_type": "Combined", "severity_level": 5, "recommended_strategies": {"primary": ["break tasks down"]}}`)
	stage := NewStage(NewAnalyzer(mock, DefaultConfig()))

	st := state.New(
		state.UserProfile{QuestionnaireAnswers: map[string]any{"attention_patterns": map[string]any{"average_focus_duration_minutes": 15}}},
		state.LearningMaterials{CurrentContent: "text"},
	)
	out := stage.Run(context.Background(), st)

	if out.UserProfile.Analysis.DifficultyType != state.DifficultyCombined {
		t.Errorf("difficulty = %q, want Combined", out.UserProfile.Analysis.DifficultyType)
	}
	if out.UserProfile.SupportStrategies == nil || out.UserProfile.SupportStrategies.Primary[0] != "break tasks down" {
		t.Errorf("strategies = %+v, want model-recommended", out.UserProfile.SupportStrategies)
	}
	// Input state untouched.
	if st.UserProfile.Analysis != nil {
		t.Error("stage mutated its input state")
	}
}
