// Package profile classifies a learner's difficulty type from
// questionnaire answers and derives support strategies.
package profile

import (
	"context"
	"encoding/json"

	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/state"
)

// Config holds analyzer settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Language    string
}

// DefaultConfig returns sensible defaults for profile analysis.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2000,
		Temperature: 0.3,
		Language:    "en",
	}
}

// Analyzer runs the questionnaire assessment.
type Analyzer struct {
	provider llm.Provider
	cfg      Config
}

// NewAnalyzer creates a profile analyzer.
func NewAnalyzer(provider llm.Provider, cfg Config) *Analyzer {
	return &Analyzer{provider: provider, cfg: cfg}
}

// Analyze classifies the questionnaire answers. It never returns an
// error: any gateway or parse failure yields the conservative default
// classification, and the second return reports whether the model's
// answer was actually used.
func (a *Analyzer) Analyze(ctx context.Context, answers map[string]any) (*state.Analysis, *state.SupportStrategies, bool) {
	ctx = llm.WithPurpose(ctx, "profile-analysis")

	questionnaireJSON, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		analysis := DefaultAnalysis()
		return analysis, DefaultStrategies(analysis.DifficultyType, a.cfg.Language), false
	}

	req := llm.Request{
		System: BuildSystemPrompt(a.cfg.Language),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(string(questionnaireJSON), a.cfg.Language)},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
		Language:    a.cfg.Language,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		analysis := DefaultAnalysis()
		return analysis, DefaultStrategies(analysis.DifficultyType, a.cfg.Language), false
	}

	analysis, strategies, err := ParseAnalysis(resp.Text())
	if err != nil {
		analysis = DefaultAnalysis()
		return analysis, DefaultStrategies(analysis.DifficultyType, a.cfg.Language), false
	}

	if strategies == nil {
		strategies = DefaultStrategies(analysis.DifficultyType, a.cfg.Language)
	}
	return analysis, strategies, true
}

// Stage adapts the analyzer to the pipeline stage contract.
type Stage struct {
	analyzer *Analyzer
}

// NewStage wraps an analyzer as a pipeline stage.
func NewStage(analyzer *Analyzer) *Stage {
	return &Stage{analyzer: analyzer}
}

// Run classifies the state's questionnaire answers and records the
// result. Empty questionnaires skip the model call entirely and go
// straight to the default.
func (s *Stage) Run(ctx context.Context, st *state.ProcessingState) *state.ProcessingState {
	out := st.Clone()

	var analysis *state.Analysis
	var strategies *state.SupportStrategies
	fromModel := false

	if len(st.UserProfile.QuestionnaireAnswers) == 0 {
		analysis = DefaultAnalysis()
		strategies = DefaultStrategies(analysis.DifficultyType, s.analyzer.cfg.Language)
	} else {
		analysis, strategies, fromModel = s.analyzer.Analyze(ctx, st.UserProfile.QuestionnaireAnswers)
	}

	out.UserProfile.Analysis = analysis
	out.UserProfile.SupportStrategies = strategies
	out.CurrentFocus = state.FocusProfileAnalyzed

	memo := "applied default classification"
	if fromModel {
		memo = "classified from questionnaire"
	}
	out.AppendHistory("profile_analyzer", "llm", memo)

	return out
}
