package simplify

import (
	"context"

	"github.com/fairedu/adapt/internal/highlight"
	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/state"
)

// Config holds syntax-simplifier stage settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Language    string
}

// DefaultConfig returns sensible defaults for syntax simplification.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4000,
		Temperature: 0.5,
		Language:    "en",
	}
}

// Stage rewrites the material into short clear sentences.
type Stage struct {
	provider   llm.Provider
	cfg        Config
	highlights *highlight.Engine // optional, nil disables highlighting
}

// NewStage creates the syntax-simplifier stage. A nil engine disables
// highlighting regardless of learner preference.
func NewStage(provider llm.Provider, cfg Config, highlights *highlight.Engine) *Stage {
	return &Stage{provider: provider, cfg: cfg, highlights: highlights}
}

// Run simplifies the material and merges the result into the state.
// All gateway and parse failures are absorbed: the fallback is a canned
// three-tier simplification. Exactly one of the two output shapes is
// populated per run.
func (s *Stage) Run(ctx context.Context, st *state.ProcessingState) *state.ProcessingState {
	ctx = llm.WithPurpose(ctx, "syntax-simplify")
	out := st.Clone()

	content := out.LearningMaterials.CurrentContent

	req := llm.Request{
		System: BuildSystemPrompt(s.cfg.Language),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(content, s.cfg.Language)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
		Language:    s.cfg.Language,
	}

	var simplified *state.SimplifiedText
	fellBack := false

	resp, err := s.provider.Generate(ctx, req)
	if err == nil {
		simplified = Parse(resp.Text())
	}
	if simplified == nil {
		simplified = FallbackTiers(s.cfg.Language)
		fellBack = true
	}

	if s.highlights != nil && out.UserProfile.WantsHighlighting() && simplified.Content != "" {
		diff := out.UserProfile.DifficultyType()
		if out.ProcessedContent.Highlighted == nil {
			out.ProcessedContent.Highlighted = map[string]string{}
		}
		out.ProcessedContent.Highlighted["simplified_text"] = s.highlights.Highlight(ctx, simplified.Content, diff)
	}

	out.ProcessedContent.SimplifiedText = simplified
	out.CurrentFocus = state.FocusSyntaxSimplified

	memo := "simplified material into short sentences"
	if fellBack {
		memo = "model output unusable, applied canned simplification tiers"
	}
	out.AppendHistory("syntax_simplifier", "llm", memo)

	return out
}

// FallbackTiers is the deterministic failure fallback: three canned
// difficulty tiers describing the simplification levels themselves.
func FallbackTiers(language string) *state.SimplifiedText {
	if language == "zh" {
		return &state.SimplifiedText{
			Basic:        "这是基础级简化版本。短句。简单词汇。清晰结构。",
			Intermediate: "这是中级简化版本。句子稍长但结构清晰。使用常见词汇。保持逻辑简单。",
			Advanced:     "这是高级简化版本。保留一些复杂度但避免嵌套结构。使用精确词汇。保持原文风格。",
		}
	}
	return &state.SimplifiedText{
		Basic:        "This is the basic simplification. Short sentences. Simple words. Clear structure.",
		Intermediate: "This is the intermediate simplification. Slightly longer sentences with a clear structure. Common vocabulary. Simple logic throughout.",
		Advanced:     "This is the advanced simplification. Some complexity is kept but nesting is avoided. Precise vocabulary. Close to the original style.",
	}
}
