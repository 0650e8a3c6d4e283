package profile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fairedu/adapt/internal/state"
)

type analysisOutput struct {
	DifficultyType        string         `json:"difficulty_type"`
	SeverityLevel         int            `json:"severity_level"`
	SpecificFeatures      map[string]any `json:"specific_features"`
	Strengths             map[string]any `json:"strengths"`
	RecommendedStrategies *struct {
		Primary   []string `json:"primary"`
		Secondary []string `json:"secondary"`
	} `json:"recommended_strategies"`
}

// ParseAnalysis turns the model's JSON-shaped text into an Analysis and
// any strategies it recommended. Markdown fences are tolerated; any
// other malformation is an error the caller absorbs with the fallback.
func ParseAnalysis(text string) (*state.Analysis, *state.SupportStrategies, error) {
	cleaned := stripFences(text)

	var out analysisOutput
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, nil, fmt.Errorf("parse analysis response: %w", err)
	}

	diff, err := normalizeDifficulty(out.DifficultyType)
	if err != nil {
		return nil, nil, err
	}

	analysis := &state.Analysis{
		DifficultyType:   diff,
		SeverityLevel:    clampSeverity(out.SeverityLevel),
		SpecificFeatures: out.SpecificFeatures,
		Strengths:        out.Strengths,
	}

	var strategies *state.SupportStrategies
	if out.RecommendedStrategies != nil && len(out.RecommendedStrategies.Primary) > 0 {
		strategies = &state.SupportStrategies{
			Primary:   out.RecommendedStrategies.Primary,
			Secondary: out.RecommendedStrategies.Secondary,
		}
	}

	return analysis, strategies, nil
}

// stripFences removes a surrounding markdown code fence if present.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:]
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

func normalizeDifficulty(s string) (state.DifficultyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adhd":
		return state.DifficultyADHD, nil
	case "dyslexia":
		return state.DifficultyDyslexia, nil
	case "combined", "both":
		return state.DifficultyCombined, nil
	case "none":
		return state.DifficultyNone, nil
	}
	return "", fmt.Errorf("unknown difficulty type %q", s)
}

func clampSeverity(n int) int {
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}
