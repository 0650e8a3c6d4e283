package profile

import "github.com/fairedu/adapt/internal/llm"

// AnalysisSchema defines the JSON shape expected from the assessment.
var AnalysisSchema = &llm.Schema{
	Name:        "profile-analysis",
	Description: "Learning difficulty classification with severity, features, strengths, and strategies",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"difficulty_type": map[string]any{
				"type": "string",
				"enum": []any{"ADHD", "Dyslexia", "Combined", "None"},
			},
			"severity_level": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Impact on daily learning, 5 most severe",
			},
			"specific_features": map[string]any{
				"type":        "object",
				"description": "Observed behavioral characteristics grouped by dimension",
			},
			"strengths": map[string]any{
				"type":        "object",
				"description": "Cognitive and learning strengths for compensatory strategies",
			},
			"recommended_strategies": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"primary": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"secondary": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
		},
		"required": []any{"difficulty_type", "severity_level"},
	},
}
