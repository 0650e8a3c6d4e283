package highlight

import (
	"context"

	"github.com/fairedu/adapt/internal/state"
)

// Engine ties detection, style selection, and application together.
type Engine struct {
	detector Detector
	styles   StyleSet
	renderer Renderer
}

// NewEngine creates an engine. A nil detector falls back to the
// rule-based one, a nil renderer to HTML.
func NewEngine(detector Detector, styles StyleSet, renderer Renderer) *Engine {
	if detector == nil {
		detector = RuleDetector{}
	}
	if styles == nil {
		styles = DefaultStyles()
	}
	if renderer == nil {
		renderer = HTMLRenderer{}
	}
	return &Engine{detector: detector, styles: styles, renderer: renderer}
}

// EngineForProfile builds an engine whose styles follow the learner's
// modality preference.
func EngineForProfile(detector Detector, profile state.UserProfile, renderer Renderer) *Engine {
	visual, _, kinesthetic := profile.ModalityPreference()
	return NewEngine(detector, StylesFromModality(visual, kinesthetic), renderer)
}

// Highlight detects and applies spans for the given difficulty type.
func (e *Engine) Highlight(ctx context.Context, content string, diff state.DifficultyType) string {
	elements := e.detector.Detect(ctx, content, diff)
	return Apply(content, elements, e.styles, e.renderer)
}
