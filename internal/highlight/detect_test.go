package highlight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/state"
)

const sampleContent = `Neural Networks are a set of algorithms that recognize patterns. ` +
	`This concept is important for machine learning. ` +
	`A neuron is a mathematical function with inputs and one output. ` +
	`For example, image classifiers use many layers.`

func TestRuleDetectCategories(t *testing.T) {
	elements := RuleDetect(sampleContent)

	if len(elements.Primary) == 0 {
		t.Fatal("no primary elements")
	}
	// First sentence is always the first primary element.
	if !strings.HasPrefix(elements.Primary[0].Text, "Neural Networks are") {
		t.Errorf("primary[0] = %q, want first sentence", elements.Primary[0].Text)
	}
	// "important" indicator sentence picked up.
	found := false
	for _, el := range elements.Primary[1:] {
		if strings.Contains(el.Text, "important") {
			found = true
		}
	}
	if !found {
		t.Error("importance-indicator sentence not in primary")
	}

	// Title-case concept.
	concepts := make([]string, 0, len(elements.KeyConcepts))
	for _, el := range elements.KeyConcepts {
		concepts = append(concepts, el.Text)
	}
	if !contains(concepts, "Neural Networks") {
		t.Errorf("key concepts %v missing 'Neural Networks'", concepts)
	}

	// "neuron is ..." definition.
	defFound := false
	for _, el := range elements.Definitions {
		if strings.Contains(el.Text, "neuron") && el.Metadata.Definition != "" {
			defFound = true
		}
	}
	if !defFound {
		t.Errorf("definitions %+v missing neuron", elements.Definitions)
	}

	// "For example" sentence lands in secondary.
	if len(elements.Secondary) == 0 || !strings.Contains(elements.Secondary[0].Text, "For example") {
		t.Errorf("secondary = %+v, want example sentence", elements.Secondary)
	}
}

func TestRuleDetectCaps(t *testing.T) {
	// Many indicator sentences; caps must hold.
	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("This point is important to remember. ")
		b.WriteString("For example, consider this. ")
	}
	elements := RuleDetect(b.String())

	if len(elements.Primary) > 5 {
		t.Errorf("primary = %d items, cap is 5", len(elements.Primary))
	}
	if len(elements.Secondary) > 3 {
		t.Errorf("secondary = %d items, cap is 3", len(elements.Secondary))
	}
	if len(elements.KeyConcepts) > 3 {
		t.Errorf("key_concepts = %d items, cap is 3", len(elements.KeyConcepts))
	}
	if len(elements.Definitions) > 4 {
		t.Errorf("definitions = %d items, cap is 4", len(elements.Definitions))
	}
}

func TestParseElementsFenced(t *testing.T) {
	text := "```json\n{\"primary\": [{\"text\": \"neuron\", \"metadata\": {\"importance\": \"high\"}}], \"secondary\": [], \"key_concepts\": [], \"definitions\": []}\n```"

	elements, err := ParseElements(text)
	if err != nil {
		t.Fatalf("ParseElements: %v", err)
	}
	if len(elements.Primary) != 1 || elements.Primary[0].Text != "neuron" {
		t.Errorf("primary = %+v", elements.Primary)
	}
}

func TestLLMDetectorUsesModelResult(t *testing.T) {
	mock := llm.NewMockTextProvider(`{"primary": [{"text": "patterns", "metadata": {"importance": "high"}}]}`)
	d := NewLLMDetector(mock, 2000, 0.3, "en")

	elements := d.Detect(context.Background(), sampleContent, state.DifficultyADHD)

	if len(elements.Primary) != 1 || elements.Primary[0].Text != "patterns" {
		t.Errorf("primary = %+v, want model result", elements.Primary)
	}
}

func TestLLMDetectorDegradesToRules(t *testing.T) {
	tests := []struct {
		name string
		mock *llm.MockProvider
	}{
		{"gateway error", llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})},
		{"unparseable", llm.NewMockTextProvider("these spans look interesting")},
		{"empty result", llm.NewMockTextProvider(`{"primary": [], "secondary": [], "key_concepts": [], "definitions": []}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewLLMDetector(tt.mock, 2000, 0.3, "en")
			elements := d.Detect(context.Background(), sampleContent, state.DifficultyDyslexia)
			if elements.Empty() {
				t.Error("expected rule-based fallback elements")
			}
		})
	}
}

func TestDetectPromptVariesByDifficulty(t *testing.T) {
	if detectPromptFor(state.DifficultyADHD) == detectPromptFor(state.DifficultyDyslexia) {
		t.Error("ADHD and Dyslexia prompts must differ")
	}
	if detectPromptFor(state.DifficultyCombined) == detectPromptFor(state.DifficultyADHD) {
		t.Error("Combined prompt must differ from ADHD")
	}
}

func contains(items []string, want string) bool {
	for _, s := range items {
		if s == want {
			return true
		}
	}
	return false
}
