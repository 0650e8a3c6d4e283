package highlight

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/state"
)

const adhdDetectPrompt = `You are an expert educational content analyzer specializing in supporting students with ADHD.
Your task is to identify elements in learning materials that should be highlighted to help maintain focus and enhance comprehension.

For students with ADHD, highlighting should:
1. Emphasize key concepts and main ideas to help maintain focus
2. Highlight action items and important instructions
3. Mark transitions between topics to help with organization
4. Identify concrete examples that illustrate abstract concepts

Analyze the provided learning content and identify:
1. PRIMARY elements: The most important concepts, terms, or ideas (5-7 items)
2. SECONDARY elements: Supporting details, examples, or explanations (3-5 items)
3. KEY_CONCEPTS: Fundamental concepts that are central to understanding the material (2-3 items)
4. DEFINITIONS: Terms that would benefit from definition tooltips (2-4 items)

Format your response as a JSON object with these categories as keys, each containing an array of objects with "text" and "metadata" fields.
The "metadata" field should include "importance" (high/medium/low) for primary/secondary elements, and "definition" for definition elements.`

const dyslexiaDetectPrompt = `You are an expert educational content analyzer specializing in supporting students with Dyslexia.
Your task is to identify elements in learning materials that should be highlighted to improve readability and comprehension.

For students with Dyslexia, highlighting should:
1. Focus on difficult vocabulary or technical terms that may be challenging to decode
2. Highlight key concepts to aid in overall comprehension
3. Mark sentence structures that summarize main ideas
4. Identify terms that would benefit from definitions or simplifications

Analyze the provided learning content and identify:
1. PRIMARY elements: Essential vocabulary or terms that may be difficult to decode (3-5 items)
2. SECONDARY elements: Important phrases or sentence fragments that contain main ideas (2-4 items)
3. KEY_CONCEPTS: Fundamental concepts that are central to understanding the material (2-3 items)
4. DEFINITIONS: Terms that would benefit from definition tooltips or simplification (3-6 items)

Format your response as a JSON object with these categories as keys, each containing an array of objects with "text" and "metadata" fields.
The "metadata" field should include "importance" (high/medium/low) for primary/secondary elements, and "definition" for definition elements.`

const combinedDetectPrompt = `You are an expert educational content analyzer specializing in supporting students with both ADHD and Dyslexia.
Your task is to identify elements in learning materials that should be highlighted to improve focus, readability, and comprehension.

For students with both ADHD and Dyslexia, highlighting should:
1. Emphasize key concepts and main ideas to help maintain focus
2. Focus on difficult vocabulary or technical terms that may be challenging to decode
3. Mark transitions between topics to help with organization
4. Identify terms that would benefit from definitions or simplifications

Analyze the provided learning content and identify:
1. PRIMARY elements: Essential vocabulary, key concepts, or main ideas (4-6 items)
2. SECONDARY elements: Supporting details or important phrases (3-5 items)
3. KEY_CONCEPTS: Fundamental concepts that are central to understanding the material (2-3 items)
4. DEFINITIONS: Terms that would benefit from definition tooltips or simplification (3-6 items)

Format your response as a JSON object with these categories as keys, each containing an array of objects with "text" and "metadata" fields.
The "metadata" field should include "importance" (high/medium/low) for primary/secondary elements, and "definition" for definition elements.`

func detectPromptFor(diff state.DifficultyType) string {
	switch diff {
	case state.DifficultyADHD:
		return adhdDetectPrompt
	case state.DifficultyDyslexia:
		return dyslexiaDetectPrompt
	default:
		return combinedDetectPrompt
	}
}

// Detector picks the spans worth highlighting.
type Detector interface {
	Detect(ctx context.Context, content string, diff state.DifficultyType) Elements
}

// RuleDetector is the model-free Detector.
type RuleDetector struct{}

func (RuleDetector) Detect(_ context.Context, content string, _ state.DifficultyType) Elements {
	return RuleDetect(content)
}

// LLMDetector asks the model which spans matter, with a
// difficulty-specific prompt, and degrades to the rule-based path when
// the response cannot be parsed or comes back empty.
type LLMDetector struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
	language    string
}

// NewLLMDetector creates an LLM-backed detector.
func NewLLMDetector(provider llm.Provider, maxTokens int, temperature float64, language string) *LLMDetector {
	return &LLMDetector{provider: provider, maxTokens: maxTokens, temperature: temperature, language: language}
}

func (d *LLMDetector) Detect(ctx context.Context, content string, diff state.DifficultyType) Elements {
	ctx = llm.WithPurpose(ctx, "highlight")

	req := llm.Request{
		System: detectPromptFor(diff),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Please analyze the following learning content and identify elements to highlight:\n\n" + content},
		},
		MaxTokens:   d.maxTokens,
		Temperature: d.temperature,
		Language:    d.language,
	}

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return RuleDetect(content)
	}

	elements, err := ParseElements(resp.Text())
	if err != nil || elements.Empty() {
		return RuleDetect(content)
	}
	return elements
}

var fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ParseElements extracts the category JSON from the model's output,
// tolerating a surrounding markdown fence.
func ParseElements(text string) (Elements, error) {
	var out Elements

	raw := strings.TrimSpace(text)
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		raw = strings.TrimSpace(m[1])
	}

	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return Elements{}, err
	}
	return out, nil
}
