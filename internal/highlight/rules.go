package highlight

import (
	"regexp"
	"strings"
)

// Rule-based detection: a deterministic fallback with no model
// dependency. Caps per category match the LLM path's item bands.

var (
	sentenceSplitRe = regexp.MustCompile(`(?:[.!?])\s+`)
	titleCaseRe     = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*\b`)
	quotedRe        = regexp.MustCompile(`"([^"]+)"`)

	definitionRes = []*regexp.Regexp{
		regexp.MustCompile(`([A-Za-z\s]+)\s+is\s+defined\s+as\s+([^.!?]+)`),
		regexp.MustCompile(`([A-Za-z\s]+)\s+refers\s+to\s+([^.!?]+)`),
		regexp.MustCompile(`([A-Za-z\s]+)\s+is\s+([^.!?]+)`),
	}
)

var primaryIndicators = []string{"important", "key", "essential", "fundamental", "critical", "significant"}

var secondaryIndicators = []string{"for example", "such as", "e.g.", "i.e.", "in other words", "specifically"}

// RuleDetect identifies elements to highlight using sentence and
// pattern heuristics: the first sentence and importance-indicator
// sentences become primary spans, short title-case or quoted spans
// become key concepts, "X is/refers to Y" sentences yield definitions,
// and example-indicator sentences become secondary spans.
func RuleDetect(content string) Elements {
	var out Elements

	sentences := splitSentences(content)

	// Key concepts: short capitalized or quoted spans, deduplicated in
	// first-seen order.
	seen := map[string]bool{}
	for _, sentence := range sentences {
		for _, m := range titleCaseRe.FindAllString(sentence, -1) {
			if len(strings.Fields(m)) <= 3 && !seen[m] {
				seen[m] = true
				out.KeyConcepts = append(out.KeyConcepts, Element{Text: m, Metadata: Metadata{Importance: "high"}})
			}
		}
		for _, m := range quotedRe.FindAllStringSubmatch(sentence, -1) {
			if len(strings.Fields(m[1])) <= 3 && !seen[m[1]] {
				seen[m[1]] = true
				out.KeyConcepts = append(out.KeyConcepts, Element{Text: m[1], Metadata: Metadata{Importance: "high"}})
			}
		}
	}
	out.KeyConcepts = capElements(out.KeyConcepts, 3)

	// Primary: the first sentence usually carries the main idea, plus
	// any sentence with an importance indicator.
	if len(sentences) > 0 {
		out.Primary = append(out.Primary, Element{Text: sentences[0], Metadata: Metadata{Importance: "high"}})
		for _, sentence := range sentences[1:] {
			if containsAny(sentence, primaryIndicators) {
				out.Primary = append(out.Primary, Element{Text: sentence, Metadata: Metadata{Importance: "high"}})
			}
		}
	}
	out.Primary = capElements(out.Primary, 5)

	// Definitions: "term is/refers to/is defined as definition" with a
	// short term.
	for _, sentence := range sentences {
		for _, re := range definitionRes {
			m := re.FindStringSubmatch(sentence)
			if m == nil {
				continue
			}
			term := strings.TrimSpace(m[1])
			def := strings.TrimSpace(m[2])
			if term != "" && len(strings.Fields(term)) <= 3 {
				out.Definitions = append(out.Definitions, Element{Text: term, Metadata: Metadata{Definition: def}})
			}
			break
		}
	}
	out.Definitions = capElements(out.Definitions, 4)

	// Secondary: sentences that introduce examples or explanations.
	for _, sentence := range sentences {
		if containsAny(sentence, secondaryIndicators) {
			out.Secondary = append(out.Secondary, Element{Text: sentence, Metadata: Metadata{Importance: "medium"}})
		}
	}
	out.Secondary = capElements(out.Secondary, 3)

	return out
}

func splitSentences(content string) []string {
	parts := sentenceSplitRe.Split(strings.TrimSpace(content), -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.TrimRight(p, ".!?"))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsAny(sentence string, indicators []string) bool {
	lower := strings.ToLower(sentence)
	for _, ind := range indicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

func capElements(items []Element, n int) []Element {
	if len(items) > n {
		return items[:n]
	}
	return items
}
