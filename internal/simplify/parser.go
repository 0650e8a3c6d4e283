// Package simplify restructures complex sentences into short, clear
// statements for learners with dyslexia, with an optional vocabulary
// of difficult terms.
package simplify

import (
	"regexp"
	"strings"

	"github.com/fairedu/adapt/internal/state"
)

var (
	simplifiedMarkerRe = regexp.MustCompile(`(?mi)^\s*#{0,4}\s*\*{0,2}\s*(?:simplified text|简化文本|简化版本)\s*\*{0,2}\s*[:：]?\*{0,2}[ \t]*`)
	vocabMarkerRe      = regexp.MustCompile(`(?mi)^\s*#{0,4}\s*\*{0,2}\s*(?:vocabulary|词汇表|词汇)\s*\*{0,2}\s*[:：]?\*{0,2}[ \t]*$`)
	vocabLineRe        = regexp.MustCompile(`^\s*[-*•]?\s*\*{0,2}([^:：*]+?)\*{0,2}\s*[:：]\s*(.+)$`)
	blankLineRe        = regexp.MustCompile(`\n\s*\n`)
)

// Parse turns the model's free text into the content-plus-vocabulary
// shape. Everything after a bilingual "Simplified Text" marker up to a
// "Vocabulary" marker (or end of text) is the simplified passage;
// without a marker, the text up to the first blank line is used and the
// remainder discarded. An empty passage means the output is unusable.
func Parse(text string) *state.SimplifiedText {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var content, vocabSection string

	if loc := simplifiedMarkerRe.FindStringIndex(text); loc != nil {
		rest := text[loc[1]:]
		if vloc := vocabMarkerRe.FindStringIndex(rest); vloc != nil {
			content = rest[:vloc[0]]
			vocabSection = rest[vloc[1]:]
		} else {
			content = rest
		}
	} else {
		content = text
		if loc := blankLineRe.FindStringIndex(text); loc != nil {
			content = text[:loc[0]]
		}
		if vloc := vocabMarkerRe.FindStringIndex(text); vloc != nil {
			// A vocabulary marker without a simplified-text marker
			// still bounds the passage.
			if vloc[0] < len(content) {
				content = text[:vloc[0]]
			}
			vocabSection = text[vloc[1]:]
		}
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	return &state.SimplifiedText{
		Content:    content,
		Vocabulary: parseVocabulary(vocabSection),
	}
}

// parseVocabulary reads optional-bullet "term: definition" lines. Both
// ASCII and full-width colons separate term from definition.
func parseVocabulary(section string) map[string]string {
	var vocab map[string]string
	for _, line := range strings.Split(section, "\n") {
		m := vocabLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		term := strings.TrimSpace(m[1])
		def := strings.TrimSpace(m[2])
		if term == "" || def == "" {
			continue
		}
		if vocab == nil {
			vocab = map[string]string{}
		}
		vocab[term] = def
	}
	return vocab
}
