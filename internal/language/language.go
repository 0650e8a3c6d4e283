// Package language detects whether a document is English or Chinese so
// the pipeline can pick the matching prompt set.
package language

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Chinese).
			Build()
	})
	return detector
}

// Detect returns "zh" when the text is Chinese, "en" otherwise.
// Ambiguous or empty input defaults to "en".
func Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "en"
	}
	lang, ok := getDetector().DetectLanguageOf(text)
	if ok && lang == lingua.Chinese {
		return "zh"
	}
	return "en"
}
