package state

// Accessors for the loosely-typed questionnaire map. The questionnaire
// arrives as raw JSON from the front end; these helpers pull out the
// handful of fields the pipeline actually branches on.

// AttentionSpanMinutes returns the self-reported average focus duration,
// or 0 if the questionnaire doesn't carry one.
func (p UserProfile) AttentionSpanMinutes() int {
	ap, ok := nestedMap(p.QuestionnaireAnswers, "attention_patterns")
	if !ok {
		return 0
	}
	return asInt(ap["average_focus_duration_minutes"])
}

// ComprehensionAids returns the reading-pattern aids the learner asked
// for (e.g. "highlighting", "summaries").
func (p UserProfile) ComprehensionAids() []string {
	rp, ok := nestedMap(p.QuestionnaireAnswers, "reading_patterns")
	if !ok {
		return nil
	}
	return asStrings(rp["comprehension_aids"])
}

// WantsHighlighting reports whether "highlighting" is among the
// requested comprehension aids.
func (p UserProfile) WantsHighlighting() bool {
	for _, aid := range p.ComprehensionAids() {
		if aid == "highlighting" {
			return true
		}
	}
	return false
}

// ModalityPreference returns the visual/auditory/kinesthetic weights
// (0.0-1.0), zero-valued when unanswered.
func (p UserProfile) ModalityPreference() (visual, auditory, kinesthetic float64) {
	lp, ok := nestedMap(p.QuestionnaireAnswers, "learning_preferences")
	if !ok {
		return 0, 0, 0
	}
	mp, ok := lp["modality_preference"].(map[string]any)
	if !ok {
		return 0, 0, 0
	}
	return asFloat(mp["visual"]), asFloat(mp["auditory"]), asFloat(mp["kinesthetic"])
}

// DiagnosedConditions returns self-reported prior diagnoses from the
// questionnaire ("ADHD", "Dyslexia").
func (p UserProfile) DiagnosedConditions() []string {
	ld, ok := nestedMap(p.QuestionnaireAnswers, "learning_difficulties")
	if !ok {
		return nil
	}
	return asStrings(ld["diagnosed_conditions"])
}

// DifficultyType returns the analyzed type when present, else a type
// inferred from diagnosed conditions, else DifficultyNone. Inference is
// advisory only; it never replaces running the analyzer stage.
func (p UserProfile) DifficultyType() DifficultyType {
	if p.Analysis != nil && p.Analysis.DifficultyType != "" {
		return p.Analysis.DifficultyType
	}
	var adhd, dyslexia bool
	for _, c := range p.DiagnosedConditions() {
		switch c {
		case "ADHD":
			adhd = true
		case "Dyslexia":
			dyslexia = true
		}
	}
	switch {
	case adhd && dyslexia:
		return DifficultyCombined
	case adhd:
		return DifficultyADHD
	case dyslexia:
		return DifficultyDyslexia
	}
	return DifficultyNone
}

func nestedMap(m map[string]any, key string) (map[string]any, bool) {
	if m == nil {
		return nil, false
	}
	sub, ok := m[key].(map[string]any)
	return sub, ok
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

func asStrings(v any) []string {
	switch vs := v.(type) {
	case []string:
		return vs
	case []any:
		out := make([]string, 0, len(vs))
		for _, item := range vs {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
