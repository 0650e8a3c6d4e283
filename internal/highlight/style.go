package highlight

// Style names one render treatment for a highlight category. The HTML
// and terminal renderers both key off it.
type Style string

const (
	StyleYellow     Style = "yellow"
	StyleGreen      Style = "green"
	StyleBlue       Style = "blue"
	StylePink       Style = "pink"
	StyleBold       Style = "bold"
	StyleItalic     Style = "italic"
	StyleUnderline  Style = "underline"
	StyleTextRed    Style = "text-red"
	StyleTextBlue   Style = "text-blue"
	StyleTextGreen  Style = "text-green"
	StyleDefinition Style = "definition"
	StyleKeyConcept Style = "key_concept"
	StyleExample    Style = "example"
)

// StyleSet maps each category to its render style.
type StyleSet map[Category]Style

// DefaultStyles is the mixed emphasis set used when no modality
// preference dominates.
func DefaultStyles() StyleSet {
	return StyleSet{
		CategoryPrimary:     StyleYellow,
		CategorySecondary:   StyleBold,
		CategoryKeyConcepts: StyleKeyConcept,
		CategoryDefinitions: StyleDefinition,
	}
}

// StylesFromModality selects styles from the learner's self-reported
// modality weights: visual-dominant learners get color emphasis,
// kinesthetic-dominant learners get bold/underline emphasis, everyone
// else the mixed default.
func StylesFromModality(visual, kinesthetic float64) StyleSet {
	switch {
	case visual > 0.6:
		return StyleSet{
			CategoryPrimary:     StyleYellow,
			CategorySecondary:   StyleBlue,
			CategoryKeyConcepts: StyleKeyConcept,
			CategoryDefinitions: StyleDefinition,
		}
	case kinesthetic > 0.6:
		return StyleSet{
			CategoryPrimary:     StyleBold,
			CategorySecondary:   StyleUnderline,
			CategoryKeyConcepts: StyleKeyConcept,
			CategoryDefinitions: StyleDefinition,
		}
	default:
		return DefaultStyles()
	}
}

// styleFor returns the set's style for a category, defaulting to a
// yellow background when the set has no entry.
func (s StyleSet) styleFor(c Category) Style {
	if st, ok := s[c]; ok {
		return st
	}
	return StyleYellow
}
