// Package highlight detects salient spans in learning content and
// renders them with style markers. Detection (which spans matter) and
// application (how they render) are independently substitutable.
package highlight

// Category is one of the four highlight groups. It governs both
// detection priority and render style.
type Category string

const (
	CategoryPrimary     Category = "primary"
	CategorySecondary   Category = "secondary"
	CategoryKeyConcepts Category = "key_concepts"
	CategoryDefinitions Category = "definitions"
)

// applyOrder fixes the cross-category substitution order so output is
// deterministic for a given element set.
var applyOrder = []Category{CategoryPrimary, CategorySecondary, CategoryKeyConcepts, CategoryDefinitions}

// Metadata carries per-element detail.
type Metadata struct {
	// Importance is "high", "medium", or "low".
	Importance string `json:"importance,omitempty"`

	// Definition is the tooltip text for definition elements.
	Definition string `json:"definition,omitempty"`
}

// Element is one span to highlight. Text must be non-empty and is only
// ever matched as a whole-word span.
type Element struct {
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// Elements groups detected spans by category.
type Elements struct {
	Primary     []Element `json:"primary"`
	Secondary   []Element `json:"secondary"`
	KeyConcepts []Element `json:"key_concepts"`
	Definitions []Element `json:"definitions"`
}

// ByCategory returns the element list for the given category.
func (e Elements) ByCategory(c Category) []Element {
	switch c {
	case CategoryPrimary:
		return e.Primary
	case CategorySecondary:
		return e.Secondary
	case CategoryKeyConcepts:
		return e.KeyConcepts
	case CategoryDefinitions:
		return e.Definitions
	}
	return nil
}

// Empty reports whether no category has any element.
func (e Elements) Empty() bool {
	return len(e.Primary) == 0 && len(e.Secondary) == 0 &&
		len(e.KeyConcepts) == 0 && len(e.Definitions) == 0
}
