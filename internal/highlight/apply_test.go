package highlight

import (
	"strings"
	"testing"
)

func applyPrimary(text string, elements ...Element) string {
	return Apply(text, Elements{Primary: elements}, DefaultStyles(), HTMLRenderer{})
}

func TestApplyWholeWordOnly(t *testing.T) {
	out := applyPrimary("The category is large.", Element{Text: "cat"})

	if strings.Contains(out, "<mark") {
		t.Errorf("highlighted 'cat' inside 'category': %q", out)
	}
	if out != "The category is large." {
		t.Errorf("text altered: %q", out)
	}
}

func TestApplyWholeWordMatch(t *testing.T) {
	out := applyPrimary("The cat sat on the category.", Element{Text: "cat"})

	want := `The <mark class="highlight-yellow">cat</mark> sat on the category.`
	if out != want {
		t.Errorf("got  %q\nwant %q", out, want)
	}
}

func TestApplyLongestMatchFirst(t *testing.T) {
	out := applyPrimary("A neural network recognizes patterns.",
		Element{Text: "network"},
		Element{Text: "neural network"},
	)

	if !strings.Contains(out, `<mark class="highlight-yellow">neural network</mark>`) {
		t.Errorf("expected 'neural network' highlighted as a unit: %q", out)
	}
	// The shorter element must not be wrapped inside the longer match.
	if strings.Count(out, "<mark") != 1 {
		t.Errorf("expected exactly one substitution, got: %q", out)
	}
}

func TestApplyNeverRematchesSubstitutedRanges(t *testing.T) {
	// "class" appears in the inserted markup itself; a later element
	// must not match inside it.
	out := Apply("The span matters.", Elements{
		Primary:     []Element{{Text: "span"}},
		KeyConcepts: []Element{{Text: "class"}},
	}, DefaultStyles(), HTMLRenderer{})

	if strings.Contains(out, `highlight-key-concept">class</span></mark>`) {
		t.Errorf("re-matched inside markup: %q", out)
	}
	if !strings.Contains(out, `<mark class="highlight-yellow">span</mark>`) {
		t.Errorf("primary span lost: %q", out)
	}
}

func TestApplyEscapesHTML(t *testing.T) {
	out := applyPrimary("Use a<b to compare.", Element{Text: "a<b"})

	if !strings.Contains(out, "a&lt;b") {
		t.Errorf("span not escaped: %q", out)
	}
}

func TestApplyDefinitionTooltip(t *testing.T) {
	out := Apply("A neuron fires.", Elements{
		Definitions: []Element{{Text: "neuron", Metadata: Metadata{Definition: "basic unit of a neural network"}}},
	}, DefaultStyles(), HTMLRenderer{})

	want := `A <span class="highlight-definition" data-tooltip="basic unit of a neural network">neuron</span> fires.`
	if out != want {
		t.Errorf("got  %q\nwant %q", out, want)
	}
}

func TestApplyChineseSpans(t *testing.T) {
	out := applyPrimary("链表是一种线性数据结构。", Element{Text: "链表"})

	if !strings.Contains(out, `<mark class="highlight-yellow">链表</mark>`) {
		t.Errorf("CJK span not highlighted: %q", out)
	}
}

func TestApplyMultipleOccurrences(t *testing.T) {
	out := applyPrimary("The cat saw another cat.", Element{Text: "cat"})

	if strings.Count(out, "<mark") != 2 {
		t.Errorf("expected both occurrences highlighted: %q", out)
	}
}

func TestStylesFromModality(t *testing.T) {
	tests := []struct {
		name        string
		visual      float64
		kinesthetic float64
		primary     Style
		secondary   Style
	}{
		{"visual dominant", 0.8, 0.3, StyleYellow, StyleBlue},
		{"kinesthetic dominant", 0.4, 0.8, StyleBold, StyleUnderline},
		{"no dominance", 0.5, 0.5, StyleYellow, StyleBold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := StylesFromModality(tt.visual, tt.kinesthetic)
			if s[CategoryPrimary] != tt.primary {
				t.Errorf("primary = %q, want %q", s[CategoryPrimary], tt.primary)
			}
			if s[CategorySecondary] != tt.secondary {
				t.Errorf("secondary = %q, want %q", s[CategorySecondary], tt.secondary)
			}
			if s[CategoryKeyConcepts] != StyleKeyConcept || s[CategoryDefinitions] != StyleDefinition {
				t.Error("key concept / definition styles must not vary with modality")
			}
		})
	}
}
