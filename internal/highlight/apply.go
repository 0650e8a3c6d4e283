package highlight

import (
	"sort"
	"strings"
)

// Renderer wraps one matched span in style markers. The HTML and
// terminal renderers implement it.
type Renderer interface {
	Render(span string, style Style, meta Metadata) string
}

// replacement is one committed substitution in original-text
// coordinates.
type replacement struct {
	start, end int
	text       string
}

// Apply substitutes every element of every category into the text using
// the given style set and renderer. Within a category elements are
// applied longest-first so a short span never matches inside a longer
// one; substituted ranges are tracked as intervals so later elements
// can never re-match inside earlier markup. Matches are whole-word:
// an element that is a substring of a larger word is left alone.
func Apply(text string, elements Elements, styles StyleSet, r Renderer) string {
	var repls []replacement

	for _, cat := range applyOrder {
		items := append([]Element(nil), elements.ByCategory(cat)...)
		sort.SliceStable(items, func(i, j int) bool {
			return len(items[i].Text) > len(items[j].Text)
		})

		style := styles.styleFor(cat)
		for _, el := range items {
			if el.Text == "" {
				continue
			}
			rendered := r.Render(el.Text, style, el.Metadata)
			for _, start := range findWholeWord(text, el.Text) {
				end := start + len(el.Text)
				if overlaps(repls, start, end) {
					continue
				}
				repls = append(repls, replacement{start: start, end: end, text: rendered})
			}
		}
	}

	if len(repls) == 0 {
		return text
	}

	sort.Slice(repls, func(i, j int) bool { return repls[i].start < repls[j].start })

	var b strings.Builder
	pos := 0
	for _, rep := range repls {
		b.WriteString(text[pos:rep.start])
		b.WriteString(rep.text)
		pos = rep.end
	}
	b.WriteString(text[pos:])
	return b.String()
}

// findWholeWord returns the start offsets of all whole-word occurrences
// of span in text. Word boundaries only apply to ASCII word characters,
// so CJK spans match anywhere while "cat" never matches inside
// "category".
func findWholeWord(text, span string) []int {
	var offsets []int
	for from := 0; ; {
		idx := strings.Index(text[from:], span)
		if idx < 0 {
			break
		}
		start := from + idx
		end := start + len(span)
		if boundaryBefore(text, start, span) && boundaryAfter(text, end, span) {
			offsets = append(offsets, start)
		}
		from = start + len(span)
	}
	return offsets
}

func boundaryBefore(text string, start int, span string) bool {
	if !isASCIIWord(span[0]) {
		return true
	}
	return start == 0 || !isASCIIWord(text[start-1])
}

func boundaryAfter(text string, end int, span string) bool {
	if !isASCIIWord(span[len(span)-1]) {
		return true
	}
	return end == len(text) || !isASCIIWord(text[end])
}

func isASCIIWord(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func overlaps(repls []replacement, start, end int) bool {
	for _, r := range repls {
		if start < r.end && r.start < end {
			return true
		}
	}
	return false
}
