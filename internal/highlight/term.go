package highlight

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

// TermRenderer maps highlight styles onto ANSI styling for terminal
// output.
type TermRenderer struct{}

var (
	termYellow     = lipgloss.NewStyle().Background(lipgloss.Color("#ffffcc")).Foreground(lipgloss.Color("#000000"))
	termGreen      = lipgloss.NewStyle().Background(lipgloss.Color("#e6ffe6")).Foreground(lipgloss.Color("#000000"))
	termBlue       = lipgloss.NewStyle().Background(lipgloss.Color("#e6f2ff")).Foreground(lipgloss.Color("#000000"))
	termPink       = lipgloss.NewStyle().Background(lipgloss.Color("#ffe6f2")).Foreground(lipgloss.Color("#000000"))
	termBold       = lipgloss.NewStyle().Bold(true)
	termItalic     = lipgloss.NewStyle().Italic(true)
	termUnderline  = lipgloss.NewStyle().Underline(true)
	termTextRed    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cc0000"))
	termTextBlue   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0066cc"))
	termTextGreen  = lipgloss.NewStyle().Foreground(lipgloss.Color("#006600"))
	termKeyConcept = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0066cc")).Underline(true)
	termExample    = lipgloss.NewStyle().Faint(true)
)

func (TermRenderer) Render(span string, style Style, meta Metadata) string {
	switch style {
	case StyleYellow:
		return termYellow.Render(span)
	case StyleGreen:
		return termGreen.Render(span)
	case StyleBlue:
		return termBlue.Render(span)
	case StylePink:
		return termPink.Render(span)
	case StyleBold:
		return termBold.Render(span)
	case StyleItalic:
		return termItalic.Render(span)
	case StyleUnderline:
		return termUnderline.Render(span)
	case StyleTextRed:
		return termTextRed.Render(span)
	case StyleTextBlue:
		return termTextBlue.Render(span)
	case StyleTextGreen:
		return termTextGreen.Render(span)
	case StyleDefinition:
		rendered := termUnderline.Render(span)
		if meta.Definition != "" {
			rendered += termExample.Render(fmt.Sprintf(" (%s)", meta.Definition))
		}
		return rendered
	case StyleKeyConcept:
		return termKeyConcept.Render(span)
	case StyleExample:
		return termExample.Render(span)
	default:
		return termYellow.Render(span)
	}
}
