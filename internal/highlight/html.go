package highlight

import (
	"fmt"
	"html"
)

// HTMLRenderer wraps spans in the CSS classes that CSS() styles.
type HTMLRenderer struct{}

func (HTMLRenderer) Render(span string, style Style, meta Metadata) string {
	escaped := html.EscapeString(span)

	switch style {
	case StyleYellow, StyleGreen, StyleBlue, StylePink:
		return fmt.Sprintf(`<mark class="highlight-%s">%s</mark>`, style, escaped)
	case StyleBold:
		return fmt.Sprintf(`<strong class="highlight-bold">%s</strong>`, escaped)
	case StyleItalic:
		return fmt.Sprintf(`<em class="highlight-italic">%s</em>`, escaped)
	case StyleUnderline:
		return fmt.Sprintf(`<span class="highlight-underline">%s</span>`, escaped)
	case StyleTextRed, StyleTextBlue, StyleTextGreen:
		return fmt.Sprintf(`<span class="highlight-%s">%s</span>`, style, escaped)
	case StyleDefinition:
		return fmt.Sprintf(`<span class="highlight-definition" data-tooltip="%s">%s</span>`,
			html.EscapeString(meta.Definition), escaped)
	case StyleKeyConcept:
		return fmt.Sprintf(`<span class="highlight-key-concept">%s</span>`, escaped)
	case StyleExample:
		return fmt.Sprintf(`<div class="highlight-example">%s</div>`, escaped)
	default:
		return fmt.Sprintf(`<mark class="highlight-yellow">%s</mark>`, escaped)
	}
}

// CSS returns the stylesheet for the HTML renderer's classes, emitted
// once per render for embedding by the presentation layer.
func CSS() string {
	return cssStyles
}

const cssStyles = `/* Background highlighting styles */
.highlight-yellow { background-color: #ffffcc; }
.highlight-green { background-color: #e6ffe6; }
.highlight-blue { background-color: #e6f2ff; }
.highlight-pink { background-color: #ffe6f2; }

/* Text highlighting styles */
.highlight-bold { font-weight: bold; }
.highlight-italic { font-style: italic; }
.highlight-underline { text-decoration: underline; }
.highlight-text-red { color: #cc0000; }
.highlight-text-blue { color: #0066cc; }
.highlight-text-green { color: #006600; }

/* Special highlighting styles */
.highlight-definition {
    border-bottom: 1px dotted #666;
    position: relative;
    cursor: help;
}
.highlight-definition:hover::after {
    content: attr(data-tooltip);
    position: absolute;
    bottom: 100%;
    left: 0;
    background-color: #333;
    color: white;
    padding: 5px 10px;
    border-radius: 4px;
    white-space: nowrap;
    z-index: 1;
}
.highlight-key-concept {
    font-weight: bold;
    color: #0066cc;
    border-bottom: 1px solid #0066cc;
}
.highlight-example {
    background-color: #f9f9f9;
    border-left: 3px solid #0066cc;
    padding: 10px;
    margin: 10px 0;
}
`
