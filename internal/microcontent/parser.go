// Package microcontent divides learning material into bounded-duration
// units for learners with ADHD, parsing the model's loosely formatted
// output defensively.
package microcontent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fairedu/adapt/internal/state"
)

// defaultUnitMinutes is used when a unit block carries no time label.
const defaultUnitMinutes = 5

// Unit-boundary markers, English and Chinese, with optional markdown
// decoration.
// Horizontal whitespace only: a leading \s* would swallow the newline
// of a preceding blank line and shift the boundary onto it, leaving the
// marker line inside the unit's content.
var unitMarkerRes = []*regexp.Regexp{
	regexp.MustCompile(`(?mi)^[ \t]*#{0,4}[ \t]*\*{0,2}[ \t]*Unit[ \t]*(\d+)`),
	regexp.MustCompile(`(?m)^[ \t]*#{0,4}[ \t]*\*{0,2}[ \t]*单元[ \t]*(\d+)`),
	regexp.MustCompile(`(?m)^[ \t]*#{0,4}[ \t]*\*{0,2}[ \t]*第[ \t]*(\d+)[ \t]*单元`),
}

var (
	objectiveLabelRe = regexp.MustCompile(`(?i)^\s*\*{0,2}\s*(?:learning objective|objective|学习目标|目标)\s*\*{0,2}\s*[:：]\s*(.*)$`)
	keyPointsLabelRe = regexp.MustCompile(`(?i)^\s*\*{0,2}\s*(?:key points?|要点|关键点)\s*\*{0,2}\s*[:：]\s*(.*)$`)
	questionsLabelRe = regexp.MustCompile(`(?i)^\s*\*{0,2}\s*(?:check questions?|comprehension check|checkpoint|检查问题|理解检查|检查点)\s*\*{0,2}\s*[:：]\s*(.*)$`)
	timeLabelRe      = regexp.MustCompile(`(?i)^\s*\*{0,2}\s*(?:estimated time|estimated completion time|time|预计时间|预计用时|估计时间)\s*\*{0,2}\s*[:：]?\s*(.*)$`)

	minutesRe  = regexp.MustCompile(`(\d+)\s*(?:minutes?|mins?|分钟)`)
	bulletRe   = regexp.MustCompile(`^\s*[-*•]\s+(.*)$`)
	numberedRe = regexp.MustCompile(`^\s*\d+[.)、]\s*(.*)$`)
)

type boundary struct {
	pos    int
	number int
}

// ParseUnits turns the model's free text into micro-units. Blocks are
// delimited by bilingual unit markers; without markers the text is
// split on blank-line paragraphs when at least three exist, otherwise
// the whole text is one unit.
func ParseUnits(text string) []state.MicroUnit {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	bounds := findBoundaries(text)
	if len(bounds) == 0 {
		return unitsFromParagraphs(text)
	}

	units := make([]state.MicroUnit, 0, len(bounds))
	for i, b := range bounds {
		end := len(text)
		if i+1 < len(bounds) {
			end = bounds[i+1].pos
		}
		// The marker line itself is a boundary, not content.
		block := text[b.pos:end]
		if idx := strings.Index(block, "\n"); idx >= 0 {
			block = block[idx+1:]
		} else {
			block = ""
		}

		unit := parseBlock(block)
		unit.UnitNumber = b.number
		if unit.Content == "" {
			unit.Content = strings.TrimSpace(block)
		}
		if unit.Content == "" {
			continue
		}
		units = append(units, unit)
	}

	if len(units) == 0 {
		return unitsFromParagraphs(text)
	}
	return units
}

func findBoundaries(text string) []boundary {
	var bounds []boundary
	for _, re := range unitMarkerRes {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			num, err := strconv.Atoi(text[m[2]:m[3]])
			if err != nil {
				continue
			}
			bounds = append(bounds, boundary{pos: m[0], number: num})
		}
	}
	if len(bounds) == 0 {
		return nil
	}

	// Sort by position and drop duplicate markers at the same spot
	// (a block can match more than one pattern).
	for i := 1; i < len(bounds); i++ {
		for j := i; j > 0 && bounds[j].pos < bounds[j-1].pos; j-- {
			bounds[j], bounds[j-1] = bounds[j-1], bounds[j]
		}
	}
	dedup := bounds[:1]
	for _, b := range bounds[1:] {
		if b.pos != dedup[len(dedup)-1].pos {
			dedup = append(dedup, b)
		}
	}
	return dedup
}

// unitsFromParagraphs is the no-marker fallback: a blank-line paragraph
// split when at least three paragraphs exist, else one unit holding the
// whole text.
func unitsFromParagraphs(text string) []state.MicroUnit {
	paragraphs := splitParagraphs(text)
	if len(paragraphs) < 3 {
		return []state.MicroUnit{{
			Content:              text,
			UnitNumber:           1,
			EstimatedTimeMinutes: defaultUnitMinutes,
		}}
	}

	units := make([]state.MicroUnit, len(paragraphs))
	for i, p := range paragraphs {
		units[i] = state.MicroUnit{
			Content:              p,
			UnitNumber:           i + 1,
			EstimatedTimeMinutes: defaultUnitMinutes,
		}
	}
	return units
}

func splitParagraphs(text string) []string {
	var out []string
	for _, p := range regexp.MustCompile(`\n\s*\n`).Split(text, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseBlock extracts the labeled sections from one unit block and
// strips them from the content. Labels are matched line by line; a
// label's list items run until the next blank line or the next label,
// so two labels without a blank line between them parse best-effort.
func parseBlock(block string) state.MicroUnit {
	unit := state.MicroUnit{EstimatedTimeMinutes: 0}

	var contentLines []string
	var listLines []string
	listTarget := "" // "key_points" or "questions"

	flush := func() {
		if listTarget == "" {
			return
		}
		items := parseListItems(listLines)
		switch listTarget {
		case "key_points":
			unit.KeyPoints = append(unit.KeyPoints, items...)
		case "questions":
			unit.CheckQuestions = append(unit.CheckQuestions, items...)
		}
		listLines = nil
		listTarget = ""
	}

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := objectiveLabelRe.FindStringSubmatch(line); m != nil {
			flush()
			unit.LearningObjective = strings.TrimSpace(m[1])
			continue
		}
		if m := timeLabelRe.FindStringSubmatch(line); m != nil {
			flush()
			if unit.EstimatedTimeMinutes == 0 {
				unit.EstimatedTimeMinutes = extractMinutes(m[1])
			}
			continue
		}
		if m := keyPointsLabelRe.FindStringSubmatch(line); m != nil {
			flush()
			listTarget = "key_points"
			if inline := strings.TrimSpace(m[1]); inline != "" {
				listLines = append(listLines, inline)
			}
			continue
		}
		if m := questionsLabelRe.FindStringSubmatch(line); m != nil {
			flush()
			listTarget = "questions"
			if inline := strings.TrimSpace(m[1]); inline != "" {
				listLines = append(listLines, inline)
			}
			continue
		}

		if listTarget != "" {
			if trimmed == "" {
				flush()
				continue
			}
			listLines = append(listLines, line)
			continue
		}

		contentLines = append(contentLines, line)
	}
	flush()

	unit.Content = strings.TrimSpace(strings.Join(contentLines, "\n"))

	// A time label without a parseable number still defaults.
	if unit.EstimatedTimeMinutes <= 0 {
		unit.EstimatedTimeMinutes = defaultUnitMinutes
	}

	return unit
}

// parseListItems interprets collected label lines as a bullet list, a
// numbered list, or plain line-separated items, in that priority.
func parseListItems(lines []string) []string {
	var bullets, numbered, plain []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			bullets = append(bullets, strings.TrimSpace(m[1]))
			continue
		}
		if m := numberedRe.FindStringSubmatch(line); m != nil {
			numbered = append(numbered, strings.TrimSpace(m[1]))
			continue
		}
		plain = append(plain, trimmed)
	}

	switch {
	case len(bullets) > 0:
		return bullets
	case len(numbered) > 0:
		return numbered
	default:
		return plain
	}
}

func extractMinutes(s string) int {
	if m := minutesRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	// A bare number on the time label line counts too.
	if m := regexp.MustCompile(`(\d+)`).FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}
