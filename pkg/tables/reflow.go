package tables

import "strings"

// DefaultRuleChar is the box-drawing character used for the horizontal
// rule between stacked cards.
const DefaultRuleChar = "─"

// stack renders one card per data row: a "**header**: value" line per
// column, with a horizontal rule between adjacent cards (none before the
// first or after the last). Rows shorter than the header get empty values.
//
// The rule spans the widest card line, capped at the available width. Card
// line width is measured as displayWidth(header) + 2 + displayWidth(value),
// the "+2" being the ": " separator; the bold markers are concealed by the
// measurer and contribute nothing.
func (tr *transformer) stack(t Table) []string {
	cards := make([][]string, 0, len(t.DataRows))
	maxLineWidth := 0
	for _, row := range t.DataRows {
		card := make([]string, 0, len(t.Headers))
		for col, header := range t.Headers {
			value := ""
			if col < len(row) {
				value = row[col]
			}
			card = append(card, "**"+header+"**: "+value)
			if w := tr.measurer.Width(header) + 2 + tr.measurer.Width(value); w > maxLineWidth {
				maxLineWidth = w
			}
		}
		cards = append(cards, card)
	}

	ruleWidth := maxLineWidth
	if tr.width < ruleWidth {
		ruleWidth = tr.width
	}
	rule := strings.Repeat(tr.ruleChar, ruleWidth)

	out := make([]string, 0, len(cards)*(len(t.Headers)+1))
	for i, card := range cards {
		if i > 0 {
			out = append(out, rule)
		}
		out = append(out, card...)
	}
	return out
}
