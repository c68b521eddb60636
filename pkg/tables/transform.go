// Package tables detects markdown pipe tables in a document and reflows
// the ones too wide for the terminal into stacked key/value cards.
//
// Tables that fit the available width, blocks that are not well-formed
// tables, and anything inside fenced code blocks pass through unchanged.
// Transform is total over its input: no document content is ever dropped
// or rejected.
package tables

import (
	"strings"

	"github.com/mrm007/opencode-responsive-tables/pkg/textwidth"
)

// Unbounded is the width used when no terminal width is known. Every table
// passes through at unbounded width.
const Unbounded = 0

// Options configure a document transformation.
type Options struct {
	// Width is the number of columns available for output. Unbounded (or
	// any non-positive value) disables stacking entirely.
	Width int

	// Measurer computes rendered line widths. Nil uses a process-wide
	// shared measurer with default cache bounds.
	Measurer *textwidth.Measurer

	// RuleChar draws the horizontal rule between stacked cards.
	// Defaults to DefaultRuleChar.
	RuleChar string
}

// Stats reports what one transformation did.
type Stats struct {
	// Tables counts validated tables encountered.
	Tables int
	// Stacked counts tables rewritten into cards.
	Stacked int
}

var sharedMeasurer = textwidth.NewMeasurer(nil)

type transformer struct {
	width    int
	measurer *textwidth.Measurer
	ruleChar string
	stats    Stats
}

// Transform rewrites doc so that pipe tables wider than opts.Width become
// stacked cards. Every input line maps to one or more output lines.
func Transform(doc string, opts Options) (string, Stats) {
	tr := &transformer{
		width:    opts.Width,
		measurer: opts.Measurer,
		ruleChar: opts.RuleChar,
	}
	if tr.measurer == nil {
		tr.measurer = sharedMeasurer
	}
	if tr.ruleChar == "" {
		tr.ruleChar = DefaultRuleChar
	}

	lines := strings.Split(doc, "\n")
	out := make([]string, 0, len(lines))
	var run []string
	inFence := false

	flush := func() {
		if len(run) == 0 {
			return
		}
		out = append(out, tr.processRun(run)...)
		run = run[:0]
	}

	for _, line := range lines {
		if isFence(line) {
			// A fence line is never a row candidate, so it also terminates
			// any pending run: a table cannot span a fence boundary.
			flush()
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if !inFence && isRowCandidate(line) {
			run = append(run, line)
			continue
		}
		flush()
		out = append(out, line)
	}
	flush()

	return strings.Join(out, "\n"), tr.stats
}

// processRun resolves one maximal run of candidate rows: invalid blocks
// pass through raw, valid ones are parsed and either kept (they fit, have
// no data rows, or width is unbounded) or stacked.
func (tr *transformer) processRun(run []string) []string {
	if !validBlock(run) {
		return run
	}
	tr.stats.Tables++

	t := parseBlock(run)
	if tr.width <= Unbounded || len(t.DataRows) == 0 {
		return run
	}

	// The decision measures the raw block lines as written, separator
	// included, not a reconstruction.
	tableWidth := 0
	for _, line := range run {
		if w := tr.measurer.Width(line); w > tableWidth {
			tableWidth = w
		}
	}
	if tableWidth <= tr.width {
		return run
	}

	tr.stats.Stacked++
	return tr.stack(t)
}
