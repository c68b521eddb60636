package tables

import (
	"regexp"
	"strings"
)

var (
	fenceRe         = regexp.MustCompile("^\\s*(`{3,}|~{3,})")
	separatorCellRe = regexp.MustCompile(`^\s*:?-+:?\s*$`)
)

// isFence reports whether line opens or closes a fenced code block.
// Backtick and tilde fences share one toggle: lenient renderers let either
// flavor close the other, and so does the scanner.
func isFence(line string) bool {
	return fenceRe.MatchString(line)
}

// isRowCandidate reports whether line has the pipe-delimited row shape:
// after trimming it starts and ends with a pipe and splitting on pipes
// yields more than two parts.
func isRowCandidate(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "|") || !strings.HasSuffix(trimmed, "|") {
		return false
	}
	return len(strings.Split(trimmed, "|")) > 2
}

// splitCells splits a row into trimmed cell values, dropping the empty
// fields produced by the leading and trailing pipes.
func splitCells(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}

// isSeparatorRow reports whether every cell is a dashes-and-optional-colons
// alignment cell, e.g. "---", ":--", "--:", ":-:".
func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if !separatorCellRe.MatchString(cell) {
			return false
		}
	}
	return true
}

// validBlock reports whether a run of candidate rows forms a well-formed
// table: at least two rows, a consistent non-zero cell count, and at least
// one separator row somewhere in the block.
func validBlock(lines []string) bool {
	if len(lines) < 2 {
		return false
	}
	columns := -1
	hasSeparator := false
	for _, line := range lines {
		cells := splitCells(line)
		if len(cells) == 0 {
			return false
		}
		if columns == -1 {
			columns = len(cells)
		} else if len(cells) != columns {
			return false
		}
		if isSeparatorRow(cells) {
			hasSeparator = true
		}
	}
	return hasSeparator
}
