package tables

// Table is a parsed pipe table: the header row plus the data rows in
// document order. The separator row is discarded during parsing.
type Table struct {
	Headers  []string
	DataRows [][]string
}

// parseBlock interprets a block that already passed validBlock. The first
// non-separator row becomes the header; every later non-separator row is
// data. A separator is skipped wherever it appears, not just in second
// position, so malformed input still parses deterministically.
func parseBlock(lines []string) Table {
	var t Table
	for _, line := range lines {
		cells := splitCells(line)
		if isSeparatorRow(cells) {
			continue
		}
		if t.Headers == nil {
			t.Headers = cells
			continue
		}
		t.DataRows = append(t.DataRows, cells)
	}
	return t
}
