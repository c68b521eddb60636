// Package termsize resolves how many terminal columns are available for
// formatted output.
package termsize

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultMargin is the safety margin subtracted from a detected terminal
// width before it is offered to the formatter.
const DefaultMargin = 10

// Unknown is returned when no terminal width can be determined.
const Unknown = 0

// Columns returns the terminal width of stdout, or Unknown. Detection
// order: TTY size via the terminal driver, then the COLUMNS environment
// variable for headless hosts that export one.
func Columns() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
			return w
		}
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return Unknown
}

// Available converts a raw column count into the width available for
// content by subtracting margin. Unknown stays Unknown, and a margin that
// consumes the whole terminal also yields Unknown rather than a negative
// width, which degrades to pass-through.
func Available(columns, margin int) int {
	if columns <= 0 {
		return Unknown
	}
	if margin < 0 {
		margin = 0
	}
	if avail := columns - margin; avail > 0 {
		return avail
	}
	return Unknown
}
