// Package pipeline hosts the text-output hook that reflows markdown
// tables before generated text reaches the user.
//
// The hook is fail-open: formatting must never block delivery of the
// underlying text, so any internal failure returns the input verbatim.
package pipeline

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mrm007/opencode-responsive-tables/internal/logging"
	"github.com/mrm007/opencode-responsive-tables/pkg/tables"
	"github.com/mrm007/opencode-responsive-tables/pkg/termsize"
	"github.com/mrm007/opencode-responsive-tables/pkg/textwidth"
)

// WidthFunc yields the width currently available for output, or
// termsize.Unknown. It is consulted once per Process call.
type WidthFunc func() int

// Options configure a Stage.
type Options struct {
	// Width supplies the available width. Nil uses the stdout terminal
	// size with the default safety margin.
	Width WidthFunc

	// Measurer overrides the width measurer. Nil builds one over Cache.
	Measurer *textwidth.Measurer

	// Cache backs the default measurer. Nil gets default bounds.
	// Ignored when Measurer is set.
	Cache *textwidth.Cache

	// RuleChar draws the horizontal rule between stacked cards.
	RuleChar string

	// Logger receives debug output. Nil uses the package default.
	Logger *log.Logger
}

// Stage is a single reflow step in a host text pipeline. A Stage owns its
// width cache, so hosts that process documents concurrently should give
// each execution context its own Stage or share one cache deliberately.
type Stage struct {
	width    WidthFunc
	measurer *textwidth.Measurer
	ruleChar string
	logger   *log.Logger
}

// New creates a Stage, filling in defaults for any unset option.
func New(opts Options) *Stage {
	width := opts.Width
	if width == nil {
		width = func() int {
			return termsize.Available(termsize.Columns(), termsize.DefaultMargin)
		}
	}
	measurer := opts.Measurer
	if measurer == nil {
		measurer = textwidth.NewMeasurer(opts.Cache)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Stage{
		width:    width,
		measurer: measurer,
		ruleChar: opts.RuleChar,
		logger:   logger,
	}
}

// Process rewrites text so oversized tables stack vertically, returning
// the input unchanged if anything at all goes wrong. This is the single
// guarded fail-open boundary; the core itself carries no recovery logic.
func (s *Stage) Process(text string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Debug("table reflow skipped",
				logging.FieldError, fmt.Sprint(r),
			)
			out = text
		}
	}()

	width := s.width()
	result, stats := tables.Transform(text, tables.Options{
		Width:    width,
		Measurer: s.measurer,
		RuleChar: s.ruleChar,
	})
	s.measurer.Cache().FinishOp()

	if stats.Stacked > 0 {
		s.logger.Debug("reflowed tables",
			logging.FieldWidth, width,
			logging.FieldTables, stats.Tables,
			logging.FieldStacked, stats.Stacked,
		)
	}
	return result
}
