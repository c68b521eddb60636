// Package textwidth measures the rendered terminal width of markdown text.
//
// A terminal markdown renderer conceals most inline syntax: **bold** shows
// as "bold", [text](url) as "text (url)", and `code` literally. Width here
// means the number of terminal columns the rendered form occupies, with
// Unicode wide and combining characters accounted for by go-runewidth.
package textwidth

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColumnsFunc computes the number of terminal columns a string occupies.
// It is the authority on Unicode width; this package never carries its own
// width tables.
type ColumnsFunc func(string) int

// maxConcealPasses bounds the fixed-point rewrite loop. Emphasis nested
// deeper than this renders literally, which only over-counts the width.
const maxConcealPasses = 16

var (
	codeSpanRe       = regexp.MustCompile("`[^`]+`")
	tripleEmphasisRe = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	boldRe           = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe         = regexp.MustCompile(`\*([^*]+)\*`)
	strikethroughRe  = regexp.MustCompile(`~~([^~]+)~~`)
	imageRe          = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)
	linkRe           = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
)

// Measurer computes rendered widths under concealment semantics, memoizing
// results in a Cache keyed by the unmodified input line.
type Measurer struct {
	cache   *Cache
	columns ColumnsFunc
}

// NewMeasurer creates a Measurer backed by the given cache and using
// go-runewidth as the column-width primitive. A nil cache gets a fresh one
// with default bounds.
func NewMeasurer(cache *Cache) *Measurer {
	return NewMeasurerWithColumns(cache, runewidth.StringWidth)
}

// NewMeasurerWithColumns creates a Measurer with an explicit column-width
// primitive. Useful for tests and hosts with their own width routine.
func NewMeasurerWithColumns(cache *Cache, columns ColumnsFunc) *Measurer {
	if cache == nil {
		cache = NewCache(0, 0)
	}
	if columns == nil {
		columns = runewidth.StringWidth
	}
	return &Measurer{cache: cache, columns: columns}
}

// Cache returns the cache this measurer writes through.
func (m *Measurer) Cache() *Cache {
	return m.cache
}

// Width returns the number of terminal columns line occupies once a
// renderer has concealed its inline markdown syntax.
func (m *Measurer) Width(line string) int {
	if w, ok := m.cache.lookup(line); ok {
		return w
	}
	w := m.columns(Conceal(line))
	m.cache.store(line, w)
	return w
}

// Conceal rewrites line into what a renderer would actually display.
//
// Code spans are extracted first so that emphasis rewrites cannot fire on
// markers inside them; their literal content (without backticks) is
// restored afterwards and counts at full width. The remaining text is
// rewritten to a fixed point so nested and adjacent emphasis all collapse.
// Unmatched markers simply never match and stay visible, which is the
// intended fallback for malformed input.
func Conceal(line string) string {
	var spans []string
	text := codeSpanRe.ReplaceAllStringFunc(line, func(match string) string {
		spans = append(spans, match[1:len(match)-1])
		return placeholder(len(spans) - 1)
	})

	for pass := 0; pass < maxConcealPasses; pass++ {
		rewritten := tripleEmphasisRe.ReplaceAllString(text, "$1")
		rewritten = boldRe.ReplaceAllString(rewritten, "$1")
		rewritten = italicRe.ReplaceAllString(rewritten, "$1")
		rewritten = strikethroughRe.ReplaceAllString(rewritten, "$1")
		rewritten = imageRe.ReplaceAllString(rewritten, "$1")
		rewritten = linkRe.ReplaceAllString(rewritten, "$1 ($2)")
		if rewritten == text {
			break
		}
		text = rewritten
	}

	for i, span := range spans {
		text = strings.Replace(text, placeholder(i), span, 1)
	}
	return text
}

// placeholder builds a token that survives the emphasis rewrites untouched.
// NUL never appears in markdown text, so collisions with document content
// are not a concern.
func placeholder(i int) string {
	return fmt.Sprintf("\x00%d\x00", i)
}
