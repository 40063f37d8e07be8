// SPDX-License-Identifier: MIT
package lexer

// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

// Lexer defines a scanning session over a single source.
//
// A Lexer is not safe for concurrent use; sessions sharing a Table are.
type Lexer struct {
	cfg *Config

	// source is the input source.
	source string

	// pos is the cursor, (in bytes).
	pos int
	// line is the 1-based line of the cursor.
	line int
	// lineStart is the position following the last newline before the cursor.
	lineStart int

	diagnostics []Diagnostic

	itemCounter int
}

// New creates a new scanner for the input string
func New(source string, opts ...Option) *Lexer {
	return &Lexer{
		cfg:    newConfig(opts),
		source: source,
		line:   1,
	}
}

// Reset re-initializes the Lexer with a new source, retaining its Config.
func (l *Lexer) Reset(source string) {
	l.source = source
	l.pos, l.line, l.lineStart = 0, 1, 0
	l.diagnostics = nil
	l.itemCounter = 0
}

// Tokenize scans the whole source, returning its Items (without ItemEOF) & Diagnostics.
func Tokenize(source string, opts ...Option) (items []Item, diagnostics []Diagnostic) {
	l := New(source, opts...)
	for item := range l.All() {
		items = append(items, item)
	}

	return items, l.Diagnostics()
}

// Items returns a sequence of the source's Items, a fresh session is used for every iteration.
func Items(source string, opts ...Option) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		New(source, opts...).All()(yield)
	}
}

// All returns a sequence of the remaining Items, ending before ItemEOF.
//
// Abandoning the sequence leaves the Lexer positioned after the last yielded Item.
func (l *Lexer) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for {
			item := l.Next()
			if item.ID == ItemEOF || !yield(item) {
				return
			}
		}
	}
}

// Next returns the next Item from the source; ItemEOF once the source is exhausted.
func (l *Lexer) Next() (item Item) {
	for l.pos < len(l.source) {
		start := l.pos
		r, n, id, value := l.cfg.Table.match(l.source[start:])
		if r == nil {
			l.illegal()
			continue
		}

		line, col := l.line, l.column(start)
		l.advance(n)
		if r.Discard {
			continue
		}

		item = Item{ID: id, Val: l.source[start : start+n], Value: value, Pos: start, Line: line, Col: col}
		l.itemCounter++

		if l.cfg.Debug {
			// Debug operation makes this operation un-inlinable.
			l.cfg.Logger.Debugf("lexer emit (%s): %s", r.Name, spew.Sdump(item))
		}

		return
	}

	return Item{ID: ItemEOF, Pos: l.pos, Line: l.line, Col: l.column(l.pos)}
}

// Diagnostics retrieves the unmatched characters encountered so far.
func (l *Lexer) Diagnostics() []Diagnostic { return l.diagnostics }

// ItemCount obtains the number of Items emitted so far.
func (l *Lexer) ItemCount() int { return l.itemCounter }

// DiagnosticCount obtains the number of Diagnostics recorded so far.
func (l *Lexer) DiagnosticCount() int { return len(l.diagnostics) }

// Config retrieves the Lexer's Config.
func (l *Lexer) Config() *Config { return l.cfg }

// illegal records the character at the cursor & steps over it.
func (l *Lexer) illegal() {
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	d := Diagnostic{Char: r, Pos: l.pos, Line: l.line, Col: l.column(l.pos)}

	l.diagnostics = append(l.diagnostics, d)
	if l.cfg.Debug {
		l.cfg.Logger.Debugf("lexer: %v", d)
	}
	if l.cfg.OnDiagnostic != nil {
		l.cfg.OnDiagnostic(d)
	}

	l.advance(size)
}

// advance moves the cursor n bytes, counting the newlines stepped over.
func (l *Lexer) advance(n int) {
	span := l.source[l.pos : l.pos+n]
	if count := strings.Count(span, "\n"); count > 0 {
		l.line += count
		l.lineStart = l.pos + strings.LastIndexByte(span, '\n') + 1
	}
	l.pos += n
}

// column computes the 1-based rune column of pos, which must be on the cursor's line.
func (l *Lexer) column(pos int) int {
	return utf8.RuneCountInString(l.source[l.lineStart:pos]) + 1
}
