// SPDX-License-Identifier: MIT
package lexer

import (
	"regexp"
)

type (
	// Matcher recognises a token shape at the start of its input.
	Matcher interface {
		// Match returns the length, (in bytes) of the match anchored at the start of src; 0 for
		// none.
		Match(src string) int
	}

	patternMatcher struct {
		re       *regexp.Regexp
		boundary bool
	}

	literalMatcher string

	runMatcher [256]bool
)

// isIdentChar reports whether b may continue an identifier.
func isIdentChar(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// Pattern creates a Matcher for a regular expression anchored at the start of the input.
//
// Panics on an invalid expression; patterns are package-level configuration.
func Pattern(expr string) Matcher {
	return &patternMatcher{re: regexp.MustCompile(`^(?:` + expr + `)`)}
}

// Word creates a Pattern Matcher that rejects matches followed by an identifier character.
//
// The identifier rules use it so that no rule claims a prefix of a longer word.
func Word(expr string) Matcher {
	return &patternMatcher{re: regexp.MustCompile(`^(?:` + expr + `)`), boundary: true}
}

// Literal creates a Matcher for some exact text.
func Literal(text string) Matcher { return literalMatcher(text) }

// Run creates a Matcher for one or more bytes from chars.
func Run(chars string) Matcher {
	var m runMatcher
	for index := 0; index < len(chars); index++ {
		m[chars[index]] = true
	}

	return &m
}

func (p *patternMatcher) Match(src string) int {
	loc := p.re.FindStringIndex(src)
	if loc == nil {
		return 0
	}

	if p.boundary && loc[1] < len(src) && isIdentChar(src[loc[1]]) {
		return 0
	}

	return loc[1]
}

// String returns the anchored expression.
func (p *patternMatcher) String() string { return p.re.String() }

func (l literalMatcher) Match(src string) int {
	if len(src) < len(l) || src[:len(l)] != string(l) {
		return 0
	}

	return len(l)
}

func (r *runMatcher) Match(src string) (n int) {
	for n < len(src) && r[src[n]] {
		n++
	}

	return
}
