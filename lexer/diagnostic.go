// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
)

// Diagnostic records a character that no rule matched.
//
// Diagnostics are informational, the scan resumes after the offending character.
type Diagnostic struct {
	Char rune // The unmatched character, utf8.RuneError for an invalid byte
	Pos  int  // The position, (in bytes) of the character
	Line int
	Col  int
}

// Scanning errors.
var (
	ErrIllegalCharacter = errors.New("illegal character")
)

// Error is the error interface implementation for Diagnostic.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s %q at %d:%d", ErrIllegalCharacter, d.Char, d.Line, d.Col)
}

// Unwrap allows errors.Is(d, ErrIllegalCharacter).
func (d Diagnostic) Unwrap() error { return ErrIllegalCharacter }
