// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	Config struct {
		Logger logrus.FieldLogger

		// Table holds the rules & reserved words; shared, never mutated.
		Table *Table

		// OnDiagnostic is called for every unmatched character, as it is encountered.
		OnDiagnostic func(Diagnostic)

		Debug bool
	}
)

// DefaultConfig configures the lexer's Config.
func DefaultConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Table:  DefaultTable(),
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.Table == nil {
		c.Table = DefaultTable()
	}
}
