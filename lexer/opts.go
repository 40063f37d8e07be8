// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

// Option defines the Lexer functional option type
type Option func(*Config)

// WithConfig replaces the Config wholesale; options following it still apply.
func WithConfig(cfg Config) Option { return func(c *Config) { *c = cfg } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithTable configures the rule table option.
func WithTable(t *Table) Option { return func(c *Config) { c.Table = t } }

// WithDiagnosticHandler configures a callback receiving diagnostics interleaved with the items.
func WithDiagnosticHandler(fn func(Diagnostic)) Option {
	return func(c *Config) { c.OnDiagnostic = fn }
}

func newConfig(opts []Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Validate()

	return cfg
}
