// SPDX-License-Identifier: MIT

// Package batch tokenizes several sources concurrently, sharing a single lexer.Table.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/tontolex/lexer"
)

type (
	// Source is a named source unit, already decoded.
	Source struct {
		Name string
		Text string
	}

	// Result holds the outcome of tokenizing a Source.
	Result struct {
		Err         error
		Name        string
		Items       []lexer.Item
		Diagnostics []lexer.Diagnostic
	}

	// Config defines configuration options for a Tokenize operation.
	Config struct {
		Logger logrus.FieldLogger
		Table  *lexer.Table

		// Workers caps the number of concurrent sessions.
		Workers int
		Debug   bool
	}

	// Option defines the Tokenize functional option type.
	Option func(*Config)

	job struct {
		ctx    context.Context
		cfg    *Config
		lexCfg *lexer.Config
		source Source
		result *Result
		wg     *sync.WaitGroup
	}
)

// Batch errors.
var (
	ErrPool     = errors.New("worker pool failure")
	ErrPanicked = errors.New("recovery from panic")
)

// DefaultConfig obtains the package's default Config.
func DefaultConfig() *Config {
	return &Config{
		Logger:  logrus.New(),
		Table:   lexer.DefaultTable(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.Table == nil {
		c.Table = lexer.DefaultTable()
	}
	if c.Workers < 1 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
}

// WithWorkers configures the workers option.
func WithWorkers(n int) Option { return func(c *Config) { c.Workers = n } }

// WithTable configures the rule table option.
func WithTable(t *lexer.Table) Option { return func(c *Config) { c.Table = t } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// Failed reports whether the Source had unmatched characters or wasn't tokenized.
func (r *Result) Failed() bool { return r.Err != nil || len(r.Diagnostics) > 0 }

// Tokenize runs a lexer session per Source on a worker pool.
//
// Results are in the order of sources. On context cancellation, the sources not yet tokenized
// carry the context's error & it is returned.
func Tokenize(ctx context.Context, sources []Source, opts ...Option) (results []Result, err error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Validate()

	results = make([]Result, len(sources))
	if len(sources) < 1 {
		return
	}

	pool, err := ants.NewPoolWithFunc(cfg.Workers, func(arg interface{}) {
		arg.(*job).run()
	}, ants.WithLogger(cfg.Logger))
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrPool, err)
		return
	}
	defer pool.Release()

	// Shared by every session; each one only overrides the logger.
	lexCfg := &lexer.Config{Table: cfg.Table, Debug: cfg.Debug, Logger: cfg.Logger}

	wg := new(sync.WaitGroup)
	for index := range sources {
		results[index].Name = sources[index].Name

		select {
		case <-ctx.Done():
			results[index].Err = ctx.Err()
			continue
		default:
		}

		wg.Add(1)
		j := &job{ctx: ctx, cfg: cfg, lexCfg: lexCfg, source: sources[index], result: &results[index], wg: wg}
		if invokeErr := pool.Invoke(j); invokeErr != nil {
			wg.Done()
			results[index].Err = fmt.Errorf("%w: %v", ErrPool, invokeErr)
		}
	}
	wg.Wait()

	if cfg.Debug {
		cfg.Logger.Debugf("batch: tokenized %d source(s) on %d worker(s)", len(sources), cfg.Workers)
	}

	err = ctx.Err()

	return
}

func (j *job) run() {
	defer j.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			j.result.Err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()

	select {
	case <-j.ctx.Done():
		j.result.Err = j.ctx.Err()
		return
	default:
	}

	l := lexer.New(j.source.Text,
		lexer.WithConfig(*j.lexCfg),
		lexer.WithLogger(j.cfg.Logger.WithField("source", j.source.Name)),
	)
	for item := range l.All() {
		j.result.Items = append(j.result.Items, item)
	}
	j.result.Diagnostics = l.Diagnostics()
}
