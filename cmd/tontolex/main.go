// SPDX-License-Identifier: MIT

// Command tontolex tokenizes ontology sources, printing their items & illegal characters.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/tontolex/batch"
	"gitlab.com/fisherprime/tontolex/lexer"
)

type cli struct {
	Files   []string `arg:"" type:"existingfile" help:"Source files to tokenize"`
	Workers int      `help:"Number of files tokenized concurrently" default:"4" env:"TONTOLEX_WORKERS"`
	Debug   bool     `help:"Log every emitted item"`
	Quiet   bool     `help:"Only report illegal characters"`
	Strict  bool     `help:"Exit with a non-zero status on illegal characters"`
}

func main() {
	var params cli
	kong.Parse(&params, kong.Description("Lexical analyzer for ontology models."))

	logger := logrus.New()
	if params.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	failed, err := run(context.Background(), params, os.Stdout, logger)
	if err != nil {
		logger.Fatal(err)
	}
	if failed && params.Strict {
		os.Exit(1)
	}
}

func run(ctx context.Context, params cli, out io.Writer, logger logrus.FieldLogger) (failed bool, err error) {
	sources := make([]batch.Source, len(params.Files))
	for index, path := range params.Files {
		var text []byte
		if text, err = os.ReadFile(path); err != nil {
			return
		}
		sources[index] = batch.Source{Name: path, Text: string(text)}
	}

	results, err := batch.Tokenize(ctx, sources,
		batch.WithWorkers(params.Workers), batch.WithLogger(logger), batch.WithDebug(params.Debug))
	if err != nil {
		return
	}

	return report(results, params.Quiet, out, logger)
}

// report logs every result's failures & prints its items; a failed source doesn't stop the rest.
func report(results []batch.Result, quiet bool, out io.Writer, logger logrus.FieldLogger) (failed bool, err error) {
	for _, result := range results {
		if result.Err != nil {
			logger.WithField("file", result.Name).Error(result.Err)
			failed = true
			continue
		}

		for _, d := range result.Diagnostics {
			logger.WithFields(logrus.Fields{
				"file":   result.Name,
				"line":   d.Line,
				"column": d.Col,
			}).Warn(d.Error())
		}
		failed = failed || result.Failed()

		if quiet {
			continue
		}
		if err = printItems(out, result.Name, result.Items); err != nil {
			return
		}
	}

	return
}

func printItems(out io.Writer, name string, items []lexer.Item) error {
	w := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)

	fmt.Fprintf(w, "== %s\n", name)
	fmt.Fprintln(w, "Type\t| Lexeme\t| Line\t| Col")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t| %s\t| %d\t| %d\n", item.ID, item.Val, item.Line, item.Col)
	}

	return w.Flush()
}
