// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/tontolex/batch"
	"gitlab.com/fisherprime/tontolex/lexer"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()

	clean := filepath.Join(dir, "clean.tonto")
	if err := os.WriteFile(clean, []byte("kind Paciente\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	dirty := filepath.Join(dir, "dirty.tonto")
	if err := os.WriteFile(dirty, []byte("kind # Paciente\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		params     cli
		wantFailed bool
		wantOut    []string
		wantLog    []string
	}{
		{
			name:    "clean",
			params:  cli{Files: []string{clean}, Workers: 2},
			wantOut: []string{"== " + clean, "KIND", "CLASS_NAME", "Paciente"},
		},
		{
			name:       "illegal character",
			params:     cli{Files: []string{clean, dirty}, Workers: 2},
			wantFailed: true,
			wantOut:    []string{"== " + dirty},
			wantLog:    []string{"illegal character '#' at 1:6", "file=" + dirty},
		},
		{
			name:       "quiet",
			params:     cli{Files: []string{dirty}, Quiet: true},
			wantFailed: true,
			wantLog:    []string{"illegal character"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, log strings.Builder

			logger := logrus.New()
			logger.SetOutput(&log)
			logger.SetFormatter(&logrus.TextFormatter{DisableQuote: true, DisableTimestamp: true})

			failed, err := run(context.Background(), tt.params, &out, logger)
			if err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if failed != tt.wantFailed {
				t.Errorf("run() failed = %v, want %v", failed, tt.wantFailed)
			}

			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Errorf("run() output lacks %q:\n%s", want, out.String())
				}
			}
			if tt.params.Quiet && out.Len() > 0 {
				t.Errorf("run() quiet output = %q, want none", out.String())
			}
			for _, want := range tt.wantLog {
				if !strings.Contains(log.String(), want) {
					t.Errorf("run() log lacks %q:\n%s", want, log.String())
				}
			}
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	_, err := run(context.Background(), cli{Files: []string{filepath.Join(t.TempDir(), "missing")}}, new(strings.Builder), logrus.New())
	if !os.IsNotExist(err) {
		t.Errorf("run() error = %v, want a missing file", err)
	}
}

func TestReport_FailedSource(t *testing.T) {
	var out, log strings.Builder

	logger := logrus.New()
	logger.SetOutput(&log)
	logger.SetFormatter(&logrus.TextFormatter{DisableQuote: true, DisableTimestamp: true})

	items, _ := lexer.Tokenize("kind Paciente")
	results := []batch.Result{
		{Name: "broken.tonto", Err: errors.New("worker pool failure")},
		{Name: "clean.tonto", Items: items},
	}

	failed, err := report(results, false, &out, logger)
	if err != nil {
		t.Fatalf("report() error = %v", err)
	}
	if !failed {
		t.Error("report() failed = false, want true")
	}

	if !strings.Contains(log.String(), "file=broken.tonto") || !strings.Contains(log.String(), "worker pool failure") {
		t.Errorf("report() log lacks the failed source:\n%s", log.String())
	}
	if strings.Contains(out.String(), "== broken.tonto") {
		t.Errorf("report() printed the failed source:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "== clean.tonto") || !strings.Contains(out.String(), "Paciente") {
		t.Errorf("report() output lacks the sources following the failure:\n%s", out.String())
	}
}
