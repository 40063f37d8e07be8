// SPDX-License-Identifier: MIT
package batch

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/tontolex/lexer"
)

func TestTokenize(t *testing.T) {
	sources := make([]Source, 0, 64)
	for index := 0; index < cap(sources); index++ {
		sources = append(sources, Source{
			Name: fmt.Sprintf("unit%d.tonto", index),
			Text: fmt.Sprintf("package Unit%d\nkind Car%s\nrole Driver # %d", index, "Rental", index),
		})
	}

	results, err := Tokenize(context.Background(), sources, WithWorkers(4), WithLogger(logrus.New()))
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	if len(results) != len(sources) {
		t.Fatalf("Tokenize() results = %d, want %d", len(results), len(sources))
	}

	for index, result := range results {
		if result.Name != sources[index].Name {
			t.Errorf("result %d name = %s, want %s", index, result.Name, sources[index].Name)
		}

		wantItems, wantDiagnostics := lexer.Tokenize(sources[index].Text)
		if !reflect.DeepEqual(result.Items, wantItems) {
			t.Errorf("result %d items = %+v, want %+v", index, result.Items, wantItems)
		}
		if !reflect.DeepEqual(result.Diagnostics, wantDiagnostics) {
			t.Errorf("result %d diagnostics = %+v, want %+v", index, result.Diagnostics, wantDiagnostics)
		}
		if !result.Failed() || result.Err != nil {
			t.Errorf("result %d Failed() = %v, Err = %v; want the '#' diagnostic only", index, result.Failed(), result.Err)
		}
	}
}

func TestTokenize_Empty(t *testing.T) {
	results, err := Tokenize(context.Background(), nil)
	if err != nil || len(results) != 0 {
		t.Errorf("Tokenize() = %+v, %v; want no results", results, err)
	}
}

func TestTokenize_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Tokenize(ctx, []Source{{Name: "a", Text: "kind A"}, {Name: "b", Text: "kind B"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Tokenize() error = %v, want %v", err, context.Canceled)
	}

	for _, result := range results {
		if !errors.Is(result.Err, context.Canceled) || len(result.Items) > 0 {
			t.Errorf("result %s = %+v, want a cancelled result", result.Name, result)
		}
	}
}

func TestTokenize_Panic(t *testing.T) {
	table := lexer.MustTable([]lexer.Rule{{
		Name:    "boom",
		Tier:    lexer.TierSymbol,
		Matcher: lexer.Literal("!"),
		Transform: func(string) (lexer.ItemID, any, bool) {
			panic("boom")
		},
	}}, nil)

	results, err := Tokenize(context.Background(), []Source{{Name: "ok", Text: "?"}, {Name: "bad", Text: "!"}},
		WithTable(table), WithWorkers(1))
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	if results[0].Err != nil || len(results[0].Diagnostics) != 1 {
		t.Errorf("result ok = %+v, want a single diagnostic", results[0])
	}
	if !errors.Is(results[1].Err, ErrPanicked) || !results[1].Failed() {
		t.Errorf("result bad = %+v, want ErrPanicked", results[1])
	}
}
