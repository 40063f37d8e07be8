// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"math/big"
	"strconv"
)

type (
	// Tier orders groups of rules, from the most specific to the most generic.
	Tier int

	// Transform converts a lexeme into its ItemID & value.
	//
	// Returning ok == false declines the match, the next rule is tried instead.
	Transform func(lexeme string) (id ItemID, value any, ok bool)

	// Rule defines a single entry of the rule table.
	Rule struct {
		Matcher   Matcher
		Transform Transform

		Name string
		Tier Tier

		// ID is the resulting ItemID when no Transform is set.
		ID ItemID

		// Lookup resolves the ItemID through the reserved words, falling back to ID.
		Lookup bool

		// Discard consumes the match without producing an Item.
		Discard bool
	}
)

// Rule tiers, in evaluation order.
const (
	TierLiteral Tier = iota
	TierIdentifier
	TierSymbol
	TierLayout
)

// Identifier shapes, the catch-all shapes are used to resolve reserved words.
const (
	newDatatypeExpr = `[A-Za-z][A-Za-z0-9_]*DataType`
	instanceExpr    = `[A-Za-z][A-Za-z_]*[0-9]+`
	classExpr       = `[A-Z][A-Za-z0-9_]*`
	hyphenatedExpr  = `[a-z][A-Za-z]*(?:-[a-z][A-Za-z]*)+`
	relationExpr    = `[a-z_][A-Za-z0-9_]*`
)

var tierNames = [...]string{
	TierLiteral:    "literal",
	TierIdentifier: "identifier",
	TierSymbol:     "symbol",
	TierLayout:     "layout",
}

// String is the fmt.Stringer implementation for Tier.
func (t Tier) String() string {
	if t >= 0 && int(t) < len(tierNames) {
		return tierNames[t]
	}

	return fmt.Sprintf("Tier(%d)", int(t))
}

// DefaultRules returns the rule list of the ontology language, in priority order.
//
// A fresh slice is returned on every call; tables copy their rules.
func DefaultRules() []Rule {
	rules := []Rule{
		// The date & time shapes are mutually exclusive, the most structured is kept first.
		{Name: "datetime", Tier: TierLiteral, ID: ItemDatetimeLit, Transform: unquote(ItemDatetimeLit),
			Matcher: Pattern(`'[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}'`)},
		{Name: "date", Tier: TierLiteral, ID: ItemDateLit, Transform: unquote(ItemDateLit),
			Matcher: Pattern(`'[0-9]{4}-[0-9]{2}-[0-9]{2}'`)},
		{Name: "time", Tier: TierLiteral, ID: ItemTimeLit, Transform: unquote(ItemTimeLit),
			Matcher: Pattern(`'[0-9]{2}:[0-9]{2}:[0-9]{2}'`)},
		{Name: "integer", Tier: TierLiteral, ID: ItemIntegerLit, Transform: parseInteger,
			Matcher: Run("0123456789")},
		{Name: "string", Tier: TierLiteral, ID: ItemStringLit, Transform: unquote(ItemStringLit),
			Matcher: Pattern(`(?s)"(?:[^"\\]|\\.)*"`)},

		{Name: "new-datatype", Tier: TierIdentifier, ID: ItemNewDatatype, Matcher: Word(newDatatypeExpr)},
		{Name: "instance-name", Tier: TierIdentifier, ID: ItemInstanceName, Matcher: Word(instanceExpr)},
		{Name: "class-name", Tier: TierIdentifier, ID: ItemClassName, Matcher: Word(classExpr)},
		// Declines when the word isn't reserved, e.g. `intrinsic-modes`.
		{Name: "hyphenated-keyword", Tier: TierIdentifier, Lookup: true, Matcher: Word(hyphenatedExpr)},
		{Name: "relation-name", Tier: TierIdentifier, ID: ItemRelationName, Lookup: true,
			Matcher: Word(relationExpr)},
	}

	// Multi-character symbols precede their prefixes.
	symbols := []struct {
		text string
		id   ItemID
	}{
		{"<<>--", ItemArrowAggregation},
		{"<o>--", ItemArrowComposition},
		{"<>--", ItemArrowRL},
		{"--<>", ItemArrowLR},
		{"--", ItemDoubleHyphen},
		{"..", ItemDotDot},
		{"{", ItemLBrace},
		{"}", ItemRBrace},
		{"(", ItemLParen},
		{")", ItemRParen},
		{"[", ItemLBracket},
		{"]", ItemRBracket},
		{"*", ItemAsterisk},
		{"@", ItemAt},
		{":", ItemColon},
		{",", ItemComma},
		{".", ItemDot},
		{"-", ItemHyphen},
	}
	for _, sym := range symbols {
		rules = append(rules, Rule{Name: sym.text, Tier: TierSymbol, ID: sym.id, Matcher: Literal(sym.text)})
	}

	return append(rules,
		Rule{Name: "newline", Tier: TierLayout, Discard: true, Matcher: Run("\n")},
		Rule{Name: "whitespace", Tier: TierLayout, Discard: true, Matcher: Run(" \t\r")},
		Rule{Name: "line-comment", Tier: TierLayout, Discard: true, Matcher: Pattern(`//[^\n]*`)},
		Rule{Name: "block-comment", Tier: TierLayout, Discard: true, Matcher: Pattern(`(?s)/\*.*?\*/`)},
	)
}

// unquote strips the two delimiters; escapes are left as in the source.
func unquote(id ItemID) Transform {
	return func(lexeme string) (ItemID, any, bool) {
		return id, lexeme[1 : len(lexeme)-1], true
	}
}

// parseInteger drops leading zeros, falling back to a *big.Int past 64 bits.
func parseInteger(lexeme string) (ItemID, any, bool) {
	if n, err := strconv.ParseUint(lexeme, 10, 64); err == nil {
		return ItemIntegerLit, n, true
	}

	n, ok := new(big.Int).SetString(lexeme, 10)

	return ItemIntegerLit, n, ok
}
