// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Table holds the ordered rules & the reserved words.
//
// Synchronization is unnecessary, a Table is never modified after NewTable returns.
type Table struct {
	rules    []Rule
	reserved map[string]ItemID
}

// Rule table errors.
var (
	ErrInvalidTable = errors.New("invalid rule table")

	ErrEmptyTable         = errors.New("no rules")
	ErrMissingMatcher     = errors.New("rule lacks a matcher")
	ErrDuplicateRule      = errors.New("duplicate rule name")
	ErrTierOrder          = errors.New("rule tier out of order")
	ErrShadowedRule       = errors.New("rule is shadowed by an earlier rule")
	ErrUndeclaredItem     = errors.New("undeclared item")
	ErrUnreachableKeyword = errors.New("reserved word can't be produced by the rules")
)

var defTable = MustTable(DefaultRules(), DefaultReserved())

// DefaultReserved returns the reserved words of the ontology language.
//
// Keys are matched by exact case.
func DefaultReserved() map[string]ItemID {
	return map[string]ItemID{
		// Class stereotypes.
		"event": ItemEvent, "situation": ItemSituation, "process": ItemProcess,
		"category": ItemCategory, "mixin": ItemMixin, "phaseMixin": ItemPhaseMixin,
		"roleMixin": ItemRoleMixin, "historicalRoleMixin": ItemHistoricalRoleMixin,
		"kind": ItemKind, "collective": ItemCollective, "quantity": ItemQuantity,
		"quality": ItemQuality, "mode": ItemMode, "intrinsic-mode": ItemIntrinsicMode,
		"extrinsic-mode": ItemExtrinsicMode, "subkind": ItemSubkind, "phase": ItemPhase,
		"role": ItemRole, "historicalRole": ItemHistoricalRole, "relator": ItemRelator,
		"type": ItemType,

		// Relation stereotypes.
		"material": ItemMaterial, "derivation": ItemDerivation, "comparative": ItemComparative,
		"mediation": ItemMediation, "characterization": ItemCharacterization,
		"externalDependence": ItemExternalDependence, "componentOf": ItemComponentOf,
		"memberOf": ItemMemberOf, "subCollectionOf": ItemSubCollectionOf,
		"subQualityOf": ItemSubQualityOf, "instantiation": ItemInstantiation,
		"termination": ItemTermination, "participational": ItemParticipational,
		"participation": ItemParticipation, "historicalDependence": ItemHistoricalDependence,
		"creation": ItemCreation, "manifestation": ItemManifestation,
		"bringsAbout": ItemBringsAbout, "triggers": ItemTriggers,
		"composition": ItemComposition, "aggregation": ItemAggregation,
		"inherence": ItemInherence, "value": ItemValue, "formal": ItemFormal,
		"constitution": ItemConstitution,

		// Structure.
		"genset": ItemGenset, "disjoint": ItemDisjoint, "complete": ItemComplete,
		"general": ItemGeneral, "specifics": ItemSpecifics, "where": ItemWhere,
		"package": ItemPackage, "class": ItemClass, "specializes": ItemSpecializes,
		"categorizer": ItemCategorizer, "import": ItemImport,
		"functional-complexes": ItemFunctionalComplexes, "instanceOf": ItemInstanceOf,
		"datatype": ItemDatatype, "enum": ItemEnum, "relation": ItemRelation, "of": ItemOf,
		"association": ItemAssociation,

		// Primitive types.
		"number": ItemNumberType, "string": ItemStringType, "boolean": ItemBooleanType,
		"date": ItemDateType, "time": ItemTimeType, "datetime": ItemDatetimeType,
		"int": ItemIntType,

		// Meta attributes.
		"ordered": ItemOrdered, "const": ItemConst, "derived": ItemDerived,
		"subsets": ItemSubsets, "redefines": ItemRedefines,

		"true": ItemBooleanLit, "false": ItemBooleanLit,
	}
}

// DefaultTable obtains the package's Table, built at initialisation.
func DefaultTable() *Table { return defTable }

// MustTable is NewTable panicking on an invalid table.
func MustTable(rules []Rule, reserved map[string]ItemID) *Table {
	t, err := NewTable(rules, reserved)
	if err != nil {
		panic(err)
	}

	return t
}

// NewTable validates & copies the rules and reserved words into a Table.
func NewTable(rules []Rule, reserved map[string]ItemID) (t *Table, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidTable, err)
			t = nil
		}
	}()

	t = &Table{
		rules:    slices.Clone(rules),
		reserved: maps.Clone(reserved),
	}
	if t.reserved == nil {
		t.reserved = make(map[string]ItemID)
	}

	if err = t.validateRules(); err != nil {
		return
	}
	err = t.validateReserved()

	return
}

func (t *Table) validateRules() error {
	if len(t.rules) < 1 {
		return ErrEmptyTable
	}

	names := make(map[string]struct{}, len(t.rules))
	for index := range t.rules {
		r := &t.rules[index]

		if r.Matcher == nil {
			return fmt.Errorf("%w: (%s)", ErrMissingMatcher, r.Name)
		}
		if _, ok := names[r.Name]; ok {
			return fmt.Errorf("%w: (%s)", ErrDuplicateRule, r.Name)
		}
		names[r.Name] = struct{}{}

		if index > 0 && r.Tier < t.rules[index-1].Tier {
			return fmt.Errorf("%w: (%s) %s after %s", ErrTierOrder, r.Name, r.Tier, t.rules[index-1].Tier)
		}

		if !r.Discard {
			if (r.ID != 0 && !r.ID.Valid()) || (r.ID == 0 && !r.Lookup && r.Transform == nil) {
				return fmt.Errorf("%w: (%s) produces %s", ErrUndeclaredItem, r.Name, r.ID)
			}
		}

		lit, ok := r.Matcher.(literalMatcher)
		if !ok {
			continue
		}

		// An earlier literal of the same tier that prefixes this one always wins.
		for prev := index - 1; prev >= 0 && t.rules[prev].Tier == r.Tier; prev-- {
			if earlier, ok := t.rules[prev].Matcher.(literalMatcher); ok && strings.HasPrefix(string(lit), string(earlier)) {
				return fmt.Errorf("%w: (%s) by (%s)", ErrShadowedRule, r.Name, t.rules[prev].Name)
			}
		}
	}

	return nil
}

func (t *Table) validateReserved() error {
	// Sorted for a deterministic error.
	words := maps.Keys(t.reserved)
	slices.Sort(words)

	for _, word := range words {
		id := t.reserved[word]
		if !id.Reserved() {
			return fmt.Errorf("%w: (%q) mapped to %s", ErrUndeclaredItem, word, id)
		}

		if r, ok := t.reachable(word); !ok {
			if r == nil {
				return fmt.Errorf("%w: (%q) matched by no rule", ErrUnreachableKeyword, word)
			}
			return fmt.Errorf("%w: (%q) claimed by %s (%s tier)", ErrUnreachableKeyword, word, r.Name, r.Tier)
		}
	}

	return nil
}

// reachable checks that the first rule matching word consumes it whole & performs a lookup.
//
// The claiming rule is returned, if any.
func (t *Table) reachable(word string) (r *Rule, ok bool) {
	for index := range t.rules {
		if n := t.rules[index].Matcher.Match(word); n > 0 {
			r = &t.rules[index]
			return r, n == len(word) && r.Lookup
		}
	}

	return
}

// Lookup retrieves the ItemID of a reserved word.
func (t *Table) Lookup(word string) (id ItemID, ok bool) {
	id, ok = t.reserved[word]
	return
}

// Classify resolves a word of the catch-all identifier shape to its keyword or
// ItemRelationName.
func (t *Table) Classify(word string) ItemID {
	if id, ok := t.reserved[word]; ok {
		return id
	}

	return ItemRelationName
}

// Keywords lists the reserved words, sorted.
func (t *Table) Keywords() (words []string) {
	words = maps.Keys(t.reserved)
	slices.Sort(words)

	return
}

// Rules retrieves a copy of the Table's rules.
func (t *Table) Rules() []Rule { return slices.Clone(t.rules) }

// match tries the rules in order at the start of src, committing to the first that matches &
// doesn't decline.
func (t *Table) match(src string) (r *Rule, n int, id ItemID, value any) {
	for index := range t.rules {
		r = &t.rules[index]
		if n = r.Matcher.Match(src); n < 1 {
			continue
		}
		if r.Discard {
			return
		}

		var ok bool
		if id, value, ok = t.resolve(r, src[:n]); ok {
			return
		}
	}

	return nil, 0, 0, nil
}

func (t *Table) resolve(r *Rule, lexeme string) (id ItemID, value any, ok bool) {
	switch {
	case r.Lookup:
		if id, ok = t.reserved[lexeme]; !ok {
			id, ok = r.ID, r.ID != 0
		}
		value = lexeme
		if id == ItemBooleanLit {
			value = lexeme == "true"
		}
	case r.Transform != nil:
		id, value, ok = r.Transform(lexeme)
	default:
		id, value, ok = r.ID, lexeme, true
	}

	return
}
