// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// ItemID int holding an identifier for the Item tokens
	ItemID int

	// Category groups ItemIDs by their role in the language.
	Category int

	// Item type holding the lexeme, parsed value & position of a scanned token.
	Item struct {
		// Value is the parsed payload: uint64 (or *big.Int) for integers, the undelimited text
		// for strings, dates & times, bool for booleans and the lexeme otherwise.
		Value any

		Val  string // The lexeme of this Item
		ID   ItemID // The type of this Item
		Pos  int    // The starting position, (in bytes) of this Item
		Line int    // 1-based line
		Col  int    // 1-based column, in runes
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_       ItemID = iota // Consume 0 to start actual numbering at 1.
	ItemEOF               // End of the input.

	classStereotypeBeg
	ItemEvent
	ItemSituation
	ItemProcess
	ItemCategory
	ItemMixin
	ItemPhaseMixin
	ItemRoleMixin
	ItemHistoricalRoleMixin
	ItemKind
	ItemCollective
	ItemQuantity
	ItemQuality
	ItemMode
	ItemIntrinsicMode
	ItemExtrinsicMode
	ItemSubkind
	ItemPhase
	ItemRole
	ItemHistoricalRole
	ItemRelator
	ItemType
	classStereotypeEnd

	relationStereotypeBeg
	ItemMaterial
	ItemDerivation
	ItemComparative
	ItemMediation
	ItemCharacterization
	ItemExternalDependence
	ItemComponentOf
	ItemMemberOf
	ItemSubCollectionOf
	ItemSubQualityOf
	ItemInstantiation
	ItemTermination
	ItemParticipational
	ItemParticipation
	ItemHistoricalDependence
	ItemCreation
	ItemManifestation
	ItemBringsAbout
	ItemTriggers
	ItemComposition
	ItemAggregation
	ItemInherence
	ItemValue
	ItemFormal
	ItemConstitution
	relationStereotypeEnd

	keywordBeg
	ItemGenset
	ItemDisjoint
	ItemComplete
	ItemGeneral
	ItemSpecifics
	ItemWhere
	ItemPackage
	ItemClass
	ItemSpecializes
	ItemCategorizer
	ItemImport
	ItemFunctionalComplexes
	ItemInstanceOf
	ItemDatatype
	ItemEnum
	ItemRelation
	ItemOf
	ItemAssociation
	keywordEnd

	primitiveBeg
	ItemNumberType
	ItemStringType
	ItemBooleanType
	ItemDateType
	ItemTimeType
	ItemDatetimeType
	ItemIntType
	primitiveEnd

	metaBeg
	ItemOrdered
	ItemConst
	ItemDerived
	ItemSubsets
	ItemRedefines
	metaEnd

	symbolBeg
	ItemLBrace           // {
	ItemRBrace           // }
	ItemLParen           // (
	ItemRParen           // )
	ItemLBracket         // [
	ItemRBracket         // ]
	ItemAsterisk         // *
	ItemAt               // @
	ItemColon            // :
	ItemComma            // ,
	ItemDot              // .
	ItemHyphen           // -
	ItemDotDot           // ..
	ItemDoubleHyphen     // --
	ItemArrowRL          // <>--
	ItemArrowLR          // --<>
	ItemArrowComposition // <o>--
	ItemArrowAggregation // <<>--
	symbolEnd

	identifierBeg
	ItemClassName
	ItemInstanceName
	ItemRelationName
	ItemNewDatatype
	identifierEnd

	literalBeg
	ItemIntegerLit
	ItemStringLit
	ItemBooleanLit
	ItemDateLit
	ItemTimeLit
	ItemDatetimeLit
	literalEnd
)

// Item categories.
const (
	CategoryInvalid Category = iota
	CategorySpecial
	CategoryClassStereotype
	CategoryRelationStereotype
	CategoryKeyword
	CategoryPrimitiveType
	CategoryMetaAttribute
	CategorySymbol
	CategoryIdentifier
	CategoryLiteral
)

var itemNames = [...]string{
	ItemEOF: "EOF",

	ItemEvent:               "EVENT",
	ItemSituation:           "SITUATION",
	ItemProcess:             "PROCESS",
	ItemCategory:            "CATEGORY",
	ItemMixin:               "MIXIN",
	ItemPhaseMixin:          "PHASEMIXIN",
	ItemRoleMixin:           "ROLEMIXIN",
	ItemHistoricalRoleMixin: "HISTORICALROLEMIXIN",
	ItemKind:                "KIND",
	ItemCollective:          "COLLECTIVE",
	ItemQuantity:            "QUANTITY",
	ItemQuality:             "QUALITY",
	ItemMode:                "MODE",
	ItemIntrinsicMode:       "INTRINSICMODE",
	ItemExtrinsicMode:       "EXTRINSICMODE",
	ItemSubkind:             "SUBKIND",
	ItemPhase:               "PHASE",
	ItemRole:                "ROLE",
	ItemHistoricalRole:      "HISTORICALROLE",
	ItemRelator:             "RELATOR",
	ItemType:                "TYPE",

	ItemMaterial:             "MATERIAL",
	ItemDerivation:           "DERIVATION",
	ItemComparative:          "COMPARATIVE",
	ItemMediation:            "MEDIATION",
	ItemCharacterization:     "CHARACTERIZATION",
	ItemExternalDependence:   "EXTERNALDEPENDENCE",
	ItemComponentOf:          "COMPONENTOF",
	ItemMemberOf:             "MEMBEROF",
	ItemSubCollectionOf:      "SUBCOLLECTIONOF",
	ItemSubQualityOf:         "SUBQUALITYOF",
	ItemInstantiation:        "INSTANTIATION",
	ItemTermination:          "TERMINATION",
	ItemParticipational:      "PARTICIPATIONAL",
	ItemParticipation:        "PARTICIPATION",
	ItemHistoricalDependence: "HISTORICALDEPENDENCE",
	ItemCreation:             "CREATION",
	ItemManifestation:        "MANIFESTATION",
	ItemBringsAbout:          "BRINGSABOUT",
	ItemTriggers:             "TRIGGERS",
	ItemComposition:          "COMPOSITION",
	ItemAggregation:          "AGGREGATION",
	ItemInherence:            "INHERENCE",
	ItemValue:                "VALUE",
	ItemFormal:               "FORMAL",
	ItemConstitution:         "CONSTITUTION",

	ItemGenset:              "GENSET",
	ItemDisjoint:            "DISJOINT",
	ItemComplete:            "COMPLETE",
	ItemGeneral:             "GENERAL",
	ItemSpecifics:           "SPECIFICS",
	ItemWhere:               "WHERE",
	ItemPackage:             "PACKAGE",
	ItemClass:               "CLASS",
	ItemSpecializes:         "SPECIALIZES",
	ItemCategorizer:         "CATEGORIZER",
	ItemImport:              "IMPORT",
	ItemFunctionalComplexes: "FUNCTIONALCOMPLEXES",
	ItemInstanceOf:          "INSTANCEOF",
	ItemDatatype:            "DATATYPE",
	ItemEnum:                "ENUM",
	ItemRelation:            "RELATION",
	ItemOf:                  "OF",
	ItemAssociation:         "ASSOCIATION",

	ItemNumberType:   "NUMBER_TYPE",
	ItemStringType:   "STRING_TYPE",
	ItemBooleanType:  "BOOLEAN_TYPE",
	ItemDateType:     "DATE_TYPE",
	ItemTimeType:     "TIME_TYPE",
	ItemDatetimeType: "DATETIME_TYPE",
	ItemIntType:      "INT_TYPE",

	ItemOrdered:   "ORDERED",
	ItemConst:     "CONST",
	ItemDerived:   "DERIVED",
	ItemSubsets:   "SUBSETS",
	ItemRedefines: "REDEFINES",

	ItemLBrace:           "LBRACE",
	ItemRBrace:           "RBRACE",
	ItemLParen:           "LPAREN",
	ItemRParen:           "RPAREN",
	ItemLBracket:         "LBRACKET",
	ItemRBracket:         "RBRACKET",
	ItemAsterisk:         "ASTERISK",
	ItemAt:               "AT",
	ItemColon:            "COLON",
	ItemComma:            "COMMA",
	ItemDot:              "DOT",
	ItemHyphen:           "HYPHEN",
	ItemDotDot:           "DOTDOT",
	ItemDoubleHyphen:     "DOUBLE_HYPHEN",
	ItemArrowRL:          "ARROW_RL",
	ItemArrowLR:          "ARROW_LR",
	ItemArrowComposition: "ARROW_RL_COMPOSITION",
	ItemArrowAggregation: "ARROW_RL_AGGREGATION",

	ItemClassName:    "CLASS_NAME",
	ItemInstanceName: "INSTANCE_NAME",
	ItemRelationName: "RELATION_NAME",
	ItemNewDatatype:  "NEW_DATATYPE",

	ItemIntegerLit:  "NUMBER",
	ItemStringLit:   "STRING",
	ItemBooleanLit:  "BOOLEAN",
	ItemDateLit:     "DATE_LITERAL",
	ItemTimeLit:     "TIME_LITERAL",
	ItemDatetimeLit: "DATETIME_LITERAL",
}

var categoryNames = [...]string{
	CategoryInvalid:            "invalid",
	CategorySpecial:            "special",
	CategoryClassStereotype:    "class stereotype",
	CategoryRelationStereotype: "relation stereotype",
	CategoryKeyword:            "keyword",
	CategoryPrimitiveType:      "primitive type",
	CategoryMetaAttribute:      "meta attribute",
	CategorySymbol:             "symbol",
	CategoryIdentifier:         "identifier",
	CategoryLiteral:            "literal",
}

// Valid reports whether the ItemID is a declared token kind; the range markers are not.
func (id ItemID) Valid() bool { return id.Category() != CategoryInvalid }

// Category retrieves the group an ItemID belongs to.
func (id ItemID) Category() Category {
	switch {
	case id == ItemEOF:
		return CategorySpecial
	case classStereotypeBeg < id && id < classStereotypeEnd:
		return CategoryClassStereotype
	case relationStereotypeBeg < id && id < relationStereotypeEnd:
		return CategoryRelationStereotype
	case keywordBeg < id && id < keywordEnd:
		return CategoryKeyword
	case primitiveBeg < id && id < primitiveEnd:
		return CategoryPrimitiveType
	case metaBeg < id && id < metaEnd:
		return CategoryMetaAttribute
	case symbolBeg < id && id < symbolEnd:
		return CategorySymbol
	case identifierBeg < id && id < identifierEnd:
		return CategoryIdentifier
	case literalBeg < id && id < literalEnd:
		return CategoryLiteral
	}

	return CategoryInvalid
}

// Reserved reports whether the ItemID may be the target of a reserved word.
func (id ItemID) Reserved() bool {
	switch id.Category() {
	case CategoryClassStereotype, CategoryRelationStereotype, CategoryKeyword,
		CategoryPrimitiveType, CategoryMetaAttribute:
		return true
	}

	return id == ItemBooleanLit
}

// String is the fmt.Stringer implementation for ItemID.
func (id ItemID) String() string {
	if id.Valid() && int(id) < len(itemNames) {
		return itemNames[id]
	}

	return fmt.Sprintf("ItemID(%d)", int(id))
}

// String is the fmt.Stringer implementation for Category.
func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}

	return fmt.Sprintf("Category(%d)", int(c))
}

// String is the fmt.Stringer implementation for Item.
func (i Item) String() string {
	return fmt.Sprintf("%s %q %d:%d", i.ID, i.Val, i.Line, i.Col)
}
