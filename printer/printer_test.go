package printer_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/printer"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

func parseDoc(t *testing.T, text string) *ast.Document {
	t.Helper()
	sources := source.NewMap()
	tree := syntax.Parse(sources, "test.graphql", text, syntax.DefaultConfig())
	require.Empty(t, tree.Errors)
	return ast.NewConverter().Document(tree.Root)
}

func TestPrintOperationShorthand(t *testing.T) {
	doc := parseDoc(t, `{ hero { name } }`)
	got := printer.Print(doc)
	assert.Equal(t, "{\n  hero {\n    name\n  }\n}", got)
}

func TestPrintOperationWithNameKeepsKeyword(t *testing.T) {
	doc := parseDoc(t, `query HeroName { hero { name } }`)
	got := printer.Print(doc)
	assert.Equal(t, "query HeroName {\n  hero {\n    name\n  }\n}", got)
}

func TestPrintNonShorthandWhenNotFirst(t *testing.T) {
	doc := parseDoc(t, `query A { a } query B { b }`)
	got := printer.Print(doc)
	assert.Contains(t, got, "query A {")
	assert.Contains(t, got, "query B {")
}

func TestPrintVariableDefinitionsAndArguments(t *testing.T) {
	doc := parseDoc(t, `query ($id: ID!, $limit: Int = 10) { hero(id: $id, first: $limit) { name } }`)
	got := printer.Print(doc)
	assert.Equal(t, "query ($id: ID!, $limit: Int = 10) {\n  hero(id: $id, first: $limit) {\n    name\n  }\n}", got)
}

func TestPrintFragmentAndSpread(t *testing.T) {
	doc := parseDoc(t, `
		{ hero { ...Fields } }
		fragment Fields on Character { name appearsIn }
	`)
	got := printer.Print(doc)
	assert.Contains(t, got, "fragment Fields on Character {\n  name\n  appearsIn\n}")
	assert.Contains(t, got, "...Fields")
}

func TestPrintInlineFragmentWithTypeCondition(t *testing.T) {
	doc := parseDoc(t, `{ hero { ... on Droid { primaryFunction } } }`)
	got := printer.Print(doc)
	assert.Contains(t, got, "... on Droid {\n      primaryFunction\n    }")
}

func TestPrintDirectivesOnFieldAndFragmentSpread(t *testing.T) {
	doc := parseDoc(t, `{ hero { name @include(if: true) ...Fields @skip(if: false) } }`)
	got := printer.Print(doc)
	assert.Contains(t, got, "name @include(if: true)")
	assert.Contains(t, got, "...Fields @skip(if: false)")
}

func TestPrintObjectTypeDefinition(t *testing.T) {
	doc := parseDoc(t, `
		"""A character in the saga."""
		type Character implements Node {
		  id: ID!
		  name: String
		}
	`)
	got := printer.Print(doc)
	assert.Contains(t, got, `"""A character in the saga."""`)
	assert.Contains(t, got, "type Character implements Node {\n  id: ID!\n  name: String\n}")
}

func TestPrintEnumAndUnionAndInput(t *testing.T) {
	doc := parseDoc(t, `
		enum Episode { NEWHOPE EMPIRE JEDI }
		union SearchResult = Human | Droid
		input ReviewInput { stars: Int! commentary: String }
	`)
	got := printer.Print(doc)
	assert.Contains(t, got, "enum Episode {\n  NEWHOPE\n  EMPIRE\n  JEDI\n}")
	assert.Contains(t, got, "union SearchResult = Human | Droid")
	// Input-object fields follow the same comma-separated, single-line-
	// unless-annotated rule as argument lists (§4.7), unlike object/
	// interface fields which always get their own line.
	assert.Contains(t, got, "input ReviewInput {stars: Int!, commentary: String}")
}

func TestPrintDirectiveDefinition(t *testing.T) {
	doc := parseDoc(t, `directive @deprecated(reason: String = "No longer supported") repeatable on FIELD_DEFINITION | ENUM_VALUE`)
	got := printer.Print(doc)
	assert.Equal(t, `directive @deprecated(reason: String = "No longer supported") repeatable on FIELD_DEFINITION | ENUM_VALUE`, got)
}

func TestPrintValuesRoundTrip(t *testing.T) {
	doc := parseDoc(t, `{ f(i: 1, fl: 1.5, s: "hi", b: true, n: null, e: NORTH, l: [1, 2], o: {x: 1, y: 2}) }`)
	got := printer.Print(doc)
	assert.Contains(t, got, `f(i: 1, fl: 1.5, s: "hi", b: true, n: null, e: NORTH, l: [1, 2], o: {x: 1, y: 2})`)
}

// TestPrintGoldenFullDocument exercises top-level definition separation,
// nested selection sets, arguments, variable definitions and fragment
// spreads together against a checked-in fixture, rather than an inline
// expected string.
func TestPrintGoldenFullDocument(t *testing.T) {
	doc := parseDoc(t, `query Hero($id: ID!) { hero(id: $id) { name ...Details } } fragment Details on Character { appearsIn }`)
	got := printer.Print(doc)
	g := goldie.New(t)
	g.Assert(t, "full_document", []byte(got))
}

func TestPrintSingleLineConfig(t *testing.T) {
	doc := parseDoc(t, `{ hero { name } }`)
	var sb strings.Builder
	printer.Fprint(&sb, doc, printer.Config{Newlines: false})
	assert.Equal(t, "{ hero { name } }", sb.String())
}
