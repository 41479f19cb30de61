package gqlcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlcore"
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/diagnostic"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

const starWarsSDL = `
type Query {
  hero(episode: String): Character
}

interface Character {
  name: String!
}

type Human implements Character {
  name: String!
  homePlanet: String
}
`

func TestParseAndValidateSchemaClean(t *testing.T) {
	result := gqlcore.ParseAndValidateSchema(source.NewMap(), "schema.graphql", starWarsSDL)
	valid, ok := result.Valid()
	require.True(t, ok, "diagnostics: %v", result.Diagnostics)

	sch := valid.Get()
	_, ok = sch.GetObject("Human")
	assert.True(t, ok)
	queryName, ok := sch.RootOperation(ast.Query)
	assert.True(t, ok)
	assert.Equal(t, "Query", queryName)
}

func TestParseAndValidateSchemaCatchesUndefinedType(t *testing.T) {
	result := gqlcore.ParseAndValidateSchema(source.NewMap(), "schema.graphql", `
		type Query {
		  hero: Missing
		}
	`)
	_, ok := result.Valid()
	assert.False(t, ok)

	var kinds []diagnostic.Kind
	for _, d := range result.Diagnostics {
		kinds = append(kinds, d.Kind)
	}
	assert.Contains(t, kinds, diagnostic.KindUndefinedType)
}

func TestParseAndValidateExecutable(t *testing.T) {
	sources := source.NewMap()
	schemaResult := gqlcore.ParseAndValidateSchema(sources, "schema.graphql", starWarsSDL)
	valid, ok := schemaResult.Valid()
	require.True(t, ok, "diagnostics: %v", schemaResult.Diagnostics)
	sch := valid.Get()

	execResult := gqlcore.ParseAndValidateExecutable(sch, "query.graphql", `{ hero(episode: "JEDI") { name } }`)
	_, ok = execResult.Valid()
	assert.True(t, ok, "diagnostics: %v", execResult.Diagnostics)

	op, ok := execResult.Value.AnonymousOperation()
	require.True(t, ok)
	assert.Equal(t, "Query", op.ParentType)
}

func TestParseAndValidateExecutableCatchesUndefinedField(t *testing.T) {
	sources := source.NewMap()
	schemaResult := gqlcore.ParseAndValidateSchema(sources, "schema.graphql", starWarsSDL)
	valid, ok := schemaResult.Valid()
	require.True(t, ok)
	sch := valid.Get()

	execResult := gqlcore.ParseAndValidateExecutable(sch, "query.graphql", `{ hero(episode: "JEDI") { bogus } }`)
	_, ok = execResult.Valid()
	assert.False(t, ok)

	var kinds []diagnostic.Kind
	for _, d := range execResult.Diagnostics {
		kinds = append(kinds, d.Kind)
	}
	assert.Contains(t, kinds, diagnostic.KindUndefinedField)
}

func TestParseASTRecoversFromSyntaxError(t *testing.T) {
	doc, errs := gqlcore.ParseAST(source.NewMap(), "query.graphql", `{ field `)
	assert.NotEmpty(t, errs)
	assert.NotNil(t, doc)
}

func TestPrintRoundTrip(t *testing.T) {
	doc, errs := gqlcore.ParseAST(source.NewMap(), "query.graphql", `{ hero { name } }`)
	require.Empty(t, errs)
	assert.Equal(t, "{\n  hero {\n    name\n  }\n}", gqlcore.Print(doc))
}

func TestSchemaBuilderChainableOptions(t *testing.T) {
	sources := source.NewMap()
	sch, diags := gqlcore.NewSchemaBuilder(sources).
		AdoptOrphanExtensions().
		AllowBuiltInRedefinitions().
		Parse("ext.graphql", `extend type Query { extra: String }`, syntax.DefaultConfig()).
		Build()

	assert.Empty(t, diags)
	_, ok := sch.GetObject("Query")
	assert.True(t, ok)
	_, ok = sch.TypeField("Query", "extra")
	assert.True(t, ok)
}
