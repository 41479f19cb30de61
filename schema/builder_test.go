package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/diagnostic"
	"github.com/shyptr/gqlcore/schema"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

func build(t *testing.T, text string, opts ...schema.Option) (*schema.Schema, diagnostic.List) {
	t.Helper()
	b := schema.NewBuilder(source.NewMap(), opts...).Parse("test.graphql", text, syntax.DefaultConfig())
	sch, diags := b.Build()
	require.Empty(t, b.SyntaxErrors())
	return sch, diags
}

func kinds(diags diagnostic.List) []diagnostic.Kind {
	out := make([]diagnostic.Kind, len(diags))
	for i, d := range diags {
		out[i] = d.Kind
	}
	return out
}

func TestBuildImplicitRootOperations(t *testing.T) {
	sch, diags := build(t, `
		type Query { hero: String }
		type Mutation { createHero(name: String!): String }
	`)
	assert.Empty(t, diags)

	name, ok := sch.RootOperation(ast.Query)
	require.True(t, ok)
	assert.Equal(t, "Query", name)

	name, ok = sch.RootOperation(ast.Mutation)
	require.True(t, ok)
	assert.Equal(t, "Mutation", name)

	_, ok = sch.RootOperation(ast.Subscription)
	assert.False(t, ok)
}

func TestBuildExplicitSchemaDefinition(t *testing.T) {
	sch, diags := build(t, `
		schema { query: RootQuery }
		type RootQuery { hero: String }
	`)
	assert.Empty(t, diags)

	name, ok := sch.RootOperation(ast.Query)
	require.True(t, ok)
	assert.Equal(t, "RootQuery", name)
}

func TestBuildDuplicateSchemaDefinitionCollides(t *testing.T) {
	_, diags := build(t, `
		schema { query: Query }
		schema { query: Query }
		type Query { hero: String }
	`)
	assert.Contains(t, kinds(diags), diagnostic.KindSchemaDefinitionCollision)
}

func TestBuildDuplicateRootOperationCollides(t *testing.T) {
	_, diags := build(t, `
		schema { query: Query mutation: Mutation }
		extend schema { mutation: Mutation }
		type Query { hero: String }
		type Mutation { noop: String }
	`)
	assert.Contains(t, kinds(diags), diagnostic.KindDuplicateRootOperation)
}

func TestBuildTypeDefinitionCollision(t *testing.T) {
	_, diags := build(t, `
		type Query { hero: String }
		type Query { villain: String }
	`)
	assert.Contains(t, kinds(diags), diagnostic.KindTypeDefinitionCollision)
}

func TestBuildBuiltInScalarRedefinitionRejectedByDefault(t *testing.T) {
	_, diags := build(t, `
		scalar String
		type Query { hero: String }
	`)
	assert.Contains(t, kinds(diags), diagnostic.KindBuiltInScalarTypeRedefinition)
}

func TestBuildBuiltInScalarRedefinitionAllowedWithOption(t *testing.T) {
	_, diags := build(t, `
		scalar String
		type Query { hero: String }
	`, schema.AllowBuiltInRedefinitions())
	assert.NotContains(t, kinds(diags), diagnostic.KindBuiltInScalarTypeRedefinition)
}

// TestBuiltInDirectiveRedefinitionTolerance is a regression test for a bug
// where installDirective never stamped BuiltIn onto the directives folded in
// from the built-in seed, so the first redefinition of @skip below was
// indistinguishable from a second one and always collided.
func TestBuiltInDirectiveRedefinitionTolerance(t *testing.T) {
	sch, diags := build(t, `
		directive @skip(if: Boolean!) on FIELD
		type Query { hero: String }
	`)
	assert.Empty(t, diags)
	_, ok := sch.DirectiveDefs.Get("skip")
	assert.True(t, ok)
}

func TestBuiltInDirectiveSecondRedefinitionCollides(t *testing.T) {
	_, diags := build(t, `
		directive @skip(if: Boolean!) on FIELD
		directive @skip(if: Boolean!) on FIELD
		type Query { hero: String }
	`)
	assert.Contains(t, kinds(diags), diagnostic.KindDirectiveDefinitionCollision)
}

func TestBuildOrphanTypeExtensionRejectedByDefault(t *testing.T) {
	_, diags := build(t, `
		extend type Query { extra: String }
	`)
	assert.Contains(t, kinds(diags), diagnostic.KindOrphanTypeExtension)
}

func TestBuildOrphanTypeExtensionAdopted(t *testing.T) {
	sch, diags := build(t, `
		extend type Query { extra: String }
	`, schema.AdoptOrphanExtensions())
	assert.Empty(t, diags)

	_, ok := sch.TypeField("Query", "extra")
	assert.True(t, ok)
}

// TestBuildOrphanSchemaExtensionRejectedByDefault is a regression test for a
// second bug found alongside the built-in-directive one: bindRootOperation
// used to run for a schema extension regardless of whether an explicit
// schema definition preceded it, so KindOrphanSchemaExtension
// was declared in the Kind taxonomy but never actually produced.
func TestBuildOrphanSchemaExtensionRejectedByDefault(t *testing.T) {
	_, diags := build(t, `
		extend schema { mutation: Mutation }
		type Query { hero: String }
		type Mutation { noop: String }
	`)
	assert.Contains(t, kinds(diags), diagnostic.KindOrphanSchemaExtension)
}

func TestBuildOrphanSchemaExtensionAdopted(t *testing.T) {
	sch, diags := build(t, `
		extend schema { mutation: Mutation }
		type Query { hero: String }
		type Mutation { noop: String }
	`, schema.AdoptOrphanExtensions())
	assert.Empty(t, diags)

	name, ok := sch.RootOperation(ast.Mutation)
	require.True(t, ok)
	assert.Equal(t, "Mutation", name)
}

func TestBuildTypeExtensionKindMismatch(t *testing.T) {
	_, diags := build(t, `
		type Query { hero: String }
		extend scalar Query
	`)
	assert.Contains(t, kinds(diags), diagnostic.KindTypeExtensionKindMismatch)
}

func TestBuildObjectFieldNameCollisionOnExtension(t *testing.T) {
	_, diags := build(t, `
		type Query { hero: String }
		extend type Query { hero: String }
	`)
	assert.Contains(t, kinds(diags), diagnostic.KindObjectFieldNameCollision)
}

func TestBuildExecutableDefinitionInTypeSystemDocument(t *testing.T) {
	_, diags := build(t, `
		type Query { hero: String }
		query { hero }
	`)
	assert.Contains(t, kinds(diags), diagnostic.KindExecutableDefinitionInTypeSystem)
}

func TestBuildInterfaceImplementationAndDuplicateDetection(t *testing.T) {
	_, diags := build(t, `
		interface Character { name: String! }
		type Human implements Character {
		  name: String!
		}
		extend type Human implements Character
	`)
	assert.Contains(t, kinds(diags), diagnostic.KindDuplicateImplementsInterfaceInObject)
}
