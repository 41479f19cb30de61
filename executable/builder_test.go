package executable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/diagnostic"
	"github.com/shyptr/gqlcore/executable"
	"github.com/shyptr/gqlcore/schema"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

const builderSDL = `
type Query {
  hero: Character
}

type Mutation {
  createHuman(name: String!): Human
}

interface Character {
  name: String!
}

type Human implements Character {
  name: String!
  homePlanet: String
  friends: [Character]
}

type Droid implements Character {
  name: String!
  primaryFunction: String
}
`

func buildSchema(t *testing.T) *schema.Schema {
	t.Helper()
	sch, diags := schema.NewBuilder(source.NewMap()).Parse("schema.graphql", builderSDL, syntax.DefaultConfig()).Build()
	require.Empty(t, diags)
	return sch
}

func buildExecutable(t *testing.T, sch *schema.Schema, text string) (*executable.Document, diagnostic.List) {
	t.Helper()
	return executable.NewBuilder(sch).Parse("query.graphql", text, syntax.DefaultConfig()).Build()
}

func TestBuildAnonymousOperationParentType(t *testing.T) {
	sch := buildSchema(t)
	doc, diags := buildExecutable(t, sch, `{ hero { name } }`)
	assert.Empty(t, diags)

	op, ok := doc.AnonymousOperation()
	require.True(t, ok)
	assert.Equal(t, "Query", op.ParentType)
	require.Len(t, op.Selections, 1)

	field := op.Selections[0].(executable.Field)
	assert.Equal(t, "Query", field.ParentType)
	assert.Equal(t, "hero", field.AST.Name.Text)
	require.Len(t, field.Selections, 1)
	assert.Equal(t, "Character", field.Selections[0].(executable.Field).ParentType)
}

func TestBuildNamedOperationAndMutationRoot(t *testing.T) {
	sch := buildSchema(t)
	doc, diags := buildExecutable(t, sch, `mutation MakeHuman { createHuman(name: "Leia") { name } }`)
	assert.Empty(t, diags)

	op, ok := doc.Operations.Get("MakeHuman")
	require.True(t, ok)
	assert.Equal(t, ast.Mutation, op.Type)
	assert.Equal(t, "Mutation", op.ParentType)
}

func TestBuildInlineFragmentNarrowsParentType(t *testing.T) {
	sch := buildSchema(t)
	doc, diags := buildExecutable(t, sch, `
		{
		  hero {
		    name
		    ... on Droid {
		      primaryFunction
		    }
		  }
		}
	`)
	assert.Empty(t, diags)

	op, ok := doc.AnonymousOperation()
	require.True(t, ok)
	hero := op.Selections[0].(executable.Field)
	var inline executable.InlineFragment
	for _, s := range hero.Selections {
		if f, ok := s.(executable.InlineFragment); ok {
			inline = f
		}
	}
	require.NotNil(t, inline.AST.TypeCondition)
	assert.Equal(t, "Droid", inline.ParentType)
	require.Len(t, inline.Selections, 1)
	assert.Equal(t, "primaryFunction", inline.Selections[0].(executable.Field).AST.Name.Text)
}

func TestBuildFragmentDefinitionParentType(t *testing.T) {
	sch := buildSchema(t)
	doc, diags := buildExecutable(t, sch, `
		{ hero { ...CharacterFields } }
		fragment CharacterFields on Character { name }
	`)
	assert.Empty(t, diags)

	frag, ok := doc.Fragments.Get("CharacterFields")
	require.True(t, ok)
	assert.Equal(t, "Character", frag.TypeCondition)
	require.Len(t, frag.Selections, 1)
	assert.Equal(t, "Character", frag.Selections[0].(executable.Field).ParentType)
}

func TestBuildMetaFieldTypesResolve(t *testing.T) {
	sch := buildSchema(t)
	doc, diags := buildExecutable(t, sch, `{ hero { __typename name } }`)
	assert.Empty(t, diags)

	op, _ := doc.AnonymousOperation()
	hero := op.Selections[0].(executable.Field)
	var typename executable.Field
	for _, s := range hero.Selections {
		if f, ok := s.(executable.Field); ok && f.AST.Name.Text == "__typename" {
			typename = f
		}
	}
	assert.Equal(t, "Character", typename.ParentType)
}

func TestBuildUnknownFieldYieldsEmptyParentType(t *testing.T) {
	sch := buildSchema(t)
	doc, diags := buildExecutable(t, sch, `{ hero { bogus { nested } } }`)
	assert.Empty(t, diags)

	op, _ := doc.AnonymousOperation()
	hero := op.Selections[0].(executable.Field)
	bogus := hero.Selections[0].(executable.Field)
	assert.Equal(t, "Character", bogus.ParentType)
	assert.Empty(t, bogus.Selections[0].(executable.Field).ParentType)
}

func TestBuildDuplicateOperationName(t *testing.T) {
	sch := buildSchema(t)
	_, diags := buildExecutable(t, sch, `
		query Dup { hero { name } }
		query Dup { hero { name } }
	`)
	var kinds []diagnostic.Kind
	for _, d := range diags {
		kinds = append(kinds, d.Kind)
	}
	assert.Contains(t, kinds, diagnostic.KindDuplicateOperationName)
}

func TestBuildDuplicateFragmentName(t *testing.T) {
	sch := buildSchema(t)
	_, diags := buildExecutable(t, sch, `
		{ hero { ...F } }
		fragment F on Character { name }
		fragment F on Character { name }
	`)
	var kinds []diagnostic.Kind
	for _, d := range diags {
		kinds = append(kinds, d.Kind)
	}
	assert.Contains(t, kinds, diagnostic.KindDuplicateFragmentName)
}
