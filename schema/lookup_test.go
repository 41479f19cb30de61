package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlcore/ast"
)

const lookupSDL = `
type Query {
  hero: Character
  search: SearchResult
}

interface Character {
  name: String!
}

interface Droid implements Character {
  name: String!
  primaryFunction: String
}

type Human implements Character {
  name: String!
  homePlanet: String
}

type Astromech implements Character & Droid {
  name: String!
  primaryFunction: String
}

union SearchResult = Human | Astromech

enum Episode {
  NEWHOPE
  EMPIRE
  JEDI
}

input ListFilter {
  limit: Int
}
`

func TestLookupGetAccessors(t *testing.T) {
	sch, diags := build(t, lookupSDL)
	require.Empty(t, diags)

	_, ok := sch.GetObject("Human")
	assert.True(t, ok)
	_, ok = sch.GetInterface("Character")
	assert.True(t, ok)
	_, ok = sch.GetUnion("SearchResult")
	assert.True(t, ok)
	_, ok = sch.GetEnum("Episode")
	assert.True(t, ok)
	_, ok = sch.GetInputObject("ListFilter")
	assert.True(t, ok)
	_, ok = sch.GetScalar("String")
	assert.True(t, ok)

	_, ok = sch.GetObject("NoSuchType")
	assert.False(t, ok)
}

func TestLookupTypeField(t *testing.T) {
	sch, diags := build(t, lookupSDL)
	require.Empty(t, diags)

	f, ok := sch.TypeField("Human", "homePlanet")
	require.True(t, ok)
	assert.Equal(t, "homePlanet", f.Name)

	_, ok = sch.TypeField("Human", "bogus")
	assert.False(t, ok)

	_, ok = sch.TypeField("Episode", "whatever")
	assert.False(t, ok)
}

func TestLookupImplementersMap(t *testing.T) {
	sch, diags := build(t, lookupSDL)
	require.Empty(t, diags)

	impl := sch.ImplementersMap()
	assert.ElementsMatch(t, []string{"Droid", "Human", "Astromech"}, impl["Character"])
	assert.ElementsMatch(t, []string{"Astromech"}, impl["Droid"])
}

func TestLookupPossibleTypes(t *testing.T) {
	sch, diags := build(t, lookupSDL)
	require.Empty(t, diags)

	assert.ElementsMatch(t, []string{"Human"}, sch.PossibleTypes("Human"))
	assert.ElementsMatch(t, []string{"Human", "Astromech"}, sch.PossibleTypes("SearchResult"))
	assert.ElementsMatch(t, []string{"Human", "Astromech"}, sch.PossibleTypes("Character"))
	assert.ElementsMatch(t, []string{"Astromech"}, sch.PossibleTypes("Droid"))
}

func TestLookupIsSubtype(t *testing.T) {
	sch, diags := build(t, lookupSDL)
	require.Empty(t, diags)

	assert.True(t, sch.IsSubtype("Character", "Human"))
	assert.True(t, sch.IsSubtype("SearchResult", "Astromech"))
	assert.True(t, sch.IsSubtype("SearchResult", "Human"))
	assert.False(t, sch.IsSubtype("Droid", "Human"))
}

func TestLookupIsOutputAndInputType(t *testing.T) {
	sch, diags := build(t, lookupSDL)
	require.Empty(t, diags)

	named := func(name string) ast.Type { return ast.Named{Name: ast.Name{Text: name}} }

	assert.True(t, sch.IsOutputType(named("Human")))
	assert.True(t, sch.IsOutputType(named("Character")))
	assert.True(t, sch.IsOutputType(named("SearchResult")))
	assert.True(t, sch.IsOutputType(named("Episode")))
	assert.False(t, sch.IsOutputType(named("ListFilter")))

	assert.True(t, sch.IsInputType(named("ListFilter")))
	assert.True(t, sch.IsInputType(named("Episode")))
	assert.True(t, sch.IsInputType(named("String")))
	assert.False(t, sch.IsInputType(named("Human")))

	assert.True(t, sch.IsInputType(ast.NonNullList{Of: ast.Named{Name: ast.Name{Text: "Int"}}}))
}

func TestLookupRootOperationAbsent(t *testing.T) {
	sch, diags := build(t, `type Query { hero: String }`)
	require.Empty(t, diags)

	_, ok := sch.RootOperation(ast.Subscription)
	assert.False(t, ok)
}
