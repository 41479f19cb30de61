package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/shyptr/gqlcore/diagnostic"
	"github.com/shyptr/gqlcore/executable"
	"github.com/shyptr/gqlcore/schema"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
	"github.com/shyptr/gqlcore/validate"
)

// Schema and Executable fan out across goroutines (runConcurrently); this
// catches one left running past the errgroup.Wait it's supposed to join.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func buildSchema(t *testing.T, text string, opts ...schema.Option) *schema.Schema {
	t.Helper()
	sch, diags := schema.NewBuilder(source.NewMap(), opts...).Parse("schema.graphql", text, syntax.DefaultConfig()).Build()
	require.Empty(t, diags)
	return sch
}

func buildDoc(t *testing.T, sch *schema.Schema, text string) *executable.Document {
	t.Helper()
	doc, diags := executable.NewBuilder(sch).Parse("query.graphql", text, syntax.DefaultConfig()).Build()
	require.Empty(t, diags)
	return doc
}

func kindsOf(diags diagnostic.List) []diagnostic.Kind {
	out := make([]diagnostic.Kind, len(diags))
	for i, d := range diags {
		out[i] = d.Kind
	}
	return out
}

const starWarsSDL = `
type Query {
  hero(episode: Episode): Character
  human(id: ID!): Human
  search(filter: SearchFilter): [SearchResult]
}

interface Character {
  name: String!
  friends: [Character]
}

type Human implements Character {
  name: String!
  friends: [Character]
  homePlanet: String
}

type Droid implements Character {
  name: String!
  friends: [Character]
  primaryFunction: String
}

union SearchResult = Human | Droid

enum Episode {
  NEWHOPE
  EMPIRE
  JEDI
}

input SearchFilter {
  nameContains: String
  episode: Episode = NEWHOPE
}
`

func TestSchemaValidRootOperations(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	diags := validate.Schema(sch)
	assert.Empty(t, diags)
}

func TestSchemaRootOperationNotObjectType(t *testing.T) {
	sch := buildSchema(t, `
		schema { query: Episode }
		enum Episode { NEWHOPE }
	`)
	diags := validate.Schema(sch)
	assert.Contains(t, kindsOf(diags), diagnostic.KindUndefinedType)
}

func TestSchemaOutputAndInputTypeExpected(t *testing.T) {
	sch := buildSchema(t, `
		input Filter { value: String }
		type Query {
		  hero: Filter
		  search(filter: Human): String
		}
		type Human { name: String }
	`)
	kinds := kindsOf(validate.Schema(sch))
	assert.Contains(t, kinds, diagnostic.KindOutputTypeExpected)
	assert.Contains(t, kinds, diagnostic.KindInputTypeExpected)
}

func TestSchemaUnionMemberMustBeObjectAndNonEmpty(t *testing.T) {
	sch := buildSchema(t, `
		type Query { s: Search }
		interface NotAnObject { name: String }
		union Search = NotAnObject
		union Empty
	`)
	kinds := kindsOf(validate.Schema(sch))
	assert.Contains(t, kinds, diagnostic.KindUndefinedType)
}

func TestSchemaInterfaceFieldSignatureMismatch(t *testing.T) {
	sch := buildSchema(t, `
		type Query { hero: Character }
		interface Character { name: String! }
		type Human implements Character { name: Int! }
	`)
	assert.Contains(t, kindsOf(validate.Schema(sch)), diagnostic.KindInterfaceFieldSignatureMismatch)
}

func TestSchemaInterfaceFieldCovarianceAllowsSubtype(t *testing.T) {
	sch := buildSchema(t, `
		type Query { hero: Character }
		interface Character { self: Character }
		type Human implements Character { self: Human }
	`)
	assert.Empty(t, validate.Schema(sch))
}

func TestSchemaDirectiveUndefinedAndLocationMismatch(t *testing.T) {
	sch := buildSchema(t, `
		directive @onField on FIELD_DEFINITION
		type Query {
		  hero(id: ID @onField): String @onField @bogus
		}
	`)
	kinds := kindsOf(validate.Schema(sch))
	assert.Contains(t, kinds, diagnostic.KindUndefinedDirective)
	assert.Contains(t, kinds, diagnostic.KindDirectiveLocationMismatch)
}

func TestSchemaNonRepeatableDirectiveRepeated(t *testing.T) {
	sch := buildSchema(t, `
		directive @once on FIELD_DEFINITION
		type Query {
		  hero: String @once @once
		}
	`)
	assert.Contains(t, kindsOf(validate.Schema(sch)), diagnostic.KindNonRepeatableDirectiveRepeated)
}

func TestExecutableCleanQuery(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `
		query HeroName($ep: Episode) {
		  hero(episode: $ep) {
		    name
		    ... on Human { homePlanet }
		  }
		}
	`)
	assert.Empty(t, validate.Executable(sch, doc))
}

func TestExecutableAnonymousOperationNotAlone(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `
		{ hero { name } }
		query Named { hero { name } }
	`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindAnonymousOperationNotAlone)
}

func TestExecutableUndefinedAndUnusedVariable(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `
		query Q($used: Episode, $unused: Episode) {
		  hero(episode: $used) { name }
		  human(id: $missing) { name }
		}
	`)
	kinds := kindsOf(validate.Executable(sch, doc))
	assert.Contains(t, kinds, diagnostic.KindUndefinedVariable)
	assert.Contains(t, kinds, diagnostic.KindUnusedVariable)
}

func TestExecutableUndefinedField(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `{ hero { bogus } }`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindUndefinedField)
}

func TestExecutableUndefinedFragment(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `{ hero { ...Missing } }`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindUndefinedFragment)
}

func TestExecutableFragmentCycle(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `
		{ hero { ...A } }
		fragment A on Character { name ...B }
		fragment B on Character { name ...A }
	`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindFragmentCycle)
}

func TestExecutableFragmentTypeConditionMismatch(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `
		{ human(id: "1") { ...DroidFields } }
		fragment DroidFields on Droid { primaryFunction }
	`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindFragmentTypeConditionMismatch)
}

func TestExecutableInlineFragmentTypeConditionMismatch(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `
		{ human(id: "1") { ... on Droid { primaryFunction } } }
	`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindInlineFragmentTypeConditionMismatch)
}

func TestExecutableLeafFieldHasSelectionAndCompositeMissing(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `
		{
		  human(id: "1") {
		    name { nested }
		    friends
		  }
		}
	`)
	kinds := kindsOf(validate.Executable(sch, doc))
	assert.Contains(t, kinds, diagnostic.KindLeafFieldHasSelection)
	assert.Contains(t, kinds, diagnostic.KindCompositeFieldMissingSelection)
}

func TestExecutableIntrospectionMisuse(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `{ human(id: "1") { __schema { queryType { name } } } }`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindIntrospectionMisuse)
}

func TestExecutableTypenameNotLegalAtSubscriptionRoot(t *testing.T) {
	sch := buildSchema(t, starWarsSDL+`
		type Subscription { heroChanged: Character }
		schema { query: Query subscription: Subscription }
	`)
	doc := buildDoc(t, sch, `subscription { __typename }`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindIntrospectionMisuse)
}

func TestExecutableTypenameLegalNestedInSubscription(t *testing.T) {
	sch := buildSchema(t, starWarsSDL+`
		type Subscription { heroChanged: Character }
		schema { query: Query subscription: Subscription }
	`)
	doc := buildDoc(t, sch, `subscription { heroChanged { __typename name } }`)
	assert.Empty(t, validate.Executable(sch, doc))
}

func TestExecutableFieldMergeConflict(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `
		{
		  human(id: "1") {
		    name: homePlanet
		    name
		  }
		}
	`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindFieldMergeConflict)
}

func TestExecutableMissingRequiredArgument(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `{ human { name } }`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindMissingRequiredArgument)
}

func TestExecutableUndefinedArgument(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `{ human(id: "1", bogus: true) { name } }`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindUndefinedArgument)
}

func TestExecutableInputCoercion(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `{ human(id: 1) { name } }`)
	// ID accepts an Int literal (coercion.go's "ID" case), so this must
	// stay clean — guards against over-tightening that rule later.
	assert.Empty(t, validate.Executable(sch, doc))
}

func TestExecutableInputCoercionRejectsWrongLiteralShape(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `{ hero(episode: 1) { name } }`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindInputCoercion)
}

func TestExecutableMissingRequiredInputObjectField(t *testing.T) {
	sch := buildSchema(t, `
		type Query { search(filter: Filter!): String }
		input Filter { required: String! optional: String }
	`)
	doc := buildDoc(t, sch, `{ search(filter: {optional: "x"}) }`)
	assert.Contains(t, kindsOf(validate.Executable(sch, doc)), diagnostic.KindMissingRequiredField)
}

func TestExecutableVariableDefaultAllowsNonNullUsage(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `
		query Q($id: ID = "1") {
		  human(id: $id) { name }
		}
	`)
	assert.Empty(t, validate.Executable(sch, doc))
}

// TestWithLoggerAcceptedWithoutChangingResults confirms the optional
// logger threads through runConcurrently without affecting a clean run's
// diagnostics — the panic-logging path itself only fires when a validator
// actually panics, which a clean pass never does.
func TestWithLoggerAcceptedWithoutChangingResults(t *testing.T) {
	sch := buildSchema(t, starWarsSDL)
	doc := buildDoc(t, sch, `{ hero { name } }`)
	log := zaptest.NewLogger(t)
	assert.Empty(t, validate.Schema(sch, validate.WithLogger(log)))
	assert.Empty(t, validate.Executable(sch, doc, validate.WithLogger(log)))
}
