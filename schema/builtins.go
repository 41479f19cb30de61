package schema

import (
	"sync"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

// builtinSDL declares the built-in scalars, directives and introspection
// types every schema starts from (§3 "Built-in scalars ... and
// introspection types ... are always present pre-validation"). It is
// ordinary GraphQL SDL, parsed through the same CST→AST pipeline as any
// user document — the built-ins are not a special case the builder
// hand-constructs, they are just another AST folded in first.
const builtinSDL = `
scalar Int
scalar Float
scalar String
scalar Boolean
scalar ID

directive @skip(if: Boolean!) on FIELD | FRAGMENT_SPREAD | INLINE_FRAGMENT
directive @include(if: Boolean!) on FIELD | FRAGMENT_SPREAD | INLINE_FRAGMENT
directive @deprecated(reason: String = "No longer supported") on FIELD_DEFINITION | ENUM_VALUE
directive @specifiedBy(url: String!) on SCALAR

enum __TypeKind {
  SCALAR
  OBJECT
  INTERFACE
  UNION
  ENUM
  INPUT_OBJECT
  LIST
  NON_NULL
}

enum __DirectiveLocation {
  QUERY
  MUTATION
  SUBSCRIPTION
  FIELD
  FRAGMENT_DEFINITION
  FRAGMENT_SPREAD
  INLINE_FRAGMENT
  VARIABLE_DEFINITION
  SCHEMA
  SCALAR
  OBJECT
  FIELD_DEFINITION
  ARGUMENT_DEFINITION
  INTERFACE
  UNION
  ENUM
  ENUM_VALUE
  INPUT_OBJECT
  INPUT_FIELD_DEFINITION
}

type __InputValue {
  name: String!
  description: String
  type: __Type!
  defaultValue: String
}

type __EnumValue {
  name: String!
  description: String
  isDeprecated: Boolean!
  deprecationReason: String
}

type __Field {
  name: String!
  description: String
  args: [__InputValue!]!
  type: __Type!
  isDeprecated: Boolean!
  deprecationReason: String
}

type __Directive {
  name: String!
  description: String
  args: [__InputValue!]!
  isRepeatable: Boolean!
  locations: [__DirectiveLocation!]!
}

type __Type {
  kind: __TypeKind!
  name: String
  description: String
  fields: [__Field!]
  interfaces: [__Type!]
  possibleTypes: [__Type!]
  enumValues: [__EnumValue!]
  inputFields: [__InputValue!]
  ofType: __Type
}

type __Schema {
  description: String
  types: [__Type!]!
  queryType: __Type!
  mutationType: __Type
  subscriptionType: __Type
  directives: [__Directive!]!
}
`

var (
	builtinOnce sync.Once
	builtinDoc  *ast.Document
)

// builtinSeed returns the shared built-in AST, parsed exactly once per
// process (§5 "Memory discipline": "Built-in definitions are constructed
// once per process and cloned ... into each new schema"). Every Builder
// clones this document's definition handles rather than re-parsing the SDL
// above.
func builtinSeed() *ast.Document {
	builtinOnce.Do(func() {
		sources := source.NewMap()
		tree := syntax.Parse(sources, "<builtin>", builtinSDL, syntax.DefaultConfig())
		builtinDoc = ast.NewConverter().Document(tree.Root)
	})
	return builtinDoc
}

// clonedDefinitions returns Node handles sharing storage with the seed
// document's definitions — cheap, reference-counted copies, never a deep
// copy of the SDL above.
func clonedDefinitions(doc *ast.Document) []syntax.Node[ast.Definition] {
	out := make([]syntax.Node[ast.Definition], len(doc.Definitions))
	for i, n := range doc.Definitions {
		out[i] = n.Clone()
	}
	return out
}

var builtinScalarNames = map[string]bool{
	"Int": true, "Float": true, "String": true, "Boolean": true, "ID": true,
}

// IsBuiltInScalar reports whether name is one of the five scalars every
// schema seeds automatically.
func IsBuiltInScalar(name string) bool { return builtinScalarNames[name] }
