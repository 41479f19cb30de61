// Package executable resolves parsed operations and fragments against a
// schema.Schema (C6): every selected field is tagged with the parent
// type its containing selection set was recursively narrowed to, ready
// for validators to check without re-walking the schema themselves.
//
// Shape grounded on the teacher's system/execution/selection.go and
// builder/execution/selection.go, both of which track the field's
// enclosing type while walking a selection set to resolve the next
// field's type — the same parent-type threading §4.5 specifies.
package executable

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

// Selection mirrors ast.Selection with one addition: composite
// selections carry the parent type their nested selections were
// resolved against.
type Selection interface {
	isSelection()
}

// Field is a resolved field selection. ParentType is the type the field
// was looked up on — the operation/fragment's root type, or whatever an
// enclosing inline fragment narrowed to. An empty ParentType means the
// enclosing selection set's type could not be resolved (the field that
// owns it is undefined, or resolution already failed further up);
// validators suppress cascading
// diagnostics in that case per §4.5 "missing parent types... suppress
// downstream diagnostics".
type Field struct {
	AST        ast.Field
	ParentType string
	Selections []Selection
}

func (Field) isSelection() {}

// FragmentSpread is a resolved `...Name` reference. Its target fragment
// is looked up by name at validation time, not eagerly here, since
// forward references (a fragment spreading one defined later in the
// document) are legal GraphQL.
type FragmentSpread struct {
	AST ast.FragmentSpread
}

func (FragmentSpread) isSelection() {}

// InlineFragment is a resolved `... [on Type] { ... }`. ParentType is
// the type condition if present, otherwise the enclosing parent type
// unchanged.
type InlineFragment struct {
	AST        ast.InlineFragment
	ParentType string
	Selections []Selection
}

func (InlineFragment) isSelection() {}

var (
	_ Selection = Field{}
	_ Selection = FragmentSpread{}
	_ Selection = InlineFragment{}
)

// Operation is one resolved operation definition.
type Operation struct {
	Name       *string
	Type       ast.OperationType
	Variables  []ast.VariableDefinition
	Directives ast.DirectiveList
	// ParentType is the root object type the operation's kind is bound
	// to in the schema, or "" if the schema has no such root operation.
	ParentType string
	Selections []Selection
	Span       source.Span
}

// Fragment is one resolved fragment definition.
type Fragment struct {
	Name          string
	TypeCondition string
	Directives    ast.DirectiveList
	Selections    []Selection
	Span          source.Span
}

// anonymousOperationKey is the key an unnamed operation occupies in
// Document.Operations — the empty string can never collide with a real
// GraphQL name, which must start with a letter or underscore.
const anonymousOperationKey = ""

// Document is the executable counterpart to schema.Schema: every
// operation and fragment parsed against it, field parent types already
// resolved (§3 "ExecutableDocument").
type Document struct {
	Operations *syntax.OrderedMap[*Operation]
	Fragments  *syntax.OrderedMap[*Fragment]
}

func newDocument() *Document {
	return &Document{
		Operations: syntax.NewOrderedMap[*Operation](),
		Fragments:  syntax.NewOrderedMap[*Fragment](),
	}
}

// AnonymousOperation returns the document's unnamed operation, if any.
func (d *Document) AnonymousOperation() (*Operation, bool) {
	return d.Operations.Get(anonymousOperationKey)
}
