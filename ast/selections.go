package ast

import "github.com/shyptr/gqlcore/source"

// Selection is one member of a SelectionSet: a field, a fragment
// spread, or an inline fragment (§3 "Selections").
type Selection interface {
	isSelection()
	Location() (source.Span, bool)
}

// SelectionSet is an ordered list of selections. Order is preserved
// because field order is observable in a GraphQL response.
type SelectionSet struct {
	Selections []Selection
	Span       source.Span
	Has        bool
}

// Field is a selected field, optionally aliased, with arguments,
// directives, and (for object/interface/union fields) a nested
// selection set.
type Field struct {
	Alias        *Name
	Name         Name
	Arguments    []Argument
	Directives   DirectiveList
	SelectionSet SelectionSet
	Span         source.Span
	Has          bool
}

// ResponseName is the key this field occupies in a response object:
// the alias if present, otherwise the field name itself (§4.6 "field
// merging" uses this to group same-response-key selections).
func (f Field) ResponseName() string {
	if f.Alias != nil {
		return f.Alias.Text
	}
	return f.Name.Text
}

func (Field) isSelection()                          {}
func (f Field) Location() (source.Span, bool)       { return f.Span, f.Has }

// FragmentSpread references a named fragment by name: `...Name`.
type FragmentSpread struct {
	Name       Name
	Directives DirectiveList
	Span       source.Span
	Has        bool
}

func (FragmentSpread) isSelection()                          {}
func (f FragmentSpread) Location() (source.Span, bool)       { return f.Span, f.Has }

// InlineFragment is `... [on TypeCondition] { selections }`, with an
// optional type condition.
type InlineFragment struct {
	TypeCondition *Name
	Directives    DirectiveList
	SelectionSet  SelectionSet
	Span          source.Span
	Has           bool
}

func (InlineFragment) isSelection()                          {}
func (f InlineFragment) Location() (source.Span, bool)       { return f.Span, f.Has }

var (
	_ Selection = Field{}
	_ Selection = FragmentSpread{}
	_ Selection = InlineFragment{}
)
