// Package ast is the typed abstract syntax tree (C4): Document, its
// Definitions, Selections, Values and Types, built by a fallible,
// recursive projection out of the CST (§4.3). AST nodes are pure data —
// they never reference a schema — and are wrapped in syntax.Node[T] /
// syntax.Component[T] throughout so subtrees can be shared structurally
// and mutated copy-on-write (§4.1).
//
// Shape grounded on the teacher's system/ast (Name, SelectionSet,
// Directive, type_system.go) and internal/ast (values, arguments,
// variables) packages.
package ast

import (
	"github.com/shyptr/gqlcore/source"
)

// Name is an interned GraphQL identifier paired with an optional source
// span. Two Names compare equal by string contents alone; the span is
// metadata a diagnostic can point at, never part of identity (§3 "Names").
type Name struct {
	Text string
	Span source.Span
	Has  bool // whether Span is meaningful (false for synthesized names)
}

// NewName constructs a Name with no source span (e.g. a built-in or a
// synthesized adopted-orphan-extension target).
func NewName(text string) Name {
	return Name{Text: Intern(text)}
}

// NewNameSpanned constructs a Name carrying a source span.
func NewNameSpanned(text string, span source.Span) Name {
	return Name{Text: Intern(text), Span: span, Has: true}
}

// Location returns the Name's source span, if any.
func (n Name) Location() (source.Span, bool) {
	return n.Span, n.Has
}

func (n Name) String() string { return n.Text }

// Equal compares two Names by string contents only, per §3.
func (n Name) Equal(other Name) bool { return n.Text == other.Text }
