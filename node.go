package gqlcore

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/syntax"
)

// Node re-exports syntax.Node (C2): a shared, copy-on-write handle to a
// parsed or built value.
type Node[T any] = syntax.Node[T]

// MakeMut re-exports syntax.MakeMut (§6.2 "Node::make_mut"): a unique,
// in-place-mutable pointer into n's value, cloning first if n's storage
// is still shared.
func MakeMut[T any](n *Node[T]) *T { return syntax.MakeMut(n) }

// Component re-exports syntax.Component (C2): a Node tagged with the
// Origin — definition or a specific extension — that contributed it.
// Origin is a plain field (§6.2 "Component::origin"), read as c.Origin.
type Component[T any] = syntax.Component[T]

// Origin re-exports syntax.Origin.
type Origin = syntax.Origin

// DirectiveList re-exports ast.DirectiveList and its Get/GetAll/Has/Push
// accessors (§6.2 "DirectiveList::{get, get_all, has, push}").
type DirectiveList = ast.DirectiveList
