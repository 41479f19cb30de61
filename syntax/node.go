// Package syntax provides the shared building blocks every later layer is
// built from: the reference-counted, copy-on-write Node[T] wrapper and
// Component[T] origin tagging (C2), plus the CST and tolerant
// parser (C3).
//
// No example repo in the retrieval pack has an Rc/copy-on-write node —
// idiomatic Go generally leans on the garbage collector and plain pointers
// instead. Node[T] is the generic-type option spec.md §9 calls out as best
// preserving the public API; generics usage itself is grounded on
// termfx-morfx's BaseRegistry[T any].
package syntax

import (
	"github.com/shyptr/gqlcore/source"
	"go.uber.org/atomic"
)

// Node is a shared, optionally-spanned handle to a value of type T. Any
// number of Node[T] values may point at the same underlying storage; make_mut
// gives a caller a unique, safely-mutable reference by cloning on write.
// Node[T] defines no equality or hashing of its own: comparing two Node
// values with == compares their handles (storage and span pointers), not
// the values they point at; compare the values through Get.
type Node[T any] struct {
	box *box[T]
	loc *source.Span
}

type box[T any] struct {
	refs  atomic.Int32
	value T
}

// New constructs a fresh, unshared Node with no source span.
func New[T any](value T) Node[T] {
	b := &box[T]{value: value}
	b.refs.Store(1)
	return Node[T]{box: b}
}

// NewParsed constructs a fresh, unshared Node carrying a source span.
func NewParsed[T any](value T, span source.Span) Node[T] {
	n := New(value)
	n.loc = &span
	return n
}

// Location returns the node's source span, if any.
func (n Node[T]) Location() (source.Span, bool) {
	if n.loc == nil {
		return source.Span{}, false
	}
	return *n.loc, true
}

// Get returns a pointer to the (possibly shared) underlying value, for
// reading. The pointer is shared with every other handle on the same box;
// treat it as read-only and go through MakeMut to mutate.
func (n Node[T]) Get() *T {
	return &n.box.value
}

// Clone produces a new Node handle sharing the same underlying storage —
// a cheap, reference-counted copy, the mechanism §5 "Memory discipline"
// and §9's design note (a) call for.
//
// The count only ever increases here; there is no Drop to decrement it on
// scope exit the way an Rc would in a language with deterministic
// destructors, so once a box has been shared its count never falls back
// to 1. MakeMut stays correct regardless — it always clones rather than
// risk mutating through a stale handle — it simply forgoes reusing the
// original allocation after the first share, which is the conservative
// side to err on under garbage collection.
func (n Node[T]) Clone() Node[T] {
	n.box.refs.Inc()
	return n
}

// MakeMut returns a unique, in-place-mutable pointer to n's value. If the
// strong count is 1, it returns a pointer directly into the existing
// storage. Otherwise it clones the inner value into a fresh box (dropping
// n's former share) so mutation is never observed through any other held
// handle — copy-on-write, never failing, per §4.1.
func MakeMut[T any](n *Node[T]) *T {
	if n.box.refs.Load() == 1 {
		return &n.box.value
	}
	n.box.refs.Dec()
	cloned := n.box.value
	b := &box[T]{value: cloned}
	b.refs.Store(1)
	n.box = b
	return &n.box.value
}

// Origin records where a Component's member came from: the base definition,
// or a specific extension site (§3 "Component attribution").
type Origin struct {
	extension *ExtensionID
}

// DefinitionOrigin is the origin of a member contributed by the base
// definition itself, as opposed to any extension.
func DefinitionOrigin() Origin { return Origin{} }

// ExtensionOrigin is the origin of a member contributed by a specific
// extension site.
func ExtensionOrigin(id ExtensionID) Origin { return Origin{extension: &id} }

// IsDefinition reports whether o is the base-definition origin.
func (o Origin) IsDefinition() bool { return o.extension == nil }

// Extension returns the ExtensionID this origin was contributed by, and
// whether o is in fact an extension origin.
func (o Origin) Extension() (ExtensionID, bool) {
	if o.extension == nil {
		return ExtensionID{}, false
	}
	return *o.extension, true
}

// ExtensionID opaquely identifies one `extend` block. It is an object-
// identity handle: two ExtensionIDs compare equal iff they name the same
// extension AST node, never by content (two textually identical extend
// blocks at different source locations are different extensions).
type ExtensionID struct {
	marker *struct{}
	span   source.Span
}

// NewExtensionID mints a fresh, unique identifier for one extension AST
// node. span is carried along purely for diagnostics (e.g. "extension
// declared here" labels); identity is the pointer, not the span.
func NewExtensionID(span source.Span) ExtensionID {
	return ExtensionID{marker: new(struct{}), span: span}
}

// Span returns the source span of the extension site this ID names.
func (e ExtensionID) Span() source.Span { return e.span }

// Component is a Node[T] tagged with the Origin that contributed it —
// spec.md §3's alternative to two parallel definition/extension
// collections a caller would otherwise have to reconcile by hand.
type Component[T any] struct {
	Node   Node[T]
	Origin Origin
}

// NewComponent wraps value with the given origin, with no source span.
func NewComponent[T any](value T, origin Origin) Component[T] {
	return Component[T]{Node: New(value), Origin: origin}
}

// NewComponentParsed wraps value with the given origin and source span.
func NewComponentParsed[T any](value T, span source.Span, origin Origin) Component[T] {
	return Component[T]{Node: NewParsed(value, span), Origin: origin}
}

// Get returns the wrapped value.
func (c Component[T]) Get() *T { return c.Node.Get() }
