package syntax

import "github.com/shyptr/gqlcore/source"

// Kind enumerates the CST production and token kinds the tolerant parser
// can emit. Unlike the AST's per-shape Go types (C4), the CST has one
// homogeneous Green type tagged by Kind — the usual "green tree" design —
// so the parser can emit an Error node in any position without needing a
// distinct Go type for "malformed X".
type Kind int

const (
	KindError Kind = iota
	KindToken
	KindDocument
	KindOperationDefinition
	KindFragmentDefinition
	KindVariableDefinitions
	KindVariableDefinition
	KindSelectionSet
	KindField
	KindArguments
	KindArgument
	KindDirectives
	KindDirective
	KindName
	KindNamedType
	KindListType
	KindNonNullType
	KindAlias
	KindFragmentSpread
	KindInlineFragment
	KindTypeCondition
	KindIntValue
	KindFloatValue
	KindStringValue
	KindBooleanValue
	KindNullValue
	KindEnumValue
	KindListValue
	KindObjectValue
	KindObjectField
	KindVariable
	KindSchemaDefinition
	KindSchemaExtension
	KindOperationTypeDefinition
	KindScalarTypeDefinition
	KindScalarTypeExtension
	KindObjectTypeDefinition
	KindObjectTypeExtension
	KindInterfaceTypeDefinition
	KindInterfaceTypeExtension
	KindUnionTypeDefinition
	KindUnionTypeExtension
	KindEnumTypeDefinition
	KindEnumTypeExtension
	KindEnumValueDefinition
	KindInputObjectTypeDefinition
	KindInputObjectTypeExtension
	KindInputValueDefinition
	KindFieldDefinition
	KindFieldsDefinition
	KindImplementsInterfaces
	KindDirectiveDefinition
	KindDirectiveLocations
	KindDescription
)

// Error is one parser diagnostic: a byte-offset span and a message, the
// exact shape §6.1 fixes for the parser contract.
type Error struct {
	Span    source.Span
	Message string
}

// Green is a single CST tree node: a Kind tag, the source span it covers,
// its children (for productions) or the literal token text (for leaves),
// and the `#` comments lexed immediately before it. Commas, whitespace and
// punctuation tokens are not kept, so the original source cannot be
// rebuilt verbatim from the tree; spans locate each node in it instead.
type Green struct {
	Kind     Kind
	Span     source.Span
	Text     string // token text on Name and value leaves; the operation keyword on OperationDefinition/OperationTypeDefinition; "true"/"false" (repeatable) on DirectiveLocations
	Trivia   string // `#` comments lexed before a Name or value leaf, each ended by '\n'
	Children []*Green
}

// IsError reports whether this node (or the token it stands in for)
// represents a parse error rather than well-formed syntax.
func (n *Green) IsError() bool { return n != nil && n.Kind == KindError }

// Child returns the first child of the given kind, or nil.
func (n *Green) Child(kind Kind) *Green {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOf returns all direct children of the given kind, in order.
func (n *Green) ChildrenOf(kind Kind) []*Green {
	if n == nil {
		return nil
	}
	var out []*Green
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Tree is the result of parsing one source input: the (possibly partial)
// root node, accumulated errors, and whether either configured limit
// (§6.1, §5 "Cancellation") was hit.
type Tree struct {
	Root             *Green
	Errors           []Error
	RecursionReached bool
	TokensReached    bool
}
