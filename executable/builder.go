package executable

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/diagnostic"
	"github.com/shyptr/gqlcore/schema"
	"github.com/shyptr/gqlcore/syntax"
)

// Builder folds one or more ASTs' operations and fragments into a
// Document, resolved against a Schema (C6).
type Builder struct {
	schema *schema.Schema
	docs   []*ast.Document
}

// NewBuilder starts a fresh build against sch. sch need not itself be
// validated — §4.5 explicitly allows "a validated or in-progress
// Schema" as input, since field-parent resolution only needs the
// container shape, not schema-level well-formedness.
func NewBuilder(sch *schema.Schema) *Builder {
	return &Builder{schema: sch}
}

// Parse lexes, parses and converts text, queuing the result for Build.
func (b *Builder) Parse(path, text string, cfg syntax.Config) *Builder {
	tree := syntax.Parse(b.schema.Sources, path, text, cfg)
	doc := ast.NewConverter().Document(tree.Root)
	b.docs = append(b.docs, doc)
	return b
}

// AddAST queues an already-built AST document for Build.
func (b *Builder) AddAST(doc *ast.Document) *Builder {
	b.docs = append(b.docs, doc)
	return b
}

// Build resolves every queued operation and fragment against the
// builder's schema.
func (b *Builder) Build() (*Document, diagnostic.List) {
	doc := newDocument()
	var diags diagnostic.List

	for _, astDoc := range b.docs {
		for _, node := range astDoc.Definitions {
			span, _ := node.Location()
			switch d := (*node.Get()).(type) {
			case ast.OperationDefinition:
				key := anonymousOperationKey
				if d.Name != nil {
					key = d.Name.Text
				}
				parentType, _ := b.schema.RootOperation(d.Operation)
				op := &Operation{
					Name:       nameText(d.Name),
					Type:       d.Operation,
					Variables:  d.VariableDefinitions,
					Directives: d.Directives,
					ParentType: parentType,
					Span:       span,
				}
				op.Selections = b.resolveSelectionSet(d.SelectionSet, parentType)
				if !doc.Operations.Insert(key, op) {
					diags = diags.Add(diagnostic.New(diagnostic.KindDuplicateOperationName, span, "operation %q is already defined", key))
				}
			case ast.FragmentDefinition:
				frag := &Fragment{
					Name:          d.Name.Text,
					TypeCondition: d.TypeCondition.Text,
					Directives:    d.Directives,
					Span:          span,
				}
				frag.Selections = b.resolveSelectionSet(d.SelectionSet, d.TypeCondition.Text)
				if !doc.Fragments.Insert(d.Name.Text, frag) {
					diags = diags.Add(diagnostic.New(diagnostic.KindDuplicateFragmentName, span, "fragment %q is already defined", d.Name.Text))
				}
			}
		}
	}

	return doc, diags
}

func nameText(n *ast.Name) *string {
	if n == nil {
		return nil
	}
	return &n.Text
}

// resolveSelectionSet walks ss, tagging every field/inline fragment with
// the parent type it was resolved against and recursing with the
// matched field's inner named type, per §4.5's process.
func (b *Builder) resolveSelectionSet(ss ast.SelectionSet, parentType string) []Selection {
	if !ss.Has {
		return nil
	}
	out := make([]Selection, 0, len(ss.Selections))
	for _, sel := range ss.Selections {
		switch s := sel.(type) {
		case ast.Field:
			out = append(out, Field{
				AST:        s,
				ParentType: parentType,
				Selections: b.resolveSelectionSet(s.SelectionSet, b.childParentType(parentType, s.Name.Text)),
			})
		case ast.FragmentSpread:
			out = append(out, FragmentSpread{AST: s})
		case ast.InlineFragment:
			narrowed := parentType
			if s.TypeCondition != nil {
				narrowed = s.TypeCondition.Text
			}
			out = append(out, InlineFragment{
				AST:        s,
				ParentType: narrowed,
				Selections: b.resolveSelectionSet(s.SelectionSet, narrowed),
			})
		}
	}
	return out
}

// childParentType resolves the type a field's own sub-selections should
// be read against: the meta-field's fixed return type, the schema
// field's inner named type, or "" if the field name doesn't exist on
// parentType (an error a validator will report; resolution here just
// stops, per §4.5's "missing parent types ... suppress downstream
// diagnostics").
func (b *Builder) childParentType(parentType, fieldName string) string {
	if t, ok := metaFieldType(fieldName); ok {
		return t
	}
	if parentType == "" {
		return ""
	}
	f, ok := b.schema.TypeField(parentType, fieldName)
	if !ok {
		return ""
	}
	return ast.InnerNamedType(f.Type).Text
}

// metaFieldType returns the fixed return type of one of the three
// introspection meta-fields legal on any composite selection set (§4.6
// "Introspection query consistency").
func metaFieldType(name string) (string, bool) {
	switch name {
	case "__typename":
		return "String", true
	case "__schema":
		return "__Schema", true
	case "__type":
		return "__Type", true
	default:
		return "", false
	}
}
