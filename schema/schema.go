// Package schema builds and holds the semantic model a SchemaBuilder folds
// ASTs into (C5): a Schema of ExtendedTypes, each member tagged with the
// Component origin that contributed it, plus the built-in scalars,
// directives and introspection types every schema starts from.
//
// Shape grounded on the teacher's federation/schema.go (the closest thing
// in the pack to merging fields contributed by more than one source) and
// the system.Schema/system.Field/system.NamedType shape implied by
// system/validation and system/introspection, whose own defining file is
// missing from this retrieval snapshot — reconstructed here from how those
// packages use it.
package schema

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

// TypeKind distinguishes the six extended-type variants §3 "Schema" lists.
type TypeKind int

const (
	ScalarKind TypeKind = iota
	ObjectKind
	InterfaceKind
	UnionKind
	EnumKind
	InputObjectKind
)

func (k TypeKind) String() string {
	switch k {
	case ScalarKind:
		return "SCALAR"
	case ObjectKind:
		return "OBJECT"
	case InterfaceKind:
		return "INTERFACE"
	case UnionKind:
		return "UNION"
	case EnumKind:
		return "ENUM"
	case InputObjectKind:
		return "INPUT_OBJECT"
	default:
		return "UNKNOWN"
	}
}

// ComponentName is a Name carrying an Origin — used for the schema
// definition's root-operation bindings and for implemented-interface and
// union-member lists, each of which may come from the base definition or a
// specific extension (§3 "Component attribution").
type ComponentName = syntax.Component[string]

// ExtendedType is the sum of the six type variants a Schema's types map
// holds. Each variant is a struct, never a Node — Components live at the
// member level (fields, values, directives), not around the whole type,
// since a type itself is never "shared" the way a sub-expression is.
type ExtendedType interface {
	isExtendedType()
	TypeName() string
	Kind() TypeKind
}

// Field is one field of an object or interface type.
type Field struct {
	Description *string
	Name        string
	Arguments   *syntax.OrderedMap[syntax.Component[InputValue]]
	Type        ast.Type
	Directives  []syntax.Component[ast.Directive]
}

// InputValue is one argument or input-object field.
type InputValue struct {
	Description  *string
	Name         string
	Type         ast.Type
	DefaultValue ast.Value
	Directives   []syntax.Component[ast.Directive]
}

// EnumValue is one member of an enum type.
type EnumValue struct {
	Description *string
	Name        string
	Directives  []syntax.Component[ast.Directive]
}

// ScalarType is a leaf scalar, built-in or custom.
type ScalarType struct {
	Description *string
	Name        string
	Directives  []syntax.Component[ast.Directive]
}

func (ScalarType) isExtendedType()   {}
func (s ScalarType) TypeName() string { return s.Name }
func (ScalarType) Kind() TypeKind    { return ScalarKind }

// ObjectType is a composite type with fields and implemented interfaces.
type ObjectType struct {
	Description *string
	Name        string
	Implements  *syntax.OrderedMap[ComponentName]
	Directives  []syntax.Component[ast.Directive]
	Fields      *syntax.OrderedMap[syntax.Component[Field]]
}

func (ObjectType) isExtendedType()   {}
func (o ObjectType) TypeName() string { return o.Name }
func (ObjectType) Kind() TypeKind    { return ObjectKind }

// InterfaceType is an abstract type with fields, which may itself implement
// other interfaces (transitively, per invariant I7).
type InterfaceType struct {
	Description *string
	Name        string
	Implements  *syntax.OrderedMap[ComponentName]
	Directives  []syntax.Component[ast.Directive]
	Fields      *syntax.OrderedMap[syntax.Component[Field]]
}

func (InterfaceType) isExtendedType()   {}
func (i InterfaceType) TypeName() string { return i.Name }
func (InterfaceType) Kind() TypeKind    { return InterfaceKind }

// UnionType is a set of object-type members.
type UnionType struct {
	Description *string
	Name        string
	Directives  []syntax.Component[ast.Directive]
	Members     *syntax.OrderedMap[ComponentName]
}

func (UnionType) isExtendedType()   {}
func (u UnionType) TypeName() string { return u.Name }
func (UnionType) Kind() TypeKind    { return UnionKind }

// EnumType is a closed set of named values.
type EnumType struct {
	Description *string
	Name        string
	Directives  []syntax.Component[ast.Directive]
	Values      *syntax.OrderedMap[syntax.Component[EnumValue]]
}

func (EnumType) isExtendedType()   {}
func (e EnumType) TypeName() string { return e.Name }
func (EnumType) Kind() TypeKind    { return EnumKind }

// InputObjectType is a composite input-only type.
type InputObjectType struct {
	Description *string
	Name        string
	Directives  []syntax.Component[ast.Directive]
	Fields      *syntax.OrderedMap[syntax.Component[InputValue]]
}

func (InputObjectType) isExtendedType()   {}
func (i InputObjectType) TypeName() string { return i.Name }
func (InputObjectType) Kind() TypeKind    { return InputObjectKind }

var (
	_ ExtendedType = ScalarType{}
	_ ExtendedType = ObjectType{}
	_ ExtendedType = InterfaceType{}
	_ ExtendedType = UnionType{}
	_ ExtendedType = EnumType{}
	_ ExtendedType = InputObjectType{}
)

// DirectiveDef is a directive's declaration: its argument shape, whether it
// may apply more than once per position, and the positions it is valid at.
// Directives have no extension grammar, so unlike the ExtendedType members
// this needs no Component wrapper — a directive name maps to exactly one
// definition, replaced wholesale on an allowed built-in redefinition.
type DirectiveDef struct {
	Description *string
	Name        string
	Arguments   *syntax.OrderedMap[InputValue]
	Repeatable  bool
	Locations   []string
	BuiltIn     bool
}

// RootOperations binds the three operation kinds to object-type names,
// each independently originated (§3 "schema_definition").
type RootOperations struct {
	Query        *ComponentName
	Mutation     *ComponentName
	Subscription *ComponentName
}

// Schema is the fully folded semantic model: one schema definition's root
// bindings, every directive definition (built-in and user), and every
// type, in insertion order (§3 "Schema").
type Schema struct {
	Sources             *source.Map
	Root                RootOperations
	SchemaDirectives    []syntax.Component[ast.Directive]
	DirectiveDefs       *syntax.OrderedMap[*DirectiveDef]
	Types               *syntax.OrderedMap[ExtendedType]
}

func newSchema(sources *source.Map) *Schema {
	return &Schema{
		Sources:       sources,
		DirectiveDefs: syntax.NewOrderedMap[*DirectiveDef](),
		Types:         syntax.NewOrderedMap[ExtendedType](),
	}
}
