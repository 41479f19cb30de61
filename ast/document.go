package ast

import "github.com/shyptr/gqlcore/syntax"

// A Document describes a complete file or request string: an ordered
// sequence of definitions, either executable (operations and fragments)
// or representative of a GraphQL type system (schema/type/directive
// definitions and their extensions) — §3 "AST layer".
//
// Documents are only executable if they contain an OperationDefinition
// and otherwise only ExecutableDefinitions. A document composed purely
// of TypeSystemDefinitions and extensions is still valid input to a
// SchemaBuilder; GraphQL permits the two kinds to be mixed in one file,
// though real tooling usually keeps them apart.
//
// Each entry is a syntax.Node so the built-in seed document's
// definitions can be cloned cheaply (reference-counted, not copied)
// into every freshly built Schema (§5 "Memory discipline").
type Document struct {
	Definitions []syntax.Node[Definition]
}

// ForEach calls fn with the dereferenced value of each definition, in
// document order.
func (d *Document) ForEach(fn func(Definition)) {
	for _, n := range d.Definitions {
		fn(*n.Get())
	}
}

// Definition is the sum of every top-level GraphQL construct: the six
// type definitions, their extensions, a schema definition/extension, a
// directive definition, an operation, or a fragment.
type Definition interface {
	isDefinition()
}

// DirectiveList is an ordered list of directive applications. GraphQL
// permits the same directive name to appear more than once, and
// directive order is semantically significant, so this is a plain
// slice, never a name-keyed map.
type DirectiveList []Directive

// Get returns the first directive named name, or nil.
func (dl DirectiveList) Get(name string) *Directive {
	for i := range dl {
		if dl[i].Name.Text == name {
			return &dl[i]
		}
	}
	return nil
}

// GetAll returns every directive named name, in source order.
func (dl DirectiveList) GetAll(name string) []Directive {
	var out []Directive
	for _, d := range dl {
		if d.Name.Text == name {
			out = append(out, d)
		}
	}
	return out
}

// Has reports whether any directive named name is present.
func (dl DirectiveList) Has(name string) bool { return dl.Get(name) != nil }

// Push appends d, returning the extended list. GraphQL allows repeated
// directive names, so this never deduplicates against an existing entry.
func (dl DirectiveList) Push(d Directive) DirectiveList { return append(dl, d) }

// Directive is a named, argument-bearing annotation.
type Directive struct {
	Name Name
	Args []Argument
}

// Arg returns the value of the named argument, or nil if absent.
func (d Directive) Arg(name string) Value {
	for _, a := range d.Args {
		if a.Name.Text == name {
			return a.Value
		}
	}
	return nil
}

// Argument is one name: value pair supplied to a field or directive.
type Argument struct {
	Name  Name
	Value Value
}

// OperationType distinguishes query/mutation/subscription.
type OperationType int

const (
	Query OperationType = iota
	Mutation
	Subscription
)

func (o OperationType) String() string {
	switch o {
	case Mutation:
		return "mutation"
	case Subscription:
		return "subscription"
	default:
		return "query"
	}
}

// OperationDefinition is an executable operation.
type OperationDefinition struct {
	Operation           OperationType
	Name                *Name
	VariableDefinitions []VariableDefinition
	Directives          DirectiveList
	SelectionSet        SelectionSet
}

func (OperationDefinition) isDefinition() {}

// VariableDefinition declares one `$name: Type = default` operation
// variable.
type VariableDefinition struct {
	Var          Name
	Type         Type
	DefaultValue Value
	Directives   DirectiveList
}

// FragmentDefinition is a named, reusable selection set with a type
// condition.
type FragmentDefinition struct {
	Name          Name
	TypeCondition Name
	Directives    DirectiveList
	SelectionSet  SelectionSet
}

func (FragmentDefinition) isDefinition() {}

// --- Type-system definitions ---

// SchemaDefinition binds root operation type names.
type SchemaDefinition struct {
	Description    *string
	Directives     DirectiveList
	RootOperations []OperationTypeDefinition
}

func (SchemaDefinition) isDefinition() {}

// SchemaExtension extends a schema definition with more directives or
// root-operation bindings.
type SchemaExtension struct {
	Directives     DirectiveList
	RootOperations []OperationTypeDefinition
}

func (SchemaExtension) isDefinition() {}

// OperationTypeDefinition binds one operation kind to an object type name.
type OperationTypeDefinition struct {
	Operation OperationType
	Type      Name
}

// ScalarTypeDefinition declares a custom scalar.
type ScalarTypeDefinition struct {
	Description *string
	Name        Name
	Directives  DirectiveList
}

func (ScalarTypeDefinition) isDefinition() {}

// ScalarTypeExtension extends a scalar with more directives.
type ScalarTypeExtension struct {
	Name       Name
	Directives DirectiveList
}

func (ScalarTypeExtension) isDefinition() {}

// FieldDefinition declares one field of an object or interface type.
type FieldDefinition struct {
	Description *string
	Name        Name
	Arguments   []InputValueDefinition
	Type        Type
	Directives  DirectiveList
}

// InputValueDefinition declares one argument or input-object field.
type InputValueDefinition struct {
	Description  *string
	Name         Name
	Type         Type
	DefaultValue Value
	Directives   DirectiveList
}

// ObjectTypeDefinition declares an object type.
type ObjectTypeDefinition struct {
	Description *string
	Name        Name
	Implements  []Name
	Directives  DirectiveList
	Fields      []FieldDefinition
}

func (ObjectTypeDefinition) isDefinition() {}

// ObjectTypeExtension extends an object type.
type ObjectTypeExtension struct {
	Name       Name
	Implements []Name
	Directives DirectiveList
	Fields     []FieldDefinition
}

func (ObjectTypeExtension) isDefinition() {}

// InterfaceTypeDefinition declares an interface type.
type InterfaceTypeDefinition struct {
	Description *string
	Name        Name
	Implements  []Name
	Directives  DirectiveList
	Fields      []FieldDefinition
}

func (InterfaceTypeDefinition) isDefinition() {}

// InterfaceTypeExtension extends an interface type.
type InterfaceTypeExtension struct {
	Name       Name
	Implements []Name
	Directives DirectiveList
	Fields     []FieldDefinition
}

func (InterfaceTypeExtension) isDefinition() {}

// UnionTypeDefinition declares a union type.
type UnionTypeDefinition struct {
	Description *string
	Name        Name
	Directives  DirectiveList
	Members     []Name
}

func (UnionTypeDefinition) isDefinition() {}

// UnionTypeExtension extends a union type.
type UnionTypeExtension struct {
	Name       Name
	Directives DirectiveList
	Members    []Name
}

func (UnionTypeExtension) isDefinition() {}

// EnumValueDefinition declares one member of an enum type.
type EnumValueDefinition struct {
	Description *string
	Name        Name
	Directives  DirectiveList
}

// EnumTypeDefinition declares an enum type.
type EnumTypeDefinition struct {
	Description *string
	Name        Name
	Directives  DirectiveList
	Values      []EnumValueDefinition
}

func (EnumTypeDefinition) isDefinition() {}

// EnumTypeExtension extends an enum type.
type EnumTypeExtension struct {
	Name       Name
	Directives DirectiveList
	Values     []EnumValueDefinition
}

func (EnumTypeExtension) isDefinition() {}

// InputObjectTypeDefinition declares an input-object type.
type InputObjectTypeDefinition struct {
	Description *string
	Name        Name
	Directives  DirectiveList
	Fields      []InputValueDefinition
}

func (InputObjectTypeDefinition) isDefinition() {}

// InputObjectTypeExtension extends an input-object type.
type InputObjectTypeExtension struct {
	Name       Name
	Directives DirectiveList
	Fields     []InputValueDefinition
}

func (InputObjectTypeExtension) isDefinition() {}

// DirectiveDefinition declares a custom directive.
type DirectiveDefinition struct {
	Description *string
	Name        Name
	Arguments   []InputValueDefinition
	Repeatable  bool
	Locations   []Name
}

func (DirectiveDefinition) isDefinition() {}
