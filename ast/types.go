package ast

// Type is the recursive type-reference sum from §3:
//
//	Type := Named(Name) | NonNullNamed(Name) | List(Type) | NonNullList(Type)
//
// List and NonNullList own their inner Type exclusively (no sharing below
// a wrapper — two distinct `[Foo]` references in the same document get
// distinct Type values, only their inner Name is interned/shared).
type Type interface {
	isType()
	String() string
}

// Named is a bare type reference, e.g. `Foo`.
type Named struct{ Name Name }

// NonNullNamed is a non-null bare type reference, e.g. `Foo!`.
type NonNullNamed struct{ Name Name }

// List is a list type reference, e.g. `[Foo]`.
type List struct{ Of Type }

// NonNullList is a non-null list type reference, e.g. `[Foo]!`.
type NonNullList struct{ Of Type }

func (Named) isType()        {}
func (NonNullNamed) isType() {}
func (List) isType()         {}
func (NonNullList) isType()  {}

func (t Named) String() string        { return t.Name.Text }
func (t NonNullNamed) String() string { return t.Name.Text + "!" }
func (t List) String() string         { return "[" + t.Of.String() + "]" }
func (t NonNullList) String() string  { return "[" + t.Of.String() + "]!" }

var (
	_ Type = Named{}
	_ Type = NonNullNamed{}
	_ Type = List{}
	_ Type = NonNullList{}
)

// InnerNamedType strips every list/non-null wrapper and returns the
// leaf type name (§3 "inner_named_type()").
func InnerNamedType(t Type) Name {
	switch v := t.(type) {
	case Named:
		return v.Name
	case NonNullNamed:
		return v.Name
	case List:
		return InnerNamedType(v.Of)
	case NonNullList:
		return InnerNamedType(v.Of)
	default:
		panic("ast: unreachable Type variant")
	}
}

// IsNonNull reports whether t's outermost wrapper is non-null.
func IsNonNull(t Type) bool {
	switch t.(type) {
	case NonNullNamed, NonNullList:
		return true
	default:
		return false
	}
}

// SameType reports whether a and b have identical list/non-null shape and
// inner name — the "structurally identical" comparison field-merge uses
// (§4.6 "their return types must be structurally identical").
func SameType(a, b Type) bool {
	switch av := a.(type) {
	case Named:
		bv, ok := b.(Named)
		return ok && av.Name.Equal(bv.Name)
	case NonNullNamed:
		bv, ok := b.(NonNullNamed)
		return ok && av.Name.Equal(bv.Name)
	case List:
		bv, ok := b.(List)
		return ok && SameType(av.Of, bv.Of)
	case NonNullList:
		bv, ok := b.(NonNullList)
		return ok && SameType(av.Of, bv.Of)
	default:
		return false
	}
}
