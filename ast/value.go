package ast

import (
	"math/big"

	"github.com/shyptr/gqlcore/source"
)

// Value is the recursive sum described in §3: a variable reference, an
// integer (or a big-integer when it overflows i32), a float, a string, a
// boolean, null, an enum symbol, a list, or an ordered object. Every
// variant carries an optional span.
type Value interface {
	isValue()
	Location() (source.Span, bool)
}

type valueBase struct {
	Span source.Span
	Has  bool
}

func (v valueBase) Location() (source.Span, bool) { return v.Span, v.Has }
func (valueBase) isValue()                        {}

func spanned(span source.Span) valueBase { return valueBase{Span: span, Has: true} }

// VariableValue references a variable by name, e.g. `$userId`.
type VariableValue struct {
	valueBase
	Name Name
}

// IntValue is an integer literal that fits in a signed 32-bit int.
type IntValue struct {
	valueBase
	Value int32
}

// BigIntValue is an integer literal that overflowed i32; the original
// digit string is preserved verbatim rather than lossily widened (§3
// "Values").
type BigIntValue struct {
	valueBase
	Digits string
}

// Int returns the value as a *big.Int.
func (b BigIntValue) Int() *big.Int {
	n := new(big.Int)
	n.SetString(b.Digits, 10)
	return n
}

// FloatValue is an IEEE-754 double literal.
type FloatValue struct {
	valueBase
	Value float64
}

// StringValue is a string literal (ordinary or block-string).
type StringValue struct {
	valueBase
	Value string
	Block bool
}

// BooleanValue is `true` or `false`.
type BooleanValue struct {
	valueBase
	Value bool
}

// NullValue is the literal `null`.
type NullValue struct{ valueBase }

// EnumValue is a bare name used where an enum member is expected, e.g.
// `NORTH`.
type EnumValue struct {
	valueBase
	Value Name
}

// ListValue is an ordered list of values.
type ListValue struct {
	valueBase
	Values []Value
}

// ObjectField is one name/value pair within an ObjectValue.
type ObjectField struct {
	Name  Name
	Value Value
}

// ObjectValue is an ordered list of name→value pairs.
type ObjectValue struct {
	valueBase
	Fields []ObjectField
}

var (
	_ Value = VariableValue{}
	_ Value = IntValue{}
	_ Value = BigIntValue{}
	_ Value = FloatValue{}
	_ Value = StringValue{}
	_ Value = BooleanValue{}
	_ Value = NullValue{}
	_ Value = EnumValue{}
	_ Value = ListValue{}
	_ Value = ObjectValue{}
)

// SameValue reports whether a and b are equal "by meaning" — ignoring
// source spans — as required for field-merge argument comparison (§4.6
// "their arguments must be exactly equal ... up to is_same_value, which
// ignores source spans") and input-coercion default-value comparisons.
func SameValue(a, b Value) bool {
	switch av := a.(type) {
	case VariableValue:
		bv, ok := b.(VariableValue)
		return ok && av.Name.Equal(bv.Name)
	case IntValue:
		bv, ok := b.(IntValue)
		return ok && av.Value == bv.Value
	case BigIntValue:
		bv, ok := b.(BigIntValue)
		return ok && av.Digits == bv.Digits
	case FloatValue:
		bv, ok := b.(FloatValue)
		return ok && av.Value == bv.Value
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Value == bv.Value
	case BooleanValue:
		bv, ok := b.(BooleanValue)
		return ok && av.Value == bv.Value
	case NullValue:
		_, ok := b.(NullValue)
		return ok
	case EnumValue:
		bv, ok := b.(EnumValue)
		return ok && av.Value.Equal(bv.Value)
	case ListValue:
		bv, ok := b.(ListValue)
		if !ok || len(av.Values) != len(bv.Values) {
			return false
		}
		for i := range av.Values {
			if !SameValue(av.Values[i], bv.Values[i]) {
				return false
			}
		}
		return true
	case ObjectValue:
		bv, ok := b.(ObjectValue)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		// Object field order is not significant to meaning, only to
		// source fidelity, so compare as a set keyed by name.
		byName := make(map[string]Value, len(bv.Fields))
		for _, f := range bv.Fields {
			byName[f.Name.Text] = f.Value
		}
		for _, f := range av.Fields {
			other, ok := byName[f.Name.Text]
			if !ok || !SameValue(f.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
