package validate

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/diagnostic"
	"github.com/shyptr/gqlcore/schema"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

// argSpec is the flattened shape validateArgumentsAgainst needs from
// either a Field's Component-wrapped argument map or a DirectiveDef's
// plain one — the two OrderedMap instantiations don't satisfy a common
// interface (Get's return type differs per instantiation), so both
// callers flatten to this first.
type argSpec struct {
	Name         string
	Type         ast.Type
	DefaultValue ast.Value
}

// directiveArgSpecs flattens a DirectiveDef's argument map.
func directiveArgSpecs(defs *syntax.OrderedMap[schema.InputValue]) []argSpec {
	out := make([]argSpec, 0, defs.Len())
	for _, name := range defs.Keys() {
		iv, _ := defs.Get(name)
		out = append(out, argSpec{Name: iv.Name, Type: iv.Type, DefaultValue: iv.DefaultValue})
	}
	return out
}

// inputValueArgSpecs flattens a Field or InputObject's Component-wrapped
// argument/field map.
func inputValueArgSpecs(defs *syntax.OrderedMap[syntax.Component[schema.InputValue]]) []argSpec {
	out := make([]argSpec, 0, defs.Len())
	for _, name := range defs.Keys() {
		c, _ := defs.Get(name)
		iv := *c.Get()
		out = append(out, argSpec{Name: iv.Name, Type: iv.Type, DefaultValue: iv.DefaultValue})
	}
	return out
}

// validateArgumentsAgainst checks a call site's literal arguments args
// against the declared argument shape defs: every required argument is
// present, every supplied name is declared, and every value coerces to
// its declared type (§4.6 "Input coercion").
func validateArgumentsAgainst(sch *schema.Schema, args []ast.Argument, defs []argSpec, span source.Span, owner string) diagnostic.List {
	var diags diagnostic.List
	byName := make(map[string]argSpec, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}
	seen := make(map[string]bool)
	for _, a := range args {
		seen[a.Name.Text] = true
		argSpan, _ := a.Value.Location()
		if argSpan.File.IsZero() {
			argSpan = span
		}
		iv, ok := byName[a.Name.Text]
		if !ok {
			names := make([]string, len(defs))
			for i, d := range defs {
				names[i] = d.Name
			}
			diags = diags.Add(diagnostic.New(diagnostic.KindUndefinedArgument, argSpan,
				"%s has no argument %q", owner, a.Name.Text).WithHelp(didYouMean(a.Name.Text, names)))
			continue
		}
		diags = append(diags, validateValue(sch, a.Value, iv.Type, nil)...)
	}
	for _, d := range defs {
		if !seen[d.Name] && ast.IsNonNull(d.Type) && d.DefaultValue == nil {
			diags = diags.Add(diagnostic.New(diagnostic.KindMissingRequiredArgument, span,
				"%s is missing required argument %q", owner, d.Name))
		}
	}
	return diags
}

// validateValue checks that value is a legal literal (or variable
// reference) for expected, recursing through lists and input objects per
// §4.6's literal-type-by-literal-type coercion rules. vars is nil when
// variable references are not legal at this position (e.g. a default
// value or a directive argument in a type-system definition); otherwise
// it maps variable name to its declared type/default-presence.
func validateValue(sch *schema.Schema, value ast.Value, expected ast.Type, vars map[string]varInfo) diagnostic.List {
	span, _ := value.Location()

	if v, ok := value.(ast.VariableValue); ok {
		info, known := vars[v.Name.Text]
		if !known {
			return diagnostic.List{diagnostic.New(diagnostic.KindUndefinedVariable, span,
				"undefined variable $%s", v.Name.Text)}
		}
		if !typeCanBeUsedAs(info.Type, info.HasDefault, expected) {
			return diagnostic.List{diagnostic.New(diagnostic.KindInputCoercion, span,
				"variable $%s of type %s cannot be used where %s is expected", v.Name.Text, info.Type.String(), expected.String())}
		}
		return nil
	}

	if _, ok := value.(ast.NullValue); ok {
		if ast.IsNonNull(expected) {
			return diagnostic.List{diagnostic.New(diagnostic.KindInputCoercion, span,
				"null cannot be used where %s is expected", expected.String())}
		}
		return nil
	}

	switch t := expected.(type) {
	case ast.NonNullNamed:
		return validateValue(sch, value, ast.Named{Name: t.Name}, vars)
	case ast.NonNullList:
		return validateValue(sch, value, ast.List{Of: t.Of}, vars)
	case ast.List:
		lv, ok := value.(ast.ListValue)
		if !ok {
			// GraphQL coerces a single value of the item type into a
			// singleton list.
			return validateValue(sch, value, t.Of, vars)
		}
		var diags diagnostic.List
		for _, item := range lv.Values {
			diags = append(diags, validateValue(sch, item, t.Of, vars)...)
		}
		return diags
	case ast.Named:
		return validateNamedValue(sch, value, t.Name.Text, span)
	}
	return nil
}

// validateNamedValue checks value against the innermost named type
// typeName, after list/non-null unwrapping.
func validateNamedValue(sch *schema.Schema, value ast.Value, typeName string, span source.Span) diagnostic.List {
	if io, ok := sch.GetInputObject(typeName); ok {
		ov, ok := value.(ast.ObjectValue)
		if !ok {
			return diagnostic.List{diagnostic.New(diagnostic.KindInputCoercion, span,
				"expected an object literal for input type %q", typeName)}
		}
		var diags diagnostic.List
		seen := make(map[string]bool)
		for _, f := range ov.Fields {
			seen[f.Name.Text] = true
			c, ok := io.Fields.Get(f.Name.Text)
			if !ok {
				diags = diags.Add(diagnostic.New(diagnostic.KindUndefinedField, span,
					"%q is not a field of input type %q", f.Name.Text, typeName))
				continue
			}
			diags = append(diags, validateValue(sch, f.Value, (*c.Get()).Type, nil)...)
		}
		for _, spec := range inputValueArgSpecs(io.Fields) {
			if !seen[spec.Name] && ast.IsNonNull(spec.Type) && spec.DefaultValue == nil {
				diags = diags.Add(diagnostic.New(diagnostic.KindMissingRequiredField, span,
					"input object %q is missing required field %q", typeName, spec.Name))
			}
		}
		return diags
	}

	if e, ok := sch.GetEnum(typeName); ok {
		ev, ok := value.(ast.EnumValue)
		if !ok {
			return diagnostic.List{diagnostic.New(diagnostic.KindInputCoercion, span,
				"expected an enum value for type %q", typeName)}
		}
		if !e.Values.Has(ev.Value.Text) {
			return diagnostic.List{diagnostic.New(diagnostic.KindInputCoercion, span,
				"%q is not a member of enum %q", ev.Value.Text, typeName)}
		}
		return nil
	}

	switch typeName {
	case "Int":
		if _, ok := value.(ast.IntValue); ok {
			return nil
		}
		return diagnostic.List{diagnostic.New(diagnostic.KindInputCoercion, span, "expected an Int literal")}
	case "Float":
		switch value.(type) {
		case ast.FloatValue, ast.IntValue:
			return nil
		}
		return diagnostic.List{diagnostic.New(diagnostic.KindInputCoercion, span, "expected a Float literal")}
	case "String", "ID":
		switch value.(type) {
		case ast.StringValue:
			return nil
		case ast.IntValue:
			if typeName == "ID" {
				return nil
			}
		}
		return diagnostic.List{diagnostic.New(diagnostic.KindInputCoercion, span, "expected a %s literal", typeName)}
	case "Boolean":
		if _, ok := value.(ast.BooleanValue); ok {
			return nil
		}
		return diagnostic.List{diagnostic.New(diagnostic.KindInputCoercion, span, "expected a Boolean literal")}
	default:
		// Custom scalar: any literal shape is accepted, coercion is the
		// scalar's own business at execution time, outside this module's
		// scope (§1 "does not perform ... scalar coercion at runtime").
		return nil
	}
}

// typeCanBeUsedAs reports whether a variable of type varType (optionally
// defaulted) may be passed where expected is required, per §4.6's
// variable-assignability rule: identical types are always fine; a
// nullable variable with a default value may fill a non-null expected
// slot, since the default guarantees a non-null runtime value whenever
// the variable itself is omitted.
func typeCanBeUsedAs(varType ast.Type, hasDefault bool, expected ast.Type) bool {
	if ast.SameType(varType, expected) {
		return true
	}
	if hasDefault && !ast.IsNonNull(varType) {
		if exp, ok := expected.(ast.NonNullNamed); ok {
			if v, ok := varType.(ast.Named); ok {
				return v.Name.Equal(exp.Name)
			}
		}
		if exp, ok := expected.(ast.NonNullList); ok {
			if v, ok := varType.(ast.List); ok {
				return ast.SameType(v.Of, exp.Of)
			}
		}
	}
	return false
}
