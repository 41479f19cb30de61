package validate

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/diagnostic"
	"github.com/shyptr/gqlcore/schema"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

// schemaValidators is every independent schema-level validator family
// (§4.6 "Schema validators"), fanned out concurrently by Schema in
// validate.go.
var schemaValidators = []func(*schemaContext) diagnostic.List{
	validateRootOperations,
	validateTypeWellFormedness,
	validateInterfaceImplementations,
	validateUnions,
	validateDirectiveDefs,
	func(ctx *schemaContext) diagnostic.List {
		return validateDirectiveUsages(ctx, componentDirectives(ctx.schema.SchemaDirectives), "SCHEMA")
	},
}

// validateRootOperations checks that every bound root operation names a
// real object type (§4.3 invariant: root operations are object types).
// The builder only resolves the *name*; it never confirms the name
// actually designates an ObjectType, since a dangling root binding is a
// validation concern, not a build-time one.
func validateRootOperations(ctx *schemaContext) diagnostic.List {
	var diags diagnostic.List
	check := func(slot *schema.ComponentName, opName string) {
		if slot == nil {
			return
		}
		name := *slot.Get()
		if _, ok := ctx.schema.GetObject(name); !ok {
			span, _ := slot.Node.Location()
			diags = diags.Add(diagnostic.New(diagnostic.KindUndefinedType, span,
				"%s root type %q is not defined as an object type", opName, name))
		}
	}
	check(ctx.schema.Root.Query, "query")
	check(ctx.schema.Root.Mutation, "mutation")
	check(ctx.schema.Root.Subscription, "subscription")
	return diags
}

// validateTypeWellFormedness checks that every field/argument/input-field
// type reference resolves to a type of the right category: output types
// in field-return position, input types in argument/input-field position.
func validateTypeWellFormedness(ctx *schemaContext) diagnostic.List {
	var diags diagnostic.List
	sch := ctx.schema

	checkArgs := func(args *syntax.OrderedMap[syntax.Component[schema.InputValue]]) {
		args.ForEach(func(_ string, c syntax.Component[schema.InputValue]) {
			iv := *c.Get()
			span, _ := c.Node.Location()
			if !sch.IsInputType(iv.Type) {
				diags = diags.Add(diagnostic.New(diagnostic.KindInputTypeExpected, span,
					"%q is not an input type, and cannot be used for argument %q", ast.InnerNamedType(iv.Type).Text, iv.Name))
			}
			diags = append(diags, validateDirectiveUsages(ctx, componentDirectives(iv.Directives), "ARGUMENT_DEFINITION")...)
		})
	}

	sch.Types.ForEach(func(name string, t schema.ExtendedType) {
		switch v := t.(type) {
		case schema.ObjectType:
			v.Fields.ForEach(func(_ string, c syntax.Component[schema.Field]) {
				f := *c.Get()
				span, _ := c.Node.Location()
				if !sch.IsOutputType(f.Type) {
					diags = diags.Add(diagnostic.New(diagnostic.KindOutputTypeExpected, span,
						"%q is not an output type, and cannot be used as the type of %s.%s", ast.InnerNamedType(f.Type).Text, name, f.Name))
				}
				checkArgs(f.Arguments)
				diags = append(diags, validateDirectiveUsages(ctx, componentDirectives(f.Directives), "FIELD_DEFINITION")...)
			})
		case schema.InterfaceType:
			v.Fields.ForEach(func(_ string, c syntax.Component[schema.Field]) {
				f := *c.Get()
				span, _ := c.Node.Location()
				if !sch.IsOutputType(f.Type) {
					diags = diags.Add(diagnostic.New(diagnostic.KindOutputTypeExpected, span,
						"%q is not an output type, and cannot be used as the type of %s.%s", ast.InnerNamedType(f.Type).Text, name, f.Name))
				}
				checkArgs(f.Arguments)
			})
		case schema.InputObjectType:
			v.Fields.ForEach(func(_ string, c syntax.Component[schema.InputValue]) {
				iv := *c.Get()
				span, _ := c.Node.Location()
				if !sch.IsInputType(iv.Type) {
					diags = diags.Add(diagnostic.New(diagnostic.KindInputTypeExpected, span,
						"%q is not an input type, and cannot be used as the type of %s.%s", ast.InnerNamedType(iv.Type).Text, name, iv.Name))
				}
				if iv.DefaultValue != nil {
					diags = append(diags, validateValue(ctx.schema, iv.DefaultValue, iv.Type, nil)...)
				}
			})
		}
	})
	return diags
}

// validateInterfaceImplementations checks that the implements graph is
// acyclic and that every implemented interface's fields are actually
// present on the implementing type, with a compatible signature (§4.6
// "Interface implementation").
func validateInterfaceImplementations(ctx *schemaContext) diagnostic.List {
	var diags diagnostic.List
	sch := ctx.schema

	// Cycle check: interfaces implementing interfaces must form a DAG.
	state := make(map[string]int) // 0 unvisited, 1 in-progress, 2 done
	var walk func(name string) bool
	walk = func(name string) bool {
		switch state[name] {
		case 1:
			return true
		case 2:
			return false
		}
		iface, ok := sch.GetInterface(name)
		if !ok {
			return false
		}
		state[name] = 1
		for _, parent := range iface.Implements.Keys() {
			if walk(parent) {
				return true
			}
		}
		state[name] = 2
		return false
	}
	sch.Types.ForEach(func(name string, t schema.ExtendedType) {
		if _, ok := t.(schema.InterfaceType); ok && state[name] == 0 && walk(name) {
			diags = diags.Add(diagnostic.New(diagnostic.KindInterfaceImplementationCycle, source.Span{},
				"interface %q participates in an implements cycle", name))
		}
	})

	sch.Types.ForEach(func(typeName string, t schema.ExtendedType) {
		var implements *syntax.OrderedMap[schema.ComponentName]
		var fields *syntax.OrderedMap[syntax.Component[schema.Field]]
		switch v := t.(type) {
		case schema.ObjectType:
			implements, fields = v.Implements, v.Fields
		case schema.InterfaceType:
			implements, fields = v.Implements, v.Fields
		default:
			return
		}
		for _, ifaceName := range implements.Keys() {
			iface, ok := sch.GetInterface(ifaceName)
			if !ok {
				continue
			}
			iface.Fields.ForEach(func(fieldName string, ic syntax.Component[schema.Field]) {
				ifField := *ic.Get()
				ifSpan, _ := ic.Node.Location()
				oc, ok := fields.Get(fieldName)
				if !ok {
					diags = diags.Add(diagnostic.New(diagnostic.KindInterfaceFieldSignatureMismatch, ifSpan,
						"%q implements %q but does not define field %q", typeName, ifaceName, fieldName))
					return
				}
				ownField := *oc.Get()
				ownSpan, _ := oc.Node.Location()
				if !isCovariantType(sch, ownField.Type, ifField.Type) {
					diags = diags.Add(diagnostic.New(diagnostic.KindInterfaceFieldSignatureMismatch, ownSpan,
						"%s.%s returns %s, which is not covariant with %s.%s's declared %s",
						typeName, fieldName, ownField.Type.String(), ifaceName, fieldName, ifField.Type.String()))
				}
				ifField.Arguments.ForEach(func(argName string, iac syntax.Component[schema.InputValue]) {
					oac, ok := ownField.Arguments.Get(argName)
					if !ok || !ast.SameType((*oac.Get()).Type, (*iac.Get()).Type) {
						diags = diags.Add(diagnostic.New(diagnostic.KindInterfaceFieldSignatureMismatch, ownSpan,
							"%s.%s.%s must accept the same type %s declares", typeName, fieldName, argName, ifaceName))
					}
				})
			})
		}
	})

	return diags
}

// isCovariantType reports whether ownType is a legal override of
// declaredType: identical, or — when declaredType names an interface or
// union — ownType names a subtype of it, recursing through list/non-null
// wrappers per §4.6's covariance rule.
func isCovariantType(sch *schema.Schema, ownType, declaredType ast.Type) bool {
	if ast.SameType(ownType, declaredType) {
		return true
	}
	switch d := declaredType.(type) {
	case ast.NonNullNamed:
		if o, ok := ownType.(ast.NonNullNamed); ok {
			return sch.IsSubtype(d.Name.Text, o.Name.Text)
		}
		return false
	case ast.Named:
		switch o := ownType.(type) {
		case ast.Named:
			return sch.IsSubtype(d.Name.Text, o.Name.Text)
		case ast.NonNullNamed:
			return sch.IsSubtype(d.Name.Text, o.Name.Text)
		}
		return false
	case ast.NonNullList:
		if o, ok := ownType.(ast.NonNullList); ok {
			return isCovariantType(sch, o.Of, d.Of)
		}
		return false
	case ast.List:
		switch o := ownType.(type) {
		case ast.List:
			return isCovariantType(sch, o.Of, d.Of)
		case ast.NonNullList:
			return isCovariantType(sch, o.Of, d.Of)
		}
		return false
	}
	return false
}

// validateUnions checks that every union member names a defined object
// type and that no union is empty (§4.6 "Union wellness").
func validateUnions(ctx *schemaContext) diagnostic.List {
	var diags diagnostic.List
	ctx.schema.Types.ForEach(func(name string, t schema.ExtendedType) {
		u, ok := t.(schema.UnionType)
		if !ok {
			return
		}
		if u.Members.Len() == 0 {
			diags = diags.Add(diagnostic.New(diagnostic.KindUndefinedType, source.Span{},
				"union %q has no members", name))
			return
		}
		for _, member := range u.Members.Keys() {
			if _, ok := ctx.schema.GetObject(member); !ok {
				diags = diags.Add(diagnostic.New(diagnostic.KindUndefinedType, source.Span{},
					"union %q member %q is not defined as an object type", name, member))
			}
		}
	})
	return diags
}

// validateDirectiveDefs checks every custom directive definition's
// argument types are themselves valid input types.
func validateDirectiveDefs(ctx *schemaContext) diagnostic.List {
	var diags diagnostic.List
	ctx.schema.DirectiveDefs.ForEach(func(name string, d *schema.DirectiveDef) {
		d.Arguments.ForEach(func(argName string, iv schema.InputValue) {
			if !ctx.schema.IsInputType(iv.Type) {
				diags = diags.Add(diagnostic.New(diagnostic.KindInputTypeExpected, source.Span{},
					"%q is not an input type, and cannot be used for @%s(%s:)", ast.InnerNamedType(iv.Type).Text, name, argName))
			}
		})
	})
	return diags
}

// componentDirectives strips the Component wrapper off a directive list
// for validateDirectiveUsages, which only needs the AST shape.
func componentDirectives(cs []syntax.Component[ast.Directive]) ast.DirectiveList {
	out := make(ast.DirectiveList, len(cs))
	for i, c := range cs {
		out[i] = *c.Get()
	}
	return out
}

// validateDirectiveUsages checks that every directive in dl is defined,
// legal at loc, not repeated unless Repeatable, and supplied with known,
// required arguments (§4.6 "Directive usage").
func validateDirectiveUsages(ctx *schemaContext, dl ast.DirectiveList, loc string) diagnostic.List {
	var diags diagnostic.List
	seen := make(map[string]bool)
	for _, d := range dl {
		span, _ := d.Name.Location()
		def, ok := ctx.schema.DirectiveDefs.Get(d.Name.Text)
		if !ok {
			diags = diags.Add(diagnostic.New(diagnostic.KindUndefinedDirective, span,
				"unknown directive @%s", d.Name.Text).WithHelp(didYouMean(d.Name.Text, ctx.schema.DirectiveDefs.Keys())))
			continue
		}
		if seen[d.Name.Text] && !def.Repeatable {
			diags = diags.Add(diagnostic.New(diagnostic.KindNonRepeatableDirectiveRepeated, span,
				"directive @%s is not repeatable", d.Name.Text))
		}
		seen[d.Name.Text] = true
		legal := false
		for _, l := range def.Locations {
			if l == loc {
				legal = true
				break
			}
		}
		if !legal {
			diags = diags.Add(diagnostic.New(diagnostic.KindDirectiveLocationMismatch, span,
				"directive @%s is not valid at %s", d.Name.Text, loc))
		}
		diags = append(diags, validateArgumentsAgainst(ctx.schema, d.Args, directiveArgSpecs(def.Arguments), span, "directive @"+d.Name.Text)...)
	}
	return diags
}
