package validate

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/diagnostic"
	"github.com/shyptr/gqlcore/executable"
	"github.com/shyptr/gqlcore/schema"
	"github.com/shyptr/gqlcore/source"
)

// executableValidators is every independent executable-document
// validator family (§4.6 "Executable validators"), fanned out
// concurrently by Executable in validate.go. Only the three whole-document
// passes are listed here; per-operation and per-fragment checks are added
// as tasks of their own at call time, since their count depends on doc,
// and run concurrently alongside them.
var executableValidators = []func(*execContext) diagnostic.List{
	validateAnonymousOperations,
	detectFragmentCycles,
	validateFieldMerging,
}

// validateAnonymousOperations checks that an anonymous operation is the
// document's only operation (§4.6 "Anonymous operation uniqueness").
func validateAnonymousOperations(ctx *execContext) diagnostic.List {
	anon, ok := ctx.doc.AnonymousOperation()
	if !ok || ctx.doc.Operations.Len() <= 1 {
		return nil
	}
	return diagnostic.List{diagnostic.New(diagnostic.KindAnonymousOperationNotAlone, anon.Span,
		"this anonymous operation must be the only defined operation")}
}

// validateOperationVariables checks every declared variable's type is an
// input type, its default value (if any) coerces to that type, every
// variable reference reachable from the operation (through its own
// selections and any fragments it spreads) names a declared variable,
// and every declared variable is used at least once (§4.6 "Variable
// definitions").
func validateOperationVariables(ctx *execContext, op *executable.Operation) diagnostic.List {
	var diags diagnostic.List
	vars := make(map[string]varInfo, len(op.Variables))
	for _, v := range op.Variables {
		vars[v.Var.Text] = varInfo{Type: v.Type, HasDefault: v.DefaultValue != nil}
		if !ctx.schema.IsInputType(v.Type) {
			span, _ := v.Var.Location()
			diags = diags.Add(diagnostic.New(diagnostic.KindInputTypeExpected, span,
				"%q is not an input type, and cannot be used for variable $%s", ast.InnerNamedType(v.Type).Text, v.Var.Text))
		}
		if v.DefaultValue != nil {
			diags = append(diags, validateValue(ctx.schema, v.DefaultValue, v.Type, nil)...)
		}
	}

	walkOperationVariableUses(ctx, op, func(name string, span source.Span) {
		if _, declared := vars[name]; !declared {
			diags = diags.Add(diagnostic.New(diagnostic.KindUndefinedVariable, span,
				"undefined variable $%s", name))
			return
		}
		ctx.markUsed(op, name)
	})

	used := ctx.usedVars[op]
	for _, v := range op.Variables {
		if !used[v.Var.Text] {
			span, _ := v.Var.Location()
			diags = diags.Add(diagnostic.New(diagnostic.KindUnusedVariable, span,
				"variable $%s is never used", v.Var.Text))
		}
	}
	return diags
}

// walkOperationVariableUses visits every VariableValue reachable from
// op's selections and their arguments/directives, recursing through
// fragment spreads.
func walkOperationVariableUses(ctx *execContext, op *executable.Operation, visit func(name string, span source.Span)) {
	visitDirectiveArgs(op.Directives, visit)
	walkSelectionVariableUses(ctx, op.Selections, make(map[string]bool), visit)
}

func walkSelectionVariableUses(ctx *execContext, sels []executable.Selection, visitedFragments map[string]bool, visit func(name string, span source.Span)) {
	for _, sel := range sels {
		switch s := sel.(type) {
		case executable.Field:
			for _, arg := range s.AST.Arguments {
				visitValueVariableUses(arg.Value, visit)
			}
			visitDirectiveArgs(s.AST.Directives, visit)
			walkSelectionVariableUses(ctx, s.Selections, visitedFragments, visit)
		case executable.InlineFragment:
			visitDirectiveArgs(s.AST.Directives, visit)
			walkSelectionVariableUses(ctx, s.Selections, visitedFragments, visit)
		case executable.FragmentSpread:
			visitDirectiveArgs(s.AST.Directives, visit)
			name := s.AST.Name.Text
			if visitedFragments[name] {
				continue
			}
			frag, ok := ctx.doc.Fragments.Get(name)
			if !ok {
				continue
			}
			visitedFragments[name] = true
			walkSelectionVariableUses(ctx, frag.Selections, visitedFragments, visit)
			delete(visitedFragments, name)
		}
	}
}

func visitDirectiveArgs(dl ast.DirectiveList, visit func(name string, span source.Span)) {
	for _, d := range dl {
		for _, arg := range d.Args {
			visitValueVariableUses(arg.Value, visit)
		}
	}
}

func visitValueVariableUses(v ast.Value, visit func(name string, span source.Span)) {
	switch val := v.(type) {
	case ast.VariableValue:
		span, _ := val.Location()
		visit(val.Name.Text, span)
	case ast.ListValue:
		for _, item := range val.Values {
			visitValueVariableUses(item, visit)
		}
	case ast.ObjectValue:
		for _, f := range val.Fields {
			visitValueVariableUses(f.Value, visit)
		}
	}
}

// validateOperationSelections checks selection legality (§4.6
// "Selection legality") over one operation's own selection tree.
func validateOperationSelections(ctx *execContext, op *executable.Operation) diagnostic.List {
	rootLoc := directiveLocationForOperation(op.Type)
	diags := validateDirectiveUsages(newSchemaContext(ctx.schema), op.Directives, rootLoc)
	diags = append(diags, checkSelections(ctx, op.Selections, op.ParentType, op.Type, true)...)
	return diags
}

// validateFragmentDefinition checks one fragment's own selection tree
// and that its type condition names a composite type (§4.6 "Fragment
// type condition").
func validateFragmentDefinition(ctx *execContext, frag *executable.Fragment) diagnostic.List {
	var diags diagnostic.List
	if !canBeFragmentCondition(ctx.schema, frag.TypeCondition) {
		diags = diags.Add(diagnostic.New(diagnostic.KindFragmentTypeConditionMismatch, frag.Span,
			"fragment %q cannot condition on non-composite type %q", frag.Name, frag.TypeCondition))
	}
	diags = append(diags, validateDirectiveUsages(newSchemaContext(ctx.schema), frag.Directives, "FRAGMENT_DEFINITION")...)
	diags = append(diags, checkSelections(ctx, frag.Selections, frag.TypeCondition, ast.Query, false)...)
	return diags
}

func canBeFragmentCondition(sch *schema.Schema, typeName string) bool {
	if _, ok := sch.GetObject(typeName); ok {
		return true
	}
	if _, ok := sch.GetInterface(typeName); ok {
		return true
	}
	if _, ok := sch.GetUnion(typeName); ok {
		return true
	}
	return false
}

// checkSelections walks sels recursively, checking leaf/composite field
// shape, that every field exists on its resolved parent type (meta-
// fields always legal), fragment/inline-fragment type-condition
// assignability, directive usage, and argument coercion. enclosingType
// is the type sels themselves were selected against (an operation's root
// type, a fragment's type condition, or a field's inner return type).
// isRoot marks the operation's own top-level selection set, the only
// position `__schema`/`__type` are legal at (§4.6 "Introspection query
// consistency").
func checkSelections(ctx *execContext, sels []executable.Selection, enclosingType string, opType ast.OperationType, isRoot bool) diagnostic.List {
	var diags diagnostic.List
	for _, sel := range sels {
		switch s := sel.(type) {
		case executable.Field:
			diags = append(diags, checkField(ctx, s, opType, isRoot)...)
		case executable.InlineFragment:
			if s.AST.TypeCondition != nil && enclosingType != "" && !typeConditionApplies(ctx.schema, s.ParentType, enclosingType) {
				span, _ := s.AST.Location()
				diags = diags.Add(diagnostic.New(diagnostic.KindInlineFragmentTypeConditionMismatch, span,
					"inline fragment on %q cannot apply within a selection on %q", s.ParentType, enclosingType))
			}
			diags = append(diags, validateDirectiveUsages(newSchemaContext(ctx.schema), s.AST.Directives, "INLINE_FRAGMENT")...)
			diags = append(diags, checkSelections(ctx, s.Selections, s.ParentType, opType, false)...)
		case executable.FragmentSpread:
			diags = append(diags, validateDirectiveUsages(newSchemaContext(ctx.schema), s.AST.Directives, "FRAGMENT_SPREAD")...)
			frag, ok := ctx.doc.Fragments.Get(s.AST.Name.Text)
			if !ok {
				span, _ := s.AST.Location()
				diags = diags.Add(diagnostic.New(diagnostic.KindUndefinedFragment, span,
					"undefined fragment %q", s.AST.Name.Text))
				continue
			}
			if enclosingType != "" && !typeConditionApplies(ctx.schema, frag.TypeCondition, enclosingType) {
				span, _ := s.AST.Location()
				diags = diags.Add(diagnostic.New(diagnostic.KindFragmentTypeConditionMismatch, span,
					"fragment %q on %q cannot apply within a selection on %q", s.AST.Name.Text, frag.TypeCondition, enclosingType))
			}
		}
	}
	return diags
}

// typeConditionApplies reports whether a selection conditioned on
// condition is legal given the type it narrows from parentType, per the
// five assignability rules in §4.6: object-onto-object requires
// identity, object-onto-interface/union requires membership,
// interface-onto-interface requires a shared implementer, union-onto-
// anything requires overlapping possible types.
func typeConditionApplies(sch *schema.Schema, condition, parentType string) bool {
	if condition == parentType {
		return true
	}
	condPossible := sch.PossibleTypes(condition)
	parentPossible := sch.PossibleTypes(parentType)
	for _, c := range condPossible {
		for _, p := range parentPossible {
			if c == p {
				return true
			}
		}
	}
	return false
}

func checkField(ctx *execContext, f executable.Field, opType ast.OperationType, isRoot bool) diagnostic.List {
	var diags diagnostic.List
	span, _ := f.AST.Location()
	name := f.AST.Name.Text

	if meta, ok := metaFieldType(name); ok {
		if (name == "__schema" || name == "__type") && !isRoot {
			diags = diags.Add(diagnostic.New(diagnostic.KindIntrospectionMisuse, span,
				"%s is only legal as a top-level field of a query operation", name))
		}
		if name != "__typename" && opType == ast.Subscription {
			diags = diags.Add(diagnostic.New(diagnostic.KindIntrospectionMisuse, span,
				"%s is not legal in a subscription", name))
		}
		if name == "__typename" && isRoot && opType == ast.Subscription {
			diags = diags.Add(diagnostic.New(diagnostic.KindIntrospectionMisuse, span,
				"%s is not legal at the root of a subscription", name))
		}
		diags = append(diags, validateDirectiveUsages(newSchemaContext(ctx.schema), f.AST.Directives, "FIELD")...)
		if hasSubfieldsOf(ctx.schema, meta) {
			if !f.AST.SelectionSet.Has {
				diags = diags.Add(diagnostic.New(diagnostic.KindCompositeFieldMissingSelection, span,
					"field %q of type %q must have a selection of subfields", name, meta))
			} else {
				diags = append(diags, checkSelections(ctx, f.Selections, meta, opType, false)...)
			}
		} else if f.AST.SelectionSet.Has {
			diags = diags.Add(diagnostic.New(diagnostic.KindLeafFieldHasSelection, span,
				"field %q is a leaf and cannot have a selection set", name))
		}
		return diags
	}

	if f.ParentType == "" {
		// Parent resolution already failed upstream; suppress cascading
		// diagnostics here (§4.5).
		return diags
	}

	fieldDef, ok := ctx.schema.TypeField(f.ParentType, name)
	if !ok {
		var names []string
		collectFieldNames(ctx.schema, f.ParentType, &names)
		diags = diags.Add(diagnostic.New(diagnostic.KindUndefinedField, span,
			"field %q does not exist on type %q", name, f.ParentType).WithHelp(didYouMean(name, names)))
		return diags
	}

	leaf := isLeafType(ctx.schema, fieldDef.Type)
	if leaf && f.AST.SelectionSet.Has {
		diags = diags.Add(diagnostic.New(diagnostic.KindLeafFieldHasSelection, span,
			"field %q is a leaf and cannot have a selection set", name))
	}
	if !leaf && !f.AST.SelectionSet.Has {
		diags = diags.Add(diagnostic.New(diagnostic.KindCompositeFieldMissingSelection, span,
			"field %q must have a selection of subfields", name))
	}

	diags = append(diags, validateDirectiveUsages(newSchemaContext(ctx.schema), f.AST.Directives, "FIELD")...)
	diags = append(diags, validateArgumentsAgainst(ctx.schema, f.AST.Arguments, inputValueArgSpecs(fieldDef.Arguments), span, "field "+f.ParentType+"."+name)...)

	if !leaf {
		innerType := ast.InnerNamedType(fieldDef.Type).Text
		diags = append(diags, checkSelections(ctx, f.Selections, innerType, opType, false)...)
	}
	return diags
}

func collectFieldNames(sch *schema.Schema, typeName string, out *[]string) {
	if o, ok := sch.GetObject(typeName); ok {
		*out = append(*out, o.Fields.Keys()...)
		return
	}
	if i, ok := sch.GetInterface(typeName); ok {
		*out = append(*out, i.Fields.Keys()...)
	}
}

func isLeafType(sch *schema.Schema, t ast.Type) bool {
	name := ast.InnerNamedType(t).Text
	if _, ok := sch.GetScalar(name); ok {
		return true
	}
	if _, ok := sch.GetEnum(name); ok {
		return true
	}
	return false
}

func hasSubfieldsOf(sch *schema.Schema, typeName string) bool {
	return !isLeafType(sch, ast.Named{Name: ast.NewName(typeName)})
}

// metaFieldType mirrors executable.metaFieldType (unexported, so not
// reachable from here): the fixed return type of the three introspection
// meta-fields legal on any composite selection set.
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

func directiveLocationForOperation(op ast.OperationType) string {
	switch op {
	case ast.Mutation:
		return "MUTATION"
	case ast.Subscription:
		return "SUBSCRIPTION"
	default:
		return "QUERY"
	}
}
