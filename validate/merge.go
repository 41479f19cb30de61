package validate

import (
	"fmt"
	"sort"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/diagnostic"
	"github.com/shyptr/gqlcore/executable"
	"github.com/shyptr/gqlcore/schema"
)

// mergeState memoizes which response-name groups have already been
// checked, keyed by the sorted set of field spans contributing to the
// group — the same span set recurs whenever two sibling fragment
// spreads both bring in the same pair of fields, and re-checking it
// every time is wasted, potentially exponential work.
//
// Grounded on the teacher's context.overlapValidated
// (system/validation/validate.go), a set keyed by selectionPair that
// serves the identical purpose.
type mergeState struct {
	checked map[string]bool
}

// validateFieldMerging checks that every selection set in doc — each
// operation's and each fragment's own top-level set — obeys §4.6's
// field-merging rule, recursing into the merged shape of same-response-
// name field groups.
func validateFieldMerging(ctx *execContext) diagnostic.List {
	state := &mergeState{checked: make(map[string]bool)}
	var diags diagnostic.List
	ctx.doc.Operations.ForEach(func(_ string, op *executable.Operation) {
		diags = append(diags, checkSetMerges(ctx.schema, ctx.doc, op.Selections, state)...)
	})
	ctx.doc.Fragments.ForEach(func(_ string, frag *executable.Fragment) {
		diags = append(diags, checkSetMerges(ctx.schema, ctx.doc, frag.Selections, state)...)
	})
	return diags
}

func checkSetMerges(sch *schema.Schema, doc *executable.Document, sels []executable.Selection, state *mergeState) diagnostic.List {
	fields := collectFields(doc, sels, make(map[string]bool))
	groups := groupByResponseName(fields)

	var diags diagnostic.List
	for responseName, group := range groups {
		key := groupKey(responseName, group)
		if state.checked[key] {
			continue
		}
		state.checked[key] = true

		ok := true
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if d := checkFieldPair(sch, group[i], group[j]); d != nil {
					diags = diags.Add(d)
					ok = false
				}
			}
		}
		if !ok {
			continue
		}
		var nested []executable.Selection
		for _, f := range group {
			nested = append(nested, f.Selections...)
		}
		if len(nested) > 0 {
			diags = append(diags, checkSetMerges(sch, doc, nested, state)...)
		}
	}
	return diags
}

// groupKey identifies a response-name group by its contributing fields'
// spans, stable across however many times the same fragment is spread
// in to reach it.
func groupKey(responseName string, group []executable.Field) string {
	spans := make([]string, len(group))
	for i, f := range group {
		span, _ := f.AST.Location()
		spans[i] = fmt.Sprintf("%v:%d:%d", span.File, span.Start, span.End)
	}
	sort.Strings(spans)
	return responseName + "|" + fmt.Sprint(spans)
}

// collectFields flattens sels into the Field selections it directly
// contains, expanding inline fragments and fragment spreads (but not
// recursing into a field's own sub-selections — those belong to the
// next nesting level, checked separately once their group merges).
// visitedFragments guards against revisiting a fragment already on the
// current expansion path; fragment cycles are diagnosed separately
// (cycles.go) and this guard only prevents infinite recursion here.
func collectFields(doc *executable.Document, sels []executable.Selection, visitedFragments map[string]bool) []executable.Field {
	var out []executable.Field
	for _, sel := range sels {
		switch s := sel.(type) {
		case executable.Field:
			out = append(out, s)
		case executable.InlineFragment:
			out = append(out, collectFields(doc, s.Selections, visitedFragments)...)
		case executable.FragmentSpread:
			name := s.AST.Name.Text
			if visitedFragments[name] {
				continue
			}
			frag, ok := doc.Fragments.Get(name)
			if !ok {
				continue
			}
			visitedFragments[name] = true
			out = append(out, collectFields(doc, frag.Selections, visitedFragments)...)
			delete(visitedFragments, name)
		}
	}
	return out
}

func groupByResponseName(fields []executable.Field) map[string][]executable.Field {
	m := make(map[string][]executable.Field)
	for _, f := range fields {
		name := f.AST.ResponseName()
		m[name] = append(m[name], f)
	}
	return m
}

// checkFieldPair reports a FieldMergeConflict between a and b if their
// parent types could coincide on the same concrete object at runtime and
// they are not otherwise mergeable: same underlying field name, same
// arguments, and structurally identical return types (§4.6 "Field
// merging").
func checkFieldPair(sch *schema.Schema, a, b executable.Field) *diagnostic.Diagnostic {
	if !possiblyIdentical(sch, a.ParentType, b.ParentType) {
		return nil
	}
	aSpan, _ := a.AST.Location()
	bSpan, _ := b.AST.Location()

	if a.AST.Name.Text != b.AST.Name.Text {
		return diagnostic.New(diagnostic.KindFieldMergeConflict, aSpan,
			"fields %q conflict because %q and %q are different fields", a.AST.ResponseName(), a.AST.Name.Text, b.AST.Name.Text).
			WithLabel(bSpan, "the other selection")
	}
	if !sameArguments(a.AST.Arguments, b.AST.Arguments) {
		return diagnostic.New(diagnostic.KindFieldMergeConflict, aSpan,
			"fields %q conflict because they have differing arguments", a.AST.ResponseName()).
			WithLabel(bSpan, "the other selection")
	}
	fa, okA := sch.TypeField(a.ParentType, a.AST.Name.Text)
	fb, okB := sch.TypeField(b.ParentType, b.AST.Name.Text)
	if okA && okB && !ast.SameType(fa.Type, fb.Type) {
		return diagnostic.New(diagnostic.KindFieldMergeConflict, aSpan,
			"fields %q conflict because they return different types %s and %s", a.AST.ResponseName(), fa.Type.String(), fb.Type.String()).
			WithLabel(bSpan, "the other selection")
	}
	return nil
}

func sameArguments(a, b []ast.Argument) bool {
	if len(a) != len(b) {
		return false
	}
	byName := make(map[string]ast.Value, len(b))
	for _, arg := range b {
		byName[arg.Name.Text] = arg.Value
	}
	for _, arg := range a {
		v, ok := byName[arg.Name.Text]
		if !ok || !ast.SameValue(arg.Value, v) {
			return false
		}
	}
	return true
}

// possiblyIdentical reports whether a selection on typeA and one on
// typeB could apply to the very same runtime object, and therefore must
// be mergeable. An unresolved parent type (the empty string, left by an
// earlier undefined-field error) is treated as "no overlap" rather than
// "overlaps with everything", so a prior error does not cascade into a
// spurious merge conflict (§4.5 "missing parent types ... suppress
// downstream diagnostics").
func possiblyIdentical(sch *schema.Schema, typeA, typeB string) bool {
	if typeA == "" || typeB == "" {
		return false
	}
	if typeA == typeB {
		return true
	}
	for _, x := range sch.PossibleTypes(typeA) {
		for _, y := range sch.PossibleTypes(typeB) {
			if x == y {
				return true
			}
		}
	}
	return false
}
