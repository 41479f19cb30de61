package validate

import (
	"github.com/shyptr/gqlcore/diagnostic"
	"github.com/shyptr/gqlcore/executable"
)

// detectFragmentCycles walks every fragment spread reachable from each
// fragment definition, reporting a FragmentCycle the first time a
// fragment is found to (transitively) spread itself.
//
// Grounded on the teacher's detectFragmentCycle/detectFragmentCycleSel
// (system/validation/validate.go), which track the current spread path
// and its position so the reported cycle names only the repeating
// sub-path rather than the whole walk from the top-level fragment.
func detectFragmentCycles(ctx *execContext) diagnostic.List {
	var diags diagnostic.List
	reported := make(map[string]bool)

	var visit func(name string, path []string, pathIndex map[string]int)
	visit = func(name string, path []string, pathIndex map[string]int) {
		if idx, onPath := pathIndex[name]; onPath {
			if !reported[name] {
				reported[name] = true
				cycle := append(append([]string{}, path[idx:]...), name)
				frag, _ := ctx.doc.Fragments.Get(name)
				diags = diags.Add(diagnostic.New(diagnostic.KindFragmentCycle, frag.Span,
					"fragment %q is involved in a cycle via %v", name, cycle))
			}
			return
		}
		frag, ok := ctx.doc.Fragments.Get(name)
		if !ok {
			return
		}
		pathIndex[name] = len(path)
		path = append(path, name)
		walkSpreads(frag.Selections, func(spreadName string) {
			visit(spreadName, path, pathIndex)
		})
		delete(pathIndex, name)
	}

	for _, name := range ctx.doc.Fragments.Keys() {
		visit(name, nil, make(map[string]int))
	}
	return diags
}

// walkSpreads calls fn with the name of every fragment spread reachable
// from sels, recursing through fields and inline fragments — a spread
// nested arbitrarily deep under a field still closes a cycle, since
// expanding the fragment's body would expand it again at that depth
// forever.
func walkSpreads(sels []executable.Selection, fn func(name string)) {
	for _, sel := range sels {
		switch s := sel.(type) {
		case executable.FragmentSpread:
			fn(s.AST.Name.Text)
		case executable.InlineFragment:
			walkSpreads(s.Selections, fn)
		case executable.Field:
			walkSpreads(s.Selections, fn)
		}
	}
}
