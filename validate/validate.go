package validate

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shyptr/gqlcore/diagnostic"
	"github.com/shyptr/gqlcore/executable"
	"github.com/shyptr/gqlcore/schema"
)

// Option configures Schema/Executable's fan-out, grounded on the same
// functional-options pattern schema.Builder uses (schema/builder.go).
type Option func(*runner)

// WithLogger attaches a zap logger that a recovered validator panic is
// reported to at error level, stack trace included — mirroring
// schema.Builder's WithLogger (§B "Logging").
func WithLogger(l *zap.Logger) Option {
	return func(r *runner) { r.log = l }
}

type runner struct {
	log *zap.Logger
}

func newRunner(opts []Option) *runner {
	r := &runner{log: zap.NewNop()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Schema runs every schema-level validator family (schema_rules.go,
// §4.6 "Schema validators") concurrently — they are required to be pure
// and order-independent, touching only sch — merging their results and
// sorting once before returning.
//
// Grounded on the teacher's top-level Validate(schema)
// (system/validation/validate.go), generalized from a sequential call
// chain to concurrent fan-out: this package's validator families share
// no mutable context the way the teacher's single context struct does,
// so nothing stops them running in parallel.
func Schema(sch *schema.Schema, opts ...Option) diagnostic.List {
	ctx := newSchemaContext(sch)
	r := newRunner(opts)
	results := r.runConcurrently(len(schemaValidators), func(i int) diagnostic.List {
		return schemaValidators[i](ctx)
	})
	return mergeSorted(results)
}

// Executable runs every executable-document validator family
// (executable_rules.go, cycles.go, merge.go, §4.6 "Executable
// validators") concurrently: the whole-document passes, plus one
// independent task per operation and per fragment.
func Executable(sch *schema.Schema, doc *executable.Document, opts ...Option) diagnostic.List {
	ctx := newExecContext(sch, doc)

	tasks := make([]func() diagnostic.List, 0, len(executableValidators)+doc.Operations.Len()*2+doc.Fragments.Len())
	for _, v := range executableValidators {
		v := v
		tasks = append(tasks, func() diagnostic.List { return v(ctx) })
	}
	doc.Operations.ForEach(func(_ string, op *executable.Operation) {
		op := op
		tasks = append(tasks,
			func() diagnostic.List { return validateOperationVariables(ctx, op) },
			func() diagnostic.List { return validateOperationSelections(ctx, op) },
		)
	})
	doc.Fragments.ForEach(func(_ string, frag *executable.Fragment) {
		frag := frag
		tasks = append(tasks, func() diagnostic.List { return validateFragmentDefinition(ctx, frag) })
	})

	r := newRunner(opts)
	results := r.runConcurrently(len(tasks), func(i int) diagnostic.List { return tasks[i]() })
	return mergeSorted(results)
}

func mergeSorted(results []diagnostic.List) diagnostic.List {
	var diags diagnostic.List
	for _, r := range results {
		diags = append(diags, r...)
	}
	diags.Sort()
	return diags
}

// runConcurrently runs fn(0..n-1) concurrently via an errgroup. A
// validator that panics is recovered and folded into a combined
// (multierr) error rather than crashing the whole pass — one rule's bug
// costs that rule's diagnostics, not every other rule's too. The combined
// panic error is wrapped with github.com/pkg/errors for a stack trace
// pointing at the recover site, not just the panic value's string, and
// logged at error level (never surfaced as a Diagnostic — §B "Errors/
// diagnostics": internal invariant violations go to logs, not results).
func (r *runner) runConcurrently(n int, fn func(i int) diagnostic.List) []diagnostic.List {
	results := make([]diagnostic.List, n)
	var g errgroup.Group
	var mu sync.Mutex
	var panics error
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			defer func() {
				if rec := recover(); rec != nil {
					mu.Lock()
					panics = multierr.Append(panics, errors.Errorf("validator panicked: %v", rec))
					mu.Unlock()
				}
			}()
			results[i] = fn(i)
			return nil
		})
	}
	_ = g.Wait()
	if panics != nil {
		r.log.Error("validator pass recovered a panic", zap.Error(panics))
	}
	return results
}
