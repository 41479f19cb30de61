// Package gqlcore is the public façade over the compiler pipeline (§6.2):
// parse source text to a CST/AST, fold ASTs into a Schema or
// ExecutableDocument, validate, and print back to canonical syntax. It
// re-exports the pieces of syntax, ast, schema, executable and printer a
// caller needs without reaching into each package directly, and adds the
// two result carriers §4.8's failure semantics are built around.
package gqlcore

import (
	"github.com/shyptr/gqlcore/diagnostic"
)

// Valid wraps a value that has passed every applicable validator: by
// construction it carries no diagnostics, and §5 says a Valid value is
// freely shareable across goroutines without further synchronization —
// the type itself is the proof, there is nothing left to check.
type Valid[T any] struct {
	value T
}

// Get returns the validated value.
func (v Valid[T]) Get() T { return v.value }

// WithErrors carries a value produced by some stage of the pipeline
// alongside whatever diagnostics that stage accumulated building or
// validating it (§4.8). The value may be partial when Diagnostics is
// non-empty; callers that need a guaranteed-complete result should go
// through Valid via the Valid method rather than use Value directly.
type WithErrors[T any] struct {
	Value       T
	Diagnostics diagnostic.List
}

// Valid upgrades w to a Valid[T] if it carries no diagnostics.
func (w WithErrors[T]) Valid() (Valid[T], bool) {
	if len(w.Diagnostics) != 0 {
		return Valid[T]{}, false
	}
	return Valid[T]{value: w.Value}, true
}

// OK reports whether w carries no diagnostics at all — a looser check
// than Valid when T itself has no meaningful "validated" state (e.g. the
// plain build result of Schema::parse, which never ran validators).
func (w WithErrors[T]) OK() bool { return len(w.Diagnostics) == 0 }

func withErrors[T any](value T, diags diagnostic.List) WithErrors[T] {
	return WithErrors[T]{Value: value, Diagnostics: diags}
}
