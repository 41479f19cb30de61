// Package validate runs the full validator suite over a schema.Schema
// and/or an executable.Document (C7): pure, order-independent functions
// that only ever append diagnostics, never mutate their input.
//
// Grounded on the teacher's system/validation/validate.go (and its
// internal/validation and builder/validation twins) for the overall
// shape — a context struct threading schema/document state through a
// family of validateXxx functions, "did you mean" suggestions, and
// fragment-cycle DFS — rewritten around this module's Schema/
// ExecutableDocument/diagnostic.List types instead of the teacher's
// system.Schema/ast.Document/errors.MultiError.
package validate

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/executable"
	"github.com/shyptr/gqlcore/schema"
)

// schemaContext carries the memoized lookups schema validators share.
type schemaContext struct {
	schema       *schema.Schema
	implementers map[string][]string
}

func newSchemaContext(sch *schema.Schema) *schemaContext {
	return &schemaContext{schema: sch, implementers: sch.ImplementersMap()}
}

// varInfo is one operation's view of a declared variable, enough to
// check assignability at every point the variable is referenced.
type varInfo struct {
	Type       ast.Type
	HasDefault bool
}

// execContext carries the memoized lookups executable validators share:
// which variables each operation has been seen to use, keyed by the
// operation's own identity so anonymous operations are not conflated.
// Every operation's set is created up front, so the concurrent
// per-operation tasks each write only their own set.
type execContext struct {
	schema   *schema.Schema
	doc      *executable.Document
	usedVars map[*executable.Operation]map[string]bool
}

func newExecContext(sch *schema.Schema, doc *executable.Document) *execContext {
	c := &execContext{
		schema:   sch,
		doc:      doc,
		usedVars: make(map[*executable.Operation]map[string]bool),
	}
	doc.Operations.ForEach(func(_ string, op *executable.Operation) {
		c.usedVars[op] = make(map[string]bool)
	})
	return c
}

func (c *execContext) markUsed(op *executable.Operation, varName string) {
	set, ok := c.usedVars[op]
	if !ok {
		set = make(map[string]bool)
		c.usedVars[op] = set
	}
	set[varName] = true
}
