package gqlcore

import (
	"github.com/shyptr/gqlcore/executable"
	"github.com/shyptr/gqlcore/syntax"
	"github.com/shyptr/gqlcore/validate"
)

// ExecutableDocument re-exports executable.Document (C6): every operation
// and fragment resolved against a Schema, each selection already tagged
// with its parent type.
type ExecutableDocument = executable.Document

// ExecutableBuilder re-exports executable.Builder, the chainable
// `.Parse(path,text,cfg) / .AddAST(doc) / .Build()` surface.
type ExecutableBuilder = executable.Builder

// NewExecutableBuilder starts an executable-document build against sch
// (§6.2 "ExecutableDocument::parse" via its builder form). sch need not
// itself be validated (§4.5).
func NewExecutableBuilder(sch *Schema) *ExecutableBuilder {
	return executable.NewBuilder(sch)
}

// ParseExecutable parses and resolves text against sch in one call (§6.2
// "ExecutableDocument::parse(schema, text, path)").
func ParseExecutable(sch *Schema, path, text string) WithErrors[*ExecutableDocument] {
	doc, diags := NewExecutableBuilder(sch).Parse(path, text, syntax.DefaultConfig()).Build()
	return withErrors(doc, diags)
}

// ValidateExecutable runs every executable-document validator family
// (§4.6, §7 tier 3) over doc against sch (§6.2
// "ExecutableDocument::validate(schema)").
func ValidateExecutable(sch *Schema, doc *ExecutableDocument) WithErrors[*ExecutableDocument] {
	return withErrors(doc, validate.Executable(sch, doc))
}

// ParseAndValidateExecutable parses, resolves and validates text against
// sch in one call (§6.2 "ExecutableDocument::parse_and_validate(schema,
// text, path)").
func ParseAndValidateExecutable(sch *Schema, path, text string) WithErrors[*ExecutableDocument] {
	built := ParseExecutable(sch, path, text)
	diags := append(built.Diagnostics, validate.Executable(sch, built.Value)...)
	return withErrors(built.Value, diags)
}
