package gqlcore

import (
	"github.com/shyptr/gqlcore/schema"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
	"github.com/shyptr/gqlcore/validate"
)

// Schema re-exports schema.Schema (C5) at the façade: the folded type
// system, its root operation bindings, and the query accessors
// (GetObject, GetInterface, GetUnion, GetEnum, GetInputObject, GetScalar,
// TypeField, RootOperation, ImplementersMap, IsSubtype, IsOutputType,
// IsInputType, PossibleTypes) already defined on it.
type Schema = schema.Schema

// SchemaBuilder re-exports schema.Builder, the chainable
// `.Parse(path,text,cfg) / .AddAST(doc) / .AllowBuiltInRedefinitions() /
// .AdoptOrphanExtensions() / .Build()` surface §6.2 calls for.
type SchemaBuilder = schema.Builder

// SchemaOption re-exports schema.Option.
type SchemaOption = schema.Option

// NewSchemaBuilder starts a schema build against sources (§6.2
// "Schema::builder").
func NewSchemaBuilder(sources *source.Map, opts ...SchemaOption) *SchemaBuilder {
	return schema.NewBuilder(sources, opts...)
}

// ParseSchema parses and folds a single document's worth of text into a
// Schema in one call (§6.2 "Schema::parse" — equivalent to
// builder().parse(text,path).build()).
func ParseSchema(sources *source.Map, path, text string, opts ...SchemaOption) WithErrors[*Schema] {
	sch, diags := NewSchemaBuilder(sources, opts...).Parse(path, text, syntax.DefaultConfig()).Build()
	return withErrors(sch, diags)
}

// ValidateSchema runs every schema-level validator (§4.6, §7 tier 3) over
// sch and returns it wrapped with whatever diagnostics they found (§6.2
// "Schema::validate").
func ValidateSchema(sch *Schema) WithErrors[*Schema] {
	return withErrors(sch, validate.Schema(sch))
}

// ParseAndValidateSchema parses, builds and validates text in one call
// (§6.2 "Schema::parse_and_validate").
func ParseAndValidateSchema(sources *source.Map, path, text string, opts ...SchemaOption) WithErrors[*Schema] {
	built := ParseSchema(sources, path, text, opts...)
	diags := append(built.Diagnostics, validate.Schema(built.Value)...)
	return withErrors(built.Value, diags)
}
