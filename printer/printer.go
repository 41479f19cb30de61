// Package printer renders a parsed ast.Document back to canonical
// GraphQL source text (§4.7 "Serializer"): deterministic, so the same
// document always prints the same bytes regardless of how it was
// built, and round-trippable, so printing and re-parsing a document
// yields back an equivalent one.
package printer

import (
	"strconv"
	"strings"

	"github.com/shyptr/gqlcore/ast"
)

func init() {
	ast.RegisterPrinter(func(w *strings.Builder, doc *ast.Document) {
		Fprint(w, doc, DefaultConfig())
	})
}

// Config controls the printer's layout (§4.7).
type Config struct {
	// IndentPrefix is repeated per indent level. Ignored when Newlines
	// is false.
	IndentPrefix string
	// Newlines enables multi-line output. When false, the whole
	// document prints on one line, with a single space standing in for
	// every line break and indent the multi-line form would otherwise
	// use.
	Newlines bool
	// InitialIndentLevel offsets every indent, for printing a fragment
	// of a document inside an already-indented context.
	InitialIndentLevel int
}

// DefaultConfig is two-space indentation, multi-line, top-level.
func DefaultConfig() Config {
	return Config{IndentPrefix: "  ", Newlines: true}
}

// Print renders doc using DefaultConfig.
func Print(doc *ast.Document) string {
	var b strings.Builder
	Fprint(&b, doc, DefaultConfig())
	return b.String()
}

// Fprint renders doc into w under cfg.
func Fprint(w *strings.Builder, doc *ast.Document, cfg Config) {
	p := &printer{w: w, cfg: cfg, level: cfg.InitialIndentLevel}
	for i, n := range doc.Definitions {
		if i > 0 {
			p.separateTopLevel()
		}
		p.printDefinition(*n.Get(), i == 0)
	}
}

type printer struct {
	w     *strings.Builder
	cfg   Config
	level int
}

func (p *printer) separateTopLevel() {
	if p.cfg.Newlines {
		p.w.WriteString("\n\n")
		p.writeIndent()
	} else {
		p.w.WriteByte(' ')
	}
}

func (p *printer) newline() {
	if p.cfg.Newlines {
		p.w.WriteByte('\n')
		p.writeIndent()
	} else {
		p.w.WriteByte(' ')
	}
}

func (p *printer) writeIndent() {
	for i := 0; i < p.level; i++ {
		p.w.WriteString(p.cfg.IndentPrefix)
	}
}

func (p *printer) indentString() string {
	return strings.Repeat(p.cfg.IndentPrefix, p.level)
}

func (p *printer) indent() { p.level++ }
func (p *printer) dedent() { p.level-- }

func (p *printer) str(s string) { p.w.WriteString(s) }

func (p *printer) printDefinition(def ast.Definition, isFirst bool) {
	switch d := def.(type) {
	case ast.OperationDefinition:
		p.printOperationDefinition(d, isFirst)
	case ast.FragmentDefinition:
		p.printFragmentDefinition(d)
	case ast.SchemaDefinition:
		p.printDescription(d.Description)
		p.str("schema")
		p.printDirectives(d.Directives)
		p.str(" ")
		p.printOperationTypeDefinitions(d.RootOperations)
	case ast.SchemaExtension:
		p.str("extend schema")
		p.printDirectives(d.Directives)
		if len(d.RootOperations) > 0 {
			p.str(" ")
			p.printOperationTypeDefinitions(d.RootOperations)
		}
	case ast.ScalarTypeDefinition:
		p.printDescription(d.Description)
		p.str("scalar ")
		p.str(d.Name.Text)
		p.printDirectives(d.Directives)
	case ast.ScalarTypeExtension:
		p.str("extend scalar ")
		p.str(d.Name.Text)
		p.printDirectives(d.Directives)
	case ast.ObjectTypeDefinition:
		p.printDescription(d.Description)
		p.str("type ")
		p.str(d.Name.Text)
		p.printImplements(d.Implements)
		p.printDirectives(d.Directives)
		p.printFieldDefinitions(d.Fields)
	case ast.ObjectTypeExtension:
		p.str("extend type ")
		p.str(d.Name.Text)
		p.printImplements(d.Implements)
		p.printDirectives(d.Directives)
		p.printFieldDefinitions(d.Fields)
	case ast.InterfaceTypeDefinition:
		p.printDescription(d.Description)
		p.str("interface ")
		p.str(d.Name.Text)
		p.printImplements(d.Implements)
		p.printDirectives(d.Directives)
		p.printFieldDefinitions(d.Fields)
	case ast.InterfaceTypeExtension:
		p.str("extend interface ")
		p.str(d.Name.Text)
		p.printImplements(d.Implements)
		p.printDirectives(d.Directives)
		p.printFieldDefinitions(d.Fields)
	case ast.UnionTypeDefinition:
		p.printDescription(d.Description)
		p.str("union ")
		p.str(d.Name.Text)
		p.printDirectives(d.Directives)
		p.printUnionMembers(d.Members)
	case ast.UnionTypeExtension:
		p.str("extend union ")
		p.str(d.Name.Text)
		p.printDirectives(d.Directives)
		p.printUnionMembers(d.Members)
	case ast.EnumTypeDefinition:
		p.printDescription(d.Description)
		p.str("enum ")
		p.str(d.Name.Text)
		p.printDirectives(d.Directives)
		p.printEnumValues(d.Values)
	case ast.EnumTypeExtension:
		p.str("extend enum ")
		p.str(d.Name.Text)
		p.printDirectives(d.Directives)
		p.printEnumValues(d.Values)
	case ast.InputObjectTypeDefinition:
		p.printDescription(d.Description)
		p.str("input ")
		p.str(d.Name.Text)
		p.printDirectives(d.Directives)
		p.printInputValueDefinitions(d.Fields, true)
	case ast.InputObjectTypeExtension:
		p.str("extend input ")
		p.str(d.Name.Text)
		p.printDirectives(d.Directives)
		p.printInputValueDefinitions(d.Fields, true)
	case ast.DirectiveDefinition:
		p.printDescription(d.Description)
		p.str("directive @")
		p.str(d.Name.Text)
		p.printInputValueDefinitions(d.Arguments, false)
		if d.Repeatable {
			p.str(" repeatable")
		}
		p.str(" on ")
		for i, loc := range d.Locations {
			if i > 0 {
				p.str(" | ")
			}
			p.str(loc.Text)
		}
	}
}

func (p *printer) printDescription(desc *string) {
	if desc == nil {
		return
	}
	p.printStringLiteral(*desc, true)
	p.newline()
}

func (p *printer) printOperationDefinition(op ast.OperationDefinition, isFirst bool) {
	shorthand := isFirst && op.Operation == ast.Query && op.Name == nil &&
		len(op.VariableDefinitions) == 0 && len(op.Directives) == 0
	if !shorthand {
		p.str(op.Operation.String())
		if op.Name != nil || len(op.VariableDefinitions) > 0 {
			p.str(" ")
		}
		if op.Name != nil {
			p.str(op.Name.Text)
		}
		if len(op.VariableDefinitions) > 0 {
			p.printVariableDefinitions(op.VariableDefinitions)
		}
		p.printDirectives(op.Directives)
		p.str(" ")
	}
	p.printSelectionSet(op.SelectionSet)
}

func (p *printer) printFragmentDefinition(f ast.FragmentDefinition) {
	p.str("fragment ")
	p.str(f.Name.Text)
	p.str(" on ")
	p.str(f.TypeCondition.Text)
	p.printDirectives(f.Directives)
	p.str(" ")
	p.printSelectionSet(f.SelectionSet)
}

func (p *printer) printOperationTypeDefinitions(ops []ast.OperationTypeDefinition) {
	p.str("{")
	p.indent()
	for _, o := range ops {
		p.newline()
		p.str(o.Operation.String())
		p.str(": ")
		p.str(o.Type.Text)
	}
	p.dedent()
	p.newline()
	p.str("}")
}

func (p *printer) printImplements(names []ast.Name) {
	if len(names) == 0 {
		return
	}
	p.str(" implements ")
	for i, n := range names {
		if i > 0 {
			p.str(" & ")
		}
		p.str(n.Text)
	}
}

func (p *printer) printUnionMembers(names []ast.Name) {
	if len(names) == 0 {
		return
	}
	p.str(" = ")
	for i, n := range names {
		if i > 0 {
			p.str(" | ")
		}
		p.str(n.Text)
	}
}

func (p *printer) printEnumValues(values []ast.EnumValueDefinition) {
	if len(values) == 0 {
		p.str(" {}")
		return
	}
	p.str(" {")
	p.indent()
	for _, v := range values {
		p.newline()
		p.printDescription(v.Description)
		p.str(v.Name.Text)
		p.printDirectives(v.Directives)
	}
	p.dedent()
	p.newline()
	p.str("}")
}

func (p *printer) printFieldDefinitions(fields []ast.FieldDefinition) {
	if len(fields) == 0 {
		p.str(" {}")
		return
	}
	p.str(" {")
	p.indent()
	for _, f := range fields {
		p.newline()
		p.printDescription(f.Description)
		p.str(f.Name.Text)
		p.printInputValueDefinitions(f.Arguments, false)
		p.str(": ")
		p.str(f.Type.String())
		p.printDirectives(f.Directives)
	}
	p.dedent()
	p.newline()
	p.str("}")
}

// printInputValueDefinitions renders either a field/directive's
// argument list in parentheses, or (when asBlock is true) an input
// object's field list in braces. Multi-line whenever any entry carries
// a description or directives (§4.7 "single-line when no argument
// carries a description or directives").
func (p *printer) printInputValueDefinitions(args []ast.InputValueDefinition, asBlock bool) {
	if len(args) == 0 {
		if asBlock {
			p.str(" {}")
		}
		return
	}
	open, close := "(", ")"
	if asBlock {
		open, close = " {", "}"
	}
	multiline := p.cfg.Newlines && needsMultilineArgs(args)
	p.str(open)
	if multiline {
		p.indent()
		for _, a := range args {
			p.newline()
			p.printDescription(a.Description)
			p.printOneInputValue(a)
		}
		p.dedent()
		p.newline()
	} else {
		for i, a := range args {
			if i > 0 {
				p.str(", ")
			}
			p.printOneInputValue(a)
		}
	}
	p.str(close)
}

func (p *printer) printOneInputValue(a ast.InputValueDefinition) {
	p.str(a.Name.Text)
	p.str(": ")
	p.str(a.Type.String())
	if a.DefaultValue != nil {
		p.str(" = ")
		p.printValue(a.DefaultValue)
	}
	p.printDirectives(a.Directives)
}

func needsMultilineArgs(args []ast.InputValueDefinition) bool {
	for _, a := range args {
		if a.Description != nil || len(a.Directives) > 0 {
			return true
		}
	}
	return false
}

func (p *printer) printVariableDefinitions(vars []ast.VariableDefinition) {
	p.str("(")
	for i, v := range vars {
		if i > 0 {
			p.str(", ")
		}
		p.str("$")
		p.str(v.Var.Text)
		p.str(": ")
		p.str(v.Type.String())
		if v.DefaultValue != nil {
			p.str(" = ")
			p.printValue(v.DefaultValue)
		}
		p.printDirectives(v.Directives)
	}
	p.str(")")
}

func (p *printer) printDirectives(dl ast.DirectiveList) {
	for _, d := range dl {
		p.str(" @")
		p.str(d.Name.Text)
		if len(d.Args) > 0 {
			p.printArguments(d.Args)
		}
	}
}

func (p *printer) printArguments(args []ast.Argument) {
	p.str("(")
	for i, a := range args {
		if i > 0 {
			p.str(", ")
		}
		p.str(a.Name.Text)
		p.str(": ")
		p.printValue(a.Value)
	}
	p.str(")")
}

func (p *printer) printSelectionSet(set ast.SelectionSet) {
	if !set.Has || len(set.Selections) == 0 {
		return
	}
	p.str("{")
	p.indent()
	for _, sel := range set.Selections {
		p.newline()
		p.printSelection(sel)
	}
	p.dedent()
	p.newline()
	p.str("}")
}

func (p *printer) printSelection(sel ast.Selection) {
	switch s := sel.(type) {
	case ast.Field:
		if s.Alias != nil {
			p.str(s.Alias.Text)
			p.str(": ")
		}
		p.str(s.Name.Text)
		if len(s.Arguments) > 0 {
			p.printArguments(s.Arguments)
		}
		p.printDirectives(s.Directives)
		if s.SelectionSet.Has {
			p.str(" ")
			p.printSelectionSet(s.SelectionSet)
		}
	case ast.FragmentSpread:
		p.str("...")
		p.str(s.Name.Text)
		p.printDirectives(s.Directives)
	case ast.InlineFragment:
		p.str("...")
		if s.TypeCondition != nil {
			p.str(" on ")
			p.str(s.TypeCondition.Text)
		}
		p.printDirectives(s.Directives)
		p.str(" ")
		p.printSelectionSet(s.SelectionSet)
	}
}

func (p *printer) printValue(v ast.Value) {
	switch val := v.(type) {
	case ast.VariableValue:
		p.str("$")
		p.str(val.Name.Text)
	case ast.IntValue:
		p.str(strconv.FormatInt(int64(val.Value), 10))
	case ast.BigIntValue:
		p.str(val.Digits)
	case ast.FloatValue:
		p.str(formatFloat(val.Value))
	case ast.StringValue:
		p.printStringLiteral(val.Value, false)
	case ast.BooleanValue:
		if val.Value {
			p.str("true")
		} else {
			p.str("false")
		}
	case ast.NullValue:
		p.str("null")
	case ast.EnumValue:
		p.str(val.Value.Text)
	case ast.ListValue:
		p.str("[")
		for i, item := range val.Values {
			if i > 0 {
				p.str(", ")
			}
			p.printValue(item)
		}
		p.str("]")
	case ast.ObjectValue:
		p.str("{")
		for i, f := range val.Fields {
			if i > 0 {
				p.str(", ")
			}
			p.str(f.Name.Text)
			p.str(": ")
			p.printValue(f.Value)
		}
		p.str("}")
	}
}

// printStringLiteral emits value as a block string when Newlines is
// enabled and either it is a description or it contains a line feed,
// and the block-string algorithm can round-trip it unchanged;
// otherwise a double-quoted string (§4.7).
func (p *printer) printStringLiteral(value string, isDescription bool) {
	wantsBlock := isDescription || strings.ContainsRune(value, '\n')
	if p.cfg.Newlines && wantsBlock && canBlockString(value) {
		p.str(blockString(value, p.indentString()))
		return
	}
	p.str(quotedString(value))
}
