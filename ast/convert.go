package ast

import (
	"math"
	"strconv"
	"strings"

	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

// Converter projects a CST into the typed AST (§4.3 "AST layer"). Every
// constructor is fallible: a malformed subtree yields ok=false and an entry
// in Errors rather than a zero-value AST node silently standing in for real
// input. Parser error nodes yield ok=false without an entry in Errors; the
// parser has already reported them. This mirrors the teacher's own distinction
// between a lossless parse tree and the typed document built from it,
// generalized from one fixed grammar to the CST's open Kind tag.
type Converter struct {
	Errors []ConvertError
}

// ConvertError reports one CST subtree the converter could not project,
// e.g. a production missing a required child after error recovery.
type ConvertError struct {
	Span    source.Span
	Message string
}

func NewConverter() *Converter { return &Converter{} }

func (c *Converter) fail(g *syntax.Green, msg string) {
	var sp source.Span
	if g != nil {
		sp = g.Span
	}
	c.Errors = append(c.Errors, ConvertError{Span: sp, Message: msg})
}

// Document converts a whole CST document node. Definitions the converter
// could not project are simply omitted — their failure is already recorded
// in c.Errors (or, for parser error nodes, in the parser's own errors), so
// callers that only care about diagnostics don't need a parallel nil-check
// per definition.
func (c *Converter) Document(g *syntax.Green) *Document {
	doc := &Document{}
	if g == nil {
		return doc
	}
	for _, child := range g.Children {
		if def, ok := c.definition(child); ok {
			doc.Definitions = append(doc.Definitions, syntax.NewParsed[Definition](def, child.Span))
		}
	}
	return doc
}

func (c *Converter) definition(g *syntax.Green) (Definition, bool) {
	if g == nil || g.IsError() {
		return nil, false
	}
	switch g.Kind {
	case syntax.KindOperationDefinition:
		return c.operationDefinition(g)
	case syntax.KindFragmentDefinition:
		return c.fragmentDefinition(g)
	case syntax.KindSchemaDefinition:
		return c.schemaDefinition(g)
	case syntax.KindSchemaExtension:
		return c.schemaExtension(g)
	case syntax.KindScalarTypeDefinition:
		return c.scalarTypeDefinition(g)
	case syntax.KindScalarTypeExtension:
		return c.scalarTypeExtension(g)
	case syntax.KindObjectTypeDefinition:
		return c.objectTypeDefinition(g)
	case syntax.KindObjectTypeExtension:
		return c.objectTypeExtension(g)
	case syntax.KindInterfaceTypeDefinition:
		return c.interfaceTypeDefinition(g)
	case syntax.KindInterfaceTypeExtension:
		return c.interfaceTypeExtension(g)
	case syntax.KindUnionTypeDefinition:
		return c.unionTypeDefinition(g)
	case syntax.KindUnionTypeExtension:
		return c.unionTypeExtension(g)
	case syntax.KindEnumTypeDefinition:
		return c.enumTypeDefinition(g)
	case syntax.KindEnumTypeExtension:
		return c.enumTypeExtension(g)
	case syntax.KindInputObjectTypeDefinition:
		return c.inputObjectTypeDefinition(g)
	case syntax.KindInputObjectTypeExtension:
		return c.inputObjectTypeExtension(g)
	case syntax.KindDirectiveDefinition:
		return c.directiveDefinition(g)
	default:
		c.fail(g, "unexpected top-level definition kind")
		return nil, false
	}
}

// --- shared helpers ---

func nameOf(g *syntax.Green) Name {
	if g == nil {
		return Name{}
	}
	return NewNameSpanned(g.Text, g.Span)
}

// classified buckets a definition-like production's children by role. The
// GraphQL grammar gives each of these a distinct CST Kind except the
// default-value slot, which shares Kinds with top-level value literals;
// anything left over after the named slots is assumed to be that default
// value. This one function serves FieldDefinition, InputValueDefinition,
// VariableDefinition and EnumValueDefinition, whose grammars are this same
// shape with some slots absent.
type classified struct {
	desc       *syntax.Green
	name       *syntax.Green
	typ        *syntax.Green
	args       *syntax.Green
	defaultVal *syntax.Green
	directives *syntax.Green
}

func classify(children []*syntax.Green) classified {
	var cl classified
	for _, ch := range children {
		switch ch.Kind {
		case syntax.KindDescription:
			cl.desc = ch
		case syntax.KindName:
			cl.name = ch
		case syntax.KindNamedType, syntax.KindListType, syntax.KindNonNullType:
			cl.typ = ch
		case syntax.KindArguments:
			cl.args = ch
		case syntax.KindDirectives:
			cl.directives = ch
		default:
			cl.defaultVal = ch
		}
	}
	return cl
}

func (c *Converter) description(g *syntax.Green) *string {
	if g == nil {
		return nil
	}
	str := g.Child(syntax.KindStringValue)
	if str == nil {
		return nil
	}
	text := decodeStringLiteral(str.Text)
	return &text
}

func (c *Converter) directives(g *syntax.Green) DirectiveList {
	if g == nil {
		return nil
	}
	var out DirectiveList
	for _, d := range g.ChildrenOf(syntax.KindDirective) {
		out = append(out, c.directive(d))
	}
	return out
}

func (c *Converter) directive(g *syntax.Green) Directive {
	return Directive{Name: nameOf(g.Child(syntax.KindName)), Args: c.arguments(g.Child(syntax.KindArguments))}
}

func (c *Converter) arguments(g *syntax.Green) []Argument {
	if g == nil {
		return nil
	}
	var out []Argument
	for _, a := range g.ChildrenOf(syntax.KindArgument) {
		children := a.Children
		if len(children) != 2 {
			c.fail(a, "malformed argument")
			continue
		}
		val, ok := c.value(children[1])
		if !ok {
			continue
		}
		out = append(out, Argument{Name: nameOf(children[0]), Value: val})
	}
	return out
}

func (c *Converter) typeRef(g *syntax.Green) (Type, bool) {
	if g == nil || g.IsError() {
		c.fail(g, "missing type reference")
		return nil, false
	}
	switch g.Kind {
	case syntax.KindNamedType:
		return Named{Name: nameOf(g.Child(syntax.KindName))}, true
	case syntax.KindListType:
		if len(g.Children) != 1 {
			c.fail(g, "malformed list type")
			return nil, false
		}
		inner, ok := c.typeRef(g.Children[0])
		if !ok {
			return nil, false
		}
		return List{Of: inner}, true
	case syntax.KindNonNullType:
		if len(g.Children) != 1 {
			c.fail(g, "malformed non-null type")
			return nil, false
		}
		inner, ok := c.typeRef(g.Children[0])
		if !ok {
			return nil, false
		}
		switch v := inner.(type) {
		case Named:
			return NonNullNamed{Name: v.Name}, true
		case List:
			return NonNullList{Of: v}, true
		default:
			c.fail(g, "double non-null type")
			return nil, false
		}
	default:
		c.fail(g, "unexpected type reference kind")
		return nil, false
	}
}

func (c *Converter) value(g *syntax.Green) (Value, bool) {
	if g == nil || g.IsError() {
		c.fail(g, "missing value")
		return nil, false
	}
	sp := spanned(g.Span)
	switch g.Kind {
	case syntax.KindVariable:
		return VariableValue{valueBase: sp, Name: nameOf(g.Child(syntax.KindName))}, true
	case syntax.KindIntValue:
		n, err := strconv.ParseInt(g.Text, 10, 32)
		if err != nil {
			return BigIntValue{valueBase: sp, Digits: g.Text}, true
		}
		return IntValue{valueBase: sp, Value: int32(n)}, true
	case syntax.KindFloatValue:
		f, err := strconv.ParseFloat(g.Text, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			c.fail(g, "invalid float literal")
			return nil, false
		}
		return FloatValue{valueBase: sp, Value: f}, true
	case syntax.KindStringValue:
		return StringValue{valueBase: sp, Value: decodeStringLiteral(g.Text), Block: strings.HasPrefix(g.Text, `"""`)}, true
	case syntax.KindBooleanValue:
		return BooleanValue{valueBase: sp, Value: g.Text == "true"}, true
	case syntax.KindNullValue:
		return NullValue{valueBase: sp}, true
	case syntax.KindEnumValue:
		return EnumValue{valueBase: sp, Value: NewNameSpanned(g.Text, g.Span)}, true
	case syntax.KindListValue:
		var vals []Value
		for _, v := range g.Children {
			val, ok := c.value(v)
			if !ok {
				continue
			}
			vals = append(vals, val)
		}
		return ListValue{valueBase: sp, Values: vals}, true
	case syntax.KindObjectValue:
		var fields []ObjectField
		for _, f := range g.ChildrenOf(syntax.KindObjectField) {
			if len(f.Children) != 2 {
				c.fail(f, "malformed object field")
				continue
			}
			val, ok := c.value(f.Children[1])
			if !ok {
				continue
			}
			fields = append(fields, ObjectField{Name: nameOf(f.Children[0]), Value: val})
		}
		return ObjectValue{valueBase: sp, Fields: fields}, true
	default:
		c.fail(g, "unexpected value kind")
		return nil, false
	}
}

// decodeStringLiteral turns raw (still-quoted) source text for a string or
// block-string token into its semantic value: Go-escape decoding for an
// ordinary string, indentation stripping for a block string (GraphQL spec
// §2.9.4 "Block Strings").
func decodeStringLiteral(raw string) string {
	if strings.HasPrefix(raw, `"""`) {
		return blockStringValue(strings.TrimSuffix(strings.TrimPrefix(raw, `"""`), `"""`))
	}
	if s, err := strconv.Unquote(raw); err == nil {
		return s
	}
	return strings.Trim(raw, `"`)
}

// blockStringValue implements the GraphQL block string "coercion"
// algorithm: strip the common leading indentation from every line but the
// first, then drop leading/trailing blank lines.
func blockStringValue(raw string) string {
	raw = strings.ReplaceAll(raw, `\"""`, `"""`)
	lines := strings.Split(raw, "\n")
	commonIndent := -1
	for i, line := range lines {
		if i == 0 {
			continue
		}
		indent := leadingWhitespace(line)
		if indent == len(line) {
			continue // blank line doesn't count
		}
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}
	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= commonIndent {
				lines[i] = lines[i][commonIndent:]
			} else {
				lines[i] = ""
			}
		}
	}
	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func leadingWhitespace(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

func isBlank(s string) bool { return leadingWhitespace(s) == len(s) }

// --- executable definitions ---

func (c *Converter) operationDefinition(g *syntax.Green) (Definition, bool) {
	sel := g.Child(syntax.KindSelectionSet)
	if sel == nil {
		c.fail(g, "operation missing selection set")
		return nil, false
	}
	selSet, ok := c.selectionSet(sel)
	if !ok {
		return nil, false
	}
	var op OperationType
	switch g.Text {
	case "mutation":
		op = Mutation
	case "subscription":
		op = Subscription
	default:
		op = Query
	}
	var name *Name
	if n := g.Child(syntax.KindName); n != nil {
		v := nameOf(n)
		name = &v
	}
	var vardefs []VariableDefinition
	if vd := g.Child(syntax.KindVariableDefinitions); vd != nil {
		for _, d := range vd.ChildrenOf(syntax.KindVariableDefinition) {
			if v, ok := c.variableDefinition(d); ok {
				vardefs = append(vardefs, v)
			}
		}
	}
	return OperationDefinition{
		Operation:           op,
		Name:                name,
		VariableDefinitions: vardefs,
		Directives:          c.directives(g.Child(syntax.KindDirectives)),
		SelectionSet:        selSet,
	}, true
}

func (c *Converter) variableDefinition(g *syntax.Green) (VariableDefinition, bool) {
	cl := classify(g.Children)
	if cl.name == nil || cl.typ == nil {
		c.fail(g, "malformed variable definition")
		return VariableDefinition{}, false
	}
	ty, ok := c.typeRef(cl.typ)
	if !ok {
		return VariableDefinition{}, false
	}
	var def Value
	if cl.defaultVal != nil {
		def, _ = c.value(cl.defaultVal)
	}
	return VariableDefinition{
		Var:          nameOf(cl.name),
		Type:         ty,
		DefaultValue: def,
		Directives:   c.directives(cl.directives),
	}, true
}

func (c *Converter) fragmentDefinition(g *syntax.Green) (Definition, bool) {
	name := g.Child(syntax.KindName)
	cond := g.Child(syntax.KindTypeCondition)
	sel := g.Child(syntax.KindSelectionSet)
	if name == nil || cond == nil || sel == nil {
		c.fail(g, "malformed fragment definition")
		return nil, false
	}
	selSet, ok := c.selectionSet(sel)
	if !ok {
		return nil, false
	}
	return FragmentDefinition{
		Name:          nameOf(name),
		TypeCondition: nameOf(cond.Child(syntax.KindName)),
		Directives:    c.directives(g.Child(syntax.KindDirectives)),
		SelectionSet:  selSet,
	}, true
}

func (c *Converter) selectionSet(g *syntax.Green) (SelectionSet, bool) {
	if g == nil || g.IsError() {
		c.fail(g, "missing selection set")
		return SelectionSet{}, false
	}
	var sels []Selection
	for _, s := range g.Children {
		if sel, ok := c.selection(s); ok {
			sels = append(sels, sel)
		}
	}
	return SelectionSet{Selections: sels, Span: g.Span, Has: true}, true
}

func (c *Converter) selection(g *syntax.Green) (Selection, bool) {
	if g == nil || g.IsError() {
		return nil, false
	}
	switch g.Kind {
	case syntax.KindField:
		return c.field(g)
	case syntax.KindFragmentSpread:
		return c.fragmentSpread(g)
	case syntax.KindInlineFragment:
		return c.inlineFragment(g)
	default:
		c.fail(g, "unexpected selection kind")
		return nil, false
	}
}

func (c *Converter) field(g *syntax.Green) (Selection, bool) {
	name := g.Child(syntax.KindName)
	if name == nil {
		c.fail(g, "field missing name")
		return nil, false
	}
	var alias *Name
	if a := g.Child(syntax.KindAlias); a != nil {
		v := nameOf(a.Child(syntax.KindName))
		alias = &v
	}
	f := Field{
		Alias:      alias,
		Name:       nameOf(name),
		Arguments:  c.arguments(g.Child(syntax.KindArguments)),
		Directives: c.directives(g.Child(syntax.KindDirectives)),
		Span:       g.Span,
		Has:        true,
	}
	if ss := g.Child(syntax.KindSelectionSet); ss != nil {
		set, ok := c.selectionSet(ss)
		if ok {
			f.SelectionSet = set
		}
	}
	return f, true
}

func (c *Converter) fragmentSpread(g *syntax.Green) (Selection, bool) {
	name := g.Child(syntax.KindName)
	if name == nil {
		c.fail(g, "fragment spread missing name")
		return nil, false
	}
	return FragmentSpread{Name: nameOf(name), Directives: c.directives(g.Child(syntax.KindDirectives)), Span: g.Span, Has: true}, true
}

func (c *Converter) inlineFragment(g *syntax.Green) (Selection, bool) {
	sel := g.Child(syntax.KindSelectionSet)
	if sel == nil {
		c.fail(g, "inline fragment missing selection set")
		return nil, false
	}
	set, ok := c.selectionSet(sel)
	if !ok {
		return nil, false
	}
	var cond *Name
	if tc := g.Child(syntax.KindTypeCondition); tc != nil {
		v := nameOf(tc.Child(syntax.KindName))
		cond = &v
	}
	return InlineFragment{
		TypeCondition: cond,
		Directives:    c.directives(g.Child(syntax.KindDirectives)),
		SelectionSet:  set,
		Span:          g.Span,
		Has:           true,
	}, true
}

// --- type-system definitions ---

func (c *Converter) fieldDefinition(g *syntax.Green) (FieldDefinition, bool) {
	cl := classify(g.Children)
	if cl.name == nil || cl.typ == nil {
		c.fail(g, "malformed field definition")
		return FieldDefinition{}, false
	}
	ty, ok := c.typeRef(cl.typ)
	if !ok {
		return FieldDefinition{}, false
	}
	var args []InputValueDefinition
	if cl.args != nil {
		for _, a := range cl.args.ChildrenOf(syntax.KindInputValueDefinition) {
			if v, ok := c.inputValueDefinition(a); ok {
				args = append(args, v)
			}
		}
	}
	return FieldDefinition{
		Description: c.description(cl.desc),
		Name:        nameOf(cl.name),
		Arguments:   args,
		Type:        ty,
		Directives:  c.directives(cl.directives),
	}, true
}

func (c *Converter) inputValueDefinition(g *syntax.Green) (InputValueDefinition, bool) {
	cl := classify(g.Children)
	if cl.name == nil || cl.typ == nil {
		c.fail(g, "malformed input value definition")
		return InputValueDefinition{}, false
	}
	ty, ok := c.typeRef(cl.typ)
	if !ok {
		return InputValueDefinition{}, false
	}
	var def Value
	if cl.defaultVal != nil {
		def, _ = c.value(cl.defaultVal)
	}
	return InputValueDefinition{
		Description:  c.description(cl.desc),
		Name:         nameOf(cl.name),
		Type:         ty,
		DefaultValue: def,
		Directives:   c.directives(cl.directives),
	}, true
}

func (c *Converter) implementsInterfaces(g *syntax.Green) []Name {
	if g == nil {
		return nil
	}
	var out []Name
	for _, n := range g.ChildrenOf(syntax.KindName) {
		out = append(out, nameOf(n))
	}
	return out
}

func (c *Converter) fieldsDefinition(g *syntax.Green) []FieldDefinition {
	if g == nil {
		return nil
	}
	var out []FieldDefinition
	for _, f := range g.ChildrenOf(syntax.KindFieldDefinition) {
		if v, ok := c.fieldDefinition(f); ok {
			out = append(out, v)
		}
	}
	return out
}

func (c *Converter) scalarTypeDefinition(g *syntax.Green) (Definition, bool) {
	name := g.Child(syntax.KindName)
	if name == nil {
		c.fail(g, "scalar missing name")
		return nil, false
	}
	return ScalarTypeDefinition{Description: c.description(g.Child(syntax.KindDescription)), Name: nameOf(name), Directives: c.directives(g.Child(syntax.KindDirectives))}, true
}

func (c *Converter) scalarTypeExtension(g *syntax.Green) (Definition, bool) {
	name := g.Child(syntax.KindName)
	if name == nil {
		c.fail(g, "scalar extension missing name")
		return nil, false
	}
	return ScalarTypeExtension{Name: nameOf(name), Directives: c.directives(g.Child(syntax.KindDirectives))}, true
}

func (c *Converter) objectTypeDefinition(g *syntax.Green) (Definition, bool) {
	name := g.Child(syntax.KindName)
	if name == nil {
		c.fail(g, "object type missing name")
		return nil, false
	}
	return ObjectTypeDefinition{
		Description: c.description(g.Child(syntax.KindDescription)),
		Name:        nameOf(name),
		Implements:  c.implementsInterfaces(g.Child(syntax.KindImplementsInterfaces)),
		Directives:  c.directives(g.Child(syntax.KindDirectives)),
		Fields:      c.fieldsDefinition(g.Child(syntax.KindFieldsDefinition)),
	}, true
}

func (c *Converter) objectTypeExtension(g *syntax.Green) (Definition, bool) {
	name := g.Child(syntax.KindName)
	if name == nil {
		c.fail(g, "object type extension missing name")
		return nil, false
	}
	return ObjectTypeExtension{
		Name:       nameOf(name),
		Implements: c.implementsInterfaces(g.Child(syntax.KindImplementsInterfaces)),
		Directives: c.directives(g.Child(syntax.KindDirectives)),
		Fields:     c.fieldsDefinition(g.Child(syntax.KindFieldsDefinition)),
	}, true
}

func (c *Converter) interfaceTypeDefinition(g *syntax.Green) (Definition, bool) {
	name := g.Child(syntax.KindName)
	if name == nil {
		c.fail(g, "interface type missing name")
		return nil, false
	}
	return InterfaceTypeDefinition{
		Description: c.description(g.Child(syntax.KindDescription)),
		Name:        nameOf(name),
		Implements:  c.implementsInterfaces(g.Child(syntax.KindImplementsInterfaces)),
		Directives:  c.directives(g.Child(syntax.KindDirectives)),
		Fields:      c.fieldsDefinition(g.Child(syntax.KindFieldsDefinition)),
	}, true
}

func (c *Converter) interfaceTypeExtension(g *syntax.Green) (Definition, bool) {
	name := g.Child(syntax.KindName)
	if name == nil {
		c.fail(g, "interface type extension missing name")
		return nil, false
	}
	return InterfaceTypeExtension{
		Name:       nameOf(name),
		Implements: c.implementsInterfaces(g.Child(syntax.KindImplementsInterfaces)),
		Directives: c.directives(g.Child(syntax.KindDirectives)),
		Fields:     c.fieldsDefinition(g.Child(syntax.KindFieldsDefinition)),
	}, true
}

func (c *Converter) unionTypeDefinition(g *syntax.Green) (Definition, bool) {
	names := g.ChildrenOf(syntax.KindName)
	if len(names) == 0 {
		c.fail(g, "union missing name")
		return nil, false
	}
	var members []Name
	for _, n := range names[1:] {
		members = append(members, nameOf(n))
	}
	return UnionTypeDefinition{
		Description: c.description(g.Child(syntax.KindDescription)),
		Name:        nameOf(names[0]),
		Directives:  c.directives(g.Child(syntax.KindDirectives)),
		Members:     members,
	}, true
}

func (c *Converter) unionTypeExtension(g *syntax.Green) (Definition, bool) {
	names := g.ChildrenOf(syntax.KindName)
	if len(names) == 0 {
		c.fail(g, "union extension missing name")
		return nil, false
	}
	var members []Name
	for _, n := range names[1:] {
		members = append(members, nameOf(n))
	}
	return UnionTypeExtension{Name: nameOf(names[0]), Directives: c.directives(g.Child(syntax.KindDirectives)), Members: members}, true
}

func (c *Converter) enumValueDefinition(g *syntax.Green) (EnumValueDefinition, bool) {
	cl := classify(g.Children)
	if cl.name == nil {
		c.fail(g, "enum value missing name")
		return EnumValueDefinition{}, false
	}
	return EnumValueDefinition{Description: c.description(cl.desc), Name: nameOf(cl.name), Directives: c.directives(cl.directives)}, true
}

func (c *Converter) enumTypeDefinition(g *syntax.Green) (Definition, bool) {
	name := g.Child(syntax.KindName)
	if name == nil {
		c.fail(g, "enum missing name")
		return nil, false
	}
	var values []EnumValueDefinition
	for _, v := range g.ChildrenOf(syntax.KindEnumValueDefinition) {
		if ev, ok := c.enumValueDefinition(v); ok {
			values = append(values, ev)
		}
	}
	return EnumTypeDefinition{Description: c.description(g.Child(syntax.KindDescription)), Name: nameOf(name), Directives: c.directives(g.Child(syntax.KindDirectives)), Values: values}, true
}

func (c *Converter) enumTypeExtension(g *syntax.Green) (Definition, bool) {
	name := g.Child(syntax.KindName)
	if name == nil {
		c.fail(g, "enum extension missing name")
		return nil, false
	}
	var values []EnumValueDefinition
	for _, v := range g.ChildrenOf(syntax.KindEnumValueDefinition) {
		if ev, ok := c.enumValueDefinition(v); ok {
			values = append(values, ev)
		}
	}
	return EnumTypeExtension{Name: nameOf(name), Directives: c.directives(g.Child(syntax.KindDirectives)), Values: values}, true
}

func (c *Converter) inputObjectTypeDefinition(g *syntax.Green) (Definition, bool) {
	name := g.Child(syntax.KindName)
	if name == nil {
		c.fail(g, "input object missing name")
		return nil, false
	}
	var fields []InputValueDefinition
	for _, f := range g.ChildrenOf(syntax.KindInputValueDefinition) {
		if v, ok := c.inputValueDefinition(f); ok {
			fields = append(fields, v)
		}
	}
	return InputObjectTypeDefinition{Description: c.description(g.Child(syntax.KindDescription)), Name: nameOf(name), Directives: c.directives(g.Child(syntax.KindDirectives)), Fields: fields}, true
}

func (c *Converter) inputObjectTypeExtension(g *syntax.Green) (Definition, bool) {
	name := g.Child(syntax.KindName)
	if name == nil {
		c.fail(g, "input object extension missing name")
		return nil, false
	}
	var fields []InputValueDefinition
	for _, f := range g.ChildrenOf(syntax.KindInputValueDefinition) {
		if v, ok := c.inputValueDefinition(f); ok {
			fields = append(fields, v)
		}
	}
	return InputObjectTypeExtension{Name: nameOf(name), Directives: c.directives(g.Child(syntax.KindDirectives)), Fields: fields}, true
}

func (c *Converter) directiveDefinition(g *syntax.Green) (Definition, bool) {
	name := g.Child(syntax.KindName)
	locs := g.Child(syntax.KindDirectiveLocations)
	if name == nil || locs == nil {
		c.fail(g, "malformed directive definition")
		return nil, false
	}
	var args []InputValueDefinition
	if a := g.Child(syntax.KindArguments); a != nil {
		for _, iv := range a.ChildrenOf(syntax.KindInputValueDefinition) {
			if v, ok := c.inputValueDefinition(iv); ok {
				args = append(args, v)
			}
		}
	}
	var locNames []Name
	for _, l := range locs.ChildrenOf(syntax.KindName) {
		locNames = append(locNames, nameOf(l))
	}
	return DirectiveDefinition{
		Description: c.description(g.Child(syntax.KindDescription)),
		Name:        nameOf(name),
		Arguments:   args,
		Repeatable:  locs.Text == "true",
		Locations:   locNames,
	}, true
}

func (c *Converter) schemaDefinition(g *syntax.Green) (Definition, bool) {
	var ops []OperationTypeDefinition
	for _, o := range g.ChildrenOf(syntax.KindOperationTypeDefinition) {
		ops = append(ops, c.operationTypeDefinition(o))
	}
	return SchemaDefinition{Description: c.description(g.Child(syntax.KindDescription)), Directives: c.directives(g.Child(syntax.KindDirectives)), RootOperations: ops}, true
}

func (c *Converter) schemaExtension(g *syntax.Green) (Definition, bool) {
	var ops []OperationTypeDefinition
	for _, o := range g.ChildrenOf(syntax.KindOperationTypeDefinition) {
		ops = append(ops, c.operationTypeDefinition(o))
	}
	return SchemaExtension{Directives: c.directives(g.Child(syntax.KindDirectives)), RootOperations: ops}, true
}

func (c *Converter) operationTypeDefinition(g *syntax.Green) OperationTypeDefinition {
	var op OperationType
	switch g.Text {
	case "mutation":
		op = Mutation
	case "subscription":
		op = Subscription
	default:
		op = Query
	}
	return OperationTypeDefinition{Operation: op, Type: nameOf(g.Child(syntax.KindName))}
}
