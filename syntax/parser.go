package syntax

import (
	"github.com/go-playground/validator/v10"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax/token"
)

// Config bounds the tolerant parser's work on hostile or pathological
// input (§5 "Cancellation", §6.1). Both limits are soft: hitting one
// terminates parsing early but still returns the partial tree built so
// far, with the corresponding *Reached flag set on the Tree.
type Config struct {
	// RecursionLimit caps nested selection-set / value depth. Zero is a
	// real limit: any recursion at all trips it (§8, "Parsing with
	// recursion_limit=0 produces an empty document and a limit-reached
	// flag"). -1 means unbounded; Validate rejects anything lower.
	RecursionLimit int `validate:"gte=-1"`
	// TokenLimit caps the number of tokens scanned. Zero means unbounded.
	TokenLimit int `validate:"gte=0"`
}

var cfgValidate = validator.New()

// Validate checks Config's struct tags, grounded on the teacher's own use
// of go-playground/validator (schemabuilder/validator.go) for configuration
// structs rather than request payloads.
func (c Config) Validate() error {
	return cfgValidate.Struct(c)
}

// DefaultConfig matches historical GraphQL server defaults: a generous
// recursion limit to guard the parser's own call stack, no token limit.
func DefaultConfig() Config {
	return Config{RecursionLimit: 500, TokenLimit: 0}
}

// Parse runs the tolerant parser over text, registering it in sources
// under path and returning the resulting (possibly partial) CST.
//
// Parse never panics on malformed input (§4.8): any internal parse failure
// is caught at the nearest top-level-definition boundary, recorded as an
// Error, and parsing resumes with the next definition — "a document with
// syntax errors still produces the largest well-formed [tree] consistent
// with the tokens seen" (§4.3, lifted one layer down to the CST itself).
func Parse(sources *source.Map, path, text string, cfg Config) Tree {
	if err := cfg.Validate(); err != nil {
		return Tree{Root: &Green{Kind: KindDocument}, Errors: []Error{{Message: "invalid parser config: " + err.Error()}}}
	}
	file := sources.Add(path, text)
	p := &parser{lex: newLexer(text, file, cfg), file: file}
	root := p.parseDocument()
	return Tree{Root: root, Errors: p.errors, RecursionReached: p.recursionReached, TokensReached: p.tokensReached}
}

type parser struct {
	lex              *lexer
	file             source.FileID
	errors           []Error
	recursionReached bool
	tokensReached    bool
}

// recover catches a syntaxError panicked anywhere below, appends an Error
// at the lexer's current position, and reports whether recovery happened
// (as opposed to an unrelated panic, which is re-raised — §4.8 reserves
// actual panics for internal invariant violations, never user input).
func (p *parser) recover() {
	if r := recover(); r != nil {
		msg, ok := r.(syntaxError)
		if !ok {
			panic(r)
		}
		if string(msg) == "recursion limit reached" {
			p.recursionReached = true
		}
		if string(msg) == "token limit reached" {
			p.tokensReached = true
		}
		p.errors = append(p.errors, Error{Span: p.lex.span(), Message: string(msg)})
	}
}

// skipToRecoveryPoint discards tokens until EOF or a token that plausibly
// starts a new top-level definition, so one malformed definition doesn't
// poison the rest of the document.
func (p *parser) skipToRecoveryPoint() {
	for p.lex.peek() != token.EOF {
		if p.lex.peek() == token.NAME {
			switch p.lex.text() {
			case token.QUERY, token.MUTATION, token.SUBSCRIPTION, token.FRAGMENT,
				token.SCHEMA, token.SCALAR, token.TYPE, token.INTERFACE, token.UNION,
				token.ENUM, token.INPUT, token.EXTEND, token.DIRECTIVE:
				return
			}
		}
		if p.lex.peek() == token.BRACE_L {
			return
		}
		func() {
			defer func() { recover() }()
			p.lex.skipWhitespace()
		}()
	}
}

func leaf(kind Kind, span source.Span, text, trivia string) *Green {
	return &Green{Kind: kind, Span: span, Text: text, Trivia: trivia}
}

func span(children ...*Green) source.Span {
	var s source.Span
	first := true
	for _, c := range children {
		if c == nil {
			continue
		}
		if first {
			s = c.Span
			first = false
			continue
		}
		if c.Span.End > s.End {
			s.End = c.Span.End
		}
	}
	return s
}

func (p *parser) parseDocument() *Green {
	l := p.lex
	start := l.span()
	l.skipWhitespace()
	var children []*Green
	for l.peek() != token.EOF {
		before := l.tokens
		var def *Green
		func() {
			defer p.recover()
			def = p.parseDefinition()
		}()
		if def != nil {
			children = append(children, def)
		} else {
			p.skipToRecoveryPoint()
		}
		if l.tokens == before {
			// guarantee forward progress even on an empty-production bug
			if l.peek() == token.EOF {
				break
			}
			func() {
				defer func() { recover() }()
				l.skipWhitespace()
			}()
		}
	}
	doc := &Green{Kind: KindDocument, Children: children}
	if len(children) > 0 {
		doc.Span = source.Span{File: start.File, Start: start.Start, End: children[len(children)-1].Span.End}
	} else {
		doc.Span = start
	}
	return doc
}

func (p *parser) parseDefinition() *Green {
	l := p.lex
	if l.peek() == token.BRACE_L {
		return p.parseOperationDefinition(true)
	}
	if l.peek() == token.STRING || l.peek() == token.RAWSTRING {
		desc := p.parseDescription()
		def := p.parseTypeSystemDefinition()
		if def == nil {
			return nil
		}
		def.Children = append([]*Green{desc}, def.Children...)
		return def
	}
	if l.peek() != token.NAME {
		l.syntaxError("unexpected token, expecting a definition")
	}
	switch l.text() {
	case token.QUERY:
		return p.parseOperationDefinitionKeyword(QueryOperation)
	case token.MUTATION:
		return p.parseOperationDefinitionKeyword(MutationOperation)
	case token.SUBSCRIPTION:
		return p.parseOperationDefinitionKeyword(SubscriptionOperation)
	case token.FRAGMENT:
		return p.parseFragmentDefinition()
	default:
		return p.parseTypeSystemDefinition()
	}
}

func (p *parser) parseTypeSystemDefinition() *Green {
	l := p.lex
	switch l.text() {
	case token.SCHEMA:
		return p.parseSchemaDefinition()
	case token.SCALAR:
		return p.parseScalarTypeDefinition()
	case token.TYPE:
		return p.parseObjectTypeDefinition()
	case token.INTERFACE:
		return p.parseInterfaceTypeDefinition()
	case token.UNION:
		return p.parseUnionTypeDefinition()
	case token.ENUM:
		return p.parseEnumTypeDefinition()
	case token.INPUT:
		return p.parseInputObjectTypeDefinition()
	case token.DIRECTIVE:
		return p.parseDirectiveDefinition()
	case token.EXTEND:
		return p.parseTypeSystemExtension()
	default:
		l.syntaxError("unexpected \"" + l.text() + "\", expecting a definition")
		return nil
	}
}

// OperationKind mirrors ast.Query/Mutation/Subscription but lives here too
// so the CST parser does not need to import the ast package (ast imports
// syntax, not the other way around).
type OperationKind int

const (
	QueryOperation OperationKind = iota
	MutationOperation
	SubscriptionOperation
)

func (p *parser) parseOperationDefinitionKeyword(kind OperationKind) *Green {
	l := p.lex
	start := l.span()
	l.advanceKeyword(string([]byte(operationKeyword(kind))))
	var name *Green
	if l.peek() == token.NAME {
		name = p.parseName()
	}
	vardefs := p.tryParseVariableDefinitions()
	directives := p.parseDirectives()
	sel := p.parseSelectionSet()
	children := []*Green{}
	if name != nil {
		children = append(children, name)
	}
	if vardefs != nil {
		children = append(children, vardefs)
	}
	if directives != nil {
		children = append(children, directives)
	}
	children = append(children, sel)
	return &Green{Kind: KindOperationDefinition, Span: source.Span{File: start.File, Start: start.Start, End: sel.Span.End}, Text: opText(kind), Children: children}
}

func operationKeyword(kind OperationKind) string {
	switch kind {
	case MutationOperation:
		return token.MUTATION
	case SubscriptionOperation:
		return token.SUBSCRIPTION
	default:
		return token.QUERY
	}
}

func opText(kind OperationKind) string { return operationKeyword(kind) }

func (p *parser) parseOperationDefinition(shorthand bool) *Green {
	start := p.lex.span()
	sel := p.parseSelectionSet()
	return &Green{Kind: KindOperationDefinition, Span: source.Span{File: start.File, Start: start.Start, End: sel.Span.End}, Text: token.QUERY, Children: []*Green{sel}}
}

func (p *parser) tryParseVariableDefinitions() *Green {
	l := p.lex
	if l.peek() != token.PAREN_L {
		return nil
	}
	start := l.span()
	l.advance(token.PAREN_L)
	var defs []*Green
	for l.peek() != token.PAREN_R {
		defs = append(defs, p.parseVariableDefinition())
	}
	end := l.span()
	l.advance(token.PAREN_R)
	return &Green{Kind: KindVariableDefinitions, Span: source.Span{File: start.File, Start: start.Start, End: end.End}, Children: defs}
}

func (p *parser) parseVariableDefinition() *Green {
	l := p.lex
	start := l.span()
	l.advance(token.DOLLAR)
	name := p.parseName()
	l.advance(token.COLON)
	ty := p.parseType()
	children := []*Green{name, ty}
	if l.peek() == token.EQUALS {
		l.advance(token.EQUALS)
		children = append(children, p.parseValueLiteral(true))
	}
	if d := p.parseDirectives(); d != nil {
		children = append(children, d)
	}
	return &Green{Kind: KindVariableDefinition, Span: source.Span{File: start.File, Start: start.Start, End: span(children...).End}, Children: children}
}

func (p *parser) parseType() *Green {
	l := p.lex
	start := l.span()
	var inner *Green
	if l.peek() == token.BRACKET_L {
		l.advance(token.BRACKET_L)
		inner = p.parseType()
		end := l.span()
		l.advance(token.BRACKET_R)
		inner = &Green{Kind: KindListType, Span: source.Span{File: start.File, Start: start.Start, End: end.End}, Children: []*Green{inner}}
	} else {
		inner = p.parseName()
		inner = &Green{Kind: KindNamedType, Span: inner.Span, Children: []*Green{inner}}
	}
	if l.peek() == token.BANG {
		end := l.span()
		l.advance(token.BANG)
		return &Green{Kind: KindNonNullType, Span: source.Span{File: inner.Span.File, Start: inner.Span.Start, End: end.End}, Children: []*Green{inner}}
	}
	return inner
}

func (p *parser) parseName() *Green {
	l := p.lex
	if l.peek() != token.NAME {
		l.syntaxError("expected Name, found " + token.KindString(l.peek()))
	}
	sp := l.span()
	text := l.text()
	trivia := p.lex.trivia.String()
	l.skipWhitespace()
	return leaf(KindName, sp, text, trivia)
}

func (p *parser) parseSelectionSet() *Green {
	l := p.lex
	l.enterRecursion()
	defer l.exitRecursion()
	start := l.span()
	l.advance(token.BRACE_L)
	var sels []*Green
	for l.peek() != token.BRACE_R {
		sels = append(sels, p.parseSelection())
	}
	end := l.span()
	l.advance(token.BRACE_R)
	return &Green{Kind: KindSelectionSet, Span: source.Span{File: start.File, Start: start.Start, End: end.End}, Children: sels}
}

func (p *parser) parseSelection() *Green {
	l := p.lex
	if l.peek() == token.SPREAD {
		return p.parseFragment()
	}
	return p.parseField()
}

func (p *parser) parseField() *Green {
	l := p.lex
	start := l.span()
	first := p.parseName()
	var alias, name *Green
	if l.peek() == token.COLON {
		l.advance(token.COLON)
		alias = first
		name = p.parseName()
	} else {
		name = first
	}
	children := []*Green{}
	if alias != nil {
		children = append(children, &Green{Kind: KindAlias, Span: alias.Span, Children: []*Green{alias}})
	}
	children = append(children, name)
	if args := p.tryParseArguments(); args != nil {
		children = append(children, args)
	}
	if d := p.parseDirectives(); d != nil {
		children = append(children, d)
	}
	end := span(children...)
	if l.peek() == token.BRACE_L {
		sel := p.parseSelectionSet()
		children = append(children, sel)
		end = sel.Span
	}
	return &Green{Kind: KindField, Span: source.Span{File: start.File, Start: start.Start, End: end.End}, Children: children}
}

func (p *parser) tryParseArguments() *Green {
	l := p.lex
	if l.peek() != token.PAREN_L {
		return nil
	}
	start := l.span()
	l.advance(token.PAREN_L)
	var args []*Green
	for l.peek() != token.PAREN_R {
		args = append(args, p.parseArgument())
	}
	end := l.span()
	l.advance(token.PAREN_R)
	return &Green{Kind: KindArguments, Span: source.Span{File: start.File, Start: start.Start, End: end.End}, Children: args}
}

func (p *parser) parseArgument() *Green {
	l := p.lex
	name := p.parseName()
	l.advance(token.COLON)
	value := p.parseValueLiteral(false)
	return &Green{Kind: KindArgument, Span: source.Span{File: name.Span.File, Start: name.Span.Start, End: value.Span.End}, Children: []*Green{name, value}}
}

func (p *parser) parseFragment() *Green {
	l := p.lex
	start := l.span()
	for i := 0; i < 3; i++ {
		l.advance(token.SPREAD)
	}
	if l.peek() == token.NAME && l.text() == token.ON {
		l.advanceKeyword(token.ON)
		cond := p.parseName()
		directives := p.parseDirectives()
		sel := p.parseSelectionSet()
		children := []*Green{{Kind: KindTypeCondition, Span: cond.Span, Children: []*Green{cond}}}
		if directives != nil {
			children = append(children, directives)
		}
		children = append(children, sel)
		return &Green{Kind: KindInlineFragment, Span: source.Span{File: start.File, Start: start.Start, End: sel.Span.End}, Children: children}
	}
	if l.peek() == token.NAME && l.text() != "on" {
		name := p.parseName()
		directives := p.parseDirectives()
		children := []*Green{name}
		if directives != nil {
			children = append(children, directives)
		}
		return &Green{Kind: KindFragmentSpread, Span: source.Span{File: start.File, Start: start.Start, End: span(children...).End}, Children: children}
	}
	directives := p.parseDirectives()
	sel := p.parseSelectionSet()
	children := []*Green{}
	if directives != nil {
		children = append(children, directives)
	}
	children = append(children, sel)
	return &Green{Kind: KindInlineFragment, Span: source.Span{File: start.File, Start: start.Start, End: sel.Span.End}, Children: children}
}

func (p *parser) parseFragmentDefinition() *Green {
	l := p.lex
	start := l.span()
	l.advanceKeyword(token.FRAGMENT)
	name := p.parseName()
	l.advanceKeyword(token.ON)
	cond := p.parseName()
	directives := p.parseDirectives()
	sel := p.parseSelectionSet()
	children := []*Green{name, {Kind: KindTypeCondition, Span: cond.Span, Children: []*Green{cond}}}
	if directives != nil {
		children = append(children, directives)
	}
	children = append(children, sel)
	return &Green{Kind: KindFragmentDefinition, Span: source.Span{File: start.File, Start: start.Start, End: sel.Span.End}, Children: children}
}

func (p *parser) parseDirectives() *Green {
	l := p.lex
	if l.peek() != token.AT {
		return nil
	}
	start := l.span()
	var ds []*Green
	for l.peek() == token.AT {
		ds = append(ds, p.parseDirective())
	}
	return &Green{Kind: KindDirectives, Span: source.Span{File: start.File, Start: start.Start, End: span(ds...).End}, Children: ds}
}

func (p *parser) parseDirective() *Green {
	l := p.lex
	start := l.span()
	l.advance(token.AT)
	name := p.parseName()
	children := []*Green{name}
	if args := p.tryParseArguments(); args != nil {
		children = append(children, args)
	}
	return &Green{Kind: KindDirective, Span: source.Span{File: start.File, Start: start.Start, End: span(children...).End}, Children: children}
}

func (p *parser) parseValueLiteral(constOnly bool) *Green {
	l := p.lex
	l.enterRecursion()
	defer l.exitRecursion()
	sp := l.span()
	trivia := l.trivia.String()
	switch l.peek() {
	case token.BRACKET_L:
		return p.parseListValue(constOnly)
	case token.BRACE_L:
		return p.parseObjectValue(constOnly)
	case token.DOLLAR:
		if constOnly {
			l.syntaxError("unexpected variable in constant context")
		}
		return p.parseVariable()
	case token.INT:
		text := l.text()
		l.skipWhitespace()
		return leaf(KindIntValue, sp, text, trivia)
	case token.FLOAT:
		text := l.text()
		l.skipWhitespace()
		return leaf(KindFloatValue, sp, text, trivia)
	case token.STRING, token.RAWSTRING:
		text := l.text()
		l.skipWhitespace()
		return leaf(KindStringValue, sp, text, trivia)
	case token.NAME:
		switch l.text() {
		case token.TRUE, token.FALSE:
			text := l.text()
			l.skipWhitespace()
			return leaf(KindBooleanValue, sp, text, trivia)
		case token.NULL:
			l.skipWhitespace()
			return leaf(KindNullValue, sp, "null", trivia)
		default:
			text := l.text()
			l.skipWhitespace()
			return leaf(KindEnumValue, sp, text, trivia)
		}
	default:
		l.syntaxError("unexpected token, expecting a value")
		return nil
	}
}

func (p *parser) parseVariable() *Green {
	l := p.lex
	start := l.span()
	l.advance(token.DOLLAR)
	name := p.parseName()
	return &Green{Kind: KindVariable, Span: source.Span{File: start.File, Start: start.Start, End: name.Span.End}, Children: []*Green{name}}
}

func (p *parser) parseListValue(constOnly bool) *Green {
	l := p.lex
	start := l.span()
	l.advance(token.BRACKET_L)
	var vals []*Green
	for l.peek() != token.BRACKET_R {
		vals = append(vals, p.parseValueLiteral(constOnly))
	}
	end := l.span()
	l.advance(token.BRACKET_R)
	return &Green{Kind: KindListValue, Span: source.Span{File: start.File, Start: start.Start, End: end.End}, Children: vals}
}

func (p *parser) parseObjectValue(constOnly bool) *Green {
	l := p.lex
	start := l.span()
	l.advance(token.BRACE_L)
	var fields []*Green
	for l.peek() != token.BRACE_R {
		fields = append(fields, p.parseObjectField(constOnly))
	}
	end := l.span()
	l.advance(token.BRACE_R)
	return &Green{Kind: KindObjectValue, Span: source.Span{File: start.File, Start: start.Start, End: end.End}, Children: fields}
}

func (p *parser) parseObjectField(constOnly bool) *Green {
	l := p.lex
	name := p.parseName()
	l.advance(token.COLON)
	value := p.parseValueLiteral(constOnly)
	return &Green{Kind: KindObjectField, Span: source.Span{File: name.Span.File, Start: name.Span.Start, End: value.Span.End}, Children: []*Green{name, value}}
}

// --- Type-system definitions (SDL) ---

func (p *parser) parseDescription() *Green {
	l := p.lex
	sp := l.span()
	text := l.text()
	l.skipWhitespace()
	return &Green{Kind: KindDescription, Span: sp, Children: []*Green{leaf(KindStringValue, sp, text, "")}}
}

func (p *parser) parseSchemaDefinition() *Green {
	l := p.lex
	start := l.span()
	l.advanceKeyword(token.SCHEMA)
	directives := p.parseDirectives()
	l.advance(token.BRACE_L)
	var ops []*Green
	for l.peek() != token.BRACE_R {
		ops = append(ops, p.parseOperationTypeDefinition())
	}
	end := l.span()
	l.advance(token.BRACE_R)
	children := []*Green{}
	if directives != nil {
		children = append(children, directives)
	}
	children = append(children, ops...)
	return &Green{Kind: KindSchemaDefinition, Span: source.Span{File: start.File, Start: start.Start, End: end.End}, Children: children}
}

func (p *parser) parseOperationTypeDefinition() *Green {
	l := p.lex
	start := l.span()
	opName := l.text()
	l.advance(token.NAME)
	l.advance(token.COLON)
	named := p.parseName()
	return &Green{Kind: KindOperationTypeDefinition, Span: source.Span{File: start.File, Start: start.Start, End: named.Span.End}, Text: opName, Children: []*Green{named}}
}

func (p *parser) parseScalarTypeDefinition() *Green {
	l := p.lex
	start := l.span()
	l.advanceKeyword(token.SCALAR)
	name := p.parseName()
	directives := p.parseDirectives()
	children := []*Green{name}
	if directives != nil {
		children = append(children, directives)
	}
	return &Green{Kind: KindScalarTypeDefinition, Span: source.Span{File: start.File, Start: start.Start, End: span(children...).End}, Children: children}
}

func (p *parser) parseObjectTypeDefinition() *Green {
	l := p.lex
	start := l.span()
	l.advanceKeyword(token.TYPE)
	name := p.parseName()
	impls := p.tryParseImplementsInterfaces()
	directives := p.parseDirectives()
	fields := p.tryParseFieldsDefinition()
	children := []*Green{name}
	if impls != nil {
		children = append(children, impls)
	}
	if directives != nil {
		children = append(children, directives)
	}
	if fields != nil {
		children = append(children, fields)
	}
	return &Green{Kind: KindObjectTypeDefinition, Span: source.Span{File: start.File, Start: start.Start, End: span(children...).End}, Children: children}
}

func (p *parser) tryParseImplementsInterfaces() *Green {
	l := p.lex
	if !(l.peek() == token.NAME && l.text() == token.IMPLEMENTS) {
		return nil
	}
	start := l.span()
	l.advanceKeyword(token.IMPLEMENTS)
	if l.peek() == token.AMP {
		l.advance(token.AMP)
	}
	var names []*Green
	names = append(names, p.parseName())
	for l.peek() == token.AMP {
		l.advance(token.AMP)
		names = append(names, p.parseName())
	}
	return &Green{Kind: KindImplementsInterfaces, Span: source.Span{File: start.File, Start: start.Start, End: span(names...).End}, Children: names}
}

func (p *parser) tryParseFieldsDefinition() *Green {
	l := p.lex
	if l.peek() != token.BRACE_L {
		return nil
	}
	start := l.span()
	l.advance(token.BRACE_L)
	var fields []*Green
	for l.peek() != token.BRACE_R {
		fields = append(fields, p.parseFieldDefinition())
	}
	end := l.span()
	l.advance(token.BRACE_R)
	return &Green{Kind: KindFieldsDefinition, Span: source.Span{File: start.File, Start: start.Start, End: end.End}, Children: fields}
}

func (p *parser) parseFieldDefinition() *Green {
	l := p.lex
	var desc *Green
	if l.peek() == token.STRING || l.peek() == token.RAWSTRING {
		desc = p.parseDescription()
	}
	name := p.parseName()
	args := p.tryParseArgumentsDefinition()
	l.advance(token.COLON)
	ty := p.parseType()
	directives := p.parseDirectives()
	children := []*Green{}
	if desc != nil {
		children = append(children, desc)
	}
	children = append(children, name)
	if args != nil {
		children = append(children, args)
	}
	children = append(children, ty)
	if directives != nil {
		children = append(children, directives)
	}
	return &Green{Kind: KindFieldDefinition, Span: source.Span{File: name.Span.File, Start: name.Span.Start, End: span(children...).End}, Children: children}
}

func (p *parser) tryParseArgumentsDefinition() *Green {
	l := p.lex
	if l.peek() != token.PAREN_L {
		return nil
	}
	start := l.span()
	l.advance(token.PAREN_L)
	var args []*Green
	for l.peek() != token.PAREN_R {
		args = append(args, p.parseInputValueDefinition())
	}
	end := l.span()
	l.advance(token.PAREN_R)
	return &Green{Kind: KindArguments, Span: source.Span{File: start.File, Start: start.Start, End: end.End}, Children: args}
}

func (p *parser) parseInputValueDefinition() *Green {
	l := p.lex
	var desc *Green
	if l.peek() == token.STRING || l.peek() == token.RAWSTRING {
		desc = p.parseDescription()
	}
	name := p.parseName()
	l.advance(token.COLON)
	ty := p.parseType()
	children := []*Green{}
	if desc != nil {
		children = append(children, desc)
	}
	children = append(children, name, ty)
	if l.peek() == token.EQUALS {
		l.advance(token.EQUALS)
		children = append(children, p.parseValueLiteral(true))
	}
	if d := p.parseDirectives(); d != nil {
		children = append(children, d)
	}
	return &Green{Kind: KindInputValueDefinition, Span: source.Span{File: name.Span.File, Start: name.Span.Start, End: span(children...).End}, Children: children}
}

func (p *parser) parseInterfaceTypeDefinition() *Green {
	l := p.lex
	start := l.span()
	l.advanceKeyword(token.INTERFACE)
	name := p.parseName()
	impls := p.tryParseImplementsInterfaces()
	directives := p.parseDirectives()
	fields := p.tryParseFieldsDefinition()
	children := []*Green{name}
	if impls != nil {
		children = append(children, impls)
	}
	if directives != nil {
		children = append(children, directives)
	}
	if fields != nil {
		children = append(children, fields)
	}
	return &Green{Kind: KindInterfaceTypeDefinition, Span: source.Span{File: start.File, Start: start.Start, End: span(children...).End}, Children: children}
}

func (p *parser) parseUnionTypeDefinition() *Green {
	l := p.lex
	start := l.span()
	l.advanceKeyword(token.UNION)
	name := p.parseName()
	directives := p.parseDirectives()
	children := []*Green{name}
	if directives != nil {
		children = append(children, directives)
	}
	if l.peek() == token.EQUALS {
		l.advance(token.EQUALS)
		if l.peek() == token.PIPE {
			l.advance(token.PIPE)
		}
		children = append(children, p.parseName())
		for l.peek() == token.PIPE {
			l.advance(token.PIPE)
			children = append(children, p.parseName())
		}
	}
	return &Green{Kind: KindUnionTypeDefinition, Span: source.Span{File: start.File, Start: start.Start, End: span(children...).End}, Children: children}
}

func (p *parser) parseEnumTypeDefinition() *Green {
	l := p.lex
	start := l.span()
	l.advanceKeyword(token.ENUM)
	name := p.parseName()
	directives := p.parseDirectives()
	children := []*Green{name}
	if directives != nil {
		children = append(children, directives)
	}
	if l.peek() == token.BRACE_L {
		l.advance(token.BRACE_L)
		for l.peek() != token.BRACE_R {
			children = append(children, p.parseEnumValueDefinition())
		}
		l.advance(token.BRACE_R)
	}
	return &Green{Kind: KindEnumTypeDefinition, Span: source.Span{File: start.File, Start: start.Start, End: span(children...).End}, Children: children}
}

func (p *parser) parseEnumValueDefinition() *Green {
	l := p.lex
	var desc *Green
	if l.peek() == token.STRING || l.peek() == token.RAWSTRING {
		desc = p.parseDescription()
	}
	name := p.parseName()
	directives := p.parseDirectives()
	children := []*Green{}
	if desc != nil {
		children = append(children, desc)
	}
	children = append(children, name)
	if directives != nil {
		children = append(children, directives)
	}
	return &Green{Kind: KindEnumValueDefinition, Span: source.Span{File: name.Span.File, Start: name.Span.Start, End: span(children...).End}, Children: children}
}

func (p *parser) parseInputObjectTypeDefinition() *Green {
	l := p.lex
	start := l.span()
	l.advanceKeyword(token.INPUT)
	name := p.parseName()
	directives := p.parseDirectives()
	children := []*Green{name}
	if directives != nil {
		children = append(children, directives)
	}
	if l.peek() == token.BRACE_L {
		l.advance(token.BRACE_L)
		for l.peek() != token.BRACE_R {
			children = append(children, p.parseInputValueDefinition())
		}
		l.advance(token.BRACE_R)
	}
	return &Green{Kind: KindInputObjectTypeDefinition, Span: source.Span{File: start.File, Start: start.Start, End: span(children...).End}, Children: children}
}

func (p *parser) parseDirectiveDefinition() *Green {
	l := p.lex
	start := l.span()
	l.advanceKeyword(token.DIRECTIVE)
	l.advance(token.AT)
	name := p.parseName()
	args := p.tryParseArgumentsDefinition()
	repeatable := false
	if l.peek() == token.NAME && l.text() == token.REPEATABLE {
		l.advanceKeyword(token.REPEATABLE)
		repeatable = true
	}
	l.advanceKeyword(token.ON)
	if l.peek() == token.PIPE {
		l.advance(token.PIPE)
	}
	locStart := p.parseName()
	locs := []*Green{locStart}
	for l.peek() == token.PIPE {
		l.advance(token.PIPE)
		locs = append(locs, p.parseName())
	}
	children := []*Green{name}
	if args != nil {
		children = append(children, args)
	}
	repeatText := "false"
	if repeatable {
		repeatText = "true"
	}
	children = append(children, &Green{Kind: KindDirectiveLocations, Span: span(locs...), Text: repeatText, Children: locs})
	return &Green{Kind: KindDirectiveDefinition, Span: source.Span{File: start.File, Start: start.Start, End: span(children...).End}, Children: children}
}

func (p *parser) parseTypeSystemExtension() *Green {
	l := p.lex
	l.advanceKeyword(token.EXTEND)
	if l.peek() != token.NAME {
		l.syntaxError("expected a type system definition after \"extend\"")
	}
	switch l.text() {
	case token.SCHEMA:
		n := p.parseSchemaExtensionBody()
		n.Kind = KindSchemaExtension
		return n
	case token.SCALAR:
		n := p.parseScalarTypeDefinition()
		n.Kind = KindScalarTypeExtension
		return n
	case token.TYPE:
		n := p.parseObjectTypeDefinition()
		n.Kind = KindObjectTypeExtension
		return n
	case token.INTERFACE:
		n := p.parseInterfaceTypeDefinition()
		n.Kind = KindInterfaceTypeExtension
		return n
	case token.UNION:
		n := p.parseUnionTypeDefinition()
		n.Kind = KindUnionTypeExtension
		return n
	case token.ENUM:
		n := p.parseEnumTypeDefinition()
		n.Kind = KindEnumTypeExtension
		return n
	case token.INPUT:
		n := p.parseInputObjectTypeDefinition()
		n.Kind = KindInputObjectTypeExtension
		return n
	default:
		l.syntaxError("unexpected \"" + l.text() + "\" after \"extend\"")
		return nil
	}
}

func (p *parser) parseSchemaExtensionBody() *Green {
	n := p.parseSchemaDefinition()
	return n
}
