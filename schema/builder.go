package schema

import (
	"go.uber.org/zap"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/diagnostic"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

// Option configures a Builder, grounded on the teacher's own functional-
// options pattern (options.go).
type Option func(*Builder)

// AllowBuiltInRedefinitions lets a user type definition silently replace a
// seeded built-in scalar instead of producing BuiltInScalarTypeRedefinition
// (§4.4).
func AllowBuiltInRedefinitions() Option {
	return func(b *Builder) { b.allowBuiltinRedefinitions = true }
}

// AdoptOrphanExtensions synthesizes an empty definition of the right kind
// for an extension whose target does not exist, instead of diagnosing
// OrphanTypeExtension/OrphanSchemaExtension (§4.4).
func AdoptOrphanExtensions() Option {
	return func(b *Builder) { b.adoptOrphanExtensions = true }
}

// WithLogger attaches a zap logger the builder reports its fold decisions
// to at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) { b.log = l }
}

// AllowBuiltInRedefinitions is the chainable, post-construction form of
// the AllowBuiltInRedefinitions option.
func (b *Builder) AllowBuiltInRedefinitions() *Builder {
	b.allowBuiltinRedefinitions = true
	return b
}

// AdoptOrphanExtensions is the chainable, post-construction form of the
// AdoptOrphanExtensions option.
func (b *Builder) AdoptOrphanExtensions() *Builder {
	b.adoptOrphanExtensions = true
	return b
}

// Builder folds one or more ASTs, plus the built-in seed, into a Schema
// (C5). It is not reusable across goroutines concurrently — like the
// teacher's own SchemaBuilder, one Builder serves one build.
type Builder struct {
	sources *source.Map
	docs    []*ast.Document

	syntaxErrors  []syntax.Error
	convertErrors []ast.ConvertError

	allowBuiltinRedefinitions bool
	adoptOrphanExtensions     bool
	log                       *zap.Logger
}

// NewBuilder starts a fresh build against sources, which every Parse call
// registers its input text into.
func NewBuilder(sources *source.Map, opts ...Option) *Builder {
	b := &Builder{sources: sources, log: zap.NewNop()}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Parse lexes and parses text, converts it to an AST, and queues it for
// Build. Syntax and conversion errors are recorded but do not stop the
// build — a document with syntax errors still contributes whatever
// definitions the tolerant parser and fallible converter could recover.
func (b *Builder) Parse(path, text string, cfg syntax.Config) *Builder {
	tree := syntax.Parse(b.sources, path, text, cfg)
	b.syntaxErrors = append(b.syntaxErrors, tree.Errors...)
	conv := ast.NewConverter()
	doc := conv.Document(tree.Root)
	b.convertErrors = append(b.convertErrors, conv.Errors...)
	b.docs = append(b.docs, doc)
	return b
}

// AddAST queues an already-built AST document for Build, e.g. one produced
// by a caller that parsed and converted it independently.
func (b *Builder) AddAST(doc *ast.Document) *Builder {
	b.docs = append(b.docs, doc)
	return b
}

// SyntaxErrors returns every tier-1 parser error accumulated across Parse
// calls.
func (b *Builder) SyntaxErrors() []syntax.Error { return b.syntaxErrors }

type orphanExt struct {
	def  ast.Definition
	span source.Span
	id   syntax.ExtensionID
}

// Build runs the two-pass fold §4.4 describes: install every base
// definition, buffer every extension, then apply buffered extensions to
// the (by then complete) base definitions.
func (b *Builder) Build() (*Schema, diagnostic.List) {
	sch := newSchema(b.sources)
	var diags diagnostic.List

	var sawSchemaDefinition bool
	var schemaExts []orphanExt
	orphans := make(map[string][]orphanExt)

	builtinDoc := &ast.Document{Definitions: clonedDefinitions(builtinSeed())}
	allDocs := append([]*ast.Document{builtinDoc}, b.docs...)

	// --- pass 1: definitions ---
	for _, doc := range allDocs {
		isBuiltin := doc == builtinDoc
		for _, node := range doc.Definitions {
			span, _ := node.Location()
			def := *node.Get()
			switch d := def.(type) {
			case ast.SchemaDefinition:
				if sawSchemaDefinition {
					diags = diags.Add(diagnostic.New(diagnostic.KindSchemaDefinitionCollision, span, "multiple schema definitions"))
					continue
				}
				sawSchemaDefinition = true
				sch.SchemaDirectives = b.foldDirectives(d.Directives, syntax.DefinitionOrigin())
				for _, op := range d.RootOperations {
					b.bindRootOperation(sch, op.Operation, op.Type, syntax.DefinitionOrigin(), &diags)
				}
			case ast.SchemaExtension:
				schemaExts = append(schemaExts, orphanExt{def: d, span: span, id: syntax.NewExtensionID(span)})
			case ast.DirectiveDefinition:
				b.installDirective(sch, d, span, isBuiltin, &diags)
			case ast.ScalarTypeDefinition:
				b.installType(sch, d.Name, ScalarType{Description: d.Description, Name: d.Name.Text, Directives: b.foldDirectives(d.Directives, syntax.DefinitionOrigin())}, span, &diags)
			case ast.ObjectTypeDefinition:
				b.installType(sch, d.Name, b.newObjectType(d), span, &diags)
			case ast.InterfaceTypeDefinition:
				b.installType(sch, d.Name, b.newInterfaceType(d), span, &diags)
			case ast.UnionTypeDefinition:
				b.installType(sch, d.Name, b.newUnionType(d), span, &diags)
			case ast.EnumTypeDefinition:
				b.installType(sch, d.Name, b.newEnumType(d), span, &diags)
			case ast.InputObjectTypeDefinition:
				b.installType(sch, d.Name, b.newInputObjectType(d), span, &diags)
			case ast.ScalarTypeExtension:
				orphans[d.Name.Text] = append(orphans[d.Name.Text], orphanExt{def: d, span: span, id: syntax.NewExtensionID(span)})
			case ast.ObjectTypeExtension:
				orphans[d.Name.Text] = append(orphans[d.Name.Text], orphanExt{def: d, span: span, id: syntax.NewExtensionID(span)})
			case ast.InterfaceTypeExtension:
				orphans[d.Name.Text] = append(orphans[d.Name.Text], orphanExt{def: d, span: span, id: syntax.NewExtensionID(span)})
			case ast.UnionTypeExtension:
				orphans[d.Name.Text] = append(orphans[d.Name.Text], orphanExt{def: d, span: span, id: syntax.NewExtensionID(span)})
			case ast.EnumTypeExtension:
				orphans[d.Name.Text] = append(orphans[d.Name.Text], orphanExt{def: d, span: span, id: syntax.NewExtensionID(span)})
			case ast.InputObjectTypeExtension:
				orphans[d.Name.Text] = append(orphans[d.Name.Text], orphanExt{def: d, span: span, id: syntax.NewExtensionID(span)})
			case ast.OperationDefinition, ast.FragmentDefinition:
				diags = diags.Add(diagnostic.New(diagnostic.KindExecutableDefinitionInTypeSystem, span, "executable definition not valid in a type-system document"))
			}
		}
	}

	// --- pass 2: extensions ---
	for name, exts := range orphans {
		for _, ext := range exts {
			b.applyTypeExtension(sch, name, ext, &diags)
		}
	}
	for _, ext := range schemaExts {
		if !sawSchemaDefinition && !b.adoptOrphanExtensions {
			diags = diags.Add(diagnostic.New(diagnostic.KindOrphanSchemaExtension, ext.span, "extension of undefined schema"))
			continue
		}
		d := ext.def.(ast.SchemaExtension)
		origin := syntax.ExtensionOrigin(ext.id)
		sch.SchemaDirectives = append(sch.SchemaDirectives, b.foldDirectives(d.Directives, origin)...)
		for _, op := range d.RootOperations {
			b.bindRootOperation(sch, op.Operation, op.Type, origin, &diags)
		}
	}

	// --- implicit schema ---
	if !sawSchemaDefinition {
		b.bindImplicitRoot(sch, "Query", func(c ComponentName) { sch.Root.Query = &c })
		b.bindImplicitRoot(sch, "Mutation", func(c ComponentName) { sch.Root.Mutation = &c })
		b.bindImplicitRoot(sch, "Subscription", func(c ComponentName) { sch.Root.Subscription = &c })
	}

	b.log.Debug("schema build complete", zap.Int("types", sch.Types.Len()), zap.Int("diagnostics", len(diags)))
	return sch, diags
}

func (b *Builder) bindImplicitRoot(sch *Schema, typeName string, bind func(ComponentName)) {
	if _, ok := sch.Types.Get(typeName); !ok {
		return
	}
	bind(syntax.NewComponent(typeName, syntax.DefinitionOrigin()))
}

func (b *Builder) bindRootOperation(sch *Schema, op ast.OperationType, typeName ast.Name, origin syntax.Origin, diags *diagnostic.List) {
	cn := syntax.NewComponentParsed(typeName.Text, typeName.Span, origin)
	var slot **ComponentName
	switch op {
	case ast.Mutation:
		slot = &sch.Root.Mutation
	case ast.Subscription:
		slot = &sch.Root.Subscription
	default:
		slot = &sch.Root.Query
	}
	if *slot != nil {
		*diags = diags.Add(diagnostic.New(diagnostic.KindDuplicateRootOperation, typeName.Span, "duplicate %s root operation binding", op))
		return
	}
	*slot = &cn
}

func (b *Builder) installDirective(sch *Schema, d ast.DirectiveDefinition, span source.Span, isBuiltin bool, diags *diagnostic.List) {
	args := syntax.NewOrderedMap[InputValue]()
	for _, a := range d.Arguments {
		args.Insert(a.Name.Text, b.newInputValue(a))
	}
	var locs []string
	for _, l := range d.Locations {
		locs = append(locs, l.Text)
	}
	def := &DirectiveDef{Description: d.Description, Name: d.Name.Text, Arguments: args, Repeatable: d.Repeatable, Locations: locs, BuiltIn: isBuiltin}
	existing, ok := sch.DirectiveDefs.Get(d.Name.Text)
	if !ok {
		sch.DirectiveDefs.Insert(d.Name.Text, def)
		return
	}
	if existing.BuiltIn {
		sch.DirectiveDefs.Set(d.Name.Text, def)
		return
	}
	*diags = diags.Add(diagnostic.New(diagnostic.KindDirectiveDefinitionCollision, span, "directive @%s is already defined", d.Name.Text))
}

func (b *Builder) installType(sch *Schema, name ast.Name, t ExtendedType, span source.Span, diags *diagnostic.List) {
	existing, ok := sch.Types.Get(name.Text)
	if !ok {
		sch.Types.Insert(name.Text, t)
		return
	}
	if scalar, isScalar := existing.(ScalarType); isScalar && IsBuiltInScalar(scalar.Name) {
		if b.allowBuiltinRedefinitions {
			sch.Types.Set(name.Text, t)
			return
		}
		*diags = diags.Add(diagnostic.New(diagnostic.KindBuiltInScalarTypeRedefinition, span, "%q redefines a built-in scalar", name.Text))
		return
	}
	*diags = diags.Add(diagnostic.New(diagnostic.KindTypeDefinitionCollision, span, "%q is already defined", name.Text))
}

func (b *Builder) foldDirectives(list ast.DirectiveList, origin syntax.Origin) []syntax.Component[ast.Directive] {
	var out []syntax.Component[ast.Directive]
	for _, d := range list {
		out = append(out, syntax.NewComponent(d, origin))
	}
	return out
}

func (b *Builder) newField(f ast.FieldDefinition) Field {
	args := syntax.NewOrderedMap[syntax.Component[InputValue]]()
	for _, a := range f.Arguments {
		args.Insert(a.Name.Text, syntax.NewComponentParsed(b.newInputValue(a), a.Name.Span, syntax.DefinitionOrigin()))
	}
	return Field{Description: f.Description, Name: f.Name.Text, Arguments: args, Type: f.Type, Directives: b.foldDirectives(f.Directives, syntax.DefinitionOrigin())}
}

func (b *Builder) newInputValue(v ast.InputValueDefinition) InputValue {
	return InputValue{Description: v.Description, Name: v.Name.Text, Type: v.Type, DefaultValue: v.DefaultValue, Directives: b.foldDirectives(v.Directives, syntax.DefinitionOrigin())}
}

func (b *Builder) newEnumValue(v ast.EnumValueDefinition) EnumValue {
	return EnumValue{Description: v.Description, Name: v.Name.Text, Directives: b.foldDirectives(v.Directives, syntax.DefinitionOrigin())}
}

func (b *Builder) newObjectType(d ast.ObjectTypeDefinition) ObjectType {
	impl := syntax.NewOrderedMap[ComponentName]()
	for _, i := range d.Implements {
		impl.Insert(i.Text, syntax.NewComponentParsed(i.Text, i.Span, syntax.DefinitionOrigin()))
	}
	fields := syntax.NewOrderedMap[syntax.Component[Field]]()
	for _, f := range d.Fields {
		fields.Insert(f.Name.Text, syntax.NewComponentParsed(b.newField(f), f.Name.Span, syntax.DefinitionOrigin()))
	}
	return ObjectType{Description: d.Description, Name: d.Name.Text, Implements: impl, Directives: b.foldDirectives(d.Directives, syntax.DefinitionOrigin()), Fields: fields}
}

func (b *Builder) newInterfaceType(d ast.InterfaceTypeDefinition) InterfaceType {
	impl := syntax.NewOrderedMap[ComponentName]()
	for _, i := range d.Implements {
		impl.Insert(i.Text, syntax.NewComponentParsed(i.Text, i.Span, syntax.DefinitionOrigin()))
	}
	fields := syntax.NewOrderedMap[syntax.Component[Field]]()
	for _, f := range d.Fields {
		fields.Insert(f.Name.Text, syntax.NewComponentParsed(b.newField(f), f.Name.Span, syntax.DefinitionOrigin()))
	}
	return InterfaceType{Description: d.Description, Name: d.Name.Text, Implements: impl, Directives: b.foldDirectives(d.Directives, syntax.DefinitionOrigin()), Fields: fields}
}

func (b *Builder) newUnionType(d ast.UnionTypeDefinition) UnionType {
	members := syntax.NewOrderedMap[ComponentName]()
	for _, m := range d.Members {
		members.Insert(m.Text, syntax.NewComponentParsed(m.Text, m.Span, syntax.DefinitionOrigin()))
	}
	return UnionType{Description: d.Description, Name: d.Name.Text, Directives: b.foldDirectives(d.Directives, syntax.DefinitionOrigin()), Members: members}
}

func (b *Builder) newEnumType(d ast.EnumTypeDefinition) EnumType {
	values := syntax.NewOrderedMap[syntax.Component[EnumValue]]()
	for _, v := range d.Values {
		values.Insert(v.Name.Text, syntax.NewComponentParsed(b.newEnumValue(v), v.Name.Span, syntax.DefinitionOrigin()))
	}
	return EnumType{Description: d.Description, Name: d.Name.Text, Directives: b.foldDirectives(d.Directives, syntax.DefinitionOrigin()), Values: values}
}

func (b *Builder) newInputObjectType(d ast.InputObjectTypeDefinition) InputObjectType {
	fields := syntax.NewOrderedMap[syntax.Component[InputValue]]()
	for _, f := range d.Fields {
		fields.Insert(f.Name.Text, syntax.NewComponentParsed(b.newInputValue(f), f.Name.Span, syntax.DefinitionOrigin()))
	}
	return InputObjectType{Description: d.Description, Name: d.Name.Text, Directives: b.foldDirectives(d.Directives, syntax.DefinitionOrigin()), Fields: fields}
}

// applyTypeExtension folds one buffered extension into its target, or
// diagnoses a kind mismatch / orphan (§4.4 "Extension pass").
func (b *Builder) applyTypeExtension(sch *Schema, name string, ext orphanExt, diags *diagnostic.List) {
	origin := syntax.ExtensionOrigin(ext.id)
	existing, ok := sch.Types.Get(name)
	if !ok {
		if !b.adoptOrphanExtensions {
			*diags = diags.Add(diagnostic.New(diagnostic.KindOrphanTypeExtension, ext.span, "extension of undefined type %q", name))
			return
		}
		existing = b.synthesize(ext.def, name)
		sch.Types.Insert(name, existing)
	}

	switch e := ext.def.(type) {
	case ast.ScalarTypeExtension:
		t, ok := existing.(ScalarType)
		if !ok {
			b.mismatch(diags, ext.span, name)
			return
		}
		t.Directives = append(t.Directives, b.foldDirectives(e.Directives, origin)...)
		sch.Types.Set(name, t)
	case ast.ObjectTypeExtension:
		t, ok := existing.(ObjectType)
		if !ok {
			b.mismatch(diags, ext.span, name)
			return
		}
		for _, i := range e.Implements {
			if !t.Implements.Insert(i.Text, syntax.NewComponentParsed(i.Text, i.Span, origin)) {
				*diags = diags.Add(diagnostic.New(diagnostic.KindDuplicateImplementsInterfaceInObject, i.Span, "%q already implements %q", name, i.Text))
			}
		}
		t.Directives = append(t.Directives, b.foldDirectives(e.Directives, origin)...)
		for _, f := range e.Fields {
			if !t.Fields.Insert(f.Name.Text, syntax.NewComponentParsed(b.newField(f), f.Name.Span, origin)) {
				*diags = diags.Add(diagnostic.New(diagnostic.KindObjectFieldNameCollision, f.Name.Span, "field %q already defined on %q", f.Name.Text, name))
			}
		}
		sch.Types.Set(name, t)
	case ast.InterfaceTypeExtension:
		t, ok := existing.(InterfaceType)
		if !ok {
			b.mismatch(diags, ext.span, name)
			return
		}
		for _, i := range e.Implements {
			if !t.Implements.Insert(i.Text, syntax.NewComponentParsed(i.Text, i.Span, origin)) {
				*diags = diags.Add(diagnostic.New(diagnostic.KindDuplicateImplementsInterfaceInInterface, i.Span, "%q already implements %q", name, i.Text))
			}
		}
		t.Directives = append(t.Directives, b.foldDirectives(e.Directives, origin)...)
		for _, f := range e.Fields {
			if !t.Fields.Insert(f.Name.Text, syntax.NewComponentParsed(b.newField(f), f.Name.Span, origin)) {
				*diags = diags.Add(diagnostic.New(diagnostic.KindInterfaceFieldNameCollision, f.Name.Span, "field %q already defined on %q", f.Name.Text, name))
			}
		}
		sch.Types.Set(name, t)
	case ast.UnionTypeExtension:
		t, ok := existing.(UnionType)
		if !ok {
			b.mismatch(diags, ext.span, name)
			return
		}
		t.Directives = append(t.Directives, b.foldDirectives(e.Directives, origin)...)
		for _, m := range e.Members {
			if !t.Members.Insert(m.Text, syntax.NewComponentParsed(m.Text, m.Span, origin)) {
				*diags = diags.Add(diagnostic.New(diagnostic.KindUnionMemberNameCollision, m.Span, "%q is already a member of %q", m.Text, name))
			}
		}
		sch.Types.Set(name, t)
	case ast.EnumTypeExtension:
		t, ok := existing.(EnumType)
		if !ok {
			b.mismatch(diags, ext.span, name)
			return
		}
		t.Directives = append(t.Directives, b.foldDirectives(e.Directives, origin)...)
		for _, v := range e.Values {
			if !t.Values.Insert(v.Name.Text, syntax.NewComponentParsed(b.newEnumValue(v), v.Name.Span, origin)) {
				*diags = diags.Add(diagnostic.New(diagnostic.KindEnumValueNameCollision, v.Name.Span, "enum value %q already defined on %q", v.Name.Text, name))
			}
		}
		sch.Types.Set(name, t)
	case ast.InputObjectTypeExtension:
		t, ok := existing.(InputObjectType)
		if !ok {
			b.mismatch(diags, ext.span, name)
			return
		}
		t.Directives = append(t.Directives, b.foldDirectives(e.Directives, origin)...)
		for _, f := range e.Fields {
			if !t.Fields.Insert(f.Name.Text, syntax.NewComponentParsed(b.newInputValue(f), f.Name.Span, origin)) {
				*diags = diags.Add(diagnostic.New(diagnostic.KindInputFieldNameCollision, f.Name.Span, "field %q already defined on %q", f.Name.Text, name))
			}
		}
		sch.Types.Set(name, t)
	}
}

func (b *Builder) mismatch(diags *diagnostic.List, span source.Span, name string) {
	*diags = diags.Add(diagnostic.New(diagnostic.KindTypeExtensionKindMismatch, span, "extension of %q does not match its definition's kind", name))
}

// synthesize builds an empty definition of ext's kind, for the
// AdoptOrphanExtensions path.
func (b *Builder) synthesize(ext ast.Definition, name string) ExtendedType {
	switch ext.(type) {
	case ast.ScalarTypeExtension:
		return ScalarType{Name: name}
	case ast.ObjectTypeExtension:
		return ObjectType{Name: name, Implements: syntax.NewOrderedMap[ComponentName](), Fields: syntax.NewOrderedMap[syntax.Component[Field]]()}
	case ast.InterfaceTypeExtension:
		return InterfaceType{Name: name, Implements: syntax.NewOrderedMap[ComponentName](), Fields: syntax.NewOrderedMap[syntax.Component[Field]]()}
	case ast.UnionTypeExtension:
		return UnionType{Name: name, Members: syntax.NewOrderedMap[ComponentName]()}
	case ast.EnumTypeExtension:
		return EnumType{Name: name, Values: syntax.NewOrderedMap[syntax.Component[EnumValue]]()}
	case ast.InputObjectTypeExtension:
		return InputObjectType{Name: name, Fields: syntax.NewOrderedMap[syntax.Component[InputValue]]()}
	default:
		return ScalarType{Name: name}
	}
}
