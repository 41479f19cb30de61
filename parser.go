package gqlcore

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

// ParseAST lexes, parses and converts text into an AST Document (§6.1,
// §6.2 "Parser::parse_ast"). It never fails outright: a syntactically
// broken input still yields whatever definitions the tolerant parser and
// fallible converter could recover, plus the tier-1 errors describing
// what went wrong. sources registers text under path for later span
// rendering; pass the same *source.Map a Schema or ExecutableDocument
// built from this text will use so diagnostics and parse errors share
// one file/offset space.
func ParseAST(sources *source.Map, path, text string, cfg ...syntax.Config) (*ast.Document, []syntax.Error) {
	c := syntax.DefaultConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	tree := syntax.Parse(sources, path, text, c)
	doc := ast.NewConverter().Document(tree.Root)
	return doc, tree.Errors
}
