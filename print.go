package gqlcore

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/printer"
)

// PrinterConfig re-exports printer.Config (§4.7).
type PrinterConfig = printer.Config

// DefaultPrinterConfig re-exports printer.DefaultConfig.
func DefaultPrinterConfig() PrinterConfig { return printer.DefaultConfig() }

// Print renders doc back to canonical GraphQL source text (§4.7, §6.5).
// Feeding the result back through ParseAST/ParseSchema/ParseExecutable
// must yield an equivalent document, up to insignificant whitespace and
// description placement.
func Print(doc *ast.Document) string { return printer.Print(doc) }
