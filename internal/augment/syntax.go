package augment

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"

	"relatedgen/internal/descriptor"
)

// SourceUnit is the mutable structural representation of one model file.
// It is owned by the Augmentor for the duration of one file's processing
// and discarded after printing.
type SourceUnit struct {
	fset *token.FileSet
	file *ast.File
}

// Syntax is the structural parser/printer capability the Augmentor works
// through. It exists as a seam so tests can substitute a failing or
// instrumented implementation.
type Syntax interface {
	// Parse turns source text into a mutable tree.
	Parse(name string, src []byte) (*SourceUnit, error)
	// Print serializes the tree back to canonical source text.
	Print(unit *SourceUnit) ([]byte, error)
}

// GoSyntax implements Syntax with go/parser and go/format. Each Parse
// call uses its own FileSet, so nothing is process-global.
type GoSyntax struct{}

// Parse parses src as a single Go source file, keeping comments.
func (GoSyntax) Parse(name string, src []byte) (*SourceUnit, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", descriptor.ErrUnparsableSource, err)
	}

	return &SourceUnit{fset: fset, file: file}, nil
}

// Print renders the unit and normalizes it through format.Source, so the
// output is gofmt-canonical even though appended nodes carry no positions.
func (GoSyntax) Print(unit *SourceUnit) ([]byte, error) {
	var buf bytes.Buffer

	err := format.Node(&buf, unit.fset, unit.file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", descriptor.ErrSerializationFailure, err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", descriptor.ErrSerializationFailure, err)
	}

	return out, nil
}
