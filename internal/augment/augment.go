package augment

import (
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"

	"relatedgen/internal/common"
	"relatedgen/internal/descriptor"
)

// Support names the import paths of the packages injected members
// reference: the relation runtime (Relation type, FetchType constants,
// Register) and the object-kind enum constants. The two may be the same
// package.
type Support struct {
	RelatedImport string
	EnumsImport   string
}

// Result reports the outcome of augmenting one source file.
type Result struct {
	// Added counts new members appended to the primary type: one field
	// plus getter and setter per materialized descriptor.
	Added int
	// SkippedExisting lists descriptor names whose field already existed.
	SkippedExisting []string
}

// membersPerDescriptor is the field/getter/setter triple.
const membersPerDescriptor = 3

// Augmentor injects relationship members into generated model sources.
type Augmentor struct {
	syntax  Syntax
	support Support
}

// New creates an Augmentor using the given parser/printer capability.
func New(syntax Syntax, support Support) *Augmentor {
	return &Augmentor{syntax: syntax, support: support}
}

// Augment parses src, appends the members for every descriptor not yet
// present on the primary struct, and returns the new source text. When
// every descriptor is already present, src is returned unchanged (and no
// imports are added, since they would be unused).
//
// The primary struct is the declaration named after the schema when one
// exists, otherwise the first exported struct declaration in the file.
func (a *Augmentor) Augment(fileName string, src []byte, schemaName string, descs []descriptor.Descriptor) ([]byte, Result, error) {
	var res Result

	unit, err := a.syntax.Parse(fileName, src)
	if err != nil {
		return nil, res, err
	}

	typeName, structType, err := primaryStruct(unit.file, schemaName)
	if err != nil {
		return nil, res, err
	}

	existing := fieldNames(structType)

	missing := make([]descriptor.Descriptor, 0, len(descs))

	for _, d := range descs {
		if _, ok := existing[d.Name]; ok {
			res.SkippedExisting = append(res.SkippedExisting, d.Name)
			continue
		}

		missing = append(missing, d)
		// Guard against duplicate names within one descriptor list.
		existing[d.Name] = struct{}{}
	}

	if len(missing) == 0 {
		return src, res, nil
	}

	astutil.AddImport(unit.fset, unit.file, a.support.RelatedImport)
	astutil.AddImport(unit.fset, unit.file, a.support.EnumsImport)

	relatedAlias := common.PkgAlias(a.support.RelatedImport)
	enumsAlias := common.PkgAlias(a.support.EnumsImport)

	// Synthesized nodes need explicit positions: fields anchor just
	// inside the struct's closing brace and declarations anchor past the
	// end of the file, so the printer keeps every original comment with
	// its original neighbor instead of flushing it between new members.
	fieldPos := anchorBefore(structType.Fields.Closing)
	declPos := fileEnd(unit)

	for _, d := range missing {
		structType.Fields.List = append(structType.Fields.List, fieldDecl(d, fieldPos))
		unit.file.Decls = append(unit.file.Decls,
			registrationDecl(typeName, d, relatedAlias, enumsAlias, declPos),
			getterDecl(typeName, d, declPos),
			setterDecl(typeName, d, declPos),
		)
		res.Added += membersPerDescriptor
	}

	out, err := a.syntax.Print(unit)
	if err != nil {
		return nil, res, err
	}

	return out, res, nil
}

// anchorBefore returns a position one byte before the given token, or
// NoPos when the token has no position.
func anchorBefore(pos token.Pos) token.Pos {
	if !pos.IsValid() {
		return token.NoPos
	}

	return pos - 1
}

// fileEnd returns the position just past the unit's last byte. Every
// comment in the file sits before it, so nodes anchored there print
// after all original text.
func fileEnd(unit *SourceUnit) token.Pos {
	tf := unit.fset.File(unit.file.Pos())
	if tf == nil {
		return token.NoPos
	}

	return tf.Pos(tf.Size())
}

// primaryStruct locates the type declaration relationship members attach
// to. Preference order: the struct named exactly schemaName, then the
// first exported struct in declaration order.
func primaryStruct(file *ast.File, schemaName string) (string, *ast.StructType, error) {
	var firstName string

	var firstStruct *ast.StructType

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}

		for _, s := range gen.Specs {
			ts, ok := s.(*ast.TypeSpec)
			if !ok {
				continue
			}

			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}

			if ts.Name.Name == schemaName {
				return ts.Name.Name, st, nil
			}

			if firstStruct == nil && ts.Name.IsExported() {
				firstName = ts.Name.Name
				firstStruct = st
			}
		}
	}

	if firstStruct == nil {
		return "", nil, fmt.Errorf("%w: no struct declaration for schema %s", descriptor.ErrNoPrimaryType, schemaName)
	}

	return firstName, firstStruct, nil
}

// fieldNames returns the set of field names declared on a struct. The
// field name is the member identity key: getters, setters, and the
// registration var are only ever emitted together with their field, so
// its presence means the whole triple exists.
func fieldNames(st *ast.StructType) map[string]struct{} {
	names := make(map[string]struct{})

	for _, f := range st.Fields.List {
		for _, n := range f.Names {
			names[n.Name] = struct{}{}
		}
	}

	return names
}
