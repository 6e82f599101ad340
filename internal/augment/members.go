package augment

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"relatedgen/internal/common"
	"relatedgen/internal/descriptor"
)

// ignoreTag excludes relationship fields from JSON serialization, the Go
// counterpart of a serialization-ignore annotation.
const ignoreTag = "`json:\"-\"`"

// declaredType builds the field type for a descriptor: a slice of the
// target type for to-many relations, the bare target type otherwise.
// A fresh node is built per call so declarations never share subtrees.
func declaredType(d descriptor.Descriptor) ast.Expr {
	base := ast.NewIdent(d.TargetType)
	if d.Cardinality == descriptor.ToMany {
		return &ast.ArrayType{Elt: base}
	}

	return base
}

// fieldDecl builds the unexported relationship field with the
// serialization-ignore tag, anchored at pos inside the struct body.
func fieldDecl(d descriptor.Descriptor, pos token.Pos) *ast.Field {
	return &ast.Field{
		Names: []*ast.Ident{{NamePos: pos, Name: d.Name}},
		Type:  declaredType(d),
		Tag:   &ast.BasicLit{Kind: token.STRING, Value: ignoreTag},
	}
}

// registrationDecl builds the relation metadata registration:
//
//	var _ = related.Register[Owner]("name", related.Relation{Object: enums.ObjectTypeX, Fetch: related.FetchTypeY})
//
// The enum arguments are qualified identifiers, so the augmented file
// only compiles when the referenced constants exist.
func registrationDecl(owner string, d descriptor.Descriptor, relatedAlias, enumsAlias string, pos token.Pos) ast.Decl {
	object := SymbolicConstant{Pkg: enumsAlias, Enum: "ObjectType", Member: d.ObjectKind}
	fetch := SymbolicConstant{Pkg: relatedAlias, Enum: "FetchType", Member: d.FetchStrategy}

	call := &ast.CallExpr{
		Fun: &ast.IndexExpr{
			X: &ast.SelectorExpr{
				X:   ast.NewIdent(relatedAlias),
				Sel: ast.NewIdent("Register"),
			},
			Index: ast.NewIdent(owner),
		},
		Args: []ast.Expr{
			&ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(d.Name)},
			&ast.CompositeLit{
				Type: &ast.SelectorExpr{
					X:   ast.NewIdent(relatedAlias),
					Sel: ast.NewIdent("Relation"),
				},
				Elts: []ast.Expr{
					&ast.KeyValueExpr{Key: ast.NewIdent("Object"), Value: object.Expr()},
					&ast.KeyValueExpr{Key: ast.NewIdent("Fetch"), Value: fetch.Expr()},
				},
			},
		},
	}

	return &ast.GenDecl{
		TokPos: pos,
		Tok:    token.VAR,
		Specs: []ast.Spec{
			&ast.ValueSpec{
				Names:  []*ast.Ident{ast.NewIdent("_")},
				Values: []ast.Expr{call},
			},
		},
	}
}

// getterDecl builds the exported accessor returning the declared type.
func getterDecl(owner string, d descriptor.Descriptor, pos token.Pos) *ast.FuncDecl {
	recv := receiverName(owner)

	return &ast.FuncDecl{
		Recv: receiverList(owner),
		Name: ast.NewIdent("Get" + common.Pascal(d.Name)),
		Type: &ast.FuncType{
			Func:   pos,
			Params: &ast.FieldList{},
			Results: &ast.FieldList{
				List: []*ast.Field{{Type: declaredType(d)}},
			},
		},
		Body: &ast.BlockStmt{
			List: []ast.Stmt{
				&ast.ReturnStmt{
					Results: []ast.Expr{
						&ast.SelectorExpr{X: ast.NewIdent(recv), Sel: ast.NewIdent(d.Name)},
					},
				},
			},
		},
	}
}

// setterDecl builds the exported mutator accepting the declared type.
func setterDecl(owner string, d descriptor.Descriptor, pos token.Pos) *ast.FuncDecl {
	recv := receiverName(owner)

	return &ast.FuncDecl{
		Recv: receiverList(owner),
		Name: ast.NewIdent("Set" + common.Pascal(d.Name)),
		Type: &ast.FuncType{
			Func: pos,
			Params: &ast.FieldList{
				List: []*ast.Field{{
					Names: []*ast.Ident{ast.NewIdent("v")},
					Type:  declaredType(d),
				}},
			},
		},
		Body: &ast.BlockStmt{
			List: []ast.Stmt{
				&ast.AssignStmt{
					Lhs: []ast.Expr{
						&ast.SelectorExpr{X: ast.NewIdent(recv), Sel: ast.NewIdent(d.Name)},
					},
					Tok: token.ASSIGN,
					Rhs: []ast.Expr{ast.NewIdent("v")},
				},
			},
		},
	}
}

// receiverList builds the pointer receiver for accessor methods.
func receiverList(owner string) *ast.FieldList {
	return &ast.FieldList{
		List: []*ast.Field{{
			Names: []*ast.Ident{ast.NewIdent(receiverName(owner))},
			Type:  &ast.StarExpr{X: ast.NewIdent(owner)},
		}},
	}
}

// receiverName derives the conventional short receiver name: the first
// letter of the type name, lowered.
func receiverName(owner string) string {
	return strings.ToLower(owner[:1])
}
