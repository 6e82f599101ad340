package augment

import (
	"go/ast"

	"relatedgen/internal/common"
)

// SymbolicConstant is a qualified reference to an enum member, kept
// symbolic rather than stringly so the augmented source only compiles
// when the referenced constant actually exists.
type SymbolicConstant struct {
	// Pkg is the package alias qualifying the reference.
	Pkg string
	// Enum is the enum type name (e.g. "ObjectType").
	Enum string
	// Member is the spec-side member name (e.g. "CUSTOMER").
	Member string
}

// Ident returns the Go constant identifier for the member, following the
// conventional enum naming scheme: type name plus PascalCase member
// ("ObjectType" + "SAVINGS_ACCOUNT" -> "ObjectTypeSavingsAccount").
func (s SymbolicConstant) Ident() string {
	return s.Enum + common.Pascal(s.Member)
}

// Expr builds the qualified reference as an expression node.
func (s SymbolicConstant) Expr() ast.Expr {
	return &ast.SelectorExpr{
		X:   ast.NewIdent(s.Pkg),
		Sel: ast.NewIdent(s.Ident()),
	}
}
