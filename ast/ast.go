package ast

import (
	"mocha/common"
	"mocha/logging"
)

// Node is the abstract interface for all AST nodes.
type Node interface {
	// Position returns the source range of the node.
	Position() *logging.TextPosition
}

// ASTBase is a utility base struct for all AST nodes.
type ASTBase struct {
	// Pos is the range over which the AST node occurs.
	Pos *logging.TextPosition
}

// At creates an AST base positioned at a single source point.
func At(line, col int) ASTBase {
	return ASTBase{Pos: logging.NewPosition(line, col)}
}

// Over creates an AST base spanning two positions.
func Over(start, end *logging.TextPosition) ASTBase {
	return ASTBase{Pos: logging.TextPositionFromRange(start, end)}
}

func (ab ASTBase) Position() *logging.TextPosition {
	return ab.Pos
}

// -----------------------------------------------------------------------------

// Decl is a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression.  Expression nodes carry no type: the checker records
// inferred types in a side table keyed by node.
type Expr interface {
	Node
	exprNode()
}

// -----------------------------------------------------------------------------

// Program is the root of a parsed source file.
type Program struct {
	ASTBase

	// Imports are only recorded: import resolution is not performed.
	Imports []*Import

	// Decls are the top-level declarations in source order.
	Decls []Decl
}

// Import represents an import of another source file.
type Import struct {
	ASTBase

	Path string
}

// Modifiers are the qualifiers attached to a declaration.
type Modifiers struct {
	Visibility common.Visibility
	Static     bool
	Final      bool
	Abstract   bool

	// Override is set when the method is annotated `@override`.
	Override bool
}

// TypeRef represents a type label as written in the source: a type name
// followed by zero or more `[]`.
type TypeRef struct {
	ASTBase

	Name string
	Dims int
}

// Declarator is one declared name in a variable or field declaration.  Dims
// are the extra array dimensions written after the name (`int a[]`).
type Declarator struct {
	ASTBase

	Name string
	Dims int

	// Init is nil if there is no initializer.
	Init Expr
}

// Param represents a function, method or constructor parameter.
type Param struct {
	ASTBase

	Type    *TypeRef
	Name    string
	Final   bool
	VarArgs bool
}
