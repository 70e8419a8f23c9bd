package ast

// Block represents a braced statement sequence.
type Block struct {
	ASTBase

	Stmts []Stmt
}

// LocalVarDecl represents a local variable declaration.
type LocalVarDecl struct {
	ASTBase

	Final bool
	Type  *TypeRef
	Vars  []*Declarator
}

// ExprStmt represents an expression evaluated as a statement.
type ExprStmt struct {
	ASTBase

	X Expr
}

// IfStmt represents an if statement.  Else is nil if there is no else branch.
type IfStmt struct {
	ASTBase

	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt represents a while loop.
type WhileStmt struct {
	ASTBase

	Cond Expr
	Body Stmt
}

// DoWhileStmt represents a do-while loop.
type DoWhileStmt struct {
	ASTBase

	Body Stmt
	Cond Expr
}

// ForStmt represents a C-style for loop.  Any of its header parts may be
// empty.
type ForStmt struct {
	ASTBase

	Init   []Stmt
	Cond   Expr
	Update []Expr
	Body   Stmt
}

// ForEachStmt represents a `for (T x : xs)` loop.
type ForEachStmt struct {
	ASTBase

	Final   bool
	VarType *TypeRef
	VarName string
	Iter    Expr
	Body    Stmt
}

// SwitchStmt represents a switch statement.
type SwitchStmt struct {
	ASTBase

	Tag   Expr
	Cases []*CaseClause
}

// CaseClause is a single `case v:` or `default:` label and the statements
// following it.  Value is nil for the default clause.
type CaseClause struct {
	ASTBase

	Value Expr
	Body  []Stmt
}

// ReturnStmt represents a return statement.  Value is nil for a bare return.
type ReturnStmt struct {
	ASTBase

	Value Expr
}

// BreakStmt represents a break statement.
type BreakStmt struct {
	ASTBase
}

// ContinueStmt represents a continue statement.
type ContinueStmt struct {
	ASTBase
}

// CtorCallStmt represents an explicit `this(...)` or `super(...)` constructor
// invocation.
type CtorCallStmt struct {
	ASTBase

	Super bool
	Args  []Expr
}

func (*Block) stmtNode()        {}
func (*LocalVarDecl) stmtNode() {}
func (*ExprStmt) stmtNode()     {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*DoWhileStmt) stmtNode()  {}
func (*ForStmt) stmtNode()      {}
func (*ForEachStmt) stmtNode()  {}
func (*SwitchStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()   {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*CtorCallStmt) stmtNode() {}
