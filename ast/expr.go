package ast

// LitKind is the kind of a literal.
type LitKind int

// Enumeration of literal kinds
const (
	IntLit LitKind = iota
	FloatLit
	StringLit
	CharLit
	BoolLit
	NullLit
)

// Literal represents a literal value.  Value is the literal's source text.
type Literal struct {
	ASTBase

	Kind  LitKind
	Value string
}

// Ident represents a bare identifier reference.
type Ident struct {
	ASTBase

	Name string
}

// ThisExpr represents `this`.
type ThisExpr struct {
	ASTBase
}

// SuperExpr represents `super` used as a receiver.
type SuperExpr struct {
	ASTBase
}

// FieldAccess represents `X.Name`.
type FieldAccess struct {
	ASTBase

	X    Expr
	Name string
}

// MethodCall represents a call.  Recv is nil for an unqualified call, which
// resolves to a method of the enclosing class or a global function.
type MethodCall struct {
	ASTBase

	Recv Expr
	Name string
	Args []Expr
}

// IndexExpr represents `X[Index]`.
type IndexExpr struct {
	ASTBase

	X     Expr
	Index Expr
}

// BinaryExpr represents a binary operator application.
type BinaryExpr struct {
	ASTBase

	Op   OpKind
	L, R Expr
}

// UnaryExpr represents a unary operator application.  Postfix is only
// meaningful for `++` and `--`.
type UnaryExpr struct {
	ASTBase

	Op      OpKind
	X       Expr
	Postfix bool
}

// AssignExpr represents an assignment.  Op is OpAssign for plain assignment
// and the arithmetic operator for compound assignment (`+=` is OpAdd).
type AssignExpr struct {
	ASTBase

	Op     OpKind
	Target Expr
	Value  Expr
}

// CastExpr represents `(Type) X`.
type CastExpr struct {
	ASTBase

	Type *TypeRef
	X    Expr
}

// InstanceOfExpr represents `X instanceof Type`.
type InstanceOfExpr struct {
	ASTBase

	X    Expr
	Type *TypeRef
}

// TernaryExpr represents `Cond ? Then : Else`.
type TernaryExpr struct {
	ASTBase

	Cond, Then, Else Expr
}

// NewExpr represents object construction.
type NewExpr struct {
	ASTBase

	Class string
	Args  []Expr
}

// NewArrayExpr represents array construction: `new T[d1][d2][]...` or
// `new T[]{...}`.  ExtraDims counts the trailing unsized dimensions.
type NewArrayExpr struct {
	ASTBase

	Elem      *TypeRef
	Dims      []Expr
	ExtraDims int

	// Init is nil unless an initializer list is given.
	Init *ArrayLit
}

// ArrayLit represents a braced array initializer.
type ArrayLit struct {
	ASTBase

	Elems []Expr
}

func (*Literal) exprNode()        {}
func (*Ident) exprNode()          {}
func (*ThisExpr) exprNode()       {}
func (*SuperExpr) exprNode()      {}
func (*FieldAccess) exprNode()    {}
func (*MethodCall) exprNode()     {}
func (*IndexExpr) exprNode()      {}
func (*BinaryExpr) exprNode()     {}
func (*UnaryExpr) exprNode()      {}
func (*AssignExpr) exprNode()     {}
func (*CastExpr) exprNode()       {}
func (*InstanceOfExpr) exprNode() {}
func (*TernaryExpr) exprNode()    {}
func (*NewExpr) exprNode()        {}
func (*NewArrayExpr) exprNode()   {}
func (*ArrayLit) exprNode()       {}
