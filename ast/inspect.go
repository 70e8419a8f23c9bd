package ast

// Inspect traverses the statements and expressions under a node in source
// order.  `f` is called for each node; if it returns false, the children of
// that node are skipped.  Declarations are not descended into.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch v := node.(type) {
	case *Block:
		inspectStmts(v.Stmts, f)
	case *LocalVarDecl:
		for _, d := range v.Vars {
			inspectExpr(d.Init, f)
		}
	case *ExprStmt:
		inspectExpr(v.X, f)
	case *IfStmt:
		inspectExpr(v.Cond, f)
		inspectStmt(v.Then, f)
		inspectStmt(v.Else, f)
	case *WhileStmt:
		inspectExpr(v.Cond, f)
		inspectStmt(v.Body, f)
	case *DoWhileStmt:
		inspectStmt(v.Body, f)
		inspectExpr(v.Cond, f)
	case *ForStmt:
		inspectStmts(v.Init, f)
		inspectExpr(v.Cond, f)
		inspectExprs(v.Update, f)
		inspectStmt(v.Body, f)
	case *ForEachStmt:
		inspectExpr(v.Iter, f)
		inspectStmt(v.Body, f)
	case *SwitchStmt:
		inspectExpr(v.Tag, f)
		for _, cc := range v.Cases {
			inspectExpr(cc.Value, f)
			inspectStmts(cc.Body, f)
		}
	case *ReturnStmt:
		inspectExpr(v.Value, f)
	case *CtorCallStmt:
		inspectExprs(v.Args, f)
	case *FieldAccess:
		inspectExpr(v.X, f)
	case *MethodCall:
		inspectExpr(v.Recv, f)
		inspectExprs(v.Args, f)
	case *IndexExpr:
		inspectExpr(v.X, f)
		inspectExpr(v.Index, f)
	case *BinaryExpr:
		inspectExpr(v.L, f)
		inspectExpr(v.R, f)
	case *UnaryExpr:
		inspectExpr(v.X, f)
	case *AssignExpr:
		inspectExpr(v.Target, f)
		inspectExpr(v.Value, f)
	case *CastExpr:
		inspectExpr(v.X, f)
	case *InstanceOfExpr:
		inspectExpr(v.X, f)
	case *TernaryExpr:
		inspectExpr(v.Cond, f)
		inspectExpr(v.Then, f)
		inspectExpr(v.Else, f)
	case *NewExpr:
		inspectExprs(v.Args, f)
	case *NewArrayExpr:
		inspectExprs(v.Dims, f)
		if v.Init != nil {
			Inspect(v.Init, f)
		}
	case *ArrayLit:
		inspectExprs(v.Elems, f)
	}
}

func inspectStmt(stmt Stmt, f func(Node) bool) {
	if stmt != nil {
		Inspect(stmt, f)
	}
}

func inspectExpr(expr Expr, f func(Node) bool) {
	if expr != nil {
		Inspect(expr, f)
	}
}

func inspectStmts(stmts []Stmt, f func(Node) bool) {
	for _, stmt := range stmts {
		Inspect(stmt, f)
	}
}

func inspectExprs(exprs []Expr, f func(Node) bool) {
	for _, expr := range exprs {
		Inspect(expr, f)
	}
}
