package resolve

import (
	"mocha/ast"
	"mocha/sem"
	"mocha/typing"
)

// walkBody walks the body of a callable.  The outermost block shares the
// callable's scope so a local cannot redeclare a parameter.
func (r *Resolver) walkBody(scope *sem.Scope, body *ast.Block) {
	r.table.scopes[body] = scope
	r.walkStmts(scope, body.Stmts)
}

func (r *Resolver) walkStmts(scope *sem.Scope, stmts []ast.Stmt) {
	for _, stmt := range stmts {
		r.walkStmt(scope, stmt)
	}
}

// walkStmt opens the block scopes of a statement and defines the local
// variables it declares.
func (r *Resolver) walkStmt(scope *sem.Scope, stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.Block:
		child := scope.NewChild("block", sem.BlockScope, v.Position())
		r.table.scopes[v] = child
		r.walkStmts(child, v.Stmts)
	case *ast.LocalVarDecl:
		r.walkLocalVar(scope, v)
	case *ast.IfStmt:
		r.walkStmt(scope, v.Then)

		if v.Else != nil {
			r.walkStmt(scope, v.Else)
		}
	case *ast.WhileStmt:
		r.walkStmt(scope, v.Body)
	case *ast.DoWhileStmt:
		r.walkStmt(scope, v.Body)
	case *ast.ForStmt:
		child := scope.NewChild("for", sem.BlockScope, v.Position())
		r.table.scopes[v] = child
		r.walkStmts(child, v.Init)
		r.walkStmt(child, v.Body)
	case *ast.ForEachStmt:
		child := scope.NewChild("for-each", sem.BlockScope, v.Position())
		r.table.scopes[v] = child

		vs := &sem.VariableSymbol{
			SymbolBase: sem.SymbolBase{
				Name:     v.VarName,
				Type:     r.resolveType(v.VarType),
				Position: v.Position(),
			},
			Initialized: true,
			Final:       v.Final,
			Kind:        sem.LocalVar,
		}

		r.checkNotVoid(vs)
		r.table.symbols[v] = vs
		child.Define(vs)

		r.walkStmt(child, v.Body)
	case *ast.SwitchStmt:
		child := scope.NewChild("switch", sem.BlockScope, v.Position())
		r.table.scopes[v] = child

		for _, cc := range v.Cases {
			r.walkStmts(child, cc.Body)
		}
	}
}

// walkLocalVar defines each declarator of a local variable declaration.
func (r *Resolver) walkLocalVar(scope *sem.Scope, ld *ast.LocalVarDecl) {
	baseType := r.resolveType(ld.Type)

	for _, d := range ld.Vars {
		vs := &sem.VariableSymbol{
			SymbolBase: sem.SymbolBase{
				Name:     d.Name,
				Type:     typing.NewArrayType(baseType, d.Dims),
				Position: d.Position(),
			},
			Initialized: d.Init != nil,
			Final:       ld.Final,
			Kind:        sem.LocalVar,
		}

		r.checkNotVoid(vs)
		r.table.symbols[d] = vs

		if conflict := scope.Define(vs); conflict != nil {
			r.reportRedefinition(d.Position(), "variable", d.Name, conflict)
		}
	}
}
