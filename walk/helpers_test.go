package walk

import (
	"testing"

	"mocha/ast"
	"mocha/common"
	"mocha/logging"
	"mocha/resolve"

	"github.com/stretchr/testify/require"
)

func at(line int) ast.ASTBase {
	return ast.At(line, 1)
}

func tref(name string) *ast.TypeRef {
	return &ast.TypeRef{ASTBase: at(0), Name: name}
}

func arrRef(name string, dims int) *ast.TypeRef {
	return &ast.TypeRef{ASTBase: at(0), Name: name, Dims: dims}
}

// -----------------------------------------------------------------------------

func num(v string) *ast.Literal {
	return &ast.Literal{ASTBase: at(0), Kind: ast.IntLit, Value: v}
}

func flt(v string) *ast.Literal {
	return &ast.Literal{ASTBase: at(0), Kind: ast.FloatLit, Value: v}
}

func str(v string) *ast.Literal {
	return &ast.Literal{ASTBase: at(0), Kind: ast.StringLit, Value: v}
}

func boolean(v string) *ast.Literal {
	return &ast.Literal{ASTBase: at(0), Kind: ast.BoolLit, Value: v}
}

func null() *ast.Literal {
	return &ast.Literal{ASTBase: at(0), Kind: ast.NullLit, Value: "null"}
}

func id(name string) *ast.Ident {
	return &ast.Ident{ASTBase: at(0), Name: name}
}

func this() *ast.ThisExpr {
	return &ast.ThisExpr{ASTBase: at(0)}
}

func sel(x ast.Expr, name string) *ast.FieldAccess {
	return &ast.FieldAccess{ASTBase: at(0), X: x, Name: name}
}

func call(name string, args ...ast.Expr) *ast.MethodCall {
	return &ast.MethodCall{ASTBase: at(0), Name: name, Args: args}
}

func mcall(recv ast.Expr, name string, args ...ast.Expr) *ast.MethodCall {
	return &ast.MethodCall{ASTBase: at(0), Recv: recv, Name: name, Args: args}
}

func bin(op ast.OpKind, l, r ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{ASTBase: at(0), Op: op, L: l, R: r}
}

func index(x, i ast.Expr) *ast.IndexExpr {
	return &ast.IndexExpr{ASTBase: at(0), X: x, Index: i}
}

func newObj(class string, args ...ast.Expr) *ast.NewExpr {
	return &ast.NewExpr{ASTBase: at(0), Class: class, Args: args}
}

func newArr(elem string, dims ...ast.Expr) *ast.NewArrayExpr {
	return &ast.NewArrayExpr{ASTBase: at(0), Elem: tref(elem), Dims: dims}
}

// -----------------------------------------------------------------------------

func set(line int, target, value ast.Expr) *ast.ExprStmt {
	return &ast.ExprStmt{
		ASTBase: at(line),
		X:       &ast.AssignExpr{ASTBase: at(line), Op: ast.OpAssign, Target: target, Value: value},
	}
}

func expr(line int, x ast.Expr) *ast.ExprStmt {
	return &ast.ExprStmt{ASTBase: at(line), X: x}
}

func local(line int, typ, name string, init ast.Expr) *ast.LocalVarDecl {
	return &ast.LocalVarDecl{
		ASTBase: at(line),
		Type:    tref(typ),
		Vars:    []*ast.Declarator{{ASTBase: at(line), Name: name, Init: init}},
	}
}

func finalLocal(line int, typ, name string, init ast.Expr) *ast.LocalVarDecl {
	ld := local(line, typ, name, init)
	ld.Final = true
	return ld
}

func ret(line int, value ast.Expr) *ast.ReturnStmt {
	return &ast.ReturnStmt{ASTBase: at(line), Value: value}
}

func block(stmts ...ast.Stmt) *ast.Block {
	return &ast.Block{ASTBase: at(0), Stmts: stmts}
}

func ifs(cond ast.Expr, then, els ast.Stmt) *ast.IfStmt {
	return &ast.IfStmt{ASTBase: at(0), Cond: cond, Then: then, Else: els}
}

func while(cond ast.Expr, body ast.Stmt) *ast.WhileStmt {
	return &ast.WhileStmt{ASTBase: at(0), Cond: cond, Body: body}
}

func cases(line int, value ast.Expr, body ...ast.Stmt) *ast.CaseClause {
	return &ast.CaseClause{ASTBase: at(line), Value: value, Body: body}
}

func switchOn(tag ast.Expr, clauses ...*ast.CaseClause) *ast.SwitchStmt {
	return &ast.SwitchStmt{ASTBase: at(0), Tag: tag, Cases: clauses}
}

// -----------------------------------------------------------------------------

func param(typ, name string) *ast.Param {
	return &ast.Param{ASTBase: at(0), Type: tref(typ), Name: name}
}

func params(ps ...*ast.Param) []*ast.Param {
	return ps
}

func fn(line int, ret, name string, ps []*ast.Param, body ...ast.Stmt) *ast.FuncDecl {
	return &ast.FuncDecl{
		ASTBase:    at(line),
		Mods:       ast.Modifiers{Visibility: common.Public, Static: true},
		ReturnType: tref(ret),
		Name:       name,
		Params:     ps,
		Body:       &ast.Block{ASTBase: at(line), Stmts: body},
	}
}

func method(line int, ret, name string, ps []*ast.Param, body ...ast.Stmt) *ast.MethodDecl {
	return &ast.MethodDecl{
		ASTBase:    at(line),
		Mods:       ast.Modifiers{Visibility: common.Public},
		ReturnType: tref(ret),
		Name:       name,
		Params:     ps,
		Body:       &ast.Block{ASTBase: at(line), Stmts: body},
	}
}

func field(line int, typ, name string, init ast.Expr) *ast.FieldDecl {
	return &ast.FieldDecl{
		ASTBase: at(line),
		Mods:    ast.Modifiers{Visibility: common.Public},
		Type:    tref(typ),
		Vars:    []*ast.Declarator{{ASTBase: at(line), Name: name, Init: init}},
	}
}

func ctor(line int, name string, ps []*ast.Param, body ...ast.Stmt) *ast.ConstructorDecl {
	return &ast.ConstructorDecl{
		ASTBase: at(line),
		Mods:    ast.Modifiers{Visibility: common.Public},
		Name:    name,
		Params:  ps,
		Body:    &ast.Block{ASTBase: at(line), Stmts: body},
	}
}

// class builds a class declaration from its member declarations.
func class(line int, name, super string, members ...ast.Node) *ast.ClassDecl {
	cd := &ast.ClassDecl{ASTBase: at(line), Name: name, Mods: ast.Modifiers{Visibility: common.Public}}
	if super != "" {
		cd.Super = &ast.TypeRef{ASTBase: at(line), Name: super}
	}

	for _, m := range members {
		switch v := m.(type) {
		case *ast.FieldDecl:
			cd.Fields = append(cd.Fields, v)
		case *ast.MethodDecl:
			cd.Methods = append(cd.Methods, v)
		case *ast.ConstructorDecl:
			cd.Ctors = append(cd.Ctors, v)
		}
	}

	return cd
}

// -----------------------------------------------------------------------------

// check resolves and checks a program which must resolve cleanly.
func check(t *testing.T, opts Options, decls ...ast.Decl) (TypeTable, *logging.ErrorList) {
	t.Helper()

	prog := &ast.Program{Decls: decls}
	table, rerrs := resolve.Resolve(prog, resolve.Options{Builtins: true})
	require.Empty(t, rerrs.Errors(), "program must resolve cleanly")

	return Check(prog, table, opts)
}

func kinds(msgs []*logging.CompileMessage) []string {
	var ks []string
	for _, m := range msgs {
		ks = append(ks, m.Kind.String())
	}

	return ks
}
