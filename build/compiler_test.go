package build

import (
	"testing"

	"mocha/ast"
	"mocha/common"
	"mocha/config"
	"mocha/logging"
	"mocha/typing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(line int) ast.ASTBase {
	return ast.At(line, 1)
}

func tref(name string) *ast.TypeRef {
	return &ast.TypeRef{ASTBase: at(0), Name: name}
}

func id(line int, name string) *ast.Ident {
	return &ast.Ident{ASTBase: at(line), Name: name}
}

func fn(line int, ret, name string, params []*ast.Param, body ...ast.Stmt) *ast.FuncDecl {
	return &ast.FuncDecl{
		ASTBase:    at(line),
		Mods:       ast.Modifiers{Visibility: common.Public, Static: true},
		ReturnType: tref(ret),
		Name:       name,
		Params:     params,
		Body:       &ast.Block{ASTBase: at(line), Stmts: body},
	}
}

func param(typ, name string) *ast.Param {
	return &ast.Param{ASTBase: at(0), Type: tref(typ), Name: name}
}

func ret(line int, value ast.Expr) *ast.ReturnStmt {
	return &ast.ReturnStmt{ASTBase: at(line), Value: value}
}

func call(line int, name string, args ...ast.Expr) *ast.ExprStmt {
	return &ast.ExprStmt{
		ASTBase: at(line),
		X:       &ast.MethodCall{ASTBase: at(line), Name: name, Args: args},
	}
}

func silent() *config.Config {
	cfg := config.Default()
	cfg.Analysis.LogLevel = "silent"
	return cfg
}

func kinds(msgs []*logging.CompileMessage) []string {
	var ks []string
	for _, m := range msgs {
		ks = append(ks, m.Kind.String())
	}

	return ks
}

func lines(msgs []*logging.CompileMessage) []int {
	var ls []int
	for _, m := range msgs {
		ls = append(ls, m.Line())
	}

	return ls
}

// faulty produces errors from both passes: the redefinition is found while
// resolving, the rest while checking, and the declarations are out of line
// order so the merged list has to be sorted.
func faulty() *ast.Program {
	return &ast.Program{Decls: []ast.Decl{
		fn(10, "int", "g", nil, ret(11, id(11, "missing"))),
		fn(1, "void", "f", []*ast.Param{param("int", "a")}),
		fn(2, "void", "f", []*ast.Param{param("int", "b")}),
		fn(5, "int", "h", nil),
	}}
}

// -----------------------------------------------------------------------------

func TestAnalyzeClean(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		fn(1, "int", "id", []*ast.Param{param("int", "x")}, ret(2, id(2, "x"))),
		fn(4, "void", "main", nil, call(5, "println", &ast.Literal{ASTBase: at(5), Kind: ast.StringLit, Value: "hi"})),
	}}

	res := NewCompiler(silent()).Analyze(prog)
	require.True(t, res.OK(), kinds(res.Errors))
	assert.Empty(t, res.Warnings)

	_, ok := res.Global.LookupLocal("main")
	assert.True(t, ok)
	assert.Equal(t, typing.Int, res.Types[prog.Decls[0].(*ast.FuncDecl).Body.Stmts[0].(*ast.ReturnStmt).Value])
}

func TestAnalyzeSortsMergedErrors(t *testing.T) {
	res := NewCompiler(silent()).Analyze(faulty())
	require.False(t, res.OK())

	assert.Equal(t, []string{"REDEFINITION", "MISSING_RETURN", "UNDEFINED_VARIABLE"}, kinds(res.Errors))
	assert.Equal(t, []int{2, 5, 11}, lines(res.Errors))
}

func TestAnalyzeDeterministic(t *testing.T) {
	messages := func() []string {
		var ms []string
		for _, e := range NewCompiler(silent()).Analyze(faulty()).Errors {
			ms = append(ms, e.Error())
		}

		return ms
	}

	first := messages()
	for i := 0; i < 5; i++ {
		if diff := deep.Equal(first, messages()); diff != nil {
			t.Fatal(diff)
		}
	}
}

func TestMaxErrors(t *testing.T) {
	cfg := silent()
	cfg.Analysis.MaxErrors = 2

	res := NewCompiler(cfg).Analyze(faulty())
	assert.Equal(t, []int{2, 5}, lines(res.Errors))
}

func TestBuiltinsDisabled(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		fn(1, "void", "main", nil, call(2, "println", &ast.Literal{ASTBase: at(2), Kind: ast.StringLit, Value: "hi"})),
	}}

	assert.True(t, NewCompiler(silent()).Analyze(prog).OK())

	cfg := silent()
	cfg.Analysis.Builtins = false
	assert.Equal(t, []string{"UNDEFINED_FUNCTION"}, kinds(NewCompiler(cfg).Analyze(prog).Errors))
}

func TestAnalyzeAll(t *testing.T) {
	clean := &ast.Program{Decls: []ast.Decl{fn(1, "void", "main", nil)}}
	units := []Unit{
		{Prog: faulty()},
		{Context: &logging.LogContext{FilePath: "clean.mocha"}, Prog: clean},
		{Prog: faulty()},
	}

	results := NewCompiler(silent()).AnalyzeAll(units)
	require.Len(t, results, 3)

	assert.False(t, results[0].OK())
	assert.True(t, results[1].OK())
	if diff := deep.Equal(lines(results[0].Errors), lines(results[2].Errors)); diff != nil {
		t.Error(diff)
	}
}
