package walk

import (
	"testing"

	"mocha/ast"
	"mocha/logging"
	"mocha/resolve"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultyProgram builds a program with errors of many kinds.
func faultyProgram() *ast.Program {
	return &ast.Program{Decls: []ast.Decl{
		class(1, "A", "", method(2, "int", "m", nil, ret(2, num("1")))),
		class(3, "B", "A", method(4, "void", "m", nil)),
		fn(5, "int", "f", params(param("boolean", "c")),
			local(6, "int", "x", nil),
			ifs(id("c"), set(7, id("x"), num("1")), nil),
			local(8, "string", "s", id("x")),
			expr(9, call("println", id("missing"))),
			&ast.BreakStmt{ASTBase: at(10)},
		),
	}}
}

func messages(errs *logging.ErrorList) []string {
	var msgs []string
	for _, e := range errs.Errors() {
		msgs = append(msgs, e.Error())
	}

	return msgs
}

func TestDeterminism(t *testing.T) {
	prog := faultyProgram()

	table, rerrs := resolve.Resolve(prog, resolve.Options{Builtins: true})
	require.Empty(t, rerrs.Errors())

	_, first := Check(prog, table, Options{})
	_, second := Check(prog, table, Options{})
	require.NotEmpty(t, first.Errors())

	if diff := deep.Equal(messages(first), messages(second)); diff != nil {
		t.Error(diff)
	}

	other := faultyProgram()
	otherTable, _ := resolve.Resolve(other, resolve.Options{Builtins: true})
	_, third := Check(other, otherTable, Options{})

	if diff := deep.Equal(messages(first), messages(third)); diff != nil {
		t.Error(diff)
	}
}

func TestCheckReportsEveryError(t *testing.T) {
	_, errs := check(t, Options{}, faultyProgram().Decls...)

	assert.Equal(t, []string{
		"INVALID_OVERRIDE",
		"UNINITIALIZED_VARIABLE",
		"TYPE_MISMATCH",
		"UNDEFINED_VARIABLE",
		"INVALID_BREAK_CONTINUE",
		"MISSING_RETURN",
	}, kinds(errs.Errors()))
}

func TestTypesAreRecorded(t *testing.T) {
	sum := bin(ast.OpAdd, num("1"), flt("2.5"))
	cmp := bin(ast.OpLt, sum, num("3"))

	types, errs := check(t, Options{},
		fn(1, "void", "run", nil, local(2, "boolean", "b", cmp)),
	)

	require.Empty(t, errs.Errors())
	assert.Equal(t, "float", types[sum].Repr())
	assert.Equal(t, "boolean", types[cmp].Repr())
	assert.Equal(t, "int", types[sum.L].Repr())
}

func TestMissingSymbolIsInternalError(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{fn(1, "void", "run", nil)}}
	table, _ := resolve.Resolve(&ast.Program{}, resolve.Options{})

	_, errs := Check(prog, table, Options{})
	assert.Equal(t, []string{"INTERNAL_ERROR"}, kinds(errs.Errors()))
}
