package walk

import (
	"testing"

	"mocha/ast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalReadBeforeAssignment(t *testing.T) {
	_, errs := check(t, Options{},
		fn(1, "void", "run", nil,
			finalLocal(2, "int", "x", nil),
			local(3, "int", "y", id("x")),
			local(4, "int", "z", id("x")),
		),
	)

	// reported once, at the first read
	assert.Equal(t, []string{"UNINITIALIZED_VARIABLE"}, kinds(errs.Errors()))
}

func TestFinalReassignment(t *testing.T) {
	_, errs := check(t, Options{},
		fn(1, "void", "run", nil,
			finalLocal(2, "int", "x", nil),
			set(3, id("x"), num("1")),
			local(4, "int", "y", id("x")),
			set(5, id("x"), num("2")),
		),
	)

	require.Equal(t, []string{"FINAL_REASSIGNMENT"}, kinds(errs.Errors()))
	assert.Equal(t, 5, errs.Errors()[0].Line())
}

func TestFinalPossiblyAssigned(t *testing.T) {
	_, errs := check(t, Options{},
		fn(1, "void", "run", params(param("boolean", "c")),
			finalLocal(2, "int", "x", nil),
			ifs(id("c"), block(set(3, id("x"), num("1"))), nil),
			set(4, id("x"), num("2")),
		),
	)

	assert.Equal(t, []string{"FINAL_REASSIGNMENT"}, kinds(errs.Errors()))
}

func TestElselessIfDoesNotInitialize(t *testing.T) {
	_, errs := check(t, Options{},
		fn(1, "void", "run", params(param("boolean", "c")),
			local(2, "int", "x", nil),
			ifs(boolean("true"), block(set(3, id("x"), num("1"))), nil),
			local(4, "int", "y", id("x")),
		),
	)

	assert.Equal(t, []string{"UNINITIALIZED_VARIABLE"}, kinds(errs.Errors()))
}

func TestBothBranchesInitialize(t *testing.T) {
	_, errs := check(t, Options{},
		fn(1, "void", "run", params(param("boolean", "c")),
			local(2, "int", "x", nil),
			ifs(id("c"), set(3, id("x"), num("1")), set(4, id("x"), num("2"))),
			local(5, "int", "y", id("x")),
		),
	)

	assert.Empty(t, errs.Errors())
}

func TestReturningBranchIsIgnored(t *testing.T) {
	_, errs := check(t, Options{},
		fn(1, "void", "run", params(param("boolean", "c")),
			local(2, "int", "x", nil),
			ifs(id("c"), ret(3, nil), set(4, id("x"), num("1"))),
			local(5, "int", "y", id("x")),
		),
	)

	assert.Empty(t, errs.Errors())
}

func TestBranchThatReturnsDoesNotConstrainJoin(t *testing.T) {
	_, errs := check(t, Options{},
		fn(1, "void", "run", params(param("boolean", "c")),
			local(2, "int", "x", nil),
			ifs(id("c"), block(set(3, id("x"), num("1"))), block(ret(4, nil))),
			local(5, "int", "y", id("x")),
		),
	)

	assert.Empty(t, errs.Errors())
}

func TestLoopBodyIsDiscarded(t *testing.T) {
	_, errs := check(t, Options{},
		fn(1, "void", "run", params(param("boolean", "c")),
			local(2, "int", "x", nil),
			while(id("c"), block(set(3, id("x"), num("1")))),
			local(4, "int", "y", id("x")),
		),
	)

	assert.Equal(t, []string{"UNINITIALIZED_VARIABLE"}, kinds(errs.Errors()))
}

func TestShortCircuitDoesNotInitialize(t *testing.T) {
	assignInCond := &ast.BinaryExpr{
		ASTBase: at(3),
		Op:      ast.OpAnd,
		L:       id("c"),
		R: bin(ast.OpEq,
			&ast.AssignExpr{ASTBase: at(3), Op: ast.OpAssign, Target: id("x"), Value: num("1")},
			num("1"),
		),
	}

	_, errs := check(t, Options{},
		fn(1, "void", "run", params(param("boolean", "c")),
			local(2, "int", "x", nil),
			expr(3, assignInCond),
			local(4, "int", "y", id("x")),
		),
	)

	assert.Equal(t, []string{"UNINITIALIZED_VARIABLE"}, kinds(errs.Errors()))
}

func TestSwitchInitialization(t *testing.T) {
	body := func(withDefault bool) []ast.Stmt {
		clauses := []*ast.CaseClause{
			cases(3, num("1"), set(3, id("x"), num("1")), &ast.BreakStmt{ASTBase: at(3)}),
			cases(4, num("2"), set(4, id("x"), num("2")), &ast.BreakStmt{ASTBase: at(4)}),
		}

		if withDefault {
			clauses = append(clauses, cases(5, nil, set(5, id("x"), num("3"))))
		}

		return []ast.Stmt{
			local(2, "int", "x", nil),
			switchOn(id("k"), clauses...),
			local(6, "int", "y", id("x")),
		}
	}

	_, errs := check(t, Options{}, fn(1, "void", "run", params(param("int", "k")), body(true)...))
	assert.Empty(t, errs.Errors())

	_, errs = check(t, Options{}, fn(1, "void", "run", params(param("int", "k")), body(false)...))
	assert.Equal(t, []string{"UNINITIALIZED_VARIABLE"}, kinds(errs.Errors()))
}

// -----------------------------------------------------------------------------

func blankFinal(line int, name string) *ast.FieldDecl {
	fd := field(line, "int", name, nil)
	fd.Mods.Final = true
	return fd
}

func TestBlankFinalAssignedInConstructor(t *testing.T) {
	_, errs := check(t, Options{},
		class(1, "A", "",
			blankFinal(2, "x"),
			ctor(3, "A", nil, set(4, id("x"), num("1"))),
			method(5, "int", "get", nil, ret(6, id("x"))),
		),
	)

	assert.Empty(t, errs.Errors())
}

func TestBlankFinalNeverAssigned(t *testing.T) {
	_, errs := check(t, Options{},
		class(1, "A", "", blankFinal(2, "x")),
	)

	require.Equal(t, []string{"UNINITIALIZED_VARIABLE"}, kinds(errs.Errors()))
	assert.Equal(t, 2, errs.Errors()[0].Line())
}

func TestBlankFinalReadInConstructorBeforeAssignment(t *testing.T) {
	_, errs := check(t, Options{},
		class(1, "A", "",
			blankFinal(2, "x"),
			ctor(3, "A", nil,
				local(4, "int", "y", id("x")),
				set(5, sel(this(), "x"), num("1")),
			),
		),
	)

	assert.Equal(t, []string{"UNINITIALIZED_VARIABLE"}, kinds(errs.Errors()))
}

func TestBlankFinalAssignedOutsideConstructor(t *testing.T) {
	_, errs := check(t, Options{},
		class(1, "A", "",
			blankFinal(2, "x"),
			ctor(3, "A", nil, set(4, id("x"), num("1"))),
			method(5, "void", "reset", nil, set(6, id("x"), num("2"))),
		),
	)

	require.Equal(t, []string{"FINAL_REASSIGNMENT"}, kinds(errs.Errors()))
	assert.Equal(t, 6, errs.Errors()[0].Line())
}

func TestFinalParameterAssignment(t *testing.T) {
	p := param("int", "n")
	p.Final = true

	_, errs := check(t, Options{},
		fn(1, "void", "run", params(p), set(2, id("n"), num("1"))),
	)

	assert.Equal(t, []string{"FINAL_REASSIGNMENT"}, kinds(errs.Errors()))
}

func TestBlankFinalAssignedBeforeShadowingBlock(t *testing.T) {
	_, errs := check(t, Options{},
		class(1, "A", "",
			blankFinal(2, "x"),
			ctor(3, "A", nil,
				set(4, id("x"), num("1")),
				block(local(5, "int", "x", num("2"))),
			),
			method(6, "int", "get", nil, ret(7, id("x"))),
		),
	)

	assert.Empty(t, errs.Errors())
}

func TestBlankFinalShadowedByEarlierLocal(t *testing.T) {
	_, errs := check(t, Options{},
		class(1, "A", "",
			blankFinal(2, "x"),
			ctor(3, "A", nil,
				local(4, "int", "x", num("0")),
				set(5, id("x"), num("1")),
			),
			method(6, "int", "get", nil, ret(7, id("x"))),
		),
	)

	// the constructor only assigns its local so the read in `get` fails
	require.Equal(t, []string{"UNINITIALIZED_VARIABLE"}, kinds(errs.Errors()))
	assert.Contains(t, errs.Errors()[0].Message, "used before it is initialized")
}

func TestEveryConstructorInitializesBlankFinals(t *testing.T) {
	_, errs := check(t, Options{},
		class(1, "A", "",
			blankFinal(2, "x"),
			ctor(3, "A", nil, set(4, id("x"), num("1"))),
			ctor(5, "A", params(param("int", "v"))),
			ctor(6, "A", params(param("boolean", "c")),
				ifs(id("c"), ret(7, nil), nil),
				set(8, id("x"), num("1")),
			),
			ctor(9, "A", params(param("string", "s")), &ast.CtorCallStmt{ASTBase: at(10)}),
		),
	)

	require.Equal(t, []string{"UNINITIALIZED_VARIABLE", "UNINITIALIZED_VARIABLE"}, kinds(errs.Errors()))
	assert.Equal(t, 5, errs.Errors()[0].Line())
	assert.Equal(t, 6, errs.Errors()[1].Line())
	assert.Contains(t, errs.Errors()[0].Message, "A(int)")
}
