package resolve

import (
	"testing"

	"mocha/ast"
	"mocha/logging"
	"mocha/sem"
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

func class(line int, name, super string) *ast.ClassDecl {
	cd := &ast.ClassDecl{ASTBase: at(line), Name: name}
	if super != "" {
		cd.Super = &ast.TypeRef{ASTBase: at(line), Name: super}
	}

	return cd
}

func method(line int, ret, name string, params ...*ast.Param) *ast.MethodDecl {
	return &ast.MethodDecl{
		ASTBase:    at(line),
		ReturnType: tref(ret),
		Name:       name,
		Params:     params,
		Body:       &ast.Block{ASTBase: at(line)},
	}
}

func param(line int, typ, name string) *ast.Param {
	return &ast.Param{ASTBase: at(line), Type: tref(typ), Name: name}
}

func kinds(errs []*logging.CompileMessage) []string {
	var ks []string
	for _, e := range errs {
		ks = append(ks, e.Kind.String())
	}

	return ks
}

func resolve(decls ...ast.Decl) (*Table, *logging.ErrorList) {
	return Resolve(&ast.Program{Decls: decls}, Options{Builtins: true})
}

func classSym(t *testing.T, table *Table, name string) *sem.ClassSymbol {
	sym, ok := table.Global.LookupLocal(name)
	require.True(t, ok, name)

	cs, ok := sym.(*sem.ClassSymbol)
	require.True(t, ok, name)
	return cs
}

// -----------------------------------------------------------------------------

func TestCircularInheritance(t *testing.T) {
	table, errs := resolve(
		class(1, "B", "A"),
		class(2, "A", "B"),
	)

	require.Equal(t, []string{"CIRCULAR_INHERITANCE"}, kinds(errs.Errors()))
	assert.Equal(t, 2, errs.Errors()[0].Line())

	a := classSym(t, table, "A")
	b := classSym(t, table, "B")
	assert.Nil(t, a.Super)
	assert.Same(t, a, b.Super)
}

func TestSelfInheritance(t *testing.T) {
	table, errs := resolve(class(1, "A", "A"))

	require.Equal(t, []string{"CIRCULAR_INHERITANCE"}, kinds(errs.Errors()))
	assert.Nil(t, classSym(t, table, "A").Super)
}

func TestLongInheritanceCycle(t *testing.T) {
	_, errs := resolve(
		class(1, "A", "B"),
		class(2, "B", "C"),
		class(3, "C", "A"),
	)

	assert.Equal(t, []string{"CIRCULAR_INHERITANCE"}, kinds(errs.Errors()))
}

func TestSuperclassErrors(t *testing.T) {
	_, errs := resolve(
		class(1, "A", "Missing"),
		class(2, "B", "int"),
		&ast.GlobalVarDecl{ASTBase: at(3), Type: tref("int"), Vars: []*ast.Declarator{{ASTBase: at(3), Name: "g"}}},
		class(4, "C", "g"),
	)

	assert.Equal(t, []string{"UNDEFINED_CLASS", "TYPE_MISMATCH", "TYPE_MISMATCH"}, kinds(errs.Errors()))
}

func TestForwardReference(t *testing.T) {
	table, errs := resolve(
		class(1, "Dog", "Animal"),
		class(2, "Animal", ""),
	)

	require.Empty(t, errs.Errors())
	assert.True(t, classSym(t, table, "Dog").IsSubclassOf(classSym(t, table, "Animal")))
}

func TestDuplicateClassIsSkipped(t *testing.T) {
	first := class(1, "A", "")
	second := class(5, "A", "")

	table, errs := resolve(first, second)

	require.Equal(t, []string{"REDEFINITION"}, kinds(errs.Errors()))
	assert.Equal(t, 5, errs.Errors()[0].Line())
	assert.NotEmpty(t, errs.Errors()[0].Suggestion)

	_, ok := table.SymbolOf(first)
	assert.True(t, ok)
	_, ok = table.SymbolOf(second)
	assert.False(t, ok)
}

func TestImplicitThis(t *testing.T) {
	table, errs := resolve(class(1, "A", ""))
	require.Empty(t, errs.Errors())

	a := classSym(t, table, "A")
	sym, ok := a.Members.LookupLocal("this")
	require.True(t, ok)

	this := sym.(*sem.VariableSymbol)
	assert.True(t, this.Initialized)
	assert.Equal(t, sem.ThisVar, this.Kind)
	assert.True(t, typing.Equals(a.Type, this.Type))
}

func TestMemberDefinitions(t *testing.T) {
	cd := class(1, "A", "")
	cd.Fields = []*ast.FieldDecl{{
		ASTBase: at(2),
		Mods:    ast.Modifiers{Final: true},
		Type:    tref("int"),
		Vars: []*ast.Declarator{
			{ASTBase: at(2), Name: "x"},
			{ASTBase: at(2), Name: "grid", Dims: 2},
		},
	}}
	cd.Methods = []*ast.MethodDecl{
		method(3, "void", "f", param(3, "int", "a")),
		method(4, "void", "f", param(4, "int", "b")),
		method(5, "void", "f", param(5, "float", "b")),
		method(6, "int", "x"),
	}
	cd.Ctors = []*ast.ConstructorDecl{
		{ASTBase: at(7), Name: "A", Body: &ast.Block{ASTBase: at(7)}},
		{ASTBase: at(8), Name: "A", Body: &ast.Block{ASTBase: at(8)}},
		{ASTBase: at(9), Name: "B", Params: []*ast.Param{param(9, "int", "n")}, Body: &ast.Block{ASTBase: at(9)}},
	}

	table, errs := resolve(cd)

	var lines []int
	for _, e := range errs.Errors() {
		lines = append(lines, e.Line())
	}

	assert.Equal(t, []string{"REDEFINITION", "REDEFINITION", "REDEFINITION", "CONSTRUCTOR_ERROR"}, kinds(errs.Errors()))
	assert.Equal(t, []int{4, 6, 8, 9}, lines)

	a := classSym(t, table, "A")

	// a final field with no initializer is accepted here
	x, ok := a.LookupField("x")
	require.True(t, ok)
	assert.False(t, x.Initialized)
	assert.True(t, x.Final)

	grid, ok := a.LookupField("grid")
	require.True(t, ok)
	assert.True(t, typing.Equals(grid.Type, typing.NewArrayType(typing.Int, 2)))

	assert.Len(t, a.OwnMethods("f"), 2)
	assert.Len(t, a.Constructors(), 2)
}

func TestBuiltinsRegisteredFirst(t *testing.T) {
	table, errs := resolve(
		&ast.FuncDecl{ASTBase: at(1), ReturnType: tref("void"), Name: "print", Params: []*ast.Param{param(1, "string", "s")}},
		&ast.FuncDecl{ASTBase: at(2), ReturnType: tref("void"), Name: "print", Params: []*ast.Param{param(2, "int", "n")}},
	)

	require.Equal(t, []string{"REDEFINITION"}, kinds(errs.Errors()))
	assert.Equal(t, 1, errs.Errors()[0].Line())

	ovs := table.Global.LookupOverloads("print")
	require.Len(t, ovs, 2)
	assert.True(t, ovs[0].(*sem.FunctionSymbol).Builtin)

	_, errs = Resolve(&ast.Program{}, Options{})
	assert.Empty(t, errs.Errors())
}

func TestVarArgsMustBeLast(t *testing.T) {
	fd := &ast.FuncDecl{
		ASTBase:    at(1),
		ReturnType: tref("void"),
		Name:       "f",
		Params: []*ast.Param{
			{ASTBase: at(1), Type: tref("int"), Name: "xs", VarArgs: true},
			param(1, "int", "y"),
		},
	}

	_, errs := resolve(fd)
	assert.Equal(t, []string{"ARGUMENT_MISMATCH"}, kinds(errs.Errors()))
}

func TestUnknownTypeIsError(t *testing.T) {
	fd := &ast.FuncDecl{ASTBase: at(1), ReturnType: tref("Widget"), Name: "make"}

	table, errs := resolve(fd)
	assert.Equal(t, []string{"UNDEFINED_CLASS"}, kinds(errs.Errors()))

	sym, ok := table.SymbolOf(fd)
	require.True(t, ok)
	assert.True(t, typing.IsError(sym.(*sem.FunctionSymbol).ReturnType))
}

func TestBlockScopes(t *testing.T) {
	inner := &ast.Block{
		ASTBase: at(3),
		Stmts: []ast.Stmt{
			&ast.LocalVarDecl{ASTBase: at(4), Type: tref("int"), Vars: []*ast.Declarator{{ASTBase: at(4), Name: "x"}}},
		},
	}

	loop := &ast.ForEachStmt{
		ASTBase: at(5),
		VarType: tref("int"),
		VarName: "item",
		Iter:    &ast.Ident{ASTBase: at(5), Name: "xs"},
		Body:    &ast.Block{ASTBase: at(5)},
	}

	fd := &ast.FuncDecl{
		ASTBase:    at(1),
		ReturnType: tref("void"),
		Name:       "f",
		Params:     []*ast.Param{param(1, "int", "x")},
		Body: &ast.Block{ASTBase: at(1), Stmts: []ast.Stmt{
			&ast.LocalVarDecl{ASTBase: at(2), Type: tref("int"), Vars: []*ast.Declarator{{ASTBase: at(2), Name: "x"}}},
			inner,
			loop,
		}},
	}

	table, errs := resolve(fd)

	// redeclaring a parameter is an error, shadowing it in a nested block is not
	require.Equal(t, []string{"REDEFINITION"}, kinds(errs.Errors()))
	assert.Equal(t, 2, errs.Errors()[0].Line())

	fnScope, ok := table.ScopeOf(fd)
	require.True(t, ok)

	blockScope, ok := table.ScopeOf(inner)
	require.True(t, ok)
	assert.Equal(t, sem.BlockScope, blockScope.Kind)
	assert.Same(t, fnScope, blockScope.Parent)
	assert.NotNil(t, blockScope.EnclosingFunc)

	loopScope, ok := table.ScopeOf(loop)
	require.True(t, ok)
	_, ok = loopScope.LookupLocal("item")
	assert.True(t, ok)

	var kindsOfChildren []string
	for _, child := range fnScope.Children {
		kindsOfChildren = append(kindsOfChildren, child.Name+":"+child.Kind.String())
	}

	if diff := deep.Equal(kindsOfChildren, []string{"block:BLOCK", "for-each:BLOCK"}); diff != nil {
		t.Error(diff)
	}
}
