package walk

import (
	"mocha/ast"
	"mocha/cflow"
	"mocha/logging"
	"mocha/resolve"
	"mocha/sem"
	"mocha/typing"
)

// Options configures the checker.
type Options struct {
	// StrictOverloads reports calls that match several overloads equally well
	// instead of silently picking the first declared.
	StrictOverloads bool

	// WarnHiddenOverloads warns when a subclass method shares the name of a
	// superclass method without overriding it.
	WarnHiddenOverloads bool
}

// TypeTable maps each checked expression to its inferred type.
type TypeTable map[ast.Expr]typing.Type

// Walker is the construct responsible for performing semantic analysis on a
// program whose symbol table has already been built.  The tree and the scopes
// are never mutated: everything the walk learns lives in the walker.
type Walker struct {
	table *resolve.Table
	opts  Options
	errs  *logging.ErrorList
	types TypeTable

	// scope is the scope of the innermost node being walked
	scope *sem.Scope

	// class is the enclosing class (nil outside of classes)
	class *sem.ClassSymbol

	// callable is the enclosing function, method or constructor.  It is nil
	// while walking field and global initializers.
	callable sem.Callable

	// static indicates that there is no `this`
	static bool

	loopDepth   int
	switchDepth int

	// breakSets collects the initialized sets at each `break` targeting the
	// innermost enclosing switch (nil entries mark loops)
	breakSets []*[]cflow.VarSet

	// live is the set of tracked variables definitely initialized at the
	// current point; possible holds those initialized on some path only
	live     cflow.VarSet
	possible cflow.VarSet

	// declared is the set of local variables whose declaration has been
	// walked: a local is not visible before its declaration
	declared cflow.VarSet

	// reported holds the variables already reported as uninitialized so each
	// is reported at most once
	reported cflow.VarSet

	// ctorAssigned holds the blank final fields some constructor assigns
	ctorAssigned cflow.VarSet

	// firstCtorStmt is the first statement of the constructor being walked:
	// the only place a `this(...)` or `super(...)` call may appear
	firstCtorStmt ast.Stmt

	// ctorExits collects the initialized sets on every path leaving the
	// constructor being walked (nil outside of constructors)
	ctorExits *[]cflow.VarSet

	// delegations maps each constructor to the one its `this(...)` calls
	delegations map[*sem.ConstructorSymbol]delegation
}

// delegation is a `this(...)` call of one constructor to another.
type delegation struct {
	target *sem.ConstructorSymbol
	pos    *logging.TextPosition
}

// Check type checks a program against its symbol table.  It returns the
// types of all checked expressions and the errors found.
func Check(prog *ast.Program, table *resolve.Table, opts Options) (TypeTable, *logging.ErrorList) {
	w := &Walker{
		table:        table,
		opts:         opts,
		errs:         &logging.ErrorList{},
		types:        make(TypeTable),
		scope:        table.Global,
		live:         cflow.NewVarSet(),
		possible:     cflow.NewVarSet(),
		declared:     cflow.NewVarSet(),
		reported:     cflow.NewVarSet(),
		ctorAssigned: cflow.NewVarSet(),
		delegations:  make(map[*sem.ConstructorSymbol]delegation),
	}

	// blank final fields must be known for every class before any method
	// body reads them
	for _, decl := range prog.Decls {
		if cd, ok := decl.(*ast.ClassDecl); ok {
			w.prescanConstructors(cd)
		}
	}

	for _, decl := range prog.Decls {
		switch v := decl.(type) {
		case *ast.ClassDecl:
			w.walkClass(v)
		case *ast.FuncDecl:
			w.walkFuncDecl(v)
		case *ast.GlobalVarDecl:
			w.walkGlobalVarDecl(v)
		}
	}

	return w.types, w.errs
}

// -----------------------------------------------------------------------------

// declContext is the saved walker context of an enclosing declaration.
type declContext struct {
	scope         *sem.Scope
	class         *sem.ClassSymbol
	callable      sem.Callable
	static        bool
	loopDepth     int
	switchDepth   int
	breakSets     []*[]cflow.VarSet
	live          cflow.VarSet
	possible      cflow.VarSet
	firstCtorStmt ast.Stmt
}

// enter switches the walker into a new declaration context and returns a
// function restoring the previous one.
func (w *Walker) enter(scope *sem.Scope, callable sem.Callable, static bool) func() {
	saved := declContext{
		scope:         w.scope,
		class:         w.class,
		callable:      w.callable,
		static:        w.static,
		loopDepth:     w.loopDepth,
		switchDepth:   w.switchDepth,
		breakSets:     w.breakSets,
		live:          w.live,
		possible:      w.possible,
		firstCtorStmt: w.firstCtorStmt,
	}

	w.scope = scope
	w.class = scope.EnclosingClass
	w.callable = callable
	w.static = static
	w.loopDepth = 0
	w.switchDepth = 0
	w.breakSets = nil
	w.live = cflow.NewVarSet()
	w.possible = cflow.NewVarSet()
	w.firstCtorStmt = nil

	return func() {
		w.scope = saved.scope
		w.class = saved.class
		w.callable = saved.callable
		w.static = saved.static
		w.loopDepth = saved.loopDepth
		w.switchDepth = saved.switchDepth
		w.breakSets = saved.breakSets
		w.live = saved.live
		w.possible = saved.possible
		w.firstCtorStmt = saved.firstCtorStmt
	}
}

// enterScope makes the scope a node opened the current scope and returns a
// function restoring the previous scope.
func (w *Walker) enterScope(node ast.Node) func() {
	prev := w.scope

	if scope, ok := w.table.ScopeOf(node); ok {
		w.scope = scope
	} else {
		w.internalError(node.Position(), "no scope was recorded for this node")
	}

	return func() {
		w.scope = prev
	}
}

// setType records the type of an expression and returns it.
func (w *Walker) setType(expr ast.Expr, t typing.Type) typing.Type {
	w.types[expr] = t
	return t
}

// -----------------------------------------------------------------------------

// internalError reports a desynchronization between the symbol table and the
// checker.
func (w *Walker) internalError(pos *logging.TextPosition, format string, args ...interface{}) {
	w.errs.Add(logging.InternalError, pos, format, args...)
}

// variableOf returns the variable symbol a declaring node created.
func (w *Walker) variableOf(node ast.Node) (*sem.VariableSymbol, bool) {
	sym, ok := w.table.SymbolOf(node)
	if !ok {
		w.internalError(node.Position(), "no symbol was recorded for this declaration")
		return nil, false
	}

	vs, ok := sym.(*sem.VariableSymbol)
	if !ok {
		w.internalError(node.Position(), "expected a variable symbol but got `%s`", sym.Common().Name)
	}

	return vs, ok
}
