package walk

import (
	"mocha/ast"
	"mocha/cflow"
	"mocha/logging"
	"mocha/sem"
	"mocha/typing"
)

// classOf returns the class symbol of a class declaration.  Duplicate class
// declarations have none and are not checked.
func (w *Walker) classOf(cd *ast.ClassDecl) (*sem.ClassSymbol, bool) {
	sym, ok := w.table.SymbolOf(cd)
	if !ok {
		return nil, false
	}

	cs, ok := sym.(*sem.ClassSymbol)
	if !ok || cs.Members == nil {
		w.internalError(cd.Position(), "class `%s` has no member scope", cd.Name)
		return nil, false
	}

	return cs, true
}

// walkClass checks a class: its member rules, field initializers,
// constructors and then methods.
func (w *Walker) walkClass(cd *ast.ClassDecl) {
	cs, ok := w.classOf(cd)
	if !ok {
		return
	}

	w.checkClassMembers(cd, cs)

	for _, fd := range cd.Fields {
		w.walkFieldDecl(cs, fd)
	}

	for _, ctor := range cd.Ctors {
		w.walkConstructorDecl(ctor)
	}

	w.checkDelegationCycles(cd)

	// a class without constructors implicitly calls `super()`
	if len(cd.Ctors) == 0 {
		w.checkImplicitSuperCall(cs, cd.Position())
	}

	for _, md := range cd.Methods {
		w.walkMethodDecl(md)
	}

	w.checkBlankFinals(cs)
}

// walkFieldDecl checks the initializers of a field declaration.
func (w *Walker) walkFieldDecl(cs *sem.ClassSymbol, fd *ast.FieldDecl) {
	for _, d := range fd.Vars {
		vs, ok := w.variableOf(d)
		if !ok || d.Init == nil {
			continue
		}

		restore := w.enter(cs.Members, nil, fd.Mods.Static)
		w.checkInitializer(vs.Type, d.Init)
		restore()
	}
}

// walkMethodDecl checks the body of a method.
func (w *Walker) walkMethodDecl(md *ast.MethodDecl) {
	sym, ok := w.table.SymbolOf(md)
	if !ok {
		w.internalError(md.Position(), "no symbol was recorded for method `%s`", md.Name)
		return
	}

	ms := sym.(*sem.MethodSymbol)
	if md.Body == nil {
		return
	}

	defer w.enter(ms.Scope, ms, ms.Static)()

	w.walkStmts(md.Body.Stmts)
	w.checkMissingReturn(&ms.FunctionSymbol, md.Body, md.Position())
}

// walkConstructorDecl checks the body of a constructor.
func (w *Walker) walkConstructorDecl(cd *ast.ConstructorDecl) {
	sym, ok := w.table.SymbolOf(cd)
	if !ok {
		w.internalError(cd.Position(), "no symbol was recorded for constructor `%s`", cd.Name)
		return
	}

	ctor := sym.(*sem.ConstructorSymbol)
	if cd.Body == nil {
		return
	}

	defer w.enter(ctor.Scope, ctor, false)()

	if len(cd.Body.Stmts) > 0 {
		w.firstCtorStmt = cd.Body.Stmts[0]
	}

	cc, explicit := w.firstCtorStmt.(*ast.CtorCallStmt)
	if !explicit {
		w.checkImplicitSuperCall(ctor.Owner, cd.Position())
	}

	var exits []cflow.VarSet
	w.ctorExits = &exits
	defer func() { w.ctorExits = nil }()

	w.walkStmts(cd.Body.Stmts)

	if !cflow.AnalyzeSeq(cd.Body.Stmts).AllPathsReturn {
		exits = append(exits, w.live.Copy())
	}

	// a constructor delegating to `this(...)` initializes what its target does
	if !explicit || cc.Super {
		w.checkCtorInitializes(ctor, cd, exits)
	}
}

// checkCtorInitializes reports the blank final fields that some constructor
// assigns but that this constructor can leave uninitialized.  Fields no
// constructor assigns are reported once by checkBlankFinals.
func (w *Walker) checkCtorInitializes(ctor *sem.ConstructorSymbol, cd *ast.ConstructorDecl, exits []cflow.VarSet) {
	for _, sym := range ctor.Owner.Members.Symbols() {
		vs, ok := sym.(*sem.VariableSymbol)
		if !ok || vs.Static || !w.ctorAssigned.Has(vs) {
			continue
		}

		for _, exit := range exits {
			if !exit.Has(vs) {
				w.errs.Add(
					logging.UninitializedVariable,
					cd.Position(),
					"constructor `%s` does not initialize final field `%s` on every path",
					ctor.Signature().Repr(),
					vs.Name,
				).Suggest("assign `%s` before every return of `%s`", vs.Name, cd.Name)
				break
			}
		}
	}
}

// checkDelegationCycles reports constructors whose `this(...)` calls lead
// back to themselves.  Each cycle is reported once, at the call of its first
// declared constructor.
func (w *Walker) checkDelegationCycles(cd *ast.ClassDecl) {
	inCycle := make(map[*sem.ConstructorSymbol]bool)

	for _, decl := range cd.Ctors {
		sym, ok := w.table.SymbolOf(decl)
		if !ok {
			continue
		}

		ctor := sym.(*sem.ConstructorSymbol)
		if inCycle[ctor] {
			continue
		}

		// the chain is followed until it ends, returns to the start or enters
		// a cycle not containing the start
		path := []*sem.ConstructorSymbol{ctor}
		visited := map[*sem.ConstructorSymbol]bool{ctor: true}
		for cur := ctor; ; {
			d, ok := w.delegations[cur]
			if !ok {
				break
			}

			if d.target == ctor {
				for _, c := range path {
					inCycle[c] = true
				}

				w.reportDelegationCycle(path, w.delegations[ctor].pos)
				break
			}

			if visited[d.target] {
				break
			}

			visited[d.target] = true
			path = append(path, d.target)
			cur = d.target
		}
	}
}

func (w *Walker) reportDelegationCycle(path []*sem.ConstructorSymbol, pos *logging.TextPosition) {
	if len(path) == 1 {
		w.errs.Add(logging.ConstructorError, pos, "constructor `%s` invokes itself", path[0].Signature().Repr())
		return
	}

	w.errs.Add(
		logging.ConstructorError,
		pos,
		"constructor `%s` invokes itself through %s",
		path[0].Signature().Repr(),
		joinSignatures(sem.Signatures(path[1:])),
	).Suggest("one of the constructors must call `super(...)` or initialize the object itself")
}

// walkFuncDecl checks the body of a top-level function.
func (w *Walker) walkFuncDecl(fd *ast.FuncDecl) {
	sym, ok := w.table.SymbolOf(fd)
	if !ok {
		w.internalError(fd.Position(), "no symbol was recorded for function `%s`", fd.Name)
		return
	}

	fs := sym.(*sem.FunctionSymbol)
	if fd.Body == nil {
		return
	}

	defer w.enter(fs.Scope, fs, true)()

	w.walkStmts(fd.Body.Stmts)
	w.checkMissingReturn(fs, fd.Body, fd.Position())
}

// walkGlobalVarDecl checks the initializers of a global variable declaration.
func (w *Walker) walkGlobalVarDecl(gd *ast.GlobalVarDecl) {
	for _, d := range gd.Vars {
		vs, ok := w.variableOf(d)
		if !ok || d.Init == nil {
			continue
		}

		restore := w.enter(w.table.Global, nil, true)
		w.checkInitializer(vs.Type, d.Init)
		restore()
	}
}

// -----------------------------------------------------------------------------

// checkMissingReturn reports a non-void callable that can reach the end of
// its body.
func (w *Walker) checkMissingReturn(fs *sem.FunctionSymbol, body *ast.Block, pos *logging.TextPosition) {
	if typing.IsVoid(fs.ReturnType) || typing.IsError(fs.ReturnType) {
		return
	}

	if !cflow.AnalyzeSeq(body.Stmts).AllPathsReturn {
		w.errs.Add(
			logging.MissingReturn,
			pos,
			"`%s` must return a value of type `%s` on every path",
			fs.Signature().Repr(),
			fs.ReturnType.Repr(),
		).Suggest("add a return statement at the end of `%s`", fs.Name)
	}
}

// checkImplicitSuperCall checks that the superclass of a class can be
// constructed with no arguments.
func (w *Walker) checkImplicitSuperCall(cs *sem.ClassSymbol, pos *logging.TextPosition) {
	if cs.Super == nil || len(cs.Super.Constructors()) == 0 {
		return
	}

	best, _ := sem.SelectOverload(cs.Super.Constructors(), nil)
	if best == nil {
		w.errs.Add(
			logging.ConstructorError,
			pos,
			"superclass `%s` has no constructor taking no arguments",
			cs.Super.Name,
		).Suggest("call one of %s explicitly with `super(...)`", joinSignatures(sem.Signatures(cs.Super.Constructors())))
	} else if best.Visibility == sem.Private {
		w.errs.Add(logging.AccessViolation, pos, "constructor `%s` of `%s` is private", best.Signature().Repr(), cs.Super.Name)
	}
}

// checkBlankFinals reports final fields with no initializer that no
// constructor assigns and that were never reported on read.
func (w *Walker) checkBlankFinals(cs *sem.ClassSymbol) {
	for _, sym := range cs.Members.Symbols() {
		vs, ok := sym.(*sem.VariableSymbol)
		if !ok || !isBlankFinal(vs) || w.ctorAssigned.Has(vs) || w.reported.Has(vs) {
			continue
		}

		w.reported.Add(vs)
		w.errs.Add(
			logging.UninitializedVariable,
			vs.Position,
			"final field `%s` is never initialized",
			vs.Name,
		).Suggest("give `%s` an initializer or assign it in every constructor", vs.Name)
	}
}

// prescanConstructors records the blank final fields of a class that are
// assigned in some constructor.  Methods may read those fields.
func (w *Walker) prescanConstructors(cd *ast.ClassDecl) {
	sym, ok := w.table.SymbolOf(cd)
	if !ok {
		return
	}

	cs, ok := sym.(*sem.ClassSymbol)
	if !ok || cs.Members == nil {
		return
	}

	for _, ctor := range cd.Ctors {
		if ctor.Body == nil {
			continue
		}

		// parameters shadow the fields in the whole body
		shadowed := make(map[string]bool)
		for _, p := range ctor.Params {
			shadowed[p.Name] = true
		}

		assigned := make(map[string]bool)
		assignedInStmts(ctor.Body.Stmts, shadowed, assigned)

		for name := range assigned {
			if field, ok := cs.LookupField(name); ok && field.Owner == cs && isBlankFinal(field) && !field.Static {
				w.ctorAssigned.Add(field)
			}
		}
	}
}

// assignedInStmts collects the field names a statement sequence assigns.  A
// bare name only denotes a field where no local of that name is visible: a
// local is visible from its declaration to the end of its block.
func assignedInStmts(stmts []ast.Stmt, shadowed, assigned map[string]bool) {
	inner := copyNames(shadowed)
	for _, stmt := range stmts {
		assignedInStmt(stmt, inner, assigned)
	}
}

func assignedInStmt(stmt ast.Stmt, shadowed, assigned map[string]bool) {
	switch v := stmt.(type) {
	case *ast.Block:
		assignedInStmts(v.Stmts, shadowed, assigned)
	case *ast.LocalVarDecl:
		for _, d := range v.Vars {
			assignedInExpr(d.Init, shadowed, assigned)
			shadowed[d.Name] = true
		}
	case *ast.ExprStmt:
		assignedInExpr(v.X, shadowed, assigned)
	case *ast.IfStmt:
		assignedInExpr(v.Cond, shadowed, assigned)
		assignedInBody(v.Then, shadowed, assigned)
		assignedInBody(v.Else, shadowed, assigned)
	case *ast.WhileStmt:
		assignedInExpr(v.Cond, shadowed, assigned)
		assignedInBody(v.Body, shadowed, assigned)
	case *ast.DoWhileStmt:
		assignedInBody(v.Body, shadowed, assigned)
		assignedInExpr(v.Cond, shadowed, assigned)
	case *ast.ForStmt:
		// the header opens a scope around the whole loop
		header := copyNames(shadowed)
		for _, init := range v.Init {
			assignedInStmt(init, header, assigned)
		}

		assignedInExpr(v.Cond, header, assigned)
		for _, u := range v.Update {
			assignedInExpr(u, header, assigned)
		}

		assignedInBody(v.Body, header, assigned)
	case *ast.ForEachStmt:
		assignedInExpr(v.Iter, shadowed, assigned)

		header := copyNames(shadowed)
		header[v.VarName] = true
		assignedInBody(v.Body, header, assigned)
	case *ast.SwitchStmt:
		assignedInExpr(v.Tag, shadowed, assigned)

		// all the cases share the scope of the switch body
		var body []ast.Stmt
		for _, cc := range v.Cases {
			body = append(body, cc.Body...)
		}

		assignedInStmts(body, shadowed, assigned)
	case *ast.ReturnStmt:
		assignedInExpr(v.Value, shadowed, assigned)
	case *ast.CtorCallStmt:
		for _, arg := range v.Args {
			assignedInExpr(arg, shadowed, assigned)
		}
	}
}

// assignedInBody scans a nested statement which opens its own scope.
func assignedInBody(stmt ast.Stmt, shadowed, assigned map[string]bool) {
	if stmt != nil {
		assignedInStmts([]ast.Stmt{stmt}, shadowed, assigned)
	}
}

func assignedInExpr(expr ast.Expr, shadowed, assigned map[string]bool) {
	if expr == nil {
		return
	}

	ast.Inspect(expr, func(n ast.Node) bool {
		ae, ok := n.(*ast.AssignExpr)
		if !ok {
			return true
		}

		switch t := ae.Target.(type) {
		case *ast.Ident:
			if !shadowed[t.Name] {
				assigned[t.Name] = true
			}
		case *ast.FieldAccess:
			if _, ok := t.X.(*ast.ThisExpr); ok {
				assigned[t.Name] = true
			}
		}

		return true
	})
}

func copyNames(names map[string]bool) map[string]bool {
	c := make(map[string]bool, len(names))
	for name := range names {
		c[name] = true
	}

	return c
}

// isBlankFinal reports whether a field or global is final and has no
// initializer.
func isBlankFinal(vs *sem.VariableSymbol) bool {
	return (vs.Kind == sem.FieldVar || vs.Kind == sem.GlobalVar) && vs.Final && !vs.Initialized
}
