package walk

import (
	"fmt"
	"strconv"

	"mocha/ast"
	"mocha/cflow"
	"mocha/logging"
	"mocha/sem"
	"mocha/typing"
)

// walkStmts walks a statement sequence.  Statements following one that never
// falls through are reported once, at the first of them, and still checked.
func (w *Walker) walkStmts(stmts []ast.Stmt) {
	if unreachable := cflow.Unreachable(stmts); len(unreachable) > 0 {
		w.errs.Add(logging.UnreachableCode, unreachable[0].Position(), "unreachable code")
	}

	for _, stmt := range stmts {
		w.walkStmt(stmt)
	}
}

// walkStmt walks a single statement.
func (w *Walker) walkStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.Block:
		defer w.enterScope(v)()
		w.walkStmts(v.Stmts)
	case *ast.LocalVarDecl:
		w.walkLocalVarDecl(v)
	case *ast.ExprStmt:
		w.walkExpr(v.X)
	case *ast.IfStmt:
		w.walkIf(v)
	case *ast.WhileStmt:
		w.walkCondition(v.Cond)
		w.walkLoopBody(func() {
			w.walkStmt(v.Body)
		})
	case *ast.DoWhileStmt:
		// the condition sees what the body initialized but the body's
		// assignments are discarded afterwards like any loop
		w.walkLoopBody(func() {
			w.walkStmt(v.Body)
			w.walkCondition(v.Cond)
		})
	case *ast.ForStmt:
		w.walkFor(v)
	case *ast.ForEachStmt:
		w.walkForEach(v)
	case *ast.SwitchStmt:
		w.walkSwitch(v)
	case *ast.ReturnStmt:
		w.walkReturn(v)
	case *ast.BreakStmt:
		if w.loopDepth == 0 && w.switchDepth == 0 {
			w.errs.Add(logging.InvalidBreakContinue, v.Position(), "`break` outside of a loop or switch")
		} else if n := len(w.breakSets); n > 0 && w.breakSets[n-1] != nil {
			*w.breakSets[n-1] = append(*w.breakSets[n-1], w.live.Copy())
		}
	case *ast.ContinueStmt:
		if w.loopDepth == 0 {
			w.errs.Add(logging.InvalidBreakContinue, v.Position(), "`continue` outside of a loop")
		}
	case *ast.CtorCallStmt:
		w.walkCtorCall(v)
	default:
		w.internalError(stmt.Position(), "unknown statement")
	}
}

// walkLocalVarDecl checks the initializers of a local declaration and makes
// its variables visible.
func (w *Walker) walkLocalVarDecl(ld *ast.LocalVarDecl) {
	for _, d := range ld.Vars {
		vs, ok := w.variableOf(d)
		if !ok {
			continue
		}

		if d.Init != nil {
			w.checkInitializer(vs.Type, d.Init)
			w.live.Add(vs)
		}

		w.declared.Add(vs)
	}
}

// checkInitializer checks that an initializer can be stored in a variable of
// the given type.
func (w *Walker) checkInitializer(target typing.Type, init ast.Expr) {
	var initType typing.Type
	if al, ok := init.(*ast.ArrayLit); ok {
		initType = w.setType(al, w.walkArrayLit(al, target))
	} else {
		initType = w.walkExpr(init)
	}

	w.checkAssignable(target, initType, init.Position())
}

// checkAssignable reports a value that cannot be stored where `target` is
// expected.
func (w *Walker) checkAssignable(target, source typing.Type, pos *logging.TextPosition) {
	if !typing.IsAssignableFrom(target, source) {
		w.errs.Add(
			logging.TypeMismatch,
			pos,
			"cannot use a value of type `%s` as `%s`",
			source.Repr(),
			target.Repr(),
		)
	}
}

// walkCondition checks a condition which must be a boolean.
func (w *Walker) walkCondition(cond ast.Expr) {
	ct := w.walkExpr(cond)

	if !typing.IsBoolean(ct) && !typing.IsError(ct) {
		w.errs.Add(logging.TypeMismatch, cond.Position(), "condition must be a `boolean`, not `%s`", ct.Repr())
	}
}

// -----------------------------------------------------------------------------

// walkIf walks an if statement.  Each branch starts from the same incoming
// set; afterwards, variables are initialized only if every branch that falls
// through initialized them.
func (w *Walker) walkIf(is *ast.IfStmt) {
	w.walkCondition(is.Cond)

	incoming := w.live

	w.live = incoming.Copy()
	w.walkStmt(is.Then)
	thenOut, thenFalls := w.live, !cflow.Analyze(is.Then).Terminates()

	elseOut, elseFalls := incoming, true
	if is.Else != nil {
		w.live = incoming.Copy()
		w.walkStmt(is.Else)
		elseOut, elseFalls = w.live, !cflow.Analyze(is.Else).Terminates()
	}

	w.live = w.joinBranches(incoming, []cflow.VarSet{thenOut, elseOut}, []bool{thenFalls, elseFalls})
}

// joinBranches merges the outgoing sets of branches.  The result is the
// intersection over the branches that fall through only: a branch that always
// returns, breaks or continues never reaches the join, so `if (c) { x = 1; }
// else { return; }` leaves `x` definitely initialized.
func (w *Walker) joinBranches(incoming cflow.VarSet, outs []cflow.VarSet, falls []bool) cflow.VarSet {
	var joined cflow.VarSet

	for i, out := range outs {
		if !falls[i] {
			continue
		}

		if joined == nil {
			joined = out
		} else {
			var possible cflow.VarSet
			joined, possible = cflow.Merge(joined, out)
			w.possible = cflow.Union(w.possible, possible)
		}
	}

	// every branch leaves: nothing after is reachable
	if joined == nil {
		return incoming
	}

	return joined
}

// walkLoopBody walks the body of a loop.  The body may run zero times so the
// set after the loop is the set before it.
func (w *Walker) walkLoopBody(walkBody func()) {
	incoming := w.live
	w.live = incoming.Copy()

	w.loopDepth++
	w.breakSets = append(w.breakSets, nil)

	walkBody()

	w.breakSets = w.breakSets[:len(w.breakSets)-1]
	w.loopDepth--

	w.possible = cflow.Union(w.possible, cflow.Minus(w.live, incoming))
	w.live = incoming
}

// walkFor walks a C-style for loop.  The initializers run once and are kept.
func (w *Walker) walkFor(fs *ast.ForStmt) {
	defer w.enterScope(fs)()

	for _, init := range fs.Init {
		w.walkStmt(init)
	}

	if fs.Cond != nil {
		w.walkCondition(fs.Cond)
	}

	w.walkLoopBody(func() {
		w.walkStmt(fs.Body)

		for _, update := range fs.Update {
			w.walkExpr(update)
		}
	})
}

// walkForEach walks a for-each loop over an array.
func (w *Walker) walkForEach(fe *ast.ForEachStmt) {
	iterType := w.walkExpr(fe.Iter)

	defer w.enterScope(fe)()

	vs, ok := w.variableOf(fe)
	if !ok {
		return
	}

	switch v := iterType.(type) {
	case *typing.ArrayType:
		elem := typing.ElemType(v)
		if !typing.IsAssignableFrom(vs.Type, elem) {
			w.errs.Add(
				logging.TypeMismatch,
				fe.Position(),
				"cannot iterate over elements of type `%s` with a variable of type `%s`",
				elem.Repr(),
				vs.Type.Repr(),
			)
		}
	case typing.ErrorType:
	default:
		w.errs.Add(logging.TypeMismatch, fe.Iter.Position(), "cannot iterate over a value of type `%s`", iterType.Repr())
	}

	// the loop variable is assigned before each iteration
	w.declared.Add(vs)
	w.live.Add(vs)

	w.walkLoopBody(func() {
		w.walkStmt(fe.Body)
	})
}

// -----------------------------------------------------------------------------

// walkSwitch walks a switch statement.  Every case starts from the set after
// the tag.  The set after the switch is joined from each `break`, the end of
// the last case and, without a default, the tag itself.
func (w *Walker) walkSwitch(ss *ast.SwitchStmt) {
	tagType := w.walkExpr(ss.Tag)

	switch tagType.(type) {
	case *typing.ClassType, typing.ErrorType:
	default:
		if tagType != typing.Int && tagType != typing.Char {
			w.errs.Add(
				logging.TypeMismatch,
				ss.Tag.Position(),
				"switch discriminant must be an `int`, a `char` or a class, not `%s`",
				tagType.Repr(),
			)
			tagType = typing.Error
		}
	}

	defer w.enterScope(ss)()

	incoming := w.live
	labels := make(map[string]*ast.CaseClause)
	var defaultCase *ast.CaseClause

	var breaks []cflow.VarSet
	w.breakSets = append(w.breakSets, &breaks)
	w.switchDepth++

	var lastOut cflow.VarSet
	lastFalls := true
	for _, cc := range ss.Cases {
		if cc.Value == nil {
			if defaultCase != nil {
				w.errs.Add(logging.DuplicateCase, cc.Position(), "multiple `default` cases in switch")
			}

			defaultCase = cc
		} else {
			w.walkCaseLabel(tagType, cc, labels)
		}

		w.live = incoming.Copy()
		w.walkStmts(cc.Body)
		lastOut, lastFalls = w.live, !cflow.AnalyzeSeq(cc.Body).Terminates()
	}

	w.switchDepth--
	w.breakSets = w.breakSets[:len(w.breakSets)-1]

	outs := breaks
	falls := make([]bool, len(breaks))
	for i := range falls {
		falls[i] = true
	}

	if lastOut != nil {
		outs = append(outs, lastOut)
		falls = append(falls, lastFalls)
	}

	if defaultCase == nil {
		outs = append(outs, incoming)
		falls = append(falls, true)
	}

	w.live = w.joinBranches(incoming, outs, falls)
}

// walkCaseLabel checks a case label against the switch discriminant and the
// labels already seen.
func (w *Walker) walkCaseLabel(tagType typing.Type, cc *ast.CaseClause, labels map[string]*ast.CaseClause) {
	labelType := w.walkExpr(cc.Value)
	w.checkAssignable(tagType, labelType, cc.Value.Position())

	key, ok := caseKey(cc.Value)
	if !ok {
		return
	}

	if prev, ok := labels[key]; ok {
		w.errs.Add(
			logging.DuplicateCase,
			cc.Position(),
			"duplicate case label `%s`",
			labelText(cc.Value),
		).Suggest("the same label is first used at %d:%d", prev.Position().StartLn, prev.Position().StartCol)
	} else {
		labels[key] = cc
	}
}

// caseKey folds a case label to the key it is compared by.  Integral labels
// fold to their value so `-1` written twice or `'a'` next to `97` collide.
// Labels that are not constants have no key.
func caseKey(label ast.Expr) (string, bool) {
	if n, ok := constValue(label); ok {
		return strconv.FormatInt(n, 10), true
	}

	if lit, ok := label.(*ast.Literal); ok {
		return fmt.Sprintf("%d:%s", lit.Kind, lit.Value), true
	}

	return "", false
}

// constValue evaluates an int or char literal with any unary `+` and `-`
// applied to it.  Chars evaluate to their code point.
func constValue(x ast.Expr) (int64, bool) {
	switch v := x.(type) {
	case *ast.Literal:
		switch v.Kind {
		case ast.IntLit:
			n, err := strconv.ParseInt(v.Value, 0, 64)
			return n, err == nil
		case ast.CharLit:
			r, ok := charCode(v.Value)
			return int64(r), ok
		}
	case *ast.UnaryExpr:
		if n, ok := constValue(v.X); ok {
			switch v.Op {
			case ast.OpNeg:
				return -n, true
			case ast.OpPos:
				return n, true
			}
		}
	}

	return 0, false
}

// charCode decodes the text of a char literal, with or without its quotes.
func charCode(text string) (rune, bool) {
	if len(text) >= 2 && text[0] == '\'' && text[len(text)-1] == '\'' {
		text = text[1 : len(text)-1]
	}

	r, _, tail, err := strconv.UnquoteChar(text, '\'')
	return r, err == nil && tail == ""
}

// labelText renders a case label for messages.
func labelText(label ast.Expr) string {
	switch v := label.(type) {
	case *ast.Literal:
		return v.Value
	case *ast.UnaryExpr:
		return v.Op.String() + labelText(v.X)
	default:
		return "..."
	}
}

// -----------------------------------------------------------------------------

// walkReturn checks a return statement against the enclosing callable.
func (w *Walker) walkReturn(rs *ast.ReturnStmt) {
	var valueType typing.Type
	if rs.Value != nil {
		valueType = w.walkExpr(rs.Value)
	}

	var fs *sem.FunctionSymbol
	switch v := w.callable.(type) {
	case *sem.FunctionSymbol:
		fs = v
	case *sem.MethodSymbol:
		fs = &v.FunctionSymbol
	case *sem.ConstructorSymbol:
		if rs.Value != nil {
			w.errs.Add(logging.TypeMismatch, rs.Value.Position(), "constructors cannot return a value")
		}

		if w.ctorExits != nil {
			*w.ctorExits = append(*w.ctorExits, w.live.Copy())
		}

		return
	default:
		w.internalError(rs.Position(), "return outside of a callable")
		return
	}

	switch {
	case rs.Value == nil:
		if !typing.IsVoid(fs.ReturnType) && !typing.IsError(fs.ReturnType) {
			w.errs.Add(
				logging.MissingReturn,
				rs.Position(),
				"`%s` must return a value of type `%s`",
				fs.Name,
				fs.ReturnType.Repr(),
			)
		}
	case typing.IsVoid(fs.ReturnType):
		w.errs.Add(logging.TypeMismatch, rs.Value.Position(), "`%s` returns `void` and cannot return a value", fs.Name)
	default:
		w.checkAssignable(fs.ReturnType, valueType, rs.Value.Position())
	}
}
