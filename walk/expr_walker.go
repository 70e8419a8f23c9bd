package walk

import (
	"mocha/ast"
	"mocha/cflow"
	"mocha/logging"
	"mocha/resolve"
	"mocha/sem"
	"mocha/typing"
)

// walkExpr checks an expression, records its type and returns it.  An
// expression that is in error has the error type.
func (w *Walker) walkExpr(expr ast.Expr) typing.Type {
	var t typing.Type

	switch v := expr.(type) {
	case *ast.Literal:
		t = literalType(v)
	case *ast.Ident:
		t = w.walkIdent(v)
	case *ast.ThisExpr:
		t = w.walkThis(v)
	case *ast.SuperExpr:
		if st := w.walkSuper(v); !typing.IsError(st) {
			w.errs.Add(logging.InvalidSuper, v.Position(), "`super` must be followed by a member access")
		}

		t = typing.Error
	case *ast.FieldAccess:
		t = w.walkFieldAccess(v)
	case *ast.MethodCall:
		t = w.walkMethodCall(v)
	case *ast.IndexExpr:
		t = w.walkIndex(v)
	case *ast.BinaryExpr:
		t = w.walkBinary(v)
	case *ast.UnaryExpr:
		t = w.walkUnary(v)
	case *ast.AssignExpr:
		t = w.walkAssign(v)
	case *ast.CastExpr:
		t = w.walkCast(v)
	case *ast.InstanceOfExpr:
		t = w.walkInstanceOf(v)
	case *ast.TernaryExpr:
		t = w.walkTernary(v)
	case *ast.NewExpr:
		t = w.walkNew(v)
	case *ast.NewArrayExpr:
		t = w.walkNewArray(v)
	case *ast.ArrayLit:
		t = w.walkArrayLit(v, nil)
	default:
		w.internalError(expr.Position(), "unknown expression")
		t = typing.Error
	}

	return w.setType(expr, t)
}

// literalType returns the type of a literal.
func literalType(lit *ast.Literal) typing.Type {
	switch lit.Kind {
	case ast.IntLit:
		return typing.Int
	case ast.FloatLit:
		return typing.Float
	case ast.StringLit:
		return typing.String
	case ast.CharLit:
		return typing.Char
	case ast.BoolLit:
		return typing.Boolean
	default:
		return typing.Null
	}
}

// walkIdent checks a bare name used as a value.
func (w *Walker) walkIdent(id *ast.Ident) typing.Type {
	vs, ok := w.identVar(id)
	if !ok {
		return typing.Error
	}

	w.readVar(vs, id.Position())
	return vs.Type
}

// identVar resolves a bare name to the variable it denotes and checks that
// the variable may be used from the current context.  Errors are reported.
func (w *Walker) identVar(id *ast.Ident) (*sem.VariableSymbol, bool) {
	sym, ok := w.lookupName(id.Name)
	if !ok {
		w.errs.Add(logging.UndefinedVariable, id.Position(), "undefined variable `%s`", id.Name)
		return nil, false
	}

	switch v := sym.(type) {
	case *sem.VariableSymbol:
		if v.Kind == sem.FieldVar {
			if !w.checkMemberAccess(v.Owner, v.Visibility, "field", v.Name, id.Position()) {
				return nil, false
			}

			if !v.Static && w.static {
				w.errs.Add(
					logging.StaticContextError,
					id.Position(),
					"instance field `%s` cannot be used from a static context",
					v.Name,
				)
				return nil, false
			}
		}

		return v, true
	case *sem.ClassSymbol:
		w.errs.Add(logging.InvalidOperation, id.Position(), "class `%s` cannot be used as a value", v.Name)
	default:
		w.internalError(id.Position(), "`%s` resolved to an unexpected symbol", id.Name)
	}

	return nil, false
}

// walkThis checks a use of `this`.
func (w *Walker) walkThis(te *ast.ThisExpr) typing.Type {
	if w.class == nil {
		w.errs.Add(logging.InvalidThis, te.Position(), "`this` used outside of a class")
		return typing.Error
	}

	if w.static {
		w.errs.Add(logging.StaticContextError, te.Position(), "`this` cannot be used from a static context")
		return typing.Error
	}

	return w.class.ClassType()
}

// walkSuper checks a use of `super` and returns the type of the superclass.
func (w *Walker) walkSuper(se *ast.SuperExpr) typing.Type {
	if w.class == nil {
		w.errs.Add(logging.InvalidSuper, se.Position(), "`super` used outside of a class")
		return typing.Error
	}

	if w.class.Super == nil {
		w.errs.Add(logging.InvalidSuper, se.Position(), "class `%s` has no superclass", w.class.Name)
		return typing.Error
	}

	if w.static {
		w.errs.Add(logging.StaticContextError, se.Position(), "`super` cannot be used from a static context")
		return typing.Error
	}

	return w.class.Super.ClassType()
}

// walkIndex checks an array element access.
func (w *Walker) walkIndex(ie *ast.IndexExpr) typing.Type {
	xt := w.walkExpr(ie.X)
	w.checkIndex(ie.Index)

	switch v := xt.(type) {
	case *typing.ArrayType:
		return typing.ElemType(v)
	case typing.ErrorType:
	default:
		w.errs.Add(logging.InvalidOperation, ie.X.Position(), "cannot index a value of type `%s`", xt.Repr())
	}

	return typing.Error
}

// checkIndex checks an array index.  Chars are promoted to ints.
func (w *Walker) checkIndex(index ast.Expr) {
	it := w.walkExpr(index)
	if !typing.IsAssignableFrom(typing.Int, it) {
		w.errs.Add(logging.ArrayIndexType, index.Position(), "array index must be an `int`, not `%s`", it.Repr())
	}
}

// walkTernary checks a conditional expression.  Variables are initialized
// after it only if both branches initialize them.
func (w *Walker) walkTernary(te *ast.TernaryExpr) typing.Type {
	w.walkCondition(te.Cond)

	incoming := w.live

	w.live = incoming.Copy()
	thenType := w.walkExpr(te.Then)
	thenOut := w.live

	w.live = incoming.Copy()
	elseType := w.walkExpr(te.Else)
	elseOut := w.live

	w.live = w.joinBranches(incoming, []cflow.VarSet{thenOut, elseOut}, []bool{true, true})

	if typing.IsError(thenType) || typing.IsError(elseType) {
		return typing.Error
	}

	result := typing.CommonSupertype(thenType, elseType)
	if typing.IsError(result) {
		w.errs.Add(
			logging.TypeMismatch,
			te.Position(),
			"branches of a conditional have incompatible types `%s` and `%s`",
			thenType.Repr(),
			elseType.Repr(),
		)
	}

	return result
}

// -----------------------------------------------------------------------------

// walkNewArray checks an array construction.
func (w *Walker) walkNewArray(na *ast.NewArrayExpr) typing.Type {
	for _, dim := range na.Dims {
		dt := w.walkExpr(dim)
		if dt != typing.Int && !typing.IsError(dt) {
			w.errs.Add(logging.ArrayIndexType, dim.Position(), "array dimension must be an `int`, not `%s`", dt.Repr())
		}
	}

	elemType := resolve.ResolveTypeRef(w.table.Global, w.errs, na.Elem)
	if typing.IsVoid(elemType) {
		w.errs.Add(logging.TypeMismatch, na.Elem.Position(), "cannot create an array of `void`")
		elemType = typing.Error
	}

	arrType := typing.NewArrayType(elemType, len(na.Dims)+na.ExtraDims)

	if na.Init != nil {
		if len(na.Dims) > 0 {
			w.errs.Add(
				logging.InvalidOperation,
				na.Init.Position(),
				"an array initializer cannot be combined with dimension sizes",
			)
		}

		w.setType(na.Init, w.walkArrayLit(na.Init, arrType))
	}

	return arrType
}

// walkArrayLit checks an array literal.  When the expected array type is
// known, each element is checked against its element type; otherwise the
// literal takes the type of its first element.  The remaining elements must
// be assignable to the type of the first.
func (w *Walker) walkArrayLit(al *ast.ArrayLit, expected typing.Type) typing.Type {
	var elemExpected typing.Type
	if expected != nil {
		switch v := expected.(type) {
		case *typing.ArrayType:
			elemExpected = typing.ElemType(v)
		case typing.ErrorType:
			elemExpected = typing.Error
		default:
			w.errs.Add(
				logging.TypeMismatch,
				al.Position(),
				"an array initializer cannot initialize a value of type `%s`",
				expected.Repr(),
			)
			elemExpected = typing.Error
		}
	}

	var first typing.Type
	for _, elem := range al.Elems {
		var et typing.Type
		if nested, ok := elem.(*ast.ArrayLit); ok {
			et = w.setType(nested, w.walkArrayLit(nested, elemExpected))
		} else {
			et = w.walkExpr(elem)
		}

		if first == nil {
			first = et
		} else if !typing.IsAssignableFrom(first, et) {
			w.errs.Add(
				logging.TypeMismatch,
				elem.Position(),
				"array element of type `%s` is not compatible with the first element's type `%s`",
				et.Repr(),
				first.Repr(),
			)
			continue
		}

		if elemExpected != nil {
			w.checkAssignable(elemExpected, et, elem.Position())
		}
	}

	if expected != nil {
		if elemExpected == typing.Error {
			return typing.Error
		}

		return expected
	}

	if first == nil {
		w.errs.Add(logging.InvalidOperation, al.Position(), "cannot infer the type of an empty array initializer")
		return typing.Error
	}

	return typing.NewArrayType(first, 1)
}
