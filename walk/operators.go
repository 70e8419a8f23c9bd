package walk

import (
	"mocha/ast"
	"mocha/cflow"
	"mocha/logging"
	"mocha/sem"
	"mocha/typing"
)

// walkBinary checks a binary operator application.
func (w *Walker) walkBinary(be *ast.BinaryExpr) typing.Type {
	lt := w.walkExpr(be.L)

	var rt typing.Type
	if be.Op.IsLogical() {
		// the right operand of `&&` and `||` may not be evaluated
		incoming := w.live
		w.live = incoming.Copy()
		rt = w.walkExpr(be.R)
		w.possible = cflow.Union(w.possible, cflow.Minus(w.live, incoming))
		w.live = incoming
	} else {
		rt = w.walkExpr(be.R)
	}

	result := typing.ResultOfBinaryOp(lt, rt, be.Op)
	if typing.IsError(result) && !typing.IsError(lt) && !typing.IsError(rt) {
		w.errs.Add(
			logging.InvalidOperation,
			be.Position(),
			"operator `%s` cannot be applied to `%s` and `%s`",
			be.Op,
			lt.Repr(),
			rt.Repr(),
		)
	}

	return result
}

// walkUnary checks a unary operator application.
func (w *Walker) walkUnary(ue *ast.UnaryExpr) typing.Type {
	if ue.Op == ast.OpInc || ue.Op == ast.OpDec {
		return w.walkIncDec(ue)
	}

	operand := w.walkExpr(ue.X)

	result := typing.ResultOfUnaryOp(ue.Op, operand)
	if typing.IsError(result) && !typing.IsError(operand) {
		w.errs.Add(
			logging.InvalidOperation,
			ue.Position(),
			"operator `%s` cannot be applied to `%s`",
			ue.Op,
			operand.Repr(),
		)
	}

	return result
}

// walkIncDec checks `++` and `--` which both read and write their operand.
func (w *Walker) walkIncDec(ue *ast.UnaryExpr) typing.Type {
	target, ok := w.walkTarget(ue.X)
	if !ok {
		return typing.Error
	}

	if target.vs != nil {
		w.readVar(target.vs, ue.X.Position())
	}

	result := typing.ResultOfUnaryOp(ue.Op, target.typ)
	if typing.IsError(result) {
		if !typing.IsError(target.typ) {
			w.errs.Add(
				logging.InvalidOperation,
				ue.Position(),
				"operator `%s` cannot be applied to `%s`",
				ue.Op,
				target.typ.Repr(),
			)
		}

		return typing.Error
	}

	if target.vs != nil {
		w.assignVar(target.vs, target.viaThis, ue.Position())
	}

	return result
}

// walkAssign checks a plain or compound assignment.
func (w *Walker) walkAssign(ae *ast.AssignExpr) typing.Type {
	target, ok := w.walkTarget(ae.Target)

	var valueType typing.Type
	if al, isLit := ae.Value.(*ast.ArrayLit); isLit && ok {
		valueType = w.setType(al, w.walkArrayLit(al, target.typ))
	} else {
		valueType = w.walkExpr(ae.Value)
	}

	if !ok {
		return typing.Error
	}

	if ae.Op == ast.OpAssign {
		w.checkAssignable(target.typ, valueType, ae.Value.Position())
	} else {
		if target.vs != nil {
			w.readVar(target.vs, ae.Target.Position())
		}

		w.checkCompoundAssign(ae, target.typ, valueType)
	}

	if target.vs != nil {
		w.assignVar(target.vs, target.viaThis, ae.Position())
	}

	return target.typ
}

// checkCompoundAssign checks the operands of a compound assignment: the target
// must be numeric except for `+=` on strings.
func (w *Walker) checkCompoundAssign(ae *ast.AssignExpr, targetType, valueType typing.Type) {
	if typing.IsError(targetType) || typing.IsError(valueType) {
		return
	}

	if ae.Op == ast.OpAdd && targetType == typing.String {
		if typing.IsVoid(valueType) {
			w.errs.Add(logging.TypeMismatch, ae.Value.Position(), "cannot append a `void` value to a string")
		}

		return
	}

	if !typing.IsNumeric(targetType) {
		w.errs.Add(
			logging.TypeMismatch,
			ae.Target.Position(),
			"compound assignment `%s=` requires a numeric target, not `%s`",
			ae.Op,
			targetType.Repr(),
		)
		return
	}

	if !typing.IsNumeric(valueType) {
		w.errs.Add(
			logging.TypeMismatch,
			ae.Value.Position(),
			"compound assignment `%s=` requires a numeric value, not `%s`",
			ae.Op,
			valueType.Repr(),
		)
	}
}

// -----------------------------------------------------------------------------

// assignTarget is a checked assignment target.  vs is nil for array elements.
type assignTarget struct {
	typ     typing.Type
	vs      *sem.VariableSymbol
	viaThis bool
}

// walkTarget checks an expression used as the target of an assignment.  Only
// variables, fields and array elements can be assigned: the target is not
// read.
func (w *Walker) walkTarget(expr ast.Expr) (assignTarget, bool) {
	switch v := expr.(type) {
	case *ast.Ident:
		vs, ok := w.identVar(v)
		if !ok {
			w.setType(v, typing.Error)
			return assignTarget{}, false
		}

		w.setType(v, vs.Type)
		return assignTarget{typ: vs.Type, vs: vs, viaThis: true}, true
	case *ast.FieldAccess:
		fr := w.resolveFieldAccess(v)
		w.setType(v, fr.typ)

		if fr.vs == nil {
			if !typing.IsError(fr.typ) {
				w.errs.Add(logging.InvalidOperation, v.Position(), "cannot assign to `%s`", v.Name)
			}

			return assignTarget{}, false
		}

		return assignTarget{typ: fr.typ, vs: fr.vs, viaThis: fr.viaThis}, true
	case *ast.IndexExpr:
		return assignTarget{typ: w.walkExpr(v)}, true
	case *ast.ThisExpr:
		w.walkExpr(v)
		w.errs.Add(logging.InvalidOperation, v.Position(), "cannot assign to `this`")
		return assignTarget{}, false
	default:
		if !typing.IsError(w.walkExpr(expr)) {
			w.errs.Add(logging.InvalidOperation, expr.Position(), "expression cannot be assigned to")
		}

		return assignTarget{}, false
	}
}
