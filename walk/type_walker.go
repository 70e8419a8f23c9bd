package walk

import (
	"mocha/ast"
	"mocha/logging"
	"mocha/resolve"
	"mocha/typing"
)

// walkCast checks an explicit cast.
func (w *Walker) walkCast(ce *ast.CastExpr) typing.Type {
	from := w.walkExpr(ce.X)
	to := resolve.ResolveTypeRef(w.table.Global, w.errs, ce.Type)

	if typing.IsVoid(to) {
		w.errs.Add(logging.InvalidCast, ce.Position(), "cannot cast to `void`")
		return typing.Error
	}

	if !typing.CanCast(from, to) {
		w.errs.Add(logging.InvalidCast, ce.Position(), "cannot cast `%s` to `%s`", from.Repr(), to.Repr())
		return typing.Error
	}

	return to
}

// walkInstanceOf checks an `instanceof` test.  The value must be a reference
// and the type must name a class it could be an instance of.
func (w *Walker) walkInstanceOf(ie *ast.InstanceOfExpr) typing.Type {
	xt := w.walkExpr(ie.X)
	target := resolve.ResolveTypeRef(w.table.Global, w.errs, ie.Type)

	if typing.IsError(xt) || typing.IsError(target) {
		return typing.Boolean
	}

	if !typing.IsReference(xt) {
		w.errs.Add(
			logging.TypeMismatch,
			ie.X.Position(),
			"left side of `instanceof` must be a reference, not `%s`",
			xt.Repr(),
		)
		return typing.Boolean
	}

	if _, ok := target.(*typing.ClassType); !ok {
		w.errs.Add(logging.TypeMismatch, ie.Type.Position(), "right side of `instanceof` must name a class, not `%s`", target.Repr())
		return typing.Boolean
	}

	if !typing.CanCast(xt, target) {
		w.errs.Add(
			logging.InvalidCast,
			ie.Position(),
			"a value of type `%s` can never be an instance of `%s`",
			xt.Repr(),
			target.Repr(),
		)
	}

	return typing.Boolean
}
