package walk

import (
	"fmt"

	"mocha/ast"
	"mocha/logging"
	"mocha/sem"
	"mocha/typing"
)

// receiver is a checked receiver of a member access.  class is set when the
// receiver names a class rather than denoting a value: only static members
// can be accessed through it.
type receiver struct {
	typ     typing.Type
	class   *sem.ClassSymbol
	isSuper bool
}

// walkReceiver checks the receiver of a field access or method call.
func (w *Walker) walkReceiver(expr ast.Expr) receiver {
	switch v := expr.(type) {
	case *ast.Ident:
		if sym, ok := w.lookupName(v.Name); ok {
			if cs, ok := sym.(*sem.ClassSymbol); ok {
				return receiver{typ: w.setType(v, cs.ClassType()), class: cs}
			}
		}
	case *ast.SuperExpr:
		return receiver{typ: w.setType(v, w.walkSuper(v)), isSuper: true}
	}

	return receiver{typ: w.walkExpr(expr)}
}

// receiverClass returns the class whose members a receiver exposes.  It
// reports receivers that are not class instances.
func (w *Walker) receiverClass(recv receiver, pos *logging.TextPosition, what string) (*sem.ClassSymbol, bool) {
	if recv.class != nil {
		return recv.class, true
	}

	switch v := recv.typ.(type) {
	case *typing.ClassType:
		if cs, ok := v.Class.(*sem.ClassSymbol); ok {
			return cs, true
		}

		w.internalError(pos, "class type `%s` has no class symbol", v.Name)
	case typing.ErrorType:
	default:
		w.errs.Add(logging.InvalidOperation, pos, "cannot access a %s of a value of type `%s`", what, recv.typ.Repr())
	}

	return nil, false
}

// fieldRef is a resolved field access.  vs is nil when the access does not
// denote a variable: the length of an array or an erroneous access.
type fieldRef struct {
	typ     typing.Type
	vs      *sem.VariableSymbol
	viaThis bool
}

// resolveFieldAccess resolves the field a field access denotes.
func (w *Walker) resolveFieldAccess(fa *ast.FieldAccess) fieldRef {
	recv := w.walkReceiver(fa.X)

	if at, ok := recv.typ.(*typing.ArrayType); ok && recv.class == nil {
		if fa.Name == "length" {
			return fieldRef{typ: typing.Int}
		}

		w.errs.Add(logging.UndefinedField, fa.Position(), "arrays of type `%s` have no field `%s`", at.Repr(), fa.Name)
		return fieldRef{typ: typing.Error}
	}

	cs, ok := w.receiverClass(recv, fa.X.Position(), "field")
	if !ok {
		return fieldRef{typ: typing.Error}
	}

	field, ok := cs.LookupField(fa.Name)
	if !ok {
		w.errs.Add(logging.UndefinedField, fa.Position(), "class `%s` has no field `%s`", cs.Name, fa.Name)
		return fieldRef{typ: typing.Error}
	}

	if !w.checkMemberAccess(field.Owner, field.Visibility, "field", field.Name, fa.Position()) {
		return fieldRef{typ: typing.Error}
	}

	if recv.class != nil && !field.Static {
		w.errs.Add(
			logging.StaticContextError,
			fa.Position(),
			"instance field `%s` cannot be accessed through class `%s`",
			field.Name,
			cs.Name,
		)
		return fieldRef{typ: typing.Error}
	}

	_, viaThis := fa.X.(*ast.ThisExpr)
	return fieldRef{typ: field.Type, vs: field, viaThis: viaThis}
}

// walkFieldAccess checks a field access used as a value.
func (w *Walker) walkFieldAccess(fa *ast.FieldAccess) typing.Type {
	fr := w.resolveFieldAccess(fa)

	if fr.vs != nil && (fr.viaThis || fr.vs.Static) {
		w.readVar(fr.vs, fa.Position())
	}

	return fr.typ
}

// -----------------------------------------------------------------------------

// walkArgs checks the arguments of a call and returns their types.
func (w *Walker) walkArgs(args []ast.Expr) []typing.Type {
	argTypes := make([]typing.Type, len(args))
	for i, arg := range args {
		argTypes[i] = w.walkExpr(arg)
	}

	return argTypes
}

// walkMethodCall checks a function or method call.
func (w *Walker) walkMethodCall(mc *ast.MethodCall) typing.Type {
	if mc.Recv == nil {
		return w.walkUnqualifiedCall(mc)
	}

	recv := w.walkReceiver(mc.Recv)
	argTypes := w.walkArgs(mc.Args)

	cs, ok := w.receiverClass(recv, mc.Recv.Position(), "method")
	if !ok {
		return typing.Error
	}

	methods := cs.LookupMethods(mc.Name)
	if len(methods) == 0 {
		w.errs.Add(logging.UndefinedMethod, mc.Position(), "class `%s` has no method `%s`", cs.Name, mc.Name)
		return typing.Error
	}

	best, ok := w.selectCallable(toCallables(methods), argTypes, mc.Name, logging.UndefinedMethod, "method", mc.Position())
	if !ok {
		return typing.Error
	}

	ms := best.(*sem.MethodSymbol)
	if !w.checkMemberAccess(ms.Owner, ms.Visibility, "method", ms.Name, mc.Position()) {
		return typing.Error
	}

	if recv.class != nil && !ms.Static {
		w.errs.Add(
			logging.StaticContextError,
			mc.Position(),
			"instance method `%s` cannot be called through class `%s`",
			ms.Signature().Repr(),
			cs.Name,
		)
		return typing.Error
	}

	if recv.isSuper && ms.Abstract {
		w.errs.Add(logging.InvalidOperation, mc.Position(), "cannot call abstract method `%s` through `super`", ms.Signature().Repr())
	}

	return ms.ReturnType
}

// walkUnqualifiedCall checks a call with no receiver.  The methods of the
// enclosing class are searched before the global functions.
func (w *Walker) walkUnqualifiedCall(mc *ast.MethodCall) typing.Type {
	argTypes := w.walkArgs(mc.Args)

	if w.class != nil {
		if methods := w.class.LookupMethods(mc.Name); len(methods) > 0 {
			best, ok := w.selectCallable(toCallables(methods), argTypes, mc.Name, logging.UndefinedMethod, "method", mc.Position())
			if !ok {
				return typing.Error
			}

			ms := best.(*sem.MethodSymbol)
			if !w.checkMemberAccess(ms.Owner, ms.Visibility, "method", ms.Name, mc.Position()) {
				return typing.Error
			}

			if !ms.Static && w.static {
				w.errs.Add(
					logging.StaticContextError,
					mc.Position(),
					"instance method `%s` cannot be called from a static context",
					ms.Signature().Repr(),
				)
				return typing.Error
			}

			return ms.ReturnType
		}
	}

	funcs := w.table.Global.LookupOverloads(mc.Name)
	if len(funcs) == 0 {
		w.errs.Add(logging.UndefinedFunction, mc.Position(), "undefined function `%s`", mc.Name)
		return typing.Error
	}

	best, ok := w.selectCallable(funcs, argTypes, mc.Name, logging.UndefinedFunction, "function", mc.Position())
	if !ok {
		return typing.Error
	}

	fs, ok := best.(*sem.FunctionSymbol)
	if !ok {
		w.internalError(mc.Position(), "global overload `%s` is not a function", mc.Name)
		return typing.Error
	}

	return fs.ReturnType
}

// -----------------------------------------------------------------------------

// walkNew checks an object construction.
func (w *Walker) walkNew(ne *ast.NewExpr) typing.Type {
	argTypes := w.walkArgs(ne.Args)

	sym, ok := w.table.Global.LookupLocal(ne.Class)
	if !ok {
		w.errs.Add(logging.UndefinedClass, ne.Position(), "undefined class `%s`", ne.Class)
		return typing.Error
	}

	cs, ok := sym.(*sem.ClassSymbol)
	if !ok {
		w.errs.Add(logging.TypeMismatch, ne.Position(), "`%s` is not a class", ne.Class)
		return typing.Error
	}

	if cs.Abstract {
		w.errs.Add(logging.ConstructorError, ne.Position(), "cannot instantiate abstract class `%s`", cs.Name)
	}

	w.resolveConstructor(cs, argTypes, ne.Position())
	return cs.ClassType()
}

// walkCtorCall checks an explicit `this(...)` or `super(...)` invocation.
func (w *Walker) walkCtorCall(cc *ast.CtorCallStmt) {
	what := "this"
	if cc.Super {
		what = "super"
	}

	// the arguments are evaluated before the instance exists
	static := w.static
	w.static = true
	argTypes := w.walkArgs(cc.Args)
	w.static = static

	ctor, inCtor := w.callable.(*sem.ConstructorSymbol)
	if !inCtor || w.firstCtorStmt != ast.Stmt(cc) {
		w.errs.Add(
			logging.ConstructorError,
			cc.Position(),
			"`%s(...)` can only be the first statement of a constructor",
			what,
		)

		if !inCtor {
			return
		}
	}

	target := ctor.Owner
	if cc.Super {
		if target.Super == nil {
			w.errs.Add(logging.InvalidSuper, cc.Position(), "class `%s` has no superclass", target.Name)
			return
		}

		target = target.Super
	}

	called, ok := w.resolveConstructor(target, argTypes, cc.Position())
	if !ok {
		return
	}

	// a delegating constructor inherits the assignments of the one it calls
	if !cc.Super {
		if called != nil && w.firstCtorStmt == ast.Stmt(cc) {
			w.delegations[ctor] = delegation{target: called, pos: cc.Position()}
		}

		for _, sym := range ctor.Owner.Members.Symbols() {
			if vs, ok := sym.(*sem.VariableSymbol); ok && w.ctorAssigned.Has(vs) {
				w.live.Add(vs)
			}
		}
	}
}

// resolveConstructor selects the constructor of a class matching an argument
// list.  It returns nil for a class that only has the implicit default
// constructor.
func (w *Walker) resolveConstructor(cs *sem.ClassSymbol, argTypes []typing.Type, pos *logging.TextPosition) (*sem.ConstructorSymbol, bool) {
	ctors := cs.Constructors()

	if len(ctors) == 0 {
		if len(argTypes) > 0 && !anyError(argTypes) {
			w.errs.Add(
				logging.UndefinedConstructor,
				pos,
				"no constructor matches `%s(%s)`",
				cs.Name,
				typing.ReprTypeList(argTypes),
			).Suggest("class `%s` only has the default constructor taking no arguments", cs.Name)
		}

		return nil, len(argTypes) == 0
	}

	best, ok := w.selectCallable(toCallables(ctors), argTypes, cs.Name, logging.UndefinedConstructor, "constructor", pos)
	if !ok {
		return nil, false
	}

	ctor := best.(*sem.ConstructorSymbol)
	if ctor.Visibility == sem.Private && ctor.Owner != w.class {
		w.errs.Add(logging.AccessViolation, pos, "constructor `%s` of `%s` is private", ctor.Signature().Repr(), cs.Name)
		return nil, false
	}

	return ctor, true
}

// -----------------------------------------------------------------------------

// selectCallable selects the overload matching an argument list.  Failures
// are not reported when an argument is already in error.
func (w *Walker) selectCallable(
	candidates []sem.Callable,
	argTypes []typing.Type,
	name string,
	kind logging.ErrorKind,
	what string,
	pos *logging.TextPosition,
) (sem.Callable, bool) {
	best, ties := sem.SelectOverload(candidates, argTypes)
	attempted := fmt.Sprintf("%s(%s)", name, typing.ReprTypeList(argTypes))

	if best == nil {
		if !anyError(argTypes) {
			w.errs.Add(
				kind,
				pos,
				"no %s matches `%s`",
				what,
				attempted,
			).Suggest("candidates are %s", joinSignatures(sem.Signatures(candidates)))
		}

		return nil, false
	}

	if len(ties) > 0 && w.opts.StrictOverloads && !anyError(argTypes) {
		w.errs.Add(
			logging.AmbiguousCall,
			pos,
			"call to `%s` is ambiguous",
			attempted,
		).Suggest("%s matches as well as %s", joinSignatures(sem.Signatures(ties)), joinSignatures([]string{best.Signature().Repr()}))
	}

	return best, true
}

// toCallables widens a list of overloads.
func toCallables[C sem.Callable](candidates []C) []sem.Callable {
	callables := make([]sem.Callable, len(candidates))
	for i, c := range candidates {
		callables[i] = c
	}

	return callables
}

// anyError reports whether any of the types is the error type.
func anyError(types []typing.Type) bool {
	for _, t := range types {
		if typing.IsError(t) {
			return true
		}
	}

	return false
}
