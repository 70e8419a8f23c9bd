package walk

import (
	"mocha/ast"
	"mocha/logging"
	"mocha/sem"
	"mocha/typing"
)

// checkClassMembers checks the rules governing the methods of a class: the
// abstract qualifier, overriding and the implementation of inherited
// abstract methods.
func (w *Walker) checkClassMembers(cd *ast.ClassDecl, cs *sem.ClassSymbol) {
	for _, md := range cd.Methods {
		sym, ok := w.table.SymbolOf(md)
		if !ok {
			continue
		}

		ms := sym.(*sem.MethodSymbol)
		w.checkAbstractQualifier(cs, md, ms)
		w.checkOverride(cs, md, ms)
	}

	if !cs.Abstract {
		w.checkAbstractImplemented(cd, cs)
	}
}

// checkAbstractQualifier checks the use of `abstract` on a method.
func (w *Walker) checkAbstractQualifier(cs *sem.ClassSymbol, md *ast.MethodDecl, ms *sem.MethodSymbol) {
	if !ms.Abstract {
		if md.Body == nil {
			w.errs.Add(logging.InvalidOperation, md.Position(), "method `%s` must have a body", ms.Signature().Repr()).
				Suggest("mark `%s` abstract or give it a body", ms.Name)
		}

		return
	}

	if !cs.Abstract {
		w.errs.Add(
			logging.InvalidOperation,
			md.Position(),
			"abstract method `%s` declared in non-abstract class `%s`",
			ms.Signature().Repr(),
			cs.Name,
		)
	}

	if md.Body != nil {
		w.errs.Add(logging.InvalidOperation, md.Position(), "abstract method `%s` cannot have a body", ms.Signature().Repr())
	}

	if ms.Final || ms.Static {
		w.errs.Add(
			logging.InvalidOperation,
			md.Position(),
			"abstract method `%s` cannot be final or static",
			ms.Signature().Repr(),
		)
	}
}

// checkOverride checks a method against the superclass method it overrides.
// Private superclass methods are never overridden.
func (w *Walker) checkOverride(cs *sem.ClassSymbol, md *ast.MethodDecl, ms *sem.MethodSymbol) {
	if overridden, ok := cs.FindOverridden(ms); ok && overridden.Visibility != sem.Private {
		if problem := sem.CanOverride(ms, overridden); problem != sem.OverrideOK {
			w.errs.Add(
				logging.InvalidOverride,
				md.Position(),
				"`%s.%s` cannot override `%s.%s`: %s",
				cs.Name,
				ms.Signature().Repr(),
				overridden.Owner.Name,
				overridden.Signature().Repr(),
				problem,
			)
		}

		return
	}

	if ms.Override {
		w.errs.Add(
			logging.InvalidOverride,
			md.Position(),
			"method `%s` is marked as overriding but overrides nothing",
			ms.Signature().Repr(),
		)
		return
	}

	// same name with a different parameter list is an unrelated overload
	if w.opts.WarnHiddenOverloads && cs.Super != nil {
		if inherited := cs.Super.LookupMethods(ms.Name); len(inherited) > 0 {
			w.errs.Warn(
				logging.InvalidOverride,
				md.Position(),
				"`%s.%s` overloads but does not override `%s`",
				cs.Name,
				ms.Signature().Repr(),
				ms.Name,
			).Suggest("inherited overloads are %s", joinSignatures(sem.Signatures(inherited)))
		}
	}
}

// checkAbstractImplemented reports the inherited abstract methods a concrete
// class does not implement.
func (w *Walker) checkAbstractImplemented(cd *ast.ClassDecl, cs *sem.ClassSymbol) {
	if cs.Super == nil {
		return
	}

	for _, c := range cs.Super.Chain() {
		if c == cs {
			break
		}

		for _, am := range c.AllOwnMethods() {
			if !am.Abstract {
				continue
			}

			// an abstract method redeclared further down is reported there
			if implementationOf(cs, am) == am {
				w.errs.Add(
					logging.InvalidOperation,
					cd.Position(),
					"class `%s` must implement abstract method `%s.%s`",
					cs.Name,
					c.Name,
					am.Signature().Repr(),
				)
			}
		}
	}
}

// implementationOf returns the nearest method visible on a class with the
// same parameter types as `am`: `am` itself if nothing implements it.
func implementationOf(cs *sem.ClassSymbol, am *sem.MethodSymbol) *sem.MethodSymbol {
	for _, m := range cs.LookupMethods(am.Name) {
		if typing.EqualTypeLists(m.Signature().ParamTypes, am.Signature().ParamTypes) {
			return m
		}
	}

	return nil
}
