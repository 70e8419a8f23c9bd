package walk

import (
	"strings"

	"mocha/logging"
	"mocha/sem"
)

// lookupName resolves a bare name from the current scope outwards.  Class
// scopes are searched through the class so inherited fields are found.
// Locals whose declaration has not been walked yet are skipped.
func (w *Walker) lookupName(name string) (sem.Symbol, bool) {
	for scope := w.scope; scope != nil; scope = scope.Parent {
		if scope.Kind == sem.ClassScope && scope.EnclosingClass != nil {
			if field, ok := scope.EnclosingClass.LookupField(name); ok {
				return field, true
			}

			continue
		}

		sym, ok := scope.LookupLocal(name)
		if !ok {
			continue
		}

		if vs, ok := sym.(*sem.VariableSymbol); ok && vs.Kind == sem.LocalVar && !w.declared.Has(vs) {
			continue
		}

		return sym, true
	}

	return nil, false
}

// checkMemberAccess reports a private member used outside of its class.
func (w *Walker) checkMemberAccess(owner *sem.ClassSymbol, vis sem.Visibility, what, name string, pos *logging.TextPosition) bool {
	if vis != sem.Private || owner == nil || owner == w.class {
		return true
	}

	w.errs.Add(
		logging.VisibilityViolation,
		pos,
		"%s `%s` of `%s` is private",
		what,
		name,
		owner.Name,
	)
	return false
}

// inConstructorOf reports whether the walker is inside a constructor of the
// given class.
func (w *Walker) inConstructorOf(cs *sem.ClassSymbol) bool {
	ctor, ok := w.callable.(*sem.ConstructorSymbol)
	return ok && ctor.Owner == cs
}

// joinSignatures renders a list of signatures for a suggestion.
func joinSignatures(sigs []string) string {
	quoted := make([]string, len(sigs))
	for i, sig := range sigs {
		quoted[i] = "`" + sig + "`"
	}

	return strings.Join(quoted, ", ")
}
