package walk

import (
	"mocha/logging"
	"mocha/sem"
)

// Definite Initialization
// -----------------------
// Locals and blank finals (final fields and globals declared without an
// initializer) are tracked: they must be assigned before they are read.  Other
// fields and globals are initialized to their default value and parameters
// are initialized by the caller.
//
// A blank final field is tracked through the live set while walking the
// constructors of its class.  Everywhere else it counts as initialized when
// some constructor assigns it.

// isTracked reports whether a read of the variable requires it to be in the
// live set.
func (w *Walker) isTracked(vs *sem.VariableSymbol) bool {
	switch vs.Kind {
	case sem.LocalVar:
		return true
	case sem.FieldVar:
		if !isBlankFinal(vs) {
			return false
		}

		if !vs.Static && w.inConstructorOf(vs.Owner) {
			return true
		}

		return !w.ctorAssigned.Has(vs)
	case sem.GlobalVar:
		return isBlankFinal(vs)
	default:
		return false
	}
}

// readVar checks that a variable is initialized before it is read.
func (w *Walker) readVar(vs *sem.VariableSymbol, pos *logging.TextPosition) {
	if !w.isTracked(vs) || w.live.Has(vs) || w.reported.Has(vs) {
		return
	}

	w.reported.Add(vs)

	if w.possible.Has(vs) {
		w.errs.Add(
			logging.UninitializedVariable,
			pos,
			"variable `%s` might not have been initialized",
			vs.Name,
		).Suggest("assign `%s` on every path before this point", vs.Name)
	} else {
		w.errs.Add(logging.UninitializedVariable, pos, "variable `%s` is used before it is initialized", vs.Name)
	}
}

// assignVar records an assignment to a variable.  `viaThis` indicates that the
// variable is a bare name or is accessed through `this`.
func (w *Walker) assignVar(vs *sem.VariableSymbol, viaThis bool, pos *logging.TextPosition) {
	if vs.Kind == sem.ThisVar {
		w.errs.Add(logging.InvalidOperation, pos, "cannot assign to `this`")
		return
	}

	if !vs.Final {
		w.live.Add(vs)
		return
	}

	switch vs.Kind {
	case sem.ParamVar:
		w.reportFinalReassignment(vs, pos)
		return
	case sem.FieldVar:
		if vs.Initialized || vs.Static || !viaThis || !w.inConstructorOf(vs.Owner) {
			w.reportFinalReassignment(vs, pos)
			return
		}
	case sem.GlobalVar:
		if vs.Initialized {
			w.reportFinalReassignment(vs, pos)
			return
		}
	}

	if w.live.Has(vs) || w.possible.Has(vs) {
		w.reportFinalReassignment(vs, pos)
		return
	}

	w.live.Add(vs)
}

func (w *Walker) reportFinalReassignment(vs *sem.VariableSymbol, pos *logging.TextPosition) {
	cm := w.errs.Add(logging.FinalReassignment, pos, "cannot assign to final variable `%s`", vs.Name)

	if vs.Kind == sem.FieldVar && !vs.Initialized && !vs.Static {
		cm.Suggest("final fields without an initializer can only be assigned once in a constructor")
	}
}
