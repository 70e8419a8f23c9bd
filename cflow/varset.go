package cflow

import "mocha/sem"

// VarSet is a set of variables used for definite-initialization analysis.
// The zero value is not usable: create sets with NewVarSet.
type VarSet map[*sem.VariableSymbol]struct{}

// NewVarSet creates a set holding the given variables.
func NewVarSet(vars ...*sem.VariableSymbol) VarSet {
	vs := make(VarSet, len(vars))
	for _, v := range vars {
		vs[v] = struct{}{}
	}

	return vs
}

// Add adds a variable to the set.
func (vs VarSet) Add(v *sem.VariableSymbol) {
	vs[v] = struct{}{}
}

// Has reports whether the variable is in the set.
func (vs VarSet) Has(v *sem.VariableSymbol) bool {
	_, ok := vs[v]
	return ok
}

// Copy returns an independent copy of the set.
func (vs VarSet) Copy() VarSet {
	c := make(VarSet, len(vs))
	for v := range vs {
		c[v] = struct{}{}
	}

	return c
}

// Intersect returns the variables in both sets.
func Intersect(a, b VarSet) VarSet {
	res := make(VarSet)
	for v := range a {
		if b.Has(v) {
			res[v] = struct{}{}
		}
	}

	return res
}

// Union returns the variables in either set.
func Union(a, b VarSet) VarSet {
	res := a.Copy()
	for v := range b {
		res[v] = struct{}{}
	}

	return res
}

// Minus returns the variables of `a` that are not in `b`.
func Minus(a, b VarSet) VarSet {
	res := make(VarSet)
	for v := range a {
		if !b.Has(v) {
			res[v] = struct{}{}
		}
	}

	return res
}

// Merge joins the sets leaving the two branches of a conditional.  Variables
// initialized on both branches are definitely initialized; those initialized
// on only one are possibly initialized.
func Merge(then, els VarSet) (definite, possible VarSet) {
	definite = Intersect(then, els)
	possible = Minus(Union(then, els), definite)
	return
}
