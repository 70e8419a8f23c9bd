package sem

import "mocha/typing"

// ClassSymbol represents a declared class.  It implements typing.ClassInfo so
// class types can walk the superclass chain.
type ClassSymbol struct {
	SymbolBase

	// Super is a non-owning reference to the superclass.  It is nil if the
	// class extends nothing or its declared superclass could not be attached.
	Super *ClassSymbol

	// Interfaces are recorded by name only.
	Interfaces []string

	Abstract   bool
	Final      bool
	Visibility Visibility

	// Members is the class scope.  It holds fields, method overloads,
	// constructors and the implicit `this`.
	Members *Scope
}

// NewClassSymbol creates a class symbol with its self-referential class type.
func NewClassSymbol(name string) *ClassSymbol {
	cs := &ClassSymbol{SymbolBase: SymbolBase{Name: name}}

	// the backing link is set once, right after the type is built
	ct := &typing.ClassType{Name: name}
	ct.Class = cs
	cs.Type = ct

	return cs
}

func (cs *ClassSymbol) ClassName() string {
	return cs.Name
}

func (cs *ClassSymbol) SuperInfo() typing.ClassInfo {
	// avoid returning a typed nil
	if cs.Super == nil {
		return nil
	}

	return cs.Super
}

// ClassType returns the type of instances of the class.
func (cs *ClassSymbol) ClassType() *typing.ClassType {
	return cs.Type.(*typing.ClassType)
}

// Chain returns the class followed by its superclasses, nearest first.  The
// walk stops if it ever revisits a class.
func (cs *ClassSymbol) Chain() []*ClassSymbol {
	var chain []*ClassSymbol
	visited := make(map[*ClassSymbol]struct{})

	for c := cs; c != nil; c = c.Super {
		if _, ok := visited[c]; ok {
			break
		}

		visited[c] = struct{}{}
		chain = append(chain, c)
	}

	return chain
}

// IsSubclassOf reports whether the class is `other` or transitively extends
// it.
func (cs *ClassSymbol) IsSubclassOf(other *ClassSymbol) bool {
	for _, c := range cs.Chain() {
		if c == other {
			return true
		}
	}

	return false
}

// Constructors returns the declared constructors of the class.
func (cs *ClassSymbol) Constructors() []*ConstructorSymbol {
	if cs.Members == nil {
		return nil
	}

	return cs.Members.ctors
}

// OwnMethods returns the methods with a given name declared directly in the
// class.
func (cs *ClassSymbol) OwnMethods(name string) []*MethodSymbol {
	if cs.Members == nil {
		return nil
	}

	var methods []*MethodSymbol
	for _, c := range cs.Members.overloads[name] {
		if ms, ok := c.(*MethodSymbol); ok {
			methods = append(methods, ms)
		}
	}

	return methods
}

// AllOwnMethods returns every method declared directly in the class in
// declaration order.
func (cs *ClassSymbol) AllOwnMethods() []*MethodSymbol {
	if cs.Members == nil {
		return nil
	}

	var methods []*MethodSymbol
	for _, sym := range cs.Members.ordered {
		if ms, ok := sym.(*MethodSymbol); ok {
			methods = append(methods, ms)
		}
	}

	return methods
}

// LookupField looks up a field in the class and then up its superclass chain.
func (cs *ClassSymbol) LookupField(name string) (*VariableSymbol, bool) {
	for _, c := range cs.Chain() {
		if c.Members == nil {
			continue
		}

		if sym, ok := c.Members.symbols[name]; ok {
			if vs, ok := sym.(*VariableSymbol); ok && vs.Kind == FieldVar {
				return vs, true
			}
		}
	}

	return nil, false
}

// LookupMethods collects the methods with a given name visible on the class:
// its own followed by those of its superclasses, nearest first.  A superclass
// method is hidden by a method with exactly the same parameter types further
// down the chain.
func (cs *ClassSymbol) LookupMethods(name string) []*MethodSymbol {
	var methods []*MethodSymbol

	for _, c := range cs.Chain() {
		for _, m := range c.OwnMethods(name) {
			hidden := false
			for _, seen := range methods {
				if typing.EqualTypeLists(seen.Signature().ParamTypes, m.Signature().ParamTypes) {
					hidden = true
					break
				}
			}

			if !hidden {
				methods = append(methods, m)
			}
		}
	}

	return methods
}

// FindOverridden returns the nearest superclass method that `m` has the same
// name and parameter types as.
func (cs *ClassSymbol) FindOverridden(m *MethodSymbol) (*MethodSymbol, bool) {
	if cs.Super == nil {
		return nil, false
	}

	for _, c := range cs.Super.Chain() {
		if c == cs {
			break
		}

		for _, sm := range c.OwnMethods(m.Name) {
			if sm.Signature().MatchesExactly(m.Signature()) {
				return sm, true
			}
		}
	}

	return nil, false
}
