package sem

import "mocha/logging"

// ScopeKind is the kind of a lexical scope.
type ScopeKind int

// Enumeration of scope kinds
const (
	GlobalScope ScopeKind = iota
	ClassScope
	MethodScope
	ConstructorScope
	BlockScope
)

func (sk ScopeKind) String() string {
	switch sk {
	case GlobalScope:
		return "GLOBAL"
	case ClassScope:
		return "CLASS"
	case MethodScope:
		return "METHOD"
	case ConstructorScope:
		return "CONSTRUCTOR"
	default:
		return "BLOCK"
	}
}

// Scope represents a lexical scope.  Scopes form a tree: each scope owns its
// children and holds a non-owning reference to its parent.  A scope is only
// mutated while the symbol table is being built.
type Scope struct {
	Name string
	Kind ScopeKind

	// Position is where the scope begins.  It is nil for the global scope.
	Position *logging.TextPosition

	Parent   *Scope
	Children []*Scope

	// EnclosingClass and EnclosingFunc are inherited from the parent at
	// creation and set explicitly for class and callable scopes.
	EnclosingClass *ClassSymbol
	EnclosingFunc  Callable

	// symbols maps all non-overloadable names
	symbols map[string]Symbol

	// overloads maps function and method names to their overloads in
	// declaration order
	overloads map[string][]Callable

	ctors []*ConstructorSymbol

	// ordered holds every symbol of the scope in insertion order
	ordered []Symbol
}

// NewGlobalScope creates the root scope of a program.
func NewGlobalScope() *Scope {
	return newScope("global", GlobalScope, nil)
}

func newScope(name string, kind ScopeKind, parent *Scope) *Scope {
	return &Scope{
		Name:      name,
		Kind:      kind,
		Parent:    parent,
		symbols:   make(map[string]Symbol),
		overloads: make(map[string][]Callable),
	}
}

// NewChild creates a new child scope which inherits the enclosing context of
// this scope.
func (s *Scope) NewChild(name string, kind ScopeKind, pos *logging.TextPosition) *Scope {
	child := newScope(name, kind, s)
	child.Position = pos
	child.EnclosingClass = s.EnclosingClass
	child.EnclosingFunc = s.EnclosingFunc

	s.Children = append(s.Children, child)
	return child
}

// Define defines a non-overloadable symbol in the scope.  If the name is
// already taken by any symbol of the scope, the existing symbol is returned
// and nothing is defined.
func (s *Scope) Define(sym Symbol) Symbol {
	name := sym.Common().Name

	if existing, ok := s.symbols[name]; ok {
		return existing
	} else if ovs, ok := s.overloads[name]; ok {
		return ovs[0]
	}

	s.symbols[name] = sym
	s.ordered = append(s.ordered, sym)
	return nil
}

// DefineOverload defines a function or method.  Overloads may share a name as
// long as their parameter types differ.  If the name is taken by a
// non-overloadable symbol or by an overload with the same parameter types,
// that symbol is returned and nothing is defined.
func (s *Scope) DefineOverload(c Callable) Symbol {
	name := c.Common().Name

	if existing, ok := s.symbols[name]; ok {
		return existing
	}

	sig := c.Signature()
	for _, ov := range s.overloads[name] {
		if ov.Signature().MatchesExactly(sig) {
			return ov
		}
	}

	s.overloads[name] = append(s.overloads[name], c)
	s.ordered = append(s.ordered, c)
	return nil
}

// DefineConstructor adds a constructor to the scope.  If a constructor with
// the same parameter types already exists, it is returned and nothing is
// defined.
func (s *Scope) DefineConstructor(cs *ConstructorSymbol) *ConstructorSymbol {
	sig := cs.Signature()
	for _, existing := range s.ctors {
		if existing.Signature().MatchesExactly(sig) {
			return existing
		}
	}

	s.ctors = append(s.ctors, cs)
	s.ordered = append(s.ordered, cs)
	return nil
}

// LookupLocal looks up a non-overloadable name in this scope only.
func (s *Scope) LookupLocal(name string) (Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// Lookup looks up a non-overloadable name in this scope and then its
// ancestors.
func (s *Scope) Lookup(name string) (Symbol, bool) {
	for scope := s; scope != nil; scope = scope.Parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}

	return nil, false
}

// LookupOverloads returns the overloads of the nearest scope defining the
// name as a function or method.
func (s *Scope) LookupOverloads(name string) []Callable {
	for scope := s; scope != nil; scope = scope.Parent {
		if ovs, ok := scope.overloads[name]; ok {
			return ovs
		}
	}

	return nil
}

// Constructors returns the constructors defined in the scope.
func (s *Scope) Constructors() []*ConstructorSymbol {
	return s.ctors
}

// Symbols returns every symbol of the scope in insertion order, overloads and
// constructors included.
func (s *Scope) Symbols() []Symbol {
	return s.ordered
}
