package resolve

import (
	"mocha/ast"
	"mocha/sem"
)

// Table is the populated symbol table of a program: the scope tree plus side
// tables mapping declaring nodes to what was created for them.
type Table struct {
	// Global is the root of the scope tree.
	Global *sem.Scope

	scopes  map[ast.Node]*sem.Scope
	symbols map[ast.Node]sem.Symbol
}

func newTable() *Table {
	return &Table{
		Global:  sem.NewGlobalScope(),
		scopes:  make(map[ast.Node]*sem.Scope),
		symbols: make(map[ast.Node]sem.Symbol),
	}
}

// ScopeOf returns the scope opened by a node: a class, method, constructor,
// function, block, `for`, `for-each` or `switch`.
func (t *Table) ScopeOf(node ast.Node) (*sem.Scope, bool) {
	scope, ok := t.scopes[node]
	return scope, ok
}

// SymbolOf returns the symbol declared by a node: a class, method,
// constructor, function, declarator, parameter or `for-each` statement.
func (t *Table) SymbolOf(node ast.Node) (sem.Symbol, bool) {
	sym, ok := t.symbols[node]
	return sym, ok
}
