package resolve

import (
	"mocha/ast"
	"mocha/common"
	"mocha/logging"
	"mocha/sem"
	"mocha/typing"
)

// Options configures symbol table construction.
type Options struct {
	// Builtins indicates that the built-in functions should be registered.
	Builtins bool
}

// Resolver is main data structure used to build the symbol table of a single
// program.
type Resolver struct {
	prog  *ast.Program
	opts  Options
	table *Table
	errs  *logging.ErrorList

	// classes maps each accepted class declaration to its symbol.  Duplicate
	// class declarations are absent.
	classes map[*ast.ClassDecl]*sem.ClassSymbol
}

// Resolve builds the symbol table of a program.  It never fails: problems
// are recorded in the returned error list.
func Resolve(prog *ast.Program, opts Options) (*Table, *logging.ErrorList) {
	r := &Resolver{
		prog:    prog,
		opts:    opts,
		table:   newTable(),
		errs:    &logging.ErrorList{},
		classes: make(map[*ast.ClassDecl]*sem.ClassSymbol),
	}

	r.resolveAll()
	return r.table, r.errs
}

// resolveAll runs the two passes over the top-level declarations.
func (r *Resolver) resolveAll() {
	if r.opts.Builtins {
		r.defineBuiltins()
	}

	// pass 1: pre-declare every class so classes may refer to each other in
	// any order
	for _, decl := range r.prog.Decls {
		if cd, ok := decl.(*ast.ClassDecl); ok {
			r.declareClass(cd)
		}
	}

	// pass 2: walk every declaration in source order
	for _, decl := range r.prog.Decls {
		switch v := decl.(type) {
		case *ast.ClassDecl:
			if cs, ok := r.classes[v]; ok {
				r.attachSuper(v, cs)
				r.walkClass(v, cs)
			}
		case *ast.FuncDecl:
			r.walkFunc(v)
		case *ast.GlobalVarDecl:
			r.walkGlobalVar(v)
		}
	}
}

// defineBuiltins registers the built-in functions.  Each takes a single
// string parameter and returns nothing.
func (r *Resolver) defineBuiltins() {
	for _, name := range common.BuiltinFuncNames {
		params := []*sem.VariableSymbol{{
			SymbolBase:  sem.SymbolBase{Name: "value", Type: typing.String},
			Initialized: true,
			Kind:        sem.ParamVar,
		}}

		r.table.Global.DefineOverload(&sem.FunctionSymbol{
			SymbolBase: sem.SymbolBase{
				Name: name,
				Type: sem.NewFunctionType(typing.Void, params, false),
			},
			Params:     params,
			ReturnType: typing.Void,
			Static:     true,
			Visibility: sem.Public,
			Builtin:    true,
		})
	}
}

// -----------------------------------------------------------------------------

// declareClass pre-declares a class in the global scope.
func (r *Resolver) declareClass(cd *ast.ClassDecl) {
	cs := sem.NewClassSymbol(cd.Name)
	cs.Position = cd.Position()
	cs.Abstract = cd.Mods.Abstract
	cs.Final = cd.Mods.Final
	cs.Visibility = cd.Mods.Visibility
	cs.Interfaces = cd.Interfaces

	if conflict := r.table.Global.Define(cs); conflict != nil {
		r.reportRedefinition(cd.Position(), "class", cd.Name, conflict)
		return
	}

	r.classes[cd] = cs
	r.table.symbols[cd] = cs
}

// attachSuper resolves and attaches the superclass of a class.  The link is
// left unset if it cannot be resolved or would close a cycle.
func (r *Resolver) attachSuper(cd *ast.ClassDecl, cs *sem.ClassSymbol) {
	if cd.Super == nil {
		return
	}

	pos := cd.Super.Position()

	if cd.Super.Dims > 0 {
		r.errs.Add(logging.TypeMismatch, pos, "class `%s` cannot extend an array type", cd.Name)
		return
	}

	if _, ok := typing.PrimitiveByName(cd.Super.Name); ok {
		r.errs.Add(logging.TypeMismatch, pos, "class `%s` cannot extend primitive type `%s`", cd.Name, cd.Super.Name)
		return
	}

	sym, ok := r.table.Global.LookupLocal(cd.Super.Name)
	if !ok {
		r.errs.Add(logging.UndefinedClass, pos, "undefined class `%s`", cd.Super.Name)
		return
	}

	super, ok := sym.(*sem.ClassSymbol)
	if !ok {
		r.errs.Add(logging.TypeMismatch, pos, "`%s` is not a class", cd.Super.Name)
		return
	}

	// walk the candidate's chain looking for the class itself
	if super.IsSubclassOf(cs) {
		r.errs.Add(
			logging.CircularInheritance,
			pos,
			"class `%s` cannot extend `%s`: the inheritance chain would be circular",
			cd.Name,
			super.Name,
		).Suggest("remove `extends %s` from one of the classes in the cycle", super.Name)
		return
	}

	if super.Final {
		r.errs.Add(logging.InvalidOperation, pos, "class `%s` cannot extend final class `%s`", cd.Name, super.Name)
	}

	cs.Super = super
}

// -----------------------------------------------------------------------------

// reportRedefinition reports a name clash with an existing symbol.
func (r *Resolver) reportRedefinition(pos *logging.TextPosition, what, name string, existing sem.Symbol) {
	cm := r.errs.Add(logging.Redefinition, pos, "%s `%s` is already defined", what, name)

	if prev := existing.Common().Position; prev != nil {
		cm.Suggest("rename it: `%s` was first defined at %d:%d", name, prev.StartLn, prev.StartCol)
	} else {
		cm.Suggest("rename it: `%s` is a built-in", name)
	}
}

// resolveType converts a type label to a type.  It reports and returns the
// error type if the label does not name a type.
func (r *Resolver) resolveType(tr *ast.TypeRef) typing.Type {
	return ResolveTypeRef(r.table.Global, r.errs, tr)
}

// ResolveTypeRef converts a type label to a type using the classes of the
// given global scope.  It is shared with the checker which resolves the type
// labels of casts, `instanceof` and `new`.
func ResolveTypeRef(global *sem.Scope, errs *logging.ErrorList, tr *ast.TypeRef) typing.Type {
	if prim, ok := typing.PrimitiveByName(tr.Name); ok {
		if prim == typing.Void && tr.Dims > 0 {
			errs.Add(logging.TypeMismatch, tr.Position(), "cannot create an array of `void`")
			return typing.Error
		}

		return typing.NewArrayType(prim, tr.Dims)
	}

	sym, ok := global.LookupLocal(tr.Name)
	if !ok {
		errs.Add(logging.UndefinedClass, tr.Position(), "undefined class `%s`", tr.Name)
		return typing.Error
	}

	cs, ok := sym.(*sem.ClassSymbol)
	if !ok {
		errs.Add(logging.TypeMismatch, tr.Position(), "`%s` is not a type", tr.Name)
		return typing.Error
	}

	return typing.NewArrayType(cs.Type, tr.Dims)
}
