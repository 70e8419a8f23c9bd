package resolve

import (
	"mocha/ast"
	"mocha/logging"
	"mocha/sem"
	"mocha/typing"
)

// walkClass opens the scope of a class and defines its members.
func (r *Resolver) walkClass(cd *ast.ClassDecl, cs *sem.ClassSymbol) {
	cs.Members = r.table.Global.NewChild(cd.Name, sem.ClassScope, cd.Position())
	cs.Members.EnclosingClass = cs
	cs.Members.EnclosingFunc = nil
	r.table.scopes[cd] = cs.Members

	cs.Members.Define(&sem.VariableSymbol{
		SymbolBase:  sem.SymbolBase{Name: "this", Type: cs.Type},
		Initialized: true,
		Final:       true,
		Kind:        sem.ThisVar,
		Owner:       cs,
	})

	for _, fd := range cd.Fields {
		r.walkField(cs, fd)
	}

	for _, md := range cd.Methods {
		r.walkMethod(cs, md)
	}

	for _, ctor := range cd.Ctors {
		r.walkConstructor(cs, ctor)
	}
}

// walkField defines each declarator of a field declaration.
func (r *Resolver) walkField(cs *sem.ClassSymbol, fd *ast.FieldDecl) {
	baseType := r.resolveType(fd.Type)

	for _, d := range fd.Vars {
		vs := &sem.VariableSymbol{
			SymbolBase: sem.SymbolBase{
				Name:     d.Name,
				Type:     typing.NewArrayType(baseType, d.Dims),
				Position: d.Position(),
			},
			Initialized: d.Init != nil,
			Final:       fd.Mods.Final,
			Static:      fd.Mods.Static,
			Visibility:  fd.Mods.Visibility,
			Kind:        sem.FieldVar,
			Owner:       cs,
		}

		r.checkNotVoid(vs)
		r.table.symbols[d] = vs

		if conflict := cs.Members.Define(vs); conflict != nil {
			r.reportRedefinition(d.Position(), "field", d.Name, conflict)
		}
	}
}

// walkMethod defines a method and its parameters.
func (r *Resolver) walkMethod(cs *sem.ClassSymbol, md *ast.MethodDecl) {
	ms := &sem.MethodSymbol{
		FunctionSymbol: sem.FunctionSymbol{
			SymbolBase: sem.SymbolBase{Name: md.Name, Position: md.Position()},
			ReturnType: r.resolveType(md.ReturnType),
			Static:     md.Mods.Static,
			Visibility: md.Mods.Visibility,
		},
		Abstract: md.Mods.Abstract,
		Final:    md.Mods.Final,
		Override: md.Mods.Override,
		Owner:    cs,
	}

	ms.Scope = cs.Members.NewChild(md.Name, sem.MethodScope, md.Position())
	ms.Scope.EnclosingFunc = ms
	ms.Params, ms.VarArgs = r.walkParams(ms.Scope, md.Params)
	ms.Type = sem.NewFunctionType(ms.ReturnType, ms.Params, ms.VarArgs)

	r.table.symbols[md] = ms
	r.table.scopes[md] = ms.Scope

	if conflict := cs.Members.DefineOverload(ms); conflict != nil {
		if _, ok := conflict.(*sem.MethodSymbol); ok {
			r.reportRedefinition(md.Position(), "method", ms.Signature().Repr(), conflict)
		} else {
			r.reportRedefinition(md.Position(), "member", md.Name, conflict)
		}
	}

	if md.Body != nil {
		r.walkBody(ms.Scope, md.Body)
	}
}

// walkConstructor defines a constructor and its parameters.
func (r *Resolver) walkConstructor(cs *sem.ClassSymbol, cd *ast.ConstructorDecl) {
	if cd.Name != cs.Name {
		r.errs.Add(
			logging.ConstructorError,
			cd.Position(),
			"constructor `%s` does not match the name of its class `%s`",
			cd.Name,
			cs.Name,
		).Suggest("rename the constructor to `%s`", cs.Name)
	}

	ctor := &sem.ConstructorSymbol{
		SymbolBase: sem.SymbolBase{Name: cs.Name, Position: cd.Position()},
		Visibility: cd.Mods.Visibility,
		Owner:      cs,
	}

	ctor.Scope = cs.Members.NewChild(cs.Name, sem.ConstructorScope, cd.Position())
	ctor.Scope.EnclosingFunc = ctor

	var varArgs bool
	ctor.Params, varArgs = r.walkParams(ctor.Scope, cd.Params)
	if varArgs {
		r.errs.Add(logging.ArgumentMismatch, cd.Position(), "constructors cannot take variadic arguments")
	}

	ctor.Type = &typing.ConstructorType{ClassName: cs.Name, ParamTypes: ctor.Signature().ParamTypes}

	r.table.symbols[cd] = ctor
	r.table.scopes[cd] = ctor.Scope

	if conflict := cs.Members.DefineConstructor(ctor); conflict != nil {
		r.reportRedefinition(cd.Position(), "constructor", ctor.Signature().Repr(), conflict)
	}

	if cd.Body != nil {
		r.walkBody(ctor.Scope, cd.Body)
	}
}

// walkParams defines the parameters of a callable in its scope.  It returns
// the parameter symbols and whether the callable is variadic.
func (r *Resolver) walkParams(scope *sem.Scope, params []*ast.Param) ([]*sem.VariableSymbol, bool) {
	var symbols []*sem.VariableSymbol
	varArgs := false

	for i, p := range params {
		ptype := r.resolveType(p.Type)

		if p.VarArgs {
			if i != len(params)-1 {
				r.errs.Add(logging.ArgumentMismatch, p.Position(), "variadic parameter `%s` must be the last parameter", p.Name)
			} else {
				varArgs = true
			}

			ptype = typing.NewArrayType(ptype, 1)
		}

		vs := &sem.VariableSymbol{
			SymbolBase:  sem.SymbolBase{Name: p.Name, Type: ptype, Position: p.Position()},
			Initialized: true,
			Final:       p.Final,
			Kind:        sem.ParamVar,
		}

		r.checkNotVoid(vs)
		r.table.symbols[p] = vs
		symbols = append(symbols, vs)

		if conflict := scope.Define(vs); conflict != nil {
			r.reportRedefinition(p.Position(), "parameter", p.Name, conflict)
		}
	}

	return symbols, varArgs
}

// -----------------------------------------------------------------------------

// walkFunc defines a top-level function.
func (r *Resolver) walkFunc(fd *ast.FuncDecl) {
	fs := &sem.FunctionSymbol{
		SymbolBase: sem.SymbolBase{Name: fd.Name, Position: fd.Position()},
		ReturnType: r.resolveType(fd.ReturnType),
		Static:     true,
		Visibility: fd.Mods.Visibility,
	}

	fs.Scope = r.table.Global.NewChild(fd.Name, sem.MethodScope, fd.Position())
	fs.Scope.EnclosingFunc = fs
	fs.Params, fs.VarArgs = r.walkParams(fs.Scope, fd.Params)
	fs.Type = sem.NewFunctionType(fs.ReturnType, fs.Params, fs.VarArgs)

	r.table.symbols[fd] = fs
	r.table.scopes[fd] = fs.Scope

	if conflict := r.table.Global.DefineOverload(fs); conflict != nil {
		if _, ok := conflict.(*sem.FunctionSymbol); ok {
			r.reportRedefinition(fd.Position(), "function", fs.Signature().Repr(), conflict)
		} else {
			r.reportRedefinition(fd.Position(), "name", fd.Name, conflict)
		}
	}

	if fd.Body != nil {
		r.walkBody(fs.Scope, fd.Body)
	}
}

// walkGlobalVar defines each declarator of a global variable declaration.
func (r *Resolver) walkGlobalVar(gd *ast.GlobalVarDecl) {
	baseType := r.resolveType(gd.Type)

	for _, d := range gd.Vars {
		vs := &sem.VariableSymbol{
			SymbolBase: sem.SymbolBase{
				Name:     d.Name,
				Type:     typing.NewArrayType(baseType, d.Dims),
				Position: d.Position(),
			},
			Initialized: d.Init != nil,
			Final:       gd.Mods.Final,
			Static:      true,
			Visibility:  gd.Mods.Visibility,
			Kind:        sem.GlobalVar,
		}

		r.checkNotVoid(vs)
		r.table.symbols[d] = vs

		if conflict := r.table.Global.Define(vs); conflict != nil {
			r.reportRedefinition(d.Position(), "variable", d.Name, conflict)
		}
	}
}

// checkNotVoid reports a variable declared with type `void`.  Its type is
// replaced by the error type.
func (r *Resolver) checkNotVoid(vs *sem.VariableSymbol) {
	if typing.IsVoid(vs.Type) {
		r.errs.Add(logging.TypeMismatch, vs.Position, "variable `%s` cannot have type `void`", vs.Name)
		vs.Type = typing.Error
	}
}
