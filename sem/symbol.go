package sem

import (
	"mocha/common"
	"mocha/logging"
	"mocha/typing"
)

// Visibility is the access level of a member.
type Visibility = common.Visibility

// Enumeration of visibilities in ascending order
const (
	Private   = common.Private
	Default   = common.Default
	Protected = common.Protected
	Public    = common.Public
)

// Symbol represents a named symbol (globally or locally).  Every symbol is
// owned by exactly one scope.
type Symbol interface {
	// Common returns the fields shared by all symbols.
	Common() *SymbolBase
}

// SymbolBase holds the fields common to all symbols.
type SymbolBase struct {
	// Name is the name of the symbol (as it is referenced in source code)
	Name string

	// Type stores the data type of this symbol
	Type typing.Type

	// Position is the text position where this symbol is defined.  It is nil
	// for built-in and implicit symbols.
	Position *logging.TextPosition
}

func (sb *SymbolBase) Common() *SymbolBase {
	return sb
}

// -----------------------------------------------------------------------------

// VarKind is the kind of a variable symbol.
type VarKind int

// Enumeration of variable kinds
const (
	LocalVar VarKind = iota
	ParamVar
	FieldVar
	GlobalVar
	ThisVar
)

// VariableSymbol represents a variable, parameter, field or `this`.
type VariableSymbol struct {
	SymbolBase

	// Initialized indicates that the variable has a value when its scope is
	// entered: parameters, `this` and declarations with an initializer.
	Initialized bool

	Final      bool
	Static     bool
	Visibility Visibility
	Kind       VarKind

	// Owner is the class declaring a field.  It is nil for other kinds.
	Owner *ClassSymbol
}

// IsMember reports whether the variable is a field.
func (vs *VariableSymbol) IsMember() bool {
	return vs.Kind == FieldVar
}

// -----------------------------------------------------------------------------

// Callable is a symbol that can be invoked with an argument list: a function, a
// method or a constructor.
type Callable interface {
	Symbol

	// Parameters returns the ordered parameter list.
	Parameters() []*VariableSymbol

	// Signature returns the name and parameter types of the callable.
	Signature() Signature
}

// FunctionSymbol represents a top-level function.
type FunctionSymbol struct {
	SymbolBase

	Params     []*VariableSymbol
	ReturnType typing.Type
	Static     bool
	Visibility Visibility
	VarArgs    bool

	// Builtin is set for functions registered before any user declarations.
	Builtin bool

	// Scope holds the parameters.  It is nil for built-in functions.
	Scope *Scope
}

// NewFunctionType builds the function type of a symbol from its parameters.
func NewFunctionType(returnType typing.Type, params []*VariableSymbol, varArgs bool) *typing.FuncType {
	return &typing.FuncType{
		ReturnType: returnType,
		ParamTypes: paramTypes(params),
		VarArgs:    varArgs,
	}
}

func (fs *FunctionSymbol) Parameters() []*VariableSymbol {
	return fs.Params
}

func (fs *FunctionSymbol) Signature() Signature {
	return Signature{Name: fs.Name, ParamTypes: paramTypes(fs.Params), VarArgs: fs.VarArgs}
}

// MethodSymbol represents a method of a class.
type MethodSymbol struct {
	FunctionSymbol

	Abstract bool
	Final    bool

	// Override is set when the method is annotated as overriding.
	Override bool

	// Owner is the declaring class.
	Owner *ClassSymbol
}

// ConstructorSymbol represents a constructor of a class.
type ConstructorSymbol struct {
	SymbolBase

	Params     []*VariableSymbol
	Visibility Visibility
	Owner      *ClassSymbol
	Scope      *Scope
}

func (cs *ConstructorSymbol) Parameters() []*VariableSymbol {
	return cs.Params
}

func (cs *ConstructorSymbol) Signature() Signature {
	return Signature{Name: cs.Name, ParamTypes: paramTypes(cs.Params)}
}

func paramTypes(params []*VariableSymbol) []typing.Type {
	types := make([]typing.Type, len(params))
	for i, p := range params {
		types[i] = p.Type
	}

	return types
}
