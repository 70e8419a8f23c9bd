package typing

import "strings"

// ArrayType represents an array type.  Arrays of arrays are always flattened
// into a single multi-dimensional array: Elem is never itself an array.
type ArrayType struct {
	Elem Type
	Dims int
}

// NewArrayType creates a `dims`-dimensional array of `elem`.  Zero dimensions
// yield `elem` itself; an array of the error type is the error type.
func NewArrayType(elem Type, dims int) Type {
	if dims <= 0 || IsError(elem) {
		return elem
	}

	if at, ok := elem.(*ArrayType); ok {
		return &ArrayType{Elem: at.Elem, Dims: at.Dims + dims}
	}

	return &ArrayType{Elem: elem, Dims: dims}
}

// ElemType returns the type of the elements of an array: the array type with
// one dimension removed.
func ElemType(at *ArrayType) Type {
	if at.Dims <= 1 {
		return at.Elem
	}

	return &ArrayType{Elem: at.Elem, Dims: at.Dims - 1}
}

func (at *ArrayType) Repr() string {
	return at.Elem.Repr() + strings.Repeat("[]", at.Dims)
}

func (at *ArrayType) equals(other Type) bool {
	if oat, ok := other.(*ArrayType); ok {
		return at.Dims == oat.Dims && Equals(at.Elem, oat.Elem)
	}

	return false
}

// -----------------------------------------------------------------------------

// ClassInfo is the view of a declared class the type lattice needs to decide
// subtyping.
type ClassInfo interface {
	ClassName() string

	// SuperInfo returns the superclass or nil if there is none.
	SuperInfo() ClassInfo
}

// ClassType represents the type of instances of a class.
type ClassType struct {
	Name string

	// Class is the backing declaration.  It is nil only for types that name a
	// class which has not been declared.
	Class ClassInfo
}

func (ct *ClassType) Repr() string {
	return ct.Name
}

func (ct *ClassType) equals(other Type) bool {
	if oct, ok := other.(*ClassType); ok {
		return ct.Name == oct.Name
	}

	return false
}

// IsSubclass reports whether `sub` is `super` or transitively extends it.
// The walk is bounded so a broken (cyclic) chain still terminates.
func IsSubclass(sub, super ClassInfo) bool {
	if sub == nil || super == nil {
		return false
	}

	visited := make(map[string]struct{})
	for ci := sub; ci != nil; ci = ci.SuperInfo() {
		if _, ok := visited[ci.ClassName()]; ok {
			return false
		}

		if ci.ClassName() == super.ClassName() {
			return true
		}

		visited[ci.ClassName()] = struct{}{}
	}

	return false
}

// -----------------------------------------------------------------------------

// FuncType represents the type of a function or method.
type FuncType struct {
	ReturnType Type
	ParamTypes []Type
	VarArgs    bool
}

func (ft *FuncType) Repr() string {
	return ft.ReturnType.Repr() + "(" + reprParams(ft.ParamTypes, ft.VarArgs) + ")"
}

func (ft *FuncType) equals(other Type) bool {
	if oft, ok := other.(*FuncType); ok {
		return ft.VarArgs == oft.VarArgs &&
			Equals(ft.ReturnType, oft.ReturnType) &&
			EqualTypeLists(ft.ParamTypes, oft.ParamTypes)
	}

	return false
}

// ConstructorType represents the type of a constructor.
type ConstructorType struct {
	ClassName  string
	ParamTypes []Type
}

func (ct *ConstructorType) Repr() string {
	return ct.ClassName + "(" + reprParams(ct.ParamTypes, false) + ")"
}

func (ct *ConstructorType) equals(other Type) bool {
	if oct, ok := other.(*ConstructorType); ok {
		return ct.ClassName == oct.ClassName && EqualTypeLists(ct.ParamTypes, oct.ParamTypes)
	}

	return false
}

// EqualTypeLists reports whether two type lists are pairwise exactly equal.
func EqualTypeLists(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}

	for i, t := range a {
		if !Equals(t, b[i]) {
			return false
		}
	}

	return true
}

// ReprTypeList renders a list of types separated by commas.
func ReprTypeList(types []Type) string {
	return reprParams(types, false)
}

func reprParams(params []Type, varArgs bool) string {
	sb := strings.Builder{}

	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(p.Repr())

		if varArgs && i == len(params)-1 {
			sb.WriteString("...")
		}
	}

	return sb.String()
}
