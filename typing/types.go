package typing

// PrimitiveType represents a primitive type such as `int` or `string`.  Its
// value must be one of the enumerated primitive kinds below.  STRING is a
// primitive: it is not a reference type and so is never nullable.
type PrimitiveType int

// Enumeration of primitive types
const (
	Int PrimitiveType = iota
	Float
	String
	Boolean
	Char
	Void
)

// equals for primitives is an integer comparison
func (pt PrimitiveType) equals(other Type) bool {
	if opt, ok := other.(PrimitiveType); ok {
		return pt == opt
	}

	return false
}

// Repr of a primitive type is just its corresponding keyword
func (pt PrimitiveType) Repr() string {
	switch pt {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Char:
		return "char"
	default:
		return "void"
	}
}

// PrimitiveByName returns the primitive type with the given keyword.
func PrimitiveByName(name string) (PrimitiveType, bool) {
	switch name {
	case "int":
		return Int, true
	case "float", "double":
		return Float, true
	case "string", "String":
		return String, true
	case "boolean", "bool":
		return Boolean, true
	case "char":
		return Char, true
	case "void":
		return Void, true
	default:
		return 0, false
	}
}

// numericRank gives the position of a numeric type in the promotion order
// CHAR -> INT -> FLOAT.
func numericRank(t Type) (int, bool) {
	switch t {
	case Char:
		return 0, true
	case Int:
		return 1, true
	case Float:
		return 2, true
	default:
		return -1, false
	}
}
