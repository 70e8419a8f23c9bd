package typing

// Type is the interface for all data types.  Types are read-only once they
// are built.
type Type interface {
	// Repr returns a string representing the data type
	Repr() string

	// equals takes in another Type and returns if the two types are exactly
	// equal.  It is meant to only be called internally: use `Equals`.
	equals(other Type) bool
}

// Equals reports whether two types are exactly equal.  No conversion of any
// kind is considered.
func Equals(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.equals(b)
}

// -----------------------------------------------------------------------------

// NullType is the type of the `null` literal.
type NullType struct{}

// ErrorType is the type substituted for any expression whose checking failed.
// It is compatible with every other type so that one error does not cascade.
type ErrorType struct{}

// Canonical null and error values.  Both are comparable structs so these
// values are only a convenience: any two NullType values are identical.
var (
	Null  Type = NullType{}
	Error Type = ErrorType{}
)

func (NullType) Repr() string {
	return "null"
}

func (NullType) equals(other Type) bool {
	_, ok := other.(NullType)
	return ok
}

func (ErrorType) Repr() string {
	return "<error>"
}

func (ErrorType) equals(other Type) bool {
	_, ok := other.(ErrorType)
	return ok
}

// -----------------------------------------------------------------------------

// IsError reports whether t is the error type.
func IsError(t Type) bool {
	_, ok := t.(ErrorType)
	return ok
}

// IsNull reports whether t is the null type.
func IsNull(t Type) bool {
	_, ok := t.(NullType)
	return ok
}

// IsVoid reports whether t is VOID.
func IsVoid(t Type) bool {
	return t == Void
}

// IsBoolean reports whether t is BOOLEAN.
func IsBoolean(t Type) bool {
	return t == Boolean
}

// IsNumeric reports whether t is a numeric primitive (CHAR, INT or FLOAT).
func IsNumeric(t Type) bool {
	_, ok := numericRank(t)
	return ok
}

// IsReference reports whether values of t are references: class types, array
// types and null.
func IsReference(t Type) bool {
	switch t.(type) {
	case *ClassType, *ArrayType, NullType:
		return true
	default:
		return false
	}
}
