package logging

// ErrorKind is the category of a semantic error.  It must be one of the
// enumerated kinds below.
type ErrorKind int

// Enumeration of semantic error kinds
const (
	UndefinedVariable ErrorKind = iota
	UndefinedClass
	UndefinedFunction
	UndefinedField
	UndefinedMethod
	UndefinedConstructor
	Redefinition
	TypeMismatch
	InvalidOperation
	VisibilityViolation
	AccessViolation
	UninitializedVariable
	FinalReassignment
	MissingReturn
	UnreachableCode
	InvalidBreakContinue
	ArrayIndexType
	InvalidCast
	CircularInheritance
	ConstructorError
	StaticContextError
	ArgumentMismatch
	DuplicateCase
	InvalidThis
	InvalidSuper
	AmbiguousCall
	InvalidOverride
	InternalError
)

// kindInfo holds the display name and description of an error kind.
type kindInfo struct {
	name, desc string
}

var kindTable = [...]kindInfo{
	UndefinedVariable:     {"UNDEFINED_VARIABLE", "a name does not resolve to any visible variable"},
	UndefinedClass:        {"UNDEFINED_CLASS", "a type name does not resolve to a declared class"},
	UndefinedFunction:     {"UNDEFINED_FUNCTION", "no function matches the name and argument types of a call"},
	UndefinedField:        {"UNDEFINED_FIELD", "a class and its superclasses declare no such field"},
	UndefinedMethod:       {"UNDEFINED_METHOD", "no method matches the name and argument types of a call"},
	UndefinedConstructor:  {"UNDEFINED_CONSTRUCTOR", "no constructor matches the argument types of a construction"},
	Redefinition:          {"REDEFINITION", "a name or signature is declared twice in one scope"},
	TypeMismatch:          {"TYPE_MISMATCH", "a value's type is not compatible with the expected type"},
	InvalidOperation:      {"INVALID_OPERATION", "an operator or construct is applied to unsuitable operands"},
	VisibilityViolation:   {"VISIBILITY_VIOLATION", "a private member is used outside its class"},
	AccessViolation:       {"ACCESS_VIOLATION", "a private constructor is used outside its class"},
	UninitializedVariable: {"UNINITIALIZED_VARIABLE", "a variable is read before it is definitely assigned"},
	FinalReassignment:     {"FINAL_REASSIGNMENT", "a final variable is assigned after it was initialized"},
	MissingReturn:         {"MISSING_RETURN", "a non-void body can complete without returning a value"},
	UnreachableCode:       {"UNREACHABLE_CODE", "a statement follows an unconditional return, break or continue"},
	InvalidBreakContinue:  {"INVALID_BREAK_CONTINUE", "break or continue appears outside of a loop or switch"},
	ArrayIndexType:        {"ARRAY_INDEX_TYPE", "an array index or dimension is not an int"},
	InvalidCast:           {"INVALID_CAST", "a cast between unrelated types"},
	CircularInheritance:   {"CIRCULAR_INHERITANCE", "a class would become its own ancestor"},
	ConstructorError:      {"CONSTRUCTOR_ERROR", "a malformed constructor or construction"},
	StaticContextError:    {"STATIC_CONTEXT_ERROR", "an instance member is used where no instance exists"},
	ArgumentMismatch:      {"ARGUMENT_MISMATCH", "parameters or arguments are malformed"},
	DuplicateCase:         {"DUPLICATE_CASE", "a switch repeats a case label or default"},
	InvalidThis:           {"INVALID_THIS", "this is used outside of a class"},
	InvalidSuper:          {"INVALID_SUPER", "super is used in a class without a superclass"},
	AmbiguousCall:         {"AMBIGUOUS_CALL", "several overloads match a call equally well"},
	InvalidOverride:       {"INVALID_OVERRIDE", "a method breaks the rules for overriding its superclass method"},
	InternalError:         {"INTERNAL_ERROR", "the analyzer's own state is inconsistent (a bug in mocha)"},
}

// String returns the upper-case name of the kind: eg. `TYPE_MISMATCH`.
func (ek ErrorKind) String() string {
	if ek < 0 || int(ek) >= len(kindTable) {
		return "UNKNOWN"
	}

	return kindTable[ek].name
}

// Description returns a one-line explanation of the kind.
func (ek ErrorKind) Description() string {
	if ek < 0 || int(ek) >= len(kindTable) {
		return ""
	}

	return kindTable[ek].desc
}

// AllKinds returns every error kind in enumeration order.
func AllKinds() []ErrorKind {
	kinds := make([]ErrorKind, len(kindTable))
	for i := range kinds {
		kinds[i] = ErrorKind(i)
	}

	return kinds
}
