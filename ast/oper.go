package ast

// OpKind is the kind of an operator.
type OpKind int

// Enumeration of operator kinds
const (
	OpAssign OpKind = iota

	// arithmetic
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod

	// relational
	OpLt
	OpLe
	OpGt
	OpGe

	// equality
	OpEq
	OpNe

	// logical
	OpAnd
	OpOr
	OpNot

	// unary arithmetic
	OpNeg
	OpPos
	OpInc
	OpDec
)

var opStrings = map[OpKind]string{
	OpAssign: "=",
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpMod:    "%",
	OpLt:     "<",
	OpLe:     "<=",
	OpGt:     ">",
	OpGe:     ">=",
	OpEq:     "==",
	OpNe:     "!=",
	OpAnd:    "&&",
	OpOr:     "||",
	OpNot:    "!",
	OpNeg:    "-",
	OpPos:    "+",
	OpInc:    "++",
	OpDec:    "--",
}

func (op OpKind) String() string {
	if s, ok := opStrings[op]; ok {
		return s
	}

	return "?"
}

// IsArithmetic reports whether op is a binary arithmetic operator.
func (op OpKind) IsArithmetic() bool {
	return op >= OpAdd && op <= OpMod
}

// IsRelational reports whether op is an ordering comparison.
func (op OpKind) IsRelational() bool {
	return op >= OpLt && op <= OpGe
}

// IsEquality reports whether op is `==` or `!=`.
func (op OpKind) IsEquality() bool {
	return op == OpEq || op == OpNe
}

// IsLogical reports whether op is `&&` or `||`.
func (op OpKind) IsLogical() bool {
	return op == OpAnd || op == OpOr
}
