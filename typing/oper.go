package typing

import "mocha/ast"

// ResultOfBinaryOp returns the type yielded by applying `op` to operands of
// the given types.  The error type is returned both when an operand is
// already erroneous and when the operator does not apply: callers that want to
// report misuse check the operands for errors first.
func ResultOfBinaryOp(left, right Type, op ast.OpKind) Type {
	if IsError(left) || IsError(right) {
		return Error
	}

	switch {
	case op.IsArithmetic():
		if op == ast.OpAdd && (left == String || right == String) {
			// string concatenation accepts any non-void operand
			if !IsVoid(left) && !IsVoid(right) {
				return String
			}

			return Error
		}

		if IsNumeric(left) && IsNumeric(right) {
			if left == Float || right == Float {
				return Float
			}

			return Int
		}
	case op.IsRelational():
		if IsNumeric(left) && IsNumeric(right) {
			return Boolean
		}
	case op.IsEquality():
		if isComparable(left, right) {
			return Boolean
		}
	case op.IsLogical():
		if IsBoolean(left) && IsBoolean(right) {
			return Boolean
		}
	}

	return Error
}

// isComparable reports whether two operand types may be compared for equality.
func isComparable(left, right Type) bool {
	if IsVoid(left) || IsVoid(right) {
		return false
	}

	if IsNumeric(left) && IsNumeric(right) {
		return true
	}

	if Equals(left, right) {
		return true
	}

	if IsReference(left) && IsReference(right) {
		return IsNull(left) || IsNull(right) ||
			IsAssignableFrom(left, right) || IsAssignableFrom(right, left)
	}

	return false
}

// ResultOfUnaryOp returns the type yielded by applying the unary `op` to an
// operand of type `operand`, or the error type if it does not apply.
func ResultOfUnaryOp(op ast.OpKind, operand Type) Type {
	if IsError(operand) {
		return Error
	}

	switch op {
	case ast.OpNeg, ast.OpPos:
		if operand == Char {
			return Int
		} else if IsNumeric(operand) {
			return operand
		}
	case ast.OpInc, ast.OpDec:
		if IsNumeric(operand) {
			return operand
		}
	case ast.OpNot:
		if IsBoolean(operand) {
			return Boolean
		}
	}

	return Error
}
