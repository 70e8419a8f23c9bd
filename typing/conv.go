package typing

// Conversion Rules
// ----------------
// 1. An assignment conversion happens implicitly.  It is permitted from a type
// to itself, from a primitive to a wider primitive (promotion), from a class to
// any of its superclasses, and from null to any reference type.  The error
// type converts to and from everything.
// 2. A cast is an explicit conversion.  Casts are permitted between any two
// numeric primitives and between reference types related by assignment in
// either direction.  BOOLEAN never casts to or from anything but itself.

// IsAssignableFrom reports whether a value of type `source` may be stored where
// a value of type `target` is expected.
func IsAssignableFrom(target, source Type) bool {
	if IsError(target) || IsError(source) {
		return true
	}

	if Equals(target, source) {
		return !IsVoid(target)
	}

	switch v := target.(type) {
	case PrimitiveType:
		return CanPromote(source, v)
	case *ClassType:
		switch sv := source.(type) {
		case NullType:
			return true
		case *ClassType:
			return IsSubclass(sv.Class, v.Class)
		}
	case *ArrayType:
		switch sv := source.(type) {
		case NullType:
			return true
		case *ArrayType:
			if v.Dims != sv.Dims {
				return false
			}

			// primitive elements must match exactly: an int[] is not a float[]
			if IsReference(v.Elem) && IsReference(sv.Elem) {
				return IsAssignableFrom(v.Elem, sv.Elem)
			}

			return Equals(v.Elem, sv.Elem)
		}
	}

	return false
}

// CanPromote reports whether `from` implicitly widens to `to`.  Promotion is
// strict: a type does not promote to itself.
func CanPromote(from, to Type) bool {
	fromRank, ok := numericRank(from)
	if !ok {
		return false
	}

	toRank, ok := numericRank(to)
	if !ok {
		return false
	}

	return fromRank < toRank
}

// CanCast reports whether `from` can be explicitly cast to `to`.
func CanCast(from, to Type) bool {
	if IsError(from) || IsError(to) {
		return true
	}

	if Equals(from, to) {
		return !IsVoid(from)
	}

	if IsNumeric(from) && IsNumeric(to) {
		return true
	}

	if IsNull(from) {
		return IsReference(to)
	}

	switch v := from.(type) {
	case *ClassType:
		if tv, ok := to.(*ClassType); ok {
			return IsSubclass(v.Class, tv.Class) || IsSubclass(tv.Class, v.Class)
		}
	case *ArrayType:
		if tv, ok := to.(*ArrayType); ok {
			return v.Dims == tv.Dims && CanCast(v.Elem, tv.Elem) && CanCast(tv.Elem, v.Elem)
		}
	}

	return false
}

// CommonSupertype returns the type of a conditional expression whose branches
// have types `a` and `b`: the more general of the two if one is assignable
// from the other and the error type otherwise.
func CommonSupertype(a, b Type) Type {
	if IsError(a) || IsError(b) {
		return Error
	}

	if Equals(a, b) {
		return a
	}

	if IsAssignableFrom(a, b) {
		return a
	} else if IsAssignableFrom(b, a) {
		return b
	}

	return Error
}
