package sem

import "mocha/typing"

// OverrideProblem is the first rule a method fails when checked as an
// override of a superclass method.
type OverrideProblem int

// Enumeration of override problems
const (
	OverrideOK OverrideProblem = iota
	OverrideSignature
	OverrideReturnType
	OverrideVisibility
	OverrideStatic
	OverrideFinal
)

func (op OverrideProblem) String() string {
	switch op {
	case OverrideOK:
		return "valid override"
	case OverrideSignature:
		return "parameter types do not match"
	case OverrideReturnType:
		return "return type is incompatible"
	case OverrideVisibility:
		return "visibility is reduced"
	case OverrideStatic:
		return "static qualifier does not match"
	default:
		return "overridden method is final"
	}
}

// CanOverride checks whether `sub` is a valid override of `super`.  The rules
// are checked in order and the first failure is returned.
func CanOverride(sub, super *MethodSymbol) OverrideProblem {
	if sub.Name != super.Name || !sub.Signature().MatchesExactly(super.Signature()) {
		return OverrideSignature
	}

	if !isCovariantReturn(sub.ReturnType, super.ReturnType) {
		return OverrideReturnType
	}

	if sub.Visibility < super.Visibility {
		return OverrideVisibility
	}

	if sub.Static != super.Static {
		return OverrideStatic
	}

	if super.Final {
		return OverrideFinal
	}

	return OverrideOK
}

// isCovariantReturn reports whether an overriding method may return `sub`
// where the overridden method returns `super`: the types must be identical or
// `sub` must be a subclass of `super`.
func isCovariantReturn(sub, super typing.Type) bool {
	if typing.IsError(sub) || typing.IsError(super) {
		return true
	}

	if typing.Equals(sub, super) {
		return true
	}

	subClass, ok := sub.(*typing.ClassType)
	if !ok {
		return false
	}

	superClass, ok := super.(*typing.ClassType)
	if !ok {
		return false
	}

	return typing.IsSubclass(subClass.Class, superClass.Class)
}
