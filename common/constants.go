package common

const (
	ConfigFileName = "mocha.toml"
	MochaVersion   = "0.1.0"
)

// Names of the built-in functions registered in the global scope before any
// user declarations are processed.
var BuiltinFuncNames = []string{"print", "println"}

// Visibility is the access level of a declared member.  The ordinal order is
// significant: an overriding method may not have a lower level than the
// method it overrides.
type Visibility int

// Enumeration of visibilities
const (
	Private Visibility = iota
	Default
	Protected
	Public
)

func (v Visibility) String() string {
	switch v {
	case Private:
		return "private"
	case Protected:
		return "protected"
	case Public:
		return "public"
	default:
		return "default"
	}
}
