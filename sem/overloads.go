package sem

import (
	"mocha/typing"
)

// Signature is the name and ordered parameter types of a callable.
type Signature struct {
	Name       string
	ParamTypes []typing.Type

	// VarArgs indicates that the last parameter is an array that collects all
	// trailing arguments.
	VarArgs bool
}

// Repr renders the signature as a call would be written: `f(int, float)`.
func (s Signature) Repr() string {
	return s.Name + "(" + typing.ReprTypeList(s.ParamTypes) + ")"
}

// MatchesExactly reports whether two signatures have the same name and
// pairwise equal parameter types.  Two such declarations cannot coexist.
func (s Signature) MatchesExactly(other Signature) bool {
	return s.Name == other.Name && typing.EqualTypeLists(s.ParamTypes, other.ParamTypes)
}

// IsCompatibleWith reports whether the signature accepts arguments of the
// given types.
func (s Signature) IsCompatibleWith(args []typing.Type) bool {
	_, ok := Specificity(s, args)
	return ok
}

// Enumeration of per-argument specificity scores.  Lower is better.
const (
	ScoreExact     = 0
	ScoreConvert   = 1 // inheritance or any other assignment conversion
	ScorePromotion = 2
	ScoreNull      = 3
)

// Specificity computes how well an argument list matches a signature by
// summing the score of each argument.  The second return is false if the
// arguments do not match at all.
func Specificity(s Signature, args []typing.Type) (int, bool) {
	params := s.ParamTypes

	if s.VarArgs && len(params) > 0 {
		fixed := params[:len(params)-1]
		if len(args) < len(fixed) {
			return 0, false
		}

		// a matching array passed in the variadic position is used directly
		if len(args) == len(params) {
			if score, ok := scoreArgs(params, args); ok {
				return score, true
			}
		}

		score, ok := scoreArgs(fixed, args[:len(fixed)])
		if !ok {
			return 0, false
		}

		elem := variadicElem(params[len(params)-1])
		for _, arg := range args[len(fixed):] {
			argScore, ok := scoreArg(elem, arg)
			if !ok {
				return 0, false
			}

			score += argScore
		}

		return score, true
	}

	if len(args) != len(params) {
		return 0, false
	}

	return scoreArgs(params, args)
}

func scoreArgs(params, args []typing.Type) (int, bool) {
	score := 0
	for i, param := range params {
		argScore, ok := scoreArg(param, args[i])
		if !ok {
			return 0, false
		}

		score += argScore
	}

	return score, true
}

func scoreArg(param, arg typing.Type) (int, bool) {
	switch {
	case typing.Equals(param, arg), typing.IsError(param), typing.IsError(arg):
		return ScoreExact, true
	case typing.IsNull(arg) && typing.IsReference(param):
		return ScoreNull, true
	case typing.CanPromote(arg, param):
		return ScorePromotion, true
	case typing.IsAssignableFrom(param, arg):
		return ScoreConvert, true
	default:
		return 0, false
	}
}

func variadicElem(t typing.Type) typing.Type {
	if at, ok := t.(*typing.ArrayType); ok {
		return typing.ElemType(at)
	}

	return t
}

// SelectOverload selects the best matching candidate for an argument list.
// The candidate with the lowest total specificity wins; among equally good
// candidates the first declared wins and the others are returned as ties.
// The best candidate is nil if no candidate matches.
func SelectOverload[C Callable](candidates []C, args []typing.Type) (best C, ties []C) {
	bestScore := -1

	for _, c := range candidates {
		score, ok := Specificity(c.Signature(), args)
		if !ok {
			continue
		}

		if bestScore == -1 || score < bestScore {
			best = c
			bestScore = score
			ties = nil
		} else if score == bestScore {
			ties = append(ties, c)
		}
	}

	return
}

// Signatures renders the signatures of a candidate list for messages.
func Signatures[C Callable](candidates []C) []string {
	sigs := make([]string, len(candidates))
	for i, c := range candidates {
		sigs[i] = c.Signature().Repr()
	}

	return sigs
}
