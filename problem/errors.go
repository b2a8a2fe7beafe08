package problem

import "errors"

// Sentinel errors for the problem package.
var (
	ErrParse              = errors.New("problem: parse error")
	ErrMixedDegree        = errors.New("problem: mixed-degree lines in one constraint")
	ErrAlphabetMismatch   = errors.New("problem: active and passive label sets disagree")
	ErrNotMaximized       = errors.New("problem: passive constraint is not maximized")
	ErrInfeasible         = errors.New("problem: hardening left an empty constraint")
	ErrDuplicateName      = errors.New("problem: duplicate label name")
	ErrBijectionMismatch  = errors.New("problem: rename must cover every label exactly once")
	ErrForbiddenCharacter = errors.New("problem: label name contains a forbidden character")
	ErrUnsupportedDegree  = errors.New("problem: unsupported passive degree")
)
