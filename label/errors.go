package label

import "errors"

// Sentinel errors for the label package. Parse-time failures wrap one of
// these with fmt.Errorf("%w: ...", ...) so callers can errors.Is against
// a stable value while still getting a token-specific message.
var (
	// ErrEmptyGroup indicates a token contained no label characters.
	ErrEmptyGroup = errors.New("label: empty group")

	// ErrParse indicates malformed line text.
	ErrParse = errors.New("label: parse error")

	// ErrBadMultiplicity indicates a '^' multiplicity suffix that is not a
	// positive integer.
	ErrBadMultiplicity = errors.New("label: bad multiplicity")
)
