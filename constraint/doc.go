// Package constraint implements Constraint: a set of same-degree Lines,
// optionally maximized (closed under the maximization rule so that no
// line is included in another).
//
// This file declares no types itself; see constraint.go, maximize.go and
// choices.go.
//
// Errors (declared in errors.go; no function in this package returns
// them, and Maximize handles every degree without failing):
//
//	ErrDegreeMismatch     - a line's degree does not match the constraint's.
//	ErrUnsupportedDegree  - a degree-2-only operation was called on another degree.
//	ErrNotMaximized       - an operation that requires a maximized constraint was called on one that isn't.
package constraint
