// Package problem implements Problem: the active/passive constraint pair
// together with the label↔text map and the derived diagrams, triviality
// witnesses and coloring number a Problem accumulates as the four core
// algorithms run over it (speedup, diagram, triviality, coloring).
//
// Ownership is by value: every transformation (Speedup, RelaxMerge,
// HardenKeep, MergeEquivalentLabels, Rename, ...) returns a new Problem
// with its derived-result caches cleared; only ComputeDiagram,
// ComputeTriviality and ComputeColoringSolvability mutate their receiver,
// and only to fill a cache that must not already be populated.
//
// This file declares no types itself; see problem.go, parse.go,
// serial.go, diagram.go, triviality.go, coloring.go, speedup.go,
// relax.go, harden.go, rename.go, merge_equivalent.go and
// discard_useless.go.
//
// Errors:
//
//	ErrParse               - malformed problem text (see label.ErrParse).
//	ErrMixedDegree         - a constraint mixed lines of different degree.
//	ErrAlphabetMismatch    - declared but not returned: FromText reports an active/passive label-set disagreement as a "parse:alphabet-mismatch" progress notification and still succeeds.
//	ErrNotMaximized        - an operation that requires a maximized passive constraint was called before Maximize.
//	ErrInfeasible          - a hardening left an empty constraint.
//	ErrDuplicateName       - rename was given two labels the same new name.
//	ErrBijectionMismatch   - rename's label list does not cover every label exactly once.
//	ErrForbiddenCharacter  - a rename target contains one of "()*^" or a space.
//	ErrUnsupportedDegree   - coloring-solvability was requested on a non-degree-2 passive constraint.
package problem
