// Package label implements the Group / Part / Line algebra that the rest
// of this module is built on: a Group is a non-empty set of Labels, a
// Part tags a Group with how many positions it covers, and a Line is an
// ordered sequence of Parts describing one permitted configuration of a
// constraint.
//
// Labels are opaque integers assigned by an Interner while parsing text;
// nothing in this package interprets label 0 specially.
//
// This file declares no types itself; see group.go, multiplicity.go,
// part.go, line.go and parse.go.
//
// Errors:
//
//	ErrEmptyGroup   - a token produced no labels.
//	ErrParse        - malformed line text (unterminated '(', empty '()', text after '*').
//	ErrBadMultiplicity - a '^' suffix that is not a positive integer.
package label
