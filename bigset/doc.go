// Package bigset implements a growable bitmap used to encode sets of
// labels (see label.Group).
//
// Representation: a slice of uint64 words, growing as large labels are
// set. Small sets (the common case, at most a few dozen labels) occupy
// one or two words; nothing in the API distinguishes "small" from
// "large" — growth is transparent, and every operation treats two sets
// of different word-lengths as implicitly zero-padded on the shorter
// one. This plays the role the design notes ask of a tagged small/large
// union without the duplicated bitwise logic such a union would need.
package bigset
