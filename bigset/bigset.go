package bigset

import "math/bits"

const wordBits = 64

// Set is an immutable-by-convention bitmap over non-negative integer
// labels. All mutating methods return a new Set; callers that want to
// build one up in a loop should reassign the result rather than expect
// in-place mutation.
type Set struct {
	words []uint64
}

// New returns an empty Set.
func New() Set {
	return Set{}
}

// FromBits returns a Set containing exactly the given labels.
func FromBits(labels ...int) Set {
	var s Set
	for _, l := range labels {
		s = s.With(l)
	}
	return s
}

// wordIndex/bitIndex split a label into its word and in-word bit position.
func wordIndex(label int) int { return label / wordBits }
func bitIndex(label int) uint { return uint(label % wordBits) }

// Test reports whether label is a member of s. Labels are always >= 0.
func (s Set) Test(label int) bool {
	if label < 0 {
		return false
	}
	w := wordIndex(label)
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(uint64(1)<<bitIndex(label)) != 0
}

// With returns a new Set with label added.
func (s Set) With(label int) Set {
	w := wordIndex(label)
	words := growTo(s.words, w+1)
	words[w] |= uint64(1) << bitIndex(label)
	return Set{words: words}
}

// Without returns a new Set with label removed.
func (s Set) Without(label int) Set {
	w := wordIndex(label)
	if w >= len(s.words) {
		return s.Clone()
	}
	words := cloneWords(s.words)
	words[w] &^= uint64(1) << bitIndex(label)
	return Set{words: trim(words)}
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	return Set{words: cloneWords(s.words)}
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of members of s.
func (s Set) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// First returns the smallest member of s and true, or (0, false) if s is
// empty.
func (s Set) First() (int, bool) {
	for i, w := range s.words {
		if w != 0 {
			return i*wordBits + bits.TrailingZeros64(w), true
		}
	}
	return 0, false
}

// IterOnes calls f once for every member of s, in ascending order. If f
// returns false, iteration stops early.
func (s Set) IterOnes(f func(label int) bool) {
	for i, w := range s.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			if !f(i*wordBits + tz) {
				return
			}
			w &= w - 1
		}
	}
}

// Slice returns the members of s as a sorted slice.
func (s Set) Slice() []int {
	out := make([]int, 0, s.Count())
	s.IterOnes(func(label int) bool {
		out = append(out, label)
		return true
	})
	return out
}

func maxLen(a, b []uint64) int {
	if len(a) > len(b) {
		return len(a)
	}
	return len(b)
}

func wordAt(words []uint64, i int) uint64 {
	if i >= len(words) {
		return 0
	}
	return words[i]
}

// Union returns the set union of s and other.
func (s Set) Union(other Set) Set {
	n := maxLen(s.words, other.words)
	words := make([]uint64, n)
	for i := range words {
		words[i] = wordAt(s.words, i) | wordAt(other.words, i)
	}
	return Set{words: trim(words)}
}

// Intersection returns the set intersection of s and other.
func (s Set) Intersection(other Set) Set {
	n := maxLen(s.words, other.words)
	words := make([]uint64, n)
	for i := range words {
		words[i] = wordAt(s.words, i) & wordAt(other.words, i)
	}
	return Set{words: trim(words)}
}

// Difference returns the members of s that are not in other.
func (s Set) Difference(other Set) Set {
	n := maxLen(s.words, other.words)
	words := make([]uint64, n)
	for i := range words {
		words[i] = wordAt(s.words, i) &^ wordAt(other.words, i)
	}
	return Set{words: trim(words)}
}

// IsSubsetOf reports whether every member of s is a member of other.
func (s Set) IsSubsetOf(other Set) bool {
	for i, w := range s.words {
		if w&^wordAt(other.words, i) != 0 {
			return false
		}
	}
	return true
}

// IsSupersetOf reports whether every member of other is a member of s.
func (s Set) IsSupersetOf(other Set) bool {
	return other.IsSubsetOf(s)
}

// Equal reports whether s and other have exactly the same members.
func (s Set) Equal(other Set) bool {
	n := maxLen(s.words, other.words)
	for i := 0; i < n; i++ {
		if wordAt(s.words, i) != wordAt(other.words, i) {
			return false
		}
	}
	return true
}

// cloneWords copies a word slice, preserving nil for nil/empty input.
func cloneWords(words []uint64) []uint64 {
	if len(words) == 0 {
		return nil
	}
	out := make([]uint64, len(words))
	copy(out, words)
	return out
}

// growTo returns a copy of words with length at least n, preserving
// existing content.
func growTo(words []uint64, n int) []uint64 {
	if len(words) >= n {
		return cloneWords(words)
	}
	out := make([]uint64, n)
	copy(out, words)
	return out
}

// trim drops trailing all-zero words so Equal/Count/IsEmpty agree
// regardless of how a Set was built up.
func trim(words []uint64) []uint64 {
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	return words[:n]
}
