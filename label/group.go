package label

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/roundelim/bigset"
)

// Label is an opaque identifier, unique within the Problem that produced
// it. Label 0 is not privileged.
type Label int

// Group is a non-empty, ascending, duplicate-free sequence of Labels: one
// position's worth of permitted choices in a Line. The zero Group is not
// valid; use NewGroup.
type Group struct {
	labels []Label
}

// NewGroup builds a Group from the given labels, sorting and
// deduplicating them. Passing no labels returns an empty Group, which
// callers should treat as invalid wherever the data model requires a
// non-empty one (see Part).
func NewGroup(labels ...Label) Group {
	cp := make([]Label, len(labels))
	copy(cp, labels)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:0]
	for i, l := range cp {
		if i == 0 || l != out[len(out)-1] {
			out = append(out, l)
		}
	}
	return Group{labels: out}
}

// FromSet reconstructs a Group from a bigset.Set.
func FromSet(s bigset.Set) Group {
	labels := make([]Label, 0, s.Count())
	s.IterOnes(func(l int) bool {
		labels = append(labels, Label(l))
		return true
	})
	return Group{labels: labels}
}

// Len reports how many labels are in g.
func (g Group) Len() int { return len(g.labels) }

// IsEmpty reports whether g has no labels; an empty Group never appears
// in a well-formed Part.
func (g Group) IsEmpty() bool { return len(g.labels) == 0 }

// First returns the smallest label in g.
func (g Group) First() Label { return g.labels[0] }

// Labels returns a copy of g's labels in ascending order.
func (g Group) Labels() []Label {
	out := make([]Label, len(g.labels))
	copy(out, g.labels)
	return out
}

// AsSet returns g as a bigset.Set.
func (g Group) AsSet() bigset.Set {
	s := bigset.New()
	for _, l := range g.labels {
		s = s.With(int(l))
	}
	return s
}

// Equal reports whether g and o contain exactly the same labels.
func (g Group) Equal(o Group) bool {
	if len(g.labels) != len(o.labels) {
		return false
	}
	for i, l := range g.labels {
		if l != o.labels[i] {
			return false
		}
	}
	return true
}

// Less gives Group a total, deterministic order: lexical by label, with
// a proper prefix ordered first, used to canonicalize Part and Line
// ordering.
func (g Group) Less(o Group) bool {
	n := len(g.labels)
	if len(o.labels) < n {
		n = len(o.labels)
	}
	for i := 0; i < n; i++ {
		if g.labels[i] != o.labels[i] {
			return g.labels[i] < o.labels[i]
		}
	}
	return len(g.labels) < len(o.labels)
}

// IsSubsetOf reports whether every label in g is also in o.
func (g Group) IsSubsetOf(o Group) bool {
	return g.AsSet().IsSubsetOf(o.AsSet())
}

// IsSupersetOf reports whether every label in o is also in g.
func (g Group) IsSupersetOf(o Group) bool {
	return o.IsSubsetOf(g)
}

// Contains reports whether l is a member of g.
func (g Group) Contains(l Label) bool {
	return g.AsSet().Test(int(l))
}

// Difference returns the labels present in g but not in o.
func (g Group) Difference(o Group) Group {
	return FromSet(g.AsSet().Difference(o.AsSet()))
}

// Union returns the labels present in g or o.
func (g Group) Union(o Group) Group {
	return FromSet(g.AsSet().Union(o.AsSet()))
}

// Intersection returns the labels present in both g and o.
func (g Group) Intersection(o Group) Group {
	return FromSet(g.AsSet().Intersection(o.AsSet()))
}

// key returns a canonical string usable as a map key, since Group holds
// a slice and is not itself comparable.
func (g Group) key() string {
	var b strings.Builder
	for i, l := range g.labels {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(l)))
	}
	return b.String()
}

// Key returns a canonical string uniquely identifying g's label set,
// suitable for use as a map key by callers outside this package (the
// diagram and maximization algorithms key intermediate results by
// Group).
func (g Group) Key() string { return g.key() }

// String renders g as brace-enclosed, comma-separated label integers.
func (g Group) String() string {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(g.key())
	b.WriteByte('}')
	return b.String()
}
