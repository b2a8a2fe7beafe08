package label

import (
	"sort"
	"strings"
)

// Line is an ordered sequence of Parts: one permitted configuration of a
// constraint. A Line is only meaningful once Normalize has been applied;
// parsing and every transformation in this module return normalized
// Lines, so callers assembling Parts by hand should call Normalize
// themselves.
type Line struct {
	Parts []Part
}

// Degree is the total number of positions a Line covers. IsStar is true
// when the Line has an unbounded (Star) part; N then holds the degree
// contributed by the remaining, finite parts, and the Line's true degree
// is context-dependent ("the rest").
type Degree struct {
	IsStar bool
	N      int
}

// starPart returns the Line's Star part, if any.
func (l Line) starPart() (Part, bool) {
	for _, p := range l.Parts {
		if p.IsStar() {
			return p, true
		}
	}
	return Part{}, false
}

// HasStar reports whether l has a Star part.
func (l Line) HasStar() bool {
	_, ok := l.starPart()
	return ok
}

// DegreeWithoutStar sums the finite (non-Star) parts' multiplicities.
func (l Line) DegreeWithoutStar() int {
	n := 0
	for _, p := range l.Parts {
		if p.IsStar() {
			continue
		}
		n += p.Mult.Count()
	}
	return n
}

// Degree returns l's Degree, see the Degree doc comment for the Star
// case.
func (l Line) Degree() Degree {
	return Degree{IsStar: l.HasStar(), N: l.DegreeWithoutStar()}
}

// Normalize merges parts sharing an identical Group (summing their
// multiplicities), folds every Star part's group into a single Star
// part, drops any Many(0) that results, canonicalizes Many(1) to One,
// and sorts parts into canonical (Group, Multiplicity) order.
//
// Normalize is idempotent: normalizing an already-normalized Line
// returns an equal Line.
func (l Line) Normalize() Line {
	type bucket struct {
		group Group
		n     int
	}
	buckets := map[string]*bucket{}
	order := make([]string, 0, len(l.Parts))
	var starGroups []Group

	for _, p := range l.Parts {
		if p.IsStar() {
			starGroups = append(starGroups, p.Group)
			continue
		}
		k := p.Group.key()
		b, ok := buckets[k]
		if !ok {
			b = &bucket{group: p.Group}
			buckets[k] = b
			order = append(order, k)
		}
		b.n += p.Mult.Count()
	}

	parts := make([]Part, 0, len(order)+1)
	for _, k := range order {
		b := buckets[k]
		if b.n <= 0 {
			continue
		}
		parts = append(parts, Part{Group: b.group, Mult: countToMultiplicity(b.n)})
	}
	if len(starGroups) > 0 {
		u := starGroups[0]
		for _, g := range starGroups[1:] {
			u = u.Union(g)
		}
		parts = append(parts, Part{Group: u, Mult: StarMultiplicity()})
	}

	sort.Slice(parts, func(i, j int) bool { return parts[i].Less(parts[j]) })
	return Line{Parts: parts}
}

func countToMultiplicity(n int) Multiplicity {
	if n == 1 {
		return OneMultiplicity()
	}
	return ManyMultiplicity(n)
}

// Equal reports whether l and o describe the same Line once both are
// normalized.
func (l Line) Equal(o Line) bool {
	a, b := l.Normalize(), o.Normalize()
	if len(a.Parts) != len(b.Parts) {
		return false
	}
	for i := range a.Parts {
		if !a.Parts[i].Equal(b.Parts[i]) {
			return false
		}
	}
	return true
}

// capSlot is one of A's parts expressed as matchable capacity: a finite
// part can absorb Remaining more units, a Star part can absorb any
// number.
type capSlot struct {
	group     Group
	isStar    bool
	remaining int
}

// Includes reports whether l "includes" other: every unit of other can
// be matched to a distinct unit of l whose group is a superset, star
// units matching only a star-for-star pairing. This is the bipartite,
// multiplicity-respecting matching described for Line inclusion; for the
// frequent 2-part, star-free case it degrades to a direct comparison via
// the same backtracking search, which terminates in at most a handful of
// steps since real problems keep degree small.
func (l Line) Includes(other Line) bool {
	oStar, oHasStar := other.starPart()
	lStar, lHasStar := l.starPart()
	if oHasStar {
		if !lHasStar || !lStar.Group.IsSupersetOf(oStar.Group) {
			return false
		}
	}

	var units []Group
	for _, p := range other.Parts {
		if p.IsStar() {
			continue
		}
		for i := 0; i < p.Mult.Count(); i++ {
			units = append(units, p.Group)
		}
	}

	caps := make([]capSlot, 0, len(l.Parts))
	for _, p := range l.Parts {
		if p.IsStar() {
			// Once the star-to-star subset check above has passed, l's
			// star capacity is spent on matching other's star and must
			// not also absorb other's finite units.
			if oHasStar {
				continue
			}
			caps = append(caps, capSlot{group: p.Group, isStar: true})
			continue
		}
		caps = append(caps, capSlot{group: p.Group, remaining: p.Mult.Count()})
	}

	return assignUnits(units, caps)
}

// assignUnits backtracks over every way to match units[0] into a
// capacity slot with a superset group, recursing on the remainder.
func assignUnits(units []Group, caps []capSlot) bool {
	if len(units) == 0 {
		return true
	}
	u, rest := units[0], units[1:]
	for i := range caps {
		c := &caps[i]
		if !c.isStar && c.remaining <= 0 {
			continue
		}
		if !c.group.IsSupersetOf(u) {
			continue
		}
		if c.isStar {
			if assignUnits(rest, caps) {
				return true
			}
			continue
		}
		c.remaining--
		ok := assignUnits(rest, caps)
		c.remaining++
		if ok {
			return true
		}
	}
	return false
}

// String renders l as whitespace-separated parts, in the same text
// format Parse accepts (modulo label text substitution, which lives in
// the Interner).
func (l Line) String() string {
	parts := make([]string, len(l.Parts))
	for i, p := range l.Parts {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
