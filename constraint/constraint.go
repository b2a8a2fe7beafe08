package constraint

import (
	"github.com/katalvlaran/roundelim/bigset"
	"github.com/katalvlaran/roundelim/label"
)

// Constraint is a set of Lines, all of the stated Degree. When
// IsMaximized is true, Lines is closed under the maximization rule
// (Maximize) and forms an antichain under Line.Includes: no line is
// included in another.
type Constraint struct {
	Lines       []label.Line
	Degree      int
	IsMaximized bool
}

// New returns an empty Constraint of the given degree.
func New(degree int) Constraint {
	return Constraint{Degree: degree}
}

// Clone returns an independent copy of c.
func (c Constraint) Clone() Constraint {
	lines := make([]label.Line, len(c.Lines))
	copy(lines, c.Lines)
	return Constraint{Lines: lines, Degree: c.Degree, IsMaximized: c.IsMaximized}
}

// twoGroups extracts a line's two degree-2 groups, treating a
// single-part Many(2) line as the same group twice.
func twoGroups(l label.Line) (label.Group, label.Group) {
	if len(l.Parts) == 1 {
		return l.Parts[0].Group, l.Parts[0].Group
	}
	return l.Parts[0].Group, l.Parts[1].Group
}

// AddLineAndDiscardNonMaximal folds line into c: if an existing line
// already implies line, c is returned unchanged; otherwise every
// existing line that line implies is dropped and line is appended. The
// result is marked not maximized, since a single insertion does not
// re-establish closure.
func (c Constraint) AddLineAndDiscardNonMaximal(line label.Line) Constraint {
	line = line.Normalize()
	for _, l := range c.Lines {
		if l.Includes(line) {
			return c
		}
	}
	kept := make([]label.Line, 0, len(c.Lines)+1)
	for _, l := range c.Lines {
		if !line.Includes(l) {
			kept = append(kept, l)
		}
	}
	kept = append(kept, line)
	return Constraint{Lines: kept, Degree: c.Degree, IsMaximized: false}
}

// Includes reports whether some line of c implies other. Maximized or
// non-degree-2 constraints use a direct scan; unmaximized degree-2
// constraints use the deeper split-based recursive check (includesSlow),
// since a linear scan alone is unsound before maximization has run.
func (c Constraint) Includes(other label.Line) bool {
	if c.IsMaximized || c.Degree != 2 {
		for _, l := range c.Lines {
			if l.Includes(other) {
				return true
			}
		}
		return false
	}
	return c.includesSlow(other)
}

type groupPair struct{ a, b label.Group }

// includesSlow implements the degree-2 split-based inclusion check: it
// repeatedly tries to carve the query's two groups against a stored
// line's two groups (in both orientations), recursing on the
// intersection/difference pieces, until every piece is trivially
// satisfied (empty) or no stored line can make further progress.
func (c Constraint) includesSlow(other label.Line) bool {
	g1, g2 := twoGroups(other)

	pairs := make([]groupPair, 0, 2*len(c.Lines))
	for _, l := range c.Lines {
		a, b := twoGroups(l)
		pairs = append(pairs, groupPair{a, b}, groupPair{b, a})
	}
	return includesSlowHelper(g1, g2, pairs)
}

func includesSlowHelper(g1, g2 label.Group, pairs []groupPair) bool {
	if g1.IsEmpty() || g2.IsEmpty() {
		return true
	}
	for i, pr := range pairs {
		int1 := pr.a.Intersection(g1)
		int2 := pr.b.Intersection(g2)
		if int1.IsEmpty() || int2.IsEmpty() {
			continue
		}
		diff1 := g1.Difference(pr.a)
		diff2 := g2.Difference(pr.b)
		rest := pairs[i+1:]
		return includesSlowHelper(int1, diff2, rest) &&
			includesSlowHelper(diff1, int2, rest) &&
			includesSlowHelper(diff1, diff2, rest)
	}
	return false
}

// replacingOccurrence returns a copy of l with its i'th part's
// occurrence of l1 replaced by l2: a One part's whole group becomes
// {l2}; a Many(n) part loses one unit (becoming Many(n-1)) and gains a
// separate One{l2} part; a Star part keeps its group and gains a
// separate One{l2} part.
func replacingOccurrence(l label.Line, i int, l2 label.Label) label.Line {
	parts := make([]label.Part, len(l.Parts))
	copy(parts, l.Parts)
	p := parts[i]
	extra := label.Part{Group: label.NewGroup(l2), Mult: label.OneMultiplicity()}
	switch p.Mult.Kind {
	case label.One:
		parts[i] = extra
	case label.Many:
		parts[i] = label.Part{Group: p.Group, Mult: label.ManyMultiplicity(p.Mult.N - 1)}
		parts = append(parts, extra)
	default: // Star
		parts = append(parts, extra)
	}
	return label.Line{Parts: parts}
}

// IsDiagramPredecessor reports whether l1 is a diagram predecessor of
// l2: replacing any single occurrence of l1 with l2 in any of c's lines
// keeps that line implied by c. This is the basic building block of the
// strength diagram (see package problem's diagram.go); it is always
// correct when it returns true, but may return a false negative if c has
// not been maximized.
func (c Constraint) IsDiagramPredecessor(l1, l2 label.Label) bool {
	for _, line := range c.Lines {
		for i, part := range line.Parts {
			if !part.Group.Contains(l1) {
				continue
			}
			test := replacingOccurrence(line, i, l2)
			if !c.Includes(test) {
				return false
			}
		}
	}
	return true
}

// LabelsAppearing returns the set of every label used by any line of c.
func (c Constraint) LabelsAppearing() bigset.Set {
	s := bigset.New()
	for _, l := range c.Lines {
		for _, p := range l.Parts {
			s = s.Union(p.Group.AsSet())
		}
	}
	return s
}
