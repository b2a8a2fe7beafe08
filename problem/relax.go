package problem

import (
	"github.com/katalvlaran/roundelim/constraint"
	"github.com/katalvlaran/roundelim/label"
	"github.com/katalvlaran/roundelim/progress"
)

// RelaxMerge replaces from with to in every group of both constraints,
// removing from from the active alphabet. The result is equally hard or
// easier than p, since any assignment satisfying it can be turned into
// one satisfying p by mapping to back to from.
func (p Problem) RelaxMerge(from, to label.Label) Problem {
	active := mapConstraintLabel(p.Active, from, to)
	passive := mapConstraintLabel(p.Passive, from, to)
	return p.cloned(active, passive, p.Interner, p.OldLabels)
}

// RelaxMergeGroup replaces every label in froms with to in every group of
// both constraints, removing each merged label from the active alphabet in
// one atomic step. It is equivalent to calling RelaxMerge(f, to) for each f
// in froms in turn, except that froms is collapsed together rather than
// threading through |froms| intermediate Problems; to itself is ignored if
// it appears in froms, since merging a label into itself is a no-op.
func (p Problem) RelaxMergeGroup(froms []label.Label, to label.Label) Problem {
	active := mapConstraintLabels(p.Active, froms, to)
	passive := mapConstraintLabels(p.Passive, froms, to)
	return p.cloned(active, passive, p.Interner, p.OldLabels)
}

func mapConstraintLabels(c constraint.Constraint, froms []label.Label, to label.Label) constraint.Constraint {
	out := constraint.New(c.Degree)
	for _, line := range c.Lines {
		parts := make([]label.Part, len(line.Parts))
		for i, part := range line.Parts {
			parts[i] = label.Part{Group: replaceGroupInGroup(part.Group, froms, to), Mult: part.Mult}
		}
		out.Lines = append(out.Lines, label.Line{Parts: parts}.Normalize())
	}
	return out
}

func replaceGroupInGroup(g label.Group, froms []label.Label, to label.Label) label.Group {
	labels := make([]label.Label, 0, g.Len())
	changed := false
	for _, l := range g.Labels() {
		replaced := l
		for _, from := range froms {
			if l == from && from != to {
				replaced = to
				changed = true
				break
			}
		}
		labels = append(labels, replaced)
	}
	if !changed {
		return g
	}
	return label.NewGroup(labels...)
}

func mapConstraintLabel(c constraint.Constraint, from, to label.Label) constraint.Constraint {
	out := constraint.New(c.Degree)
	for _, line := range c.Lines {
		parts := make([]label.Part, len(line.Parts))
		for i, part := range line.Parts {
			parts[i] = label.Part{Group: replaceInGroup(part.Group, from, to), Mult: part.Mult}
		}
		out.Lines = append(out.Lines, label.Line{Parts: parts}.Normalize())
	}
	return out
}

func replaceInGroup(g label.Group, from, to label.Label) label.Group {
	if !g.Contains(from) {
		return g
	}
	labels := make([]label.Label, 0, g.Len())
	for _, l := range g.Labels() {
		if l == from {
			labels = append(labels, to)
			continue
		}
		labels = append(labels, l)
	}
	return label.NewGroup(labels...)
}

// RelaxAddArrow adjusts the diagram by hand: in every passive group
// containing from, it additionally includes every diagram successor of
// to. It recomputes the predecessor relation fresh rather than relying
// on a cached Diagram, so it is safe to call before ComputeDiagram.
func (p Problem) RelaxAddArrow(from, to label.Label, h progress.Handler) Problem {
	labels := p.Labels()
	successors := computeIndirect(labels, p.Passive, h)
	toSuccessors := label.FromSet(successors[to].With(int(to)))

	out := constraint.New(p.Passive.Degree)
	for _, line := range p.Passive.Lines {
		parts := make([]label.Part, len(line.Parts))
		for i, part := range line.Parts {
			g := part.Group
			if g.Contains(from) {
				g = g.Union(toSuccessors)
			}
			parts[i] = label.Part{Group: g, Mult: part.Mult}
		}
		out.Lines = append(out.Lines, label.Line{Parts: parts}.Normalize())
	}
	return p.cloned(p.Active, out, p.Interner, p.OldLabels)
}
