package problem

import (
	"github.com/katalvlaran/roundelim/constraint"
	"github.com/katalvlaran/roundelim/label"
	"github.com/katalvlaran/roundelim/progress"
)

// MergeEquivalentLabels contracts every strongly-connected component of
// the diagram to its representative label: SCCs are, by construction,
// labels that are mutually diagram-predecessors of one another, so they
// can be merged without changing which graphs the problem solves. It
// reuses p.Diagram if already computed, otherwise computes one locally
// without touching p's cache.
func (p Problem) MergeEquivalentLabels(h progress.Handler) Problem {
	members := p.Diagram
	var directMembers map[label.Label][]label.Label
	if members != nil {
		directMembers = members.DirectMembers
	} else {
		labels := p.Labels()
		indirect := computeIndirect(labels, p.Passive, h)
		directMembers, _ = contractToDirect(labels, indirect)
	}

	repOf := make(map[label.Label]label.Label)
	for rep, group := range directMembers {
		for _, l := range group {
			repOf[l] = rep
		}
	}

	active := contractConstraintLabels(p.Active, repOf)
	passive := contractConstraintLabels(p.Passive, repOf)
	return p.cloned(active, passive, p.Interner, p.OldLabels)
}

func contractConstraintLabels(c constraint.Constraint, repOf map[label.Label]label.Label) constraint.Constraint {
	out := constraint.New(c.Degree)
	for _, line := range c.Lines {
		parts := make([]label.Part, len(line.Parts))
		for i, part := range line.Parts {
			labels := make([]label.Label, 0, part.Group.Len())
			for _, l := range part.Group.Labels() {
				if rep, ok := repOf[l]; ok {
					labels = append(labels, rep)
				} else {
					labels = append(labels, l)
				}
			}
			parts[i] = label.Part{Group: label.NewGroup(labels...), Mult: part.Mult}
		}
		out.Lines = append(out.Lines, label.Line{Parts: parts}.Normalize())
	}
	return out
}
