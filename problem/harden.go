package problem

import (
	"github.com/katalvlaran/roundelim/constraint"
	"github.com/katalvlaran/roundelim/label"
	"github.com/katalvlaran/roundelim/progress"
)

// HardenKeep intersects every group of both constraints with keep (or,
// if keepPredecessors is set, with keep union every diagram predecessor
// of a kept label), dropping any line an empty group results in. The
// result is equally hard or harder than p: ErrInfeasible if hardening
// empties out either constraint entirely.
func (p Problem) HardenKeep(keep []label.Label, keepPredecessors bool, h progress.Handler) (Problem, error) {
	keepSet := label.NewGroup(keep...).AsSet()
	if keepPredecessors {
		labels := p.Labels()
		successors := computeIndirect(labels, p.Passive, h)
		predecessors := invertIndirect(labels, successors)
		for _, l := range keep {
			keepSet = keepSet.Union(predecessors[l])
		}
	}
	keepGroup := label.FromSet(keepSet)

	active := hardenConstraint(p.Active, keepGroup)
	passive := hardenConstraint(p.Passive, keepGroup)
	if len(active.Lines) == 0 || len(passive.Lines) == 0 {
		return Problem{}, ErrInfeasible
	}
	return p.cloned(active, passive, p.Interner, p.OldLabels), nil
}

// HardenRemove is HardenKeep(every label but l, keepPredecessors).
func (p Problem) HardenRemove(l label.Label, keepPredecessors bool, h progress.Handler) (Problem, error) {
	var keep []label.Label
	for _, other := range p.Labels() {
		if other != l {
			keep = append(keep, other)
		}
	}
	return p.HardenKeep(keep, keepPredecessors, h)
}

func hardenConstraint(c constraint.Constraint, keep label.Group) constraint.Constraint {
	out := constraint.New(c.Degree)
	for _, line := range c.Lines {
		parts := make([]label.Part, 0, len(line.Parts))
		dead := false
		for _, part := range line.Parts {
			g := part.Group.Intersection(keep)
			if g.IsEmpty() {
				dead = true
				break
			}
			parts = append(parts, label.Part{Group: g, Mult: part.Mult})
		}
		if dead {
			continue
		}
		out.Lines = append(out.Lines, label.Line{Parts: parts}.Normalize())
	}
	return out
}
