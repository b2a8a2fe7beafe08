package problem

import (
	"github.com/katalvlaran/roundelim/bigset"
	"github.com/katalvlaran/roundelim/constraint"
	"github.com/katalvlaran/roundelim/label"
	"github.com/katalvlaran/roundelim/progress"
)

// DiscardUselessStuff performs the three-phase active/passive cleanup
// the reference implementation left unimplemented: (i) shrink every
// active group by dropping labels diagram-dominated by another label
// already present in the same group, (ii) drop active lines dominated
// by another under the diagram-aware relation H includes' H' (every
// label of H' has a diagram successor somewhere in H), and (iii)
// harden the passive constraint down to the labels still appearing in
// the shrunk active constraint. recomputeDiagram forces a fresh
// predecessor computation instead of reusing p.Diagram.
func (p Problem) DiscardUselessStuff(recomputeDiagram bool, h progress.Handler) Problem {
	labels := p.Labels()
	var successors map[label.Label]bigset.Set
	if !recomputeDiagram && p.Diagram != nil {
		successors = p.Diagram.Indirect
	} else {
		successors = computeIndirect(labels, p.Passive, h)
	}

	shrunk := shrinkDominatedLabels(p.Active, successors)
	reduced := dropDominatedLines(shrunk, successors)

	stillAppearing := reduced.LabelsAppearing()
	passive := hardenConstraint(p.Passive, label.FromSet(stillAppearing))

	return p.cloned(reduced, passive, p.Interner, p.OldLabels)
}

// shrinkDominatedLabels drops a label x from a group whenever some
// other label y in the same group is its diagram predecessor
// (successors[y] contains x), keeping y as the more general choice.
func shrinkDominatedLabels(c constraint.Constraint, successors map[label.Label]bigset.Set) constraint.Constraint {
	out := constraint.New(c.Degree)
	for _, line := range c.Lines {
		parts := make([]label.Part, len(line.Parts))
		for i, part := range line.Parts {
			members := part.Group.Labels()
			keep := make([]label.Label, 0, len(members))
			for _, x := range members {
				dominated := false
				for _, y := range members {
					if y == x {
						continue
					}
					if successors[y].Test(int(x)) {
						dominated = true
						break
					}
				}
				if !dominated {
					keep = append(keep, x)
				}
			}
			parts[i] = label.Part{Group: label.NewGroup(keep...), Mult: part.Mult}
		}
		out.Lines = append(out.Lines, label.Line{Parts: parts}.Normalize())
	}
	return out
}

// dropDominatedLines removes any line H' for which another line H
// satisfies H includes' H': every label of H' has a diagram successor
// somewhere in H (H already covers whatever H' would require).
func dropDominatedLines(c constraint.Constraint, successors map[label.Label]bigset.Set) constraint.Constraint {
	flat := make([]label.Group, len(c.Lines))
	for i, line := range c.Lines {
		flat[i] = flattenLine(line)
	}

	out := constraint.New(c.Degree)
	for i, line := range c.Lines {
		dominated := false
		for j := range c.Lines {
			if i == j {
				continue
			}
			if !diagramDominates(flat[j], flat[i], successors) {
				continue
			}
			// Mutual domination (H includes' H' and H' includes' H): keep
			// the smaller, more-reduced flattened group and drop the
			// other, so two lines that dominate each other don't both
			// survive nor both vanish.
			if diagramDominates(flat[i], flat[j], successors) && preferSurvive(flat[i], flat[j]) {
				continue
			}
			dominated = true
			break
		}
		if !dominated {
			out.Lines = append(out.Lines, line)
		}
	}
	return out
}

// preferSurvive reports whether a should be kept over b when two lines
// mutually dominate each other under the diagram relation: the smaller
// flattened group is preferred (fewer labels first, then Group.Less for
// a deterministic tie-break between equal-size groups).
func preferSurvive(a, b label.Group) bool {
	if a.Len() != b.Len() {
		return a.Len() < b.Len()
	}
	return a.Less(b)
}

func flattenLine(l label.Line) label.Group {
	var labels []label.Label
	for _, part := range l.Parts {
		labels = append(labels, part.Group.Labels()...)
	}
	return label.NewGroup(labels...)
}

// diagramDominates reports whether every label of hPrime has a diagram
// successor in h (h includes' hPrime).
func diagramDominates(h, hPrime label.Group, successors map[label.Label]bigset.Set) bool {
	for _, a := range hPrime.Labels() {
		found := false
		for _, b := range h.Labels() {
			if successors[a].Test(int(b)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
