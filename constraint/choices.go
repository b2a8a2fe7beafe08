package constraint

import "github.com/katalvlaran/roundelim/label"

// SetsOfAllChoices returns, for every line of c, every distinct label
// set obtainable by picking one representative label from each of the
// line's parts (ignoring multiplicity and star counts: a part only
// contributes which labels are *available* at that position, not how
// many times). This is the coarse notion triviality and
// coloring-solvability are built from.
func (c Constraint) SetsOfAllChoices() []label.Group {
	var out []label.Group
	for _, l := range c.Lines {
		for _, g := range partChoiceSets(l) {
			out = appendUnique(out, g)
		}
	}
	return out
}

// MinimalSetsOfAllChoices returns the subset-minimal elements of
// SetsOfAllChoices: any set that is a strict superset of another set in
// the collection is dropped.
func (c Constraint) MinimalSetsOfAllChoices() []label.Group {
	all := c.SetsOfAllChoices()
	out := make([]label.Group, 0, len(all))
	for i, g := range all {
		dominated := false
		for j, o := range all {
			if i == j {
				continue
			}
			if o.IsSubsetOf(g) && !g.IsSubsetOf(o) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, g)
		}
	}
	return out
}

func partChoiceSets(l label.Line) []label.Group {
	combos := [][]label.Label{{}}
	for _, p := range l.Parts {
		labels := p.Group.Labels()
		next := make([][]label.Label, 0, len(combos)*len(labels))
		for _, prefix := range combos {
			for _, lbl := range labels {
				t := make([]label.Label, 0, len(prefix)+1)
				t = append(t, prefix...)
				t = append(t, lbl)
				next = append(next, t)
			}
		}
		combos = next
	}
	out := make([]label.Group, 0, len(combos))
	for _, c := range combos {
		out = append(out, label.NewGroup(c...))
	}
	return out
}

func appendUnique(groups []label.Group, g label.Group) []label.Group {
	for _, o := range groups {
		if g.Equal(o) {
			return groups
		}
	}
	return append(groups, g)
}
