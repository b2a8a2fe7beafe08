package problem

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/roundelim/bigset"
	"github.com/katalvlaran/roundelim/constraint"
	"github.com/katalvlaran/roundelim/label"
	"github.com/katalvlaran/roundelim/progress"
)

// Speedup performs one round of round elimination: Step U builds a new
// active constraint from every old-label assignment the maximized
// passive constraint rejects, then Step E builds a new passive
// constraint by grouping the old active lines' groups under the new
// label set. p itself is untouched; the result's caches start empty.
//
// p.Passive must already be maximized (ErrNotMaximized otherwise).
func (p Problem) Speedup(h progress.Handler) (Problem, error) {
	if !p.Passive.IsMaximized {
		return Problem{}, ErrNotMaximized
	}

	labels := p.Labels()
	successors := computeIndirect(labels, p.Passive, h)
	predecessors := invertIndirect(labels, successors)

	newActive := stepU(labels, p.Active.Degree, p.Passive, predecessors, h)
	groups, newInterner, oldLabels := stepEAssignLabels(newActive)
	newPassive := stepEBuildPassive(p.Active, groups)

	return Problem{
		Active:    newActive,
		Passive:   newPassive,
		Interner:  newInterner,
		OldLabels: oldLabels,
	}, nil
}

// stepU enumerates every ordered degree-dA assignment of a single old
// label per active position, splits them into good (accepted by the
// maximized passive constraint) and bad, and folds the bad assignments
// into the new active constraint: starting from the all-positions-are-L
// line, each bad assignment refines every surviving candidate by
// removing, at every position, that assignment's label and its diagram
// predecessors, discarding branches an assignment empties out, and
// keeping only the resulting maximal lines (AddLineAndDiscardNonMaximal,
// the same antichain fold Maximize uses).
func stepU(labels []label.Label, activeDegree int, passive constraint.Constraint, predecessors map[label.Label]bigset.Set, h progress.Handler) constraint.Constraint {
	full := label.NewGroup(labels...)
	fullParts := make([]label.Part, activeDegree)
	for i := range fullParts {
		fullParts[i] = label.Part{Group: full, Mult: label.OneMultiplicity()}
	}
	candidates := constraint.New(activeDegree)
	candidates = candidates.AddLineAndDiscardNonMaximal(label.Line{Parts: fullParts})

	assignments := cartesianAssignments(labels, activeDegree)
	total := len(assignments)
	for i, assignment := range assignments {
		line := assignmentLine(assignment).Normalize()
		if passive.Includes(line) {
			progress.Notify(h, "speedup:step-u", i+1, total)
			continue
		}
		candidates = refineAgainstBad(candidates, assignment, predecessors)
		progress.Notify(h, "speedup:step-u", i+1, total)
	}
	candidates.IsMaximized = false
	return candidates
}

// invertIndirect turns computeIndirect's a->successors map into a
// b->predecessors map: predecessors[b] holds every a with a diagram
// path to b (reflexive, since computeIndirect includes a itself).
func invertIndirect(labels []label.Label, successors map[label.Label]bigset.Set) map[label.Label]bigset.Set {
	predecessors := make(map[label.Label]bigset.Set, len(labels))
	for _, l := range labels {
		predecessors[l] = bigset.New()
	}
	for _, a := range labels {
		for _, b := range labels {
			if successors[a].Test(int(b)) {
				predecessors[b] = predecessors[b].With(int(a))
			}
		}
	}
	return predecessors
}

func cartesianAssignments(labels []label.Label, degree int) [][]label.Label {
	if degree == 0 {
		return [][]label.Label{{}}
	}
	out := [][]label.Label{{}}
	for i := 0; i < degree; i++ {
		next := make([][]label.Label, 0, len(out)*len(labels))
		for _, prefix := range out {
			for _, l := range labels {
				entry := make([]label.Label, len(prefix)+1)
				copy(entry, prefix)
				entry[len(prefix)] = l
				next = append(next, entry)
			}
		}
		out = next
	}
	return out
}

func assignmentLine(assignment []label.Label) label.Line {
	parts := make([]label.Part, len(assignment))
	for i, l := range assignment {
		parts[i] = label.Part{Group: label.NewGroup(l), Mult: label.OneMultiplicity()}
	}
	return label.Line{Parts: parts}
}

func refineAgainstBad(candidates constraint.Constraint, assignment []label.Label, predecessors map[label.Label]bigset.Set) constraint.Constraint {
	next := constraint.New(candidates.Degree)
	for _, line := range candidates.Lines {
		for pos, forbidden := range assignment {
			excluded := predecessors[forbidden].With(int(forbidden))
			shrunk := line.Parts[pos].Group.Difference(label.FromSet(excluded))
			if shrunk.IsEmpty() {
				continue
			}
			parts := make([]label.Part, len(line.Parts))
			copy(parts, line.Parts)
			parts[pos] = label.Part{Group: shrunk, Mult: line.Parts[pos].Mult}
			next = next.AddLineAndDiscardNonMaximal(label.Line{Parts: parts})
		}
	}
	return next
}

// stepEAssignLabels collects the distinct groups used by newActive's
// lines, assigns each a fresh short label (the reference implementation's
// char-then-parenthesized-index scheme), and records oldLabels, the new
// label -> old-label-set mapping (mapping_label_oldlabels).
func stepEAssignLabels(newActive constraint.Constraint) ([]label.Group, *label.Interner, map[label.Label]bigset.Set) {
	var groups []label.Group
	seen := make(map[string]bool)
	for _, line := range newActive.Lines {
		for _, part := range line.Parts {
			key := part.Group.Key()
			if !seen[key] {
				seen[key] = true
				groups = append(groups, part.Group)
			}
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Less(groups[j]) })

	in := label.NewInterner()
	oldLabels := make(map[label.Label]bigset.Set, len(groups))
	for i, g := range groups {
		l := in.Intern(shortLabelText(i))
		oldLabels[l] = g.AsSet()
	}
	return groups, in, oldLabels
}

// stepEBuildPassive replaces, in every line of oldActive, each group
// with the set of new labels (indices into groups) whose old-label set
// intersects it, normalizes and drops lines an empty substitution
// leaves behind.
func stepEBuildPassive(oldActive constraint.Constraint, groups []label.Group) constraint.Constraint {
	out := constraint.New(oldActive.Degree)
	for _, line := range oldActive.Lines {
		parts := make([]label.Part, 0, len(line.Parts))
		dead := false
		for _, part := range line.Parts {
			var members []label.Label
			for i, g := range groups {
				if g.Intersection(part.Group).IsEmpty() {
					continue
				}
				members = append(members, label.Label(i))
			}
			if len(members) == 0 {
				dead = true
				break
			}
			parts = append(parts, label.Part{Group: label.NewGroup(members...), Mult: part.Mult})
		}
		if dead {
			continue
		}
		normalized := label.Line{Parts: parts}.Normalize()
		out.Lines = append(out.Lines, normalized)
	}
	return out
}

// shortLabelText mirrors the reference renaming scheme: single
// characters A-Z, a-z, 0-9 for the first 62 labels, then the decimal
// index as a multi-character label, which String prints in parentheses.
func shortLabelText(i int) string {
	switch {
	case i < 26:
		return string(rune('A' + i))
	case i < 52:
		return string(rune('a' + i - 26))
	case i < 62:
		return string(rune('0' + i - 52))
	default:
		return strconv.Itoa(i)
	}
}
