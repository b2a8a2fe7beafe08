package label

// AllChoices enumerates every way to pick one label per multiplicity
// unit of l: a One part contributes one choice among its group's
// labels, a Many(n) part contributes n independent choices, and a Star
// part contributes any one non-empty subset of its group (kept as a
// single Star part, since a star position still stands for an unknown
// number of repetitions of whatever labels it was given).
//
// When permutations is true, every ordering of the resulting
// single-label parts is also produced; otherwise each choice yields
// exactly one Line in the part order of l.
func (l Line) AllChoices(permutations bool) []Line {
	perPart := make([][][]Part, len(l.Parts))
	for i, p := range l.Parts {
		perPart[i] = expandPartChoices(p)
	}

	combos := [][]Part{{}}
	for _, choices := range perPart {
		next := make([][]Part, 0, len(combos)*len(choices))
		for _, prefix := range combos {
			for _, choice := range choices {
				merged := make([]Part, 0, len(prefix)+len(choice))
				merged = append(merged, prefix...)
				merged = append(merged, choice...)
				next = append(next, merged)
			}
		}
		combos = next
	}

	lines := make([]Line, 0, len(combos))
	for _, parts := range combos {
		if !permutations {
			cp := make([]Part, len(parts))
			copy(cp, parts)
			lines = append(lines, Line{Parts: cp})
			continue
		}
		permuteParts(parts, func(order []Part) {
			cp := make([]Part, len(order))
			copy(cp, order)
			lines = append(lines, Line{Parts: cp})
		})
	}
	return lines
}

// expandPartChoices returns every single-unit-choice expansion of one
// Part, each expressed as the list of Parts it contributes to a Line.
func expandPartChoices(p Part) [][]Part {
	switch p.Mult.Kind {
	case One:
		out := make([][]Part, 0, p.Group.Len())
		for _, lbl := range p.Group.Labels() {
			out = append(out, []Part{{Group: NewGroup(lbl), Mult: OneMultiplicity()}})
		}
		return out
	case Many:
		n := p.Mult.N
		tuples := cartesianLabels(p.Group.Labels(), n)
		out := make([][]Part, 0, len(tuples))
		for _, t := range tuples {
			parts := make([]Part, n)
			for i, lbl := range t {
				parts[i] = Part{Group: NewGroup(lbl), Mult: OneMultiplicity()}
			}
			out = append(out, parts)
		}
		return out
	default: // Star
		out := make([][]Part, 0)
		for _, sub := range nonEmptySubsets(p.Group.Labels()) {
			out = append(out, []Part{{Group: NewGroup(sub...), Mult: StarMultiplicity()}})
		}
		return out
	}
}

// cartesianLabels returns every n-length tuple over labels (order
// matters, repeats allowed), matching "n independent choices" from the
// same group.
func cartesianLabels(labels []Label, n int) [][]Label {
	if n == 0 {
		return [][]Label{{}}
	}
	rest := cartesianLabels(labels, n-1)
	out := make([][]Label, 0, len(labels)*len(rest))
	for _, lbl := range labels {
		for _, r := range rest {
			t := make([]Label, 0, n)
			t = append(t, lbl)
			t = append(t, r...)
			out = append(out, t)
		}
	}
	return out
}

// nonEmptySubsets returns every non-empty subset of labels.
func nonEmptySubsets(labels []Label) [][]Label {
	n := len(labels)
	out := make([][]Label, 0, (1<<uint(n))-1)
	for mask := 1; mask < (1 << uint(n)); mask++ {
		var sub []Label
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				sub = append(sub, labels[i])
			}
		}
		out = append(out, sub)
	}
	return out
}

// permuteParts calls f once per ordering of parts (Heap's algorithm).
func permuteParts(parts []Part, f func([]Part)) {
	n := len(parts)
	p := make([]Part, n)
	copy(p, parts)
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			f(p)
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				p[i], p[k-1] = p[k-1], p[i]
			} else {
				p[0], p[k-1] = p[k-1], p[0]
			}
		}
	}
	if n == 0 {
		f(p)
		return
	}
	generate(n)
}
