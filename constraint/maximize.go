package constraint

import (
	"github.com/katalvlaran/roundelim/label"
	"github.com/katalvlaran/roundelim/progress"
)

// Maximize closes c under the maximization rule until a fixed point,
// returning a new Constraint with IsMaximized set. Degree-2 constraints
// use the closed-form pairwise rule from the design notes; other degrees
// fall back to maximizeGeneric.
func (c Constraint) Maximize(h progress.Handler) Constraint {
	if c.Degree == 2 {
		return c.maximizeDegree2(h)
	}
	return c.maximizeGeneric(h)
}

// maximizeDegree2 repeatedly considers every pair of lines {G11,G12} and
// {G21,G22} and, for every non-empty intersection among the four
// cross-group pairings, folds in the line {I, complementary-union},
// until a round produces no change.
func (c Constraint) maximizeDegree2(h progress.Handler) Constraint {
	cur := c
	for {
		n := len(cur.Lines)
		candidates := make([]label.Line, 0, n*n*4)
		for i := 0; i < n; i++ {
			g11, g12 := twoGroups(cur.Lines[i])
			for j := 0; j < n; j++ {
				g21, g22 := twoGroups(cur.Lines[j])
				for _, pr := range [][2]label.Group{
					{g11.Intersection(g21), g12.Union(g22)},
					{g11.Intersection(g22), g12.Union(g21)},
					{g12.Intersection(g21), g11.Union(g22)},
					{g12.Intersection(g22), g11.Union(g21)},
				} {
					if pr[0].IsEmpty() {
						continue
					}
					candidates = append(candidates, label.Line{Parts: []label.Part{
						{Group: pr[0], Mult: label.OneMultiplicity()},
						{Group: pr[1], Mult: label.OneMultiplicity()},
					}}.Normalize())
				}
			}
			progress.Notify(h, "maximize", i+1, n)
		}

		next := Constraint{Lines: cur.Lines, Degree: cur.Degree}
		for _, cand := range candidates {
			next = next.AddLineAndDiscardNonMaximal(cand)
		}
		if sameLineSet(next.Lines, cur.Lines) {
			next.IsMaximized = true
			return next
		}
		cur = next
	}
}

// maximizeGeneric generalizes the degree-2 rule to arbitrary degree: for
// every pair of lines with the same number of parts, every choice of one
// "pivot" position from each line, and every bijection of the remaining
// positions, the pivot positions' intersection (if non-empty) becomes
// the new pivot group and each bijected pair of remaining positions is
// replaced by its union. This is a direct generalization of the
// two-group rule rather than the original's multiset-pairing search,
// chosen to keep arbitrary-degree maximization
// terminating and simple to reason about for the small degrees LCL
// problems use in practice.
func (c Constraint) maximizeGeneric(h progress.Handler) Constraint {
	cur := c
	for {
		n := len(cur.Lines)
		var candidates []label.Line
		for i := 0; i < n; i++ {
			li := cur.Lines[i]
			for j := 0; j < n; j++ {
				lj := cur.Lines[j]
				if len(li.Parts) != len(lj.Parts) {
					continue
				}
				candidates = append(candidates, pivotCombinations(li, lj)...)
			}
			progress.Notify(h, "maximize", i+1, n)
		}

		next := Constraint{Lines: cur.Lines, Degree: cur.Degree}
		for _, cand := range candidates {
			next = next.AddLineAndDiscardNonMaximal(cand)
		}
		if sameLineSet(next.Lines, cur.Lines) {
			next.IsMaximized = true
			return next
		}
		cur = next
	}
}

// pivotCombinations enumerates, for every pivot position pair (r in li,
// s in lj) and every bijection of the remaining positions, the candidate
// line described in maximizeGeneric's doc comment.
func pivotCombinations(li, lj label.Line) []label.Line {
	k := len(li.Parts)
	var out []label.Line
	for rs := 0; rs < k*k; rs++ {
		r, s := rs/k, rs%k // pivot position r in li, s in lj
		pivot := li.Parts[r].Group.Intersection(lj.Parts[s].Group)
		if pivot.IsEmpty() {
			continue
		}
		restI := otherIndices(k, r)
		restJ := otherIndices(k, s)
		for _, perm := range permutations(restJ) {
			parts := make([]label.Part, 0, k)
			parts = append(parts, label.Part{Group: pivot, Mult: label.OneMultiplicity()})
			for idx, pi := range restI {
				pj := perm[idx]
				u := li.Parts[pi].Group.Union(lj.Parts[pj].Group)
				parts = append(parts, label.Part{Group: u, Mult: label.OneMultiplicity()})
			}
			out = append(out, label.Line{Parts: parts}.Normalize())
		}
	}
	return out
}

func otherIndices(k, skip int) []int {
	out := make([]int, 0, k-1)
	for i := 0; i < k; i++ {
		if i != skip {
			out = append(out, i)
		}
	}
	return out
}

// permutations returns every ordering of xs (Heap's algorithm), capped
// implicitly by the caller always passing small (<=4) slices.
func permutations(xs []int) [][]int {
	if len(xs) == 0 {
		return [][]int{{}}
	}
	var out [][]int
	p := make([]int, len(xs))
	copy(p, xs)
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			cp := make([]int, len(p))
			copy(cp, p)
			out = append(out, cp)
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
	generate(len(p))
	return out
}

// sameLineSet reports whether a and b describe the same multiset of
// lines up to reordering, used to detect a maximization fixed point.
func sameLineSet(a, b []label.Line) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, la := range a {
		for j, lb := range b {
			if used[j] {
				continue
			}
			if la.Equal(lb) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}
