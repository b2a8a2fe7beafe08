package problem

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/roundelim/label"
	"github.com/katalvlaran/roundelim/progress"
)

// ComputeColoringSolvability fills p.Coloring in place: it builds the
// compatibility graph over the active constraint's minimal choice sets
// (an edge S1-S2 iff both (S1,S2) and (S2,S1) are included by the
// passive constraint, used as given) and records the size of a maximum
// clique, the smallest k for which a k-coloring input suffices for
// 0-round solvability. Only defined for a degree-2 passive constraint;
// it panics if p.Coloring is already populated and returns
// ErrUnsupportedDegree otherwise.
func (p *Problem) ComputeColoringSolvability(h progress.Handler) error {
	if p.Coloring != nil {
		panic("problem: ComputeColoringSolvability called with a cache already populated")
	}
	if p.Passive.Degree != 2 {
		return ErrUnsupportedDegree
	}

	sets := p.Active.MinimalSetsOfAllChoices()
	g := simple.NewUndirectedGraph()
	for i := range sets {
		g.AddNode(simple.Node(int64(i)))
	}
	for i := range sets {
		for j := i + 1; j < len(sets); j++ {
			if compatiblePair(p, sets[i], sets[j]) {
				g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64(j))))
			}
		}
		progress.Notify(h, "coloring", i+1, len(sets))
	}

	size := 0
	for _, clique := range topo.BronKerbosch(g) {
		if len(clique) > size {
			size = len(clique)
		}
	}
	p.Coloring = &ColoringResult{CliqueSize: size}
	return nil
}

func compatiblePair(p *Problem, s1, s2 label.Group) bool {
	forward := label.Line{Parts: []label.Part{
		{Group: s1, Mult: label.OneMultiplicity()},
		{Group: s2, Mult: label.OneMultiplicity()},
	}}.Normalize()
	backward := label.Line{Parts: []label.Part{
		{Group: s2, Mult: label.OneMultiplicity()},
		{Group: s1, Mult: label.OneMultiplicity()},
	}}.Normalize()
	return p.Passive.Includes(forward) && p.Passive.Includes(backward)
}
