package problem

import (
	"errors"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/roundelim/bigset"
	"github.com/katalvlaran/roundelim/constraint"
	"github.com/katalvlaran/roundelim/converterts"
	"github.com/katalvlaran/roundelim/core"
	"github.com/katalvlaran/roundelim/dfs"
	"github.com/katalvlaran/roundelim/label"
	"github.com/katalvlaran/roundelim/progress"
)

// ComputeDiagram fills p.Diagram in place: the reflexive-transitive
// "diagram_indirect" predecessor relation over every label of p, and the "diagram_direct" contraction of that
// relation's strongly-connected label groups down to a DAG. It panics if
// p.Diagram is already populated.
//
// diagram_indirect is computed directly from Constraint.IsDiagramPredecessor
// (constraint/constraint.go), which is sound whether or not the passive
// constraint is maximized. diagram_direct contracts the indirect relation's
// cycles (mutually-predecessor label pairs) with gonum's Tarjan SCC, the way
// the reference implementation folds equivalent labels into one diagram
// node, then keeps only the reduced edges: an edge u->v survives if no
// third representative w has both u->w and w->v.
func (p *Problem) ComputeDiagram(h progress.Handler) {
	if p.Diagram != nil {
		panic("problem: ComputeDiagram called with a cache already populated")
	}

	labels := p.Labels()
	indirect := computeIndirect(labels, p.Passive, h)

	directMembers, directEdges := contractToDirect(labels, indirect)
	progress.Notify(h, "diagram:direct", len(labels), len(labels))

	p.Diagram = &DiagramResult{
		Indirect:      indirect,
		DirectMembers: directMembers,
		DirectEdges:   directEdges,
	}
}

// DiagramGraph renders p.Diagram's direct (contracted, transitively
// reduced) relation as a core.Graph, one directed edge per surviving
// predecessor pair, vertex IDs taken from LabelText of each SCC
// representative. It returns nil if the diagram has not been computed.
func (p Problem) DiagramGraph() *core.Graph {
	if p.Diagram == nil {
		return nil
	}
	g := core.NewGraph(core.WithDirected(true))
	for rep := range p.Diagram.DirectMembers {
		_ = g.AddVertex(p.LabelText(rep))
	}
	for _, e := range p.Diagram.DirectEdges {
		_, _ = g.AddEdge(p.LabelText(e[0]), p.LabelText(e[1]), 0)
	}
	return g
}

// DiagramIsAcyclic reports whether the transitively-reduced direct diagram
// is a DAG, using dfs.TopologicalSort over the same core.Graph DiagramGraph
// builds. SCC contraction in contractToDirect should already guarantee this;
// this is a cheap independent check callers can use before trusting
// DirectEdges as a partial order, e.g. in tests.
func (p Problem) DiagramIsAcyclic() (bool, error) {
	g := p.DiagramGraph()
	if g == nil {
		return false, nil
	}
	_, err := dfs.TopologicalSort(g)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, dfs.ErrCycleDetected):
		return false, nil
	default:
		return false, err
	}
}

// computeIndirect builds the reflexive-transitive diagram predecessor
// relation directly from IsDiagramPredecessor, independent of any
// Problem's cached Diagram field; Speedup reuses it to look up
// predecessors without disturbing the caller's cache.
func computeIndirect(labels []label.Label, passive constraint.Constraint, h progress.Handler) map[label.Label]bigset.Set {
	indirect := make(map[label.Label]bigset.Set, len(labels))
	for i, a := range labels {
		set := bigset.New()
		for _, b := range labels {
			if a == b || passive.IsDiagramPredecessor(a, b) {
				set = set.With(int(b))
			}
		}
		indirect[a] = set
		progress.Notify(h, "diagram:indirect", i+1, len(labels))
	}
	return indirect
}

// contractToDirect builds a core.Graph whose vertex IDs are each
// label's decimal text (stable and collision-free regardless of the
// interner), one edge per indirect successor pair, hands it to
// converterts for the gonum translation, then runs Tarjan SCC and a
// reachability-based transitive reduction over the representatives.
func contractToDirect(labels []label.Label, indirect map[label.Label]bigset.Set) (map[label.Label][]label.Label, [][2]label.Label) {
	byID := make(map[string]label.Label, len(labels))
	g := core.NewGraph(core.WithDirected(true))
	for _, l := range labels {
		id := strconv.Itoa(int(l))
		byID[id] = l
		_ = g.AddVertex(id)
	}
	for _, a := range labels {
		for _, b := range labels {
			if a == b {
				continue
			}
			if indirect[a].Test(int(b)) {
				_, _ = g.AddEdge(strconv.Itoa(int(a)), strconv.Itoa(int(b)), 0)
			}
		}
	}

	dg, _, vertexOf := converters.ToGonumDirected(g)
	components := topo.TarjanSCC(dg)
	members := make(map[label.Label][]label.Label, len(components))
	for _, comp := range components {
		var group []label.Label
		for _, n := range comp {
			group = append(group, byID[vertexOf[n.ID()]])
		}
		sort.Slice(group, func(i, j int) bool { return group[i] < group[j] })
		members[group[0]] = group
	}

	reps := make([]label.Label, 0, len(members))
	for rep := range members {
		reps = append(reps, rep)
	}
	sort.Slice(reps, func(i, j int) bool { return reps[i] < reps[j] })

	full := make(map[[2]label.Label]bool)
	for _, a := range reps {
		for _, b := range reps {
			if a == b {
				continue
			}
			if indirect[a].Test(int(b)) {
				full[[2]label.Label{a, b}] = true
			}
		}
	}

	var edges [][2]label.Label
	for pair := range full {
		u, v := pair[0], pair[1]
		redundant := false
		for _, w := range reps {
			if w == u || w == v {
				continue
			}
			if full[[2]label.Label{u, w}] && full[[2]label.Label{w, v}] {
				redundant = true
				break
			}
		}
		if !redundant {
			edges = append(edges, pair)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	return members, edges
}
