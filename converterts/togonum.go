package converters

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/roundelim/core"
)

// ToGonumDirected builds a gonum simple.DirectedGraph mirroring g: one
// gonum node per vertex ID (assigned in sorted-ID order for
// determinism) and one gonum edge per core.Edge, ignoring weight. It
// returns the vertex-ID -> node-ID map and its inverse, since gonum
// graphs are keyed by int64 while core.Graph is keyed by string.
func ToGonumDirected(g *core.Graph) (dg *simple.DirectedGraph, idOf map[string]int64, vertexOf map[int64]string) {
	vertices := g.Vertices()
	sort.Strings(vertices)

	idOf = make(map[string]int64, len(vertices))
	vertexOf = make(map[int64]string, len(vertices))
	dg = simple.NewDirectedGraph()
	for i, v := range vertices {
		id := int64(i)
		idOf[v] = id
		vertexOf[id] = v
		dg.AddNode(simple.Node(id))
	}

	for _, e := range g.Edges() {
		dg.SetEdge(dg.NewEdge(simple.Node(idOf[e.From]), simple.Node(idOf[e.To])))
	}
	return dg, idOf, vertexOf
}
