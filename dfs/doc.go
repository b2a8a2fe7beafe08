// Package dfs implements topological sort on a core.Graph, used by the
// strength-diagram's acyclicity check.
//
// What:
//
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning ErrCycleDetected if cycles exist.
//     Internally driven by vertex coloring (White, Gray, Black) with
//     back-edge detection.
//
// Why:
//   - Confirm the strength diagram's direct-edge relation is acyclic,
//     independent of the SCC-contraction step that produces it.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - TopoOption: functional options for TopologicalSort (cancellation)
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrCycleDetected        cycle discovered during the sort
//   - ErrNeighborFetch        neighbor lookup failed
//   - context.Canceled        sort canceled via WithCancelContext
//
// Functions:
//
//   - TopologicalSort(g *core.Graph, opts ...TopoOption) ([]string, error)
//     return topological order or ErrCycleDetected
//   - WithCancelContext(ctx context.Context) TopoOption
package dfs
