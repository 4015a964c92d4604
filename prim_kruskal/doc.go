// Package prim_kruskal computes minimum spanning trees on an undirected,
// uint32-weighted core.Graph: Prim with a recorded step trace, and Kruskal
// as a trace-free reference.
//
// What & Why
//
//   - An MST of a connected weighted graph G = (V, E) is a subset T ⊆ E that
//     connects every vertex with the minimum possible total weight.
//   - Prim grows one tree from a start node, which makes every intermediate
//     state (tree edges, frontier of candidate edges) meaningful to display.
//   - Kruskal merges components globally and is used to cross-check Prim.
//
// Prim steps emitted:
//
//   - Initial:  visited = {start}, current = start, candidates = frontier in pop order.
//   - Accept:   one step per accepted edge (from, to): to joins visited, the edge
//     joins edges_in_path, candidates = remaining frontier entries whose
//     endpoint is still outside the tree.
//   - Frontier: after pushing the edges of the new node, a second step with the
//     same current node shows the updated candidate set. Skipped when the
//     tree already spans the graph.
//   - Terminal: current = nil, full visited set, all tree edges.
//
// Stale frontier entries (endpoint already in the tree) are discarded
// silently and never produce a step.
//
// Disconnected graphs are not an error: Prim spans only the component of the
// start node and Kruskal returns a minimum spanning forest. Result.Spanning
// reports whether the edge set covers every node.
//
// Determinism:
//
//   - Prim breaks weight ties by frontier insertion order, which follows
//     adjacency order.
//   - Kruskal stable-sorts edges by weight, so ties keep insertion order.
//
// Complexity:
//
//   - Prim:    O(E log E) time plus O(V + E) per recorded step, O(V + E) space.
//   - Kruskal: O(E log E + α(V)·E) time, O(V + E) space.
package prim_kruskal
