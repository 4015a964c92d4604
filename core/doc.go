// Package core provides the static weighted undirected Graph shared by every
// trace engine in graphtrace.
//
// Nodes are dense zero-based indices 0..NodeCount()-1. External names (cities)
// live outside this package; see builder.Resolver.
//
// The Graph G = (V,E):
//
//   - Adjacency lists, one per node, in insertion order.
//   - Undirected: AddEdge(u, v, w) appends u→v to adj[u] and v→u to adj[v].
//   - Weights are non-negative (uint32).
//   - Parallel edges and self-loops are stored as given; nothing is deduplicated.
//     A self-loop appears twice in adj[u].
//
// Lifecycle:
//
//	g := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 750)
//	_ = g.AddEdge(1, 2, 680)
//	// hand g to dfs.DFS, dijkstra.Dijkstra, prim_kruskal.Prim ...
//
// Once an engine starts, the Graph is read-only. Engines never mutate it, so a
// single Graph can be shared by any number of sequential (or concurrent) engine
// runs without locking. Building a Graph concurrently is not supported.
//
// Errors:
//
//	ErrGraphNil          - a nil *Graph was passed to an engine.
//	ErrNodeOutOfRange    - AddEdge endpoint outside [0, NodeCount).
//	ErrUnknownStartNode  - engine start node does not resolve to a valid index.
package core
