// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge insertion and read-only queries.
// Determinism:
//   - Neighbors(u) preserves insertion order.
//   - Edges() preserves AddEdge call order.

package core

import "fmt"

// AddEdge inserts an undirected edge u–v with the given weight.
//
// Steps:
//  1. Validate both endpoints are in [0, NodeCount).
//  2. Append u→v to adj[u].
//  3. Append v→u to adj[v] (for a self-loop this is a second entry in adj[u]).
//  4. Record the edge once in the undirected catalog.
//
// On error the graph is left unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight uint32) error {
	if !g.HasNode(u) {
		return fmt.Errorf("%w: u=%d (node count %d)", ErrNodeOutOfRange, u, len(g.adj))
	}
	if !g.HasNode(v) {
		return fmt.Errorf("%w: v=%d (node count %d)", ErrNodeOutOfRange, v, len(g.adj))
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: weight})
	g.adj[v] = append(g.adj[v], Edge{To: u, Weight: weight})
	g.edges = append(g.edges, WeightedEdge{From: u, To: v, Weight: weight})

	return nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adj) }

// HasNode reports whether u is a valid node index.
func (g *Graph) HasNode(u int) bool { return u >= 0 && u < len(g.adj) }

// Neighbors returns the adjacency list of u in insertion order, or nil if u
// is out of range. The slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(u int) []Edge {
	if !g.HasNode(u) {
		return nil
	}

	return g.adj[u]
}

// Degree returns the number of adjacency entries of u (a self-loop counts twice).
func (g *Graph) Degree(u int) int { return len(g.Neighbors(u)) }

// Edges returns a copy of the undirected edge catalog, one entry per AddEdge
// call, in insertion order.
func (g *Graph) Edges() []WeightedEdge {
	out := make([]WeightedEdge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of undirected edges inserted.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// TotalWeight returns the sum of all undirected edge weights.
func (g *Graph) TotalWeight() uint64 {
	var sum uint64
	for _, e := range g.edges {
		sum += uint64(e.Weight)
	}

	return sum
}

// CheckStart validates an engine start node. It returns nil for a valid index,
// ErrGraphNil for a nil graph and ErrUnknownStartNode otherwise.
func CheckStart(g *Graph, start int) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasNode(start) {
		return fmt.Errorf("%w: %d (node count %d)", ErrUnknownStartNode, start, g.NodeCount())
	}

	return nil
}
