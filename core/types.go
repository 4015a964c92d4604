// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and WeightedEdge declarations, sentinel errors, NewGraph.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates that a nil *Graph was supplied.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrUnknownStartNode is the single error kind reported at the engine
	// boundary: the requested start node does not resolve to a valid index.
	// Engines wrap it with their own prefix; match it with errors.Is.
	ErrUnknownStartNode = errors.New("core: unknown start node")
)

// Edge is one adjacency entry: the neighbor index and the edge weight.
type Edge struct {
	// To is the neighbor node index.
	To int

	// Weight is the non-negative edge cost.
	Weight uint32
}

// WeightedEdge is an undirected edge with both endpoints, as inserted.
type WeightedEdge struct {
	From   int
	To     int
	Weight uint32
}

// Graph is a weighted undirected graph stored as adjacency lists.
//
// Invariant: for every entry (u→v, w) in adj[u] there is a matching (v→u, w)
// in adj[v].
type Graph struct {
	adj   [][]Edge       // adj[u] lists edges leaving u in insertion order
	edges []WeightedEdge // undirected catalog, one entry per AddEdge call
}

// NewGraph creates a graph with nodeCount nodes and no edges.
// A negative nodeCount yields an empty graph.
func NewGraph(nodeCount int) *Graph {
	if nodeCount < 0 {
		nodeCount = 0
	}

	return &Graph{
		adj: make([][]Edge, nodeCount),
	}
}
