// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphtrace/core"
)

// Kruskal computes a minimum spanning forest of g.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Steps:
//  1. Validate: g != nil.
//  2. Collect all edges via g.Edges(), skip self-loops (e.From == e.To).
//  3. Sort edges by ascending Weight (sort.SliceStable keeps insertion order for ties).
//  4. Initialize DSU slices parent[] and rank[] for each node.
//  5. For each edge (u,v), if find(u) != find(v), union(u,v) and include the edge.
//  6. Stop once nodeCount-1 edges are taken.
//
// A disconnected graph yields a forest with Spanning == false.
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g *core.Graph) (*Result, error) {
	// 1. Validate graph.
	if g == nil {
		return nil, fmt.Errorf("prim_kruskal: %w", core.ErrGraphNil)
	}
	n := g.NodeCount()
	if n <= 1 {
		return &Result{Edges: []core.WeightedEdge{}, Spanning: true}, nil
	}

	// 2. Collect all edges, skipping self-loops.
	all := g.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Stable sort by weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Initialize disjoint-set structures.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; reports whether two sets were merged.
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}

		return true
	}

	// 5. Build the forest.
	res := &Result{Edges: make([]core.WeightedEdge, 0, n-1)}
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.TotalWeight += uint64(e.Weight)
		// 6. Complete spanning tree.
		if len(res.Edges) == n-1 {
			break
		}
	}
	res.Spanning = len(res.Edges) == n-1

	return res, nil
}
