// Package prim_kruskal provides Prim's algorithm with a recorded step trace.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/frontier"
	"github.com/katalvlaran/graphtrace/trace"
)

// crossing is a frontier entry: an edge from a tree node to a candidate node.
type crossing struct {
	from, to int
	weight   uint32
}

// Prim grows a minimum spanning tree from start and records every accepted
// edge and frontier update.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrGraphNil).
//  2. start must be a node of g (core.ErrUnknownStartNode).
//
// Steps:
//  1. Mark start visited; push every edge from start to an unvisited node.
//  2. Pop the lightest crossing; discard it if its endpoint is already visited.
//  3. Accept it: mark the endpoint, append the edge, add its weight.
//  4. Stop at nodeCount-1 edges; otherwise push the endpoint's crossings.
//  5. Repeat until the frontier empties.
//
// Only Options.Method is ignored here; the root comes from start.
func Prim(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1) Validate graph and start
	if err := core.CheckStart(g, start); err != nil {
		return nil, fmt.Errorf("prim_kruskal: %w", err)
	}

	// 2) Build options
	cfg := NewOptions(opts...)

	// 3) Prepare scratch state
	n := g.NodeCount()
	p := &primRunner{
		g:       g,
		namer:   trace.NamerOrDefault(cfg.Namer),
		visited: trace.NewNodeSet(n),
		pq:      frontier.New[crossing](g.EdgeCount()),
		rec:     trace.NewRecorder(2 * n),
		edges:   make([]core.WeightedEdge, 0, n),
		pairs:   make([]trace.EdgePair, 0, n),
	}

	// 4) Run
	p.seed(start)
	p.grow()

	return &Result{
		Trace:       p.rec.Finish(),
		Edges:       p.edges,
		TotalWeight: p.total,
		Spanning:    len(p.edges) == n-1,
	}, nil
}

// primRunner holds the mutable state for a single Prim execution.
type primRunner struct {
	g       *core.Graph
	namer   trace.Namer
	visited *trace.NodeSet
	pq      *frontier.Frontier[crossing]
	rec     *trace.Recorder
	edges   []core.WeightedEdge
	pairs   []trace.EdgePair // edges as (from, to), parallel to edges
	total   uint64
}

// seed marks start as part of the tree, loads its crossings and records the
// initial step.
func (p *primRunner) seed(start int) {
	p.visited.Add(start)
	p.pushCrossings(start)

	p.rec.Record(p.visited.InOrder(), &start, nil, p.candidates(),
		fmt.Sprintf("Starting Prim's algorithm from %s", p.namer(start)))
}

// grow accepts the lightest crossing until the tree spans the graph or the
// frontier empties, then records the terminal step.
func (p *primRunner) grow() {
	target := p.g.NodeCount() - 1

	for len(p.edges) < target {
		item, ok := p.pq.Pop()
		if !ok {
			break
		}
		c := item.Value
		if p.visited.Has(c.to) {
			continue // stale
		}

		// accept
		p.visited.Add(c.to)
		p.edges = append(p.edges, core.WeightedEdge{From: c.from, To: c.to, Weight: c.weight})
		p.pairs = append(p.pairs, trace.EdgePair{c.from, c.to})
		p.total += uint64(c.weight)

		to := c.to
		p.rec.Record(p.visited.InOrder(), &to, p.pairs, p.candidates(),
			fmt.Sprintf("Adding edge %s - %s (weight %d)", p.namer(c.from), p.namer(c.to), c.weight))

		if len(p.edges) == target {
			break
		}

		p.pushCrossings(to)
		p.rec.Record(p.visited.InOrder(), &to, p.pairs, p.candidates(),
			fmt.Sprintf("Updating frontier from %s", p.namer(to)))
	}

	p.rec.Record(p.visited.InOrder(), nil, p.pairs, nil,
		fmt.Sprintf("Prim's algorithm complete (total weight %d)", p.total))
}

// pushCrossings adds every edge from u to a node outside the tree.
func (p *primRunner) pushCrossings(u int) {
	for _, e := range p.g.Neighbors(u) {
		if p.visited.Has(e.To) {
			continue
		}
		p.pq.Push(uint64(e.Weight), crossing{from: u, to: e.To, weight: e.Weight})
	}
}

// candidates lists live frontier entries in pop order, skipping stale ones.
func (p *primRunner) candidates() []trace.EdgePair {
	snap := p.pq.Snapshot()
	out := make([]trace.EdgePair, 0, len(snap))
	for _, it := range snap {
		if p.visited.Has(it.Value.to) {
			continue
		}
		out = append(out, trace.EdgePair{it.Value.from, it.Value.to})
	}

	return out
}
