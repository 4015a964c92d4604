package dijkstra

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/frontier"
	"github.com/katalvlaran/graphtrace/trace"
)

// Dijkstra computes shortest distances from start over g and records a
// step per settled node.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrGraphNil).
//  2. start must be a node of g (core.ErrUnknownStartNode).
//
// On error the result is nil.
func Dijkstra(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1) Validate graph and start
	if err := core.CheckStart(g, start); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 2) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Prepare scratch state
	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]uint32, n),
		prev:    make([]int, n),
		settled: trace.NewNodeSet(n),
		tree:    make([]trace.EdgePair, 0, n),
		pq:      frontier.New[int](n),
		rec:     trace.NewRecorder(n + 2),
	}

	// 4) Run
	r.init(start)
	r.process()
	r.finish()

	return &Result{
		Trace:   r.rec.Finish(),
		Start:   start,
		Dist:    r.dist,
		Prev:    r.prev,
		Settled: r.settled.InOrder(),
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []uint32
	prev    []int
	settled *trace.NodeSet
	tree    []trace.EdgePair // (prev[v], v) for settled v, in settle order
	pq      *frontier.Frontier[int]
	rec     *trace.Recorder
}

// init sets every distance to Unreachable, seeds the frontier with start and
// records the initial step.
func (r *runner) init(start int) {
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = NoPredecessor
	}
	r.dist[start] = 0
	r.pq.Push(0, start)

	r.rec.Record(nil, &start, nil, r.edgesFrom(start),
		fmt.Sprintf("Starting Dijkstra's algorithm from %s", r.options.Namer(start)))
}

// process settles nodes in order of distance until the frontier empties or
// the next distance exceeds MaxDistance.
func (r *runner) process() {
	for {
		item, ok := r.pq.Pop()
		if !ok {
			return
		}
		u, d := item.Value, uint32(item.Key)

		// stale entry: a shorter distance was found after this push
		if d > r.dist[u] || r.settled.Has(u) {
			continue
		}
		if d > r.options.MaxDistance {
			return
		}

		r.settled.Add(u)
		if p := r.prev[u]; p != NoPredecessor {
			r.tree = append(r.tree, trace.EdgePair{p, u})
		}
		r.rec.Record(r.settled.InOrder(), &u, r.tree, r.edgesFrom(u),
			fmt.Sprintf("Visiting node %s (distance %d)", r.options.Namer(u), d))

		r.relax(u)
	}
}

// relax improves the tentative distance of every neighbor of the settled node u.
func (r *runner) relax(u int) {
	for _, e := range r.g.Neighbors(u) {
		v := e.To
		nd, ok := saturatingAdd(r.dist[u], e.Weight)
		if !ok || nd > r.options.MaxDistance {
			continue
		}
		// strict "<": equal alternatives keep the first predecessor found
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.pq.Push(uint64(nd), v)
	}
}

// finish clears tentative state for nodes that were never settled and
// records the terminal step.
func (r *runner) finish() {
	for v := range r.dist {
		if !r.settled.Has(v) {
			r.dist[v] = Unreachable
			r.prev[v] = NoPredecessor
		}
	}

	r.rec.Record(r.settled.InOrder(), nil, r.tree, nil, "Dijkstra's algorithm complete")
}

// edgesFrom lists (u, v) for every adjacency entry of u.
func (r *runner) edgesFrom(u int) []trace.EdgePair {
	nbs := r.g.Neighbors(u)
	out := make([]trace.EdgePair, len(nbs))
	for i, e := range nbs {
		out[i] = trace.EdgePair{u, e.To}
	}

	return out
}

// saturatingAdd returns a+b, or (Unreachable, false) when the sum overflows
// or lands on the Unreachable sentinel.
func saturatingAdd(a, b uint32) (uint32, bool) {
	sum, carry := bits.Add32(a, b, 0)
	if carry != 0 || sum == Unreachable {
		return Unreachable, false
	}

	return sum, true
}
