package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph      *core.Graph
	opts       BFSOptions
	queue      []int
	discovered []bool
	processed  *trace.NodeSet
	tree       []trace.EdgePair
	res        *BFSResult
	rec        *trace.Recorder
}

// BFS runs breadth-first search on g from start.
// It returns an error matching core.ErrUnknownStartNode for an invalid start.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if err := core.CheckStart(g, start); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodeCount()
	w := &walker{
		graph:      g,
		opts:       o,
		queue:      make([]int, 0, n),
		discovered: make([]bool, n),
		processed:  trace.NewNodeSet(n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  filled(n, Unreached),
			Parent: filled(n, Unreached),
		},
		rec: trace.NewRecorder(n + 2),
	}

	w.loop(start)
	w.res.Trace = w.rec.Finish()

	return w.res, nil
}

// loop processes the queue until empty.
func (w *walker) loop(start int) {
	name := w.opts.Namer
	w.rec.Record(nil, &start, nil, w.edgesFrom(start), fmt.Sprintf("Starting BFS from %s", name(start)))

	w.enqueue(start, 0, Unreached)
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]

		w.processed.Add(u)
		w.res.Order = append(w.res.Order, u)
		if p := w.res.Parent[u]; p != Unreached {
			w.tree = append(w.tree, trace.EdgePair{p, u})
		}

		next := w.res.Depth[u] + 1
		limited := w.opts.MaxDepth > 0 && next > w.opts.MaxDepth

		// candidates are computed before u's neighbors are discovered
		var candidates []trace.EdgePair
		if !limited {
			candidates = w.edgesFrom(u)
		}
		w.rec.Record(w.processed.Sorted(), &u, w.tree, candidates,
			fmt.Sprintf("Visiting node %s at depth %d", name(u), w.res.Depth[u]))

		if limited {
			continue
		}
		for _, e := range w.graph.Neighbors(u) {
			if !w.discovered[e.To] {
				w.enqueue(e.To, next, u)
			}
		}
	}

	w.rec.Record(w.processed.Sorted(), nil, w.tree, nil, "BFS traversal complete")
}

// enqueue marks v discovered at depth d with the given parent.
func (w *walker) enqueue(v, d, parent int) {
	w.discovered[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// edgesFrom lists (u, v) for neighbors v not yet discovered.
// For the start node before its own discovery every edge is listed.
func (w *walker) edgesFrom(u int) []trace.EdgePair {
	nbs := w.graph.Neighbors(u)
	out := make([]trace.EdgePair, 0, len(nbs))
	for _, e := range nbs {
		if w.discovered[e.To] {
			continue
		}
		out = append(out, trace.EdgePair{u, e.To})
	}

	return out
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}
