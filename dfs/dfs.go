package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// walker encapsulates scratch state for one traversal.
type walker struct {
	graph   *core.Graph
	name    trace.Namer
	visited *trace.NodeSet
	stack   []int
	cursor  []int // cursor[u] = next adjacency index of u to inspect
	res     *Result
	rec     *trace.Recorder
}

// DFS traverses g depth-first from start and returns the recorded trace.
// On an invalid start it returns a nil result and an error matching
// core.ErrUnknownStartNode.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate graph and start node
	if err := core.CheckStart(g, start); err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize scratch state
	n := g.NodeCount()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = NoParent
	}
	w := &walker{
		graph:   g,
		name:    o.Namer,
		visited: trace.NewNodeSet(n),
		stack:   make([]int, 0, n),
		cursor:  make([]int, n),
		res: &Result{
			Order:     make([]int, 0, n),
			Parent:    parent,
			TreeEdges: make([]trace.EdgePair, 0, n),
		},
		rec: trace.NewRecorder(2*n + 2),
	}

	// 4. Traverse and hand off the trace
	w.run(start)
	w.res.Trace = w.rec.Finish()

	return w.res, nil
}

// run drives the explicit stack until it empties.
func (w *walker) run(start int) {
	w.rec.Record(nil, &start, nil, w.edgesFrom(start, false),
		fmt.Sprintf("Starting DFS from %s", w.name(start)))

	w.stack = append(w.stack, start)
	for len(w.stack) > 0 {
		u := w.stack[len(w.stack)-1]

		// first arrival at u
		if w.visited.Add(u) {
			w.res.Order = append(w.res.Order, u)
			if p := w.res.Parent[u]; p != NoParent {
				w.res.TreeEdges = append(w.res.TreeEdges, trace.EdgePair{p, u})
			}
			w.rec.Record(w.visited.Sorted(), &u, w.res.TreeEdges, w.edgesFrom(u, true),
				fmt.Sprintf("Visiting node %s", w.name(u)))
		}

		// descend into the first unvisited neighbor, if any
		if v, ok := w.nextUnvisited(u); ok {
			w.res.Parent[v] = u
			w.stack = append(w.stack, v)
			continue
		}

		// u is exhausted
		w.stack = w.stack[:len(w.stack)-1]
		if len(w.stack) > 0 {
			top := w.stack[len(w.stack)-1]
			w.rec.Record(w.visited.Sorted(), &top, w.res.TreeEdges, w.edgesFrom(top, true),
				fmt.Sprintf("Backtracking to %s", w.name(top)))
		}
	}

	w.rec.Record(w.visited.Sorted(), nil, w.res.TreeEdges, nil, "DFS traversal complete")
}

// nextUnvisited advances u's cursor to the first unvisited neighbor.
// Visited only grows, so skipped entries never need a second look.
func (w *walker) nextUnvisited(u int) (int, bool) {
	nbs := w.graph.Neighbors(u)
	for w.cursor[u] < len(nbs) {
		v := nbs[w.cursor[u]].To
		if !w.visited.Has(v) {
			return v, true
		}
		w.cursor[u]++
	}

	return 0, false
}

// edgesFrom lists (u, v) for u's adjacency entries, optionally only those
// whose far end is unvisited.
func (w *walker) edgesFrom(u int, unvisitedOnly bool) []trace.EdgePair {
	nbs := w.graph.Neighbors(u)
	out := make([]trace.EdgePair, 0, len(nbs))
	for _, e := range nbs {
		if unvisitedOnly && w.visited.Has(e.To) {
			continue
		}
		out = append(out, trace.EdgePair{u, e.To})
	}

	return out
}
