// Package runner resolves a start node by name, runs the requested engines
// over a named graph and hands each finished trace to the configured sinks.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/graphtrace/bfs"
	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/config"
	"github.com/katalvlaran/graphtrace/dfs"
	"github.com/katalvlaran/graphtrace/dijkstra"
	"github.com/katalvlaran/graphtrace/export"
	"github.com/katalvlaran/graphtrace/prim_kruskal"
	"github.com/katalvlaran/graphtrace/trace"
)

// ErrUnknownAlgorithm indicates an algorithm name with no engine.
var ErrUnknownAlgorithm = errors.New("runner: unknown algorithm")

// Runner executes engines against one named graph.
type Runner struct {
	graph  *builder.NamedGraph
	logger *slog.Logger
	sinks  []export.Sink
}

// New returns a Runner. A nil logger discards all records.
func New(ng *builder.NamedGraph, logger *slog.Logger, sinks ...export.Sink) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{graph: ng, logger: logger, sinks: sinks}
}

// Graph returns the graph the runner operates on.
func (r *Runner) Graph() *builder.NamedGraph { return r.graph }

// ResolveStart maps a node name to its index. Unknown names are logged at
// WARN and returned as an error matching core.ErrUnknownStartNode.
func (r *Runner) ResolveStart(name string) (int, error) {
	idx, err := r.graph.Names.Index(name)
	if err != nil {
		r.logger.Warn("start node not found", "start", name)
		return 0, err
	}

	return idx, nil
}

// RandomStart picks a node name uniformly at random.
func (r *Runner) RandomStart(rng *rand.Rand) string {
	n := r.graph.Names.Len()
	if n == 0 {
		return ""
	}
	if rng == nil {
		return r.graph.Names.Name(rand.IntN(n))
	}

	return r.graph.Names.Name(rng.IntN(n))
}

// Trace runs one engine from start and returns its visualization.
func (r *Runner) Trace(algorithm string, start int) (*trace.Visualization, error) {
	g, namer := r.graph.Graph, r.graph.Names.Namer()

	switch algorithm {
	case config.AlgorithmDFS:
		res, err := dfs.DFS(g, start, dfs.WithNamer(namer))
		if err != nil {
			return nil, err
		}
		return res.Trace, nil
	case config.AlgorithmBFS:
		res, err := bfs.BFS(g, start, bfs.WithNamer(namer))
		if err != nil {
			return nil, err
		}
		return res.Trace, nil
	case config.AlgorithmDijkstra:
		res, err := dijkstra.Dijkstra(g, start, dijkstra.WithNamer(namer))
		if err != nil {
			return nil, err
		}
		return res.Trace, nil
	case config.AlgorithmPrim:
		res, err := prim_kruskal.Prim(g, start, prim_kruskal.WithNamer(namer))
		if err != nil {
			return nil, err
		}
		if !res.Spanning {
			r.logger.Warn("graph is disconnected, minimum spanning tree covers the start component only",
				"start", r.graph.Names.Name(start), "edges", len(res.Edges))
		}
		return res.Trace, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// Run resolves startName, traces algorithm and writes the document to every sink.
func (r *Runner) Run(ctx context.Context, algorithm, startName string) (*export.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start, err := r.ResolveStart(startName)
	if err != nil {
		return nil, err
	}

	vis, err := r.Trace(algorithm, start)
	if err != nil {
		return nil, err
	}
	r.logger.Info("trace recorded", "algorithm", algorithm, "start", startName, "steps", vis.Len())

	doc, err := export.NewDocument(algorithm, start, r.graph, vis)
	if err != nil {
		return nil, err
	}
	for _, s := range r.sinks {
		if err = s.Write(doc); err != nil {
			return doc, fmt.Errorf("runner: %s: %w", algorithm, err)
		}
	}
	r.logger.Debug("trace exported", "algorithm", algorithm, "run_id", doc.RunID, "sinks", len(r.sinks))

	return doc, nil
}

// RunAll runs each algorithm in order from the same start node. It stops at
// the first error or when ctx is cancelled between algorithms.
func (r *Runner) RunAll(ctx context.Context, algorithms []string, startName string) ([]*export.Document, error) {
	docs := make([]*export.Document, 0, len(algorithms))
	for _, a := range algorithms {
		doc, err := r.Run(ctx, a, startName)
		if err != nil {
			return docs, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
