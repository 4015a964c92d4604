// Package prim_kruskal defines configuration options, sentinel errors and
// the result type for MST computation.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// ErrUnknownMethod indicates that MSTOptions.Method names no algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is the outcome of an MST computation.
type Result struct {
	// Trace is the Prim step sequence; nil for Kruskal.
	Trace *trace.Visualization

	// Edges lists tree edges in the order they were accepted.
	Edges []core.WeightedEdge

	// TotalWeight is the sum of Edges weights.
	TotalWeight uint64

	// Spanning is true when Edges connects every node of the graph.
	Spanning bool
}

// Pairs returns the tree edges as (from, to) pairs.
func (r *Result) Pairs() []trace.EdgePair {
	out := make([]trace.EdgePair, len(r.Edges))
	for i, e := range r.Edges {
		out[i] = trace.EdgePair{e.From, e.To}
	}

	return out
}

// MSTOptions configures which MST algorithm to run, and for Prim, which
// start node and name resolver to use.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the start node for Prim. Unused by Kruskal.
	Root int

	// Namer resolves node names in Prim explanations.
	Namer trace.Namer
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the start node for Prim; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithNamer sets the name resolver used in step explanations.
func WithNamer(n trace.Namer) Option {
	return func(opts *MSTOptions) {
		if n != nil {
			opts.Namer = n
		}
	}
}

// DefaultOptions returns MSTOptions for Kruskal with root 0 and index names.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
		Namer:  trace.IndexNamer,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(g).
//	– MethodPrim:    Prim(g, opts.Root, WithNamer(opts.Namer)).
//	– Otherwise:     ErrUnknownMethod.
func Compute(g *core.Graph, opts MSTOptions) (*Result, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, opts.Root, WithNamer(opts.Namer))
	default:
		return nil, ErrUnknownMethod
	}
}
