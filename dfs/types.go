// Package dfs defines options and the result type for the traversal engine.
package dfs

import (
	"github.com/katalvlaran/graphtrace/trace"
)

// NoParent marks nodes without a tree parent in Result.Parent.
const NoParent = -1

// Option configures optional behavior of DFS.
type Option func(*Options)

// Options holds configurable parameters for DFS.
type Options struct {
	// Namer resolves node names for explanations. Defaults to trace.IndexNamer.
	Namer trace.Namer
}

// DefaultOptions returns Options with index-based names.
func DefaultOptions() Options {
	return Options{Namer: trace.IndexNamer}
}

// WithNamer sets the name resolver used in step explanations.
// A nil namer keeps the default.
func WithNamer(n trace.Namer) Option {
	return func(o *Options) {
		if n != nil {
			o.Namer = n
		}
	}
}

// Result captures the outcome of one traversal.
type Result struct {
	// Trace is the complete step sequence.
	Trace *trace.Visualization

	// Order lists nodes in discovery (pre-order) sequence.
	Order []int

	// Parent[v] is the node from which v was first reached, or NoParent for
	// the start node and unreached nodes.
	Parent []int

	// TreeEdges are the committed (parent, child) edges in commit order.
	TreeEdges []trace.EdgePair
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	for _, u := range r.Order {
		if u == v {
			return true
		}
	}

	return false
}
