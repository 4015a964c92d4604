// Package bfs defines options and the result type for breadth-first traversal.
package bfs

import (
	"github.com/katalvlaran/graphtrace/trace"
)

// Unreached marks nodes not reached in Result.Depth and Result.Parent.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters for BFS.
type BFSOptions struct {
	// Namer resolves node names for explanations.
	Namer trace.Namer

	// MaxDepth, if > 0, stops discovering nodes beyond this hop count.
	MaxDepth int
}

// DefaultOptions returns index-based names and no depth limit.
func DefaultOptions() BFSOptions {
	return BFSOptions{Namer: trace.IndexNamer}
}

// WithNamer sets the name resolver used in step explanations.
func WithNamer(n trace.Namer) Option {
	return func(o *BFSOptions) {
		if n != nil {
			o.Namer = n
		}
	}
}

// WithMaxDepth limits discovery to nodes within limit hops of start.
// Non-positive values disable the limit.
func WithMaxDepth(limit int) Option {
	return func(o *BFSOptions) {
		o.MaxDepth = limit
	}
}

// BFSResult captures the outcome of a breadth-first traversal.
type BFSResult struct {
	// Trace is the complete step sequence.
	Trace *trace.Visualization

	// Order lists nodes in dequeue order.
	Order []int

	// Depth[v] is the hop distance from start, or Unreached.
	Depth []int

	// Parent[v] is v's BFS tree parent, or Unreached.
	Parent []int
}
