// Package dijkstra defines options, sentinel errors, and the result type
// for the shortest-path engine.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/graphtrace/trace"
)

// Unreachable is the distance reported for nodes with no path from start.
const Unreachable = math.MaxUint32

// NoPredecessor marks nodes without a predecessor in Result.Prev.
const NoPredecessor = -1

// ErrUnreachable indicates that no path exists to the requested node.
var ErrUnreachable = errors.New("dijkstra: node unreachable from start")

// Options configures the behavior of Dijkstra.
type Options struct {
	// Namer resolves node names for explanations.
	Namer trace.Namer

	// MaxDistance caps the distances explored. Default is Unreachable-1 (no cap).
	MaxDistance uint32
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns index-based names and no distance cap.
func DefaultOptions() Options {
	return Options{
		Namer:       trace.IndexNamer,
		MaxDistance: Unreachable - 1,
	}
}

// WithNamer sets the name resolver used in step explanations.
func WithNamer(n trace.Namer) Option {
	return func(o *Options) {
		if n != nil {
			o.Namer = n
		}
	}
}

// WithMaxDistance stops exploration beyond max. Nodes whose shortest distance
// exceeds max are reported as unreachable.
func WithMaxDistance(max uint32) Option {
	return func(o *Options) {
		if max >= Unreachable {
			max = Unreachable - 1
		}
		o.MaxDistance = max
	}
}

// Result captures the outcome of one Dijkstra run.
type Result struct {
	// Trace is the complete step sequence.
	Trace *trace.Visualization

	// Start is the source node.
	Start int

	// Dist[v] is the shortest distance from Start, or Unreachable.
	Dist []uint32

	// Prev[v] is v's predecessor on a shortest path, or NoPredecessor.
	Prev []int

	// Settled lists nodes in the order their distance became final.
	Settled []int
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreachable
}

// PathTo reconstructs the node sequence from Start to v.
func (r *Result) PathTo(v int) ([]int, error) {
	if !r.Reachable(v) {
		return nil, ErrUnreachable
	}

	var rev []int
	for u := v; u != NoPredecessor; u = r.Prev[u] {
		rev = append(rev, u)
	}
	path := make([]int, len(rev))
	for i, u := range rev {
		path[len(rev)-1-i] = u
	}

	return path, nil
}
