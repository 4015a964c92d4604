package trace

import (
	"errors"
	"strconv"
)

// ErrMalformedTrace is returned by Validate when a trace breaks the step contract.
var ErrMalformedTrace = errors.New("trace: malformed visualization")

// EdgePair is a (from, to) node pair.
type EdgePair [2]int

// From returns the first endpoint.
func (e EdgePair) From() int { return e[0] }

// To returns the second endpoint.
func (e EdgePair) To() int { return e[1] }

// Step is one immutable snapshot of an engine's state.
type Step struct {
	VisitedNodes   []int      `json:"visited_nodes" yaml:"visited_nodes"`
	CurrentNode    *int       `json:"current_node" yaml:"current_node"`
	EdgesInPath    []EdgePair `json:"edges_in_path" yaml:"edges_in_path"`
	CandidateEdges []EdgePair `json:"candidate_edges" yaml:"candidate_edges"`
	Explanation    string     `json:"explanation" yaml:"explanation"`
}

// Current returns the current node and whether one is set.
func (s Step) Current() (int, bool) {
	if s.CurrentNode == nil {
		return 0, false
	}

	return *s.CurrentNode, true
}

// Terminal reports whether s is a completion step.
func (s Step) Terminal() bool { return s.CurrentNode == nil }

// Visualization is the ordered trace of one engine run.
type Visualization struct {
	Steps []Step `json:"steps" yaml:"steps"`
}

// Len returns the number of steps.
func (v *Visualization) Len() int {
	if v == nil {
		return 0
	}

	return len(v.Steps)
}

// First returns the initialization step.
func (v *Visualization) First() (Step, bool) {
	if v.Len() == 0 {
		return Step{}, false
	}

	return v.Steps[0], true
}

// Last returns the terminal step.
func (v *Visualization) Last() (Step, bool) {
	if v.Len() == 0 {
		return Step{}, false
	}

	return v.Steps[len(v.Steps)-1], true
}

// Namer maps a node index to a display name for explanations.
type Namer func(node int) string

// IndexNamer names nodes by their decimal index.
func IndexNamer(node int) string { return strconv.Itoa(node) }

// NamerOrDefault returns n, or IndexNamer when n is nil.
func NamerOrDefault(n Namer) Namer {
	if n == nil {
		return IndexNamer
	}

	return n
}

// Node returns a pointer to a copy of node, for Step.CurrentNode.
func Node(node int) *int { return &node }
