package trace

import "fmt"

// Validate checks v against the visualization contract:
//
//  1. at least one step;
//  2. the first step has a current node;
//  3. the last step has no current node and no candidate edges;
//  4. only the last step is terminal;
//  5. visited nodes are unique within each step;
//  6. each step's EdgesInPath extends the previous step's (committed edges are never removed).
//
// Violations are reported as ErrMalformedTrace wrapped with the step index.
func Validate(v *Visualization) error {
	if v.Len() == 0 {
		return fmt.Errorf("%w: no steps", ErrMalformedTrace)
	}
	steps := v.Steps
	if steps[0].Terminal() {
		return fmt.Errorf("%w: step 0 has no current node", ErrMalformedTrace)
	}

	last := len(steps) - 1
	if !steps[last].Terminal() {
		return fmt.Errorf("%w: step %d: terminal step has a current node", ErrMalformedTrace, last)
	}
	if len(steps[last].CandidateEdges) != 0 {
		return fmt.Errorf("%w: step %d: terminal step has candidate edges", ErrMalformedTrace, last)
	}

	var prevPath []EdgePair
	for i, s := range steps {
		if i != last && s.Terminal() {
			return fmt.Errorf("%w: step %d: premature terminal step", ErrMalformedTrace, i)
		}

		seen := make(map[int]struct{}, len(s.VisitedNodes))
		for _, u := range s.VisitedNodes {
			if _, dup := seen[u]; dup {
				return fmt.Errorf("%w: step %d: node %d visited twice", ErrMalformedTrace, i, u)
			}
			seen[u] = struct{}{}
		}

		if len(s.EdgesInPath) < len(prevPath) {
			return fmt.Errorf("%w: step %d: committed edges shrank", ErrMalformedTrace, i)
		}
		for j, e := range prevPath {
			if s.EdgesInPath[j] != e {
				return fmt.Errorf("%w: step %d: committed edge %v replaced", ErrMalformedTrace, i, e)
			}
		}
		prevPath = s.EdgesInPath
	}

	return nil
}
