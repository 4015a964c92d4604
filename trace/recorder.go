package trace

// Recorder accumulates steps for a single engine run. It is owned by exactly
// one engine invocation and handed off through Finish.
type Recorder struct {
	steps []Step
}

// NewRecorder returns a recorder with room for capacity steps.
func NewRecorder(capacity int) *Recorder {
	return &Recorder{steps: make([]Step, 0, capacity)}
}

// Record appends a snapshot. Every slice is copied, so callers may keep
// mutating their scratch state after the call. Nil slices are stored as empty
// slices so that serialized traces never contain null arrays.
func (r *Recorder) Record(visited []int, current *int, path, candidates []EdgePair, explanation string) {
	step := Step{
		VisitedNodes:   cloneInts(visited),
		EdgesInPath:    clonePairs(path),
		CandidateEdges: clonePairs(candidates),
		Explanation:    explanation,
	}
	if current != nil {
		step.CurrentNode = Node(*current)
	}
	r.steps = append(r.steps, step)
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.steps) }

// Finish returns the completed visualization. The recorder must not be used afterwards.
func (r *Recorder) Finish() *Visualization {
	v := &Visualization{Steps: r.steps}
	r.steps = nil

	return v
}

func cloneInts(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)

	return out
}

func clonePairs(in []EdgePair) []EdgePair {
	out := make([]EdgePair, len(in))
	copy(out, in)

	return out
}
