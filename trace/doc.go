// Package trace defines the visualization contract shared by every engine:
// an ordered, append-only sequence of immutable Step snapshots.
//
// A Step records the algorithm state right after a meaningful transition:
//
//   - VisitedNodes   - nodes visited/settled so far (unique)
//   - CurrentNode    - node being processed; nil only on the terminal step
//   - EdgesInPath    - committed result edges; never shrinks from step to step
//   - CandidateEdges - the current frontier; replaced wholesale every step
//   - Explanation    - human-readable, informational only
//
// Engines build a Visualization through a Recorder they own exclusively for
// one run, and return it complete. JSON field names match the web visualizer
// (`visited_nodes`, `current_node`, `edges_in_path`, `candidate_edges`,
// `explanation`), and EdgePair marshals as a two-element array.
package trace
