// Package dfs implements a step-recording depth-first traversal over a
// core.Graph.
//
// The traversal is iterative with an explicit stack and reproduces the order
// of a naive recursive DFS: at each node the first not-yet-visited neighbor in
// adjacency-list order is pushed and descended into immediately; siblings are
// considered only after that subtree is finished. (The alternative of pushing
// all neighbors in reverse and popping one at a time visits the same nodes but
// reports a different tree on graphs with cycles; it is not what this package
// does.)
//
// Steps emitted:
//
//   - Initial:      current = start, visited = {}, candidates = every edge leaving start.
//   - Visit:        a node is reached for the first time; its tree edge (parent, u) is
//     committed and candidates are the edges from u to unvisited neighbors.
//   - Backtracking: the top of the stack has no unvisited neighbor left; it is popped
//     and, if the stack is not empty, the new top becomes current.
//   - Terminal:     current = nil, visited = all reachable nodes, full tree edge list.
//
// Visited nodes are listed in ascending index order in every step.
//
// On a disconnected graph only the component containing start is traversed;
// the committed edges form a spanning tree of that component.
//
// Complexity:
//
//   - Time:   O(V + E) for the traversal, plus O(V) per emitted step for snapshots.
//   - Memory: O(V) scratch state, O(S·V) for a trace of S steps.
//
// Errors:
//
//   - core.ErrGraphNil          if g is nil.
//   - core.ErrUnknownStartNode  if start is not a node of g.
package dfs
