// Package bfs implements a step-recording breadth-first traversal over a
// core.Graph, sharing the trace contract of the dfs package.
//
// Nodes are discovered in FIFO order; neighbors are enqueued in adjacency-list
// order. A node's tree edge (parent, u) is committed when u is dequeued.
//
// Steps emitted:
//
//   - Initial:  current = start, visited = {}, candidates = every edge leaving start.
//   - Dequeue:  u is processed; visited lists processed nodes in ascending order and
//     candidates are the edges from u to not-yet-discovered neighbors (they become
//     tree edges once their far end is dequeued).
//   - Terminal: current = nil, the full BFS tree, no candidates.
//
// Depth[v] is the hop count from start, -1 for unreached nodes.
//
// Complexity: O(V + E) traversal, O(V) per recorded step.
package bfs
