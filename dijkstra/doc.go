// Package dijkstra implements a step-recording Dijkstra shortest-path engine
// on a core.Graph with non-negative uint32 weights.
//
// Overview:
//
//   - dist[start] = 0, every other node starts at Unreachable (math.MaxUint32).
//   - A frontier.Frontier keyed by tentative distance is seeded with (0, start).
//   - Each pop either discards a stale entry (its key exceeds the current best
//     distance) or settles the node, records a step, and relaxes its edges.
//   - Relaxation uses strict "<", so equal-distance alternatives never replace
//     an existing predecessor. Among equal keys the frontier pops in insertion
//     order; callers should rely only on final distances, not on tie order.
//
// Steps emitted:
//
//   - Initial:  current = start, visited = {}, candidates = every edge leaving start.
//   - Settle:   one step per settled node (stale pops are not recorded);
//     visited = settled nodes in settle order, edges_in_path = (prev[v], v) for
//     every settled v except start in settle order, candidates = every edge leaving
//     the settled node.
//   - Terminal: current = nil, all settled nodes, the shortest-path tree.
//
// Only settled nodes contribute tree edges, because a tentative predecessor
// can still change; committed edges therefore never disappear from later steps.
//
// Numeric semantics:
//
//   - Distances use saturating uint32 addition. A sum that overflows (or reaches
//     math.MaxUint32) is treated as unreachable and never relaxed.
//   - WithMaxDistance(d) stops settling once the smallest frontier key exceeds d.
//     Nodes beyond d are reported as unreachable.
//
// Negative weights cannot be expressed (uint32), so no pre-scan is needed.
//
// Complexity:
//
//   - Time:  O((V + E) log V) plus O(V) per recorded step.
//   - Space: O(V + E) (lazy decrease-key may hold one frontier entry per relaxation).
//
// Errors:
//
//   - core.ErrGraphNil          if g is nil.
//   - core.ErrUnknownStartNode  if start is not a node of g.
//   - ErrUnreachable            from Result.PathTo for nodes with no path.
package dijkstra
