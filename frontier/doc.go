// Package frontier provides the min-priority frontier used by the Dijkstra
// and Prim engines.
//
// A Frontier[T] orders entries by an explicit uint64 key (tentative distance
// or edge weight). Among equal keys, entries come out in insertion order, so
// every engine run over the same graph produces the same sequence of pops.
//
// The frontier is a lazy structure: stale entries (a node already settled, an
// edge whose far end is already in the tree) are not removed on update; the
// engine discards them when they are popped.
//
// Complexity:
//
//   - Push: O(log N)
//   - Pop:  O(log N)
//   - Snapshot: O(N log N) (copy + sort, the heap itself is untouched)
package frontier
