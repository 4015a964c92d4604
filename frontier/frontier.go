package frontier

import (
	"container/heap"
	"sort"
)

// Item is one frontier entry: a priority key, its insertion sequence and
// the caller's payload.
type Item[T any] struct {
	Key   uint64 // smaller key = higher priority
	Seq   uint64 // insertion order, breaks ties between equal keys
	Value T
}

// less is the single ordering used by the heap and by Snapshot.
func (a Item[T]) less(b Item[T]) bool {
	if a.Key != b.Key {
		return a.Key < b.Key
	}

	return a.Seq < b.Seq
}

// Frontier is a min-priority queue keyed by Item.Key.
// The zero value is ready to use. Not safe for concurrent use.
type Frontier[T any] struct {
	items itemHeap[T]
	seq   uint64
}

// New returns an empty frontier with room for capacity entries.
func New[T any](capacity int) *Frontier[T] {
	return &Frontier[T]{items: make(itemHeap[T], 0, capacity)}
}

// Push adds value with the given key.
func (f *Frontier[T]) Push(key uint64, value T) {
	heap.Push(&f.items, Item[T]{Key: key, Seq: f.seq, Value: value})
	f.seq++
}

// Pop removes and returns the entry with the smallest key.
// The boolean is false when the frontier is empty.
func (f *Frontier[T]) Pop() (Item[T], bool) {
	if len(f.items) == 0 {
		return Item[T]{}, false
	}

	return heap.Pop(&f.items).(Item[T]), true
}

// Peek returns the entry Pop would return, without removing it.
func (f *Frontier[T]) Peek() (Item[T], bool) {
	if len(f.items) == 0 {
		return Item[T]{}, false
	}

	return f.items[0], true
}

// Len returns the number of entries, stale ones included.
func (f *Frontier[T]) Len() int { return len(f.items) }

// Snapshot returns all entries in pop order without modifying the frontier.
func (f *Frontier[T]) Snapshot() []Item[T] {
	out := make([]Item[T], len(f.items))
	copy(out, f.items)
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}

// itemHeap implements heap.Interface over Item values.
type itemHeap[T any] []Item[T]

func (h itemHeap[T]) Len() int           { return len(h) }
func (h itemHeap[T]) Less(i, j int) bool { return h[i].less(h[j]) }
func (h itemHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[T]) Push(x any) { *h = append(*h, x.(Item[T])) }

func (h *itemHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
