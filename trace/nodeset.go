package trace

// NodeSet is a dense visited set over node indices 0..n-1 that also remembers
// insertion order.
type NodeSet struct {
	member []bool
	order  []int
}

// NewNodeSet returns an empty set for n nodes.
func NewNodeSet(n int) *NodeSet {
	return &NodeSet{member: make([]bool, n), order: make([]int, 0, n)}
}

// Add inserts u and reports whether it was newly added.
// Out-of-range indices are ignored.
func (s *NodeSet) Add(u int) bool {
	if u < 0 || u >= len(s.member) || s.member[u] {
		return false
	}
	s.member[u] = true
	s.order = append(s.order, u)

	return true
}

// Has reports membership of u.
func (s *NodeSet) Has(u int) bool { return u >= 0 && u < len(s.member) && s.member[u] }

// Len returns the number of members.
func (s *NodeSet) Len() int { return len(s.order) }

// Sorted returns the members in ascending index order.
func (s *NodeSet) Sorted() []int {
	out := make([]int, 0, len(s.order))
	for u, ok := range s.member {
		if ok {
			out = append(out, u)
		}
	}

	return out
}

// InOrder returns the members in insertion order.
func (s *NodeSet) InOrder() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)

	return out
}
