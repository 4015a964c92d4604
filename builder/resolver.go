// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// resolver.go - bidirectional node name ↔ index mapping.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/trace"
)

// Resolver maps external node names to dense indices and back.
// It is immutable after NewResolver and safe for concurrent reads.
type Resolver struct {
	names []string
	index map[string]int
}

// NewResolver assigns index i to names[i]. Names must be unique and non-empty.
func NewResolver(names []string) (*Resolver, error) {
	r := &Resolver{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("NewResolver: index %d: %w", i, ErrEmptyName)
		}
		if prev, dup := r.index[name]; dup {
			return nil, fmt.Errorf("NewResolver: %q at %d and %d: %w", name, prev, i, ErrDuplicateName)
		}
		r.names[i] = name
		r.index[name] = i
	}

	return r, nil
}

// Index resolves name to its node index. An unknown name yields an error
// matching both ErrUnknownName and core.ErrUnknownStartNode.
func (r *Resolver) Index(name string) (int, error) {
	i, ok := r.index[name]
	if !ok {
		return 0, fmt.Errorf("%w %q: %w", ErrUnknownName, name, core.ErrUnknownStartNode)
	}

	return i, nil
}

// Has reports whether name is known.
func (r *Resolver) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Name returns the name of node i, or its decimal index when i is out of range.
func (r *Resolver) Name(i int) string {
	if i < 0 || i >= len(r.names) {
		return trace.IndexNamer(i)
	}

	return r.names[i]
}

// Names returns all names in index order.
func (r *Resolver) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Len returns the number of names.
func (r *Resolver) Len() int { return len(r.names) }

// Namer adapts the resolver for engine explanations.
func (r *Resolver) Namer() trace.Namer { return r.Name }
