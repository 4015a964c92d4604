// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// impl_cycle.go - Cycle() constructor.
//
// Contract:
//   - NodeCount ≥ 3 (else ErrTooFewVertices).
//   - Emits (i)–(i+1) for i=0..n-2, then the closing edge (n-1)–0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that links all nodes into a simple cycle C_n.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodCycle, i, i+1); err != nil {
				return err
			}
		}

		return addEdge(g, cfg, methodCycle, n-1, 0)
	}
}
