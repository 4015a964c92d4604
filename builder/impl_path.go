// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// impl_path.go - Path() constructor.
//
// Contract:
//   - NodeCount ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1)–i for i=1..n-1 in increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that links all nodes into a simple path P_n.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
