// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// impl_grid.go - Grid(rows, cols, conn) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 and rows*cols == NodeCount (else ErrGridShape).
//   - Node (r, c) has index r*cols + c.
//   - Conn4 links orthogonal neighbors; Conn8 adds both diagonals.
//   - Each undirected edge is emitted once, scanning cells row-major and
//     offsets in a fixed order, so a fixed seed gives a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

const methodGrid = "Grid"

// Connectivity selects which neighbors of a grid cell are linked.
type Connectivity int

const (
	// Conn4 links up, down, left and right.
	Conn4 Connectivity = iota
	// Conn8 also links the four diagonals.
	Conn8
)

// forward offsets only (dr, dc): every undirected pair is visited once
var (
	gridOffsets4 = [][2]int{{0, 1}, {1, 0}}
	gridOffsets8 = [][2]int{{0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Grid returns a Constructor that lays nodes out as a rows×cols lattice.
func Grid(rows, cols int, conn Connectivity) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if rows < 1 || cols < 1 || rows*cols != n {
			return fmt.Errorf("%s: %dx%d for n=%d: %w", methodGrid, rows, cols, n, ErrGridShape)
		}

		offsets := gridOffsets4
		if conn == Conn8 {
			offsets = gridOffsets8
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				for _, off := range offsets {
					nr, nc := r+off[0], c+off[1]
					if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
						continue
					}
					if err := addEdge(g, cfg, methodGrid, r*cols+c, nr*cols+nc); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
