// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// impl_random_sparse.go - RandomSparse(p) constructor (Erdős–Rényi G(n,p)).
//
// Contract:
//   - p ∈ [0,1] (else ErrInvalidProbability).
//   - 0 < p < 1 requires an RNG (else ErrNeedRandSource).
//   - Pairs i<j are sampled in lexicographic order, so a fixed seed gives a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that adds each pair i<j independently with probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		n := g.NodeCount()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1 || (p > 0 && cfg.rng.Float64() < p)
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
