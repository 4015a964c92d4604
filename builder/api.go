// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// api.go - BuildGraph orchestrator and the Constructor type.
//
// Contract:
//   - BuildGraph(n, bopts, cons...) creates an n-node graph, resolves the
//     config, and runs constructors in order.
//   - Same n, options, seed and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtrace/core"
)

// Constructor adds edges to g using the resolved builderConfig.
// Constructors validate their parameters and return sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with n nodes and applies all constructors in order.
// Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(n)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge inserts u–v with the next configured weight and tags failures with method.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	if err := g.AddEdge(u, v, cfg.weight()); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %v: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}
