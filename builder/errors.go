// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w.
//   - Resolver lookups of unknown names wrap core.ErrUnknownStartNode as well,
//     so a failed start-node lookup is recognized at the engine boundary.

package builder

import "errors"

// ErrTooFewVertices indicates the graph has fewer nodes than a constructor needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed edge insertion.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownName indicates a node name absent from a Resolver.
var ErrUnknownName = errors.New("builder: unknown node name")

// ErrDuplicateName indicates two nodes share a name.
var ErrDuplicateName = errors.New("builder: duplicate node name")

// ErrEmptyName indicates a node without a name.
var ErrEmptyName = errors.New("builder: empty node name")

// ErrGridShape indicates grid dimensions that do not match the node count.
var ErrGridShape = errors.New("builder: grid shape mismatch")
