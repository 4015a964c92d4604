// SPDX-License-Identifier: MIT
// Package: graphtrace/builder
//
// named.go - graphs whose nodes carry a name and a geographic location.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/katalvlaran/graphtrace/core"
)

// Node is a named node with an optional (lon, lat) location.
type Node struct {
	Name     string
	Location orb.Point
}

// NamedEdge is an undirected weighted edge between two named nodes.
type NamedEdge struct {
	From   string
	To     string
	Weight uint32
}

// NamedGraph bundles a graph with its name resolver and node layout.
type NamedGraph struct {
	Graph  *core.Graph
	Names  *Resolver
	Layout []orb.Point // Layout[i] is the location of node i
}

// BuildNamed creates a graph with one node per entry of nodes (index order)
// and inserts edges in the given order.
func BuildNamed(nodes []Node, edges []NamedEdge) (*NamedGraph, error) {
	names := make([]string, len(nodes))
	layout := make([]orb.Point, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
		layout[i] = n.Location
	}

	res, err := NewResolver(names)
	if err != nil {
		return nil, fmt.Errorf("BuildNamed: %w", err)
	}

	g := core.NewGraph(len(nodes))
	for _, e := range edges {
		u, err := res.Index(e.From)
		if err != nil {
			return nil, fmt.Errorf("BuildNamed: edge %s-%s: %w", e.From, e.To, ErrUnknownName)
		}
		v, err := res.Index(e.To)
		if err != nil {
			return nil, fmt.Errorf("BuildNamed: edge %s-%s: %w", e.From, e.To, ErrUnknownName)
		}
		if err = g.AddEdge(u, v, e.Weight); err != nil {
			return nil, fmt.Errorf("BuildNamed: %w", err)
		}
	}

	return &NamedGraph{Graph: g, Names: res, Layout: layout}, nil
}

// Bound returns the bounding box of all node locations.
func (ng *NamedGraph) Bound() orb.Bound {
	return orb.MultiPoint(ng.Layout).Bound()
}

// GeoDistance returns the great-circle distance in meters between nodes u and v.
// It returns 0 when either index is out of range.
func (ng *NamedGraph) GeoDistance(u, v int) float64 {
	if u < 0 || v < 0 || u >= len(ng.Layout) || v >= len(ng.Layout) {
		return 0
	}

	return geo.Distance(ng.Layout[u], ng.Layout[v])
}
