// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/core"
)

func TestBuildGraph_Topologies(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		cons      builder.Constructor
		wantEdges int
	}{
		{"path", 5, builder.Path(), 4},
		{"cycle", 5, builder.Cycle(), 5},
		{"complete", 5, builder.Complete(), 10},
		{"sparse p=1", 4, builder.RandomSparse(1), 6},
		{"sparse p=0", 4, builder.RandomSparse(0), 0},
		{"grid 3x4", 12, builder.Grid(3, 4, builder.Conn4), 17},
		{"grid 3x3 diagonal", 9, builder.Grid(3, 3, builder.Conn8), 20},
		{"grid 1x1", 1, builder.Grid(1, 1, builder.Conn4), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.n, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.NodeCount())
			assert.Equal(t, tc.wantEdges, g.EdgeCount())
		})
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	_, err := builder.BuildGraph(1, nil, builder.Path())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(2, nil, builder.Cycle())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(0, nil, builder.Complete())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(3, nil, builder.RandomSparse(1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(3, nil, builder.RandomSparse(0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(5, nil, builder.Grid(2, 3, builder.Conn4))
	assert.ErrorIs(t, err, builder.ErrGridShape)

	_, err = builder.BuildGraph(3, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_SeedDeterminism(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithWeightFn(builder.UniformWeightFn(1, 1000)),
	}
	g1, err := builder.BuildGraph(12, opts, builder.RandomSparse(0.3))
	require.NoError(t, err)

	opts2 := []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithWeightFn(builder.UniformWeightFn(1, 1000)),
	}
	g2, err := builder.BuildGraph(12, opts2, builder.RandomSparse(0.3))
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	for _, e := range g1.Edges() {
		assert.GreaterOrEqual(t, e.Weight, uint32(1))
		assert.LessOrEqual(t, e.Weight, uint32(1000))
	}
}

func TestWeightFn(t *testing.T) {
	assert.Equal(t, uint32(7), builder.ConstantWeightFn(7)(nil))
	assert.Equal(t, uint32(3), builder.UniformWeightFn(3, 9)(nil))
	assert.Panics(t, func() { builder.UniformWeightFn(9, 3) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestResolver(t *testing.T) {
	r, err := builder.NewResolver([]string{"A", "B", "C"})
	require.NoError(t, err)

	i, err := r.Index("B")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, "C", r.Name(2))
	assert.Equal(t, "7", r.Name(7))
	assert.True(t, r.Has("A"))
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"A", "B", "C"}, r.Names())
	assert.Equal(t, "A", r.Namer()(0))

	_, err = r.Index("Z")
	assert.ErrorIs(t, err, builder.ErrUnknownName)
	assert.ErrorIs(t, err, core.ErrUnknownStartNode)

	_, err = builder.NewResolver([]string{"A", "A"})
	assert.ErrorIs(t, err, builder.ErrDuplicateName)
	_, err = builder.NewResolver([]string{""})
	assert.ErrorIs(t, err, builder.ErrEmptyName)
}

func TestBuildNamed_UnknownEndpoint(t *testing.T) {
	_, err := builder.BuildNamed(
		[]builder.Node{{Name: "A"}, {Name: "B"}},
		[]builder.NamedEdge{{From: "A", To: "Q", Weight: 1}},
	)
	assert.ErrorIs(t, err, builder.ErrUnknownName)
}

func TestCities_Fixture(t *testing.T) {
	ng := builder.Cities()
	g := ng.Graph

	assert.Equal(t, 10, g.NodeCount())
	assert.Equal(t, 17, g.EdgeCount())

	bj, err := ng.Names.Index(builder.Beijing)
	require.NoError(t, err)
	assert.Equal(t, 0, bj)
	assert.Equal(t, []core.Edge{{To: 1, Weight: 750}, {To: 2, Weight: 800}, {To: 3, Weight: 1140}, {To: 4, Weight: 650}},
		g.Neighbors(bj))

	zsj, err := ng.Names.Index(builder.Zhusanjiao)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{To: 7, Weight: 2500}, {To: 5, Weight: 1380}, {To: 8, Weight: 2600}},
		g.Neighbors(zsj))
}

func TestCities_Geography(t *testing.T) {
	ng := builder.Cities()
	b := ng.Bound()
	assert.InDelta(t, 104.07, b.Min.Lon(), 1e-9)
	assert.InDelta(t, 41.80, b.Max.Lat(), 1e-9)

	// Beijing to the Yangtze delta is roughly 1070 km as the crow flies.
	assert.InDelta(t, 1_070_000, ng.GeoDistance(0, 8), 50_000)
	assert.Zero(t, ng.GeoDistance(0, 99))
}
