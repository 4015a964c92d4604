package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/dijkstra"
	"github.com/katalvlaran/graphtrace/trace"
)

func TestDijkstra_InvalidInput(t *testing.T) {
	res, err := dijkstra.Dijkstra(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, core.ErrGraphNil)

	g := core.NewGraph(2)
	for _, start := range []int{-1, 2} {
		res, err = dijkstra.Dijkstra(g, start)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, core.ErrUnknownStartNode)
	}
}

func TestDijkstra_SingleNode(t *testing.T) {
	res, err := dijkstra.Dijkstra(core.NewGraph(1), 0)
	require.NoError(t, err)
	require.NoError(t, trace.Validate(res.Trace))

	assert.Equal(t, 3, res.Trace.Len())
	assert.Equal(t, []uint32{0}, res.Dist)
	assert.Equal(t, []int{0}, res.Settled)
}

func TestDijkstra_Cities(t *testing.T) {
	ng := builder.Cities()
	res, err := dijkstra.Dijkstra(ng.Graph, 0, dijkstra.WithNamer(ng.Names.Namer()))
	require.NoError(t, err)
	require.NoError(t, trace.Validate(res.Trace))

	assert.Equal(t, []uint32{0, 750, 800, 1140, 650, 1180, 1980, 2080, 1760, 2560}, res.Dist)
	assert.Equal(t, []int{0, 4, 1, 2, 3, 5, 8, 6, 7, 9}, res.Settled)

	// initial + 10 settles + terminal; the stale Changsanjiao entry is not recorded
	steps := res.Trace.Steps
	require.Len(t, steps, 12)

	first := steps[0]
	assert.Equal(t, "Starting Dijkstra's algorithm from Beijing", first.Explanation)
	assert.Empty(t, first.VisitedNodes)
	assert.Equal(t, []trace.EdgePair{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, first.CandidateEdges)

	second := steps[1]
	cur, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, 0, cur)
	assert.Equal(t, []int{0}, second.VisitedNodes)
	assert.Empty(t, second.EdgesInPath)

	third := steps[2]
	assert.Equal(t, "Visiting node Zhengzhou (distance 650)", third.Explanation)
	assert.Equal(t, []trace.EdgePair{{0, 4}}, third.EdgesInPath)
	assert.Equal(t, []trace.EdgePair{{4, 0}, {4, 3}, {4, 2}, {4, 5}, {4, 8}}, third.CandidateEdges)

	last := steps[len(steps)-1]
	assert.True(t, last.Terminal())
	assert.Equal(t, "Dijkstra's algorithm complete", last.Explanation)
	wantTree := []trace.EdgePair{{0, 4}, {0, 1}, {0, 2}, {0, 3}, {4, 5}, {2, 8}, {3, 6}, {5, 7}, {5, 9}}
	assert.Equal(t, wantTree, last.EdgesInPath)

	path, err := res.PathTo(9)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 5, 9}, path)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(2, 3, 1))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	require.NoError(t, trace.Validate(res.Trace))

	assert.Equal(t, []uint32{0, 3, dijkstra.Unreachable, dijkstra.Unreachable}, res.Dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor, 0, dijkstra.NoPredecessor, dijkstra.NoPredecessor}, res.Prev)
	assert.False(t, res.Reachable(2))
	assert.False(t, res.Reachable(-1))

	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	last, _ := res.Trace.Last()
	assert.Equal(t, []int{0, 1}, last.VisitedNodes)
}

func TestDijkstra_SaturatingDistances(t *testing.T) {
	// 0 -(MaxUint32-1)- 1 -(5)- 2: the second hop overflows
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, math.MaxUint32-1))
	require.NoError(t, g.AddEdge(1, 2, 5))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32-1), res.Dist[1])
	assert.Equal(t, uint32(dijkstra.Unreachable), res.Dist[2])
	assert.False(t, res.Reachable(2))

	// an edge weighted MaxUint32 is never relaxable
	h := core.NewGraph(2)
	require.NoError(t, h.AddEdge(0, 1, math.MaxUint32))
	res, err = dijkstra.Dijkstra(h, 0)
	require.NoError(t, err)
	assert.False(t, res.Reachable(1))
}

func TestDijkstra_MaxDistance(t *testing.T) {
	ng := builder.Cities()
	res, err := dijkstra.Dijkstra(ng.Graph, 0, dijkstra.WithMaxDistance(1000))
	require.NoError(t, err)
	require.NoError(t, trace.Validate(res.Trace))

	assert.Equal(t, []int{0, 4, 1, 2}, res.Settled)
	for v := range res.Dist {
		if res.Reachable(v) {
			assert.LessOrEqual(t, res.Dist[v], uint32(1000))
		} else {
			assert.Equal(t, dijkstra.NoPredecessor, res.Prev[v])
		}
	}
}

func TestDijkstra_ZeroWeights(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 2, 0))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	require.NoError(t, trace.Validate(res.Trace))
	assert.Equal(t, []uint32{0, 0, 0}, res.Dist)
	assert.Equal(t, 3, len(res.Settled))
}

// bellmanFord is an O(VE) reference for shortest distances.
func bellmanFord(g *core.Graph, start int) []uint64 {
	const inf = math.MaxUint64
	dist := make([]uint64, g.NodeCount())
	for i := range dist {
		dist[i] = inf
	}
	dist[start] = 0
	for i := 0; i < g.NodeCount(); i++ {
		for _, e := range g.Edges() {
			if dist[e.From] != inf && dist[e.From]+uint64(e.Weight) < dist[e.To] {
				dist[e.To] = dist[e.From] + uint64(e.Weight)
			}
			if dist[e.To] != inf && dist[e.To]+uint64(e.Weight) < dist[e.From] {
				dist[e.From] = dist[e.To] + uint64(e.Weight)
			}
		}
	}

	return dist
}

func TestDijkstra_MatchesBellmanFord(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		n := 5 + int(seed%11)
		g, err := builder.BuildGraph(n, []builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformWeightFn(0, 100)),
		}, builder.RandomSparse(0.3))
		require.NoError(t, err)

		start := rand.New(rand.NewSource(seed)).Intn(n)
		res, err := dijkstra.Dijkstra(g, start)
		require.NoError(t, err)
		require.NoError(t, trace.Validate(res.Trace), "seed %d", seed)

		want := bellmanFord(g, start)
		for v := 0; v < n; v++ {
			if want[v] == math.MaxUint64 {
				assert.False(t, res.Reachable(v), "seed %d node %d", seed, v)
				continue
			}
			assert.Equal(t, want[v], uint64(res.Dist[v]), "seed %d node %d", seed, v)

			// the reconstructed path sums to the distance
			path, err := res.PathTo(v)
			require.NoError(t, err)
			assert.Equal(t, start, path[0])
		}

		// steps = initial + one per settled node + terminal
		assert.Equal(t, len(res.Settled)+2, res.Trace.Len())
	}
}

func TestDijkstra_Deterministic(t *testing.T) {
	ng := builder.Cities()
	a, err := dijkstra.Dijkstra(ng.Graph, 3)
	require.NoError(t, err)
	b, err := dijkstra.Dijkstra(ng.Graph, 3)
	require.NoError(t, err)
	assert.Equal(t, a.Trace, b.Trace)
}
