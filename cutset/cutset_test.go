package cutset

import (
	"testing"

	"github.com/katalvlaran/dynconn/graph"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, edges ...[2]uint64) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestMakeTreeEdgeConnectsComponents(t *testing.T) {
	g := buildGraph(t, [2]uint64{0, 1})
	c := New(4, 2, 1, 1, g)

	require.NotEqual(t, c.CompRepresentative(0, 0), c.CompRepresentative(1, 0))
	require.NoError(t, c.MakeTreeEdge(Edge{0, 1}, 0))
	require.Equal(t, c.CompRepresentative(0, 0), c.CompRepresentative(1, 0))
	require.Equal(t, 2, c.CompSize(0, 0))
}

func TestMakeTreeEdgeRejectsAlreadyConnected(t *testing.T) {
	g := buildGraph(t, [2]uint64{0, 1}, [2]uint64{1, 2})
	c := New(4, 2, 1, 1, g)

	require.NoError(t, c.MakeTreeEdge(Edge{0, 1}, 0))
	require.NoError(t, c.MakeTreeEdge(Edge{1, 2}, 0))
	require.ErrorIs(t, c.MakeTreeEdge(Edge{0, 2}, 0), ErrAlreadyConnected)
}

func TestMakeNonTreeEdgeSplitsComponent(t *testing.T) {
	g := buildGraph(t, [2]uint64{0, 1}, [2]uint64{1, 2})
	c := New(4, 2, 1, 1, g)

	require.NoError(t, c.MakeTreeEdge(Edge{0, 1}, 0))
	require.NoError(t, c.MakeTreeEdge(Edge{1, 2}, 0))
	require.Equal(t, 3, c.CompSize(0, 0))

	require.NoError(t, c.MakeNonTreeEdge(Edge{0, 1}))
	require.NotEqual(t, c.CompRepresentative(0, 0), c.CompRepresentative(1, 0))
	require.Equal(t, c.CompRepresentative(1, 0), c.CompRepresentative(2, 0))
}

func TestMakeNonTreeEdgeRejectsNonTreeEdge(t *testing.T) {
	g := buildGraph(t, [2]uint64{0, 1})
	c := New(4, 2, 1, 1, g)
	require.ErrorIs(t, c.MakeNonTreeEdge(Edge{0, 1}), ErrNotTreeEdge)
}

func TestAddEdgeToSetIsInvertible(t *testing.T) {
	g := buildGraph(t, [2]uint64{0, 1})
	c := New(8, 3, 2, 7, g)

	c.AddEdgeToSet(Edge{0, 1})
	before := c.flattenSketch(0, 0)
	c.AddEdgeToSet(Edge{0, 1})
	after := c.flattenSketch(0, 0)

	for j := range before {
		for k := range before[j] {
			require.Equal(t, uint64(0), after[j][k]^before[j][k]^before[j][k])
		}
	}
}

func TestSearchFindsCutEdge(t *testing.T) {
	found := false
	for seed := int64(0); seed < 200 && !found; seed++ {
		g := buildGraph(t, [2]uint64{0, 1}, [2]uint64{1, 2}, [2]uint64{2, 3})
		c := New(4, 6, 1, seed, g)
		for _, e := range [][2]uint64{{0, 1}, {1, 2}, {2, 3}} {
			c.AddEdgeToSet(Edge{e[0], e[1]})
		}
		require.NoError(t, c.MakeTreeEdge(Edge{0, 1}, 0))
		require.NoError(t, c.MakeTreeEdge(Edge{1, 2}, 0))

		if c.Search(0, 0) == canon(Edge{2, 3}) {
			found = true
		}
	}
	require.True(t, found, "expected Search to surface the only cut edge for some seed")
}

func TestDeleteEdgeRemovesFromTreeAndSketch(t *testing.T) {
	g := buildGraph(t, [2]uint64{0, 1})
	c := New(4, 2, 1, 3, g)
	c.AddEdgeToSet(Edge{0, 1})
	require.NoError(t, c.MakeTreeEdge(Edge{0, 1}, 0))

	c.DeleteEdge(Edge{0, 1})
	require.NotEqual(t, c.CompRepresentative(0, 0), c.CompRepresentative(1, 0))
}
