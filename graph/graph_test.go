package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddHasDeleteEdge(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge(1, 2))
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(2, 1))
	require.Equal(t, 1, g.EdgeCount())

	require.ErrorIs(t, g.AddEdge(2, 1), ErrEdgeExists)
	require.ErrorIs(t, g.AddEdge(5, 5), ErrSelfLoop)

	require.NoError(t, g.DeleteEdge(1, 2))
	require.False(t, g.HasEdge(1, 2))
	require.Equal(t, 0, g.EdgeCount())
	require.ErrorIs(t, g.DeleteEdge(1, 2), ErrEdgeNotFound)
}

func TestVertexCountGrowsMonotonically(t *testing.T) {
	g := New()
	require.Equal(t, uint64(0), g.VertexCount())

	require.NoError(t, g.AddEdge(3, 7))
	require.Equal(t, uint64(8), g.VertexCount())

	require.NoError(t, g.DeleteEdge(3, 7))
	require.Equal(t, uint64(8), g.VertexCount(), "vertex count must not shrink")

	g.EnsureVertex(10)
	require.Equal(t, uint64(11), g.VertexCount())
}

func TestNeighborsPreserveInsertionOrder(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.Equal(t, []uint64{3, 1, 2}, g.Neighbors(0))

	require.NoError(t, g.DeleteEdge(0, 1))
	require.Equal(t, []uint64{3, 2}, g.Neighbors(0))
}

func TestEdgesCanonicalOrder(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge(2, 1))
	require.NoError(t, g.AddEdge(3, 4))
	edges := g.Edges()
	require.Len(t, edges, 2)
	for _, e := range edges {
		require.LessOrEqual(t, e[0], e[1])
	}
}

func TestReadEdgeList(t *testing.T) {
	data := `# comment
% another comment
0 1
1 2
2 1
3 3
5 4
`
	g, err := ReadEdgeList(strings.NewReader(data))
	require.NoError(t, err)
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(3, 3))
	require.True(t, g.HasEdge(4, 5))
	require.Equal(t, 3, g.EdgeCount())
}

func TestReadEdgeListParseError(t *testing.T) {
	_, err := ReadEdgeList(strings.NewReader("x y\n"))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 1, perr.Line)
}
