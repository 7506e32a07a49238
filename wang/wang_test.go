package wang

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEdgeConnectsBaseMode(t *testing.T) {
	w := New(6, 1.0, 1, 2, Base)
	require.False(t, w.Query(0, 1))
	require.NoError(t, w.AddEdge(0, 1))
	require.True(t, w.Query(0, 1))
	require.Equal(t, 5, w.NumberOfComponents())
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	w := New(3, 1.0, 1, 2, Base)
	require.ErrorIs(t, w.AddEdge(0, 0), ErrSelfLoop)
}

func TestDeleteNonTreeEdgeKeepsComponentsIntact(t *testing.T) {
	w := New(4, 1.0, 2, 2, Base)
	require.NoError(t, w.AddEdge(0, 1))
	require.NoError(t, w.AddEdge(1, 2))
	require.NoError(t, w.AddEdge(0, 2))

	require.NoError(t, w.DeleteEdge(0, 2))
	require.True(t, w.Query(0, 1))
	require.True(t, w.Query(1, 2))
	require.Equal(t, 2, w.NumberOfComponents())
}

func TestPHeuAndLvlHeuConstructWithoutPanic(t *testing.T) {
	require.NotPanics(t, func() {
		New(10, 2.0, 3, 2, PHeu)
		New(10, 2.0, 3, 2, LvlHeu)
	})
}

func TestDeleteTreeEdgeEventuallyFindsReplacementAcrossSeeds(t *testing.T) {
	found := false
	for seed := int64(0); seed < 50 && !found; seed++ {
		w := New(4, 1.0, seed, 4, Base)
		require.NoError(t, w.AddEdge(0, 1))
		require.NoError(t, w.AddEdge(1, 2))
		require.NoError(t, w.AddEdge(2, 3))
		require.NoError(t, w.AddEdge(0, 3))

		require.NoError(t, w.DeleteEdge(0, 1))
		if w.Query(0, 1) {
			found = true
		}
	}
	require.True(t, found, "expected refreshTrees to find a replacement edge for some seed")
}
