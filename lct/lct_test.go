package lct

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// star builds a star-shaped tree: leaves 1..k all linked directly to root 0.
func star(t *testing.T, k uint64) *Tree {
	t.Helper()
	lt := New(k + 1)
	for v := uint64(1); v <= k; v++ {
		require.NoError(t, lt.Link(v, 0, int64(v)))
	}
	return lt
}

func TestLinkGetRootGetParent(t *testing.T) {
	lt := New(5)
	require.Equal(t, uint64(0), lt.GetRoot(0))
	require.Equal(t, uint64(1), lt.GetRoot(1))

	require.NoError(t, lt.Link(1, 0, 10))
	require.Equal(t, uint64(0), lt.GetRoot(1))
	require.Equal(t, uint64(0), lt.GetParent(1))
	require.Equal(t, None, lt.GetParent(0))
	require.Equal(t, int64(10), lt.GetCost(1))
}

func TestLinkRejectsSameTree(t *testing.T) {
	lt := New(3)
	require.NoError(t, lt.Link(1, 0, 1))
	require.ErrorIs(t, lt.Link(0, 1, 1), ErrSameTree)
}

func TestChainLinkAndGetRoot(t *testing.T) {
	lt := New(5)
	require.NoError(t, lt.Link(1, 0, 1))
	require.NoError(t, lt.Link(2, 1, 2))
	require.NoError(t, lt.Link(3, 2, 3))
	require.NoError(t, lt.Link(4, 3, 4))

	for v := uint64(0); v < 5; v++ {
		require.Equal(t, uint64(0), lt.GetRoot(v))
	}
	require.Equal(t, uint64(3), lt.GetParent(4))
	require.Equal(t, uint64(2), lt.GetParent(3))
	require.Equal(t, int64(4), lt.GetCost(4))
}

func TestCutSplitsTree(t *testing.T) {
	lt := New(5)
	require.NoError(t, lt.Link(1, 0, 1))
	require.NoError(t, lt.Link(2, 1, 2))
	require.NoError(t, lt.Link(3, 2, 3))

	cost, err := lt.Cut(2)
	require.NoError(t, err)
	require.Equal(t, int64(2), cost)

	require.Equal(t, uint64(0), lt.GetRoot(1))
	require.Equal(t, uint64(2), lt.GetRoot(2))
	require.Equal(t, uint64(2), lt.GetRoot(3))
	require.Equal(t, None, lt.GetParent(2))
}

func TestCutRejectsRoot(t *testing.T) {
	lt := New(2)
	_, err := lt.Cut(0)
	require.ErrorIs(t, err, ErrIsRoot)
}

func TestCutEdgeEitherDirection(t *testing.T) {
	lt := New(4)
	require.NoError(t, lt.Link(1, 0, 5))
	require.NoError(t, lt.Link(2, 1, 6))

	cost, err := lt.CutEdge(2, 1)
	require.NoError(t, err)
	require.Equal(t, int64(6), cost)
	require.NotEqual(t, lt.GetRoot(1), lt.GetRoot(2))

	require.NoError(t, lt.Link(2, 1, 7))
	cost2, err2 := lt.CutEdge(1, 2)
	require.NoError(t, err2)
	require.Equal(t, int64(7), cost2)
}

func TestCutEdgeRejectsNonAdjacent(t *testing.T) {
	lt := New(4)
	require.NoError(t, lt.Link(1, 0, 1))
	require.NoError(t, lt.Link(2, 1, 1))
	require.NoError(t, lt.Link(3, 2, 1))

	_, err := lt.CutEdge(0, 3)
	require.ErrorIs(t, err, ErrNotAdjacentEdge)
}

func TestCutEdgeRejectsDisconnected(t *testing.T) {
	lt := New(4)
	_, err := lt.CutEdge(0, 1)
	require.ErrorIs(t, err, ErrNotConnected)
}

func TestRerootPreservesConnectivity(t *testing.T) {
	lt := New(4)
	require.NoError(t, lt.Link(1, 0, 1))
	require.NoError(t, lt.Link(2, 1, 1))
	require.NoError(t, lt.Link(3, 2, 1))

	lt.Reroot(3)
	require.Equal(t, uint64(3), lt.GetRoot(0))
	require.Equal(t, uint64(3), lt.GetRoot(1))
	require.Equal(t, uint64(2), lt.GetParent(3))
	require.Equal(t, uint64(1), lt.GetParent(2))
	require.Equal(t, uint64(0), lt.GetParent(1))
	require.Equal(t, None, lt.GetParent(0))
}

func TestMinMaxEdgeOnPath(t *testing.T) {
	lt := New(4)
	require.NoError(t, lt.Link(1, 0, 10))
	require.NoError(t, lt.Link(2, 1, 1))
	require.NoError(t, lt.Link(3, 2, 20))

	min, ok := lt.GetMinEdge(3)
	require.True(t, ok)
	require.Equal(t, int64(1), min.Cost)

	max, ok2 := lt.GetMaxEdge(3)
	require.True(t, ok2)
	require.Equal(t, int64(20), max.Cost)

	_, ok3 := lt.GetMinEdge(0)
	require.False(t, ok3)
}

func TestUpdateShiftsPathCosts(t *testing.T) {
	lt := New(3)
	require.NoError(t, lt.Link(1, 0, 5))
	require.NoError(t, lt.Link(2, 1, 5))

	lt.Update(2, 100)
	max, ok := lt.GetMaxEdge(2)
	require.True(t, ok)
	require.GreaterOrEqual(t, max.Cost, int64(105))
}

func TestStarTopologyManyLinks(t *testing.T) {
	lt := star(t, 50)
	for v := uint64(1); v <= 50; v++ {
		require.Equal(t, uint64(0), lt.GetRoot(v))
		require.Equal(t, uint64(0), lt.GetParent(v))
		require.Equal(t, int64(v), lt.GetCost(v))
	}
}

func TestLinkCutRepeatedCycles(t *testing.T) {
	lt := New(6)
	require.NoError(t, lt.Link(1, 0, 1))
	require.NoError(t, lt.Link(2, 0, 1))
	require.NoError(t, lt.Link(3, 1, 1))
	require.NoError(t, lt.Link(4, 2, 1))

	for i := 0; i < 20; i++ {
		_, err := lt.Cut(3)
		require.NoError(t, err)
		require.NoError(t, lt.Link(3, 4, 2))
		require.Equal(t, lt.GetRoot(4), lt.GetRoot(3))

		_, err2 := lt.Cut(3)
		require.NoError(t, err2)
		require.NoError(t, lt.Link(3, 1, 1))
	}
	require.Equal(t, uint64(0), lt.GetRoot(3))
}
