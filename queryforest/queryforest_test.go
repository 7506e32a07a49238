package queryforest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEdgeMergesComponents(t *testing.T) {
	qf := New(4)
	require.False(t, qf.Connected(0, 1))
	require.NoError(t, qf.AddEdge(0, 1))
	require.True(t, qf.Connected(0, 1))
	require.Equal(t, 2, qf.CompSize(0))
	require.Equal(t, 1, qf.CompSize(2))
}

func TestAddEdgeRejectsAlreadyConnected(t *testing.T) {
	qf := New(3)
	require.NoError(t, qf.AddEdge(0, 1))
	require.ErrorIs(t, qf.AddEdge(1, 0), ErrAlreadyConnected)
}

func TestDeleteEdgeSplitsComponent(t *testing.T) {
	qf := New(3)
	require.NoError(t, qf.AddEdge(0, 1))
	require.NoError(t, qf.AddEdge(1, 2))
	require.Equal(t, 3, qf.CompSize(0))

	require.NoError(t, qf.DeleteEdge(1, 0))
	require.False(t, qf.Connected(0, 1))
	require.True(t, qf.Connected(1, 2))
	require.Equal(t, 1, qf.CompSize(0))
	require.Equal(t, 2, qf.CompSize(1))
}

func TestDeleteEdgeRejectsMissing(t *testing.T) {
	qf := New(2)
	require.ErrorIs(t, qf.DeleteEdge(0, 1), ErrNotAnEdge)
}

func TestCompRepresentativeStableWithinComponent(t *testing.T) {
	qf := New(3)
	require.NoError(t, qf.AddEdge(0, 1))
	require.NoError(t, qf.AddEdge(1, 2))
	r := qf.CompRepresentative(0)
	require.Equal(t, r, qf.CompRepresentative(1))
	require.Equal(t, r, qf.CompRepresentative(2))
}
