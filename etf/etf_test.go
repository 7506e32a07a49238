package etf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCutSetInsertAndTour(t *testing.T) {
	c := NewCutSet()
	a := c.NewNode(0, 0)

	vw, wv := c.InsertETEdge(0, 1, a, nil)
	require.NotNil(t, vw)
	require.NotNil(t, wv)
	require.Equal(t, c.GetRoot(vw), c.GetRoot(wv))

	tour := c.GetTour(vw)
	require.Len(t, tour, 3)
}

func TestCutSetTrackingXORsUpward(t *testing.T) {
	c := NewCutSet()
	a := c.NewNode(0, 0)
	vw, wv := c.InsertETEdge(0, 1, a, nil)

	c.SetTrackingData(vw, Sketch{{0xAB}})
	c.SetTrackingData(wv, Sketch{{0xCD}})

	root := c.GetRoot(vw)
	agg := c.GetTrackingData(root)
	require.Equal(t, uint64(0xAB^0xCD), agg[0][0])
}

func TestCutSetDeleteSplitsForest(t *testing.T) {
	c := NewCutSet()
	a := c.NewNode(0, 0)
	vw, wv := c.InsertETEdge(0, 1, a, nil)

	c.DeleteETEdge(vw, wv)
	require.NotEqual(t, c.GetRoot(a), c.GetRoot(wv))
}

func TestHDTOnLevelTreeEdgeLookup(t *testing.T) {
	h := NewHDT()
	a := h.NewNode(0, 0)
	vw, wv := h.InsertETEdge(0, 1, a, nil)

	require.Nil(t, h.GetOnLevelTreeEdge(vw))
	h.SetOnLevel(vw, true)
	found := h.GetOnLevelTreeEdge(wv)
	require.NotNil(t, found)
	require.Equal(t, vw, found)
}

func TestHDTNonTreeEdgeLookup(t *testing.T) {
	h := NewHDT()
	a := h.NewNode(0, 0)
	vw, wv := h.InsertETEdge(0, 1, a, nil)

	require.Nil(t, h.GetNodeWithOnLevelNontreeEdge(vw))
	h.SetNonTreeCount(wv, 3)
	found := h.GetNodeWithOnLevelNontreeEdge(vw)
	require.NotNil(t, found)
	require.Equal(t, wv, found)
}

func TestHDTDeleteSplitsForest(t *testing.T) {
	h := NewHDT()
	a := h.NewNode(0, 0)
	vw, wv := h.InsertETEdge(0, 1, a, nil)

	h.DeleteETEdge(vw, wv)
	require.NotEqual(t, h.GetRoot(a), h.GetRoot(wv))
}
