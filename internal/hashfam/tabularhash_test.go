package hashfam

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministic(t *testing.T) {
	h1 := New(64, 42, 2)
	h2 := New(64, 42, 2)
	for v := uint64(0); v < 64; v++ {
		for w := uint64(0); w < 64; w++ {
			require.Equal(t, h1.Hash(v, w), h2.Hash(v, w))
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	h1 := New(256, 1, 2)
	h2 := New(256, 2, 2)
	diff := 0
	for v := uint64(0); v < 256; v++ {
		if h1.Hash(v, v+1) != h2.Hash(v, v+1) {
			diff++
		}
	}
	require.Greater(t, diff, 0)
}

func TestHashInRange(t *testing.T) {
	h := New(1000, 7, 2)
	bound := uint64(1) << uint(h.OutputBits())
	for v := uint64(0); v < 200; v++ {
		require.Less(t, h.Hash(v, v+1), bound)
	}
}
