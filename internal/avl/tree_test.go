package avl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

func TestInsertContainsFindVal(t *testing.T) {
	tr := New[int, string](intLess)
	require.True(t, tr.Empty())

	require.NoError(t, tr.Insert(5, "five"))
	require.NoError(t, tr.Insert(2, "two"))
	require.NoError(t, tr.Insert(8, "eight"))

	require.True(t, tr.Contains(5))
	require.False(t, tr.Contains(42))

	v, err := tr.FindVal(2)
	require.NoError(t, err)
	require.Equal(t, "two", v)

	require.ErrorIs(t, tr.Insert(5, "dup"), ErrDuplicateKey)
}

func TestChangeValAndRemove(t *testing.T) {
	tr := New[int, int](intLess)
	for i := 0; i < 20; i++ {
		require.NoError(t, tr.Insert(i, i*i))
	}

	old, err := tr.ChangeVal(7, -1)
	require.NoError(t, err)
	require.Equal(t, 49, old)

	v, err := tr.FindVal(7)
	require.NoError(t, err)
	require.Equal(t, -1, v)

	for i := 0; i < 20; i++ {
		got, err := tr.Remove(i)
		require.NoError(t, err)
		if i == 7 {
			require.Equal(t, -1, got)
		} else {
			require.Equal(t, i*i, got)
		}
	}
	require.True(t, tr.Empty())

	_, err = tr.Remove(3)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSortedOrderAndBalance(t *testing.T) {
	tr := New[int, struct{}](intLess)
	n := 1000
	for i := 0; i < n; i++ {
		// insert in a jumbled order to exercise rotations on both sides
		k := (i * 7919) % n
		_ = tr.Insert(k, struct{}{})
	}
	sorted := tr.Sorted()
	require.Len(t, sorted, n)
	for i := 1; i < len(sorted); i++ {
		require.Less(t, sorted[i-1], sorted[i])
	}

	// AVL balance factor bound: height <= ~1.44*log2(size+2)
	h := height(tr.root)
	require.LessOrEqual(t, h, 2*bitLen(uint(tr.Size()+2)))
}

func bitLen(x uint) int {
	n := 0
	for x > 0 {
		n++
		x >>= 1
	}
	return n
}

func TestAnyEntryAndAccessors(t *testing.T) {
	tr := New[int, int](intLess)
	require.NoError(t, tr.Insert(1, 100))
	k, v := tr.AnyEntry()
	require.Equal(t, 1, k)
	require.Equal(t, 100, v)

	_, _, ok := New[int, int](intLess).Min()
	require.False(t, ok)

	require.NoError(t, tr.Insert(2, 200))
	minK, minV, ok := tr.Min()
	require.True(t, ok)
	require.Equal(t, 1, minK)
	require.Equal(t, 100, minV)

	maxK, maxV, ok := tr.Max()
	require.True(t, ok)
	require.Equal(t, 2, maxK)
	require.Equal(t, 200, maxV)
}
