package minheap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariant fails t when any live entry is smaller than its parent or
// when the bookkeeping between length and the backing slice drifts.
func checkInvariant(t *testing.T, h *MinHeap) {
	t.Helper()
	require.Equal(t, h.length+1, len(h.data), "len(data) must be length+1 (sentinel)")
	for i := 2; i <= h.length; i++ {
		p := parent(i)
		require.LessOrEqualf(t, h.data[p].Dist, h.data[i].Dist,
			"heap order broken: data[%d]=%v > data[%d]=%v", p, h.data[p], i, h.data[i])
	}
}

// TestIndexArithmetic pins parent/child formulas; parent must truncate, so
// both children of a node map back to it (round-to-nearest would send 3 to 2).
func TestIndexArithmetic(t *testing.T) {
	for i := 1; i <= 1024; i++ {
		require.Equal(t, i, parent(left(i)), "parent(left(%d))", i)
		require.Equal(t, i, parent(right(i)), "parent(right(%d))", i)
	}
	require.Equal(t, 1, parent(3))
	require.Equal(t, 2, parent(5))
	require.Equal(t, 3, parent(7))
}

// TestInvariant_RandomOperations applies long random insert/extract
// sequences and re-checks the heap order after every step.
func TestInvariant_RandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		h := New()
		var live int
		for step := 0; step < 400; step++ {
			if live == 0 || r.Intn(3) != 0 {
				// Small value range forces many duplicate distances.
				h.Insert(r.Intn(20), float64(r.Intn(50)))
				live++
			} else {
				before, _ := h.Peek()
				got, ok := h.ExtractMin()
				require.True(t, ok)
				require.Equal(t, before, got, "ExtractMin must return what Peek saw")
				live--
			}
			require.Equal(t, live, h.Len())
			checkInvariant(t, h)
		}
	}
}

// TestSiftDown_StopsEarly checks that a root already smaller than both
// children is left in place.
func TestSiftDown_StopsEarly(t *testing.T) {
	h := New()
	h.data = append(h.data, Entry{0, 1}, Entry{1, 5}, Entry{2, 6})
	h.length = 3

	h.siftDown(root)

	require.Equal(t, []Entry{{}, {0, 1}, {1, 5}, {2, 6}}, h.data)
}

// TestSiftDown_LeftOnly covers a node with a left child but no right child.
func TestSiftDown_LeftOnly(t *testing.T) {
	h := New()
	h.data = append(h.data, Entry{0, 9}, Entry{1, 2})
	h.length = 2

	h.siftDown(root)

	require.Equal(t, []Entry{{}, {1, 2}, {0, 9}}, h.data)
	checkInvariant(t, h)
}

// TestClear_KeepsSentinel verifies that a cleared heap is reusable.
func TestClear_KeepsSentinel(t *testing.T) {
	h := NewWithCapacity(8)
	for i := 0; i < 8; i++ {
		h.Insert(i, float64(8-i))
	}
	h.Clear()
	checkInvariant(t, h)

	h.Insert(3, 1)
	checkInvariant(t, h)
	require.Equal(t, 1, h.Len())
}
