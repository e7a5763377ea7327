package oioo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaitlineOrder(t *testing.T) {
	requireT := require.New(t)

	var w waitline[int]
	requireT.Equal(0, w.len())

	for i := 0; i < 10; i++ {
		w.push(i)
	}
	requireT.Equal(10, w.len())

	for i := 0; i < 10; i++ {
		item, ok := w.pop()
		requireT.True(ok)
		requireT.Equal(i, item)
	}

	requireT.Equal(0, w.len())
	_, ok := w.pop()
	requireT.False(ok)
}

func TestWaitlineInterleaved(t *testing.T) {
	requireT := require.New(t)

	var w waitline[int]
	next := 0
	expect := 0

	// Push and pop in uneven bursts; FIFO order must hold across the
	// drained-line reset and the compaction shift.
	for round := 0; round < 50; round++ {
		for i := 0; i < 3+round%5; i++ {
			w.push(next)
			next++
		}
		for i := 0; i < 2+round%4 && w.len() > 0; i++ {
			item, ok := w.pop()
			requireT.True(ok)
			requireT.Equal(expect, item)
			expect++
		}
	}

	for w.len() > 0 {
		item, ok := w.pop()
		requireT.True(ok)
		requireT.Equal(expect, item)
		expect++
	}
	requireT.Equal(next, expect)
}

func TestWaitlineCompaction(t *testing.T) {
	requireT := require.New(t)

	var w waitline[int]
	for i := 0; i < 4*compactAfter; i++ {
		w.push(i)
	}

	// Pop past the compaction threshold; the head index must be rewound
	// without disturbing the remaining order.
	for i := 0; i < 3*compactAfter; i++ {
		item, ok := w.pop()
		requireT.True(ok)
		requireT.Equal(i, item)
	}
	requireT.Less(w.head, 3*compactAfter)
	requireT.Equal(compactAfter, w.len())

	for i := 3 * compactAfter; i < 4*compactAfter; i++ {
		item, ok := w.pop()
		requireT.True(ok)
		requireT.Equal(i, item)
	}
	requireT.Equal(0, w.len())
}

func TestWaitlineReset(t *testing.T) {
	requireT := require.New(t)

	var w waitline[string]
	w.push("a")
	w.push("b")
	w.reset()

	requireT.Equal(0, w.len())
	_, ok := w.pop()
	requireT.False(ok)

	w.push("c")
	item, ok := w.pop()
	requireT.True(ok)
	requireT.Equal("c", item)
}

func TestWaitlineRangeItems(t *testing.T) {
	requireT := require.New(t)

	var w waitline[int]
	for i := 0; i < 5; i++ {
		w.push(i)
	}
	_, _ = w.pop()

	var seen []int
	requireT.True(w.rangeItems(func(item int) bool {
		seen = append(seen, item)
		return true
	}))
	requireT.Equal([]int{1, 2, 3, 4}, seen)

	// Early exit.
	seen = seen[:0]
	requireT.False(w.rangeItems(func(item int) bool {
		seen = append(seen, item)
		return len(seen) < 2
	}))
	requireT.Equal([]int{1, 2}, seen)
}
