package oioo

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOneOutUniform(t *testing.T) {
	requireT := require.New(t)

	const (
		items = 8
		draws = 8000
	)

	c, err := New[int](PhaseFour(items), WithRand(rand.New(rand.NewPCG(29, 31))))
	requireT.NoError(err)

	for i := 0; i < items; i++ {
		c.OneIn(i)
	}

	// Draw and reinsert so every draw picks from the same eight items.
	counts := make(map[int]int, items)
	for i := 0; i < draws; i++ {
		v, ok := c.OneOut()
		requireT.True(ok)
		counts[v]++
		c.OneIn(v)
	}

	// Expected 1000 per item. The bound is ~8 standard deviations wide,
	// loose enough to never flake and tight enough to catch slot bias.
	const tolerance = 250
	requireT.Len(counts, items)
	for v, n := range counts {
		requireT.InDelta(draws/items, n, tolerance, "item %d drawn %d times", v, n)
	}
}

func TestOneOutSequencesDiverge(t *testing.T) {
	requireT := require.New(t)

	drain := func(seed uint64) []int {
		c, err := New[int](PhaseFour(8), WithRand(rand.New(rand.NewPCG(seed, seed))))
		requireT.NoError(err)
		for i := 0; i < 8; i++ {
			c.OneIn(i)
		}
		out := make([]int, 0, 8)
		for {
			v, ok := c.OneOut()
			if !ok {
				break
			}
			out = append(out, v)
		}
		return out
	}

	// Two independently seeded containers may emit the same permutation
	// by chance, so retry with fresh seeds before declaring failure.
	diverged := false
	for attempt := uint64(0); attempt < 50 && !diverged; attempt++ {
		a := drain(2*attempt + 1)
		b := drain(2*attempt + 2)
		requireT.Len(b, len(a))
		for i := range a {
			if a[i] != b[i] {
				diverged = true
				break
			}
		}
	}
	requireT.True(diverged)
}

func TestWithRandReproducible(t *testing.T) {
	requireT := require.New(t)

	drain := func() []int {
		c, err := New[int](PhaseFour(8), WithRand(rand.New(rand.NewPCG(42, 42))))
		requireT.NoError(err)
		// Four of the twelve go through the queue, so promotion order
		// is exercised too.
		for i := 0; i < 12; i++ {
			c.OneIn(i)
		}
		out := make([]int, 0, 12)
		for {
			v, ok := c.OneOut()
			if !ok {
				break
			}
			out = append(out, v)
		}
		return out
	}

	requireT.Equal(drain(), drain())
}
