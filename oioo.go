package oioo

import (
	"iter"
	"math/rand/v2"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Container is a bounded store with uniformly random retrieval ("One-In,
// One-Out").
//
// Items enter through [Container.OneIn] and leave through
// [Container.OneOut]. The number of items held at once is capped by the
// container's [Phase]; arrivals beyond that wait in an unbounded FIFO
// overflow queue and are promoted, oldest first, as slots free up.
//
// A Container is single-owner: its methods must not be called from multiple
// goroutines at once. Wrap it with [Guard] when that is needed.
type Container[T any] struct {
	phase    Phase
	distance int

	// slots is the primary store. It is kept dense: indexes [0, occupied)
	// hold items, everything above is free. Padding cells are accounted,
	// never allocated.
	slots    []T
	occupied int

	line waitline[T]

	rng *rand.Rand // nil means the process-wide generator

	// op counters (read by UpdateStats)
	inCalls  uint64
	outCalls uint64
	queued   uint64
	promoted uint64
	served   uint64
}

// New returns an empty container admitted under the given phase.
//
// The phase must validate (see [Phase.Validate]) and the options must be
// well formed; otherwise New returns an error wrapping
// [ErrInvalidConfiguration]. Construction is the only operation that can
// fail.
func New[T any](phase Phase, opts ...Option) (*Container[T], error) {
	if err := phase.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.distance < 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "distance must not be negative, got %d", cfg.distance)
	}

	return &Container[T]{
		phase:    phase,
		distance: cfg.distance,
		slots:    make([]T, phase.Slots()),
		rng:      cfg.rng,
	}, nil
}

// OneIn admits one item.
//
// If a primary slot is free the item takes the next one; otherwise it joins
// the tail of the overflow queue. OneIn never fails; the queue is bounded
// only by memory.
func (c *Container[T]) OneIn(item T) {
	atomic.AddUint64(&c.inCalls, 1)

	if c.occupied < len(c.slots) {
		c.slots[c.occupied] = item
		c.occupied++

		return
	}

	c.line.push(item)
	atomic.AddUint64(&c.queued, 1)
}

// OneOut removes and returns one item, chosen uniformly at random among the
// occupied primary slots. Items still in the overflow queue are not
// candidates.
//
// The second return is false when no slot is occupied; that is a normal
// state, not an error, and callers must check it. When the release leaves
// the overflow queue non-empty, the head of the queue is promoted into the
// freed slot before OneOut returns, so a backlogged container stays full
// until its queue drains.
func (c *Container[T]) OneOut() (T, bool) {
	atomic.AddUint64(&c.outCalls, 1)

	var zero T
	if c.occupied == 0 {
		return zero, false
	}

	i := c.randIntN(c.occupied)
	item := c.slots[i]
	c.occupied--
	c.slots[i] = c.slots[c.occupied]
	c.slots[c.occupied] = zero // release the reference

	if next, ok := c.line.pop(); ok {
		c.slots[c.occupied] = next
		c.occupied++
		atomic.AddUint64(&c.promoted, 1)
	}

	atomic.AddUint64(&c.served, 1)

	return item, true
}

// Len returns the number of occupied primary slots.
func (c *Container[T]) Len() int {
	return c.occupied
}

// Waiting returns the number of items in the overflow queue.
func (c *Container[T]) Waiting() int {
	return c.line.len()
}

// Cap returns the number of usable primary slots, as derived from the
// container's phase. See [Phase.Slots].
func (c *Container[T]) Cap() int {
	return len(c.slots)
}

// Distance returns the number of padding cells kept after each occupied
// slot.
func (c *Container[T]) Distance() int {
	return c.distance
}

// TotalSlots returns the container's total theoretical capacity in slot
// units: every usable primary slot plus its trailing padding cells.
//
// Padding is an accounting concept only; no padding cell is ever allocated
// or addressable.
func (c *Container[T]) TotalSlots() int {
	return len(c.slots) * (1 + c.distance)
}

// Phase returns the phase the container was constructed with.
func (c *Container[T]) Phase() Phase {
	return c.phase
}

// Reset removes every item from the container, floor and queue alike, and
// clears the op counters. The phase, distance and random source are kept, so
// the container is immediately reusable.
func (c *Container[T]) Reset() {
	clear(c.slots)
	c.occupied = 0
	c.line.reset()

	atomic.StoreUint64(&c.inCalls, 0)
	atomic.StoreUint64(&c.outCalls, 0)
	atomic.StoreUint64(&c.queued, 0)
	atomic.StoreUint64(&c.promoted, 0)
	atomic.StoreUint64(&c.served, 0)
}

// Present returns an iterator over the items currently occupying primary
// slots.
//
// The iteration order is slot order, which stops matching insertion order
// once retrievals begin; treat it as arbitrary.
func (c *Container[T]) Present() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range c.slots[:c.occupied] {
			if !yield(item) {
				return
			}
		}
	}
}

// Pending returns an iterator over the items waiting in the overflow queue,
// head of the line first.
func (c *Container[T]) Pending() iter.Seq[T] {
	return func(yield func(T) bool) {
		c.line.rangeItems(yield)
	}
}

// randIntN returns a uniform value in [0, n) from the container's generator,
// falling back to the process-wide one.
func (c *Container[T]) randIntN(n int) int {
	if c.rng != nil {
		return c.rng.IntN(n)
	}

	return rand.IntN(n)
}
