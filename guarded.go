package oioo

import "sync"

// Guarded wraps a [Container] behind a single exclusive lock held for the
// whole of each call.
//
// The core container is single-owner; Guarded is the coarse-grained
// alternative for the cases where several goroutines must share one
// container. There is no finer locking to be had: random release reads and
// mutates the whole occupancy state, so per-call mutual exclusion is the
// contract.
type Guarded[T any] struct {
	mu sync.Mutex
	c  *Container[T]
}

// NewGuarded returns a guarded container admitted under the given phase.
// It accepts the same phases and options as [New].
func NewGuarded[T any](phase Phase, opts ...Option) (*Guarded[T], error) {
	c, err := New[T](phase, opts...)
	if err != nil {
		return nil, err
	}

	return &Guarded[T]{c: c}, nil
}

// Guard wraps an existing container.
//
// Ownership moves to the wrapper: calling the container directly afterwards
// bypasses the lock.
func Guard[T any](c *Container[T]) *Guarded[T] {
	return &Guarded[T]{c: c}
}

// OneIn admits one item. See [Container.OneIn].
func (g *Guarded[T]) OneIn(item T) {
	g.mu.Lock()
	g.c.OneIn(item)
	g.mu.Unlock()
}

// OneOut removes and returns one random item. See [Container.OneOut].
func (g *Guarded[T]) OneOut() (T, bool) {
	g.mu.Lock()
	item, ok := g.c.OneOut()
	g.mu.Unlock()

	return item, ok
}

// Len returns the number of occupied primary slots.
func (g *Guarded[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.c.Len()
}

// Waiting returns the number of items in the overflow queue.
func (g *Guarded[T]) Waiting() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.c.Waiting()
}

// State returns the container's current classification.
func (g *Guarded[T]) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.c.State()
}

// Reset removes every item and clears the op counters. See
// [Container.Reset].
func (g *Guarded[T]) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.c.Reset()
}

// UpdateStats adds container stats to s. See [Container.UpdateStats].
func (g *Guarded[T]) UpdateStats(s *Stats) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.c.UpdateStats(s)
}
