package oioo

import "sync/atomic"

// Stats represents container stats.
//
// Use [Container.UpdateStats] for obtaining fresh stats from the container.
type Stats struct {
	// InCalls is the number of OneIn calls.
	InCalls uint64

	// OutCalls is the number of OneOut calls.
	OutCalls uint64

	// Admitted is the number of items that went straight to a primary slot.
	Admitted uint64

	// Queued is the number of items that had to join the overflow queue.
	Queued uint64

	// Promoted is the number of items moved from the queue into a freed
	// slot.
	Promoted uint64

	// Served is the number of items returned by OneOut.
	Served uint64

	// Misses is the number of OneOut calls that found the container empty.
	Misses uint64

	// Occupied is the current number of occupied primary slots.
	Occupied uint64

	// Waiting is the current length of the overflow queue.
	Waiting uint64

	// Slots is the number of usable primary slots.
	Slots uint64

	// TotalSlots is the total theoretical capacity including padding cells.
	TotalSlots uint64
}

// UpdateStats adds container stats to s.
//
// Call [Stats.Reset] before calling UpdateStats if s is re-used.
func (c *Container[T]) UpdateStats(s *Stats) {
	s.InCalls += atomic.LoadUint64(&c.inCalls)
	s.OutCalls += atomic.LoadUint64(&c.outCalls)
	s.Queued += atomic.LoadUint64(&c.queued)
	s.Promoted += atomic.LoadUint64(&c.promoted)
	s.Served += atomic.LoadUint64(&c.served)

	s.Admitted = s.InCalls - s.Queued
	s.Misses = s.OutCalls - s.Served
	s.Occupied = uint64(c.occupied)
	s.Waiting = uint64(c.line.len())
	s.Slots = uint64(len(c.slots))
	s.TotalSlots = uint64(c.TotalSlots())
}

// Reset resets s, so it may be re-used again in [Container.UpdateStats].
func (s *Stats) Reset() {
	*s = Stats{}
}
