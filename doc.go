// Package oioo provides a generic, bounded in-memory container with
// uniformly random retrieval and FIFO overflow.
//
// OIOO ("One-In, One-Out") is the door policy of a capacity-restricted
// venue: a limited number of spaced-out positions on the floor, a line
// outside for everyone else, and departures in no predictable order. It is
// neither a queue nor a stack: retrieval order is independent of insertion
// order.
//
// # Architecture
//
// A [Container] owns a dense slice of primary slots sized to the usable
// occupancy, plus an unbounded FIFO overflow queue:
//
//   - OneIn fills the next free slot, or appends to the queue when the
//     floor is full
//   - OneOut releases a uniformly random occupied slot, then promotes the
//     head of the queue into the freed slot
//
// Release is O(1): the released slot is backfilled from the dense prefix's
// end, so no hole is ever left behind.
//
// # Phases
//
// A [Phase] is a capacity policy. Each variant carries a caller-supplied
// nominal occupancy and derives the usable slot count from it: [PhaseOne]
// admits a quarter (essential containers only), [PhaseTwo] half,
// [PhaseThree] three quarters and [PhaseFour] all of it. Fractions round
// down; a derived count of zero is legal and means every arrival waits in
// the queue.
//
// # Spacing
//
// Every occupied slot is followed by a fixed number of padding cells
// ([DefaultDistance] unless [WithDistance] says otherwise). Padding exists
// only in the capacity accounting, where [Container.TotalSlots] reports
// usable slots times (1 + distance); the cells are never allocated or
// addressable.
//
// # Overflow
//
// The overflow queue is strictly FIFO and unbounded. A vacated slot is
// refilled from the head of the queue immediately, one promotion per
// release, so a backlogged container stays full until the queue drains.
// A container whose phase derives zero slots never vacates anything: its
// queue only grows.
//
// # Randomness
//
// OneOut picks among occupied slots with the process-wide math/rand/v2
// generator by default. Pass a seeded generator via [WithRand] to make
// retrieval reproducible.
//
// # Thread Safety
//
// A [Container] is single-owner; no internal synchronization exists and
// none of its methods may be called concurrently. [Guarded] wraps a
// container behind one exclusive lock per call for multi-goroutine use.
package oioo
