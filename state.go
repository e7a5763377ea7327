package oioo

// State classifies a container's occupancy at a point in time.
type State uint8

const (
	// StateEmpty is a container with no occupied slots and an empty
	// overflow queue.
	StateEmpty State = iota

	// StatePartial is a container with occupied slots and room for more,
	// and an empty overflow queue.
	StatePartial

	// StateFull is a container with every usable slot occupied and an
	// empty overflow queue.
	StateFull

	// StateBacklogged is a container with every usable slot occupied and
	// items waiting in the overflow queue.
	StateBacklogged
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartial:
		return "partial"
	case StateFull:
		return "full"
	case StateBacklogged:
		return "backlogged"
	default:
		return "unknown"
	}
}

// State returns the container's current classification.
//
// The overflow queue can only be non-empty while every usable slot is taken,
// so a non-empty queue always classifies as [StateBacklogged], including the
// zero-slot case where the "full" floor has no slots at all.
func (c *Container[T]) State() State {
	switch {
	case c.line.len() > 0:
		return StateBacklogged
	case c.occupied == 0:
		return StateEmpty
	case c.occupied < len(c.slots):
		return StatePartial
	default:
		return StateFull
	}
}
