package oioo

import "math/rand/v2"

// DefaultDistance is the number of padding cells kept after each occupied
// slot when [WithDistance] is not supplied.
const DefaultDistance = 6

type config struct {
	distance int
	rng      *rand.Rand
}

func defaultConfig() config {
	return config{distance: DefaultDistance}
}

// Option configures a container at construction time.
type Option func(*config)

// WithDistance sets the number of padding cells that trail each occupied
// primary slot.
//
// Padding only enters the capacity accounting (see [Container.TotalSlots]);
// the cells are never allocated. The distance must not be negative. Zero
// disables spacing entirely.
func WithDistance(cells int) Option {
	return func(cfg *config) {
		cfg.distance = cells
	}
}

// WithRand sets the pseudorandom generator used to pick the slot released by
// [Container.OneOut]. Passing a seeded generator makes retrieval order
// reproducible, which tests rely on.
//
// A nil generator restores the default, the process-wide math/rand/v2
// generator. An injected generator is not synchronized by the container; it
// is only ever used by the goroutine calling OneOut (or under the [Guarded]
// lock).
func WithRand(r *rand.Rand) Option {
	return func(cfg *config) {
		cfg.rng = r
	}
}
