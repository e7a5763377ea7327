package oioo

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxOccupancy is the hard ceiling a [Phase] places on its nominal occupancy.
//
// The ceiling bounds the nominal number, so the usable slot count derived
// from any phase can never exceed it either.
const MaxOccupancy = 1 << 20

// ErrInvalidConfiguration is returned by [New] and [Phase.Validate] when the
// supplied occupancy, distance or phase violates its constraints.
//
// Errors returned by this package wrap the sentinel, so callers can match it
// with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid configuration")

type phaseVariant uint8

const (
	phaseUnset phaseVariant = iota
	phaseOne
	phaseTwo
	phaseThree
	phaseFour
)

// Phase is a named capacity policy. Each variant carries a caller-supplied
// nominal occupancy and scales it down to the number of primary slots a
// [Container] may actually fill.
//
// The zero Phase is invalid; construct one with [PhaseOne], [PhaseTwo],
// [PhaseThree] or [PhaseFour].
type Phase struct {
	variant   phaseVariant
	occupancy int
	essential bool
}

// PhaseOne returns the most restrictive phase: a quarter of the occupancy is
// usable, and only when the container is marked essential.
//
// A non-essential phase-one container derives zero usable slots; it admits
// nobody to the floor and every arrival waits in the overflow queue.
func PhaseOne(occupancy int, essential bool) Phase {
	return Phase{variant: phaseOne, occupancy: occupancy, essential: essential}
}

// PhaseTwo returns the half-occupancy phase.
func PhaseTwo(occupancy int) Phase {
	return Phase{variant: phaseTwo, occupancy: occupancy}
}

// PhaseThree returns the three-quarter-occupancy phase.
func PhaseThree(occupancy int) Phase {
	return Phase{variant: phaseThree, occupancy: occupancy}
}

// PhaseFour returns the unrestricted phase: the full occupancy is usable.
func PhaseFour(occupancy int) Phase {
	return Phase{variant: phaseFour, occupancy: occupancy}
}

// Occupancy returns the nominal occupancy the phase was constructed with.
//
// This is the caller's number, before the phase fraction is applied; see
// [Phase.Slots] for the number of slots a container actually gets.
func (p Phase) Occupancy() int {
	return p.occupancy
}

// Essential reports whether a phase-one container was marked essential.
// Every other phase reports true.
func (p Phase) Essential() bool {
	if p.variant == phaseOne {
		return p.essential
	}

	return true
}

// Slots returns the number of usable primary slots under the phase: the
// nominal occupancy scaled by the phase fraction, rounded down.
//
// Slots may legitimately be zero: a non-essential phase-one container, or
// an occupancy smaller than the fraction's divisor. A container built from
// such a phase queues every arrival and never releases any of them.
func (p Phase) Slots() int {
	switch p.variant {
	case phaseOne:
		if !p.essential {
			return 0
		}

		return p.occupancy / 4
	case phaseTwo:
		return p.occupancy / 2
	case phaseThree:
		return p.occupancy * 3 / 4
	case phaseFour:
		return p.occupancy
	default:
		return 0
	}
}

// Validate checks the phase's constraints independently of any container:
// the variant must be set, and the occupancy must be a positive integer no
// greater than [MaxOccupancy].
//
// Returns an error wrapping [ErrInvalidConfiguration] on violation.
func (p Phase) Validate() error {
	if p.variant == phaseUnset {
		return errors.Wrap(ErrInvalidConfiguration, "phase is not set")
	}
	if p.occupancy <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "occupancy must be positive, got %d", p.occupancy)
	}
	if p.occupancy > MaxOccupancy {
		return errors.Wrapf(ErrInvalidConfiguration, "occupancy %d exceeds the ceiling %d", p.occupancy, MaxOccupancy)
	}

	return nil
}

// String returns the phase name with its parameters.
func (p Phase) String() string {
	switch p.variant {
	case phaseOne:
		if p.essential {
			return fmt.Sprintf("phase one (occupancy %d, essential)", p.occupancy)
		}

		return fmt.Sprintf("phase one (occupancy %d, non-essential)", p.occupancy)
	case phaseTwo:
		return fmt.Sprintf("phase two (occupancy %d)", p.occupancy)
	case phaseThree:
		return fmt.Sprintf("phase three (occupancy %d)", p.occupancy)
	case phaseFour:
		return fmt.Sprintf("phase four (occupancy %d)", p.occupancy)
	default:
		return "unset phase"
	}
}
