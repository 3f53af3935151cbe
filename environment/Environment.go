// Package environment outlines the interfaces and sturcts needed to
// implement discrete environments that tabular agents can learn in
package environment

import (
	ts "github.com/c-schrade/Udacity-Taxi-v2-Miniproject/timestep"
)

// Ender determines when an episode should end
type Ender interface {
	End(*ts.TimeStep) bool
}

// Environment implements an environment with enumerated states and
// actions. States are numbered [0, ObservationSpec().Size()) and actions
// are numbered [0, ActionSpec().Size()).
type Environment interface {
	// Reset resets the environment between episodes and returns the
	// first timestep of the new episode
	Reset() (ts.TimeStep, error)

	// Step takes a single environmental step, returning the next
	// timestep and whether it is the last of the episode
	Step(action int) (ts.TimeStep, bool, error)

	// CurrentTimeStep returns the last timestep the environment
	// produced
	CurrentTimeStep() ts.TimeStep

	ObservationSpec() Spec
	ActionSpec() Spec
	DiscountSpec() Spec

	// Close performs resource cleanup after the environment is no
	// longer needed
	Close() error
}
