// Package agent defines the interfaces satisfied by tabular agents and
// the configurations used to construct them
package agent

import (
	"errors"

	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/timestep"
)

// ErrInvalidParameter is returned, possibly wrapped, when an agent is
// constructed with out-of-domain hyperparameters
var ErrInvalidParameter = errors.New("invalid parameter")

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which updates action values from
// observed transitions, and a Policy which chooses actions in each
// state. Calls alternate strictly: SelectAction, an environment step,
// then Step with the observed transition.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how action
// values are updated.
type Learner interface {
	// Step performs a single update to the learner using the most
	// recently sampled transition
	Step(state, action int, reward float64, nextState int, done bool)
}

// TdErrorer is a Learner that can return the TD error of some
// transition without learning from it
type TdErrorer interface {
	Learner

	// TdError returns the TD error on a transition
	TdError(t timestep.Transition) float64
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions from enumerated states.
type Policy interface {
	SelectAction(state int) int
}
