// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended
type EndType int

const (
	Unset EndType = iota
	TerminalStateReached
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "Unset"
	}
}

// TimeStep packages together a single timestep in an environment with
// discrete, enumerated observations
type TimeStep struct {
	StepType
	Reward      float64
	Discount    float64
	Observation int
	Number      int
	endType     EndType
}

// New returns a new TimeStep
func New(t StepType, r, d float64, o int, n int) TimeStep {
	return TimeStep{t, r, d, o, n, Unset}
}

// SetEnd records the reason the episode ended on this timestep
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
}

// EndType returns the reason the episode ended, which is Unset for
// any timestep that is not the last
func (t *TimeStep) EndType() EndType {
	return t.endType
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Observation: %v  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.Observation,
		t.Number)
}

// Transition is a single (s, a, r, s') tuple observed by an agent
type Transition struct {
	State     int
	Action    int
	Reward    float64
	NextState int
	Done      bool
}

// NewTransition creates a Transition from two sequential timesteps and
// the action taken between them
func NewTransition(step TimeStep, action int, next TimeStep) Transition {
	return Transition{
		State:     step.Observation,
		Action:    action,
		Reward:    next.Reward,
		NextState: next.Observation,
		Done:      next.Last(),
	}
}
