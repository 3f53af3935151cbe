// Package gym provides access to OpenAI Gym's discrete environments,
// such as Taxi-v3 and FrozenLake-v1, for tabular agents.
//
// Only environments whose observation and action spaces are both
// Discrete can be used, since observations are exposed as enumerated
// states. Episode cutoffs built into the Gym environment still apply;
// an additional environment.Ender may be supplied to end episodes
// earlier.
//
// This is made possible through the Go bindings for OpenAI Gym,
// found at https://github.com/samuelfneumann/GoGym.
package gym

import (
	"fmt"

	env "github.com/c-schrade/Udacity-Taxi-v2-Miniproject/environment"
	ts "github.com/c-schrade/Udacity-Taxi-v2-Miniproject/timestep"
	"github.com/samuelfneumann/gogym"
	"gonum.org/v1/gonum/mat"
)

// Taxi is the name of the Gym transport task with 500 states and 6
// actions
const Taxi = "Taxi-v3"

// GymEnv implements access to a discrete OpenAI Gym environment using
// GoGym
type GymEnv struct {
	gogym.Environment
	ender env.Ender

	observations env.Spec
	actions      env.Spec
	currentStep  ts.TimeStep
	discount     float64
}

// New returns a new GymEnv with the given name, which must be a legal
// name from the OpenAI Gym suite with discrete observations and
// actions. If ender is nil, only the Gym environment ends episodes.
func New(name string, discount float64, ender env.Ender,
	seed uint64) (*GymEnv, ts.TimeStep, error) {
	goGymEnv, err := gogym.Make(name)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not create "+
			"environment: %v", err)
	}

	obsSpace, ok := goGymEnv.ObservationSpace().(*gogym.DiscreteSpace)
	if !ok {
		goGymEnv.Close()
		return nil, ts.TimeStep{}, fmt.Errorf("new: package gym supports " +
			"only GoGym's DiscreteSpace observations")
	}
	actSpace, ok := goGymEnv.ActionSpace().(*gogym.DiscreteSpace)
	if !ok {
		goGymEnv.Close()
		return nil, ts.TimeStep{}, fmt.Errorf("new: package gym supports " +
			"only GoGym's DiscreteSpace actions")
	}
	observations := discreteSpec(obsSpace, env.Observation)
	actions := discreteSpec(actSpace, env.Action)

	goGymEnv.Seed(int(seed))

	gymEnv := &GymEnv{
		Environment:  goGymEnv,
		ender:        ender,
		observations: observations,
		actions:      actions,
		discount:     discount,
	}

	t, err := gymEnv.Reset()
	if err != nil {
		goGymEnv.Close()
		return nil, ts.TimeStep{}, err
	}

	return gymEnv, t, nil
}

// discreteSpec converts a GoGym discrete space into an environment.Spec.
// GoGym reports a lower bound of 1 for every discrete space, although
// Gym enumerates Discrete(n) as 0, ..., n-1, so only the upper bound
// is used.
func discreteSpec(space *gogym.DiscreteSpace, t env.SpecType) env.Spec {
	return env.NewDiscreteSpecTo(t, space.High()[0].AtVec(0))
}

// Step takes a single environmental step
func (g *GymEnv) Step(a int) (ts.TimeStep, bool, error) {
	if a < 0 || a >= g.actions.Size() {
		return ts.TimeStep{}, true, fmt.Errorf("step: action %v out of "+
			"range [0, %v)", a, g.actions.Size())
	}

	action := mat.NewVecDense(1, []float64{float64(a)})
	obs, reward, done, err := g.Environment.Step(action)
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: could not step "+
			"GoGym environment: %v", err)
	}

	t := ts.New(ts.Mid, reward, g.discount, int(obs.AtVec(0)),
		g.CurrentTimeStep().Number+1)
	if done {
		t.StepType = ts.Last
		t.SetEnd(ts.TerminalStateReached)
	} else if g.ender != nil {
		done = g.ender.End(&t)
	}
	g.currentStep = t

	return t, done, nil
}

// Reset resets the environment to some starting state
func (g *GymEnv) Reset() (ts.TimeStep, error) {
	obs, err := g.Environment.Reset()
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not reset "+
			"environment: %v", err)
	}

	t := ts.New(ts.First, 0, g.discount, int(obs.AtVec(0)), 0)
	g.currentStep = t

	return t, nil
}

// CurrentTimeStep returns the current timestep in the environment
func (g *GymEnv) CurrentTimeStep() ts.TimeStep {
	return g.currentStep
}

// ObservationSpec returns the observation spec of the environment
func (g *GymEnv) ObservationSpec() env.Spec {
	return g.observations
}

// ActionSpec returns the action specification of the environment
func (g *GymEnv) ActionSpec() env.Spec {
	return g.actions
}

// DiscountSpec returns the discount specification of the environment
func (g *GymEnv) DiscountSpec() env.Spec {
	return env.NewSpec(env.Discount, g.discount, g.discount, env.Continuous)
}

// Close performs resource cleanup after the environment is no longer
// needed
func (g *GymEnv) Close() error {
	g.Environment.Close()
	return nil
}
