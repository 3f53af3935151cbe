package experiment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/agent/tabular/esarsa"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/environment"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/experiment/tracker"
	ts "github.com/c-schrade/Udacity-Taxi-v2-Miniproject/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// chain is an environment of states 0, 1, ..., n-1 where action 0 moves
// right and action 1 moves left. Every step has reward -1 and the
// episode ends upon reaching state n-1.
type chain struct {
	n       int
	ender   environment.Ender
	current ts.TimeStep
	failAt  int
}

func newChain(n, cutoff int) *chain {
	return &chain{n: n, ender: environment.NewStepLimit(cutoff), failAt: -1}
}

func (c *chain) Reset() (ts.TimeStep, error) {
	c.current = ts.New(ts.First, 0, 1, 0, 0)
	return c.current, nil
}

func (c *chain) Step(action int) (ts.TimeStep, bool, error) {
	if c.current.Number == c.failAt {
		return ts.TimeStep{}, true, errors.New("simulator crashed")
	}

	state := c.current.Observation
	if action == 0 {
		state++
	} else if state > 0 {
		state--
	}

	next := ts.New(ts.Mid, -1, 1, state, c.current.Number+1)
	last := false
	if state == c.n-1 {
		next.StepType = ts.Last
		next.SetEnd(ts.TerminalStateReached)
		last = true
	} else {
		last = c.ender.End(&next)
	}
	c.current = next
	return next, last, nil
}

func (c *chain) CurrentTimeStep() ts.TimeStep { return c.current }
func (c *chain) Close() error                 { return nil }

func (c *chain) ObservationSpec() environment.Spec {
	return environment.NewDiscreteSpec(environment.Observation, c.n)
}

func (c *chain) ActionSpec() environment.Spec {
	return environment.NewDiscreteSpec(environment.Action, 2)
}

func (c *chain) DiscountSpec() environment.Spec {
	return environment.NewSpec(environment.Discount, 1, 1, environment.Continuous)
}

// transition is a call to Step recorded by recorder
type transition struct {
	state, action int
	reward        float64
	next          int
	done          bool
}

// recorder always moves right and records every transition it learns
// from
type recorder struct {
	transitions []transition
}

func (r *recorder) SelectAction(int) int { return 0 }

func (r *recorder) Step(state, action int, reward float64, next int,
	done bool) {
	r.transitions = append(r.transitions,
		transition{state, action, reward, next, done})
}

// leftThenRight moves left in the first episode and right afterwards,
// so that episode returns differ
type leftThenRight struct {
	episode int
}

func (l *leftThenRight) SelectAction(int) int {
	if l.episode%2 == 0 {
		return 1
	}
	return 0
}

func (l *leftThenRight) Step(_, _ int, _ float64, _ int, done bool) {
	if done {
		l.episode++
	}
}

func TestRunEpisodeTransitions(t *testing.T) {
	r := &recorder{}
	o, err := NewOnline(newChain(3, 0), r, 1, 1, NoTarget, nil)
	require.NoError(t, err)

	ended, err := o.RunEpisode()
	require.NoError(t, err)
	assert.True(t, ended)

	assert.Equal(t, []transition{
		{0, 0, -1, 1, false},
		{1, 0, -1, 2, true},
	}, r.transitions)

	// Further episodes are not run once the experiment has ended
	ended, err = o.RunEpisode()
	require.NoError(t, err)
	assert.True(t, ended)
	assert.Len(t, r.transitions, 2)
}

func TestOnlineAverageRewards(t *testing.T) {
	// Odd episodes time out with return -4, even episodes return -2
	o, err := NewOnline(newChain(3, 4), &leftThenRight{}, 6, 2, NoTarget, nil)
	require.NoError(t, err)

	assert.True(t, math.IsInf(o.BestAverageReward(), -1))
	require.NoError(t, o.Run(context.Background()))

	assert.Equal(t, 6, o.Episodes())
	assert.False(t, o.Solved())
	assert.Equal(t, []float64{-3, -3, -3, -3, -3}, o.AverageRewards())
	assert.Equal(t, -3.0, o.BestAverageReward())
}

func TestOnlineTarget(t *testing.T) {
	o, err := NewOnline(newChain(3, 0), &recorder{}, 1000, 10, -2, nil)
	require.NoError(t, err)
	require.NoError(t, o.Run(context.Background()))

	// Every episode returns -2, so the target is hit once the window fills
	assert.True(t, o.Solved())
	assert.Equal(t, 10, o.Episodes())
	assert.Equal(t, []float64{-2}, o.AverageRewards())
}

func TestOnlineCancel(t *testing.T) {
	o, err := NewOnline(newChain(3, 0), &recorder{}, 10, 1, NoTarget, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, o.Run(ctx), context.Canceled)
	assert.Equal(t, 0, o.Episodes())
}

func TestOnlineEnvironmentError(t *testing.T) {
	env := newChain(10, 0)
	env.failAt = 3

	o, err := NewOnline(env, &leftThenRight{}, 10, 1, NoTarget, nil)
	require.NoError(t, err)
	assert.Error(t, o.Run(context.Background()))
}

func TestNewOnlineInvalid(t *testing.T) {
	_, err := NewOnline(newChain(3, 0), &recorder{}, 0, 1, NoTarget, nil)
	assert.Error(t, err)

	_, err = NewOnline(newChain(3, 0), &recorder{}, 1, 0, NoTarget, nil)
	assert.Error(t, err)
}

func TestOnlineTrackers(t *testing.T) {
	returns := tracker.NewReturn("")
	lengths := tracker.NewEpisodeLength("")

	o, err := NewOnline(newChain(3, 4), &leftThenRight{}, 4, 2, NoTarget, nil,
		returns)
	require.NoError(t, err)
	o.Register(lengths)
	require.NoError(t, o.Run(context.Background()))

	assert.Equal(t, []float64{-4, -2, -4, -2}, returns.Data())
	assert.Equal(t, []float64{4, 2, 4, 2}, lengths.Data())
}

func TestOnlineLearnsChain(t *testing.T) {
	env := newChain(6, 50)
	c := esarsa.Config{Epsilon: 0.1, Alpha: 0.5, Gamma: 1, NA: 2, NS: 6}
	a, err := esarsa.New(c, rand.NewSource(31))
	require.NoError(t, err)

	o, err := NewOnline(env, a, 500, DefaultWindow, NoTarget, nil)
	require.NoError(t, err)
	require.NoError(t, o.Run(context.Background()))

	// The shortest path takes 5 steps
	assert.Greater(t, o.BestAverageReward(), -8.0)
	for s := 0; s < 5; s++ {
		values := a.ActionValues(s)
		assert.Greater(t, values[0], values[1], "state %v", s)
	}
}
