// Package esarsa implements the tabular Expected Sarsa algorithm
package esarsa

import (
	"fmt"

	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/agent"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/agent/tabular/policy"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// ESarsa implements the online, on-policy Expected Sarsa algorithm
// with an ε-greedy behaviour policy over a table of action values.
// States are enumerated as (0, 1, ..., NS-1) and actions as
// (0, 1, ..., NA-1).
//
// Action values are allocated lazily: a state reads as all-zero until
// it is first accessed. The policy table stores, for each state, the
// action probabilities computed the last time an action was selected
// in that state, and is all-zero for states never acted in.
//
// ESarsa is not safe for concurrent use. Each ESarsa should be owned by
// a single training loop.
type ESarsa struct {
	behaviour *policy.EGreedy

	q      map[int]*mat.VecDense
	policy *mat.Dense

	alpha      float64
	gamma      float64
	numActions int
	numStates  int
}

// New creates a new ESarsa struct. Actions are sampled using the
// argument source of randomness, so two agents constructed with
// identically seeded sources select identical actions when given
// identical inputs.
func New(config Config, seed rand.Source) (*ESarsa, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("esarsa: %w", err)
	}
	if seed == nil {
		return nil, fmt.Errorf("esarsa: %w: nil random source",
			agent.ErrInvalidParameter)
	}

	behaviour, err := policy.NewEGreedy(config.Epsilon, seed)
	if err != nil {
		return nil, fmt.Errorf("esarsa: invalid behaviour policy: %v", err)
	}

	return &ESarsa{
		behaviour:  behaviour,
		q:          make(map[int]*mat.VecDense),
		policy:     mat.NewDense(config.NS, config.NA, nil),
		alpha:      config.Alpha,
		gamma:      config.Gamma,
		numActions: config.NA,
		numStates:  config.NS,
	}, nil
}

// actionValues returns the action values of a state, inserting a zero
// vector if the state has not been seen before
func (e *ESarsa) actionValues(state int) *mat.VecDense {
	values, ok := e.q[state]
	if !ok {
		values = mat.NewVecDense(e.numActions, nil)
		e.q[state] = values
	}
	return values
}

// SelectAction selects an action in state from the ε-greedy behaviour
// policy and records the policy's action probabilities for state.
// The state must be in [0, NS).
func (e *ESarsa) SelectAction(state int) int {
	values := e.actionValues(state)

	// The row aliases the policy table, so the probabilities are
	// stored as they are computed
	probs := e.policy.RawRowView(state)
	e.behaviour.Probabilities(values, probs)

	return e.behaviour.Sample(probs)
}

// Step updates the action value of the taken action towards the
// Expected Sarsa target. The expectation over next-state action values
// uses the stored policy row of nextState, which is all-zero if no
// action has been selected in nextState yet.
//
// done is not used: the value of nextState is bootstrapped from even
// on the last step of an episode.
func (e *ESarsa) Step(state, action int, reward float64, nextState int,
	done bool) {
	t := timestep.Transition{
		State:     state,
		Action:    action,
		Reward:    reward,
		NextState: nextState,
		Done:      done,
	}

	tdError := e.TdError(t)
	values := e.actionValues(state)
	values.SetVec(action, values.AtVec(action)+e.alpha*tdError)
}

// TdError returns the Expected Sarsa TD error on a transition without
// updating any action values
func (e *ESarsa) TdError(t timestep.Transition) float64 {
	nextValues := e.actionValues(t.NextState)
	nextProbs := e.policy.RowView(t.NextState)

	expectedQ := mat.Dot(nextProbs, nextValues)
	target := t.Reward + e.gamma*expectedQ

	return target - e.actionValues(t.State).AtVec(t.Action)
}

// ActionValues returns a copy of the action values of a state
func (e *ESarsa) ActionValues(state int) []float64 {
	values, ok := e.q[state]
	if !ok {
		return make([]float64, e.numActions)
	}
	return mat.Col(nil, 0, values)
}

// Policy returns a copy of the stored action probabilities of a state
func (e *ESarsa) Policy(state int) []float64 {
	return mat.Row(nil, state, e.policy)
}

// NumActions returns the number of actions the agent selects between
func (e *ESarsa) NumActions() int {
	return e.numActions
}

// NumStates returns the number of states in the policy table
func (e *ESarsa) NumStates() int {
	return e.numStates
}

// Visited returns the number of states with allocated action values
func (e *ESarsa) Visited() int {
	return len(e.q)
}

var _ agent.TdErrorer = &ESarsa{}
var _ agent.Agent = &ESarsa{}
