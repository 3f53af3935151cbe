// Package policy implements policies over tabular action values
package policy

import (
	"fmt"

	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/utils/matutils"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over the action values of a
// single state
type EGreedy struct {
	epsilon float64
	seed    rand.Source // Source for random number generation
}

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected and seed is the
// source of randomness used to sample actions
func NewEGreedy(e float64, seed rand.Source) (*EGreedy, error) {
	if !(e >= 0 && e <= 1) {
		return nil, fmt.Errorf("newEGreedy: epsilon must be in [0, 1], "+
			"got %v", e)
	}
	if seed == nil {
		return nil, fmt.Errorf("newEGreedy: nil random source")
	}
	return &EGreedy{e, seed}, nil
}

// Epsilon returns the probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// Probabilities calculates the probability of selecting each action
// given the action values of a state and stores them in probs, which
// must have the same length as actionValues. The greedy action is the
// first action with maximal value.
func (p *EGreedy) Probabilities(actionValues mat.Vector, probs []float64) {
	numActions := actionValues.Len()
	if len(probs) != numActions {
		panic(fmt.Sprintf("probabilities: expected %v probabilities, got %v",
			numActions, len(probs)))
	}

	// Calculate the ε probability of choosing any action at random
	prob := p.epsilon / float64(numActions)
	for i := range probs {
		probs[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	greedyAction := matutils.MaxVec(actionValues)
	probs[greedyAction] += (1.0 - p.epsilon)
}

// Sample samples an action from a categorical distribution over
// actions using the action probabilities
func (p *EGreedy) Sample(probs []float64) int {
	dist := distuv.NewCategorical(probs, p.seed)
	return int(dist.Rand())
}

// SelectAction selects an action from the ε-greedy policy over the
// argument action values
func (p *EGreedy) SelectAction(actionValues mat.Vector) int {
	probs := make([]float64, actionValues.Len())
	p.Probabilities(actionValues, probs)
	return p.Sample(probs)
}
