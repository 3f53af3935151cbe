package esarsa

import (
	"fmt"
	"reflect"

	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/agent"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/environment"
	"golang.org/x/exp/rand"
)

const (
	// DefaultGamma does not discount future rewards
	DefaultGamma float64 = 1.0

	// Action and state counts of the Taxi-v3 environment
	DefaultNA int = 6
	DefaultNS int = 500
)

func init() {
	// Register ConfigList type so that it can be typed using
	// agent.TypedConfigList to help with serialization/deserialization.
	agent.Register(agent.EGreedyESarsaTabular, ConfigList{})
}

// ConfigList implements functionality for storing a number of Config's
// in a simple manner. Instead of storing a slice of Configs, the
// ConfigList stores each field's values and constructs the list by
// every combination of field values.
type ConfigList struct {
	Epsilon []float64
	Alpha   []float64
	Gamma   []float64
	NA      []int
	NS      []int
}

// NewConfigList returns a new ConfigList as an agent.TypedConfigList
// so that it can easily be JSON serialized/deserialized without
// knowing the underlying concrete type.
func NewConfigList(epsilon, alpha, gamma []float64, nA,
	nS []int) agent.TypedConfigList {
	config := ConfigList{
		Epsilon: epsilon,
		Alpha:   alpha,
		Gamma:   gamma,
		NA:      nA,
		NS:      nS,
	}
	return agent.NewTypedConfigList(config)
}

// Config returns an empty Config that is of the type stored by
// ConfigList
func (c ConfigList) Config() agent.Config {
	return Config{}
}

// Type returns the type of agent that can be constructed by Config's
// stored by the list
func (c ConfigList) Type() agent.Type {
	return c.Config().Type()
}

// NumFields returns the number of settable fields for the ConfigList
func (c ConfigList) NumFields() int {
	rValue := reflect.ValueOf(c)
	return rValue.NumField()
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	return len(c.Epsilon) * len(c.Alpha) * len(c.Gamma) * len(c.NA) *
		len(c.NS)
}

// Config represents a configuration for the ESarsa agent.
type Config struct {
	Epsilon float64 // epislon for behaviour policy
	Alpha   float64 // learning rate
	Gamma   float64 // discount factor
	NA      int     // number of actions
	NS      int     // number of states
}

// DefaultConfig returns a Config for the Taxi-v3 environment with no
// discounting
func DefaultConfig(epsilon, alpha float64) Config {
	return Config{
		Epsilon: epsilon,
		Alpha:   alpha,
		Gamma:   DefaultGamma,
		NA:      DefaultNA,
		NS:      DefaultNS,
	}
}

// CreateAgent creates the agent from the Config. The agent samples
// actions using a source seeded with seed. The environment must have
// discrete actions and observations enumerated from 0 which match the
// NA and NS of the Config.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	if err := checkSpec(env.ActionSpec(), c.NA); err != nil {
		return nil, fmt.Errorf("esarsa: %v", err)
	}
	if err := checkSpec(env.ObservationSpec(), c.NS); err != nil {
		return nil, fmt.Errorf("esarsa: %v", err)
	}

	a, err := New(c, rand.NewSource(seed))
	if err != nil {
		return nil, err
	}
	return a, nil
}

// checkSpec ensures that a spec enumerates exactly n discrete values
// starting from 0
func checkSpec(spec environment.Spec, n int) error {
	if spec.Cardinality != environment.Discrete {
		return fmt.Errorf("cannot use non-discrete %v values", spec.Type)
	}
	if spec.LowerBound != 0.0 {
		return fmt.Errorf("%v values must be enumerated starting from 0",
			spec.Type)
	}
	if spec.Size() != n {
		return fmt.Errorf("environment has %v %v values but agent is "+
			"configured for %v", spec.Size(), spec.Type, n)
	}
	return nil
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*ESarsa)
	return ok
}

// Validate ensures that the Config is valid. All errors wrap
// agent.ErrInvalidParameter.
func (c Config) Validate() error {
	if c.NA <= 0 {
		return fmt.Errorf("%w: number of actions must be positive, got %v",
			agent.ErrInvalidParameter, c.NA)
	}
	if c.NS <= 0 {
		return fmt.Errorf("%w: number of states must be positive, got %v",
			agent.ErrInvalidParameter, c.NS)
	}
	if !(c.Epsilon >= 0 && c.Epsilon <= 1) {
		return fmt.Errorf("%w: epsilon must be in [0, 1], got %v",
			agent.ErrInvalidParameter, c.Epsilon)
	}
	if !(c.Alpha >= 0 && c.Alpha <= 1) {
		return fmt.Errorf("%w: learning rate must be in [0, 1], got %v",
			agent.ErrInvalidParameter, c.Alpha)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.EGreedyESarsaTabular
}
