// Package envconfig provides configuration structs for configuring
// discrete environments. Environment configurations in this package are
// JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/c-schrade/Udacity-Taxi-v2-Miniproject/environment"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/environment/gym"
	ts "github.com/c-schrade/Udacity-Taxi-v2-Miniproject/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	Taxi       EnvName = gym.Taxi
	FrozenLake EnvName = "FrozenLake-v1"
	CliffWalk  EnvName = "CliffWalking-v0"
)

// Config implements a specific configuration of a specific environment.
// An EpisodeCutoff of 0 leaves the environment's own cutoff in place.
type Config struct {
	Environment   EnvName
	EpisodeCutoff uint
	Discount      float64
}

// NewConfig returns a new environment Config
func NewConfig(envName EnvName, episodeCutoff uint, discount float64) Config {
	return Config{
		Environment:   envName,
		EpisodeCutoff: episodeCutoff,
		Discount:      discount,
	}
}

// Validate returns an error describing whether or not the Config is
// valid
func (c Config) Validate() error {
	switch c.Environment {
	case Taxi, FrozenLake, CliffWalk:
	default:
		return fmt.Errorf("validate: no such environment %v", c.Environment)
	}

	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount must be in [0, 1], got %v",
			c.Discount)
	}
	return nil
}

// CreateEnv returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) CreateEnv(seed uint64) (env.Environment, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createEnv: %v", err)
	}

	var ender env.Ender
	if c.EpisodeCutoff > 0 {
		ender = env.NewStepLimit(int(c.EpisodeCutoff))
	}

	e, step, err := gym.New(string(c.Environment), c.Discount, ender, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createEnv: could not create "+
			"environment %v: %v", c.Environment, err)
	}
	return e, step, nil
}
