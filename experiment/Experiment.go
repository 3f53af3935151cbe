// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"
	"fmt"

	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/agent"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/environment/envconfig"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/experiment/tracker"
	ts "github.com/c-schrade/Udacity-Taxi-v2-Miniproject/timestep"
	"github.com/hashicorp/go-hclog"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send each environment TimeStep to Trackers, which cache
// the data they are interested in to be later saved to disk. The Save()
// function will then save all cached data. This is usually performed
// after an experiment has been run. The Run() method will run all
// episodes until the episode limit is reached, or some other ending
// condition is reached. The RunEpisode() function will run a single
// episode.
type Experiment interface {
	Run(ctx context.Context) error
	RunEpisode() (bool, error) // Returns whether the experiment ended

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)

	// Close releases the experiment's environment
	Close() error
}

// Type is the kind of an Experiment
type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment. A nil Target
// disables early stopping.
type Config struct {
	Type
	MaxEpisodes uint
	Window      uint
	Target      *float64
	EnvConf     envconfig.Config
	AgentConf   agent.TypedConfigList
}

// Validate returns an error describing whether or not the Config is
// valid
func (c Config) Validate() error {
	if c.Type != OnlineExp {
		return fmt.Errorf("validate: no such experiment type %v", c.Type)
	}
	if c.MaxEpisodes == 0 {
		return fmt.Errorf("validate: experiment must run at least one " +
			"episode")
	}
	if c.AgentConf.ConfigList == nil || c.AgentConf.Len() == 0 {
		return fmt.Errorf("validate: no agent configurations")
	}
	return c.EnvConf.Validate()
}

// CreateExp creates the experiment which runs the agent at index i in
// the Config's list of agent configurations. The environment and agent
// are both seeded with seed.
func (c Config) CreateExp(i int, seed uint64, logger hclog.Logger,
	t ...tracker.Tracker) (Experiment, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createExp: %v", err)
	}
	if i < 0 {
		return nil, fmt.Errorf("createExp: agent config index %v must be "+
			"non-negative", i)
	}

	env, _, err := c.EnvConf.CreateEnv(seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: %v", err)
	}

	agentConf := c.AgentConf.At(i)
	a, err := agentConf.CreateAgent(env, seed)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("createExp: could not create agent: %w", err)
	}

	window := int(c.Window)
	if window == 0 {
		window = DefaultWindow
	}
	target := NoTarget
	if c.Target != nil {
		target = *c.Target
	}

	if logger != nil {
		logger = logger.With("agent", agentConf.Type(), "config", i)
	}

	switch c.Type {
	case OnlineExp:
		exp, err := NewOnline(env, a, int(c.MaxEpisodes), window, target,
			logger, t...)
		if err != nil {
			env.Close()
			return nil, fmt.Errorf("createExp: %v", err)
		}
		return exp, nil
	}

	env.Close()
	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}

// RunAndSave runs e and then saves its tracked data. Data is saved
// even when the run is cancelled or fails part way through, in which
// case the error of the run is returned.
func RunAndSave(ctx context.Context, e Experiment) error {
	runErr := e.Run(ctx)
	saveErr := e.Save()

	if runErr != nil && saveErr != nil {
		return fmt.Errorf("%w (could not save data: %v)", runErr, saveErr)
	} else if runErr != nil {
		return runErr
	}
	return saveErr
}
