package experiment

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/agent"
	env "github.com/c-schrade/Udacity-Taxi-v2-Miniproject/environment"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/experiment/tracker"
	ts "github.com/c-schrade/Udacity-Taxi-v2-Miniproject/timestep"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/utils/progressbar"
	"github.com/hashicorp/go-hclog"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultWindow is the number of most recent episodes over which
	// the average reward is computed
	DefaultWindow int = 100

	// TaxiTarget is the average reward over DefaultWindow episodes at
	// which Taxi-v3 is considered solved
	TaxiTarget float64 = 9.7
)

// NoTarget disables early stopping of an Online experiment
var NoTarget = math.Inf(1)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
//
// After each episode, Online records the average return of the most
// recent window episodes, once at least window episodes have finished,
// and tracks the best such average. The experiment ends when the
// maximum number of episodes has been run or the best average reaches
// the target.
type Online struct {
	env.Environment
	agent.Agent
	logger hclog.Logger
	bar    *progressbar.ManualProgressBar

	maxEpisodes    int
	currentEpisode int
	window         int
	target         float64

	windowReturns []float64
	avgRewards    []float64
	bestAvgReward float64
	solved        bool

	trackers []tracker.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The episodes parameter determines
// how many episodes the experiment is run for and the t parameter
// is a slice of tracker.Tracker which determine what data is saved.
// A nil logger discards all log output.
func NewOnline(e env.Environment, a agent.Agent, episodes, window int,
	target float64, logger hclog.Logger, t ...tracker.Tracker) (*Online,
	error) {
	if episodes < 1 {
		return nil, fmt.Errorf("newOnline: episodes must be positive, "+
			"got %v", episodes)
	}
	if window < 1 {
		return nil, fmt.Errorf("newOnline: window must be positive, got %v",
			window)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Online{
		Environment:   e,
		Agent:         a,
		logger:        logger,
		maxEpisodes:   episodes,
		window:        window,
		target:        target,
		windowReturns: make([]float64, 0, window),
		bestAvgReward: math.Inf(-1),
		trackers:      t,
	}, nil
}

// Display prints a progress bar to out, refreshed every window episodes
func (o *Online) Display(out io.Writer, width int) {
	o.bar = progressbar.NewManualProgressBar(out, width, o.maxEpisodes)
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment and returns
// whether the experiment has ended
func (o *Online) RunEpisode() (bool, error) {
	if o.done() {
		return true, nil
	}

	step, err := o.Environment.Reset()
	if err != nil {
		return true, fmt.Errorf("runEpisode: could not reset environment: %v",
			err)
	}
	o.track(step)

	episodeReturn := 0.0
	for {
		// Select action, step in environment
		action := o.Agent.SelectAction(step.Observation)
		next, last, err := o.Environment.Step(action)
		if err != nil {
			return true, fmt.Errorf("runEpisode: could not step "+
				"environment: %v", err)
		}

		// Cache the environment step in each Tracker
		o.track(next)

		o.Agent.Step(step.Observation, action, next.Reward,
			next.Observation, last)
		episodeReturn += next.Reward
		step = next

		if last {
			break
		}
	}

	o.endEpisode(episodeReturn, step.Number)
	return o.done(), nil
}

// endEpisode records the return of a finished episode
func (o *Online) endEpisode(episodeReturn float64, steps int) {
	o.currentEpisode++

	if len(o.windowReturns) == o.window {
		o.windowReturns = o.windowReturns[1:]
	}
	o.windowReturns = append(o.windowReturns, episodeReturn)

	if o.currentEpisode >= o.window {
		avgReward := stat.Mean(o.windowReturns, nil)
		o.avgRewards = append(o.avgRewards, avgReward)

		if avgReward > o.bestAvgReward {
			o.bestAvgReward = avgReward
		}
	}

	o.logger.Debug("episode finished", "episode", o.currentEpisode,
		"return", episodeReturn, "steps", steps)

	if o.bar != nil {
		o.bar.Increment()
		if o.currentEpisode%o.window == 0 || o.currentEpisode == o.maxEpisodes {
			o.bar.SetStatus(fmt.Sprintf("Best average reward %v",
				o.bestAvgReward))
			o.bar.Display()
		}
	}

	if o.bestAvgReward >= o.target {
		o.solved = true
		o.logger.Info("environment solved", "episodes", o.currentEpisode,
			"best_average_reward", o.bestAvgReward)
	}
}

// done returns whether the experiment has ended
func (o *Online) done() bool {
	return o.solved || o.currentEpisode >= o.maxEpisodes
}

// Run runs the entire experiment for all episodes, stopping early if
// ctx is cancelled. Cancellation is only observed between episodes. Any
// progress display is finished however Run returns.
func (o *Online) Run(ctx context.Context) error {
	o.logger.Info("starting experiment", "episodes", o.maxEpisodes,
		"window", o.window, "target", o.target)

	if o.bar != nil {
		defer o.bar.Done()
	}

	for !o.done() {
		if err := ctx.Err(); err != nil {
			o.logger.Warn("experiment cancelled", "episodes", o.currentEpisode)
			return err
		}
		if _, err := o.RunEpisode(); err != nil {
			return err
		}
	}

	o.logger.Info("experiment finished", "episodes", o.currentEpisode,
		"best_average_reward", o.bestAvgReward, "solved", o.solved)
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the environment
func (o *Online) Close() error {
	return o.Environment.Close()
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}

// AverageRewards returns the average return over the most recent window
// episodes, recorded after every episode once window episodes finished
func (o *Online) AverageRewards() []float64 {
	return append([]float64(nil), o.avgRewards...)
}

// BestAverageReward returns the largest of the AverageRewards, or
// negative infinity if fewer than window episodes have finished
func (o *Online) BestAverageReward() float64 {
	return o.bestAvgReward
}

// Episodes returns the number of finished episodes
func (o *Online) Episodes() int {
	return o.currentEpisode
}

// Solved returns whether the best average reward reached the target
func (o *Online) Solved() bool {
	return o.solved
}
