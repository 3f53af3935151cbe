package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/agent/tabular/esarsa"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/environment/envconfig"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/experiment"
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/experiment/tracker"
	"github.com/spf13/cobra"
)

// trainFlags holds the flags of the train command
type trainFlags struct {
	configFile string
	index      int

	env      string
	cutoff   uint
	episodes uint
	window   uint
	target   float64
	noTarget bool

	epsilon float64
	alpha   float64
	gamma   float64

	returnsFile string
	lengthsFile string
	plotFile    string
	progress    bool
}

// config builds the experiment configuration, either from the JSON
// config file or from the command line flags
func (f *trainFlags) config() (experiment.Config, error) {
	if f.index < 0 {
		return experiment.Config{}, fmt.Errorf("index %v must be "+
			"non-negative", f.index)
	}

	if f.configFile != "" {
		data, err := os.ReadFile(f.configFile)
		if err != nil {
			return experiment.Config{}, fmt.Errorf("could not read config: %v",
				err)
		}

		var c experiment.Config
		if err := json.Unmarshal(data, &c); err != nil {
			return experiment.Config{}, fmt.Errorf("could not decode "+
				"config: %v", err)
		}
		return c, nil
	}

	c := experiment.Config{
		Type:        experiment.OnlineExp,
		MaxEpisodes: f.episodes,
		Window:      f.window,
		EnvConf: envconfig.NewConfig(envconfig.EnvName(f.env), f.cutoff,
			f.gamma),
		AgentConf: esarsa.NewConfigList(
			[]float64{f.epsilon},
			[]float64{f.alpha},
			[]float64{f.gamma},
			[]int{esarsa.DefaultNA},
			[]int{esarsa.DefaultNS},
		),
	}
	if !f.noTarget {
		target := f.target
		c.Target = &target
	}
	return c, nil
}

// train runs a single experiment and saves its data
func train(ctx context.Context, f *trainFlags) error {
	logger := newLogger()

	c, err := f.config()
	if err != nil {
		return err
	}

	var trackers []tracker.Tracker
	if f.returnsFile != "" {
		trackers = append(trackers, tracker.NewReturn(f.returnsFile))
	}
	if f.lengthsFile != "" {
		trackers = append(trackers, tracker.NewEpisodeLength(f.lengthsFile))
	}

	exp, err := c.CreateExp(f.index, seed, logger, trackers...)
	if err != nil {
		return err
	}
	defer exp.Close()

	online, isOnline := exp.(*experiment.Online)
	if isOnline && f.progress {
		online.Display(os.Stdout, 0)
	}

	if err := experiment.RunAndSave(ctx, exp); err != nil {
		return err
	}

	if !isOnline {
		return nil
	}
	fmt.Printf("Best average reward: %v\n", online.BestAverageReward())

	if f.plotFile != "" && len(online.AverageRewards()) > 0 {
		title := fmt.Sprintf("%v (window %v)", c.EnvConf.Environment, c.Window)
		err := tracker.SavePlot(f.plotFile, title, "Episode",
			"Average reward", online.AverageRewards())
		if err != nil {
			return err
		}
		logger.Info("saved plot", "file", f.plotFile)
	}
	return nil
}

// TrainCommand returns the command which trains an agent
func TrainCommand() *cobra.Command {
	return newTrainCommand(&trainFlags{})
}

// newTrainCommand returns the train command with its flags bound to f
func newTrainCommand(f *trainFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train an Expected Sarsa agent online",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt)
			defer stop()
			return train(ctx, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.configFile, "config", "c", "", "JSON experiment config; overrides the experiment flags")
	flags.IntVar(&f.index, "index", 0, "Index of the agent config to run from the config's list")

	flags.StringVar(&f.env, "env", string(envconfig.Taxi), "Gym environment")
	flags.UintVar(&f.cutoff, "cutoff", 0, "Episode step cutoff, 0 for the environment's own")
	flags.UintVarP(&f.episodes, "episodes", "e", 20000, "Number of episodes to run")
	flags.UintVar(&f.window, "window", uint(experiment.DefaultWindow), "Number of episodes to average rewards over")
	flags.Float64Var(&f.target, "target", experiment.TaxiTarget, "Average reward at which training stops")
	flags.BoolVar(&f.noTarget, "no-target", false, "Run every episode regardless of the average reward")

	flags.Float64Var(&f.epsilon, "epsilon", 0.00039, "Exploration rate")
	flags.Float64Var(&f.alpha, "alpha", 0.11, "Learning rate")
	flags.Float64Var(&f.gamma, "gamma", esarsa.DefaultGamma, "Discount factor")

	flags.StringVar(&f.returnsFile, "returns", "", "Save episodic returns to this file")
	flags.StringVar(&f.lengthsFile, "lengths", "", "Save episode lengths to this file")
	flags.StringVar(&f.plotFile, "plot", "", "Save a plot of the average rewards to this file")
	flags.BoolVar(&f.progress, "progress", true, "Display training progress")
	return cmd
}
