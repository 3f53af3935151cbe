// Package cli implements the command line interface for training
// tabular agents
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	seed     uint64
	logLevel string
)

// GetRootCommand returns the root command with all subcommands added
func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "taxi",
		Short:         "Train tabular Expected Sarsa agents on Gym environments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 192382, "Seed for the environment and agent")
	rootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(PlotCommand())
	return rootCommand
}

// newLogger creates the logger used by all commands
func newLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "taxi",
		Output: os.Stderr,
		Level:  hclog.LevelFromString(logLevel),
	})
}
