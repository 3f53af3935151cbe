package cli

import (
	"github.com/c-schrade/Udacity-Taxi-v2-Miniproject/experiment/tracker"
	"github.com/spf13/cobra"
)

// PlotCommand returns the command which plots data saved by a Tracker
func PlotCommand() *cobra.Command {
	var title, yLabel, out string

	cmd := &cobra.Command{
		Use:   "plot [data file]",
		Short: "Plot data saved by a tracker during training",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := tracker.LoadData(args[0])
			if err != nil {
				return err
			}
			if err := tracker.SavePlot(out, title, "Episode", yLabel, data); err != nil {
				return err
			}
			newLogger().Info("saved plot", "file", out, "points", len(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "Taxi-v3", "Plot title")
	cmd.Flags().StringVar(&yLabel, "y-label", "Return", "Label of the y axis")
	cmd.Flags().StringVarP(&out, "out", "o", "plot.png", "Output image file")
	return cmd
}
