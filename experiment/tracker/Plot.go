package tracker

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SavePlot renders data as a line against its index and saves the
// figure to filename. The image format is taken from the extension of
// filename, e.g. ".png" or ".svg".
func SavePlot(filename, title, xLabel, yLabel string, data []float64) error {
	if len(data) == 0 {
		return fmt.Errorf("savePlot: no data to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	points := make(plotter.XYs, len(data))
	for i, v := range data {
		points[i] = plotter.XY{
			X: float64(i),
			Y: v,
		}
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("savePlot: %v", err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("savePlot: %v", err)
	}
	return nil
}
