package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/coordfit/pkg/errors"
)

// SaveConvergencePlot draws the best RMSE per generation as a line chart.
// The image format follows the file extension (.png, .svg, .pdf, ...).
func SaveConvergencePlot(history []float64, path string) error {
	if len(history) == 0 {
		return errors.NewValueError("SaveConvergencePlot", "empty history")
	}

	p := plot.New()
	p.Title.Text = "Hill-climbing convergence"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Best RMSE"

	pts := make(plotter.XYs, len(history))
	for i, v := range history {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}

	l, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "SaveConvergencePlot: build line")
	}
	l.Color = color.RGBA{R: 255, A: 255}
	l.LineStyle.Width = vg.Points(1.5)
	p.Add(l)
	p.Add(plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "SaveConvergencePlot: save %s", path)
	}
	return nil
}
