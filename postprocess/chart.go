package postprocess

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart draws every block as one line-and-points series on a shared canvas
// and saves it to path. The image format follows the path extension.
func Chart(blocks []Block, title, path string) error {
	figure := plot.New()
	figure.Title.Text = title
	figure.X.Label.Text = "Force (N)"
	figure.Y.Label.Text = "Contraction Rate (%)"
	figure.Add(plotter.NewGrid())
	figure.Legend.Add("Pressure(MPa)")

	var series []interface{}
	for _, block := range blocks {
		xys := make(plotter.XYs, len(block.Points))
		for i, point := range block.Points {
			xys[i].X = point.Force
			xys[i].Y = point.Shrinkage
		}
		series = append(series, block.Label, xys)
	}
	if err := plotutil.AddLinePoints(figure, series...); err != nil {
		return errors.Wrap(err, "postprocess.Chart: unable to draw the series")
	}
	if err := figure.Save(12*vg.Inch, 8*vg.Inch, path); err != nil {
		return errors.Wrap(err, "postprocess.Chart: unable to save the figure")
	}
	return nil
}
