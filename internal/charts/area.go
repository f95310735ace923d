package charts

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"courselens/internal/errors"
)

// Layer is one band of a stacked area chart.
type Layer struct {
	Name   string
	Values []float64
	Color  color.Color
}

// AddStackedArea draws layers as cumulative filled bands over the shared x
// positions, bottom layer first, and registers each band in the legend.
func AddStackedArea(p *plot.Plot, xs []float64, layers []Layer) error {
	base := make([]float64, len(xs))
	for _, layer := range layers {
		if len(layer.Values) != len(xs) {
			return errors.ValidationError("layer length does not match x positions")
		}

		upper := make([]float64, len(xs))
		for i := range xs {
			upper[i] = base[i] + layer.Values[i]
		}

		// Band outline: along the upper edge, back along the lower edge.
		pts := make(plotter.XYs, 0, 2*len(xs))
		for i := range xs {
			pts = append(pts, plotter.XY{X: xs[i], Y: upper[i]})
		}
		for i := len(xs) - 1; i >= 0; i-- {
			pts = append(pts, plotter.XY{X: xs[i], Y: base[i]})
		}

		band, err := plotter.NewPolygon(pts)
		if err != nil {
			return errors.RenderError("building area band", err)
		}
		band.Color = layer.Color
		p.Add(band)
		p.Legend.Add(layer.Name, band)

		base = upper
	}
	return nil
}
