package charts

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"courselens/internal/errors"
)

// PieSlice is one wedge of a pie chart.
type PieSlice struct {
	Label string
	Value float64
	Color color.Color
}

// Pie renders proportional wedges around the data-space origin. Wedges
// start at twelve o'clock and proceed counterclockwise. Explode offsets
// every wedge outward by that fraction of the radius.
type Pie struct {
	slices  []PieSlice
	total   float64
	Explode float64
}

// NewPie builds a pie plotter from slices with a positive total value.
func NewPie(slices []PieSlice) (*Pie, error) {
	total := 0.0
	for _, s := range slices {
		if s.Value < 0 {
			return nil, errors.ValidationError("pie slice values must be non-negative")
		}
		total += s.Value
	}
	if total <= 0 {
		return nil, errors.ValidationError("pie total must be positive")
	}
	return &Pie{slices: slices, total: total, Explode: 0.02}, nil
}

// Plot implements plot.Plotter.
func (p *Pie) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	center := vg.Point{X: trX(0), Y: trY(0)}

	// One data unit in canvas lengths; the smaller axis keeps the pie round.
	radius := trX(1) - trX(0)
	if ry := trY(1) - trY(0); ry < radius {
		radius = ry
	}

	start := math.Pi / 2
	for _, s := range p.slices {
		theta := 2 * math.Pi * s.Value / p.total
		mid := start + theta/2
		ctr := vg.Point{
			X: center.X + radius*vg.Length(p.Explode*math.Cos(mid)),
			Y: center.Y + radius*vg.Length(p.Explode*math.Sin(mid)),
		}

		var path vg.Path
		path.Move(ctr)
		path.Line(vg.Point{
			X: ctr.X + radius*vg.Length(math.Cos(start)),
			Y: ctr.Y + radius*vg.Length(math.Sin(start)),
		})
		path.Arc(ctr, radius, start, theta)
		path.Close()

		c.SetColor(s.Color)
		c.Fill(path)
		start += theta
	}
}

// DataRange implements plot.DataRanger, reserving room around the unit
// circle for the slice labels.
func (p *Pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1.45, 1.45, -1.45, 1.45
}

// PiePlot assembles a complete pie chart with per-slice labels of the form
// "Label (12.3%)" placed along each wedge's bisector.
func PiePlot(title string, slices []PieSlice) (*plot.Plot, error) {
	pie, err := NewPie(slices)
	if err != nil {
		return nil, err
	}

	var xy plotter.XYs
	var texts []string
	start := math.Pi / 2
	for _, s := range slices {
		theta := 2 * math.Pi * s.Value / pie.total
		mid := start + theta/2
		xy = append(xy, plotter.XY{X: 1.18 * math.Cos(mid), Y: 1.18 * math.Sin(mid)})
		texts = append(texts, fmt.Sprintf("%s (%.1f%%)", s.Label, 100*s.Value/pie.total))
		start += theta
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xy, Labels: texts})
	if err != nil {
		return nil, errors.RenderError("building pie labels", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.Add(pie, labels)
	p.HideAxes()
	return p, nil
}
