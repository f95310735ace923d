package charts

import (
	"image/color"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"courselens/domain/table"
	"courselens/internal/errors"
)

// Distribution renders a histogram of a numeric column with an overlaid
// gaussian density curve, a dashed vertical line at the mean and a dash-dot
// line at the median, both labeled to two decimal places in the legend.
// The caller owns the returned figure and persists it with Save if wanted.
func Distribution(t table.Table, column string, opts DistributionOptions) (*Figure, error) {
	opts = opts.withDefaults(column)

	values, err := t.Floats(column)
	if err != nil {
		return nil, err
	}
	clean := finiteValues(values)
	if len(clean) == 0 {
		return nil, errors.ColumnError(column, "no values to plot")
	}

	p, top, err := Histogram(clean, opts)
	if err != nil {
		return nil, err
	}
	p.X.Label.Text = column

	mean, _ := stats.Mean(clean)
	median, _ := stats.Median(clean)

	if err := AddCenterLines(p, mean, median, top*1.05); err != nil {
		return nil, err
	}

	return Single(p, opts.Size), nil
}

// Histogram builds a count histogram with a density overlay scaled to the
// count axis. It returns the plot and the tallest drawn height, which
// callers use to size full-height guide lines.
func Histogram(values []float64, opts DistributionOptions) (*plot.Plot, float64, error) {
	opts = opts.withDefaults("")

	p := plot.New()
	p.Title.Text = opts.Title
	p.Y.Label.Text = "Count"

	hist, err := plotter.NewHist(plotter.Values(values), opts.Bins)
	if err != nil {
		return nil, 0, errors.RenderError("building histogram", err)
	}
	hist.FillColor = opts.Color
	p.Add(hist)

	top := 0.0
	binWidth := 0.0
	for _, bin := range hist.Bins {
		if bin.Weight > top {
			top = bin.Weight
		}
		binWidth = bin.Max - bin.Min
	}

	if xs, ys := gaussianKDE(values); xs != nil {
		pts := make(plotter.XYs, len(xs))
		scale := float64(len(values)) * binWidth
		for i := range xs {
			pts[i] = plotter.XY{X: xs[i], Y: ys[i] * scale}
			if pts[i].Y > top {
				top = pts[i].Y
			}
		}
		curve, err := plotter.NewLine(pts)
		if err != nil {
			return nil, 0, errors.RenderError("building density curve", err)
		}
		curve.LineStyle.Width = vg.Points(1.5)
		curve.LineStyle.Color = Primary
		p.Add(curve)
	}

	return p, top, nil
}

// AddCenterLines draws the labeled mean and median reference lines used by
// distribution plots.
func AddCenterLines(p *plot.Plot, mean, median, top float64) error {
	meanLine, err := VLine(mean, 0, top, DashedLine(meanLineColor))
	if err != nil {
		return err
	}
	medianLine, err := VLine(median, 0, top, DashDotLine(medianLineColor))
	if err != nil {
		return err
	}
	p.Add(meanLine, medianLine)
	p.Legend.Add("Mean: "+legendValue(mean), meanLine)
	p.Legend.Add("Median: "+legendValue(median), medianLine)
	p.Legend.Top = true
	return nil
}

// legendValue renders a reference-line value with thousands separators and
// exactly two decimal places, trailing zeros included.
func legendValue(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// VLine builds a vertical guide line spanning [ymin, ymax] at x.
func VLine(x, ymin, ymax float64, style draw.LineStyle) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
	if err != nil {
		return nil, errors.RenderError("building guide line", err)
	}
	line.LineStyle = style
	return line, nil
}

// DashedLine is the reference-line style used for means.
func DashedLine(c color.Color) draw.LineStyle {
	return draw.LineStyle{
		Color:  c,
		Width:  vg.Points(2),
		Dashes: []vg.Length{vg.Points(6), vg.Points(4)},
	}
}

// DashDotLine is the reference-line style used for medians.
func DashDotLine(c color.Color) draw.LineStyle {
	return draw.LineStyle{
		Color:  c,
		Width:  vg.Points(2),
		Dashes: []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1), vg.Points(3)},
	}
}

// DottedLine is the guide style used for axis markers in the demo charts.
func DottedLine(c color.Color) draw.LineStyle {
	return draw.LineStyle{
		Color:  c,
		Width:  vg.Points(1),
		Dashes: []vg.Length{vg.Points(1.5), vg.Points(3)},
	}
}

func finiteValues(values []float64) []float64 {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			clean = append(clean, v)
		}
	}
	return clean
}
