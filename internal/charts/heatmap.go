package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"courselens/domain/table"
	"courselens/internal/analysis"
	"courselens/internal/errors"
)

// CorrelationHeatmap computes the pairwise Pearson correlation matrix of
// the requested columns and renders it as a masked heatmap: only the cells
// below the diagonal are drawn and annotated (to three decimals), since the
// matrix is symmetric. The diverging blue-red scale is fixed to [-1, 1] so
// zero correlation sits at the center. A labeled color bar occupies the
// right edge of the figure.
func CorrelationHeatmap(t table.Table, columns []string, opts HeatmapOptions) (*Figure, error) {
	matrix, err := analysis.CorrelationMatrix(t, columns)
	if err != nil {
		return nil, err
	}
	return renderCorrelationHeatmap(matrix, columns, opts)
}

func renderCorrelationHeatmap(matrix [][]float64, columns []string, opts HeatmapOptions) (*Figure, error) {
	opts = opts.withDefaults()

	colorMap := moreland.SmoothBlueRed()
	colorMap.SetMin(-1)
	colorMap.SetMax(1)

	grid := corrGrid{matrix: matrix}
	heat := plotter.NewHeatMap(grid, colorMap.Palette(256))
	heat.Min = -1
	heat.Max = 1

	p := plot.New()
	p.Title.Text = opts.Title
	p.Add(heat)
	p.NominalX(columns...)
	p.NominalY(reversed(columns)...)

	labels, err := annotationLabels(matrix)
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	bar := &plotter.ColorBar{ColorMap: colorMap}
	bar.Vertical = true
	barPlot := plot.New()
	barPlot.Add(bar)
	barPlot.HideX()
	barPlot.Y.Label.Text = "Correlation Coefficient"

	return PanelRow(opts.Size, []float64{0.85, 0.15}, p, barPlot), nil
}

// corrGrid adapts a correlation matrix to the heatmap grid interface,
// masking the diagonal and upper triangle with NaN so those cells are not
// drawn. Matrix row 0 is displayed at the top.
type corrGrid struct {
	matrix [][]float64
}

func (g corrGrid) Dims() (c, r int) {
	return len(g.matrix), len(g.matrix)
}

func (g corrGrid) Z(c, r int) float64 {
	row := len(g.matrix) - 1 - r
	if c >= row {
		return math.NaN()
	}
	return g.matrix[row][c]
}

func (g corrGrid) X(c int) float64 { return float64(c) }
func (g corrGrid) Y(r int) float64 { return float64(r) }

// annotationLabels places the correlation value, to three decimals, at the
// center of every unmasked cell.
func annotationLabels(matrix [][]float64) (*plotter.Labels, error) {
	n := len(matrix)
	var xy plotter.XYs
	var texts []string
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			v := matrix[i][j]
			if math.IsNaN(v) {
				continue
			}
			xy = append(xy, plotter.XY{X: float64(j), Y: float64(n - 1 - i)})
			texts = append(texts, fmt.Sprintf("%.3f", v))
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xy, Labels: texts})
	if err != nil {
		return nil, errors.RenderError("building annotations", err)
	}
	return labels, nil
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}
