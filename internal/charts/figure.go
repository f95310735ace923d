package charts

import (
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"courselens/internal/errors"
)

// Figure is a renderable grid of panels owned by the caller. Save encodes
// it as a PNG; the canvas lives only for the duration of the call, so no
// rendering resource outlives a Save on any path.
type Figure struct {
	panels     [][]*plot.Plot
	colWeights []float64
	width      vg.Length
	height     vg.Length
}

// Single wraps one plot as a figure of the given size.
func Single(p *plot.Plot, size Size) *Figure {
	w, h := size.lengths()
	return &Figure{panels: [][]*plot.Plot{{p}}, width: w, height: h}
}

// PanelRow lays out plots side by side. Weights give the relative width of
// each panel; nil means equal widths.
func PanelRow(size Size, weights []float64, plots ...*plot.Plot) *Figure {
	w, h := size.lengths()
	return &Figure{
		panels:     [][]*plot.Plot{plots},
		colWeights: weights,
		width:      w,
		height:     h,
	}
}

// Panel returns the plot at the given row and column, for callers that
// modify a figure before saving.
func (f *Figure) Panel(row, col int) *plot.Plot {
	return f.panels[row][col]
}

// Save renders the figure and writes it as a PNG at 150 DPI.
func (f *Figure) Save(path string) error {
	canvas := vgimg.NewWith(vgimg.UseWH(f.width, f.height), vgimg.UseDPI(saveDPI))
	dc := draw.New(canvas)

	rows := len(f.panels)
	rowHeight := f.height / vg.Length(rows)
	for r, row := range f.panels {
		widths := f.columnWidths(len(row))
		bottom := f.height - vg.Length(r+1)*rowHeight
		var x vg.Length
		for c, p := range row {
			if p != nil {
				cell := draw.Crop(dc,
					x, x+widths[c]-f.width,
					bottom, bottom+rowHeight-f.height,
				)
				p.Draw(cell)
			}
			x += widths[c]
		}
	}

	w, err := os.Create(path)
	if err != nil {
		return errors.FileError("creating "+path, err)
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return errors.RenderError("encoding "+path, err)
	}
	if err := w.Close(); err != nil {
		return errors.FileError("closing "+path, err)
	}
	return nil
}

// columnWidths splits the canvas width across n columns following the
// configured weights.
func (f *Figure) columnWidths(n int) []vg.Length {
	widths := make([]vg.Length, n)
	if len(f.colWeights) != n {
		for i := range widths {
			widths[i] = f.width / vg.Length(n)
		}
		return widths
	}

	var total float64
	for _, w := range f.colWeights {
		total += w
	}
	for i, w := range f.colWeights {
		widths[i] = vg.Length(w/total) * f.width
	}
	return widths
}
