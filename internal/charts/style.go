// Package charts renders analysis results as figures. Rendering and
// persistence are two explicit steps: every helper returns a Figure the
// caller owns, and the caller decides whether to call Save. No global
// presentation state exists - all styling travels in explicit option
// values.
package charts

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Raster output resolution for persisted figures.
const saveDPI = 150

// Palette colors shared by the plotting helpers and the demo charts.
var (
	SteelBlue = color.RGBA{R: 0x46, G: 0x82, B: 0xB4, A: 0xFF}
	Primary   = color.RGBA{R: 0x5A, G: 0x4F, B: 0xCF, A: 0xFF}
	Secondary = color.RGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}
	Accent    = color.RGBA{R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF}
	Neutral   = color.RGBA{R: 0x95, G: 0xA5, B: 0xA6, A: 0xFF}

	meanLineColor   = color.RGBA{R: 0xD6, G: 0x2B, B: 0x2B, A: 0xFF}
	medianLineColor = color.RGBA{R: 0x2E, G: 0x8B, B: 0x57, A: 0xFF}
)

// Size is a figure size in inches.
type Size struct {
	Width  float64
	Height float64
}

func (s Size) lengths() (w, h vg.Length) {
	return vg.Length(s.Width) * vg.Inch, vg.Length(s.Height) * vg.Inch
}

// DistributionOptions configures a distribution plot. The zero value uses a
// 10x6 inch canvas, steel blue fill, 30 bins and the "Distribution of
// {column}" title.
type DistributionOptions struct {
	Size  Size
	Color color.Color
	Title string
	Bins  int
}

func (o DistributionOptions) withDefaults(column string) DistributionOptions {
	if o.Size.Width <= 0 || o.Size.Height <= 0 {
		o.Size = Size{Width: 10, Height: 6}
	}
	if o.Color == nil {
		o.Color = SteelBlue
	}
	if o.Title == "" && column != "" {
		o.Title = "Distribution of " + column
	}
	if o.Bins <= 0 {
		o.Bins = 30
	}
	return o
}

// HeatmapOptions configures a correlation heatmap. The zero value uses a
// 10x8 inch canvas and the "Correlation Matrix" title.
type HeatmapOptions struct {
	Size  Size
	Title string
}

func (o HeatmapOptions) withDefaults() HeatmapOptions {
	if o.Size.Width <= 0 || o.Size.Height <= 0 {
		o.Size = Size{Width: 10, Height: 8}
	}
	if o.Title == "" {
		o.Title = "Correlation Matrix"
	}
	return o
}
