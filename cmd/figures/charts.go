package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"courselens/domain/table"
	"courselens/internal/analysis"
	"courselens/internal/charts"
	"courselens/internal/errors"
	"courselens/internal/format"
	"courselens/internal/testkit"
)

func numericColumns() []string {
	return []string{
		testkit.ColPrice,
		testkit.ColSubscribers,
		testkit.ColReviews,
		testkit.ColLectures,
		testkit.ColContentDuration,
	}
}

func correlationMatrixChart(t table.Table, path string) error {
	fig, err := charts.CorrelationHeatmap(t, numericColumns(), charts.HeatmapOptions{
		Title: "Feature Correlation Matrix",
	})
	if err != nil {
		return err
	}
	return fig.Save(path)
}

func subjectPieChart(t table.Table, path string) error {
	labels, counts, err := categoryCounts(t, testkit.ColSubject)
	if err != nil {
		return err
	}

	palette := []color.Color{charts.Primary, charts.Accent, charts.Secondary, charts.Neutral}
	slices := make([]charts.PieSlice, len(labels))
	for i := range labels {
		slices[i] = charts.PieSlice{
			Label: labels[i],
			Value: counts[i],
			Color: palette[i%len(palette)],
		}
	}

	p, err := charts.PiePlot("Course Distribution by Subject", slices)
	if err != nil {
		return err
	}
	return charts.Single(p, charts.Size{Width: 10, Height: 8}).Save(path)
}

func subscribersChart(t table.Table, path string) error {
	subs, err := positiveFloats(t, testkit.ColSubscribers)
	if err != nil {
		return err
	}
	logs := make([]float64, len(subs))
	for i, v := range subs {
		logs[i] = math.Log10(v)
	}

	p, top, err := charts.Histogram(logs, charts.DistributionOptions{
		Title: "Distribution of Subscribers (log10 scale)",
		Color: charts.Accent,
		Bins:  50,
	})
	if err != nil {
		return err
	}
	p.X.Label.Text = "log10(Number of Subscribers)"
	p.Y.Label.Text = "Frequency"

	// Guide lines mark round subscriber counts on the log axis.
	guides := plotter.XYLabels{}
	for _, exp := range []float64{2, 3, 4, 5} {
		line, err := charts.VLine(exp, 0, top, charts.DottedLine(charts.Neutral))
		if err != nil {
			return err
		}
		p.Add(line)
		guides.XYs = append(guides.XYs, plotter.XY{X: exp, Y: top * 0.95})
		guides.Labels = append(guides.Labels, format.LargeNumber(math.Pow(10, exp)))
	}
	marks, err := plotter.NewLabels(guides)
	if err != nil {
		return errors.RenderError("building guide labels", err)
	}
	for i := range marks.TextStyle {
		marks.TextStyle[i].XAlign = text.XCenter
	}
	p.Add(marks)

	return charts.Single(p, charts.Size{Width: 12, Height: 6}).Save(path)
}

func priceVsSubscribersChart(t table.Table, path string) error {
	prices, err := t.Floats(testkit.ColPrice)
	if err != nil {
		return err
	}
	subs, err := t.Floats(testkit.ColSubscribers)
	if err != nil {
		return err
	}

	var pts plotter.XYs
	for i := range prices {
		if prices[i] > 0 && subs[i] > 0 {
			pts = append(pts, plotter.XY{X: prices[i], Y: subs[i]})
		}
	}
	if len(pts) == 0 {
		return errors.ValidationError("no paid courses with subscribers to plot")
	}

	p := plot.New()
	p.Title.Text = "Price vs Subscribers for Paid Courses"
	p.X.Label.Text = "Price ($)"
	p.Y.Label.Text = "Number of Subscribers"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.RenderError("building scatter", err)
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  withAlpha(charts.Primary, 0x66),
		Radius: vg.Points(2),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(scatter)

	return charts.Single(p, charts.Size{Width: 12, Height: 6}).Save(path)
}

func yearlyTrendChart(t table.Table, path string) error {
	years, counts, err := yearCounts(t)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Course Publications Over Time"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of Courses Published"

	bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(28))
	if err != nil {
		return errors.RenderError("building year bars", err)
	}
	bars.Color = withAlpha(charts.Primary, 0xCC)
	bars.LineStyle.Width = 0
	p.Add(bars)

	pts := make(plotter.XYs, len(counts))
	for i, c := range counts {
		pts[i] = plotter.XY{X: float64(i), Y: c}
	}
	line, markers, err := plotter.NewLinePoints(pts)
	if err != nil {
		return errors.RenderError("building trend line", err)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = charts.Secondary
	markers.GlyphStyle = draw.GlyphStyle{
		Color:  charts.Secondary,
		Radius: vg.Points(4),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(line, markers)

	// Annotate year-over-year growth when it moves more than ten percent.
	growth := plotter.XYLabels{}
	for i := 1; i < len(counts); i++ {
		if counts[i-1] == 0 {
			continue
		}
		pct := (counts[i] - counts[i-1]) / counts[i-1] * 100
		if math.Abs(pct) <= 10 {
			continue
		}
		growth.XYs = append(growth.XYs, plotter.XY{X: float64(i), Y: counts[i]})
		growth.Labels = append(growth.Labels, fmt.Sprintf("%+.0f%%", pct))
	}
	if len(growth.Labels) > 0 {
		notes, err := plotter.NewLabels(growth)
		if err != nil {
			return errors.RenderError("building growth labels", err)
		}
		notes.Offset = vg.Point{Y: vg.Points(10)}
		for i := range notes.TextStyle {
			notes.TextStyle[i].XAlign = text.XCenter
			notes.TextStyle[i].Color = charts.Secondary
		}
		p.Add(notes)
	}

	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = fmt.Sprintf("%d", y)
	}
	p.NominalX(labels...)

	return charts.Single(p, charts.Size{Width: 14, Height: 6}).Save(path)
}

func freeVsPaidChart(t table.Table, path string) error {
	prices, err := t.Floats(testkit.ColPrice)
	if err != nil {
		return err
	}
	subs, err := t.Floats(testkit.ColSubscribers)
	if err != nil {
		return err
	}

	var freeSubs, paidSubs plotter.Values
	freeCount, paidCount := 0.0, 0.0
	for i := range prices {
		if math.IsNaN(prices[i]) {
			continue
		}
		if prices[i] > 0 {
			paidCount++
			if subs[i] > 0 {
				paidSubs = append(paidSubs, subs[i])
			}
		} else {
			freeCount++
			if subs[i] > 0 {
				freeSubs = append(freeSubs, subs[i])
			}
		}
	}

	boxes := plot.New()
	boxes.Title.Text = "Subscriber Distribution: Free vs Paid"
	boxes.Y.Label.Text = "Subscribers (log scale)"
	boxes.Y.Scale = plot.LogScale{}
	boxes.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	for i, group := range []struct {
		values plotter.Values
		color  color.RGBA
	}{
		{freeSubs, charts.Accent},
		{paidSubs, charts.Secondary},
	} {
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), group.values)
		if err != nil {
			return errors.RenderError("building subscriber box plot", err)
		}
		box.FillColor = withAlpha(group.color, 0xB3)
		boxes.Add(box)
	}
	boxes.NominalX("Free", "Paid")

	pie, err := charts.PiePlot("Course Distribution: Free vs Paid", []charts.PieSlice{
		{Label: "Free", Value: freeCount, Color: charts.Accent},
		{Label: "Paid", Value: paidCount, Color: charts.Secondary},
	})
	if err != nil {
		return err
	}

	fig := charts.PanelRow(charts.Size{Width: 14, Height: 5}, []float64{0.55, 0.45}, boxes, pie)
	return fig.Save(path)
}

func subjectTrendsChart(t table.Table, path string) error {
	years, subjects, grid, err := yearSubjectCounts(t)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Subject Category Trends Over Time"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of Courses"

	palette := []color.RGBA{charts.Primary, charts.Accent, charts.Secondary, charts.Neutral}
	xs := make([]float64, len(years))
	for i := range years {
		xs[i] = float64(i)
	}
	layers := make([]charts.Layer, len(subjects))
	for i, subject := range subjects {
		layers[i] = charts.Layer{
			Name:   subject,
			Values: grid[i],
			Color:  withAlpha(palette[i%len(palette)], 0xCC),
		}
	}
	if err := charts.AddStackedArea(p, xs, layers); err != nil {
		return err
	}

	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = fmt.Sprintf("%d", y)
	}
	p.NominalX(labels...)
	p.Legend.Top = true
	p.Legend.Left = true

	return charts.Single(p, charts.Size{Width: 14, Height: 6}).Save(path)
}

func levelChart(t table.Table, path string) error {
	labels, counts, err := categoryCounts(t, testkit.ColLevel)
	if err != nil {
		return err
	}

	// Horizontal bars read bottom-up, so reverse to put the largest on top.
	reverseStrings(labels)
	reverseFloats(counts)

	p := plot.New()
	p.Title.Text = "Course Distribution by Difficulty Level"
	p.X.Label.Text = "Number of Courses"

	bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(24))
	if err != nil {
		return errors.RenderError("building level bars", err)
	}
	bars.Horizontal = true
	bars.Color = charts.Primary
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(labels...)

	max := 0.0
	marks := plotter.XYLabels{}
	for i, c := range counts {
		if c > max {
			max = c
		}
		marks.XYs = append(marks.XYs, plotter.XY{X: c, Y: float64(i)})
		marks.Labels = append(marks.Labels, humanize.Comma(int64(c)))
	}
	notes, err := plotter.NewLabels(marks)
	if err != nil {
		return errors.RenderError("building count labels", err)
	}
	notes.Offset = vg.Point{X: vg.Points(6)}
	for i := range notes.TextStyle {
		notes.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(notes)
	p.X.Max = max * 1.15

	return charts.Single(p, charts.Size{Width: 10, Height: 6}).Save(path)
}

func priceChart(t table.Table, path string) error {
	prices, err := positiveFloats(t, testkit.ColPrice)
	if err != nil {
		return err
	}

	hist, top, err := charts.Histogram(prices, charts.DistributionOptions{
		Title: "Distribution of Course Prices",
		Color: withAlpha(charts.Primary, 0xB3),
		Bins:  30,
	})
	if err != nil {
		return err
	}
	hist.X.Label.Text = "Price ($)"

	mean, _ := stats.Mean(prices)
	median, _ := stats.Median(prices)
	meanLine, err := charts.VLine(mean, 0, top, charts.DashedLine(charts.Secondary))
	if err != nil {
		return err
	}
	medianLine, err := charts.VLine(median, 0, top, charts.DashDotLine(charts.Accent))
	if err != nil {
		return err
	}
	hist.Add(meanLine, medianLine)
	hist.Legend.Add(fmt.Sprintf("Mean: $%.2f", mean), meanLine)
	hist.Legend.Add(fmt.Sprintf("Median: $%.2f", median), medianLine)
	hist.Legend.Top = true

	box := plot.New()
	box.Title.Text = "Box Plot of Course Prices"
	box.X.Label.Text = "Price ($)"
	horiz, err := plotter.NewBoxPlot(vg.Points(50), 0, plotter.Values(prices))
	if err != nil {
		return errors.RenderError("building price box plot", err)
	}
	horiz.Horizontal = true
	horiz.FillColor = charts.Primary
	box.Add(horiz)
	box.NominalY("")

	fig := charts.PanelRow(charts.Size{Width: 14, Height: 5}, []float64{0.5, 0.5}, hist, box)
	return fig.Save(path)
}

func bannerChart(_ table.Table, path string) error {
	p := plot.New()
	p.HideAxes()

	heat := plotter.NewHeatMap(waveGrid{cols: 100, rows: 50}, bluesPalette(20, 0x4D))
	p.Add(heat)

	circles := plotter.XYs{
		{X: 1.5, Y: 2}, {X: 8.5, Y: 2}, {X: 2.5, Y: 3.2}, {X: 7.5, Y: 0.8},
	}
	styles := []draw.GlyphStyle{
		{Color: withAlpha(charts.Primary, 0x4D), Radius: vg.Points(60), Shape: draw.CircleGlyph{}},
		{Color: withAlpha(charts.Accent, 0x4D), Radius: vg.Points(60), Shape: draw.CircleGlyph{}},
		{Color: withAlpha(charts.Secondary, 0x4D), Radius: vg.Points(30), Shape: draw.CircleGlyph{}},
		{Color: withAlpha(charts.Secondary, 0x4D), Radius: vg.Points(30), Shape: draw.CircleGlyph{}},
	}
	dots, err := plotter.NewScatter(circles)
	if err != nil {
		return errors.RenderError("building banner accents", err)
	}
	dots.GlyphStyleFunc = func(i int) draw.GlyphStyle { return styles[i] }
	p.Add(dots)

	titles, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: 5, Y: 2.2}, {X: 5, Y: 1.2}},
		Labels: []string{"Online Course Catalog", "Exploratory Data Analysis"},
	})
	if err != nil {
		return errors.RenderError("building banner titles", err)
	}
	titles.TextStyle[0].Font.Size = vg.Points(42)
	titles.TextStyle[0].Color = color.RGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF}
	titles.TextStyle[1].Font.Size = vg.Points(24)
	titles.TextStyle[1].Color = charts.Primary
	for i := range titles.TextStyle {
		titles.TextStyle[i].XAlign = text.XCenter
		titles.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(titles)

	p.X.Min, p.X.Max = 0, 10
	p.Y.Min, p.Y.Max = 0, 4

	return charts.Single(p, charts.Size{Width: 16, Height: 4}).Save(path)
}

// waveGrid is the banner's decorative background field.
type waveGrid struct {
	cols, rows int
}

func (g waveGrid) Dims() (c, r int) { return g.cols, g.rows }
func (g waveGrid) X(c int) float64  { return 10 * float64(c) / float64(g.cols-1) }
func (g waveGrid) Y(r int) float64  { return 4 * float64(r) / float64(g.rows-1) }
func (g waveGrid) Z(c, r int) float64 {
	return math.Sin(g.X(c)*0.5) * math.Cos(g.Y(r)*0.5) * 0.5
}

type staticPalette []color.Color

func (p staticPalette) Colors() []color.Color { return p }

// bluesPalette interpolates from near-white to deep blue with the given
// alpha, approximating a translucent sequential blue ramp.
func bluesPalette(n int, alpha uint8) staticPalette {
	light := [3]float64{247, 251, 255}
	dark := [3]float64{8, 48, 107}
	out := make(staticPalette, n)
	for i := range out {
		f := float64(i) / float64(n-1)
		out[i] = color.NRGBA{
			R: uint8(light[0] + f*(dark[0]-light[0])),
			G: uint8(light[1] + f*(dark[1]-light[1])),
			B: uint8(light[2] + f*(dark[2]-light[2])),
			A: alpha,
		}
	}
	return out
}

func withAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func positiveFloats(t table.Table, column string) ([]float64, error) {
	values, err := t.Floats(column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, errors.ColumnError(column, "no positive values")
	}
	return out, nil
}

// categoryCounts tallies a categorical column and returns labels ordered by
// descending count, ties broken alphabetically.
func categoryCounts(t table.Table, column string) ([]string, []float64, error) {
	records, err := t.Records(column)
	if err != nil {
		return nil, nil, err
	}
	tally := map[string]float64{}
	for _, rec := range records {
		if rec == "" || rec == "NA" || rec == "NaN" {
			continue
		}
		tally[rec]++
	}
	labels := make([]string, 0, len(tally))
	for label := range tally {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if tally[labels[i]] != tally[labels[j]] {
			return tally[labels[i]] > tally[labels[j]]
		}
		return labels[i] < labels[j]
	})
	counts := make([]float64, len(labels))
	for i, label := range labels {
		counts[i] = tally[label]
	}
	return labels, counts, nil
}

// yearCounts tallies the derived publication year column in ascending order.
func yearCounts(t table.Table) ([]int, []float64, error) {
	values, err := t.Floats(analysis.ColYear)
	if err != nil {
		return nil, nil, err
	}
	tally := map[int]float64{}
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		tally[int(v)]++
	}
	years := make([]int, 0, len(tally))
	for y := range tally {
		years = append(years, y)
	}
	sort.Ints(years)
	counts := make([]float64, len(years))
	for i, y := range years {
		counts[i] = tally[y]
	}
	return years, counts, nil
}

// yearSubjectCounts builds a per-subject count series over the sorted years.
// Subjects come back alphabetically, grid[i][j] holding subject i's count in
// year j.
func yearSubjectCounts(t table.Table) ([]int, []string, [][]float64, error) {
	years, _, err := yearCounts(t)
	if err != nil {
		return nil, nil, nil, err
	}
	yearIdx := make(map[int]int, len(years))
	for i, y := range years {
		yearIdx[y] = i
	}

	yearValues, err := t.Floats(analysis.ColYear)
	if err != nil {
		return nil, nil, nil, err
	}
	subjectRecords, err := t.Records(testkit.ColSubject)
	if err != nil {
		return nil, nil, nil, err
	}

	perSubject := map[string][]float64{}
	for i := range yearValues {
		if math.IsNaN(yearValues[i]) {
			continue
		}
		subject := subjectRecords[i]
		if subject == "" || subject == "NA" || subject == "NaN" {
			continue
		}
		row, ok := perSubject[subject]
		if !ok {
			row = make([]float64, len(years))
			perSubject[subject] = row
		}
		row[yearIdx[int(yearValues[i])]]++
	}

	subjects := make([]string, 0, len(perSubject))
	for subject := range perSubject {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	grid := make([][]float64, len(subjects))
	for i, subject := range subjects {
		grid[i] = perSubject[subject]
	}
	return years, subjects, grid, nil
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseFloats(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
