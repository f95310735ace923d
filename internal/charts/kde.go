package charts

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// kdePoints is the number of evaluation points for density curves.
const kdePoints = 200

// gaussianKDE evaluates a gaussian kernel density estimate of the data over
// an evenly spaced grid spanning the data range. Bandwidth follows
// Silverman's rule of thumb. Returns nil slices when the data has no
// spread, in which case the density overlay is simply omitted.
func gaussianKDE(data []float64) (xs, ys []float64) {
	n := len(data)
	if n < 2 {
		return nil, nil
	}

	sigma, err := stats.StandardDeviationSample(data)
	if err != nil || sigma <= 0 || math.IsNaN(sigma) {
		return nil, nil
	}
	bw := 1.06 * sigma * math.Pow(float64(n), -0.2)

	lo, _ := stats.Min(data)
	hi, _ := stats.Max(data)
	// Extend the grid past the extremes so the curve tails off visibly.
	lo -= 3 * bw
	hi += 3 * bw

	kernel := distuv.Normal{Mu: 0, Sigma: 1}
	xs = make([]float64, kdePoints)
	ys = make([]float64, kdePoints)
	step := (hi - lo) / float64(kdePoints-1)
	for i := range xs {
		x := lo + float64(i)*step
		density := 0.0
		for _, v := range data {
			density += kernel.Prob((x - v) / bw)
		}
		xs[i] = x
		ys[i] = density / (float64(n) * bw)
	}
	return xs, ys
}
