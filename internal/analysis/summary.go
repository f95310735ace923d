package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	domstats "courselens/domain/stats"
	"courselens/domain/table"
	"courselens/internal/errors"
)

// SummaryStats computes descriptive statistics for the requested numeric
// columns, one ColumnSummary per column in the order requested. Every
// column must exist and be numeric. Statistics are computed over the
// non-missing values, with quartiles and the median interpolated linearly
// between order statistics; missing counts and percentages are reported
// against the full row count.
func SummaryStats(t table.Table, columns []string) ([]domstats.ColumnSummary, error) {
	if len(columns) == 0 {
		return nil, errors.ValidationError("no columns requested")
	}

	rows := t.NumRows()
	out := make([]domstats.ColumnSummary, 0, len(columns))

	for _, name := range columns {
		values, err := t.Floats(name)
		if err != nil {
			return nil, err
		}
		clean := dropMissing(values)
		missing := len(values) - len(clean)

		summary := domstats.ColumnSummary{
			Column:   name,
			Count:    len(clean),
			Missing:  missing,
			Skew:     math.NaN(),
			Kurtosis: math.NaN(),
		}
		if rows > 0 {
			summary.MissingPct = float64(missing) / float64(rows) * 100
		}

		if len(clean) > 0 {
			sorted := append([]float64(nil), clean...)
			sort.Float64s(sorted)

			summary.Mean, _ = stats.Mean(clean)
			summary.Std, _ = stats.StandardDeviationSample(clean)
			summary.Min = sorted[0]
			summary.Max = sorted[len(sorted)-1]
			summary.Q25 = quantile(sorted, 0.25)
			summary.Median = quantile(sorted, 0.5)
			summary.Q75 = quantile(sorted, 0.75)
			summary.Skew = sampleSkewness(clean, summary.Mean)
			summary.Kurtosis = sampleKurtosis(clean, summary.Mean)
		}
		if len(clean) == 1 {
			// Sample std needs at least two observations.
			summary.Std = math.NaN()
		}

		out = append(out, summary)
	}

	return out, nil
}

// sampleSkewness computes the bias-adjusted Fisher-Pearson skewness
// estimator G1. Undefined (NaN) for fewer than three observations or zero
// variance.
func sampleSkewness(data []float64, mean float64) float64 {
	n := float64(len(data))
	if n < 3 {
		return math.NaN()
	}

	var m2, m3 float64
	for _, x := range data {
		d := x - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return math.NaN()
	}

	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// sampleKurtosis computes the bias-adjusted excess kurtosis estimator G2
// (Fisher's definition: a normal distribution scores 0). Undefined (NaN)
// for fewer than four observations or zero variance.
func sampleKurtosis(data []float64, mean float64) float64 {
	n := float64(len(data))
	if n < 4 {
		return math.NaN()
	}

	var m2, m4 float64
	for _, x := range data {
		d := x - mean
		m2 += d * d
		m4 += d * d * d * d
	}
	m2 /= n
	m4 /= n
	if m2 == 0 {
		return math.NaN()
	}

	g2 := m4/(m2*m2) - 3
	return ((n+1)*g2 + 6) * (n - 1) / ((n - 2) * (n - 3))
}
