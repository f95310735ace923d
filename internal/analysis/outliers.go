package analysis

import (
	"math"
	"sort"

	domstats "courselens/domain/stats"
	"courselens/internal/errors"
)

// DefaultIQRMultiplier is the conventional Tukey fence multiplier.
const DefaultIQRMultiplier = 1.5

// DetectOutliersIQR flags values outside the Tukey fences
// [Q1 - multiplier*IQR, Q3 + multiplier*IQR]. Quartiles are interpolated
// quantiles over the non-missing values only, defined for any non-empty
// input; a value is an outlier iff it is strictly
// below the lower bound or strictly above the upper bound. The reported
// percentage uses the full input length as denominator, missing entries
// included.
//
// A non-positive multiplier would invert the fences, so it is rejected with
// a validation error.
func DetectOutliersIQR(values []float64, multiplier float64) (domstats.OutlierResult, error) {
	if multiplier <= 0 {
		return domstats.OutlierResult{}, errors.ValidationError("IQR multiplier must be positive")
	}

	clean := dropMissing(values)
	if len(clean) == 0 {
		return domstats.OutlierResult{}, errors.ValidationError("no non-missing values to analyze")
	}

	sorted := append([]float64(nil), clean...)
	sort.Float64s(sorted)
	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)

	iqr := q3 - q1
	lower := q1 - multiplier*iqr
	upper := q3 + multiplier*iqr

	count := 0
	for _, v := range clean {
		if v < lower || v > upper {
			count++
		}
	}

	return domstats.OutlierResult{
		Count:      count,
		Percentage: float64(count) / float64(len(values)) * 100,
		LowerBound: lower,
		UpperBound: upper,
	}, nil
}

// quantile returns the p-quantile (0 <= p <= 1) of sorted data, linearly
// interpolating between adjacent order statistics. A single observation is
// every quantile of itself.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	i := int(h)
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}

// dropMissing filters NaN and infinite entries from a sequence.
func dropMissing(values []float64) []float64 {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		clean = append(clean, v)
	}
	return clean
}
