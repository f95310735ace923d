package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOutliersIQR(t *testing.T) {
	// Interpolated quartiles Q1=3, Q3=7, IQR=4: bounds are [-3, 13].
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 100}

	result, err := DetectOutliersIQR(values, DefaultIQRMultiplier)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	assert.InDelta(t, -3.0, result.LowerBound, 1e-9)
	assert.InDelta(t, 13.0, result.UpperBound, 1e-9)
	assert.InDelta(t, 100.0/9.0, result.Percentage, 1e-9)
}

func TestDetectOutliersShortSequences(t *testing.T) {
	cases := []struct {
		name         string
		values       []float64
		lower, upper float64
	}{
		{"one element", []float64{7}, 7, 7},
		{"two elements", []float64{1, 2}, 0.5, 2.5},
		{"three elements", []float64{1, 2, 3}, 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := DetectOutliersIQR(tc.values, 1.5)
			require.NoError(t, err)
			assert.Equal(t, 0, result.Count)
			assert.InDelta(t, tc.lower, result.LowerBound, 1e-9)
			assert.InDelta(t, tc.upper, result.UpperBound, 1e-9)
		})
	}
}

func TestDetectOutliersBoundaryIsNotOutlier(t *testing.T) {
	// All values identical: bounds collapse onto the value itself, and
	// equality with a bound must not count.
	values := []float64{5, 5, 5, 5}

	result, err := DetectOutliersIQR(values, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
}

func TestDetectOutliersPercentageUsesFullLength(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 100, math.NaN()}

	result, err := DetectOutliersIQR(values, 1.5)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	assert.InDelta(t, 10.0, result.Percentage, 1e-9)
}

func TestDetectOutliersRejectsBadInput(t *testing.T) {
	cases := []struct {
		name       string
		values     []float64
		multiplier float64
	}{
		{"zero multiplier", []float64{1, 2, 3}, 0},
		{"negative multiplier", []float64{1, 2, 3}, -1},
		{"empty input", nil, 1.5},
		{"all missing", []float64{math.NaN(), math.NaN()}, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DetectOutliersIQR(tc.values, tc.multiplier)
			assert.Error(t, err)
		})
	}
}

func TestDetectOutliersWiderMultiplierFindsFewer(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 30}

	narrow, err := DetectOutliersIQR(values, 1.5)
	require.NoError(t, err)
	wide, err := DetectOutliersIQR(values, 10)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, narrow.Count, wide.Count)
	assert.Equal(t, 0, wide.Count)
}
