package analysis

import (
	"math"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryStats(t *testing.T) {
	tbl := newTable(t,
		series.New([]float64{2, 4, 4, 4, 5, 5, 7, 9}, series.Float, "price"),
	)

	summaries, err := SummaryStats(tbl, []string{"price"})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "price", s.Column)
	assert.Equal(t, 8, s.Count)
	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.InDelta(t, 2.0, s.Min, 1e-9)
	assert.InDelta(t, 9.0, s.Max, 1e-9)
	assert.InDelta(t, 4.5, s.Median, 1e-9)
	assert.InDelta(t, 4.0, s.Q25, 1e-9)
	assert.InDelta(t, 5.5, s.Q75, 1e-9)
	assert.InDelta(t, 2.13808993529939, s.Std, 1e-9)
	assert.Equal(t, 0, s.Missing)
}

func TestSummaryStatsSkipsMissing(t *testing.T) {
	tbl := newTable(t,
		series.New([]float64{1, 2, 3, math.NaN()}, series.Float, "reviews"),
	)

	summaries, err := SummaryStats(tbl, []string{"reviews"})
	require.NoError(t, err)

	s := summaries[0]
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 1, s.Missing)
	assert.InDelta(t, 25.0, s.MissingPct, 1e-9)
	assert.InDelta(t, 2.0, s.Mean, 1e-9)
}

func TestSummaryStatsConstantColumn(t *testing.T) {
	tbl := newTable(t,
		series.New([]float64{5, 5, 5, 5, 5}, series.Float, "price"),
	)

	summaries, err := SummaryStats(tbl, []string{"price"})
	require.NoError(t, err)

	s := summaries[0]
	assert.InDelta(t, 0.0, s.Std, 1e-12)
	assert.True(t, math.IsNaN(s.Skew), "skew of a constant column is undefined")
	assert.True(t, math.IsNaN(s.Kurtosis), "kurtosis of a constant column is undefined")
}

func TestSummaryStatsSmallSamples(t *testing.T) {
	tbl := newTable(t,
		series.New([]float64{1, 2, math.NaN(), math.NaN()}, series.Float, "two"),
		series.New([]float64{1, 2, 4, math.NaN()}, series.Float, "three"),
	)

	summaries, err := SummaryStats(tbl, []string{"two", "three"})
	require.NoError(t, err)

	two, three := summaries[0], summaries[1]
	assert.True(t, math.IsNaN(two.Skew), "skew needs at least 3 observations")
	assert.False(t, math.IsNaN(three.Skew))
	assert.True(t, math.IsNaN(three.Kurtosis), "kurtosis needs at least 4 observations")

	// Quartiles interpolate even below four observations.
	assert.InDelta(t, 1.25, two.Q25, 1e-9)
	assert.InDelta(t, 1.75, two.Q75, 1e-9)
}

func TestSummaryStatsSingleValue(t *testing.T) {
	tbl := newTable(t,
		series.New([]float64{42}, series.Float, "lone"),
	)

	summaries, err := SummaryStats(tbl, []string{"lone"})
	require.NoError(t, err)

	s := summaries[0]
	assert.Equal(t, 1, s.Count)
	assert.InDelta(t, 42.0, s.Mean, 1e-9)
	assert.True(t, math.IsNaN(s.Std), "sample std of one observation is undefined")
}

func TestSummaryStatsKnownSkewness(t *testing.T) {
	// Bias-corrected G1 statistic for {1,2,3,4,100}.
	tbl := newTable(t,
		series.New([]float64{1, 2, 3, 4, 100}, series.Float, "subs"),
	)

	summaries, err := SummaryStats(tbl, []string{"subs"})
	require.NoError(t, err)

	assert.InDelta(t, 2.2324, summaries[0].Skew, 1e-3)
}

func TestSummaryStatsRejectsBadRequests(t *testing.T) {
	tbl := newTable(t,
		series.New([]float64{1, 2}, series.Float, "price"),
		series.New([]string{"a", "b"}, series.String, "subject"),
	)

	_, err := SummaryStats(tbl, nil)
	assert.Error(t, err)

	_, err = SummaryStats(tbl, []string{"subject"})
	assert.Error(t, err)

	_, err = SummaryStats(tbl, []string{"absent"})
	assert.Error(t, err)
}
