package analysis

import (
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courselens/domain/table"
)

func TestExtractTemporalFeatures(t *testing.T) {
	tbl := newTable(t,
		series.New([]string{"2020-03-15 10:30:00"}, series.String, "published_timestamp"),
	)

	out, err := ExtractTemporalFeatures(tbl, "published_timestamp")
	require.NoError(t, err)

	cases := []struct {
		column string
		want   float64
	}{
		{ColYear, 2020},
		{ColMonth, 3},
		{ColQuarter, 1},
		{ColDayOfYear, 75},
		{ColDayOfWeek, 6}, // 2020-03-15 is a Sunday, Monday-indexed
		{ColWeekOfYear, 11},
	}
	for _, tc := range cases {
		values, err := out.Floats(tc.column)
		if err != nil {
			t.Fatalf("Floats(%q): %v", tc.column, err)
		}
		if values[0] != tc.want {
			t.Errorf("%s = %v, want %v", tc.column, values[0], tc.want)
		}
	}
}

func TestExtractTemporalFeaturesQuarters(t *testing.T) {
	tbl := newTable(t,
		series.New([]string{
			"2020-01-01", "2020-03-31", "2020-04-01",
			"2020-06-30", "2020-10-01", "2020-12-31",
		}, series.String, "published_timestamp"),
	)

	out, err := ExtractTemporalFeatures(tbl, "published_timestamp")
	require.NoError(t, err)

	quarters, err := out.Floats(ColQuarter)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2, 2, 4, 4}, quarters)
}

func TestExtractTemporalFeaturesMondayIndexing(t *testing.T) {
	// 2024-01-01 is a Monday, 2024-01-07 a Sunday.
	tbl := newTable(t,
		series.New([]string{"2024-01-01", "2024-01-07"}, series.String, "published_timestamp"),
	)

	out, err := ExtractTemporalFeatures(tbl, "published_timestamp")
	require.NoError(t, err)

	dows, err := out.Floats(ColDayOfWeek)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 6}, dows)
}

func TestExtractTemporalFeaturesMissingEntries(t *testing.T) {
	tbl := newTable(t,
		series.New([]string{"2020-03-15", ""}, series.String, "published_timestamp"),
	)

	out, err := ExtractTemporalFeatures(tbl, "published_timestamp")
	require.NoError(t, err)

	years, err := out.Floats(ColYear)
	require.NoError(t, err)
	require.Len(t, years, 2)
	assert.Equal(t, 2020.0, years[0])

	missing, err := out.MissingCount(ColYear)
	require.NoError(t, err)
	assert.Equal(t, 1, missing)
}

func TestExtractTemporalFeaturesKeepsOriginalColumns(t *testing.T) {
	tbl := newTable(t,
		series.New([]float64{19.99}, series.Float, "price"),
		series.New([]string{"2020-03-15"}, series.String, "published_timestamp"),
	)

	out, err := ExtractTemporalFeatures(tbl, "published_timestamp")
	require.NoError(t, err)

	assert.True(t, out.HasColumn("price"))
	assert.Equal(t, tbl.NumCols()+6, out.NumCols())

	kind, err := out.Kind(ColYear)
	require.NoError(t, err)
	assert.Equal(t, table.Numeric, kind)
}

func TestExtractTemporalFeaturesUnparseableColumn(t *testing.T) {
	tbl := newTable(t,
		series.New([]string{"not-a-date"}, series.String, "published_timestamp"),
	)

	_, err := ExtractTemporalFeatures(tbl, "published_timestamp")
	assert.Error(t, err)
}
