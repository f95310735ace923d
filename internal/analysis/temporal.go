package analysis

import (
	"strconv"
	"time"

	"github.com/go-gota/gota/series"

	"courselens/domain/table"
)

// Temporal feature column names added by ExtractTemporalFeatures.
const (
	ColYear       = "year"
	ColMonth      = "month"
	ColDayOfWeek  = "day_of_week"
	ColQuarter    = "quarter"
	ColDayOfYear  = "day_of_year"
	ColWeekOfYear = "week_of_year"
)

// ExtractTemporalFeatures returns a new table carrying the original columns
// plus six integer calendar features derived from a timestamp column: year,
// month (1-12), day of week (Monday=0), quarter (1-4), ordinal day of year
// and ISO-8601 week of year. A column that is not already tagged as a
// timestamp is coerced first; coercion failure is a parse error. Rows with
// a missing timestamp get NA in every derived column.
func ExtractTemporalFeatures(t table.Table, column string) (table.Table, error) {
	times, err := coerceTimes(t, column)
	if err != nil {
		return table.Table{}, err
	}

	features := []struct {
		name    string
		extract func(time.Time) int
	}{
		{ColYear, func(ts time.Time) int { return ts.Year() }},
		{ColMonth, func(ts time.Time) int { return int(ts.Month()) }},
		{ColDayOfWeek, mondayIndexedWeekday},
		{ColQuarter, func(ts time.Time) int { return (int(ts.Month())-1)/3 + 1 }},
		{ColDayOfYear, func(ts time.Time) int { return ts.YearDay() }},
		{ColWeekOfYear, isoWeek},
	}

	out := t
	for _, f := range features {
		records := make([]string, len(times))
		for i, ts := range times {
			if ts.IsZero() {
				records[i] = "NA"
				continue
			}
			records[i] = strconv.Itoa(f.extract(ts))
		}
		out, err = out.WithColumn(series.New(records, series.Int, f.name), table.Numeric)
		if err != nil {
			return table.Table{}, err
		}
	}

	return out, nil
}

// coerceTimes resolves a column to parsed timestamps, parsing textual
// records when the column is not already a timestamp column.
func coerceTimes(t table.Table, column string) ([]time.Time, error) {
	kind, err := t.Kind(column)
	if err != nil {
		return nil, err
	}
	if kind == table.Timestamp {
		return t.Times(column)
	}

	records, err := t.Records(column)
	if err != nil {
		return nil, err
	}
	return table.ParseTimestamps(records)
}

// mondayIndexedWeekday maps Go's Sunday-first weekday to the Monday=0
// convention used by the derived day_of_week column.
func mondayIndexedWeekday(ts time.Time) int {
	return (int(ts.Weekday()) + 6) % 7
}

func isoWeek(ts time.Time) int {
	_, week := ts.ISOWeek()
	return week
}
