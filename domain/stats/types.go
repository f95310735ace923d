// Package stats holds the result types produced by the analysis helpers.
package stats

import (
	"fmt"
	"strings"

	"courselens/domain/table"
)

// NoMissingMessage is the sentinel result reported when no column of a
// table has missing values. It is a designed outcome, not an error.
const NoMissingMessage = "No missing values detected."

// MissingColumn is one row of a missing-value report.
type MissingColumn struct {
	Column     string
	Count      int
	Percentage float64
	Kind       table.Kind
}

// MissingReport lists the columns of a table that contain missing values,
// sorted by missing percentage descending with ties kept in the table's
// original column order.
type MissingReport struct {
	Columns   []MissingColumn
	TotalRows int
}

// Empty reports whether no column had missing values.
func (r MissingReport) Empty() bool {
	return len(r.Columns) == 0
}

func (r MissingReport) String() string {
	if r.Empty() {
		return NoMissingMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "missing values in %d columns (%d rows checked):\n", len(r.Columns), r.TotalRows)
	for _, c := range r.Columns {
		fmt.Fprintf(&b, "  %-24s %6d  %6.2f%%  (%s)\n", c.Column, c.Count, c.Percentage, c.Kind)
	}
	return b.String()
}

// OutlierResult describes the IQR-based outliers of one numeric sequence.
// LowerBound <= UpperBound whenever the interquartile range is non-negative,
// and Count never exceeds the number of non-missing values.
type OutlierResult struct {
	Count      int
	Percentage float64
	LowerBound float64
	UpperBound float64
}

// ColumnSummary is one row of a summary-statistics table: the standard
// descriptive statistics of a numeric column plus distribution shape and
// missingness. Skew and Kurtosis are NaN when undefined (fewer than 3/4
// observations or zero variance).
type ColumnSummary struct {
	Column     string
	Count      int
	Mean       float64
	Std        float64
	Min        float64
	Q25        float64
	Median     float64
	Q75        float64
	Max        float64
	Skew       float64
	Kurtosis   float64
	Missing    int
	MissingPct float64
}
