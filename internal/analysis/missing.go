// Package analysis implements the exploratory-data-analysis computations:
// missing-value reporting, IQR outlier detection, summary statistics,
// pairwise correlation and temporal feature extraction. Every function is
// stateless and leaves its inputs untouched.
package analysis

import (
	"sort"

	domstats "courselens/domain/stats"
	"courselens/domain/table"
)

// AnalyzeMissingValues computes per-column missing counts and percentages.
// Only columns with at least one missing value appear in the report; rows
// are sorted by percentage descending, ties broken by the table's original
// column order. An empty report stands for "no missing values" and prints
// the sentinel message.
func AnalyzeMissingValues(t table.Table) (domstats.MissingReport, error) {
	rows := t.NumRows()
	report := domstats.MissingReport{TotalRows: rows}

	for _, name := range t.Names() {
		count, err := t.MissingCount(name)
		if err != nil {
			return domstats.MissingReport{}, err
		}
		if count == 0 {
			continue
		}

		kind, err := t.Kind(name)
		if err != nil {
			return domstats.MissingReport{}, err
		}

		pct := 0.0
		if rows > 0 {
			pct = float64(count) / float64(rows) * 100
		}
		report.Columns = append(report.Columns, domstats.MissingColumn{
			Column:     name,
			Count:      count,
			Percentage: pct,
			Kind:       kind,
		})
	}

	// Stable sort keeps the original column order for equal percentages.
	sort.SliceStable(report.Columns, func(i, j int) bool {
		return report.Columns[i].Percentage > report.Columns[j].Percentage
	})

	return report, nil
}
