// Package excel persists analysis results as spreadsheet workbooks so they
// can be reviewed outside the toolchain.
package excel

import (
	"math"

	"github.com/xuri/excelize/v2"

	domstats "courselens/domain/stats"
	"courselens/internal/errors"
)

const (
	summarySheet = "Summary"
	missingSheet = "Missing"
)

var summaryHeader = []string{
	"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max",
	"skew", "kurtosis", "missing", "missing_pct",
}

var missingHeader = []string{"column", "kind", "missing_count", "missing_pct"}

// WriteReport writes per-column summary statistics and the missing-value
// report into a two-sheet workbook at path. NaN statistics are written as
// the literal string "NaN" so degenerate columns stay visible instead of
// rendering as blank cells.
func WriteReport(path string, summaries []domstats.ColumnSummary, missing domstats.MissingReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return errors.FileError("renaming summary sheet", err)
	}
	if err := writeRow(f, summarySheet, 1, toCells(summaryHeader)); err != nil {
		return err
	}
	for i, s := range summaries {
		row := []interface{}{
			s.Column, s.Count,
			numberCell(s.Mean), numberCell(s.Std), numberCell(s.Min),
			numberCell(s.Q25), numberCell(s.Median), numberCell(s.Q75),
			numberCell(s.Max), numberCell(s.Skew), numberCell(s.Kurtosis),
			s.Missing, numberCell(s.MissingPct),
		}
		if err := writeRow(f, summarySheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(missingSheet); err != nil {
		return errors.FileError("creating missing sheet", err)
	}
	if err := writeRow(f, missingSheet, 1, toCells(missingHeader)); err != nil {
		return err
	}
	for i, col := range missing.Columns {
		row := []interface{}{col.Column, col.Kind.String(), col.Count, numberCell(col.Percentage)}
		if err := writeRow(f, missingSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.FileError("saving workbook", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return errors.FileError("resolving cell coordinates", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return errors.FileError("writing cell", err)
		}
	}
	return nil
}

func numberCell(v float64) interface{} {
	if math.IsNaN(v) {
		return "NaN"
	}
	return v
}

func toCells(header []string) []interface{} {
	out := make([]interface{}, len(header))
	for i, h := range header {
		out[i] = h
	}
	return out
}
