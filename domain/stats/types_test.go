package stats

import (
	"strings"
	"testing"

	"courselens/domain/table"
)

func TestMissingReportSentinel(t *testing.T) {
	report := MissingReport{TotalRows: 100}
	if !report.Empty() {
		t.Fatal("report with no columns should be empty")
	}
	if got := report.String(); got != NoMissingMessage {
		t.Errorf("String() = %q, want %q", got, NoMissingMessage)
	}
}

func TestMissingReportFormatsColumns(t *testing.T) {
	report := MissingReport{
		TotalRows: 50,
		Columns: []MissingColumn{
			{Column: "price", Count: 5, Percentage: 10, Kind: table.Numeric},
		},
	}
	out := report.String()
	if !strings.Contains(out, "price") || !strings.Contains(out, "10.00%") {
		t.Errorf("unexpected report output:\n%s", out)
	}
}
