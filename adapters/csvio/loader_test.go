package csvio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courselens/domain/table"
	"courselens/internal/analysis"
	"courselens/internal/errors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesTypesAndTimestamps(t *testing.T) {
	path := writeCSV(t, `course_id,price,published_timestamp
1,19.99,2020-03-15 10:30:00
2,49.99,2019-07-01 08:00:00
3,0,2018-01-20 12:00:00
`)

	tbl, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.NumRows())

	kind, err := tbl.Kind("price")
	require.NoError(t, err)
	assert.Equal(t, table.Numeric, kind)

	kind, err = tbl.Kind(TimestampColumn)
	require.NoError(t, err)
	assert.Equal(t, table.Timestamp, kind)

	times, err := tbl.Times(TimestampColumn)
	require.NoError(t, err)
	assert.Equal(t, 2020, times[0].Year())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileError, errors.GetCode(err))
}

func TestLoadBadTimestamp(t *testing.T) {
	path := writeCSV(t, `course_id,published_timestamp
1,definitely-not-a-date
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeParseError, errors.GetCode(err))
}

func TestLoadWithoutTimestampColumn(t *testing.T) {
	path := writeCSV(t, `course_id,price
1,19.99
`)

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.False(t, tbl.HasColumn(TimestampColumn))
}

func TestLoadThenMissingReport(t *testing.T) {
	path := writeCSV(t, `course_id,price,published_timestamp
1,19.99,2020-03-15 10:30:00
2,NA,2019-07-01 08:00:00
3,0,2018-01-20 12:00:00
4,24.99,2017-05-05 09:00:00
5,149.99,2016-11-11 11:00:00
`)

	tbl, err := Load(path)
	require.NoError(t, err)

	report, err := analysis.AnalyzeMissingValues(tbl)
	require.NoError(t, err)

	require.Len(t, report.Columns, 1)
	assert.Equal(t, "price", report.Columns[0].Column)
	assert.Equal(t, 1, report.Columns[0].Count)
	assert.InDelta(t, 20.0, report.Columns[0].Percentage, 1e-9)
	assert.Equal(t, 5, report.TotalRows)
}
