// Package csvio loads delimited course-listing files into tables.
package csvio

import (
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"courselens/domain/table"
	"courselens/internal/errors"
)

// TimestampColumn is the column name recognized as the publication
// timestamp. When present it is parsed into the timestamp semantic type as
// part of loading.
const TimestampColumn = "published_timestamp"

// Load reads a comma-delimited file with a header row into a Table. Column
// storage types are detected from the content; empty numeric cells become
// missing values. If the publication timestamp column is present, all of
// its values are parsed - a single unparseable value fails the whole load,
// since no partial-row recovery is defined.
func Load(path string) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, errors.FileError("opening "+path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return table.Table{}, errors.ParseError("reading "+path, df.Err)
	}

	t, err := table.New(df)
	if err != nil {
		return table.Table{}, err
	}

	if !t.HasColumn(TimestampColumn) {
		return t, nil
	}

	records, err := t.Records(TimestampColumn)
	if err != nil {
		return table.Table{}, err
	}
	parsed, err := table.ParseTimestamps(records)
	if err != nil {
		return table.Table{}, errors.Wrapf(err, "parsing %s in %s", TimestampColumn, path)
	}
	return t.WithTimestamps(TimestampColumn, parsed)
}
