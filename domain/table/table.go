// Package table defines the in-memory tabular dataset shared by every
// analysis and plotting helper. A Table is a rectangular set of named
// columns, each carrying an explicit semantic kind (numeric, categorical or
// timestamp) so that callers validate column types at entry instead of
// discovering them mid-computation.
package table

import (
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"courselens/internal/errors"
)

// Kind is the semantic type tag attached to every column.
type Kind int

const (
	Numeric Kind = iota
	Categorical
	Timestamp
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	case Timestamp:
		return "timestamp"
	}
	return "unknown"
}

// Table is an immutable view over a rectangular dataset. Derived tables
// returned by WithColumn and WithTimestamps share no mutable state with
// their source: callers holding the original Table never observe changes.
type Table struct {
	df    dataframe.DataFrame
	kinds map[string]Kind
	times map[string][]time.Time
}

// New builds a Table from a gota DataFrame, deriving each column's kind
// from its storage type. Int and Float columns become Numeric, everything
// else Categorical. Timestamp kinds are attached later via WithTimestamps.
func New(df dataframe.DataFrame) (Table, error) {
	if df.Err != nil {
		return Table{}, errors.ParseError("invalid dataframe", df.Err)
	}

	kinds := make(map[string]Kind, df.Ncol())
	names := df.Names()
	for i, typ := range df.Types() {
		switch typ {
		case series.Int, series.Float:
			kinds[names[i]] = Numeric
		default:
			kinds[names[i]] = Categorical
		}
	}

	return Table{df: df, kinds: kinds, times: map[string][]time.Time{}}, nil
}

// Names returns the column names in their original order.
func (t Table) Names() []string {
	return t.df.Names()
}

// NumRows returns the row count.
func (t Table) NumRows() int {
	return t.df.Nrow()
}

// NumCols returns the column count.
func (t Table) NumCols() int {
	return t.df.Ncol()
}

// HasColumn reports whether a column exists.
func (t Table) HasColumn(name string) bool {
	_, ok := t.kinds[name]
	return ok
}

// Kind returns the semantic kind of a column.
func (t Table) Kind(name string) (Kind, error) {
	k, ok := t.kinds[name]
	if !ok {
		return 0, errors.ColumnError(name, "not present in table")
	}
	return k, nil
}

// Column returns a copy of the named column's underlying series.
func (t Table) Column(name string) (series.Series, error) {
	if !t.HasColumn(name) {
		return series.Series{}, errors.ColumnError(name, "not present in table")
	}
	return t.df.Col(name), nil
}

// Floats returns the values of a numeric column, with NaN marking missing
// entries. Requesting a non-numeric column is a column error.
func (t Table) Floats(name string) ([]float64, error) {
	k, err := t.Kind(name)
	if err != nil {
		return nil, err
	}
	if k != Numeric {
		return nil, errors.ColumnError(name, "not numeric")
	}
	return t.df.Col(name).Float(), nil
}

// Records returns the string form of every value in a column.
func (t Table) Records(name string) ([]string, error) {
	if !t.HasColumn(name) {
		return nil, errors.ColumnError(name, "not present in table")
	}
	return t.df.Col(name).Records(), nil
}

// Times returns the parsed values of a timestamp column. Missing entries
// are the zero time.
func (t Table) Times(name string) ([]time.Time, error) {
	k, err := t.Kind(name)
	if err != nil {
		return nil, err
	}
	if k != Timestamp {
		return nil, errors.ColumnError(name, "not a timestamp column")
	}
	parsed := t.times[name]
	out := make([]time.Time, len(parsed))
	copy(out, parsed)
	return out, nil
}

// MissingCount returns how many entries of a column are missing. Numeric
// columns count NaN entries, timestamp columns count unparsed entries, and
// categorical columns count empty or NA-marked records.
func (t Table) MissingCount(name string) (int, error) {
	k, err := t.Kind(name)
	if err != nil {
		return 0, err
	}

	switch k {
	case Numeric:
		n := 0
		for _, isNaN := range t.df.Col(name).IsNaN() {
			if isNaN {
				n++
			}
		}
		return n, nil
	case Timestamp:
		n := 0
		for _, ts := range t.times[name] {
			if ts.IsZero() {
				n++
			}
		}
		return n, nil
	default:
		n := 0
		for _, rec := range t.df.Col(name).Records() {
			if rec == "" || rec == "NA" || rec == "NaN" {
				n++
			}
		}
		return n, nil
	}
}

// WithColumn returns a new Table with the series appended (or replaced, if
// a column of the same name exists) and tagged with the given kind. The
// receiver is left untouched.
func (t Table) WithColumn(s series.Series, kind Kind) (Table, error) {
	if s.Err != nil {
		return Table{}, errors.ParseError("invalid series", s.Err)
	}

	df := t.df.Mutate(s)
	if df.Err != nil {
		return Table{}, errors.ParseError("mutate failed", df.Err)
	}

	out := Table{df: df, kinds: copyKinds(t.kinds), times: copyTimes(t.times)}
	out.kinds[s.Name] = kind
	return out, nil
}

// WithTimestamps returns a new Table where the named column is re-tagged as
// a timestamp column backed by the given parsed values. Missing entries are
// represented by the zero time.
func (t Table) WithTimestamps(name string, parsed []time.Time) (Table, error) {
	if !t.HasColumn(name) {
		return Table{}, errors.ColumnError(name, "not present in table")
	}
	if len(parsed) != t.NumRows() {
		return Table{}, errors.ValidationError("timestamp values do not match row count")
	}

	out := Table{df: t.df, kinds: copyKinds(t.kinds), times: copyTimes(t.times)}
	out.kinds[name] = Timestamp
	vals := make([]time.Time, len(parsed))
	copy(vals, parsed)
	out.times[name] = vals
	return out, nil
}

// DataFrame exposes the underlying gota dataframe for callers that need
// frame-level operations. The returned value is gota's copy-on-write view.
func (t Table) DataFrame() dataframe.DataFrame {
	return t.df
}

func copyKinds(in map[string]Kind) map[string]Kind {
	out := make(map[string]Kind, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyTimes(in map[string][]time.Time) map[string][]time.Time {
	out := make(map[string][]time.Time, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
