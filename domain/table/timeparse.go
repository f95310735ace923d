package table

import (
	"time"

	"courselens/internal/errors"
)

// timestampLayouts are the accepted textual timestamp forms, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamps converts textual records to times. Empty and NA-marked
// records become the zero time (missing); any other record that matches no
// accepted layout fails the whole conversion with a parse error.
func ParseTimestamps(records []string) ([]time.Time, error) {
	out := make([]time.Time, len(records))
	for i, rec := range records {
		if rec == "" || rec == "NA" || rec == "NaN" {
			continue
		}
		ts, err := parseTimestamp(rec)
		if err != nil {
			return nil, errors.ParseError("unparseable timestamp "+rec, err)
		}
		out[i] = ts
	}
	return out, nil
}

func parseTimestamp(rec string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.Parse(layout, rec)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
