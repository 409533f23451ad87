package search

import (
	"strings"
	"time"

	"docsearch/internal/model"
)

const dateOnly = "2006-01-02"

// ParseFilters builds QueryFilters from raw caller input. Unknown type names and
// malformed dates widen the search instead of failing: each bad value is dropped.
// A date-only "to" bound covers that entire day. A "from" after "to" drops both bounds.
func ParseFilters(fileType, from, to string, loc *time.Location) model.QueryFilters {
	if loc == nil {
		loc = time.UTC
	}

	var f model.QueryFilters
	if t, ok := model.LookupType(fileType); ok && strings.TrimSpace(fileType) != "" {
		f.FileType = &t
	}
	if ts, ok := parseBound(from, loc, false); ok {
		f.DateRange.From = &ts
	}
	if ts, ok := parseBound(to, loc, true); ok {
		f.DateRange.To = &ts
	}
	// An inverted range is treated like any other malformed date input.
	if f.DateRange.From != nil && f.DateRange.To != nil && f.DateRange.From.After(*f.DateRange.To) {
		f.DateRange = model.DateRange{}
	}
	return f
}

func parseBound(raw string, loc *time.Location, endOfDay bool) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, true
	}
	ts, err := time.ParseInLocation(dateOnly, raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		ts = ts.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return ts, true
}
