package model

import "time"

// DateRange bounds LastModified inclusively. A nil bound is open on that side.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Contains reports whether ts lies within the range.
func (r DateRange) Contains(ts time.Time) bool {
	if r.From != nil && ts.Before(*r.From) {
		return false
	}
	if r.To != nil && ts.After(*r.To) {
		return false
	}
	return true
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// QueryFilters refine a text query. The zero value restricts nothing.
type QueryFilters struct {
	FileType  *Type     `json:"file_type,omitempty"`
	DateRange DateRange `json:"date_range"`
}

// IsZero reports whether no filter is set.
func (f QueryFilters) IsZero() bool {
	return f.FileType == nil && f.DateRange.IsZero()
}
