package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateRange reports an unparsable or inverted date range.
var ErrInvalidDateRange = errors.New("invalid date range")

// OpenEnd is the upper bound of a date range given only a start.
var OpenEnd = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

const dateOnlyLayout = "2006-01-02"

// DateRange is an inclusive creation-time window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DocumentFilter is a declarative query over a document collection.
// Every criterion is optional: empty strings, nil or empty slices and nil pointers are ignored.
type DocumentFilter struct {
	Search       string     `json:"search,omitempty"`
	Categories   []string   `json:"categories,omitempty"`
	Status       []string   `json:"status,omitempty"`
	DateRange    *DateRange `json:"dateRange,omitempty"`
	UploadedBy   []string   `json:"uploadedBy,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	HasComments  *bool      `json:"hasComments,omitempty"`
	Confidential *bool      `json:"confidential,omitempty"`
	SortBy       SortField  `json:"sortBy,omitempty"`
	SortOrder    SortOrder  `json:"sortOrder,omitempty"`
}

// IsZero reports whether no criterion is set.
func (f DocumentFilter) IsZero() bool {
	return f.Search == "" &&
		len(f.Categories) == 0 &&
		len(f.Status) == 0 &&
		f.DateRange == nil &&
		len(f.UploadedBy) == 0 &&
		len(f.Tags) == 0 &&
		f.HasComments == nil &&
		f.Confidential == nil &&
		f.SortBy == ""
}

// ParseDateRange builds a range from optional bounds in RFC3339 or YYYY-MM-DD form.
// Date-only bounds are read in loc, and a date-only to covers that whole day.
// Both bounds empty yields nil.
func ParseDateRange(from, to string, loc *time.Location) (*DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	r := &DateRange{End: OpenEnd}
	if from != "" {
		t, _, err := parseBound(from, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: from %q", ErrInvalidDateRange, from)
		}
		r.Start = t
	}
	if to != "" {
		t, wholeDay, err := parseBound(to, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: to %q", ErrInvalidDateRange, to)
		}
		if wholeDay {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		r.End = t
	}
	if r.End.Before(r.Start) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidDateRange)
	}
	return r, nil
}

func parseBound(s string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err = time.ParseInLocation(dateOnlyLayout, s, loc)
	return t, true, err
}
