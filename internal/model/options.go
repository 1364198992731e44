package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidSortOrder = errors.New("invalid sort order")
	ErrInvalidGroupBy   = errors.New("invalid group by")
	ErrInvalidFormat    = errors.New("invalid export format")
	ErrInvalidDateMode  = errors.New("invalid date mode")
	ErrInvalidRelation  = errors.New("invalid relation type")
)

// SortField selects the comparator used when ordering documents.
type SortField string

const (
	SortByName     SortField = "name"
	SortByDate     SortField = "date"
	SortByCreated  SortField = "created"
	SortByModified SortField = "modified"
	SortBySize     SortField = "size"
	SortByStatus   SortField = "status"
	SortByCategory SortField = "category"
)

// SortOrder is either ascending or descending.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// GroupBy selects the bucket key used when grouping documents.
type GroupBy string

const (
	GroupByCategory GroupBy = "category"
	GroupByStatus   GroupBy = "status"
	GroupByDate     GroupBy = "date"
	GroupByUser     GroupBy = "user"
)

// ExportFormat is the serialization used by the exporter.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
	FormatXLSX ExportFormat = "xlsx"
)

// DateMode selects how a timestamp is rendered.
type DateMode string

const (
	DateFull     DateMode = "full"
	DateShort    DateMode = "short"
	DateRelative DateMode = "relative"
	DateTime     DateMode = "time"
)

// ParseSortField validates a sort field name. The empty string is accepted and means "unset".
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(s))); f {
	case "", SortByName, SortByDate, SortByCreated, SortByModified, SortBySize, SortByStatus, SortByCategory:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortField, s)
	}
}

// ParseSortOrder validates a sort direction. The empty string is accepted and means "unset".
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case "", SortAsc, SortDesc:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
	}
}

// ParseGroupBy validates a grouping key. Empty input yields GroupByCategory.
func ParseGroupBy(s string) (GroupBy, error) {
	switch g := GroupBy(strings.ToLower(strings.TrimSpace(s))); g {
	case "":
		return GroupByCategory, nil
	case GroupByCategory, GroupByStatus, GroupByDate, GroupByUser:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGroupBy, s)
	}
}

// ParseExportFormat validates an export format. Empty input yields FormatCSV.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// ParseDateMode validates a date rendering mode. Empty input yields DateShort.
func ParseDateMode(s string) (DateMode, error) {
	switch m := DateMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return DateShort, nil
	case DateFull, DateShort, DateRelative, DateTime:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDateMode, s)
	}
}
