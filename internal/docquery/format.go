// Package docquery holds the pure query functions applied to in-memory document
// collections: formatting, sorting, grouping, filtering, relation resolution,
// statistics and export. Nothing here performs I/O or mutates its inputs.
package docquery

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"sitedocs/internal/model"
)

// now is replaced in tests.
var now = time.Now

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB"}

// FormatFileSize renders bytes with binary units and two fractional digits at most.
func FormatFileSize(bytes int64) string {
	return FormatFileSizePrecision(bytes, 2)
}

// FormatFileSizePrecision renders bytes using 1024-based units from Bytes up to PB.
// The value is rounded to decimals fractional digits and trailing zeros are dropped,
// so 1536 renders as "1.5 KB". Negative sizes keep their sign.
func FormatFileSizePrecision(bytes int64, decimals int) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	if decimals < 0 {
		decimals = 0
	}

	v := math.Abs(float64(bytes))
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}

	scale := math.Pow(10, float64(decimals))
	v = math.Round(v*scale) / scale
	if bytes < 0 {
		v = -v
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}

const (
	layoutFull  = "January 2, 2006 3:04:05 PM"
	layoutShort = "Jan 2, 2006"
	layoutTime  = "3:04 PM"
)

// FormatDate renders t in its own location. Unknown modes fall back to the short form.
func FormatDate(t time.Time, mode model.DateMode) string {
	switch mode {
	case model.DateFull:
		return t.Format(layoutFull)
	case model.DateTime:
		return t.Format(layoutTime)
	case model.DateRelative:
		return RelativeTime(t, now())
	default:
		return t.Format(layoutShort)
	}
}

// RelativeTime describes how long before ref the instant t happened, using the
// coarsest unit that fits. Instants less than a minute old, or in the future,
// are "just now".
func RelativeTime(t, ref time.Time) string {
	seconds := int64(ref.Sub(t) / time.Second)
	if seconds < 60 {
		return "just now"
	}

	minutes := seconds / 60
	if minutes < 60 {
		return ago(minutes, "minute")
	}

	hours := minutes / 60
	if hours < 24 {
		return ago(hours, "hour")
	}

	days := hours / 24
	switch {
	case days == 1:
		return "yesterday"
	case days < 7:
		return ago(days, "day")
	case days < 28:
		return ago(days/7, "week")
	}

	if months := days / 30; months < 12 {
		return ago(max(months, 1), "month")
	}
	return ago(max(days/365, 1), "year")
}

func ago(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
