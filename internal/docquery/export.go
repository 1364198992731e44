package docquery

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sitedocs/internal/model"
)

// ErrUnsupportedFormat is returned for xlsx and for any format the exporter does not know.
var ErrUnsupportedFormat = errors.New("unsupported export format")

var csvHeader = []string{
	"Document Number",
	"Title",
	"Category",
	"Status",
	"Version",
	"Size",
	"Uploaded By",
	"Created Date",
	"Modified Date",
	"Confidential",
	"Tags",
}

// Export serializes docs in the requested format.
func Export(docs []model.Document, format model.ExportFormat) ([]byte, error) {
	switch format {
	case model.FormatCSV:
		return ExportCSV(docs), nil
	case model.FormatJSON:
		return ExportJSON(docs)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// ExportCSV writes a header row and one row per document, newline separated with no
// trailing newline. Every cell is quoted and embedded quotes are doubled. Dates are
// rendered in the location carried by each timestamp.
func ExportCSV(docs []model.Document) []byte {
	var b strings.Builder
	writeCSVRow(&b, csvHeader)
	for _, d := range docs {
		b.WriteByte('\n')
		writeCSVRow(&b, csvRecord(d))
	}
	return []byte(b.String())
}

func csvRecord(d model.Document) []string {
	confidential := "No"
	if d.Confidential {
		confidential = "Yes"
	}
	return []string{
		d.DocumentNumber,
		d.Title,
		d.Category.Name,
		d.CurrentVersion.Status,
		strconv.Itoa(d.CurrentVersion.VersionNumber),
		FormatFileSize(d.CurrentVersion.FileSize),
		d.CurrentVersion.UploadedBy.Name,
		FormatDate(d.CreatedAt, model.DateShort),
		FormatDate(d.UpdatedAt, model.DateShort),
		confidential,
		strings.Join(d.Tags, ", "),
	}
}

func writeCSVRow(b *strings.Builder, cells []string) {
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(c, `"`, `""`))
		b.WriteByte('"')
	}
}

// ExportJSON pretty-prints docs with a two-space indent. A nil slice encodes as [].
func ExportJSON(docs []model.Document) ([]byte, error) {
	if docs == nil {
		docs = []model.Document{}
	}
	return json.MarshalIndent(docs, "", "  ")
}

// ContentType returns the MIME type of an export format.
func ContentType(format model.ExportFormat) string {
	switch format {
	case model.FormatCSV:
		return "text/csv; charset=utf-8"
	case model.FormatJSON:
		return "application/json"
	case model.FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
