package main

import (
	"encoding/json"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"sitedocs/internal/docquery"
	"sitedocs/internal/model"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

func renderDocuments(w io.Writer, docs []model.Document, mode model.DateMode) {
	table := newTable(w, "Number", "Title", "Category", "Status", "Version", "Size", "Uploaded By", "Updated")
	for _, d := range docs {
		table.Append([]string{
			d.DocumentNumber,
			d.Title,
			d.Category.Name,
			d.CurrentVersion.Status,
			strconv.Itoa(d.CurrentVersion.VersionNumber),
			docquery.FormatFileSize(d.CurrentVersion.FileSize),
			d.CurrentVersion.UploadedBy.Name,
			docquery.FormatDate(d.UpdatedAt, mode),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "", "Total", strconv.Itoa(len(docs))})
	table.Render()
}

func renderStats(w io.Writer, st model.DocumentStats, mode model.DateMode) {
	table := newTable(w, "Metric", "Value")
	table.Append([]string{"Documents", strconv.Itoa(st.TotalDocuments)})
	table.Append([]string{"Total size", docquery.FormatFileSize(st.TotalSize)})
	table.Append([]string{"Average size", docquery.FormatFileSize(int64(st.AvgSize))})
	if st.OldestDocument != nil {
		table.Append([]string{"Oldest", describe(*st.OldestDocument, mode)})
	}
	if st.NewestDocument != nil {
		table.Append([]string{"Newest", describe(*st.NewestDocument, mode)})
	}
	table.Render()

	renderCounts(w, "Status", st.StatusCounts)
	renderCounts(w, "Category", st.CategoryCounts)

	if len(st.RecentDocuments) > 0 {
		color.New(color.Bold).Fprintln(w, "Recently updated")
		renderDocuments(w, st.RecentDocuments, mode)
	}
}

func describe(d model.Document, mode model.DateMode) string {
	return d.DocumentNumber + " " + d.Title + " (" + docquery.FormatDate(d.CreatedAt, mode) + ")"
}

func renderCounts(w io.Writer, label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	table := newTable(w, label, "Count")
	for _, k := range keys {
		table.Append([]string{k, strconv.Itoa(counts[k])})
	}
	table.Render()
}

func renderGroups(w io.Writer, groups []model.DocumentGroup) {
	table := newTable(w, "Group", "Count", "Documents")
	for _, g := range groups {
		numbers := make([]string, len(g.Documents))
		for i, d := range g.Documents {
			numbers[i] = d.DocumentNumber
		}
		table.Append([]string{g.Key, strconv.Itoa(len(g.Documents)), strings.Join(numbers, ", ")})
	}
	table.Render()
}

func renderRelated(w io.Writer, r model.RelatedDocuments) {
	buckets := []struct {
		name string
		docs []model.Document
	}{
		{"parent", r.Parents},
		{"child", r.Children},
		{"reference", r.References},
		{"supersedes", r.Supersedes},
		{"superseded by", r.SupersededBy},
		{"related", r.Related},
	}

	table := newTable(w, "Relation", "Number", "Title", "Status")
	for _, b := range buckets {
		for _, d := range b.docs {
			table.Append([]string{b.name, d.DocumentNumber, d.Title, d.CurrentVersion.Status})
		}
	}
	table.Render()
}
