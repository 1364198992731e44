package main

import (
	"time"

	"github.com/spf13/cobra"

	"sitedocs/internal/docquery"
	"sitedocs/internal/model"
)

type filterFlags struct {
	search       string
	categories   []string
	statuses     []string
	uploadedBy   []string
	tags         []string
	from         string
	to           string
	hasComments  bool
	confidential bool
	sortBy       string
	sortOrder    string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.search, "search", "s", "", "case-insensitive text search")
	fs.StringSliceVar(&f.categories, "category", nil, "category ids")
	fs.StringSliceVar(&f.statuses, "status", nil, "statuses")
	fs.StringSliceVar(&f.uploadedBy, "uploaded-by", nil, "uploader user ids")
	fs.StringSliceVar(&f.tags, "tag", nil, "tags, any match")
	fs.StringVar(&f.from, "from", "", "created at or after (RFC3339 or YYYY-MM-DD)")
	fs.StringVar(&f.to, "to", "", "created at or before (RFC3339 or YYYY-MM-DD)")
	fs.BoolVar(&f.hasComments, "has-comments", false, "only documents whose current version has comments (false for none)")
	fs.BoolVar(&f.confidential, "confidential", false, "only confidential documents (false for non-confidential)")
	fs.StringVar(&f.sortBy, "sort-by", "", "name, date, created, modified, size, status or category")
	fs.StringVar(&f.sortOrder, "sort-order", "", "asc or desc")
}

// build turns the flags into a filter. Boolean criteria apply only when the flag was given.
func (f *filterFlags) build(cmd *cobra.Command, loc *time.Location) (model.DocumentFilter, error) {
	out := model.DocumentFilter{
		Search:     f.search,
		Categories: f.categories,
		Status:     f.statuses,
		UploadedBy: f.uploadedBy,
		Tags:       f.tags,
	}
	if cmd.Flags().Changed("has-comments") {
		v := f.hasComments
		out.HasComments = &v
	}
	if cmd.Flags().Changed("confidential") {
		v := f.confidential
		out.Confidential = &v
	}

	var err error
	if out.SortBy, err = model.ParseSortField(f.sortBy); err != nil {
		return out, err
	}
	if out.SortOrder, err = model.ParseSortOrder(f.sortOrder); err != nil {
		return out, err
	}
	if out.DateRange, err = model.ParseDateRange(f.from, f.to, loc); err != nil {
		return out, err
	}
	return out, nil
}

// query loads the documents file and applies the filter flags.
func (f *filterFlags) query(cmd *cobra.Command, opts *rootOptions) ([]model.Document, error) {
	loc, err := opts.location()
	if err != nil {
		return nil, err
	}
	filter, err := f.build(cmd, loc)
	if err != nil {
		return nil, err
	}
	docs, err := opts.loadDocuments(loc)
	if err != nil {
		return nil, err
	}
	return docquery.Filter(docs, filter), nil
}

func newFilterCmd(opts *rootOptions) *cobra.Command {
	flags := &filterFlags{}

	cmd := &cobra.Command{
		Use:     "filter",
		Aliases: []string{"list"},
		Short:   "list the documents matching the filter flags",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := flags.query(cmd, opts)
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return writeJSON(cmd.OutOrStdout(), docs)
			}
			renderDocuments(cmd.OutOrStdout(), docs, opts.mode)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
