package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sitedocs/internal/model"
)

type rootOptions struct {
	file      string
	relations string
	timezone  string
	output    string
	dateMode  string

	mode model.DateMode
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "docctl",
		Short: "query construction project documents offline",
		Example: `docctl filter -f documents.json --status approved --sort-by size --sort-order desc
docctl stats -f documents.json --category c1
docctl group -f documents.json --by user
docctl related -f documents.json -r relations.json <document-id>
docctl export -f documents.json --format json --out register.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case "table", "json":
			default:
				return fmt.Errorf("unknown output %q, want table or json", opts.output)
			}
			mode, err := model.ParseDateMode(opts.dateMode)
			if err != nil {
				return err
			}
			opts.mode = mode
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.file, "file", "f", "", "documents JSON file (array of documents)")
	pf.StringVarP(&opts.relations, "relations", "r", "", "relations JSON file (array of relation edges)")
	pf.StringVar(&opts.timezone, "timezone", "UTC", "IANA zone used for dates and date-only filter bounds")
	pf.StringVarP(&opts.output, "output", "o", "table", "output format: table or json")
	pf.StringVar(&opts.dateMode, "date-mode", "short", "date rendering in tables: full, short, relative or time")
	_ = root.MarkPersistentFlagRequired("file")

	root.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	root.CompletionOptions.HiddenDefaultCmd = true

	root.AddCommand(
		newFilterCmd(opts),
		newStatsCmd(opts),
		newGroupCmd(opts),
		newRelatedCmd(opts),
		newExportCmd(opts),
	)
	return root
}

func (o *rootOptions) location() (*time.Location, error) {
	loc, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", o.timezone, err)
	}
	return loc, nil
}

// loadDocuments reads the documents file and moves every timestamp into loc.
func (o *rootOptions) loadDocuments(loc *time.Location) ([]model.Document, error) {
	var docs []model.Document
	if err := readJSON(o.file, &docs); err != nil {
		return nil, err
	}
	for i := range docs {
		d := &docs[i]
		d.CreatedAt = d.CreatedAt.In(loc)
		d.UpdatedAt = d.UpdatedAt.In(loc)
		for j := range d.CurrentVersion.Comments {
			d.CurrentVersion.Comments[j].CreatedAt = d.CurrentVersion.Comments[j].CreatedAt.In(loc)
		}
	}
	return docs, nil
}

func (o *rootOptions) loadRelations() ([]model.RelatedDocument, error) {
	if o.relations == "" {
		return nil, fmt.Errorf("--relations is required")
	}
	var rels []model.RelatedDocument
	if err := readJSON(o.relations, &rels); err != nil {
		return nil, err
	}
	return rels, nil
}

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
