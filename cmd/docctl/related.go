package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitedocs/internal/docquery"
)

func newRelatedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "related <document-id>",
		Short:   "show the parents, children, references and supersession chain of a document",
		Example: "docctl related -f documents.json -r relations.json 0b6f6f2e-6c1d-4a8e-9d55-3f3c1f3e2a10",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return err
			}
			docs, err := opts.loadDocuments(loc)
			if err != nil {
				return err
			}
			rels, err := opts.loadRelations()
			if err != nil {
				return err
			}

			id := args[0]
			found := false
			for _, d := range docs {
				if d.ID == id {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("document %s not found", id)
			}

			related := docquery.Related(id, rels, docs)
			if opts.output == "json" {
				return writeJSON(cmd.OutOrStdout(), related)
			}
			renderRelated(cmd.OutOrStdout(), related)
			return nil
		},
	}
}
