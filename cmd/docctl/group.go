package main

import (
	"github.com/spf13/cobra"

	"sitedocs/internal/docquery"
	"sitedocs/internal/model"
)

func newGroupCmd(opts *rootOptions) *cobra.Command {
	flags := &filterFlags{}
	var by string

	cmd := &cobra.Command{
		Use:   "group",
		Short: "bucket the documents matching the filter flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groupBy, err := model.ParseGroupBy(by)
			if err != nil {
				return err
			}
			docs, err := flags.query(cmd, opts)
			if err != nil {
				return err
			}
			groups := docquery.Group(docs, groupBy)
			if opts.output == "json" {
				return writeJSON(cmd.OutOrStdout(), groups)
			}
			renderGroups(cmd.OutOrStdout(), groups)
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", "category", "category, status, date or user")
	flags.register(cmd)
	return cmd
}
