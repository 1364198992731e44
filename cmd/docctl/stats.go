package main

import (
	"github.com/spf13/cobra"

	"sitedocs/internal/docquery"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	flags := &filterFlags{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "summarize the documents matching the filter flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := flags.query(cmd, opts)
			if err != nil {
				return err
			}
			stats := docquery.Stats(docs)
			if opts.output == "json" {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			renderStats(cmd.OutOrStdout(), stats, opts.mode)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
