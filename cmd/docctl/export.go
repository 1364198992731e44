package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sitedocs/internal/docquery"
	"sitedocs/internal/model"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	flags := &filterFlags{}
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "export the documents matching the filter flags as csv or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := model.ParseExportFormat(format)
			if err != nil {
				return err
			}
			docs, err := flags.query(cmd, opts)
			if err != nil {
				return err
			}

			content, err := docquery.Export(docs, f)
			if errors.Is(err, docquery.ErrUnsupportedFormat) {
				color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "%s export is not supported, use csv or json\n", f)
				return err
			}
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(content)
				return err
			}
			if err := os.WriteFile(out, content, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d documents to %s\n", len(docs), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "csv, json or xlsx")
	cmd.Flags().StringVar(&out, "out", "", "write to this file instead of stdout")
	flags.register(cmd)
	return cmd
}
