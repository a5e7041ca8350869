package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/loke-dev/mdx-blog/cmd/mdxblog/internal/ui"
	"github.com/loke-dev/mdx-blog/internal/site"
)

func newRoutesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the site's routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			table := site.NewRouter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).ExportTable()
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(table)
			}

			fmt.Fprintln(out, ui.RouteTable(table))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the table as JSON")

	return cmd
}
