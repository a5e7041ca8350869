package main

import (
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/loke-dev/mdx-blog/internal/export"
	"github.com/loke-dev/mdx-blog/internal/site"
)

func newExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the site as static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := setupLogger(cfg)

			log.Printf("📦 Exporting to %s...", output)

			router := site.NewRouter(cfg, logger)
			files, err := export.Export(cmd.Context(), router, output)
			if err != nil {
				return err
			}

			if cfg.Site.StaticDir != "" {
				static, err := export.CopyStatic(cmd.Context(), cfg.Site.StaticDir, output)
				if err != nil {
					return err
				}
				files = append(files, static...)
			}

			var total int64
			for _, f := range files {
				log.Printf("  %-32s %s", f.Path, export.FormatSize(f.Size))
				total += f.Size
			}
			log.Printf("  Total:  %s", export.FormatSize(total))
			log.Printf("\n✨ Export output: %s", filepath.Clean(output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "dist", "output directory")

	return cmd
}
