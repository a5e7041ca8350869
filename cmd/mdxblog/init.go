package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loke-dev/mdx-blog/cmd/mdxblog/internal/ui"
	"github.com/loke-dev/mdx-blog/internal/config"
)

func newInitCommand() *cobra.Command {
	var (
		noInteractive bool
		force         bool
		repo          string
		host          string
		port          int
		output        string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + configFileName,
		Long: `Write a starter config file. In a terminal an interactive form asks for
the repository URL, host and port; otherwise the defaults and flags are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(output); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", output)
			}

			cfg := config.DefaultConfig()
			answers := ui.Answers{
				RepositoryURL: cfg.Site.RepositoryURL,
				Host:          cfg.Server.Host,
				Port:          cfg.Server.Port,
			}
			if cmd.Flags().Changed("repository") {
				answers.RepositoryURL = repo
			}
			if cmd.Flags().Changed("host") {
				answers.Host = host
			}
			if cmd.Flags().Changed("port") {
				answers.Port = port
			}

			if !noInteractive && ui.IsTerminal() {
				var err error
				answers, err = ui.RunInitWizard(answers)
				if errors.Is(err, ui.ErrCancelled) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled, nothing written.")
					return nil
				}
				if err != nil {
					return err
				}
			}

			cfg.Site.RepositoryURL = answers.RepositoryURL
			cfg.Server.Host = answers.Host
			cfg.Server.Port = answers.Port
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.Save(cfg, output); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Wrote "+output))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "skip the interactive form")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().StringVar(&repo, "repository", "", "source repository URL")
	cmd.Flags().StringVar(&host, "host", "", "host to bind to")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on")
	cmd.Flags().StringVarP(&output, "out", "o", configFileName, "file to write")

	return cmd
}
