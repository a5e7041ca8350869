package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/loke-dev/mdx-blog/internal/config"
)

const configFileName = config.FileName

// loadConfig reads the config and validates it
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readConfig reads the --config file (or ./mdxblog.yaml) without validating,
// so callers can apply flag overrides first
func readConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func validateConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		name := cfg.Path
		if name == "" {
			name = "(defaults)"
		}
		return fmt.Errorf("invalid config %s: %w", name, err)
	}
	return nil
}

// setupLogger installs the configured slog logger as the default
func setupLogger(cfg *config.Config) *slog.Logger {
	logger := config.NewLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)
	return logger
}
