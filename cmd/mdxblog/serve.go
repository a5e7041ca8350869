package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/loke-dev/mdx-blog/internal/config"
	"github.com/loke-dev/mdx-blog/internal/livereload"
	"github.com/loke-dev/mdx-blog/internal/site"
)

type serveOptions struct {
	host  string
	port  int
	watch bool
}

func newServeCommand() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing site",
		Long: `Serve the landing site over HTTP. With --watch, changes to the config
file or the static directory reload the site and refresh open browsers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.host, "host", "localhost", "host to bind to")
	cmd.Flags().IntVarP(&opts.port, "port", "p", 3000, "port to listen on")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload on config and static file changes")

	return cmd
}

// config reads the config file, applies the flags that were set and
// validates the result
func (o serveOptions) config(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := readConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = o.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = o.port
	}
	if cmd.Flags().Changed("watch") {
		cfg.Dev.Watch = o.watch
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	logger := setupLogger(cfg)

	opts := []site.Option{site.WithLogger(logger)}
	var hub *livereload.Hub
	if cfg.Dev.Watch {
		hub = livereload.NewHub(logger)
		opts = append(opts, site.WithLiveReload(hub))
	}

	s, err := site.New(cfg, opts...)
	if err != nil {
		return err
	}

	if hub != nil {
		watcher, err := newSiteWatcher(cmd, cfg, s, hub, logger)
		if err != nil {
			return err
		}
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Error("watcher stopped", "error", err)
			}
		}()
		defer hub.Close()
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Serving on http://%s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("👋 Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newSiteWatcher reloads the site from the config file and refreshes
// browsers whenever a watched file changes
func newSiteWatcher(cmd *cobra.Command, cfg *config.Config, s *site.Site, hub *livereload.Hub, logger *slog.Logger) (*livereload.Watcher, error) {
	var roots []string
	if cfg.Path != "" {
		roots = append(roots, cfg.Path)
	}
	if cfg.Site.StaticDir != "" {
		roots = append(roots, cfg.Site.StaticDir)
	}
	if len(roots) == 0 {
		// Nothing on disk yet; watch the working directory for a new config
		roots = append(roots, ".")
	}

	host, port := cfg.Server.Host, cfg.Server.Port

	onChange := func(changed []string) {
		reason := filepath.Base(changed[0])
		if len(changed) > 1 {
			reason = fmt.Sprintf("%s and %d more", reason, len(changed)-1)
		}

		next, err := readConfig(cmd)
		if err != nil {
			logger.Error("config reload failed", "error", err)
			return
		}
		// The listener stays where it is; Reload validates the result
		next.Server.Host, next.Server.Port = host, port
		next.Dev.Watch = true

		if err := s.Reload(next); err != nil {
			logger.Error("site reload failed", "error", err)
			return
		}
		log.Printf("🔄 Reloaded (%s)", reason)
		hub.Broadcast(reason)
	}

	return livereload.NewWatcher(livereload.WatcherConfig{
		Roots:    roots,
		Patterns: cfg.Dev.Patterns,
	}, onChange, logger)
}
