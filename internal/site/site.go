// Package site assembles the HTTP handler that serves the landing site.
package site

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/loke-dev/mdx-blog/app/routes"
	"github.com/loke-dev/mdx-blog/internal/cache"
	"github.com/loke-dev/mdx-blog/internal/config"
	"github.com/loke-dev/mdx-blog/internal/livereload"
	"github.com/loke-dev/mdx-blog/pkg/server"
	"github.com/loke-dev/mdx-blog/pkg/styling"
	"github.com/loke-dev/mdx-blog/pkg/vango/vdom"
)

// StylesheetName is linked from every page when present in the static dir
const StylesheetName = "styles.css"

// Option configures a Site
type Option func(*Site)

// WithLogger sets the logger used for requests and page errors
func WithLogger(logger *slog.Logger) Option {
	return func(s *Site) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLiveReload mounts hub and injects the reload script into pages
func WithLiveReload(hub *livereload.Hub) Option {
	return func(s *Site) {
		s.hub = hub
	}
}

// Site serves the landing site. The handler is rebuilt on Reload and
// swapped atomically, so in-flight requests finish on the old one.
type Site struct {
	logger  *slog.Logger
	hub     *livereload.Hub
	current atomic.Pointer[state]
}

type state struct {
	cfg     *config.Config
	handler http.Handler
	router  *server.Router
	cache   *cache.Cache
}

// New validates cfg and builds the site
func New(cfg *config.Config, opts ...Option) (*Site, error) {
	s := &Site{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload rebuilds the site from cfg. The cache starts empty.
// On error the running handler is kept.
func (s *Site) Reload(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	st := &state{
		cfg:   cfg,
		cache: cache.New(cache.Config{MaxEntries: cfg.Cache.MaxEntries}),
	}
	st.router = s.newRouter(cfg, st.cache)
	st.handler = s.newMux(cfg, st)

	s.current.Store(st)
	return nil
}

// ServeHTTP implements http.Handler
func (s *Site) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.current.Load().handler.ServeHTTP(w, r)
}

// Router returns the current page router
func (s *Site) Router() *server.Router {
	return s.current.Load().router
}

// Cache returns the current page cache
func (s *Site) Cache() *cache.Cache {
	return s.current.Load().cache
}

// Config returns the config the site was last built from
func (s *Site) Config() *config.Config {
	return s.current.Load().cfg
}

// NewRouter builds the page router for cfg without caching or live reload
func NewRouter(cfg *config.Config, logger *slog.Logger) *server.Router {
	s := &Site{logger: logger}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s.newRouter(cfg, nil)
}

func (s *Site) newRouter(cfg *config.Config, c *cache.Cache) *server.Router {
	styles := styling.NewRegistry()
	styles.Register(routes.Theme)

	shell := server.DefaultShell()
	shell.Styles = styles
	shell.BodyClass = "min-h-screen bg-background font-sans antialiased"
	if cfg.Site.StaticDir != "" {
		if _, err := os.Stat(filepath.Join(cfg.Site.StaticDir, StylesheetName)); err == nil {
			shell.Stylesheets = []string{"/static/" + StylesheetName}
		}
	}
	if s.hub != nil {
		shell.Head = []*vdom.VNode{livereload.Script(livereload.DefaultPath)}
	}

	router := server.NewRouter()
	router.SetLogger(s.logger)
	router.SetShell(shell)
	if c.Enabled() {
		router.SetCache(c)
	}
	routes.Register(router, cfg.Site)
	return router
}

func (s *Site) newMux(cfg *config.Config, st *state) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"routes": len(st.router.ExportTable()),
			"cache":  st.cache.GetStats(),
		})
	})

	if dir := cfg.Site.StaticDir; dir != "" {
		fileServer := http.FileServer(http.Dir(dir))
		r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	}

	if s.hub != nil {
		r.Get(livereload.DefaultPath, s.hub.ServeHTTP)
	}

	r.Handle("/*", st.router)
	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
