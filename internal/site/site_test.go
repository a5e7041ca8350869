package site

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/loke-dev/mdx-blog/internal/config"
	"github.com/loke-dev/mdx-blog/internal/livereload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSite_Index(t *testing.T) {
	s, err := New(config.DefaultConfig(), WithLogger(quietLogger()))
	require.NoError(t, err)

	w := get(t, s, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "--primary:")
	assert.Contains(t, body, `<body class="min-h-screen bg-background font-sans antialiased">`)
	assert.NotContains(t, body, "data-livereload")
}

func TestSite_RenderIsStableAndCached(t *testing.T) {
	s, err := New(config.DefaultConfig(), WithLogger(quietLogger()))
	require.NoError(t, err)

	first := get(t, s, "/").Body.String()
	second := get(t, s, "/").Body.String()
	assert.Equal(t, first, second)

	stats := s.Cache().GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, 1, stats.Entries)
}

func TestSite_CacheDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Cache.MaxEntries = 0
	s, err := New(cfg, WithLogger(quietLogger()))
	require.NoError(t, err)

	get(t, s, "/")
	get(t, s, "/")
	assert.Equal(t, 0, s.Cache().GetStats().Entries)
}

func TestSite_NotFound(t *testing.T) {
	s, err := New(config.DefaultConfig(), WithLogger(quietLogger()))
	require.NoError(t, err)

	w := get(t, s, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestSite_Healthz(t *testing.T) {
	s, err := New(config.DefaultConfig(), WithLogger(quietLogger()))
	require.NoError(t, err)

	w := get(t, s, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body struct {
		Status string `json:"status"`
		Routes int    `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 1, body.Routes)
}

func TestSite_Static(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StylesheetName), []byte("body{}"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Site.StaticDir = dir
	s, err := New(cfg, WithLogger(quietLogger()))
	require.NoError(t, err)

	w := get(t, s, "/static/styles.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())

	assert.Contains(t, get(t, s, "/").Body.String(), `<link href="/static/styles.css" rel="stylesheet">`)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/static/missing.js").Code)
}

func TestSite_LiveReloadScript(t *testing.T) {
	hub := livereload.NewHub(quietLogger())
	s, err := New(config.DefaultConfig(), WithLogger(quietLogger()), WithLiveReload(hub))
	require.NoError(t, err)

	assert.Contains(t, get(t, s, "/").Body.String(), `<script data-livereload="">`)

	// Plain GET without upgrade headers is rejected by the websocket handler
	assert.Equal(t, http.StatusBadRequest, get(t, s, livereload.DefaultPath).Code)
}

func TestSite_Reload(t *testing.T) {
	s, err := New(config.DefaultConfig(), WithLogger(quietLogger()))
	require.NoError(t, err)
	get(t, s, "/")
	require.Equal(t, 1, s.Cache().GetStats().Entries)

	cfg := config.DefaultConfig()
	cfg.Site.RepositoryURL = "https://example.com/fork"
	require.NoError(t, s.Reload(cfg))

	assert.Equal(t, 0, s.Cache().GetStats().Entries, "reload starts with an empty cache")
	assert.Contains(t, get(t, s, "/").Body.String(), "https://example.com/fork")
	assert.Same(t, cfg, s.Config())

	bad := config.DefaultConfig()
	bad.Server.Port = 0
	assert.Error(t, s.Reload(bad))
	assert.Same(t, cfg, s.Config(), "failed reload keeps the running site")
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Format = "xml"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s, err := New(config.DefaultConfig(), WithLogger(logger))
	require.NoError(t, err)
	get(t, s, "/nope")

	out := buf.String()
	assert.Contains(t, out, "msg=request")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "level=WARN")
}
