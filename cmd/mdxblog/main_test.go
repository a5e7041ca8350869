package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loke-dev/mdx-blog/internal/config"
	"github.com/loke-dev/mdx-blog/internal/export"
	"github.com/loke-dev/mdx-blog/pkg/server"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mdxblog "+version)
}

func TestRoutesCommand_JSON(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "routes", "--json")
	require.NoError(t, err)

	var table []server.RouteEntry
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	require.Len(t, table, 1)
	assert.Equal(t, "/", table[0].Path)
}

func TestRoutesCommand_Table(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "static")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)

	_, err := execute(t, "init", "--no-interactive", "--out", path,
		"--repository", "https://github.com/example/blog", "--port", "8080")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/example/blog", cfg.Site.RepositoryURL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644))

	_, err := execute(t, "init", "--no-interactive", "--out", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "init", "--no-interactive", "--out", path, "--force")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Server.Port, cfg.Server.Port)
}

func TestInitCommand_InvalidPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)

	_, err := execute(t, "init", "--no-interactive", "--out", path, "--port", "70000")
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	static := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(static, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "styles.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(config.FileName, []byte("site:\n  static_dir: public\n"), 0o644))

	out := filepath.Join(dir, "dist")
	_, err := execute(t, "export", "--out", out)
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="/static/styles.css"`)
	assert.FileExists(t, filepath.Join(out, export.NotFoundFile))
	assert.FileExists(t, filepath.Join(out, "static", "styles.css"))
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: -1\n"), 0o644))

	_, err := execute(t, "routes", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func serveConfig(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	root := newRootCommand()
	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	require.NoError(t, serve.ParseFlags(args))

	host, _ := serve.Flags().GetString("host")
	port, _ := serve.Flags().GetInt("port")
	watch, _ := serve.Flags().GetBool("watch")
	return serveOptions{host: host, port: port, watch: watch}.config(serve)
}

func TestServeConfig_FlagsFixInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 70000\n"), 0o644))

	_, err := serveConfig(t, "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	cfg, err := serveConfig(t, "--config", path, "--port", "8081", "--host", "0.0.0.0", "--watch")
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.True(t, cfg.Dev.Watch)
}

func TestServeConfig_UnsetFlagsKeepFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("server:\n  host: example.local\n  port: 9000\n"), 0o644))

	cfg, err := serveConfig(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "example.local", cfg.Server.Host)
	assert.False(t, cfg.Dev.Watch)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
