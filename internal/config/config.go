// Package config loads and saves the site configuration (mdxblog.yaml).
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory
const FileName = "mdxblog.yaml"

// EnvPrefix prefixes environment overrides, e.g. MDXBLOG_SERVER_PORT
const EnvPrefix = "MDXBLOG"

// Config represents mdxblog.yaml
type Config struct {
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	Site   SiteConfig   `mapstructure:"site" yaml:"site"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Cache  CacheConfig  `mapstructure:"cache" yaml:"cache"`
	Dev    DevConfig    `mapstructure:"dev" yaml:"dev"`

	// Path is the file the config was read from, "" for defaults only
	Path string `mapstructure:"-" yaml:"-"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// SiteConfig contains the content knobs of the landing page
type SiteConfig struct {
	// Source repository linked from the hero, CTA and footer
	RepositoryURL string `mapstructure:"repository_url" yaml:"repository_url"`

	// Footer link group
	Links []Link `mapstructure:"links" yaml:"links"`

	// Directory served under /static, empty to disable
	StaticDir string `mapstructure:"static_dir" yaml:"static_dir,omitempty"`
}

// Link is a labelled outbound link
type Link struct {
	Label string `mapstructure:"label" yaml:"label"`
	URL   string `mapstructure:"url" yaml:"url"`
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug | info | warn | error
	Format string `mapstructure:"format" yaml:"format"` // text | json
}

// CacheConfig sizes the rendered-page cache
type CacheConfig struct {
	MaxEntries int `mapstructure:"max_entries" yaml:"max_entries"`
}

// DevConfig contains development server configuration
type DevConfig struct {
	Watch    bool     `mapstructure:"watch" yaml:"watch"`
	Patterns []string `mapstructure:"patterns" yaml:"patterns"`
}

// DefaultRepositoryURL is the template's source repository
const DefaultRepositoryURL = "https://github.com/loke-dev/remix-mdx-blog-template"

// DefaultLinks returns the footer links shipped with the template
func DefaultLinks() []Link {
	return []Link{
		{Label: "Remix", URL: "https://github.com/remix-run/remix"},
		{Label: "MDX", URL: "https://mdxjs.com/"},
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "localhost",
			Port:            3000,
			ShutdownTimeout: 5 * time.Second,
		},
		Site: SiteConfig{
			RepositoryURL: DefaultRepositoryURL,
			Links:         DefaultLinks(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Cache: CacheConfig{MaxEntries: 64},
		Dev: DevConfig{
			Patterns: []string{"**/*.yaml", "**/*.css", "**/*.js"},
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("site.repository_url", d.Site.RepositoryURL)
	v.SetDefault("site.static_dir", d.Site.StaticDir)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("cache.max_entries", d.Cache.MaxEntries)
	v.SetDefault("dev.watch", d.Dev.Watch)
	v.SetDefault("dev.patterns", d.Dev.Patterns)
}

// Load reads configuration from path and the environment.
// With an empty path, mdxblog.yaml in the working directory is used when
// present; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	switch {
	case !v.IsSet("site.links"):
		c.Site.Links = DefaultLinks()
	case c.Site.Links == nil:
		// links: [] turns the footer link group off
		c.Site.Links = []Link{}
	}
	c.Path = v.ConfigFileUsed()

	return &c, nil
}

// Save writes the config to path as YAML, creating parent directories
func Save(c *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Addr returns the host:port listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: %d out of range 1-65535", c.Server.Port))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout: must not be negative"))
	}
	if err := validateURL(c.Site.RepositoryURL); err != nil {
		errs = append(errs, fmt.Errorf("site.repository_url: %w", err))
	}
	for i, link := range c.Site.Links {
		if link.Label == "" {
			errs = append(errs, fmt.Errorf("site.links[%d].label: must not be empty", i))
		}
		if err := validateURL(link.URL); err != nil {
			errs = append(errs, fmt.Errorf("site.links[%d].url: %w", i, err))
		}
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q is not an http(s) URL", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}
