package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const appName = "hackerstories"

type Source struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"` // "algolia", "rss" or "demo"
	URL   string `yaml:"url"`
	Query string `yaml:"query"`
}

type StoreConfig struct {
	Backend string `yaml:"backend"`
	Dir     string `yaml:"dir,omitempty"`
}

type Config struct {
	Source        Source      `yaml:"source"`
	Timeout       string      `yaml:"timeout"`
	SearchKey     string      `yaml:"search_key,omitempty"`
	DefaultSearch string      `yaml:"default_search,omitempty"`
	Store         StoreConfig `yaml:"store"`
}

// TimeoutDuration bounds the startup fetch. Defaults to 15s.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

func (c *Config) Key() string {
	if c.SearchKey == "" {
		return "search"
	}
	return c.SearchKey
}

// StoreBackend returns the configured backend, overridden by
// HACKERSTORIES_STORE when set.
func (c *Config) StoreBackend() string {
	if env := os.Getenv("HACKERSTORIES_STORE"); env != "" {
		return env
	}
	if c.Store.Backend == "" {
		return "sqlite"
	}
	return c.Store.Backend
}

func (c *Config) StoreDir() string {
	if c.Store.Dir != "" {
		return c.Store.Dir
	}
	return StateDir()
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

func StateDir() string {
	return filepath.Join(xdg.StateHome, appName)
}

func LogPath() string {
	return filepath.Join(StateDir(), "debug.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (DefaultConfigPath when empty). Fields the
// file leaves out keep their default values. A missing file is created from
// the defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: the embedded defaults still apply
			_ = writeDefaults(path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	s := cfg.Source
	switch s.Type {
	case "demo":
	case "algolia", "rss":
		if s.URL == "" {
			return fmt.Errorf("source %q: url is required", s.Name)
		}
		u, err := url.Parse(s.URL)
		if err != nil {
			return fmt.Errorf("source %q: invalid url: %w", s.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("source %q: url scheme must be http or https, got %q", s.Name, u.Scheme)
		}
	default:
		return fmt.Errorf("source %q: unknown type %q (valid: algolia, rss, demo)", s.Name, s.Type)
	}

	if cfg.Timeout != "" {
		if _, err := time.ParseDuration(cfg.Timeout); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
		}
	}

	validBackends := map[string]bool{"": true, "sqlite": true, "json": true, "memory": true}
	if !validBackends[cfg.Store.Backend] {
		return fmt.Errorf("unknown store backend %q (valid: sqlite, json, memory)", cfg.Store.Backend)
	}
	return nil
}
