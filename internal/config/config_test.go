package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Source.Type != "algolia" {
		t.Errorf("expected algolia source, got %q", cfg.Source.Type)
	}
	if cfg.Source.URL != "https://hn.algolia.com/api/v1/search" {
		t.Errorf("unexpected default url %q", cfg.Source.URL)
	}
	if cfg.Key() != "search" {
		t.Errorf("expected search key, got %q", cfg.Key())
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults do not validate: %v", err)
	}
}

func TestTimeoutDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"2m", 2 * time.Minute},
		{"", 15 * time.Second},
		{"invalid", 15 * time.Second},
		{"-1s", 15 * time.Second},
	}
	for _, tt := range tests {
		cfg := &Config{Timeout: tt.input}
		if got := cfg.TimeoutDuration(); got != tt.want {
			t.Errorf("TimeoutDuration(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestKeyDefault(t *testing.T) {
	if got := (&Config{}).Key(); got != "search" {
		t.Errorf("expected default key search, got %q", got)
	}
	if got := (&Config{SearchKey: "term"}).Key(); got != "term" {
		t.Errorf("expected custom key term, got %q", got)
	}
}

func TestStoreBackend(t *testing.T) {
	t.Setenv("HACKERSTORIES_STORE", "")
	if got := (&Config{}).StoreBackend(); got != "sqlite" {
		t.Errorf("expected sqlite default, got %q", got)
	}
	if got := (&Config{Store: StoreConfig{Backend: "json"}}).StoreBackend(); got != "json" {
		t.Errorf("expected json, got %q", got)
	}

	t.Setenv("HACKERSTORIES_STORE", "memory")
	if got := (&Config{Store: StoreConfig{Backend: "json"}}).StoreBackend(); got != "memory" {
		t.Errorf("expected env override memory, got %q", got)
	}
}

func TestStoreDir(t *testing.T) {
	if got := (&Config{Store: StoreConfig{Dir: "/tmp/x"}}).StoreDir(); got != "/tmp/x" {
		t.Errorf("expected configured dir, got %q", got)
	}
	if got := (&Config{}).StoreDir(); got != StateDir() {
		t.Errorf("expected state dir, got %q", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `source:
  name: Front page
  type: rss
  url: https://hnrss.org/frontpage
store:
  backend: json
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.Type != "rss" || cfg.Source.URL != "https://hnrss.org/frontpage" {
		t.Errorf("unexpected source: %+v", cfg.Source)
	}
	if cfg.Store.Backend != "json" {
		t.Errorf("expected json backend, got %q", cfg.Store.Backend)
	}
	// Omitted fields keep their defaults
	if cfg.Timeout != "15s" {
		t.Errorf("expected default timeout 15s, got %q", cfg.Timeout)
	}
	if cfg.Key() != "search" {
		t.Errorf("expected default key, got %q", cfg.Key())
	}
}

func TestLoadNonexistentWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.Type != "algolia" {
		t.Errorf("expected default source, got %q", cfg.Source.Type)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("source: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"https algolia", Config{Source: Source{Name: "HN", Type: "algolia", URL: "https://hn.algolia.com/api/v1/search"}}, false},
		{"http rss", Config{Source: Source{Name: "HN", Type: "rss", URL: "http://example.com/feed"}}, false},
		{"demo without url", Config{Source: Source{Name: "Demo", Type: "demo"}}, false},
		{"missing url", Config{Source: Source{Name: "HN", Type: "algolia"}}, true},
		{"file scheme", Config{Source: Source{Name: "HN", Type: "rss", URL: "file:///etc/passwd"}}, true},
		{"unknown type", Config{Source: Source{Name: "HN", Type: "graphql", URL: "https://example.com"}}, true},
		{"bad timeout", Config{Source: Source{Type: "demo"}, Timeout: "soon"}, true},
		{"bad backend", Config{Source: Source{Type: "demo"}, Store: StoreConfig{Backend: "redis"}}, true},
		{"json backend", Config{Source: Source{Type: "demo"}, Store: StoreConfig{Backend: "json"}}, false},
	}
	for _, tt := range tests {
		err := validate(&tt.cfg)
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}
