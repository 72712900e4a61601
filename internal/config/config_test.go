package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Catalog.Source != SourceEmbedded {
		t.Errorf("source = %q, want %q", cfg.Catalog.Source, SourceEmbedded)
	}
	if cfg.Catalog.Path != "/events.json" {
		t.Errorf("path = %q, want /events.json", cfg.Catalog.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yaml := `
server:
  port: 9090
  host: "0.0.0.0"
  shutdown_timeout: 3s
catalog:
  source: file
  file: /srv/events.json
log:
  level: debug
`
	if err := os.WriteFile(cfgPath, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("shutdown_timeout = %v, want 3s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Catalog.Source != SourceFile || cfg.Catalog.File != "/srv/events.json" {
		t.Errorf("catalog = %+v", cfg.Catalog)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
	}

	// Defaults should still be applied for unspecified fields.
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("read_timeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Catalog.Path != "/events.json" {
		t.Errorf("path = %q, want /events.json", cfg.Catalog.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := defaultConfig()
	err := cfg.ApplyEnv(envMap(map[string]string{
		"BOOKER_HOST":           "0.0.0.0",
		"BOOKER_PORT":           "9999",
		"BOOKER_CATALOG_SOURCE": "postgres",
		"BOOKER_DATABASE_URL":   "postgres://localhost/booker",
		"BOOKER_LOG_LEVEL":      "warn",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}

	if got := cfg.Addr(); got != "0.0.0.0:9999" {
		t.Errorf("Addr() = %q, want 0.0.0.0:9999", got)
	}
	if cfg.Catalog.Source != SourcePostgres {
		t.Errorf("source = %q, want postgres", cfg.Catalog.Source)
	}
	if cfg.Catalog.DatabaseURL != "postgres://localhost/booker" {
		t.Errorf("database_url = %q", cfg.Catalog.DatabaseURL)
	}
	if cfg.LogLevel() != slog.LevelWarn {
		t.Errorf("LogLevel() = %v, want warn", cfg.LogLevel())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestApplyEnvBadPort(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.ApplyEnv(envMap(map[string]string{"BOOKER_PORT": "eighty"})); err == nil {
		t.Error("expected an error for a non-numeric port")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080 unchanged", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"relative path", func(c *Config) { c.Catalog.Path = "events.json" }, "catalog.path"},
		{"file without file", func(c *Config) { c.Catalog.Source = SourceFile }, "catalog.file"},
		{"postgres without url", func(c *Config) { c.Catalog.Source = SourcePostgres }, "database_url"},
		{"unknown source", func(c *Config) { c.Catalog.Source = "s3" }, "unknown catalog.source"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLogLevelFallback(t *testing.T) {
	cfg := defaultConfig()
	cfg.Log.Level = "nonsense"
	if got := cfg.LogLevel(); got != slog.LevelInfo {
		t.Errorf("LogLevel() = %v, want info", got)
	}
}
