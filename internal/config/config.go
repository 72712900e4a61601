package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Catalog source kinds.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	Host            string        `yaml:"host"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type CatalogConfig struct {
	// Source selects where the catalog is read from: embedded, file or postgres.
	Source string `yaml:"source"`
	// Path is the URL path the catalog is served on.
	Path        string `yaml:"path"`
	File        string `yaml:"file"`
	DatabaseURL string `yaml:"database_url"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "127.0.0.1",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{
			Source: SourceEmbedded,
			Path:   "/events.json",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from BOOKER_* environment variables. Unset or
// empty variables leave the field alone.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("BOOKER_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := getenv("BOOKER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BOOKER_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := getenv("BOOKER_CATALOG_SOURCE"); v != "" {
		c.Catalog.Source = v
	}
	if v := getenv("BOOKER_CATALOG_FILE"); v != "" {
		c.Catalog.File = v
	}
	if v := getenv("BOOKER_DATABASE_URL"); v != "" {
		c.Catalog.DatabaseURL = v
	}
	if v := getenv("BOOKER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks that the configuration can start a server.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if !strings.HasPrefix(c.Catalog.Path, "/") {
		errs = append(errs, fmt.Errorf("catalog.path %q must start with /", c.Catalog.Path))
	}
	switch c.Catalog.Source {
	case SourceEmbedded:
	case SourceFile:
		if c.Catalog.File == "" {
			errs = append(errs, errors.New("catalog.file is required for the file source"))
		}
	case SourcePostgres:
		if c.Catalog.DatabaseURL == "" {
			errs = append(errs, errors.New("catalog.database_url is required for the postgres source"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown catalog.source %q", c.Catalog.Source))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Addr returns host:port for the listener.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LogLevel returns the slog level named by log.level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	lvl, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
