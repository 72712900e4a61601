package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/event-booker/booker/internal/config"
	"github.com/event-booker/booker/internal/frontend"
	"github.com/event-booker/booker/internal/metrics"
	"github.com/event-booker/booker/internal/server"
	"github.com/event-booker/booker/internal/storage/postgres"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type options struct {
	configPath string
	port       int
	migrate    bool
	seed       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to config file (defaults are used when empty)")
	flag.IntVar(&opts.port, "port", 0, "Override server port")
	flag.BoolVar(&opts.migrate, "migrate", false, "Create the events table (postgres source)")
	flag.BoolVar(&opts.seed, "seed", false, "Load the embedded catalog into postgres (implies -migrate)")
	flag.Parse()

	if err := run(opts); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("reading .env", "err", err)
	}

	cfg, err := loadConfig(opts, os.Getenv)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var source server.Source
	switch cfg.Catalog.Source {
	case config.SourceFile:
		source = server.FileSource{Path: cfg.Catalog.File}
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Catalog.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer pool.Close()

		if opts.migrate || opts.seed {
			if err := postgres.Migrate(ctx, pool); err != nil {
				return err
			}
			logger.Info("events table ready")
		}
		if opts.seed {
			events, err := frontend.SeedEvents()
			if err != nil {
				return err
			}
			if err := postgres.Seed(ctx, pool, events); err != nil {
				return err
			}
			logger.Info("seeded catalog", "events", len(events))
		}
		source = postgres.NewCatalogSource(pool)
	default:
		source = server.EmbeddedSource{}
	}
	logger.Info("catalog source", "source", source.Name(), "path", cfg.Catalog.Path)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := server.NewServer(cfg, source, metrics.New(reg), logger)
	return server.ListenAndServe(ctx, cfg, srv.Routes(), logger)
}

// loadConfig layers the config file, environment and flags, then validates
// the result.
func loadConfig(opts options, getenv func(string) string) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if opts.port > 0 {
		cfg.Server.Port = opts.port
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if (opts.migrate || opts.seed) && cfg.Catalog.Source != config.SourcePostgres {
		return nil, fmt.Errorf("-migrate and -seed need the postgres catalog source, got %q", cfg.Catalog.Source)
	}
	return cfg, nil
}
