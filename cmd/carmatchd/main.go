package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carmatch/internal/api"
	"carmatch/internal/catalog"
	"carmatch/internal/config"
	"carmatch/internal/daemon"
	"carmatch/internal/logging"
	"carmatch/internal/match"
	"carmatch/internal/xcatalog"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("ensure directories: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	store, err := catalog.OpenStore(cfg.CatalogDBPath())
	if err != nil {
		logger.Error("open catalog store", logging.Error(err))
		os.Exit(1)
	}

	registry := match.BuiltinRegistry()

	var resolver api.TrimResolver
	client, err := xcatalog.New(cfg.XCatalog.BaseURL, cfg.XCatalog.Country,
		xcatalog.WithRateLimit(cfg.XCatalog.RequestsPerSecond),
		xcatalog.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.XCatalog.RequestTimeout) * time.Second,
		}))
	if err != nil {
		logger.Error("init upstream catalogue client", logging.Error(err))
		os.Exit(1)
	}
	resolver = client

	d, err := daemon.New(cfg, store, registry, resolver, logger)
	if err != nil {
		logger.Error("create daemon", logging.Error(err))
		os.Exit(1)
	}
	defer d.Close()

	if err := d.Start(ctx); err != nil {
		logger.Error("daemon start", logging.Error(err))
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("carmatchd shutting down")
}
