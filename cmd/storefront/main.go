package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abokichi/storefront/cart"
	"github.com/abokichi/storefront/catalog"
	"github.com/abokichi/storefront/config"
	"github.com/abokichi/storefront/kvstore"
	"github.com/abokichi/storefront/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	defaultCfg := config.DefaultConfig()
	listenDefault := defaultCfg.ListenAddr
	if value, ok := config.EnvString("STOREFRONT_LISTEN_ADDR"); ok {
		listenDefault = value
	}
	metricsDefault := defaultCfg.MetricsAddr
	if value, ok := config.EnvString("STOREFRONT_METRICS_ADDR"); ok {
		metricsDefault = value
	}
	catalogDefault := defaultCfg.CatalogPath
	if value, ok := config.EnvString("STOREFRONT_CATALOG"); ok {
		catalogDefault = value
	}
	stateDefault := defaultCfg.StatePath
	if value, ok := config.EnvString("STOREFRONT_STATE"); ok {
		stateDefault = value
	}
	timeoutDefault := int(defaultCfg.RequestTimeout / time.Second)
	if value, ok, err := config.EnvInt("STOREFRONT_TIMEOUT"); err != nil {
		fmt.Fprintf(os.Stderr, "invalid STOREFRONT_TIMEOUT: %v\n", err)
		os.Exit(1)
	} else if ok {
		timeoutDefault = value
	}

	listenAddr := flag.String("listen-addr", listenDefault, "Storefront listen address (e.g. :8080)")
	metricsAddr := flag.String("metrics-addr", metricsDefault, "Prometheus metrics listen address (e.g. :9090)")
	catalogPath := flag.String("catalog", catalogDefault, "Path to the catalog JSON file")
	catalogURL := flag.String("catalog-url", "", "Remote catalog page to scrape instead of a local file")
	statePath := flag.String("state", stateDefault, "Path to the persisted cart state file (empty for in-memory)")
	timeoutSec := flag.Int("timeout", timeoutDefault, "Remote catalog request timeout (seconds)")
	verbose := flag.Bool("v", false, "Enable verbose logging")

	flag.Parse()

	logger, level := newLogger(*verbose)
	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(level.Level())

	cfg := config.DefaultConfig()
	cfg.ListenAddr = *listenAddr
	cfg.MetricsAddr = *metricsAddr
	cfg.CatalogPath = *catalogPath
	cfg.CatalogURL = *catalogURL
	cfg.StatePath = *statePath
	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
	cfg.Verbose = *verbose
	if cfg.CatalogURL != "" {
		cfg.CatalogPath = ""
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		slog.Error("loading catalog", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("catalog loaded", slog.Int("products", cat.Len()))

	store, err := openStateStore(cfg.StatePath)
	if err != nil {
		slog.Error("opening state store", slog.Any("error", err))
		os.Exit(1)
	}
	cartStore := cart.NewStore(store)

	metrics := web.NewMetrics()
	srv, err := web.NewServer(cat, cartStore, metrics)
	if err != nil {
		slog.Error("initialising server", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		metricsServer = &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}),
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", slog.Any("error", err))
			}
		}()
		slog.Info("metrics server enabled", slog.String("addr", cfg.MetricsAddr))
	}

	pageServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv,
	}
	go func() {
		slog.Info("storefront listening", slog.String("addr", cfg.ListenAddr))
		if err := pageServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("storefront server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pageServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("storefront shutdown failed", slog.Any("error", err))
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("metrics server shutdown failed", slog.Any("error", err))
		}
	}
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogURL != "" {
		loader, err := catalog.NewLoader(cfg)
		if err != nil {
			return nil, err
		}
		return loader.Load()
	}
	return catalog.LoadFile(cfg.CatalogPath)
}

func openStateStore(path string) (kvstore.Store, error) {
	if path == "" {
		return kvstore.NewMemory(), nil
	}
	return kvstore.OpenFile(path)
}

func newLogger(verbose bool) (*slog.Logger, *slog.LevelVar) {
	level := &slog.LevelVar{}
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if isTerminal(os.Stdout) {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler), level
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
