package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harisahmad000005/osint-news-platform/internal/cache"
	"github.com/harisahmad000005/osint-news-platform/internal/config"
	"github.com/harisahmad000005/osint-news-platform/internal/events"
	"github.com/harisahmad000005/osint-news-platform/internal/scraper"
	"github.com/harisahmad000005/osint-news-platform/internal/service"
	"github.com/harisahmad000005/osint-news-platform/internal/storage/postgres"
	"github.com/harisahmad000005/osint-news-platform/pkg/log"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	lg := setupLogger(cfg.Env)
	slog.SetDefault(lg)
	lg.Info("starting ingest-service", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	rootCtx = log.Into(rootCtx, lg)

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	store, err := postgres.New(dbCtx, cfg.DB.URL)
	dbCancel()
	if err != nil {
		lg.Error("postgres_connect_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}
	lg.Info("postgres_connected")

	opts := []service.Option{}

	var fpCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		redisCtx, redisCancel := context.WithTimeout(rootCtx, 5*time.Second)
		fpCache, err = cache.NewRedis(redisCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		redisCancel()
		if err != nil {
			lg.Error("redis_connect_failed", slog.String("err", err.Error()))
			rootCancel()
			store.Close()
			os.Exit(1)
		}
		opts = append(opts, service.WithFingerprintCache(fpCache))
		lg.Info("fingerprint_cache_enabled", slog.String("addr", cfg.Redis.Addr))
	}

	var publisher *events.NATSPublisher
	if cfg.Events.URL != "" {
		publisher, err = events.NewNATS(cfg.Events.URL, cfg.Events.Subject)
		if err != nil {
			lg.Error("nats_connect_failed", slog.String("err", err.Error()))
			rootCancel()
			store.Close()
			os.Exit(1)
		}
		opts = append(opts, service.WithPublisher(publisher))
		lg.Info("events_enabled", slog.String("subject", cfg.Events.Subject))
	}

	svc := service.New(store, *cfg, opts...)
	lg.Info("service_initialized")

	httpClient := &http.Client{Timeout: cfg.Timeouts.Service}
	rssScraper := scraper.NewRSS(httpClient)

	pollDone := make(chan struct{})
	go func() {
		defer close(pollDone)

		if err := svc.StartPolling(rootCtx, rssScraper); err != nil {
			lg.Error("polling_start_failed", slog.String("err", err.Error()))
		}
	}()

	<-rootCtx.Done()
	lg.Info("shutdown_requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	select {
	case <-pollDone:
		lg.Info("polling_stopped")
	case <-shutdownCtx.Done():
		lg.Warn("polling_force_stop")
	}
	shutdownCancel()

	if publisher != nil {
		publisher.Close()
	}
	if fpCache != nil {
		if err := fpCache.Close(); err != nil {
			lg.Warn("redis_close_failed", slog.String("err", err.Error()))
		}
	}

	rootCancel()
	store.Close()

	lg.Info("service_stopped")
	os.Exit(0)
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var lg *slog.Logger

	switch env {
	case envLocal:
		lg = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		lg = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		lg = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		lg = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return lg
}
