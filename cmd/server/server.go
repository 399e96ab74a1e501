package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wizarding-catalog/internal/clients/external"
	"github.com/KirkDiggler/wizarding-catalog/internal/config"
	v1 "github.com/KirkDiggler/wizarding-catalog/internal/handlers/api/v1"
	"github.com/KirkDiggler/wizarding-catalog/internal/orchestrators/catalog"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/clock"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/wizarding-catalog/internal/redis"
	responsecache "github.com/KirkDiggler/wizarding-catalog/internal/repositories/response_cache"
	"github.com/KirkDiggler/wizarding-catalog/internal/store"
)

var httpPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the catalog HTTP server. The catalog is fetched once in the background on startup.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP server port (overrides SERVER_PORT)")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if httpPort != 0 {
		cfg.ServerPort = httpPort
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.New()

	cache, closeCache, err := newResponseCache(ctx, cfg, clk)
	if err != nil {
		return err
	}
	defer closeCache()

	gateway, err := external.New(&external.Config{
		BaseURL:     cfg.CatalogBaseURL,
		HTTPTimeout: cfg.CatalogTimeout,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	cachedGateway, err := external.NewCachedClient(&external.CachedClientConfig{
		Client: gateway,
		Cache:  cache,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create cached catalog client: %w", err)
	}

	catalogStore, err := store.New(&store.Config{
		Client: cachedGateway,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	catalogService, err := catalog.NewOrchestrator(&catalog.Config{
		Store:          catalogStore,
		IDGenerator:    idgen.NewUUID("search"),
		Clock:          clk,
		SearchDebounce: cfg.SearchDebounce,
		PageSize:       cfg.PageSize,
		SessionTTL:     cfg.SearchSessionTTL,
		MaxSessions:    cfg.SearchMaxSessions,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog orchestrator: %w", err)
	}
	defer catalogService.Close()

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		CatalogService: catalogService,
		Logger:         logger,
		RequestTimeout: cfg.CatalogTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	go func() {
		out, err := catalogService.LoadCatalog(ctx, &catalog.LoadCatalogInput{})
		if err != nil {
			logger.Error("catalog load failed", "error", err)
			return
		}
		logger.Info("catalog loaded", "characters", out.Characters, "spells", out.Spells)
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown timeout exceeded, forcing close", "error", err)
			_ = srv.Close() // nolint:errcheck // already shutting down
		}

		logger.Info("server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With("app", "wizarding-catalog", "environment", cfg.Environment)
}

func newResponseCache(ctx context.Context, cfg *config.Config, clk clock.Clock) (responsecache.Repository, func(), error) {
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redisclient.Ping(ctx, client); err != nil {
			_ = client.Close() // nolint:errcheck // startup failure
			return nil, nil, err
		}

		cache, err := responsecache.NewRedis(&responsecache.RedisConfig{
			Client: client,
			Clock:  clk,
			TTL:    cfg.CacheTTL,
		})
		if err != nil {
			_ = client.Close() // nolint:errcheck // startup failure
			return nil, nil, fmt.Errorf("failed to create redis cache: %w", err)
		}

		return cache, func() { _ = client.Close() }, nil
	default:
		cache, err := responsecache.NewMemory(&responsecache.MemoryConfig{
			Clock: clk,
			TTL:   cfg.CacheTTL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create memory cache: %w", err)
		}

		return cache, func() {}, nil
	}
}
