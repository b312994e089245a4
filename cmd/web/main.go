package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"artisanalley/web/internal/backend"
	"artisanalley/web/internal/catalog"
	"artisanalley/web/internal/config"
	"artisanalley/web/internal/handlers"
	"artisanalley/web/internal/jobs"
	"artisanalley/web/internal/log"
	"artisanalley/web/internal/server"
	"artisanalley/web/internal/session"
)

func main() {
	// .env is optional; config falls back to defaults and env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	backendClient, err := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("backend client init failed")
	}

	redisClient := newRedisClient(cfg, logger)
	catalogCache := catalog.NewCache(backendClient, redisClient, cfg.Catalog.CacheTTL, logger)

	store := session.NewStore(session.StoreConfig{
		TokenCookie:   cfg.Session.TokenCookie,
		ProfileCookie: cfg.Session.ProfileCookie,
		TTL:           cfg.Session.TTL,
		Secure:        cfg.Session.Secure,
	})

	handlerSet := handlers.NewHandlerSet(logger, cfg, backendClient, catalogCache, store)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	scheduler := jobs.NewScheduler(catalogCache, cfg.Catalog.RefreshSpec, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler, redisClient)
}

// newRedisClient connects the optional catalog cache. A missing or
// unreachable redis only disables caching.
func newRedisClient(cfg *config.AppConfig, logger zerolog.Logger) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unreachable, catalog cache disabled")
		_ = client.Close()
		return nil
	}
	return client
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("forced shutdown failed")
		}
	}

	if scheduler != nil {
		cancel := scheduler.Stop()
		cancel()
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("redis close error")
		}
	}

	logger.Info().Msg("storefront exited cleanly")
}
