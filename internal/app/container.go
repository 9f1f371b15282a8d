// Package app assembles the service's shared dependencies.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/radiopassport/radio-passport/internal/config"
	"github.com/radiopassport/radio-passport/internal/directory"
	"github.com/radiopassport/radio-passport/internal/observability"
	"github.com/radiopassport/radio-passport/internal/providers"
	"github.com/radiopassport/radio-passport/internal/redisclient"
)

// Container bundles the long-lived collaborators handlers depend on.
type Container struct {
	Config        *config.Config
	Redis         *redis.Client
	Directory     *directory.Client
	Providers     *providers.Factory
	Observability *observability.Provider
}

// New wires the container. Redis is optional: when no URL is configured
// the directory client simply runs without response caching.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	obs, err := observability.Setup(ctx, cfg.Observability)
	if err != nil {
		return nil, fmt.Errorf("setup observability: %w", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisClient = redisclient.New(cfg.Redis)
		if err := redisclient.Ping(ctx, redisClient); err != nil {
			// Caching is best-effort; run without it rather than fail boot.
			slog.Warn("redis unreachable, directory caching disabled", "error", err)
			_ = redisClient.Close()
			redisClient = nil
		}
	}

	dir := directory.New(directory.Options{
		Config: cfg.Directory,
		Redis:  redisClient,
	})

	factory := providers.NewFactory(cfg, providers.Deps{Catalog: dir})

	return &Container{
		Config:        cfg,
		Redis:         redisClient,
		Directory:     dir,
		Providers:     factory,
		Observability: obs,
	}, nil
}

// Close releases container resources.
func (c *Container) Close(ctx context.Context) error {
	var firstErr error
	if c.Observability != nil {
		if err := c.Observability.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
