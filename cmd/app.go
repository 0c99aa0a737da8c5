package cmd

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"storefront.GO/api"
	"storefront.GO/catalog"
	"storefront.GO/config"
	"storefront.GO/core/cache"
	"storefront.GO/magento"
	"storefront.GO/service/storefront"
	"storefront.GO/snapshot"
)

// ResponseCachePrefix namespaces facet and category responses in Redis.
const ResponseCachePrefix = "storefront:"

// App is the wired process: config, logger, backends and the storefront service.
type App struct {
	Config     *config.Config
	Logger     *zap.Logger
	Redis      *redis.Client
	Magento    *magento.Client
	Storefront *storefront.Service
}

// NewApp loads configuration and wires every dependency. Redis is optional.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := config.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if cfg.Magento.Endpoint == "" {
		logger.Warn("MAGENTO_ENDPOINT is not set, upstream calls will fail")
	}

	rdb := config.NewRedis(cfg.Redis, logger)
	client := magento.NewClient(cfg.Magento, logger)
	svc := storefront.New(storefront.Options{
		Upstream:   client,
		Attributes: catalog.AttributesFromConfig(cfg.Magento),
		Cache:      cache.NewStore(rdb, ResponseCachePrefix),
		Snapshots:  snapshot.New(cache.NewStore(rdb, snapshot.KeyPrefix), cfg.Cache.SnapshotTTL),
		TTL:        cfg.Cache,
		Logger:     logger,
	})
	return &App{Config: cfg, Logger: logger, Redis: rdb, Magento: client, Storefront: svc}, nil
}

// Deps returns the route dependencies.
func (a *App) Deps() *api.Deps {
	return &api.Deps{
		Storefront: a.Storefront,
		Proxy:      a.Magento,
		Logger:     a.Logger,
	}
}

// Close releases the Redis connection and flushes the logger.
func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	_ = a.Logger.Sync()
}
