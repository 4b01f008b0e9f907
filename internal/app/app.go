package app

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/urmii20/burrow/internal/config"
	"github.com/urmii20/burrow/internal/entity"
	"github.com/urmii20/burrow/internal/repository"
	"github.com/urmii20/burrow/internal/service"
	httpt "github.com/urmii20/burrow/internal/transport/http"
	"github.com/urmii20/burrow/pkg/cache"
	"github.com/urmii20/burrow/pkg/logger"
	"github.com/urmii20/burrow/pkg/metric"
	"github.com/urmii20/burrow/pkg/storage/mongodb"

	"golang.org/x/sync/errgroup"
)

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(eg, &cfg.Metrics, log)

	db, dbErr := initMongo(&cfg.Mongo, log)
	if dbErr != nil {
		return dbErr
	}
	defer closeMongo(ctx, db, log)

	warehouseCache, cacheErr := initCache(&cfg.Cache, log, metrics)
	if cacheErr != nil {
		return cacheErr
	}
	defer stopCache(warehouseCache)

	requestService := initRequestService(cfg, db, warehouseCache, log, metrics)

	if serverErr := initHTTPServer(ctx, eg, &cfg.HTTP, requestService, log, metrics); serverErr != nil {
		return serverErr
	}

	return waitForShutdown(eg)
}

func initMetrics(
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	return metrics
}

func initMongo(cfg *config.Mongo, log logger.Logger) (*mongodb.Mongo, error) {
	db, err := mongodb.NewMongo(
		cfg,
		log.With("component", "database"),
		mongodb.MaxConnAttempts(cfg.ConnAttempts),
		mongodb.BaseRetryDelay(cfg.BaseRetryDelay),
		mongodb.MaxRetryDelay(cfg.MaxRetryDelay),
		mongodb.ConnectTimeout(cfg.ConnectTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initMongo: %w", err)
	}
	return db, nil
}

func closeMongo(ctx context.Context, db *mongodb.Mongo, log logger.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(ctx); err != nil {
		log.Errorw("failed to disconnect from database", "error", err)
	}
}

func initCache(
	cfg *config.Cache,
	log logger.Logger,
	metrics metric.Factory,
) (cache.Cache[string, *entity.Warehouse], error) {
	warehouseCache, err := cache.NewLRUCache[string, *entity.Warehouse](
		"warehouse",
		cfg.Capacity,
		log.With("component", "cache"),
		metrics.Cache(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initCache: %w", err)
	}
	warehouseCache.StartCleanup(cfg.CleanupInterval)
	return warehouseCache, nil
}

func stopCache(warehouseCache cache.Cache[string, *entity.Warehouse]) {
	if warehouseCache != nil {
		warehouseCache.StopCleanup()
	}
}

func initRequestService(
	cfg *config.Config,
	db *mongodb.Mongo,
	warehouseCache cache.Cache[string, *entity.Warehouse],
	log logger.Logger,
	metrics metric.Factory,
) *service.RequestService {
	requestRepo := repository.NewRequestRepository(db, metrics.Storage())
	warehouseRepo := repository.NewWarehouseRepository(db, metrics.Storage())

	return service.NewRequestService(
		requestRepo,
		warehouseRepo,
		log.With("component", "request service"),
		warehouseCache,
		cfg.Cache.TTL,
	)
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.HTTP,
	requestService *service.RequestService,
	log logger.Logger,
	metrics metric.Factory,
) error {
	httpServer, err := httpt.NewHTTPServer(
		httpt.NewRequestHandler(requestService, log, metrics.HTTP()),
		cfg,
		log.With("component", "http server"),
	)
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && err != context.Canceled {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}
