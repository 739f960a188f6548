package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/anonymous-namo-1/golden-era/api/routes"
	"github.com/anonymous-namo-1/golden-era/internal/cart"
	"github.com/anonymous-namo-1/golden-era/internal/leads"
	"github.com/anonymous-namo-1/golden-era/internal/orders"
	product "github.com/anonymous-namo-1/golden-era/internal/products"
	"github.com/anonymous-namo-1/golden-era/internal/stores"
	"github.com/anonymous-namo-1/golden-era/internal/wishlist"
	"github.com/anonymous-namo-1/golden-era/pkg/config"
	"github.com/anonymous-namo-1/golden-era/pkg/db"
	"github.com/anonymous-namo-1/golden-era/pkg/logger"
	"github.com/anonymous-namo-1/golden-era/pkg/metrics"
	"github.com/anonymous-namo-1/golden-era/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	requireResource(context.Background(), logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		registry    *prometheus.Registry
		httpMetrics *metrics.HTTPMetrics
		dbOpts      db.Options
	)
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		httpMetrics = metrics.NewHTTPMetrics(registry)
		dbOpts.Monitor = metrics.NewStoreMetrics(registry).CommandMonitor()
	}

	dbClient, err := db.New(ctx, cfg.Mongo, logg, dbOpts)
	requireResource(ctx, logg, "mongo", err)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := dbClient.Close(closeCtx); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if cfg.Mongo.EnsureIndexes {
		requireResource(ctx, logg, "mongo indexes", dbClient.EnsureIndexes(ctx))
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		requireResource(ctx, logg, "redis", err)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(ctx, "redis not configured; lead rate limiting and order idempotency disabled")
	}

	productService, err := product.NewService(product.NewRepository(dbClient))
	requireResource(ctx, logg, "product service", err)
	cartService, err := cart.NewService(cart.NewRepository(dbClient))
	requireResource(ctx, logg, "cart service", err)
	wishlistService, err := wishlist.NewService(wishlist.NewRepository(dbClient))
	requireResource(ctx, logg, "wishlist service", err)
	leadService, err := leads.NewService(leads.NewRepository(dbClient))
	requireResource(ctx, logg, "lead service", err)
	storeService, err := stores.NewService(stores.NewRepository(dbClient))
	requireResource(ctx, logg, "store service", err)
	orderService, err := orders.NewService(orders.NewRepository(dbClient), logg)
	requireResource(ctx, logg, "order service", err)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	runCtx := logg.WithFields(ctx, map[string]any{
		"env":        cfg.App.Env,
		"addr":       addr,
		"api_prefix": cfg.App.APIPrefix,
	})
	logg.Info(runCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			httpMetrics,
			productService,
			cartService,
			wishlistService,
			leadService,
			storeService,
			orderService,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(runCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(runCtx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error(runCtx, "graceful shutdown failed", err)
	}
	logg.Info(runCtx, "api server stopped")
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
