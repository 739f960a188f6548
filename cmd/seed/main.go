package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	product "github.com/anonymous-namo-1/golden-era/internal/products"
	"github.com/anonymous-namo-1/golden-era/internal/stores"
	"github.com/anonymous-namo-1/golden-era/pkg/config"
	"github.com/anonymous-namo-1/golden-era/pkg/db"
	"github.com/anonymous-namo-1/golden-era/pkg/logger"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	productsPath := flag.String("products", "", "path to a JSON array of products; the catalog is left untouched when empty")
	skipStores := flag.Bool("skip-stores", false, "do not replace the store list")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline for the seed run")
	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"database": cfg.Mongo.Database,
	})

	client, err := db.New(ctx, cfg.Mongo, logg, db.Options{})
	requireResource(ctx, logg, "mongo", err)
	defer func() {
		if err := client.Close(context.Background()); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	if *productsPath != "" {
		f, err := os.Open(*productsPath)
		requireResource(ctx, logg, "products file", err)
		catalog, err := product.LoadCatalog(f)
		_ = f.Close()
		requireResource(ctx, logg, "products file", err)

		err = product.NewRepository(client).ReplaceAll(ctx, catalog)
		requireResource(ctx, logg, "seed products", err)
		logg.Info(logg.WithField(ctx, "count", len(catalog)), "products seeded")
	}

	if !*skipStores {
		defaults := stores.DefaultStores()
		err := stores.NewRepository(client).ReplaceAll(ctx, defaults)
		requireResource(ctx, logg, "seed stores", err)
		logg.Info(logg.WithField(ctx, "count", len(defaults)), "stores seeded")
	}

	requireResource(ctx, logg, "mongo indexes", client.EnsureIndexes(ctx))
	logg.Info(ctx, "seed complete")
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
