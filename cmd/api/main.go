package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/warehublabs/warehub-backend/api/routes"
	"github.com/warehublabs/warehub-backend/internal/employees"
	"github.com/warehublabs/warehub-backend/internal/overview"
	"github.com/warehublabs/warehub-backend/internal/shelves"
	"github.com/warehublabs/warehub-backend/internal/stocks"
	"github.com/warehublabs/warehub-backend/internal/warehouses"
	"github.com/warehublabs/warehub-backend/pkg/config"
	"github.com/warehublabs/warehub-backend/pkg/db"
	"github.com/warehublabs/warehub-backend/pkg/logger"
	"github.com/warehublabs/warehub-backend/pkg/metrics"
	"github.com/warehublabs/warehub-backend/pkg/migrate"
	"github.com/warehublabs/warehub-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Redis only backs idempotency replay, so a dev environment without one
	// still boots.
	var redisClient *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Address != "" {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else if cfg.App.IsDev() {
		logg.Warn(context.Background(), "redis not configured, idempotency replay disabled")
	} else {
		logg.Error(context.Background(), "redis is required outside development", nil)
		os.Exit(1)
	}

	employeeService, err := employees.NewService(employees.ServiceParams{
		Repo: employees.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create employee service", err)
		os.Exit(1)
	}

	warehouseService, err := warehouses.NewService(warehouses.ServiceParams{
		Repo:     warehouses.NewRepository(dbClient.DB()),
		Tx:       dbClient,
		Managers: employeeService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create warehouse service", err)
		os.Exit(1)
	}

	stockService, err := stocks.NewService(stocks.ServiceParams{
		Repo:       stocks.NewRepository(dbClient.DB()),
		Tx:         dbClient,
		Warehouses: warehouseService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create stock service", err)
		os.Exit(1)
	}

	shelfService, err := shelves.NewService(shelves.ServiceParams{
		Repo: shelves.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create shelf service", err)
		os.Exit(1)
	}

	overviewService, err := overview.NewService(overview.ServiceParams{
		Warehouses: warehouseService,
		Stocks:     stockService,
		Scene:      cfg.Scene,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create overview service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:     cfg,
			Logger:     logg,
			DB:         dbClient,
			Redis:      redisClient,
			Metrics:    metrics.NewHTTPMetrics(registry),
			Registry:   registry,
			Warehouses: warehouseService,
			Stocks:     stockService,
			Shelves:    shelfService,
			Employees:  employeeService,
			Overview:   overviewService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
