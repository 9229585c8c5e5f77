package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/meridian-ims/meridian-ims/internal/app"
	"github.com/meridian-ims/meridian-ims/internal/archive"
	"github.com/meridian-ims/meridian-ims/internal/categories"
	"github.com/meridian-ims/meridian-ims/internal/insights"
	"github.com/meridian-ims/meridian-ims/internal/ledger"
	"github.com/meridian-ims/meridian-ims/internal/observability"
	"github.com/meridian-ims/meridian-ims/internal/products"
	"github.com/meridian-ims/meridian-ims/internal/reports"
	"github.com/meridian-ims/meridian-ims/internal/sales"
	"github.com/meridian-ims/meridian-ims/internal/seed"
	"github.com/meridian-ims/meridian-ims/internal/store"
	"github.com/meridian-ims/meridian-ims/internal/warehouses"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		return
	}

	logger := app.NewLogger(cfg)
	slog.SetDefault(logger)

	kv, closer, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("open store", slog.String("driver", cfg.StoreDriver), slog.Any("error", err))
		return
	}
	if closer != nil {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Warn("store close", slog.Any("error", err))
			}
		}()
	}

	if cfg.SeedOnStart {
		if err := seed.Run(ctx, kv, logger); err != nil {
			logger.Error("seed store", slog.Any("error", err))
			return
		}
	}

	productRepo := products.NewRepository(kv)
	categoryRepo := categories.NewRepository(kv)
	warehouseRepo := warehouses.NewRepository(kv)
	saleRepo := sales.NewRepository(kv)
	ledgerRepo := ledger.NewRepository(kv)

	ledgerService := ledger.NewService(ledgerRepo)
	productService := products.NewService(productRepo, ledgerService)
	categoryService := categories.NewService(categoryRepo, productRepo)
	warehouseService := warehouses.NewService(warehouseRepo)
	saleService := sales.NewService(saleRepo, productRepo, ledgerService, sales.ServiceConfig{
		EnforceStock: cfg.EnforceStock,
	})
	insightsService := insights.NewService(productRepo, saleRepo, warehouseRepo, categoryRepo)
	archiveService := archive.NewService(productRepo, saleRepo, warehouseRepo)
	reportsService := reports.NewService(insightsService)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		CategoriesHandler: categories.NewHandler(logger, categoryService),
		ProductsHandler:   products.NewHandler(logger, productService),
		WarehousesHandler: warehouses.NewHandler(logger, warehouseService),
		SalesHandler:      sales.NewHandler(logger, saleService),
		LedgerHandler:     ledger.NewHandler(logger, ledgerService),
		InsightsHandler:   insights.NewHandler(logger, insightsService),
		ArchiveHandler:    archive.NewHandler(logger, archiveService),
		ReportsHandler:    reports.NewHandler(logger, reportsService),
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

func openStore(ctx context.Context, cfg *app.Config) (store.KV, io.Closer, error) {
	switch cfg.StoreDriver {
	case app.StoreDriverMemory:
		return store.NewMemory(), nil, nil
	case app.StoreDriverPostgres:
		pg, err := store.OpenPostgres(ctx, cfg.PGDSN)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg, nil
	default:
		db, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	}
}
