package app

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	kv := store.NewMemory()
	require.NoError(t, seed.Run(context.Background(), kv, slog.Default()))

	productRepo := products.NewRepository(kv)
	categoryRepo := categories.NewRepository(kv)
	warehouseRepo := warehouses.NewRepository(kv)
	saleRepo := sales.NewRepository(kv)

	ledgerService := ledger.NewService(ledger.NewRepository(kv))
	productService := products.NewService(productRepo, ledgerService)
	categoryService := categories.NewService(categoryRepo, productRepo)
	warehouseService := warehouses.NewService(warehouseRepo)
	saleService := sales.NewService(saleRepo, productRepo, ledgerService, sales.ServiceConfig{})
	insightsService := insights.NewService(productRepo, saleRepo, warehouseRepo, categoryRepo)

	cfg := &Config{AppEnv: "test"}
	logger := slog.Default()

	return NewRouter(RouterParams{
		Logger:            logger,
		Config:            cfg,
		CategoriesHandler: categories.NewHandler(logger, categoryService),
		ProductsHandler:   products.NewHandler(logger, productService),
		WarehousesHandler: warehouses.NewHandler(logger, warehouseService),
		SalesHandler:      sales.NewHandler(logger, saleService),
		LedgerHandler:     ledger.NewHandler(logger, ledgerService),
		InsightsHandler:   insights.NewHandler(logger, insightsService),
		ArchiveHandler:    archive.NewHandler(logger, archive.NewService(productRepo, saleRepo, warehouseRepo)),
		ReportsHandler:    reports.NewHandler(logger, reports.NewService(insightsService)),
		Metrics:           observability.NewMetrics(),
	})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestAPIRoutesMounted(t *testing.T) {
	router := newTestRouter(t)

	paths := []string{
		"/api/v1/categories",
		"/api/v1/products",
		"/api/v1/warehouses",
		"/api/v1/sales",
		"/api/v1/transactions",
		"/api/v1/restock-orders",
		"/api/v1/insights/summary",
		"/api/v1/insights/inventory",
		"/api/v1/insights/low-stock",
		"/api/v1/insights/sales",
		"/api/v1/insights/warehouses",
		"/api/v1/archive",
	}
	for _, path := range paths {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, "GET %s", path)
	}
}

func TestSeededProductsServed(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "USB-C Fast Charger 65W")
}

func TestReportDownload(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/reports/inventory.xlsx", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rr.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Disposition"), "attachment;"))
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
}
