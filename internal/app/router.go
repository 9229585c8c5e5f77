package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/meridian-ims/meridian-ims/internal/archive"
	"github.com/meridian-ims/meridian-ims/internal/categories"
	"github.com/meridian-ims/meridian-ims/internal/insights"
	"github.com/meridian-ims/meridian-ims/internal/ledger"
	"github.com/meridian-ims/meridian-ims/internal/observability"
	"github.com/meridian-ims/meridian-ims/internal/products"
	"github.com/meridian-ims/meridian-ims/internal/reports"
	"github.com/meridian-ims/meridian-ims/internal/sales"
	"github.com/meridian-ims/meridian-ims/internal/warehouses"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger            *slog.Logger
	Config            *Config
	CategoriesHandler *categories.Handler
	ProductsHandler   *products.Handler
	WarehousesHandler *warehouses.Handler
	SalesHandler      *sales.Handler
	LedgerHandler     *ledger.Handler
	InsightsHandler   *insights.Handler
	ArchiveHandler    *archive.Handler
	ReportsHandler    *reports.Handler
	Metrics           *observability.Metrics
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		params.CategoriesHandler.MountRoutes(api)
		params.ProductsHandler.MountRoutes(api)
		params.WarehousesHandler.MountRoutes(api)
		params.SalesHandler.MountRoutes(api)
		params.LedgerHandler.MountRoutes(api)
		params.InsightsHandler.MountRoutes(api)
		params.ArchiveHandler.MountRoutes(api)
		params.ReportsHandler.MountRoutes(api)
	})

	return r
}
