package insights

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/insights/summary", h.Summary)
	r.Get("/insights/inventory", h.Inventory)
	r.Get("/insights/low-stock", h.LowStock)
	r.Get("/insights/sales", h.SalesProfit)
	r.Get("/insights/warehouses", h.Utilization)
	r.Get("/insights/turnover/{productId}", h.StockTurnover)
}
