package ledger

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/transactions", h.ListTransactions)
	r.Get("/restock-orders", h.ListOrders)
	r.Post("/restock-orders", h.CreateOrder)
	r.Post("/restock-orders/{id}/receive", h.ReceiveOrder)
	r.Post("/restock-orders/{id}/cancel", h.CancelOrder)
}
