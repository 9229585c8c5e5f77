package products

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products", h.List)
	r.Post("/products", h.Create)
	r.Get("/products/{id}", h.Get)
	r.Put("/products/{id}", h.Update)
	r.Post("/products/{id}/archive", h.Archive)
	r.Post("/products/{id}/unarchive", h.Unarchive)
	r.Post("/products/{id}/restock", h.Restock)
	r.Delete("/products/{id}", h.Delete)
}
