package sales

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales", h.List)
	r.Post("/sales", h.Record)
	r.Post("/sales/{id}/archive", h.Archive)
	r.Post("/sales/{id}/unarchive", h.Unarchive)
	r.Delete("/sales/{id}", h.Delete)
}
