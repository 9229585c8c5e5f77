package warehouses

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/warehouses", h.List)
	r.Post("/warehouses", h.Create)
	r.Put("/warehouses/{id}", h.Update)
	r.Post("/warehouses/{id}/archive", h.Archive)
	r.Post("/warehouses/{id}/unarchive", h.Unarchive)
	r.Delete("/warehouses/{id}", h.Delete)
}
