package archive

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-ims/meridian-ims/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list archive", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to load archive")
		return
	}
	shared.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/archive", h.List)
}
