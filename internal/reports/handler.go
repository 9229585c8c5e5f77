package reports

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"github.com/meridian-ims/meridian-ims/internal/shared"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) Inventory(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "inventory.xlsx", h.service.InventoryWorkbook)
}

func (h *Handler) Sales(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "sales.xlsx", h.service.SalesWorkbook)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request, filename string, build func(context.Context) (*excelize.File, error)) {
	f, err := build(r.Context())
	if err != nil {
		h.logger.Error("build report", slog.String("file", filename), slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(w); err != nil {
		h.logger.Error("write report", slog.String("file", filename), slog.Any("error", err))
	}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/reports/inventory.xlsx", h.Inventory)
	r.Get("/reports/sales.xlsx", h.Sales)
}
