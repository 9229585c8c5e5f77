package insights

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

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("compute summary", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	shared.RespondJSON(w, http.StatusOK, summary)
}

func (h *Handler) Inventory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Inventory(r.Context())
	if err != nil {
		h.logger.Error("compute inventory insight", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to compute inventory insight")
		return
	}
	shared.RespondJSON(w, http.StatusOK, rows)
}

func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.LowStock(r.Context())
	if err != nil {
		h.logger.Error("compute low stock", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to compute low stock")
		return
	}
	shared.RespondJSON(w, http.StatusOK, rows)
}

func (h *Handler) SalesProfit(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.SalesProfit(r.Context())
	if err != nil {
		h.logger.Error("compute sales profit", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to compute sales profit")
		return
	}
	shared.RespondJSON(w, http.StatusOK, rows)
}

func (h *Handler) Utilization(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Utilization(r.Context())
	if err != nil {
		h.logger.Error("compute warehouse utilization", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to compute warehouse utilization")
		return
	}
	shared.RespondJSON(w, http.StatusOK, rows)
}

func (h *Handler) StockTurnover(w http.ResponseWriter, r *http.Request) {
	turnover, err := h.service.StockTurnover(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		h.logger.Error("compute stock turnover", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to compute stock turnover")
		return
	}
	shared.RespondJSON(w, http.StatusOK, turnover)
}
