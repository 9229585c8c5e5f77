package ledger

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/meridian-ims/meridian-ims/internal/shared"
	"github.com/meridian-ims/meridian-ims/internal/store"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Transactions(r.Context())
	if err != nil {
		h.logger.Error("list transactions", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}
	if list == nil {
		list = []Transaction{}
	}
	shared.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Orders(r.Context())
	if err != nil {
		h.logger.Error("list restock orders", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to load restock orders")
		return
	}
	if list == nil {
		list = []RestockOrder{}
	}
	shared.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateRestockOrderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.ValidationMessage(err))
		return
	}
	order, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		h.logger.Error("create restock order", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to create restock order")
		return
	}
	shared.RespondJSON(w, http.StatusOK, order)
}

func (h *Handler) ReceiveOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.ReceiveOrder)
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.CancelOrder)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (RestockOrder, error)) {
	order, err := fn(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		shared.RespondJSON(w, http.StatusOK, order)
	case errors.Is(err, store.ErrNotFound):
		shared.RespondError(w, http.StatusNotFound, "restock order not found")
	case errors.Is(err, ErrOrderClosed):
		shared.RespondError(w, http.StatusConflict, "restock order already closed")
	default:
		h.logger.Error("update restock order", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to update restock order")
	}
}
