package sales

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	includeArchived := false
	if raw := r.URL.Query().Get("archived"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			shared.RespondError(w, http.StatusBadRequest, "archived must be true or false")
			return
		}
		includeArchived = parsed
	}
	list, err := h.service.List(r.Context(), includeArchived)
	if err != nil {
		h.logger.Error("list sales", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to load sales")
		return
	}
	if list == nil {
		list = []Sale{}
	}
	shared.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordSaleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.ValidationMessage(err))
		return
	}
	sale, err := h.service.Record(r.Context(), req)
	switch {
	case err == nil:
		shared.RespondJSON(w, http.StatusOK, sale)
	case errors.Is(err, ErrInsufficientStock):
		shared.RespondError(w, http.StatusConflict, "insufficient stock")
	default:
		h.logger.Error("record sale", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to record sale")
	}
}

func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.service.Archive)
}

func (h *Handler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.service.Unarchive)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.PermanentlyDelete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		shared.RespondJSON(w, http.StatusOK, map[string]any{"deleted": true})
	case errors.Is(err, store.ErrNotFound):
		shared.RespondError(w, http.StatusNotFound, "sale not found")
	default:
		h.logger.Error("delete sale", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to delete sale")
	}
}

func (h *Handler) lifecycle(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (Sale, error)) {
	sale, err := fn(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		shared.RespondJSON(w, http.StatusOK, sale)
	case errors.Is(err, store.ErrNotFound):
		shared.RespondError(w, http.StatusNotFound, "sale not found")
	default:
		h.logger.Error("change sale lifecycle", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to update sale")
	}
}
