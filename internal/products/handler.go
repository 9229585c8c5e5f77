package products

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
		h.logger.Error("list products", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	if list == nil {
		list = []Product{}
	}
	shared.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("get product", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	shared.RespondJSON(w, http.StatusOK, product)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.ValidationMessage(err))
		return
	}
	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create product", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to create product")
		return
	}
	shared.RespondJSON(w, http.StatusOK, product)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.ValidationMessage(err))
		return
	}
	product, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("update product", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to update product")
		return
	}
	shared.RespondJSON(w, http.StatusOK, product)
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
		shared.RespondError(w, http.StatusNotFound, "product not found")
	default:
		h.logger.Error("delete product", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to delete product")
	}
}

func (h *Handler) Restock(w http.ResponseWriter, r *http.Request) {
	var req RestockRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.ValidationMessage(err))
		return
	}
	product, err := h.service.Restock(r.Context(), chi.URLParam(r, "id"), req)
	switch {
	case err == nil:
		shared.RespondJSON(w, http.StatusOK, product)
	case errors.Is(err, store.ErrNotFound):
		shared.RespondError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, ErrInvalidQuantity):
		shared.RespondError(w, http.StatusBadRequest, "quantity must be positive")
	default:
		h.logger.Error("restock product", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to restock product")
	}
}

func (h *Handler) lifecycle(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (Product, error)) {
	product, err := fn(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		shared.RespondJSON(w, http.StatusOK, product)
	case errors.Is(err, store.ErrNotFound):
		shared.RespondError(w, http.StatusNotFound, "product not found")
	default:
		h.logger.Error("change product lifecycle", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to update product")
	}
}
