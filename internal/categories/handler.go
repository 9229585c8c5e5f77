package categories

import (
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list categories", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to load categories")
		return
	}
	if list == nil {
		list = []Category{}
	}
	shared.RespondJSON(w, http.StatusOK, list)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.ValidationMessage(err))
		return
	}
	category, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create category", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to create category")
		return
	}
	shared.RespondJSON(w, http.StatusOK, category)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.ValidationMessage(err))
		return
	}
	category, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			shared.RespondError(w, http.StatusNotFound, "category not found")
			return
		}
		h.logger.Error("update category", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to update category")
		return
	}
	shared.RespondJSON(w, http.StatusOK, category)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		shared.RespondJSON(w, http.StatusOK, map[string]any{"deleted": true})
	case errors.Is(err, store.ErrNotFound):
		shared.RespondError(w, http.StatusNotFound, "category not found")
	case errors.Is(err, ErrCategoryInUse):
		shared.RespondError(w, http.StatusConflict, "category in use")
	default:
		h.logger.Error("delete category", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, "failed to delete category")
	}
}
