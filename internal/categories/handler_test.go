package categories

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-ims/meridian-ims/internal/store"
)

func newTestRouter(counts map[string]int) (chi.Router, *Service) {
	svc := NewService(NewRepository(store.NewMemory()), stubCounter{counts: counts})
	handler := NewHandler(slog.Default(), svc)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r, svc
}

func TestListCategoriesEmpty(t *testing.T) {
	router, _ := newTestRouter(nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/categories", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestCreateCategoryHandler(t *testing.T) {
	router, _ := newTestRouter(nil)

	body := strings.NewReader(`{"name":"Audio Accessories","color":"#22C55E","icon":"Headphones"}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/categories", body))

	require.Equal(t, http.StatusOK, rr.Code)

	var category Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &category))
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Audio Accessories", category.Name)
	assert.Equal(t, "#22C55E", category.Color)
}

func TestCreateCategoryValidation(t *testing.T) {
	router, _ := newTestRouter(nil)

	// name missing, color not a hex colour
	body := strings.NewReader(`{"color":"green"}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/categories", body))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "validation")
}

func TestUpdateCategoryNotFoundHandler(t *testing.T) {
	router, _ := newTestRouter(nil)

	body := strings.NewReader(`{"name":"Renamed"}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/categories/missing", body))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteCategoryConflict(t *testing.T) {
	router, svc := newTestRouter(nil)

	category, err := svc.Create(context.Background(), CreateCategoryRequest{Name: "Phone Cases"})
	require.NoError(t, err)
	svc.products = stubCounter{counts: map[string]int{category.ID: 2}}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/categories/"+category.ID, nil))

	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "category in use")
}

func TestDeleteCategoryOK(t *testing.T) {
	router, svc := newTestRouter(nil)

	category, err := svc.Create(context.Background(), CreateCategoryRequest{Name: "Phone Stands"})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/categories/"+category.ID, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"deleted":true}`, rr.Body.String())
}
