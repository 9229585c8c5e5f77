package products

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
)

func newTestRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()
	svc, _ := newTestService(t)
	handler := NewHandler(slog.Default(), svc)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r, svc
}

func TestListProductsFiltersArchived(t *testing.T) {
	router, svc := newTestRouter(t)
	ctx := context.Background()

	live, err := svc.Create(ctx, CreateProductRequest{Name: "Live", CategoryID: "1", WarehouseID: "WH-001", SKU: "L-1"})
	require.NoError(t, err)
	hidden, err := svc.Create(ctx, CreateProductRequest{Name: "Hidden", CategoryID: "1", WarehouseID: "WH-001", SKU: "H-1"})
	require.NoError(t, err)
	_, err = svc.Archive(ctx, hidden.ID)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var active []Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &active))
	require.Len(t, active, 1)
	assert.Equal(t, live.ID, active[0].ID)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products?archived=true", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var all []Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Len(t, all, 2)
}

func TestListProductsBadArchivedFlag(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products?archived=maybe", nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateProductValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	// missing required fields
	body := strings.NewReader(`{"name":"Charger"}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products", body))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "validation")
}

func TestGetProductNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/missing", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRestockEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, CreateProductRequest{
		Name: "Charger", CategoryID: "1", WarehouseID: "WH-001", SKU: "C-1", Quantity: 100,
	})
	require.NoError(t, err)

	body := strings.NewReader(`{"quantity":50,"costPerUnit":2.4}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products/"+product.ID+"/restock", body))
	require.Equal(t, http.StatusOK, rr.Code)

	var restocked Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &restocked))
	assert.Equal(t, 150, restocked.Quantity)
}

func TestRestockRejectsZeroQuantity(t *testing.T) {
	router, svc := newTestRouter(t)

	product, err := svc.Create(context.Background(), CreateProductRequest{
		Name: "Charger", CategoryID: "1", WarehouseID: "WH-001", SKU: "C-1",
	})
	require.NoError(t, err)

	body := strings.NewReader(`{"quantity":0}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products/"+product.ID+"/restock", body))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestArchiveEndpointsRoundTrip(t *testing.T) {
	router, svc := newTestRouter(t)

	product, err := svc.Create(context.Background(), CreateProductRequest{
		Name: "Charger", CategoryID: "1", WarehouseID: "WH-001", SKU: "C-1",
	})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products/"+product.ID+"/archive", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products/"+product.ID+"/unarchive", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var restored Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &restored))
	assert.False(t, restored.IsArchived)
}
