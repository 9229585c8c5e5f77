package sales

import (
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

func newTestRouter(t *testing.T, cfg ServiceConfig) (chi.Router, testEnv) {
	t.Helper()
	env := newTestEnv(t, cfg)
	handler := NewHandler(slog.Default(), env.svc)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r, env
}

func TestRecordSaleHandler(t *testing.T) {
	router, env := newTestRouter(t, ServiceConfig{})
	seedProduct(t, env)

	body := strings.NewReader(`{
		"productId": "1",
		"customer": "Ali Khan",
		"saleType": "retail",
		"quantity": 2,
		"unitPrice": 35,
		"paymentMethod": "cash",
		"paymentStatus": "paid",
		"warehouseId": "WH-001"
	}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/sales", body))
	require.Equal(t, http.StatusOK, rr.Code)

	var sale Sale
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sale))
	assert.NotEmpty(t, sale.InvoiceNo)
	assert.Equal(t, "70", sale.TotalAmount.String())
}

func TestRecordSaleHandlerValidation(t *testing.T) {
	router, _ := newTestRouter(t, ServiceConfig{})

	body := strings.NewReader(`{"productId":"1","saleType":"bulk","quantity":2,"paymentMethod":"cash","paymentStatus":"paid"}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/sales", body))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "oneof")
}

func TestRecordSaleHandlerInsufficientStock(t *testing.T) {
	router, env := newTestRouter(t, ServiceConfig{EnforceStock: true})
	seedProduct(t, env)

	body := strings.NewReader(`{"productId":"1","saleType":"retail","quantity":500,"unitPrice":35,"paymentMethod":"cash","paymentStatus":"paid"}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/sales", body))

	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "insufficient stock")
}

func TestDeleteSaleNotFound(t *testing.T) {
	router, _ := newTestRouter(t, ServiceConfig{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/sales/missing", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
}
