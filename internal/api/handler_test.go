package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PYTHTRADER/e-commerce/internal/backend"
	"github.com/PYTHTRADER/e-commerce/internal/catalog"
	"github.com/PYTHTRADER/e-commerce/internal/ledger"
	"github.com/PYTHTRADER/e-commerce/internal/shop"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Load(context.Background(), catalog.Static())
	require.NoError(t, err)

	led, err := ledger.Open(context.Background(), ledger.NewMemoryRepository(), nil)
	require.NoError(t, err)

	session := shop.New(cat, led,
		backend.NewSimulatedGateway(0),
		backend.NewEmailSimulator(0),
		0)

	router := gin.New()
	NewHandler(session, cat).SetupRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListProducts(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []struct {
			ID string `json:"id"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 3)
}

func TestAddItemAndReadCart(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "p1", "weight": "1kg", "quantity": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CartTotal  int64 `json:"cart_total"`
		FinalTotal int64 `json:"final_total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(898), resp.CartTotal)
	assert.Equal(t, int64(898), resp.FinalTotal)
}

func TestAddItemUnknownVariant(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "p1", "weight": "2kg", "quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyCouponReportsRejectionInBand(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "p1", "weight": "1kg", "quantity": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Subtotal 449 is below SAVE50's minimum: still HTTP 200, applied=false.
	w = doJSON(t, router, http.MethodPost, "/api/v1/coupon", gin.H{"code": "SAVE50"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Applied bool   `json:"applied"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Applied)
	assert.Contains(t, resp.Message, "Minimum order value")
}

func TestCheckoutRequiresLogin(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "p1", "weight": "500g", "quantity": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout", gin.H{
		"shipping":       gin.H{"first_name": "Rahul", "last_name": "Sharma"},
		"payment_method": "upi",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSaveAddressRequiresLogin(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/addresses", gin.H{
		"first_name": "Rahul", "street": "7 Hill Rd", "city": "Mumbai", "postal_code": "400050",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/session", gin.H{"email": "shopper@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "p2", "weight": "1kg", "quantity": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/coupon", gin.H{"code": "WELCOME20"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout", gin.H{
		"shipping": gin.H{
			"first_name": "Rahul", "last_name": "Sharma",
			"street": "7 Hill Rd", "city": "Mumbai", "postal_code": "400050",
		},
		"payment_method": "upi",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		OrderID string `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	assert.Regexp(t, `^ORD-\d{6}$`, placed.OrderID)

	// Cart cleared after success.
	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart struct {
		Items      []json.RawMessage `json:"items"`
		FinalTotal int64             `json:"final_total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.FinalTotal)

	// Newest ledger entry matches the returned ID.
	w = doJSON(t, router, http.MethodGet, "/api/v1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders struct {
		Orders []struct {
			ID    string `json:"id"`
			Total int64  `json:"total"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.NotEmpty(t, orders.Orders)
	assert.Equal(t, placed.OrderID, orders.Orders[0].ID)
	assert.Equal(t, int64(480), orders.Orders[0].Total) // 599 - 20%
}

func TestLogoutClearsCart(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/session", gin.H{"email": "shopper@example.com"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "p1", "weight": "500g", "quantity": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/session", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
}
