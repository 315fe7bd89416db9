package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nurshop/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customerBody = `{
	"name": "Rahim Uddin",
	"phone": "01712345678",
	"address": "House 12, Road 5",
	"city": "Dhaka",
	"area": "Mirpur",
	"paymentMethod": "cod"
}`

func (s *testServer) placeOrder(t *testing.T) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/v1/cart/items",
		`{"productId": 1, "size": "M", "quantity": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/checkout", customerBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data models.PlaceOrderResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.OrderID)

	return envelope.Data.OrderID
}

func decodeOrders(t *testing.T, body []byte) []models.Order {
	t.Helper()

	var envelope struct {
		Data []models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	return envelope.Data
}

func TestCheckout(t *testing.T) {
	t.Run("Success - places order and clears cart", func(t *testing.T) {
		server := newTestServer(t)

		server.placeOrder(t)

		rec := server.do(t, http.MethodGet, "/api/v1/cart", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeCartView(t, rec).Lines)

		rec = server.do(t, http.MethodGet, "/api/v1/orders", "")
		require.Equal(t, http.StatusOK, rec.Code)
		orders := decodeOrders(t, rec.Body.Bytes())
		require.Len(t, orders, 1)
		assert.Equal(t, models.OrderStatusPending, orders[0].Status)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		server := newTestServer(t)

		rec := server.do(t, http.MethodPost, "/api/v1/checkout", customerBody)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeError(t, rec)
		assert.Equal(t, "BAD_REQUEST", errResp.Code)
	})

	t.Run("Failure - Invalid Customer", func(t *testing.T) {
		server := newTestServer(t)

		rec := server.do(t, http.MethodPost, "/api/v1/cart/items",
			`{"productId": 1, "size": "M", "quantity": 1}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = server.do(t, http.MethodPost, "/api/v1/checkout", `{"name": "Rahim"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errResp := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", errResp.Code)

		// a failed checkout must not eat the cart
		rec = server.do(t, http.MethodGet, "/api/v1/cart", "")
		assert.Len(t, decodeCartView(t, rec).Lines, 1)
	})
}

func TestListOrdersSearch(t *testing.T) {
	server := newTestServer(t)
	orderID := server.placeOrder(t)

	t.Run("by phone fragment", func(t *testing.T) {
		rec := server.do(t, http.MethodGet, "/api/v1/orders?q=017", "")

		require.Equal(t, http.StatusOK, rec.Code)
		orders := decodeOrders(t, rec.Body.Bytes())
		require.Len(t, orders, 1)
		assert.Equal(t, orderID, orders[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		rec := server.do(t, http.MethodGet, "/api/v1/orders?q=zzz", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeOrders(t, rec.Body.Bytes()))
	})
}

func TestCancelOrderEndpoint(t *testing.T) {
	server := newTestServer(t)
	orderID := server.placeOrder(t)

	rec := server.do(t, http.MethodDelete, "/api/v1/orders/"+orderID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = server.do(t, http.MethodGet, "/api/v1/orders", "")
	assert.Empty(t, decodeOrders(t, rec.Body.Bytes()))
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	server := newTestServer(t)
	orderID := server.placeOrder(t)

	t.Run("confirm", func(t *testing.T) {
		rec := server.do(t, http.MethodPatch,
			"/api/v1/orders/"+orderID+"/status", `{"status": "confirmed"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Data models.Order `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, models.OrderStatusConfirmed, envelope.Data.Status)
	})

	t.Run("invalid status value", func(t *testing.T) {
		rec := server.do(t, http.MethodPatch,
			"/api/v1/orders/"+orderID+"/status", `{"status": "returned"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown order", func(t *testing.T) {
		rec := server.do(t, http.MethodPatch,
			"/api/v1/orders/NUR-missing/status", `{"status": "confirmed"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
