package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nurshop/storefront/internal/api/middleware"
	"github.com/nurshop/storefront/internal/models"
	service "github.com/nurshop/storefront/internal/services"
	"github.com/nurshop/storefront/internal/utils"
	"github.com/nurshop/storefront/internal/utils/response"
)

type OrderHandler struct {
	orderService *service.OrderService
	cartService  *service.CartService
	validator    *validator.Validate
}

func NewOrderHandler(orderService *service.OrderService, cartService *service.CartService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cartService:  cartService,
		validator:    utils.NewValidator(),
	}
}

// Checkout places an order from the current cart, then clears the cart. The
// clear is the caller's side of the order store's contract, so it lives here,
// not inside PlaceOrder.
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var customer models.CustomerInfo
		if !utils.ParseAndValidate(r, w, &customer, h.validator) {
			return
		}

		order, err := h.orderService.PlaceOrder(r.Context(), h.cartService.Lines(), customer)
		if err != nil {
			logger.Warn("Order placement failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.cartService.Clear(r.Context()); err != nil {
			// The order is already persisted; a stale cart is recoverable.
			logger.Error("Failed to clear cart after checkout",
				slog.String("orderId", order.ID),
				slog.String("error", err.Error()))
		}

		logger.Info("Order placed", slog.String("orderId", order.ID))

		response.Success(w, http.StatusCreated, models.PlaceOrderResponse{OrderID: order.ID})
	}
}

// ListOrders returns the order history; with ?q= it becomes the orders page's
// search over order id and customer phone.
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		term := r.URL.Query().Get("q")

		var orders []models.Order
		if term != "" {
			orders = h.orderService.Search(term)
		} else {
			orders = h.orderService.List()
		}

		response.Success(w, http.StatusOK, orders)
	}
}

func (h *OrderHandler) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		orderID := r.PathValue("id")

		if err := h.orderService.Cancel(r.Context(), orderID); err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Order cancelled", slog.String("orderId", orderID))

		response.Success(w, http.StatusOK, map[string]string{"id": orderID})
	}
}

func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		orderID := r.PathValue("id")

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateStatus(r.Context(), orderID, req.Status)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}
