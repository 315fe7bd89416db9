package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/nurshop/storefront/internal/api/middleware"
	appErrors "github.com/nurshop/storefront/internal/errors"
	"github.com/nurshop/storefront/internal/models"
	service "github.com/nurshop/storefront/internal/services"
	"github.com/nurshop/storefront/internal/utils"
	"github.com/nurshop/storefront/internal/utils/response"
)

type CartHandler struct {
	cartService    *service.CartService
	catalogService *service.CatalogService
	validator      *validator.Validate
}

func NewCartHandler(cartService *service.CartService, catalogService *service.CatalogService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
		validator:      utils.NewValidator(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.cartService.View())
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.catalogService.Get(req.ProductID)
		if err != nil {
			response.Error(w, err)
			return
		}

		if _, err := h.cartService.Add(r.Context(), product, req.Size, req.Quantity); err != nil {
			logger.Error("Failed to add item to cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart",
			slog.Int64("productId", req.ProductID),
			slog.String("size", req.Size))

		response.Success(w, http.StatusOK, h.cartService.View())
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		lineID, ok := pathID(w, r)
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if _, err := h.cartService.UpdateQuantity(r.Context(), lineID, req.Delta); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.cartService.View())
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		lineID, ok := pathID(w, r)
		if !ok {
			return
		}

		if _, err := h.cartService.Remove(r.Context(), lineID); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.cartService.View())
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid line id"))
		return 0, false
	}

	return id, true
}
