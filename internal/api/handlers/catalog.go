package handlers

import (
	"net/http"
	"strconv"
	"strings"

	appErrors "github.com/nurshop/storefront/internal/errors"
	"github.com/nurshop/storefront/internal/models"
	"github.com/nurshop/storefront/internal/pricing"
	service "github.com/nurshop/storefront/internal/services"
	"github.com/nurshop/storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts is the shop page: query params map onto the filter panel.
// ?category=&size= may repeat; ?max_price= is in taka; ?q= searches titles;
// ?sort= is one of price-low, price-high, name.
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		q := r.URL.Query()

		filter := models.ListFilter{
			Categories: q["category"],
			Sizes:      q["size"],
			Query:      q.Get("q"),
			SortBy:     q.Get("sort"),
		}

		if raw := strings.TrimSpace(q.Get("max_price")); raw != "" {
			taka, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || taka < 0 {
				response.Error(w, appErrors.BadRequestError("Invalid max_price"))
				return
			}

			filter.MaxPrice = pricing.FromTaka(taka)
		}

		response.Success(w, http.StatusOK, h.catalogService.Filter(filter))
	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		product, err := h.catalogService.Get(id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
