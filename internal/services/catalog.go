package service

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/nurshop/storefront/internal/errors"
	"github.com/nurshop/storefront/internal/models"
	"github.com/nurshop/storefront/internal/pricing"
)

// CatalogService serves the read-only product list the shop and product pages
// browse. Products are reference data: the cart snapshots prices out of the
// catalog and never reads back.
type CatalogService struct {
	products []models.Product
}

func NewCatalogService(products []models.Product) *CatalogService {

	if products == nil {
		products = SampleProducts()
	}

	return &CatalogService{products: products}
}

// LoadCatalog reads a product list from a JSON seed file.
func LoadCatalog(path string) ([]models.Product, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed %s: %w", path, err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed %s: %w", path, err)
	}

	return products, nil
}

func (s *CatalogService) List() []models.Product {

	out := make([]models.Product, len(s.products))
	copy(out, s.products)

	return out
}

func (s *CatalogService) Get(id int64) (*models.Product, error) {

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]

			return &p, nil
		}
	}

	return nil, errors.NotFoundError(fmt.Sprintf("Product not found: %d", id))
}

// Filter applies the shop page's filter panel: category membership, a cap on
// the discounted price, size intersection and a title search over both
// languages, then the selected sort.
func (s *CatalogService) Filter(f models.ListFilter) []models.Product {

	query := strings.ToLower(strings.TrimSpace(f.Query))

	var out []models.Product

	for _, p := range s.products {
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
			continue
		}

		if f.MaxPrice > 0 && p.DiscountedPrice() > f.MaxPrice {
			continue
		}

		if len(f.Sizes) > 0 && !hasAnySize(p.Sizes, f.Sizes) {
			continue
		}

		if query != "" &&
			!strings.Contains(strings.ToLower(p.TitleBN), query) &&
			!strings.Contains(strings.ToLower(p.TitleEN), query) {
			continue
		}

		out = append(out, p)
	}

	switch f.SortBy {
	case models.SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DiscountedPrice() < out[j].DiscountedPrice()
		})
	case models.SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DiscountedPrice() > out[j].DiscountedPrice()
		})
	case models.SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TitleBN < out[j].TitleBN
		})
	}

	return out
}

func hasAnySize(have, want []string) bool {

	for _, s := range have {
		if slices.Contains(want, s) {
			return true
		}
	}

	return false
}

// SampleProducts is the built-in demo catalog.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			ID:              1,
			TitleBN:         "মেনস কটন শার্ট",
			TitleEN:         "Men's Cotton Shirt",
			Price:           pricing.FromTaka(1200),
			DiscountPercent: 10,
			Images:          []string{"assets/img/products/shirt1.jpg"},
			Sizes:           []string{"S", "M", "L", "XL"},
			Category:        "ফ্যাশন",
		},
		{
			ID:              2,
			TitleBN:         "স্মার্টফোন",
			TitleEN:         "Smartphone",
			Price:           pricing.FromTaka(25000),
			DiscountPercent: 15,
			Images:          []string{"assets/img/products/phone1.jpg"},
			Sizes:           []string{"FREE SIZE"},
			Category:        "ইলেকট্রনিক্স",
		},
		{
			ID:              3,
			TitleBN:         "কিচেন ব্লেন্ডার",
			TitleEN:         "Kitchen Blender",
			Price:           pricing.FromTaka(3500),
			DiscountPercent: 20,
			Images:          []string{"assets/img/products/blender1.jpg"},
			Sizes:           []string{"FREE SIZE"},
			Category:        "কিচেন",
		},
		{
			ID:              4,
			TitleBN:         "স্পোর্টস স্নিকার",
			TitleEN:         "Sports Sneakers",
			Price:           pricing.FromTaka(2200),
			DiscountPercent: 5,
			Images:          []string{"assets/img/products/shoes1.jpg"},
			Sizes:           []string{"38", "39", "40", "41", "42"},
			Category:        "ফ্যাশন",
		},
	}
}
